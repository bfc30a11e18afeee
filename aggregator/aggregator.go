package aggregator

import (
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/durationstats"
	"bikeshare/domain/business/stationstats"
	"bikeshare/domain/business/timestats"
	"bikeshare/domain/business/userstats"
	"bikeshare/domain/entities/trip"
)

const aggregatorStage = "aggregator"

// Summary contains every statistic computed for one query
// + TripCount: amount of trips that matched the filter criteria
// + Times: frequency of travel times
// + Stations: most popular stations and route
// + Durations: total and mean trip duration
// + Users: counts by user type, gender and birth year summary
type Summary struct {
	TripCount int
	Times     *timestats.TimeStats
	Stations  *stationstats.StationStats
	Durations *durationstats.DurationAccumulator
	Users     *userstats.UserStats
}

// Aggregate computes every statistics section over a filtered dataset.
// Each section is computed independently; an empty dataset yields a Summary
// whose sections report no data instead of failing
func Aggregate(dataset *trip.Dataset) *Summary {
	summary := &Summary{
		TripCount: dataset.Len(),
		Times:     aggregateTimes(dataset),
		Stations:  aggregateStations(dataset),
		Durations: aggregateDurations(dataset),
		Users:     aggregateUsers(dataset),
	}
	return summary
}

func aggregateTimes(dataset *trip.Dataset) *timestats.TimeStats {
	begin := time.Now()
	timeStats := timestats.NewTimeStats()
	for _, tripRecord := range dataset.Records {
		timeStats.UpdateStats(tripRecord)
	}
	logSection("time", dataset, begin)
	return timeStats
}

func aggregateStations(dataset *trip.Dataset) *stationstats.StationStats {
	begin := time.Now()
	stationStats := stationstats.NewStationStats()
	for _, tripRecord := range dataset.Records {
		stationStats.UpdateStats(tripRecord)
	}
	logSection("station", dataset, begin)
	return stationStats
}

func aggregateDurations(dataset *trip.Dataset) *durationstats.DurationAccumulator {
	begin := time.Now()
	durationAccumulator := durationstats.NewDurationAccumulator()
	for _, tripRecord := range dataset.Records {
		durationAccumulator.UpdateAccumulator(tripRecord.Duration)
	}
	logSection("duration", dataset, begin)
	return durationAccumulator
}

func aggregateUsers(dataset *trip.Dataset) *userstats.UserStats {
	begin := time.Now()
	userStats := userstats.NewUserStats(dataset.HasGender, dataset.HasBirthYear)
	for _, tripRecord := range dataset.Records {
		userStats.UpdateStats(tripRecord)
	}
	logSection("user", dataset, begin)
	return userStats
}

func logSection(section string, dataset *trip.Dataset, begin time.Time) {
	log.Infof("[stage: %s][section: %s][city: %s][status: OK] computed over %v trips in %.2fs",
		aggregatorStage, section, dataset.City, dataset.Len(), time.Since(begin).Seconds())
}
