package filter

import (
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/criteria"
	"bikeshare/domain/entities/trip"
)

const filterStage = "filter"

// Apply returns a new Dataset restricted to the trips matching the given
// criteria. The source dataset is never modified. An empty result is valid.
// Applying the same criteria twice yields the same result
func Apply(dataset *trip.Dataset, crit criteria.Criteria) *trip.Dataset {
	filtered := &trip.Dataset{
		City:         dataset.City,
		HasGender:    dataset.HasGender,
		HasBirthYear: dataset.HasBirthYear,
	}

	mode := crit.Mode()
	switch mode {
	case criteria.FilterNone:
		filtered.Records = append(filtered.Records, dataset.Records...)
	case criteria.FilterByMonth:
		for _, tripRecord := range dataset.Records {
			if crit.MatchesMonth(tripRecord.Month) {
				filtered.Records = append(filtered.Records, tripRecord)
			}
		}
	case criteria.FilterByDay:
		for _, tripRecord := range dataset.Records {
			if crit.MatchesDay(tripRecord.Weekday) {
				filtered.Records = append(filtered.Records, tripRecord)
			}
		}
	case criteria.FilterByBoth:
		for _, tripRecord := range dataset.Records {
			if crit.MatchesMonth(tripRecord.Month) && crit.MatchesDay(tripRecord.Weekday) {
				filtered.Records = append(filtered.Records, tripRecord)
			}
		}
	}

	log.Debugf("[stage: %s][city: %s][mode: %s] kept %v of %v trips",
		filterStage, dataset.City, mode, filtered.Len(), dataset.Len())

	return filtered
}
