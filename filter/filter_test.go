package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/criteria"
	"bikeshare/domain/entities/trip"
)

func buildDataset(startTimes ...time.Time) *trip.Dataset {
	dataset := &trip.Dataset{City: criteria.CityChicago}
	for _, startTime := range startTimes {
		dataset.Records = append(dataset.Records, trip.TripRecord{
			StartTime: startTime,
			Month:     startTime.Month(),
			Weekday:   startTime.Weekday(),
			StartHour: startTime.Hour(),
			Duration:  60,
		})
	}
	return dataset
}

func TestApplyWithoutRestrictionsReturnsFullDataset(t *testing.T) {
	dataset := buildDataset(
		time.Date(2017, time.January, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2017, time.February, 14, 18, 0, 0, 0, time.UTC),
		time.Date(2017, time.June, 30, 7, 0, 0, 0, time.UTC),
	)

	filtered := Apply(dataset, criteria.Criteria{City: criteria.CityChicago})

	assert.Equal(t, dataset.Records, filtered.Records)
	assert.Equal(t, dataset.City, filtered.City)
}

func TestApplyNeverMutatesTheSource(t *testing.T) {
	dataset := buildDataset(
		time.Date(2017, time.January, 2, 9, 0, 0, 0, time.UTC),  // Monday
		time.Date(2017, time.February, 14, 8, 0, 0, 0, time.UTC), // Tuesday
	)
	originalRecords := append([]trip.TripRecord(nil), dataset.Records...)

	Apply(dataset, criteria.Criteria{Months: []time.Month{time.January}})

	assert.Equal(t, originalRecords, dataset.Records)
}

func TestApplyByMonthScenario(t *testing.T) {
	// three January trips (Monday, Tuesday, Monday) and two February trips
	dataset := buildDataset(
		time.Date(2017, time.January, 2, 9, 0, 0, 0, time.UTC),   // Monday
		time.Date(2017, time.January, 3, 10, 0, 0, 0, time.UTC),  // Tuesday
		time.Date(2017, time.January, 9, 11, 0, 0, 0, time.UTC),  // Monday
		time.Date(2017, time.February, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2017, time.February, 2, 9, 0, 0, 0, time.UTC),
	)

	filtered := Apply(dataset, criteria.Criteria{Months: []time.Month{time.January}})

	require.Equal(t, 3, filtered.Len())
	for _, tripRecord := range filtered.Records {
		assert.Equal(t, time.January, tripRecord.Month)
	}

	mondays := 0
	for _, tripRecord := range filtered.Records {
		if tripRecord.Weekday == time.Monday {
			mondays++
		}
	}
	assert.Equal(t, 2, mondays)
}

func TestApplyByDay(t *testing.T) {
	dataset := buildDataset(
		time.Date(2017, time.January, 2, 9, 0, 0, 0, time.UTC),  // Monday
		time.Date(2017, time.January, 3, 9, 0, 0, 0, time.UTC),  // Tuesday
		time.Date(2017, time.January, 9, 9, 0, 0, 0, time.UTC),  // Monday
	)

	filtered := Apply(dataset, criteria.Criteria{Days: []time.Weekday{time.Tuesday}})

	require.Equal(t, 1, filtered.Len())
	assert.Equal(t, time.Tuesday, filtered.Records[0].Weekday)
}

func TestApplyByBoth(t *testing.T) {
	dataset := buildDataset(
		time.Date(2017, time.January, 2, 9, 0, 0, 0, time.UTC),   // January Monday
		time.Date(2017, time.January, 3, 9, 0, 0, 0, time.UTC),   // January Tuesday
		time.Date(2017, time.February, 6, 9, 0, 0, 0, time.UTC),  // February Monday
	)

	crit := criteria.Criteria{
		Months: []time.Month{time.January},
		Days:   []time.Weekday{time.Monday},
	}
	filtered := Apply(dataset, crit)

	require.Equal(t, 1, filtered.Len())
	assert.Equal(t, time.January, filtered.Records[0].Month)
	assert.Equal(t, time.Monday, filtered.Records[0].Weekday)
}

func TestApplyIsIdempotent(t *testing.T) {
	dataset := buildDataset(
		time.Date(2017, time.January, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2017, time.February, 14, 8, 0, 0, 0, time.UTC),
		time.Date(2017, time.March, 15, 8, 0, 0, 0, time.UTC),
	)
	crit := criteria.Criteria{Months: []time.Month{time.January, time.March}}

	once := Apply(dataset, crit)
	twice := Apply(once, crit)

	assert.Equal(t, once.Records, twice.Records)
}

func TestApplyEmptyResultIsValid(t *testing.T) {
	dataset := buildDataset(
		time.Date(2017, time.January, 2, 9, 0, 0, 0, time.UTC),
	)

	filtered := Apply(dataset, criteria.Criteria{Months: []time.Month{time.June}})

	assert.True(t, filtered.IsEmpty())
	assert.Equal(t, 0, filtered.Len())
}

func TestApplyKeepsColumnPresenceFlags(t *testing.T) {
	dataset := buildDataset(time.Date(2017, time.January, 2, 9, 0, 0, 0, time.UTC))
	dataset.HasGender = true
	dataset.HasBirthYear = true

	filtered := Apply(dataset, criteria.Criteria{Days: []time.Weekday{time.Monday}})

	assert.True(t, filtered.HasGender)
	assert.True(t, filtered.HasBirthYear)
}
