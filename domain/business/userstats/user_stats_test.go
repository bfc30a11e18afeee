package userstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/trip"
)

func TestTypeCountsKeepFirstSeenOrder(t *testing.T) {
	userStats := NewUserStats(false, false)
	userStats.UpdateStats(trip.TripRecord{UserType: "Subscriber"})
	userStats.UpdateStats(trip.TripRecord{UserType: "Customer"})
	userStats.UpdateStats(trip.TripRecord{UserType: "Subscriber"})

	assert.Equal(t, []CountByValue{
		{Value: "Subscriber", Count: 2},
		{Value: "Customer", Count: 1},
	}, userStats.TypeCounts())
}

func TestGenderCounts(t *testing.T) {
	userStats := NewUserStats(true, false)
	userStats.UpdateStats(trip.TripRecord{UserType: "Subscriber", Gender: "Male"})
	userStats.UpdateStats(trip.TripRecord{UserType: "Subscriber", Gender: "Female"})
	userStats.UpdateStats(trip.TripRecord{UserType: "Customer"}) // blank cell

	counts, available := userStats.GenderCounts()
	require.True(t, available)
	assert.Equal(t, []CountByValue{
		{Value: "Male", Count: 1},
		{Value: "Female", Count: 1},
	}, counts)
}

func TestGenderNotAvailableWithoutColumn(t *testing.T) {
	userStats := NewUserStats(false, false)
	userStats.UpdateStats(trip.TripRecord{UserType: "Subscriber"})

	counts, available := userStats.GenderCounts()
	assert.False(t, available)
	assert.Nil(t, counts)
}

func TestBirthYears(t *testing.T) {
	userStats := NewUserStats(false, true)
	userStats.UpdateStats(trip.TripRecord{UserType: "Subscriber", BirthYear: 1959})
	userStats.UpdateStats(trip.TripRecord{UserType: "Subscriber", BirthYear: 1992})
	userStats.UpdateStats(trip.TripRecord{UserType: "Customer", BirthYear: 1992})
	userStats.UpdateStats(trip.TripRecord{UserType: "Customer"}) // blank cell

	birthYears, available := userStats.BirthYears()
	require.True(t, available)
	assert.Equal(t, 1959, birthYears.Earliest)
	assert.Equal(t, 1992, birthYears.MostRecent)
	assert.Equal(t, 1992, birthYears.MostCommon)
}

func TestBirthYearsNotAvailable(t *testing.T) {
	withoutColumn := NewUserStats(false, false)
	withoutColumn.UpdateStats(trip.TripRecord{UserType: "Subscriber"})
	_, available := withoutColumn.BirthYears()
	assert.False(t, available)

	allBlank := NewUserStats(false, true)
	allBlank.UpdateStats(trip.TripRecord{UserType: "Subscriber"})
	_, available = allBlank.BirthYears()
	assert.False(t, available)
}
