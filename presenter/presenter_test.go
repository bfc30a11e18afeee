package presenter

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bikeshare/aggregator"
	"bikeshare/domain/entities/criteria"
	"bikeshare/domain/entities/trip"
)

func TestFormatHour(t *testing.T) {
	tests := []struct {
		hour     int
		expected string
	}{
		{hour: 0, expected: "0 AM"},
		{hour: 9, expected: "9 AM"},
		{hour: 11, expected: "11 AM"},
		{hour: 12, expected: "12 PM"},
		{hour: 17, expected: "17 PM"},
		{hour: 23, expected: "23 PM"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatHour(tt.hour))
	}
}

func TestFormatDurations(t *testing.T) {
	assert.Equal(t, "01h 01m 05s", FormatTotalDuration(3665))
	assert.Equal(t, "00h 00m 59s", FormatTotalDuration(59.9))
	assert.Equal(t, "05m 00s", FormatAverageDuration(300))
	assert.Equal(t, "00m 42s", FormatAverageDuration(42.7))
}

func TestPrintSummary(t *testing.T) {
	dataset := &trip.Dataset{
		City: criteria.CityChicago,
		Records: []trip.TripRecord{
			{
				Month: time.January, Weekday: time.Monday, StartHour: 17,
				StartStation: "Canal St", EndStation: "State St",
				Duration: 300, UserType: "Subscriber",
			},
			{
				Month: time.January, Weekday: time.Monday, StartHour: 17,
				StartStation: "Canal St", EndStation: "State St",
				Duration: 600, UserType: "Customer",
			},
		},
	}
	summary := aggregator.Aggregate(dataset)

	var output bytes.Buffer
	NewPresenter(&output, 5).PrintSummary(summary, criteria.Criteria{City: criteria.CityChicago})

	text := output.String()
	assert.Contains(t, text, "Busiest Month: January")
	assert.Contains(t, text, "Busiest Day: Monday")
	assert.Contains(t, text, "Rush Hour: 17 PM")
	assert.Contains(t, text, "Most popular start station: Canal St, Count: 2")
	assert.Contains(t, text, "Most frequent route: Canal St -> State St, Count: 2")
	assert.Contains(t, text, "Total travel time: 00h 15m 00s")
	assert.Contains(t, text, "Average trip duration: 07m 30s")
	assert.Contains(t, text, "Subscriber: 1")
	assert.Contains(t, text, "Gender data not available for this city.")
	assert.Contains(t, text, "Birth year data not available for this city.")
}

func TestPrintSummaryEmptyDataset(t *testing.T) {
	summary := aggregator.Aggregate(&trip.Dataset{City: criteria.CityWashington})

	var output bytes.Buffer
	NewPresenter(&output, 5).PrintSummary(summary, criteria.Criteria{City: criteria.CityWashington})

	text := output.String()
	assert.Contains(t, text, "No trips matched the selected filters.")
	assert.NotContains(t, text, "Busiest Month")
}

func TestPrintRawPage(t *testing.T) {
	dataset := &trip.Dataset{City: criteria.CityChicago}
	for i := 0; i < 7; i++ {
		dataset.Records = append(dataset.Records, trip.TripRecord{
			StartTime:    time.Date(2017, time.January, 2, 9, i, 0, 0, time.UTC),
			EndTime:      time.Date(2017, time.January, 2, 9, i+10, 0, 0, time.UTC),
			Duration:     600,
			StartStation: "Canal St",
			EndStation:   "State St",
			UserType:     "Subscriber",
		})
	}

	var output bytes.Buffer
	p := NewPresenter(&output, 5)

	assert.Equal(t, 5, p.PrintRawPage(dataset, 0))
	assert.Equal(t, 2, p.PrintRawPage(dataset, 5))
	assert.Equal(t, 0, p.PrintRawPage(dataset, 7))

	assert.Contains(t, output.String(), "Canal St | State St | Subscriber")
}
