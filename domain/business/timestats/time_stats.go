package timestats

import (
	"time"

	"bikeshare/domain/entities/trip"
)

// TimeStats collects the frequency of travel times. Modes break ties by
// keeping the value seen first in file order
type TimeStats struct {
	monthCounts map[time.Month]int
	monthOrder  []time.Month
	dayCounts   map[time.Weekday]int
	dayOrder    []time.Weekday
	hourCounts  map[int]int
	hourOrder   []int
}

func NewTimeStats() *TimeStats {
	return &TimeStats{
		monthCounts: make(map[time.Month]int),
		dayCounts:   make(map[time.Weekday]int),
		hourCounts:  make(map[int]int),
	}
}

// UpdateStats records the travel time of one trip
func (ts *TimeStats) UpdateStats(tripRecord trip.TripRecord) {
	if _, seen := ts.monthCounts[tripRecord.Month]; !seen {
		ts.monthOrder = append(ts.monthOrder, tripRecord.Month)
	}
	ts.monthCounts[tripRecord.Month]++

	if _, seen := ts.dayCounts[tripRecord.Weekday]; !seen {
		ts.dayOrder = append(ts.dayOrder, tripRecord.Weekday)
	}
	ts.dayCounts[tripRecord.Weekday]++

	if _, seen := ts.hourCounts[tripRecord.StartHour]; !seen {
		ts.hourOrder = append(ts.hourOrder, tripRecord.StartHour)
	}
	ts.hourCounts[tripRecord.StartHour]++
}

// BusiestMonth returns the most frequent month and its count.
// ok is false when no trip was recorded
func (ts *TimeStats) BusiestMonth() (month time.Month, count int, ok bool) {
	for _, m := range ts.monthOrder {
		if ts.monthCounts[m] > count {
			month, count, ok = m, ts.monthCounts[m], true
		}
	}
	return month, count, ok
}

// BusiestDay returns the most frequent weekday and its count.
// ok is false when no trip was recorded
func (ts *TimeStats) BusiestDay() (day time.Weekday, count int, ok bool) {
	for _, d := range ts.dayOrder {
		if ts.dayCounts[d] > count {
			day, count, ok = d, ts.dayCounts[d], true
		}
	}
	return day, count, ok
}

// RushHour returns the most frequent start hour (0-23) and its count.
// ok is false when no trip was recorded
func (ts *TimeStats) RushHour() (hour int, count int, ok bool) {
	for _, h := range ts.hourOrder {
		if ts.hourCounts[h] > count {
			hour, count, ok = h, ts.hourCounts[h], true
		}
	}
	return hour, count, ok
}
