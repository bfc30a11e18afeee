package stationstats

import "bikeshare/domain/entities/trip"

// Route pair of stations that identifies one trip path
// + Start: station in which the trips begin
// + End: station in which the trips end
type Route struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// StationStats counts the amount of trips per start station, end station and
// route. Modes break ties by keeping the value seen first in file order
type StationStats struct {
	startCounts map[string]int
	startOrder  []string
	endCounts   map[string]int
	endOrder    []string
	routeCounts map[Route]int
	routeOrder  []Route
}

func NewStationStats() *StationStats {
	return &StationStats{
		startCounts: make(map[string]int),
		endCounts:   make(map[string]int),
		routeCounts: make(map[Route]int),
	}
}

// UpdateStats records the stations of one trip
func (ss *StationStats) UpdateStats(tripRecord trip.TripRecord) {
	if _, seen := ss.startCounts[tripRecord.StartStation]; !seen {
		ss.startOrder = append(ss.startOrder, tripRecord.StartStation)
	}
	ss.startCounts[tripRecord.StartStation]++

	if _, seen := ss.endCounts[tripRecord.EndStation]; !seen {
		ss.endOrder = append(ss.endOrder, tripRecord.EndStation)
	}
	ss.endCounts[tripRecord.EndStation]++

	route := Route{Start: tripRecord.StartStation, End: tripRecord.EndStation}
	if _, seen := ss.routeCounts[route]; !seen {
		ss.routeOrder = append(ss.routeOrder, route)
	}
	ss.routeCounts[route]++
}

// TopStartStation returns the most frequent start station and its count.
// ok is false when no trip was recorded
func (ss *StationStats) TopStartStation() (station string, count int, ok bool) {
	for _, s := range ss.startOrder {
		if ss.startCounts[s] > count {
			station, count, ok = s, ss.startCounts[s], true
		}
	}
	return station, count, ok
}

// TopEndStation returns the most frequent end station and its count.
// ok is false when no trip was recorded
func (ss *StationStats) TopEndStation() (station string, count int, ok bool) {
	for _, s := range ss.endOrder {
		if ss.endCounts[s] > count {
			station, count, ok = s, ss.endCounts[s], true
		}
	}
	return station, count, ok
}

// TopRoute returns the most frequent (start, end) pair and its count.
// ok is false when no trip was recorded
func (ss *StationStats) TopRoute() (route Route, count int, ok bool) {
	for _, r := range ss.routeOrder {
		if ss.routeCounts[r] > count {
			route, count, ok = r, ss.routeCounts[r], true
		}
	}
	return route, count, ok
}
