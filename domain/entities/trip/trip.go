package trip

import "time"

// TripRecord struct that contains one row of bikeshare usage data
// + StartTime: time in which the trip begins
// + EndTime: time in which the trip ends
// + Duration: duration of the trip in seconds
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: category of the user, e.g. Subscriber or Customer
// + Gender: gender of the user, empty when the dataset has no Gender column
// + BirthYear: birth year of the user, zero when the dataset has no Birth Year column
// + Month, Weekday, StartHour: derived from StartTime when the dataset is loaded
type TripRecord struct {
	StartTime    time.Time    `json:"start_time"`
	EndTime      time.Time    `json:"end_time"`
	Duration     float64      `json:"duration"`
	StartStation string       `json:"start_station"`
	EndStation   string       `json:"end_station"`
	UserType     string       `json:"user_type"`
	Gender       string       `json:"gender,omitempty"`
	BirthYear    int          `json:"birth_year,omitempty"`
	Month        time.Month   `json:"month"`
	Weekday      time.Weekday `json:"weekday"`
	StartHour    int          `json:"start_hour"`
}

// Dataset ordered sequence of trips for one city. Records keeps the file order
// of the source CSV; filtering builds a new Dataset and never modifies this one.
// + City: city the trips belong to
// + Records: trips in file order
// + HasGender: true if the source CSV has a Gender column
// + HasBirthYear: true if the source CSV has a Birth Year column
type Dataset struct {
	City         string       `json:"city"`
	Records      []TripRecord `json:"records"`
	HasGender    bool         `json:"has_gender"`
	HasBirthYear bool         `json:"has_birth_year"`
}

func (d *Dataset) Len() int {
	return len(d.Records)
}

func (d *Dataset) IsEmpty() bool {
	return len(d.Records) == 0
}
