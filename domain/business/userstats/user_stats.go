package userstats

import "bikeshare/domain/entities/trip"

// CountByValue one category and the amount of trips that belong to it
// + Value: name of the category, e.g. "Subscriber" or "Male"
// + Count: amount of trips in the category
type CountByValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// BirthYearStats summary of the Birth Year column
// + Earliest: lowest birth year seen (oldest user)
// + MostRecent: highest birth year seen (youngest user)
// + MostCommon: modal birth year, ties broken first-seen in file order
type BirthYearStats struct {
	Earliest   int `json:"earliest"`
	MostRecent int `json:"most_recent"`
	MostCommon int `json:"most_common"`
}

// UserStats counts trips by user type and, when the dataset carries the
// optional demographic columns, by gender and birth year
type UserStats struct {
	hasGender    bool
	hasBirthYear bool

	typeCounts map[string]int
	typeOrder  []string

	genderCounts map[string]int
	genderOrder  []string

	yearCounts map[int]int
	yearOrder  []int
	earliest   int
	mostRecent int
}

func NewUserStats(hasGender bool, hasBirthYear bool) *UserStats {
	return &UserStats{
		hasGender:    hasGender,
		hasBirthYear: hasBirthYear,
		typeCounts:   make(map[string]int),
		genderCounts: make(map[string]int),
		yearCounts:   make(map[int]int),
	}
}

// UpdateStats records the user data of one trip. Blank gender or birth year
// cells are skipped, the way the source datasets leave missing values
func (us *UserStats) UpdateStats(tripRecord trip.TripRecord) {
	if tripRecord.UserType != "" {
		if _, seen := us.typeCounts[tripRecord.UserType]; !seen {
			us.typeOrder = append(us.typeOrder, tripRecord.UserType)
		}
		us.typeCounts[tripRecord.UserType]++
	}

	if us.hasGender && tripRecord.Gender != "" {
		if _, seen := us.genderCounts[tripRecord.Gender]; !seen {
			us.genderOrder = append(us.genderOrder, tripRecord.Gender)
		}
		us.genderCounts[tripRecord.Gender]++
	}

	if us.hasBirthYear && tripRecord.BirthYear != 0 {
		if _, seen := us.yearCounts[tripRecord.BirthYear]; !seen {
			us.yearOrder = append(us.yearOrder, tripRecord.BirthYear)
		}
		us.yearCounts[tripRecord.BirthYear]++

		if us.earliest == 0 || tripRecord.BirthYear < us.earliest {
			us.earliest = tripRecord.BirthYear
		}
		if tripRecord.BirthYear > us.mostRecent {
			us.mostRecent = tripRecord.BirthYear
		}
	}
}

// TypeCounts returns the counts by user type in first-seen order
func (us *UserStats) TypeCounts() []CountByValue {
	return countsInOrder(us.typeCounts, us.typeOrder)
}

// GenderCounts returns the counts by gender in first-seen order.
// available is false when the dataset has no Gender column
func (us *UserStats) GenderCounts() (counts []CountByValue, available bool) {
	if !us.hasGender {
		return nil, false
	}
	return countsInOrder(us.genderCounts, us.genderOrder), true
}

// BirthYears returns the birth year summary.
// available is false when the dataset has no Birth Year column or every cell was blank
func (us *UserStats) BirthYears() (stats BirthYearStats, available bool) {
	if !us.hasBirthYear || len(us.yearOrder) == 0 {
		return BirthYearStats{}, false
	}

	mostCommon, bestCount := 0, 0
	for _, year := range us.yearOrder {
		if us.yearCounts[year] > bestCount {
			mostCommon, bestCount = year, us.yearCounts[year]
		}
	}

	return BirthYearStats{
		Earliest:   us.earliest,
		MostRecent: us.mostRecent,
		MostCommon: mostCommon,
	}, true
}

func countsInOrder(counts map[string]int, order []string) []CountByValue {
	result := make([]CountByValue, 0, len(order))
	for _, value := range order {
		result = append(result, CountByValue{Value: value, Count: counts[value]})
	}
	return result
}
