package criteria

import (
	"fmt"
	"strings"
	"time"

	"bikeshare/utils"
)

const (
	CityChicago     = "chicago"
	CityNewYorkCity = "new_york_city"
	CityWashington  = "washington"
)

// FilterMode tagged variant that tells which restrictions a Criteria carries.
// Every consumer must handle each variant explicitly.
type FilterMode int

const (
	FilterNone FilterMode = iota
	FilterByMonth
	FilterByDay
	FilterByBoth
)

func (fm FilterMode) String() string {
	switch fm {
	case FilterByMonth:
		return "month"
	case FilterByDay:
		return "day"
	case FilterByBoth:
		return "both"
	default:
		return "none"
	}
}

// ValidCities returns the city identifiers with a known dataset
func ValidCities() []string {
	return []string{CityChicago, CityNewYorkCity, CityWashington}
}

// The datasets only cover the first half of the year
var filterableMonths = []time.Month{
	time.January,
	time.February,
	time.March,
	time.April,
	time.May,
	time.June,
}

// Criteria struct that contains the restrictions selected by the user for one query
// + City: city whose dataset must be analyzed
// + Months: months to filter by, empty means every month
// + Days: days of the week to filter by, empty means every day
type Criteria struct {
	City   string         `json:"city"`
	Months []time.Month   `json:"months,omitempty"`
	Days   []time.Weekday `json:"days,omitempty"`
}

// Mode returns the tagged filter variant derived from the populated restriction sets
func (c Criteria) Mode() FilterMode {
	hasMonths := len(c.Months) > 0
	hasDays := len(c.Days) > 0

	if hasMonths && hasDays {
		return FilterByBoth
	}
	if hasMonths {
		return FilterByMonth
	}
	if hasDays {
		return FilterByDay
	}
	return FilterNone
}

// MatchesMonth returns true if the given month passes the month restriction.
// An empty restriction set matches every month.
func (c Criteria) MatchesMonth(month time.Month) bool {
	if len(c.Months) == 0 {
		return true
	}
	for _, m := range c.Months {
		if m == month {
			return true
		}
	}
	return false
}

// MatchesDay returns true if the given weekday passes the day restriction.
// An empty restriction set matches every day.
func (c Criteria) MatchesDay(day time.Weekday) bool {
	if len(c.Days) == 0 {
		return true
	}
	for _, d := range c.Days {
		if d == day {
			return true
		}
	}
	return false
}

func (c Criteria) MonthsString() string {
	if len(c.Months) == 0 {
		return "all"
	}
	names := make([]string, 0, len(c.Months))
	for _, m := range c.Months {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}

func (c Criteria) DaysString() string {
	if len(c.Days) == 0 {
		return "all"
	}
	names := make([]string, 0, len(c.Days))
	for _, d := range c.Days {
		names = append(names, d.String())
	}
	return strings.Join(names, ", ")
}

// ParseCity normalizes the user input and validates it against the known cities.
// Spaces are accepted in place of underscores, e.g. "New York City"
func ParseCity(input string) (string, error) {
	city := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(input)), " ", "_")
	if !utils.ContainsString(city, ValidCities()) {
		return "", fmt.Errorf("%s: %w", input, ErrInvalidCity)
	}
	return city, nil
}

// ParseMonths parses a comma separated list of month names. "all" or an empty
// string return an empty set, which matches every month
func ParseMonths(input string) ([]time.Month, error) {
	tokens, done := splitSelection(input)
	if done {
		return nil, nil
	}

	var months []time.Month
	for _, token := range tokens {
		month, err := parseMonth(token)
		if err != nil {
			return nil, err
		}
		if !containsMonth(month, months) {
			months = append(months, month)
		}
	}
	return months, nil
}

// ParseDays parses a comma separated list of weekday names. "all" or an empty
// string return an empty set, which matches every day
func ParseDays(input string) ([]time.Weekday, error) {
	tokens, done := splitSelection(input)
	if done {
		return nil, nil
	}

	var days []time.Weekday
	for _, token := range tokens {
		day, err := parseDay(token)
		if err != nil {
			return nil, err
		}
		if !containsDay(day, days) {
			days = append(days, day)
		}
	}
	return days, nil
}

// splitSelection splits a comma separated selection into trimmed lowercase
// tokens. The second return value is true when the selection means "no filter"
func splitSelection(input string) ([]string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || input == "all" {
		return nil, true
	}

	var tokens []string
	for _, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			tokens = append(tokens, token)
		}
	}

	if len(tokens) == 0 {
		return nil, true
	}
	return tokens, false
}

func parseMonth(token string) (time.Month, error) {
	for _, month := range filterableMonths {
		if strings.ToLower(month.String()) == token {
			return month, nil
		}
	}
	return 0, fmt.Errorf("%s: %w", token, ErrInvalidMonth)
}

func parseDay(token string) (time.Weekday, error) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if strings.ToLower(day.String()) == token {
			return day, nil
		}
	}
	return 0, fmt.Errorf("%s: %w", token, ErrInvalidDay)
}

func containsMonth(target time.Month, months []time.Month) bool {
	for _, m := range months {
		if m == target {
			return true
		}
	}
	return false
}

func containsDay(target time.Weekday, days []time.Weekday) bool {
	for _, d := range days {
		if d == target {
			return true
		}
	}
	return false
}
