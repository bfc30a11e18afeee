package presenter

import (
	"fmt"
	"io"
	"strings"

	"bikeshare/aggregator"
	"bikeshare/domain/entities/criteria"
	"bikeshare/domain/entities/trip"
)

const sectionSeparator = "---------------------------------------------"

// Presenter formats query results as human-readable text. It holds no
// business logic; every value comes already computed in the Summary
type Presenter struct {
	writer      io.Writer
	rawPageSize int
}

func NewPresenter(writer io.Writer, rawPageSize int) *Presenter {
	return &Presenter{
		writer:      writer,
		rawPageSize: rawPageSize,
	}
}

// PrintSummary writes every statistics section of a query result
func (p *Presenter) PrintSummary(summary *aggregator.Summary, crit criteria.Criteria) {
	fmt.Fprintf(p.writer, "\nCalculating statistics ... filters(city = %s, months = %s, days = %s)\n",
		crit.City, crit.MonthsString(), crit.DaysString())

	if summary.TripCount == 0 {
		fmt.Fprintln(p.writer, "\nNo trips matched the selected filters.")
		return
	}

	p.printTimeStats(summary)
	p.printStationStats(summary)
	p.printDurationStats(summary)
	p.printUserStats(summary)
}

func (p *Presenter) printTimeStats(summary *aggregator.Summary) {
	fmt.Fprintln(p.writer, sectionSeparator)

	if month, _, ok := summary.Times.BusiestMonth(); ok {
		fmt.Fprintf(p.writer, "Busiest Month: %s\n", month)
	}
	if day, _, ok := summary.Times.BusiestDay(); ok {
		fmt.Fprintf(p.writer, "Busiest Day: %s\n", day)
	}
	if hour, _, ok := summary.Times.RushHour(); ok {
		fmt.Fprintf(p.writer, "Rush Hour: %s\n", FormatHour(hour))
	}
}

func (p *Presenter) printStationStats(summary *aggregator.Summary) {
	fmt.Fprintln(p.writer, sectionSeparator)

	if station, count, ok := summary.Stations.TopStartStation(); ok {
		fmt.Fprintf(p.writer, "Most popular start station: %s, Count: %v\n", station, count)
	}
	if station, count, ok := summary.Stations.TopEndStation(); ok {
		fmt.Fprintf(p.writer, "Most popular end station: %s, Count: %v\n", station, count)
	}
	if route, count, ok := summary.Stations.TopRoute(); ok {
		fmt.Fprintf(p.writer, "Most frequent route: %s -> %s, Count: %v\n", route.Start, route.End, count)
	}
}

func (p *Presenter) printDurationStats(summary *aggregator.Summary) {
	fmt.Fprintln(p.writer, sectionSeparator)

	fmt.Fprintf(p.writer, "Total travel time: %s\n", FormatTotalDuration(summary.Durations.GetTotalSeconds()))
	if average, ok := summary.Durations.GetAverageSeconds(); ok {
		fmt.Fprintf(p.writer, "Average trip duration: %s\n", FormatAverageDuration(average))
	}
}

func (p *Presenter) printUserStats(summary *aggregator.Summary) {
	fmt.Fprintln(p.writer, sectionSeparator)

	fmt.Fprintln(p.writer, "User Types:")
	for _, typeCount := range summary.Users.TypeCounts() {
		fmt.Fprintf(p.writer, "\t%s: %v\n", typeCount.Value, typeCount.Count)
	}

	if genderCounts, available := summary.Users.GenderCounts(); available {
		fmt.Fprintln(p.writer, "Gender Count:")
		for _, genderCount := range genderCounts {
			fmt.Fprintf(p.writer, "\t%s: %v\n", genderCount.Value, genderCount.Count)
		}
	} else {
		fmt.Fprintln(p.writer, "Gender data not available for this city.")
	}

	if birthYears, available := summary.Users.BirthYears(); available {
		fmt.Fprintf(p.writer, "Birth Year:\n\tOldest: %v\n\tYoungest: %v\n\tMost Common: %v\n",
			birthYears.Earliest, birthYears.MostRecent, birthYears.MostCommon)
	} else {
		fmt.Fprintln(p.writer, "Birth year data not available for this city.")
	}
}

// PrintRawPage writes up to one page of raw trips starting at offset and
// returns the amount of rows written. Zero means the dataset is exhausted
func (p *Presenter) PrintRawPage(dataset *trip.Dataset, offset int) int {
	if offset >= dataset.Len() {
		return 0
	}

	end := offset + p.rawPageSize
	if end > dataset.Len() {
		end = dataset.Len()
	}

	fmt.Fprintln(p.writer)
	for _, tripRecord := range dataset.Records[offset:end] {
		fields := []string{
			tripRecord.StartTime.Format("2006-01-02 15:04:05"),
			tripRecord.EndTime.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%.0f", tripRecord.Duration),
			tripRecord.StartStation,
			tripRecord.EndStation,
			tripRecord.UserType,
		}
		if dataset.HasGender {
			fields = append(fields, tripRecord.Gender)
		}
		if dataset.HasBirthYear {
			fields = append(fields, fmt.Sprintf("%v", tripRecord.BirthYear))
		}
		fmt.Fprintln(p.writer, strings.Join(fields, " | "))
	}

	return end - offset
}

// FormatHour renders an hour of the day the way the summaries show it, e.g. "17 PM"
func FormatHour(hour int) string {
	if hour > 11 {
		return fmt.Sprintf("%v PM", hour)
	}
	return fmt.Sprintf("%v AM", hour)
}

// FormatTotalDuration renders a total amount of seconds as "HHh MMm SSs"
func FormatTotalDuration(totalSeconds float64) string {
	total := int64(totalSeconds)
	hours := total / 3600
	remainder := total % 3600
	minutes := remainder / 60
	seconds := remainder % 60
	return fmt.Sprintf("%02dh %02dm %02ds", hours, minutes, seconds)
}

// FormatAverageDuration renders an amount of seconds as "MMm SSs"
func FormatAverageDuration(averageSeconds float64) string {
	average := int64(averageSeconds)
	minutes := average / 60
	seconds := average % 60
	return fmt.Sprintf("%02dm %02ds", minutes, seconds)
}
