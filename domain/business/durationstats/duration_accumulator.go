package durationstats

// DurationAccumulator collects data about trip durations
// + Counter: counts the amount of trips collected
// + TotalSeconds: sum of the durations of the collected trips
type DurationAccumulator struct {
	Counter      int     `json:"counter"`
	TotalSeconds float64 `json:"total_seconds"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(durationSeconds float64) {
	da.Counter += 1
	da.TotalSeconds += durationSeconds
}

func (da *DurationAccumulator) GetCounter() int {
	return da.Counter
}

func (da *DurationAccumulator) GetTotalSeconds() float64 {
	return da.TotalSeconds
}

// GetAverageSeconds returns the mean trip duration.
// ok is false when no trip was recorded
func (da *DurationAccumulator) GetAverageSeconds() (average float64, ok bool) {
	if da.Counter == 0 {
		return 0, false
	}
	return da.TotalSeconds / float64(da.Counter), true
}
