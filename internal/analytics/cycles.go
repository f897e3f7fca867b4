package analytics

import (
	"sort"
	"time"
)

const (
	// DefaultCycleLength backs predictions until enough cycles are observed.
	DefaultCycleLength = 28

	lutealPhaseDays  = 14
	recentCycleCount = 6
	cycleGapDays     = 5
)

// CycleStats is derived from the period-marked calendar days: observed
// lengths plus the forward predictions rendered on the calendar.
type CycleStats struct {
	CurrentCycleDay      int
	CurrentPhase         Phase
	AverageCycleLength   float64
	AveragePeriodLength  float64
	MedianCycleLength    int
	LastPeriodStart      time.Time
	NextPeriodStart      time.Time
	OvulationDate        time.Time
	FertilityWindowStart time.Time
	FertilityWindowEnd   time.Time
}

// BuildCycleStats derives observed averages and predictions from the set of
// period-marked days. An empty input yields zero stats with an unknown
// phase.
func BuildCycleStats(periodDays []time.Time, now time.Time) CycleStats {
	stats := CycleStats{CurrentPhase: PhaseUnknown}

	days := normalizeDays(periodDays)
	starts := DetectCycleStarts(days)
	if len(starts) == 0 {
		return stats
	}

	recentLengths := tailInts(cycleLengths(starts), recentCycleCount)
	if len(recentLengths) > 0 {
		stats.AverageCycleLength = averageInts(recentLengths)
		stats.MedianCycleLength = medianInt(recentLengths)
	}

	periodLengths := tailInts(periodLengthsFor(starts, days), recentCycleCount)
	if len(periodLengths) > 0 {
		stats.AveragePeriodLength = averageInts(periodLengths)
	}

	stats.LastPeriodStart = starts[len(starts)-1]

	predictionLength := stats.MedianCycleLength
	if predictionLength == 0 {
		predictionLength = DefaultCycleLength
	}
	stats.NextPeriodStart = stats.LastPeriodStart.AddDate(0, 0, predictionLength)
	stats.OvulationDate = stats.NextPeriodStart.AddDate(0, 0, -lutealPhaseDays)
	stats.FertilityWindowStart = stats.OvulationDate.AddDate(0, 0, -5)
	stats.FertilityWindowEnd = stats.OvulationDate.AddDate(0, 0, 1)

	today := dateOnly(now)
	if !today.Before(stats.LastPeriodStart) {
		stats.CurrentCycleDay = daysBetween(stats.LastPeriodStart, today) + 1
		stats.CurrentPhase = CyclePhase(stats.CurrentCycleDay)
	}

	return stats
}

// DetectCycleStarts finds the first day of each cycle: a period day
// preceded by a gap of at least cycleGapDays non-period days starts a new
// cycle.
func DetectCycleStarts(periodDays []time.Time) []time.Time {
	days := normalizeDays(periodDays)
	if len(days) == 0 {
		return nil
	}

	starts := []time.Time{days[0]}
	previous := days[0]
	for _, day := range days[1:] {
		if daysBetween(previous, day)-1 >= cycleGapDays {
			starts = append(starts, day)
		}
		previous = day
	}
	return starts
}

// CycleLengths returns the observed day counts between consecutive cycle
// starts.
func CycleLengths(periodDays []time.Time) []int {
	return cycleLengths(DetectCycleStarts(periodDays))
}

func periodLengthsFor(starts []time.Time, days []time.Time) []int {
	marked := make(map[string]bool, len(days))
	for _, day := range days {
		marked[day.Format(dateLayout)] = true
	}

	lengths := make([]int, 0, len(starts))
	for _, start := range starts {
		length := 0
		for day := start; marked[day.Format(dateLayout)]; day = day.AddDate(0, 0, 1) {
			length++
		}
		if length > 0 {
			lengths = append(lengths, length)
		}
	}
	return lengths
}

func normalizeDays(periodDays []time.Time) []time.Time {
	days := make([]time.Time, 0, len(periodDays))
	for _, day := range periodDays {
		days = append(days, dateOnly(day))
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	return days
}

func cycleLengths(starts []time.Time) []int {
	if len(starts) < 2 {
		return nil
	}
	lengths := make([]int, 0, len(starts)-1)
	for i := 1; i < len(starts); i++ {
		lengths = append(lengths, daysBetween(starts[i-1], starts[i]))
	}
	return lengths
}

func daysBetween(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours() / 24)
}

func tailInts(values []int, n int) []int {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

func averageInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}

func medianInt(values []int) int {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]int, 0, len(values))
	sorted = append(sorted, values...)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return int(float64(sorted[mid-1]+sorted[mid])/2 + 0.5)
}
