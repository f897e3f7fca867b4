// Package analytics holds the pure derived-state functions every feature
// recomputes from its collection snapshot: rolling averages, categorical
// modes, streaks, period density and cycle-phase classification.
package analytics

type Number interface {
	~int | ~int64 | ~float64
}

// RollingAverage is the mean of the last window values in insertion order.
// Fewer values than the window averages whatever is available; an empty
// input returns 0 rather than dividing by zero.
func RollingAverage[N Number](values []N, window int) float64 {
	if window > 0 && len(values) > window {
		values = values[len(values)-window:]
	}
	if len(values) == 0 {
		return 0
	}

	var total float64
	for _, value := range values {
		total += float64(value)
	}
	return total / float64(len(values))
}

// MostFrequent is the categorical mode. Ties break toward the value whose
// first occurrence is earliest, so the result is reproducible for any
// insertion order.
func MostFrequent(values []string) string {
	counts := make(map[string]int, len(values))
	order := make([]string, 0, len(values))
	for _, value := range values {
		if counts[value] == 0 {
			order = append(order, value)
		}
		counts[value]++
	}

	best := ""
	bestCount := 0
	for _, value := range order {
		if counts[value] > bestCount {
			best = value
			bestCount = counts[value]
		}
	}
	return best
}

// MinMax returns the extremes of the input. ok is false for an empty input,
// which has no defined extremes.
func MinMax[N Number](values []N) (minimum N, maximum N, ok bool) {
	if len(values) == 0 {
		return minimum, maximum, false
	}

	minimum, maximum = values[0], values[0]
	for _, value := range values[1:] {
		if value < minimum {
			minimum = value
		}
		if value > maximum {
			maximum = value
		}
	}
	return minimum, maximum, true
}

// BestScore is the highest recorded score, 0 when nothing was played yet.
func BestScore(scores []int) int {
	_, best, ok := MinMax(scores)
	if !ok {
		return 0
	}
	return best
}

// PeriodDensity is the fraction of a trailing window covered by
// period-marked days, capped at 1. It feeds the calendar's progress bar.
func PeriodDensity(periodDayCount int, windowDays int) float64 {
	if windowDays <= 0 || periodDayCount <= 0 {
		return 0
	}
	density := float64(periodDayCount) / float64(windowDays)
	if density > 1 {
		return 1
	}
	return density
}
