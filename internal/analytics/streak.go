package analytics

import "time"

const dateLayout = "2006-01-02"

// CurrentStreak counts consecutive calendar days with at least one session,
// walking back from today. A streak that ended yesterday still counts until
// today's session is missed for good, so the walk may start one day back.
func CurrentStreak(sessionDates []string, today time.Time) int {
	seen := make(map[string]bool, len(sessionDates))
	for _, date := range sessionDates {
		seen[date] = true
	}
	if len(seen) == 0 {
		return 0
	}

	day := dateOnly(today)
	if !seen[day.Format(dateLayout)] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for seen[day.Format(dateLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
