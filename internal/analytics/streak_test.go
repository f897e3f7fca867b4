package analytics

import (
	"testing"
	"time"
)

func TestCurrentStreak(t *testing.T) {
	today := time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name  string
		dates []string
		want  int
	}{
		{"no sessions", nil, 0},
		{"single session today", []string{"2024-03-10"}, 1},
		{"three consecutive days ending today", []string{"2024-03-08", "2024-03-09", "2024-03-10"}, 3},
		{"streak ended yesterday still counts", []string{"2024-03-08", "2024-03-09"}, 2},
		{"gap breaks the streak", []string{"2024-03-06", "2024-03-09", "2024-03-10"}, 2},
		{"old sessions only", []string{"2024-02-01", "2024-02-02"}, 0},
		{"duplicate dates count once", []string{"2024-03-10", "2024-03-10"}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CurrentStreak(tc.dates, today)
			if got != tc.want {
				t.Fatalf("expected streak %d, got %d", tc.want, got)
			}
		})
	}
}
