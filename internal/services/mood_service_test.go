package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/haven/internal/models"
	"github.com/terraincognita07/haven/internal/storage"
)

func TestMoodServiceLogValidation(t *testing.T) {
	service := NewMoodService(storage.NewMemory())

	cases := []struct {
		name  string
		entry models.MoodEntry
	}{
		{"bad date", models.MoodEntry{Date: "03/01/2024", Mood: 5, Energy: 5, Anxiety: 5}},
		{"mood below range", models.MoodEntry{Date: "2024-03-01", Mood: 0, Energy: 5, Anxiety: 5}},
		{"energy above range", models.MoodEntry{Date: "2024-03-01", Mood: 5, Energy: 11, Anxiety: 5}},
		{"anxiety below range", models.MoodEntry{Date: "2024-03-01", Mood: 5, Energy: 5, Anxiety: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := service.Log(tc.entry); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	if len(service.Entries()) != 0 {
		t.Fatalf("rejected entries must not be saved, got %d", len(service.Entries()))
	}
}

func TestMoodServiceLogReplacesSameDate(t *testing.T) {
	service := NewMoodService(storage.NewMemory())

	first := models.NewMoodEntry("2024-03-01")
	if err := service.Log(first); err != nil {
		t.Fatalf("log failed: %v", err)
	}

	second := first
	second.Mood = 9
	second.Notes = "felt much better after the walk"
	if err := service.Log(second); err != nil {
		t.Fatalf("log failed: %v", err)
	}

	entries := service.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected one entry per date, got %d", len(entries))
	}
	if entries[0].Mood != 9 || entries[0].Notes != second.Notes {
		t.Fatalf("expected replacement, got %#v", entries[0])
	}
}

func TestMoodServiceRecentNewestFirst(t *testing.T) {
	service := NewMoodService(storage.NewMemory())
	for _, date := range []string{"2024-03-01", "2024-03-02", "2024-03-03"} {
		if err := service.Log(models.NewMoodEntry(date)); err != nil {
			t.Fatalf("log failed: %v", err)
		}
	}

	recent := service.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].Date != "2024-03-03" || recent[1].Date != "2024-03-02" {
		t.Fatalf("expected newest first, got %v then %v", recent[0].Date, recent[1].Date)
	}
}

func TestMoodServiceWeeklySummary(t *testing.T) {
	service := NewMoodService(storage.NewMemory())

	if got := service.WeeklySummary(); got.Mood != 0 || got.Entries != 0 {
		t.Fatalf("expected empty summary, got %#v", got)
	}

	entries := []models.MoodEntry{
		{Date: "2024-03-01", Mood: 4, Energy: 6, Anxiety: 2},
		{Date: "2024-03-02", Mood: 6, Energy: 4, Anxiety: 4},
	}
	for _, entry := range entries {
		if err := service.Log(entry); err != nil {
			t.Fatalf("log failed: %v", err)
		}
	}

	summary := service.WeeklySummary()
	if summary.Mood != 5 || summary.Energy != 5 || summary.Anxiety != 3 {
		t.Fatalf("unexpected averages %#v", summary)
	}
	if summary.Entries != 2 {
		t.Fatalf("expected 2 entries, got %d", summary.Entries)
	}
}

func TestMoodEmoji(t *testing.T) {
	cases := []struct {
		mood int
		want string
	}{
		{1, "😢"},
		{2, "😢"},
		{3, "😔"},
		{5, "😐"},
		{7, "🙂"},
		{9, "😊"},
		{10, "😊"},
	}

	for _, tc := range cases {
		if got := MoodEmoji(tc.mood); got != tc.want {
			t.Fatalf("mood %d: expected %s, got %s", tc.mood, tc.want, got)
		}
	}
}
