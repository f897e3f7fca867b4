package services

import (
	"github.com/terraincognita07/haven/internal/analytics"
	"github.com/terraincognita07/haven/internal/models"
	"github.com/terraincognita07/haven/internal/records"
	"github.com/terraincognita07/haven/internal/storage"
)

const moodEntriesKey = "moodEntries"

// moodSummaryWindow matches the tracker's weekly-average card.
const moodSummaryWindow = 7

type MoodService struct {
	entries *records.Collection[models.MoodEntry]
}

func NewMoodService(store storage.Store) *MoodService {
	return &MoodService{entries: records.NewCollection[models.MoodEntry](store, moodEntriesKey)}
}

// Log saves the entry for its date, replacing any entry already saved that
// day.
func (service *MoodService) Log(entry models.MoodEntry) error {
	if err := validateDate(entry.Date); err != nil {
		return err
	}
	for _, scale := range []struct {
		name  string
		value int
	}{
		{"mood", entry.Mood},
		{"energy", entry.Energy},
		{"anxiety", entry.Anxiety},
	} {
		if scale.value < 1 || scale.value > 10 {
			return invalidf("%s must be between 1 and 10, got %d", scale.name, scale.value)
		}
	}
	return service.entries.UpsertByDate(entry)
}

func (service *MoodService) Entries() []models.MoodEntry {
	return service.entries.Records()
}

// Recent returns the last n entries, newest first.
func (service *MoodService) Recent(n int) []models.MoodEntry {
	entries := service.entries.Records()
	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}

type MoodSummary struct {
	Mood    float64
	Energy  float64
	Anxiety float64
	Entries int
}

// WeeklySummary is the rolling average of each scale across the last seven
// entries in insertion order. An empty history yields all zeros.
func (service *MoodService) WeeklySummary() MoodSummary {
	entries := service.entries.Records()

	moods := make([]int, 0, len(entries))
	energies := make([]int, 0, len(entries))
	anxieties := make([]int, 0, len(entries))
	for _, entry := range entries {
		moods = append(moods, entry.Mood)
		energies = append(energies, entry.Energy)
		anxieties = append(anxieties, entry.Anxiety)
	}

	return MoodSummary{
		Mood:    analytics.RollingAverage(moods, moodSummaryWindow),
		Energy:  analytics.RollingAverage(energies, moodSummaryWindow),
		Anxiety: analytics.RollingAverage(anxieties, moodSummaryWindow),
		Entries: len(entries),
	}
}

// MoodEmoji maps a 1-10 mood score onto the tracker's emoji bands.
func MoodEmoji(mood int) string {
	switch {
	case mood <= 2:
		return "😢"
	case mood <= 4:
		return "😔"
	case mood <= 6:
		return "😐"
	case mood <= 8:
		return "🙂"
	default:
		return "😊"
	}
}
