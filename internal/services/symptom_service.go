package services

import (
	"slices"

	"github.com/terraincognita07/haven/internal/analytics"
	"github.com/terraincognita07/haven/internal/models"
	"github.com/terraincognita07/haven/internal/records"
	"github.com/terraincognita07/haven/internal/storage"
)

const symptomEntriesKey = "symptomEntries"

type SymptomService struct {
	entries *records.Collection[models.SymptomEntry]
}

func NewSymptomService(store storage.Store) *SymptomService {
	return &SymptomService{entries: records.NewCollection[models.SymptomEntry](store, symptomEntriesKey)}
}

func (service *SymptomService) Log(entry models.SymptomEntry) error {
	if err := validateDate(entry.Date); err != nil {
		return err
	}
	if entry.Cramps < 0 || entry.Cramps > 10 {
		return invalidf("cramps must be between 0 and 10, got %d", entry.Cramps)
	}
	if entry.Flow != "" && !slices.Contains(models.FlowOptions(), entry.Flow) {
		return invalidf("unknown flow label %q", entry.Flow)
	}
	for _, symptom := range entry.Symptoms {
		if !slices.Contains(models.SymptomOptions(), symptom) {
			return invalidf("unknown symptom tag %q", symptom)
		}
	}
	return service.entries.UpsertByDate(entry)
}

func (service *SymptomService) Entries() []models.SymptomEntry {
	return service.entries.Records()
}

// Recent returns the last n entries, newest first.
func (service *SymptomService) Recent(n int) []models.SymptomEntry {
	entries := service.entries.Records()
	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}

type SymptomInsights struct {
	AverageCramps  float64
	MostCommonMood string
	TotalEntries   int
}

// Insights summarizes the whole history: average cramp intensity, the most
// common mood label, and the entry count.
func (service *SymptomService) Insights() SymptomInsights {
	entries := service.entries.Records()

	cramps := make([]int, 0, len(entries))
	moods := make([]string, 0, len(entries))
	for _, entry := range entries {
		cramps = append(cramps, entry.Cramps)
		if entry.Mood != "" {
			moods = append(moods, entry.Mood)
		}
	}

	return SymptomInsights{
		AverageCramps:  analytics.RollingAverage(cramps, 0),
		MostCommonMood: analytics.MostFrequent(moods),
		TotalEntries:   len(entries),
	}
}
