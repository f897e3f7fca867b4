package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/haven/internal/models"
	"github.com/terraincognita07/haven/internal/storage"
)

func TestSymptomServiceLogValidation(t *testing.T) {
	service := NewSymptomService(storage.NewMemory())

	cases := []struct {
		name  string
		entry models.SymptomEntry
	}{
		{"bad date", models.SymptomEntry{Date: "yesterday"}},
		{"cramps above range", models.SymptomEntry{Date: "2024-03-01", Cramps: 11}},
		{"cramps negative", models.SymptomEntry{Date: "2024-03-01", Cramps: -1}},
		{"unknown flow", models.SymptomEntry{Date: "2024-03-01", Flow: "torrential"}},
		{"unknown symptom", models.SymptomEntry{Date: "2024-03-01", Symptoms: []string{"Vertigo"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := service.Log(tc.entry); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestSymptomServiceLogAcceptsCatalogValues(t *testing.T) {
	service := NewSymptomService(storage.NewMemory())

	entry := models.SymptomEntry{
		Date:     "2024-03-01",
		Mood:     "🙂 Good",
		Flow:     "Light",
		Cramps:   3,
		Symptoms: []string{"Headache", "Fatigue"},
		Notes:    "mild day",
	}
	if err := service.Log(entry); err != nil {
		t.Fatalf("log failed: %v", err)
	}

	entries := service.Entries()
	if len(entries) != 1 || entries[0].Flow != "Light" {
		t.Fatalf("expected stored entry, got %#v", entries)
	}
}

func TestSymptomServiceInsights(t *testing.T) {
	service := NewSymptomService(storage.NewMemory())

	if got := service.Insights(); got.TotalEntries != 0 || got.AverageCramps != 0 || got.MostCommonMood != "" {
		t.Fatalf("expected empty insights, got %#v", got)
	}

	entries := []models.SymptomEntry{
		{Date: "2024-03-01", Mood: "🙂 Good", Cramps: 2},
		{Date: "2024-03-02", Mood: "😔 Low", Cramps: 4},
		{Date: "2024-03-03", Mood: "🙂 Good", Cramps: 6},
		{Date: "2024-03-04", Cramps: 8},
	}
	for _, entry := range entries {
		if err := service.Log(entry); err != nil {
			t.Fatalf("log failed: %v", err)
		}
	}

	insights := service.Insights()
	if insights.AverageCramps != 5 {
		t.Fatalf("expected average cramps 5, got %v", insights.AverageCramps)
	}
	if insights.MostCommonMood != "🙂 Good" {
		t.Fatalf("expected most common mood, got %q", insights.MostCommonMood)
	}
	if insights.TotalEntries != 4 {
		t.Fatalf("expected 4 entries, got %d", insights.TotalEntries)
	}
}
