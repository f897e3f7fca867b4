package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/haven/internal/storage"
)

func TestGameServiceRecord(t *testing.T) {
	service := NewGameService(storage.NewMemory())

	if err := service.Record(-1); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for a negative score, got %v", err)
	}
	if err := service.Record(0); err != nil {
		t.Fatalf("a zero score is a finished game, got %v", err)
	}
}

func TestGameServiceStats(t *testing.T) {
	store := storage.NewMemory()
	service := NewGameService(store)

	if got := service.Stats(); got.GamesPlayed != 0 || got.BestScore != 0 || got.AverageScore != 0 {
		t.Fatalf("expected empty stats, got %#v", got)
	}

	for _, score := range []int{12, 40, 20} {
		if err := service.Record(score); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	stats := service.Stats()
	if stats.GamesPlayed != 3 || stats.BestScore != 40 || stats.AverageScore != 24 {
		t.Fatalf("unexpected stats %#v", stats)
	}

	reloaded := NewGameService(store)
	if got := reloaded.Stats(); got.BestScore != 40 {
		t.Fatalf("expected persisted scores, got %#v", got)
	}
}
