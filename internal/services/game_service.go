package services

import (
	"github.com/terraincognita07/haven/internal/analytics"
	"github.com/terraincognita07/haven/internal/records"
	"github.com/terraincognita07/haven/internal/storage"
)

const bubblePopStatsKey = "bubblePopStats"

// GameService keeps the bubble-game score history: append-only, one integer
// per finished session.
type GameService struct {
	scores *records.Series[int]
}

func NewGameService(store storage.Store) *GameService {
	return &GameService{scores: records.NewSeries[int](store, bubblePopStatsKey)}
}

func (service *GameService) Record(score int) error {
	if score < 0 {
		return invalidf("score must not be negative, got %d", score)
	}
	return service.scores.Append(score)
}

func (service *GameService) Scores() []int {
	return service.scores.Values()
}

type GameStats struct {
	GamesPlayed  int
	BestScore    int
	AverageScore float64
}

func (service *GameService) Stats() GameStats {
	scores := service.scores.Values()
	return GameStats{
		GamesPlayed:  len(scores),
		BestScore:    analytics.BestScore(scores),
		AverageScore: analytics.RollingAverage(scores, 0),
	}
}
