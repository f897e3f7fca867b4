package services

import (
	"time"

	"github.com/terraincognita07/haven/internal/analytics"
	"github.com/terraincognita07/haven/internal/records"
	"github.com/terraincognita07/haven/internal/storage"
)

const groundingSessionsKey = "groundingSessions"

// GroundingStep is one stage of the 5-4-3-2-1 senses exercise. The catalog
// ships as data; walking through it is the caller's concern.
type GroundingStep struct {
	Count       int
	Sense       string
	Instruction string
	Examples    []string
}

func GroundingSteps() []GroundingStep {
	return []GroundingStep{
		{Count: 5, Sense: "Sight", Instruction: "Name 5 things you can see", Examples: []string{"A plant on the windowsill", "The pattern on the wall", "Light coming through the window"}},
		{Count: 4, Sense: "Touch", Instruction: "Name 4 things you can touch", Examples: []string{"The texture of your clothes", "The surface you are sitting on", "The temperature of the air"}},
		{Count: 3, Sense: "Hearing", Instruction: "Name 3 things you can hear", Examples: []string{"Traffic outside", "Your own breathing", "A clock ticking"}},
		{Count: 2, Sense: "Smell", Instruction: "Name 2 things you can smell", Examples: []string{"Fresh air", "Coffee or tea nearby"}},
		{Count: 1, Sense: "Taste", Instruction: "Name 1 thing you can taste", Examples: []string{"The taste in your mouth", "Take a sip of water and notice the taste"}},
	}
}

// GroundingService records completed sessions, one dated entry per
// completion. Multiple completions on the same day all count.
type GroundingService struct {
	sessions *records.Series[string]
}

func NewGroundingService(store storage.Store) *GroundingService {
	return &GroundingService{sessions: records.NewSeries[string](store, groundingSessionsKey)}
}

func (service *GroundingService) Complete(now time.Time) error {
	return service.sessions.Append(Today(now))
}

func (service *GroundingService) Sessions() []string {
	return service.sessions.Values()
}

type GroundingStats struct {
	TotalSessions int
	CurrentStreak int
}

func (service *GroundingService) Stats(now time.Time) GroundingStats {
	sessions := service.sessions.Values()
	return GroundingStats{
		TotalSessions: len(sessions),
		CurrentStreak: analytics.CurrentStreak(sessions, now),
	}
}
