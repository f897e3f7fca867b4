package analytics

type Phase string

const (
	PhaseUnknown    Phase = "unknown"
	PhaseMenstrual  Phase = "menstrual"
	PhaseFollicular Phase = "follicular"
	PhaseOvulation  Phase = "ovulation"
	PhaseLuteal     Phase = "luteal"
)

// CyclePhase classifies a day-of-cycle number. Menstrual takes precedence
// for days 1-5, so the follicular phase effectively starts at day 6. Days
// past 28 stay luteal: a long cycle still classifies.
func CyclePhase(dayOfCycle int) Phase {
	switch {
	case dayOfCycle < 1:
		return PhaseUnknown
	case dayOfCycle <= 5:
		return PhaseMenstrual
	case dayOfCycle <= 13:
		return PhaseFollicular
	case dayOfCycle <= 16:
		return PhaseOvulation
	default:
		return PhaseLuteal
	}
}

// PhaseGuidance is the wellness text shipped with each phase.
type PhaseGuidance struct {
	Phase       Phase
	Title       string
	Description string
	Tips        []string
}

func GuidanceFor(phase Phase) PhaseGuidance {
	for _, guidance := range PhaseGuidanceCatalog() {
		if guidance.Phase == phase {
			return guidance
		}
	}
	return GuidanceFor(PhaseFollicular)
}

func PhaseGuidanceCatalog() []PhaseGuidance {
	return []PhaseGuidance{
		{
			Phase:       PhaseMenstrual,
			Title:       "Menstrual Phase",
			Description: "Rest and renewal (Days 1-5)",
			Tips: []string{
				"Rest and gentle movement",
				"Use heat therapy for cramps",
				"Eat magnesium-rich foods",
				"Practice mindfulness",
			},
		},
		{
			Phase:       PhaseFollicular,
			Title:       "Follicular Phase",
			Description: "Energy building phase (Days 1-13)",
			Tips: []string{
				"Great time to start new projects",
				"Focus on strength training",
				"Eat iron-rich foods",
				"Stay hydrated",
			},
		},
		{
			Phase:       PhaseOvulation,
			Title:       "Ovulation Phase",
			Description: "Peak energy phase (Days 14-16)",
			Tips: []string{
				"Perfect for social activities",
				"High-intensity workouts work well",
				"Focus on communication",
				"Optimize nutrition",
			},
		},
		{
			Phase:       PhaseLuteal,
			Title:       "Luteal Phase",
			Description: "Slow down phase (Days 17-28)",
			Tips: []string{
				"Focus on self-care",
				"Gentle yoga and stretching",
				"Reduce caffeine intake",
				"Prioritize sleep",
			},
		},
	}
}
