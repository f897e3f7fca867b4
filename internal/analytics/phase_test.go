package analytics

import "testing"

func TestCyclePhase(t *testing.T) {
	cases := []struct {
		day  int
		want Phase
	}{
		{0, PhaseUnknown},
		{-3, PhaseUnknown},
		{1, PhaseMenstrual},
		{5, PhaseMenstrual},
		{6, PhaseFollicular},
		{13, PhaseFollicular},
		{14, PhaseOvulation},
		{16, PhaseOvulation},
		{17, PhaseLuteal},
		{28, PhaseLuteal},
		{35, PhaseLuteal},
	}

	for _, tc := range cases {
		if got := CyclePhase(tc.day); got != tc.want {
			t.Fatalf("day %d: expected %s, got %s", tc.day, tc.want, got)
		}
	}
}

func TestGuidanceFor(t *testing.T) {
	guidance := GuidanceFor(PhaseMenstrual)
	if guidance.Phase != PhaseMenstrual {
		t.Fatalf("expected menstrual guidance, got %s", guidance.Phase)
	}
	if guidance.Title == "" || len(guidance.Tips) == 0 {
		t.Fatalf("expected populated guidance, got %#v", guidance)
	}

	// Unknown phases fall back to the follicular card.
	fallback := GuidanceFor(PhaseUnknown)
	if fallback.Phase != PhaseFollicular {
		t.Fatalf("expected follicular fallback, got %s", fallback.Phase)
	}
}
