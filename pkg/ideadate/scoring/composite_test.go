package scoring

import "testing"

func TestJourneyScorePerfect(t *testing.T) {
	if got := JourneyScore(1, 0, 0); got != 1 {
		t.Errorf("JourneyScore(1,0,0) = %v, want 1", got)
	}
}

func TestJourneyScoreWorst(t *testing.T) {
	if got := JourneyScore(0, 1, 1); got != 0 {
		t.Errorf("JourneyScore(0,1,1) = %v, want 0", got)
	}
}

func TestJourneyScoreWeighting(t *testing.T) {
	// Intent carries the largest weight (0.58): a plan with perfect intent
	// but maximal fatigue/friction should still score above one with zero
	// intent and zero fatigue/friction penalties (0.58 > 0.22+0.20).
	highIntent := JourneyScore(1, 1, 1)
	noIntent := JourneyScore(0, 0, 0)
	if highIntent <= noIntent {
		t.Errorf("JourneyScore(1,1,1)=%v should exceed JourneyScore(0,0,0)=%v", highIntent, noIntent)
	}
}

func TestJourneyScore100Rounds(t *testing.T) {
	if got := JourneyScore100(0.5); got != 50 {
		t.Errorf("JourneyScore100(0.5) = %v, want 50", got)
	}
}
