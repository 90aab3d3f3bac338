package scoring

import (
	"testing"

	"github.com/ideadate/journey-engine/pkg/ideadate/model"
)

func uniformVector(v float64) model.IntentVector {
	return model.IntentVector{Intimacy: v, Energy: v, Novelty: v, Discovery: v, Pretense: v, Pressure: v}
}

func TestStopIntentScorePerfectMatch(t *testing.T) {
	v := uniformVector(0.6)
	importance := uniformVector(1)
	if got := StopIntentScore(v, v, importance); got != 1 {
		t.Errorf("StopIntentScore = %v, want 1", got)
	}
}

func TestStopIntentScoreWorstMismatch(t *testing.T) {
	got := StopIntentScore(uniformVector(0), uniformVector(1), uniformVector(1))
	if got != 0 {
		t.Errorf("StopIntentScore = %v, want 0", got)
	}
}

func TestStopIntentScoreZeroImportanceFloorsAtMinWeight(t *testing.T) {
	// All axes at zero importance still contribute via the minimum axis
	// weight floor, so the result is not the degenerate 0/0 case.
	got := StopIntentScore(uniformVector(0.5), uniformVector(0.5), uniformVector(0))
	if got != 1 {
		t.Errorf("StopIntentScore = %v, want 1 (perfect match even at floor weight)", got)
	}
}

func TestJourneyIntentScoreEmptyPlan(t *testing.T) {
	if got := JourneyIntentScore(nil, uniformVector(0.5), uniformVector(1)); got != 0 {
		t.Errorf("JourneyIntentScore(empty) = %v, want 0", got)
	}
}

func TestJourneyIntentScoreAverages(t *testing.T) {
	target := uniformVector(0.5)
	importance := uniformVector(1)
	stops := []model.Stop{
		{IdeaDate: model.IdeaDateProfile{IntentVector: uniformVector(0.5)}},
		{IdeaDate: model.IdeaDateProfile{IntentVector: uniformVector(0)}},
	}
	got := JourneyIntentScore(stops, target, importance)
	if got <= 0 || got >= 1 {
		t.Errorf("JourneyIntentScore = %v, want strictly between 0 and 1", got)
	}
}
