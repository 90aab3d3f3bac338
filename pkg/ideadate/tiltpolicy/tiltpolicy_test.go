package tiltpolicy

import (
	"testing"

	"github.com/ideadate/journey-engine/pkg/ideadate/model"
)

func TestEffectiveTiltNeutralFallsBackToModeDefault(t *testing.T) {
	profile := model.PlanProfile{Mode: model.ModeFamily}
	got := EffectiveTilt(profile)
	want := ProfileForMode(model.ModeFamily).DefaultTilt
	if got != want {
		t.Errorf("EffectiveTilt = %+v, want %+v", got, want)
	}
}

func TestEffectiveTiltExplicitTiltWinsOverMode(t *testing.T) {
	profile := model.PlanProfile{Mode: model.ModeFamily, PrefTilt: model.PrefTilt{Vibe: 1, Walking: 1, Peak: 1}}
	got := EffectiveTilt(profile)
	want := model.PrefTilt{Vibe: 1, Walking: 1, Peak: 1}
	if got != want {
		t.Errorf("EffectiveTilt = %+v, want %+v", got, want)
	}
}

func TestProfileForModeUnknownFallsBackToDefault(t *testing.T) {
	got := ProfileForMode(model.IdeaDateMode("not_a_real_mode"))
	want := ProfileForMode(model.ModeDefault)
	if got != want {
		t.Errorf("ProfileForMode(unknown) = %+v, want the default profile %+v", got, want)
	}
}

func TestWeightMapNeutralTiltIsAllOnes(t *testing.T) {
	w := WeightMap(model.PrefTilt{})
	if w.TransitionSmoothness != 1 || w.PeakAlignment != 1 || w.TaperIntegrity != 1 || w.FatigueImpact != 1 || w.FrictionImpact != 1 {
		t.Errorf("WeightMap(neutral) = %+v, want all-ones", w)
	}
}

func TestWeightMapTaperIntegrityNeverTilts(t *testing.T) {
	w := WeightMap(model.PrefTilt{Vibe: 1, Walking: 1, Peak: 1})
	if w.TaperIntegrity != 1 {
		t.Errorf("TaperIntegrity = %v, want fixed at 1 regardless of tilt", w.TaperIntegrity)
	}
}

func TestWeightMapWithinClampRange(t *testing.T) {
	for _, vibe := range []int{-1, 0, 1} {
		for _, walking := range []int{-1, 0, 1} {
			w := WeightMap(model.PrefTilt{Vibe: vibe, Walking: walking, Peak: 0})
			if w.TransitionSmoothness < 0.9 || w.TransitionSmoothness > 1.16 {
				t.Errorf("TransitionSmoothness out of range: %v", w.TransitionSmoothness)
			}
			if w.PeakAlignment < 0.84 || w.PeakAlignment > 1.16 {
				t.Errorf("PeakAlignment out of range: %v", w.PeakAlignment)
			}
			if w.FatigueImpact < 0.9 || w.FatigueImpact > 1.1 {
				t.Errorf("FatigueImpact out of range: %v", w.FatigueImpact)
			}
			if w.FrictionImpact < 0.84 || w.FrictionImpact > 1.16 {
				t.Errorf("FrictionImpact out of range: %v", w.FrictionImpact)
			}
		}
	}
}

func TestIdealPeakShiftMatchesTiltPeak(t *testing.T) {
	if got := IdealPeakShift(model.PrefTilt{Peak: 1}); got != 1 {
		t.Errorf("IdealPeakShift = %d, want 1", got)
	}
}

func TestAsFloatMapHasFiveKeys(t *testing.T) {
	m := AsFloatMap(WeightMap(model.PrefTilt{}))
	want := []string{"transitionSmoothness", "peakAlignment", "taperIntegrity", "fatigueImpact", "frictionImpact"}
	if len(m) != len(want) {
		t.Fatalf("len(m) = %d, want %d", len(m), len(want))
	}
	for _, k := range want {
		if _, ok := m[k]; !ok {
			t.Errorf("missing key %q", k)
		}
	}
}
