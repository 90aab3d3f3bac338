// Package tiltpolicy composes prefTilt and mode into the effective tilt and
// the arc-contribution weight map used only by the ranking path (§4.9).
// Baseline Computed values are never touched by this package — only
// suggestion_pack's reorder/replacement ranking consumes its output.
package tiltpolicy

import (
	"github.com/ideadate/journey-engine/pkg/ideadate/arcmodel"
	"github.com/ideadate/journey-engine/pkg/ideadate/mathx"
	"github.com/ideadate/journey-engine/pkg/ideadate/model"
)

// ModeProfile is a named preset's default tilt and display label.
type ModeProfile struct {
	DefaultTilt model.PrefTilt
	Label       string
}

// modeProfiles is the fixed table of mode defaults (§6: "mode carries a
// fixed default tilt and label"). The exact tilt triples are a design
// decision documented in DESIGN.md: the spec leaves their values open, so
// each was chosen to read naturally against the mode's name.
var modeProfiles = map[model.IdeaDateMode]ModeProfile{
	model.ModeDefault: {
		DefaultTilt: model.PrefTilt{Vibe: 0, Walking: 0, Peak: 0},
		Label:       "Default",
	},
	model.ModeTouristDay: {
		DefaultTilt: model.PrefTilt{Vibe: 1, Walking: -1, Peak: 1},
		Label:       "Tourist Day",
	},
	model.ModeFamily: {
		DefaultTilt: model.PrefTilt{Vibe: -1, Walking: 1, Peak: -1},
		Label:       "Family",
	},
	model.ModeAnniversaryIntimate: {
		DefaultTilt: model.PrefTilt{Vibe: 1, Walking: 0, Peak: 1},
		Label:       "Anniversary, Intimate",
	},
	model.ModeFirstDateLowPressure: {
		DefaultTilt: model.PrefTilt{Vibe: -1, Walking: 1, Peak: -1},
		Label:       "First Date, Low Pressure",
	},
}

// ProfileForMode returns the named mode's default tilt and label, falling
// back to the neutral default profile for an unrecognized mode.
func ProfileForMode(mode model.IdeaDateMode) ModeProfile {
	if p, ok := modeProfiles[mode]; ok {
		return p
	}
	return modeProfiles[model.ModeDefault]
}

// EffectiveTilt returns the mode's default tilt unless the plan specifies a
// non-neutral prefTilt, in which case the plan's tilt wins entirely (§4.9).
func EffectiveTilt(profile model.PlanProfile) model.PrefTilt {
	tilt := profile.PrefTilt.Clamp()
	if !tilt.IsNeutral() {
		return tilt
	}
	return ProfileForMode(profile.Mode).DefaultTilt
}

// WeightMap derives the arc-contribution weight map from an effective tilt
// (§4.9's five weight formulas, each clamped to its stated range).
func WeightMap(tilt model.PrefTilt) arcmodel.Weights {
	walking := float64(tilt.Walking)
	vibe := float64(tilt.Vibe)

	return arcmodel.Weights{
		TransitionSmoothness: mathx.Clamp(1-0.08*walking, 0.9, 1.16),
		PeakAlignment:        mathx.Clamp(1+0.16*vibe, 0.84, 1.16),
		TaperIntegrity:       1,
		FatigueImpact:        mathx.Clamp(1+0.10*walking, 0.9, 1.1),
		FrictionImpact:       mathx.Clamp(1-0.16*walking, 0.84, 1.16),
	}
}

// IdealPeakShift returns the peak-shift component of the tilt, used by
// narrative composition's peak-oriented note.
func IdealPeakShift(tilt model.PrefTilt) int {
	return tilt.Peak
}

// AsFloatMap exposes the weight map under its field names, for telemetry
// snapshots (§6 "weight_map ... snapshots").
func AsFloatMap(w arcmodel.Weights) map[string]float64 {
	return map[string]float64{
		"transitionSmoothness": w.TransitionSmoothness,
		"peakAlignment":        w.PeakAlignment,
		"taperIntegrity":       w.TaperIntegrity,
		"fatigueImpact":        w.FatigueImpact,
		"frictionImpact":       w.FrictionImpact,
	}
}
