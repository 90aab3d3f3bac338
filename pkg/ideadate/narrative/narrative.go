// Package narrative composes a suggestion's three narrative streams —
// structural, constraint, and tilt — from fixed, priority-ordered clause
// tables (§4.10). Every composed string is capped at 160 characters and two
// lines, and never contains a raw digit or bracket (telemetry identifiers
// leak through neither stream).
package narrative

import (
	"strings"

	"github.com/ideadate/journey-engine/pkg/ideadate/model"
	"github.com/ideadate/journey-engine/pkg/ideadate/tiltpolicy"
)

const maxLen = 160
const maxLines = 2

// Compose fills in a suggestion's Meta narrative fields in place, deriving
// them from the suggestion's kind, reason code, constraint delta
// (Meta.ConstraintDelta), and the effective tilt in force when it was
// generated.
func Compose(s *model.Suggestion, tilt model.PrefTilt) {
	if s.Meta == nil {
		s.Meta = &model.SuggestionMeta{}
	}
	s.Meta.StructuralNarrative = clamp(structuralNarrative(*s))
	s.Meta.ConstraintNarrative = clamp(constraintNarrative(*s))
	s.Meta.TiltNote = clamp(tiltNarrative(tilt))
}

// structuralNarrative picks a clause describing what changed, in priority
// order: reorder first, then the replacement reason codes.
func structuralNarrative(s model.Suggestion) string {
	switch s.Kind {
	case model.SuggestionReorder:
		switch s.ReasonCode {
		case "reduce_friction":
			return "Reordering these stops cuts down backtracking and long transfers."
		case "arc_smoothing":
			return "Moving this stop smooths the energy arc across the evening."
		default:
			return "Swapping the order better matches the intended vibe."
		}
	case model.SuggestionReplacement:
		switch s.ReasonCode {
		case "resolve_constraint":
			return "Swapping this stop clears a constraint the current plan trips."
		case "arc_smoothing":
			return "This replacement lifts the weakest point in the energy arc."
		case "reorder_repair":
			return "Reordering and swapping one stop together repairs the weak point."
		default:
			return "This replacement aligns better with the stated intent."
		}
	default:
		return "This change improves the journey."
	}
}

// constraintNarrative returns one of two fixed sentences chosen by the sign
// of the suggestion's constraint delta (positive: a risk is resolved;
// negative: risk increases), or an empty string when the suggestion carries
// no constraint delta or a zero one.
func constraintNarrative(s model.Suggestion) string {
	if s.Meta == nil || s.Meta.ConstraintDelta == nil || *s.Meta.ConstraintDelta == 0 {
		return ""
	}
	if *s.Meta.ConstraintDelta > 0 {
		return "This also resolves a flagged risk in the current plan."
	}
	return "This trades off a small increase in flagged risk for a better arc."
}

// tiltNarrative names the effective tilt in force, or an empty string under
// a neutral tilt (nothing to report).
func tiltNarrative(tilt model.PrefTilt) string {
	if tilt.IsNeutral() {
		return ""
	}
	var parts []string
	if tilt.Vibe != 0 {
		if tilt.Vibe > 0 {
			parts = append(parts, "leaning toward a livelier vibe")
		} else {
			parts = append(parts, "leaning toward a calmer vibe")
		}
	}
	if tilt.Walking != 0 {
		if tilt.Walking > 0 {
			parts = append(parts, "favoring less walking")
		} else {
			parts = append(parts, "favoring more active transitions")
		}
	}
	if shift := tiltpolicy.IdealPeakShift(tilt); shift != 0 {
		if shift > 0 {
			parts = append(parts, "shifting the energy peak later")
		} else {
			parts = append(parts, "shifting the energy peak earlier")
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "Tilted preferences in play: " + strings.Join(parts, ", ") + "."
}

// clamp enforces the 160-character / two-line cap and strips digits and
// brackets so no raw telemetry identifier leaks into user-facing text.
func clamp(s string) string {
	s = stripLeakage(s)

	lines := strings.SplitN(s, "\n", maxLines+1)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	s = strings.Join(lines, "\n")

	if len(s) > maxLen {
		s = strings.TrimSpace(s[:maxLen])
	}
	return s
}

func stripLeakage(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			continue
		case r == '[' || r == ']' || r == '{' || r == '}':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
