// Package rank orders a suggestion set for presentation (§4.8): suggestions
// rank by normalized arc-contribution delta, with a small diversity penalty
// that demotes suggestions touching an over-represented venue family when
// two candidates are otherwise near-equal.
package rank

import (
	"sort"

	"github.com/ideadate/journey-engine/pkg/ideadate/constraint"
	"github.com/ideadate/journey-engine/pkg/ideadate/mathx"
	"github.com/ideadate/journey-engine/pkg/ideadate/model"
)

// DiversityWeight caps the diversity penalty applied to a suggestion whose
// touched family has already appeared earlier in family-occurrence order;
// each earlier occurrence adds 0.002, up to this cap
// (§4.8: "w_div * familyCount, weight capped at 0.01").
const DiversityWeight = 0.01

// NearEqualScoreEpsilon is the tie threshold below which the diversity
// penalty and legacy pass order decide between two suggestions.
const NearEqualScoreEpsilon = 0.0005

// passRank orders suggestion kinds/reason codes for the legacy fallback
// comparator, applied only once normalized score and diversity tie (§4.8:
// "fall back to legacy pass order, then lexicographic id").
var passRank = map[string]int{
	"reduce_friction":    0,
	"arc_smoothing":       1,
	"intent_alignment":    2,
	"resolve_constraint":  3,
	"reorder_repair":      4,
}

type scored struct {
	suggestion model.Suggestion
	score      float64
	family     string
}

// Rank returns suggestions sorted best-first. plan is the baseline plan,
// used to classify each suggestion's touched family for the diversity
// penalty.
func Rank(suggestions []model.Suggestion, plan model.Plan) []model.Suggestion {
	if len(suggestions) <= 1 {
		out := make([]model.Suggestion, len(suggestions))
		copy(out, suggestions)
		return out
	}

	items := make([]scored, len(suggestions))
	for i, s := range suggestions {
		items[i] = scored{
			suggestion: s,
			score:      mathx.RoundN(normalizedDelta(s), 6),
			family:     familyOf(s, plan),
		}
	}

	familyOccurrence := map[string]int{}
	penalties := make([]float64, len(items))
	for i, it := range items {
		if it.family == "" {
			continue
		}
		occurrence := familyOccurrence[it.family]
		familyOccurrence[it.family] = occurrence + 1
		penalties[i] = mathx.Clamp(float64(occurrence)*0.002, 0, DiversityWeight)
	}

	sort.SliceStable(items, func(a, b int) bool {
		sa := items[a].score - penalties[a]
		sb := items[b].score - penalties[b]
		if diff := sa - sb; diff > NearEqualScoreEpsilon || diff < -NearEqualScoreEpsilon {
			return sa > sb
		}

		ra, haveA := passRank[items[a].suggestion.ReasonCode]
		rb, haveB := passRank[items[b].suggestion.ReasonCode]
		if !haveA {
			ra = len(passRank)
		}
		if !haveB {
			rb = len(passRank)
		}
		if ra != rb {
			return ra < rb
		}

		return items[a].suggestion.ID < items[b].suggestion.ID
	})

	out := make([]model.Suggestion, len(items))
	for i, it := range items {
		out[i] = it.suggestion
	}
	return out
}

func normalizedDelta(s model.Suggestion) float64 {
	if s.ArcImpact != nil {
		return *s.ArcImpact
	}
	return s.Impact.Delta
}

// familyOf classifies the venue family a suggestion touches: the new place
// for a replacement, or the existing subject stop's place for a reorder
// (reorders touch no new venue, so they fall back to the subject's current
// family — a documented design decision, since §4.8 doesn't define
// family for move-only suggestions).
func familyOf(s model.Suggestion, plan model.Plan) string {
	if s.NewPlace != nil {
		return constraint.ClassifyFamily(s.NewPlace.Types, s.NewPlace.Name)
	}
	for _, stop := range plan.Stops {
		if stop.ID == s.SubjectStopID {
			if stop.PlaceLite != nil {
				return constraint.ClassifyFamily(stop.PlaceLite.Types, stop.Name)
			}
			return constraint.ClassifyFamily(nil, stop.Name)
		}
	}
	return ""
}
