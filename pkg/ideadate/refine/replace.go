package refine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ideadate/journey-engine/pkg/ideadate/arcmodel"
	"github.com/ideadate/journey-engine/pkg/ideadate/compute"
	"github.com/ideadate/journey-engine/pkg/ideadate/mathx"
	"github.com/ideadate/journey-engine/pkg/ideadate/model"
	"github.com/ideadate/journey-engine/pkg/ideadate/patch"
	"github.com/ideadate/journey-engine/pkg/ideadate/resolver"
)

// Discard reasons, in the canonical ordered enum used for telemetry (§4.7).
const (
	DiscardDuplicatePlaceID         = "duplicate_placeId"
	DiscardInvariantViolation       = "invariant_violation"
	DiscardIncreasesHardConstraints = "increases_hard_constraints"
	DiscardNoArcImprovement         = "no_arc_improvement"
	DiscardWorsensJourneyScore      = "worsens_journeyScore"
	DiscardIncreasesViolations      = "increases_violations"
	DiscardRoleMismatch             = "role_mismatch"
	DiscardMissingStopProfile       = "missing_stop_profile"
)

// DiscardReasonOrder is the canonical ordering of discard reasons.
var DiscardReasonOrder = []string{
	DiscardDuplicatePlaceID,
	DiscardInvariantViolation,
	DiscardIncreasesHardConstraints,
	DiscardNoArcImprovement,
	DiscardWorsensJourneyScore,
	DiscardIncreasesViolations,
	DiscardRoleMismatch,
	DiscardMissingStopProfile,
}

// radiiMeters are the search radii tried in order for each pain-ranked stop
// (§4.7): 0.5km, 1.0km, 2.0km.
var radiiMeters = []float64{500, 1000, 2000}

// Pass names, surfaced in telemetry's pass_used field.
const (
	PassPrimary       = "primary"
	PassRepair        = "repair"
	PassReorderRepair = "reorder_repair"
)

const (
	maxPrimarySeen       = 60
	maxRepairSeen        = 90
	maxReorderRepairSeen = 12
	maxReplacementsKept  = 2
)

// nearEqualEpsilon is the generic small threshold used wherever the spec
// calls for "a strictly positive improvement" without naming a magnitude.
const nearEqualEpsilon = 1e-4

// ReplacementStats is the telemetry payload for one replacement search run.
type ReplacementStats struct {
	PassUsed       string
	PassBreakdown  map[string]model.PassStats
	DiscardCounts  map[string]int
	ReorderRepair  model.ReorderRepairStats
	CandidateCount int
	EvaluatedCount int
	DiscardedCount int
}

func newStats() *ReplacementStats {
	return &ReplacementStats{
		PassBreakdown: map[string]model.PassStats{},
		DiscardCounts: map[string]int{},
	}
}

func (s *ReplacementStats) recordDiscard(pass, reason string) {
	s.DiscardCounts[reason]++
	ps := s.PassBreakdown[pass]
	ps.Discarded++
	s.PassBreakdown[pass] = ps
	s.DiscardedCount++
}

func (s *ReplacementStats) recordSeen(pass string) {
	ps := s.PassBreakdown[pass]
	ps.Seen++
	s.PassBreakdown[pass] = ps
	s.EvaluatedCount++
}

func (s *ReplacementStats) recordKept(pass string) {
	ps := s.PassBreakdown[pass]
	ps.Kept++
	s.PassBreakdown[pass] = ps
}

type evalResult struct {
	placeID         string
	subjectID       string
	op              model.PatchOp
	after           model.Live
	deltaJourney    float64
	deltaArc        float64
	deltaViolations int
	deltaHard       int
	deltaSoft       int
	deltaFriction   float64
	roleMismatch    bool
}

// FindReplacementSuggestions runs the three-pass replacement ladder (§4.7)
// and returns at most 2 accepted suggestions plus telemetry stats.
func FindReplacementSuggestions(
	engine *compute.Engine,
	before model.Live,
	weights arcmodel.Weights,
	res resolver.CandidateResolver,
	vibeID model.VibeID,
	now time.Time,
) ([]model.Suggestion, ReplacementStats) {
	if res == nil {
		res = resolver.LocalMockResolver{}
	}
	stats := newStats()

	painOrder := painRankedStops(before)

	var accepted []model.Suggestion
	seenPlaceIDs := make(map[string]bool)

	runPass := func(pass string, maxSeen int, accept func(evalResult) (bool, string)) {
		var qualifying []evalResult
		qualifiedPlaceIDs := make(map[string]bool)

	stopLoop:
		for _, stopIdx := range painOrder {
			subject := before.Plan.Stops[stopIdx]
			for _, radius := range radiiMeters {
				candidates := gatherCandidates(res, model.RoleMain, subject, before.Plan, radius, vibeID, now)
				for _, cand := range candidates {
					if stats.PassBreakdown[pass].Seen >= maxSeen {
						break stopLoop
					}
					stats.recordSeen(pass)
					stats.CandidateCount++

					if seenPlaceIDs[cand.PlaceID] || qualifiedPlaceIDs[cand.PlaceID] {
						stats.recordDiscard(pass, DiscardDuplicatePlaceID)
						continue
					}

					result, reason, ok := evaluateCandidate(engine, before, weights, subject, cand, now)
					if !ok {
						stats.recordDiscard(pass, reason)
						continue
					}

					accepted_, discardReason := accept(result)
					if !accepted_ {
						stats.recordDiscard(pass, discardReason)
						continue
					}

					qualifiedPlaceIDs[cand.PlaceID] = true
					qualifying = append(qualifying, result)
				}
			}
		}

		// Best-within-pass selection (§4.7): rank qualifying candidates by
		// descending ΔarcContribution (0.015 near-equal tolerance), then
		// ΔhardConstraints, ΔsoftConstraints, Δviolations, ΔfrictionPenalty,
		// ΔjourneyScore, then ascending placeId — rather than keeping
		// whichever candidates happened to be evaluated first.
		sort.SliceStable(qualifying, func(i, j int) bool {
			a, b := qualifying[i], qualifying[j]
			if !mathx.NearEqual(a.deltaArc, b.deltaArc, 0.015) {
				return a.deltaArc > b.deltaArc
			}
			if a.deltaHard != b.deltaHard {
				return a.deltaHard > b.deltaHard
			}
			if a.deltaSoft != b.deltaSoft {
				return a.deltaSoft > b.deltaSoft
			}
			if a.deltaViolations != b.deltaViolations {
				return a.deltaViolations > b.deltaViolations
			}
			if a.deltaFriction != b.deltaFriction {
				return a.deltaFriction > b.deltaFriction
			}
			if a.deltaJourney != b.deltaJourney {
				return a.deltaJourney > b.deltaJourney
			}
			return a.placeID < b.placeID
		})

		for _, result := range qualifying {
			if len(accepted) >= maxReplacementsKept {
				return
			}
			seenPlaceIDs[result.placeID] = true
			stats.recordKept(pass)
			accepted = append(accepted, buildReplacementSuggestion(before, result))
		}
	}

	runPass(PassPrimary, maxPrimarySeen, func(r evalResult) (bool, string) {
		if r.deltaJourney < -0.01 {
			return false, DiscardWorsensJourneyScore
		}
		improved := r.deltaArc > 0.01 || r.deltaViolations > 0 || r.deltaFriction > nearEqualEpsilon || r.deltaJourney > nearEqualEpsilon
		if !improved {
			return false, DiscardNoArcImprovement
		}
		return true, ""
	})

	if len(accepted) > 0 {
		stats.PassUsed = PassPrimary
	} else {
		runPass(PassRepair, maxRepairSeen, func(r evalResult) (bool, string) {
			if r.deltaViolations <= 0 {
				return false, DiscardIncreasesViolations
			}
			tolerance := -0.03
			if r.deltaViolations >= 2 {
				tolerance = -0.05
			}
			if r.deltaJourney < tolerance {
				return false, DiscardWorsensJourneyScore
			}
			return true, ""
		})
		if len(accepted) > 0 {
			stats.PassUsed = PassRepair
		}
	}

	if len(accepted) == 0 {
		rrSug, rrStats := findReorderRepair(engine, before, weights, now)
		stats.ReorderRepair = rrStats
		if rrSug != nil {
			accepted = append(accepted, *rrSug)
			stats.PassUsed = PassReorderRepair
		}
	}

	if len(accepted) > maxReplacementsKept {
		accepted = accepted[:maxReplacementsKept]
	}

	return accepted, *stats
}

// painRankedStops ranks stop indices by ascending arc contribution (the
// stop contributing least is most "painful" and tried first), ties broken
// by stop id ascending.
func painRankedStops(live model.Live) []int {
	idx := make([]int, len(live.Plan.Stops))
	for i := range idx {
		idx[i] = i
	}
	contribs := live.Computed.ArcContributionByIndex
	sort.SliceStable(idx, func(a, b int) bool {
		ca, cb := 1.0, 1.0
		if idx[a] < len(contribs) {
			ca = contribs[idx[a]]
		}
		if idx[b] < len(contribs) {
			cb = contribs[idx[b]]
		}
		if ca != cb {
			return ca < cb
		}
		return live.Plan.Stops[idx[a]].ID < live.Plan.Stops[idx[b]].ID
	})
	return idx
}

func gatherCandidates(res resolver.CandidateResolver, role model.Role, subject model.Stop, plan model.Plan, radius float64, vibeID model.VibeID, now time.Time) []resolver.Candidate {
	ctx := context.TODO()
	candidates, err := res.SearchCandidates(ctx, role, subject, plan, radius, vibeID, resolver.MaxLimit)
	if err != nil || len(candidates) < 3 {
		mock, _ := resolver.LocalMockResolver{}.SearchCandidates(ctx, role, subject, plan, radius, vibeID, resolver.MaxLimit)
		candidates = append(candidates, mock...)
	}

	dedup := make(map[string]resolver.Candidate, len(candidates))
	for _, c := range candidates {
		if _, ok := dedup[c.PlaceID]; !ok {
			dedup[c.PlaceID] = c
		}
	}
	out := make([]resolver.Candidate, 0, len(dedup))
	for _, c := range dedup {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlaceID < out[j].PlaceID })
	if len(out) > 16 {
		out = out[:16]
	}
	return out
}

func evaluateCandidate(engine *compute.Engine, before model.Live, weights arcmodel.Weights, subject model.Stop, cand resolver.Candidate, now time.Time) (evalResult, string, bool) {
	if cand.Name == "" || cand.PlaceID == "" {
		return evalResult{}, DiscardMissingStopProfile, false
	}

	profile := subject.IdeaDate
	profile.SourceGoogleType = firstOr(cand.Types, profile.SourceGoogleType)
	profile.EnergyLevel = energyHeuristic(cand.Types)

	roleMismatch := false
	if !isMockPlaceID(cand.PlaceID) {
		roleMismatch = !roleAcceptsEnergy(subject.IdeaDate.Role, profile.EnergyLevel)
	}

	placeLite := &model.PlaceLite{
		PlaceID:          cand.PlaceID,
		Name:             cand.Name,
		Types:            cand.Types,
		PriceLevel:       cand.PriceLevel,
		EditorialSummary: cand.EditorialSummary,
		LatLng:           &model.LatLng{Lat: cand.Lat, Lng: cand.Lng},
	}

	op := model.NewReplaceStop(subject.ID, cand.Name, placeLite, nil, &profile)

	patched, err := patch.Apply(before.Plan, []model.PatchOp{op}, true)
	if err != nil {
		return evalResult{}, DiscardInvariantViolation, false
	}

	after, err := engine.RecomputeLive(patched, now)
	if err != nil {
		return evalResult{}, DiscardInvariantViolation, false
	}

	_, beforeArcTotal := compute.TiltedArcContribution(before.Plan, before.Travel, weights)
	_, afterArcTotal := compute.TiltedArcContribution(after.Plan, after.Travel, weights)

	result := evalResult{
		placeID:         cand.PlaceID,
		subjectID:       subject.ID,
		op:              op,
		after:           after,
		deltaJourney:    mathx.RoundN(after.Computed.JourneyScore-before.Computed.JourneyScore, 6),
		deltaArc:        mathx.RoundN(afterArcTotal-beforeArcTotal, 6),
		deltaViolations: len(before.Computed.ConstraintViolations) - len(after.Computed.ConstraintViolations),
		deltaHard:       before.Computed.ConstraintHardCount - after.Computed.ConstraintHardCount,
		deltaSoft:       before.Computed.ConstraintSoftCount - after.Computed.ConstraintSoftCount,
		deltaFriction:   before.Computed.FrictionPenalty - after.Computed.FrictionPenalty,
		roleMismatch:    roleMismatch,
	}

	if result.deltaHard < 0 {
		return result, DiscardIncreasesHardConstraints, false
	}
	if roleMismatch {
		return result, DiscardRoleMismatch, false
	}

	return result, "", true
}

func buildReplacementSuggestion(before model.Live, r evalResult) model.Suggestion {
	arcImpact := r.deltaArc
	constraintDelta := r.deltaHard + r.deltaSoft
	return model.Suggestion{
		ID:         fmt.Sprintf("replace:%s:%s", r.subjectID, r.placeID),
		Kind:       model.SuggestionReplacement,
		ReasonCode: replacementReasonCode(r),
		PatchOps:   []model.PatchOp{r.op},
		NewPlace:   r.op.Replace.NewPlaceLite,
		Impact: model.Impact{
			Before:    before.Computed.JourneyScore,
			After:     r.after.Computed.JourneyScore,
			Delta:     r.deltaJourney,
			Before100: before.Computed.JourneyScore100,
			After100:  r.after.Computed.JourneyScore100,
		},
		ArcImpact:     &arcImpact,
		Preview:       true,
		SubjectStopID: r.subjectID,
		Meta: &model.SuggestionMeta{
			ConstraintDelta: &constraintDelta,
		},
	}
}

func replacementReasonCode(r evalResult) string {
	switch {
	case r.deltaViolations > 0:
		return "resolve_constraint"
	case r.deltaArc > 0.01:
		return "arc_smoothing"
	default:
		return "intent_alignment"
	}
}

// reorderRepairCandidate is one enumerated permutation of the plan's stop
// order, evaluated as its own reorder (no replacement attached).
type reorderRepairCandidate struct {
	ops             []model.PatchOp
	after           model.Live
	deltaViolations int
	deltaArc        float64
	deltaJourney    float64
	deltaHard       int
	signature       string
}

// findReorderRepair is the third pass (§4.7): a standalone reorder search,
// distinct from FindReorderSuggestion's 0.08-gated primitive. It enumerates
// adjacent swaps for plans over 5 stops, or every permutation of the stop
// order for plans of 5 or fewer, and accepts any candidate whose hard
// constraint count doesn't worsen and that improves violations, arc
// contribution, or journey score by more than nearEqualEpsilon. The best
// qualifying candidate, by descending arc, hard-constraint, violation and
// journey deltas and then ascending signature, becomes a single reorder
// suggestion. Capped at maxReorderRepairSeen evaluated candidates.
func findReorderRepair(engine *compute.Engine, before model.Live, weights arcmodel.Weights, now time.Time) (*model.Suggestion, model.ReorderRepairStats) {
	n := len(before.Plan.Stops)
	stats := model.ReorderRepairStats{}
	if n < 2 {
		return nil, stats
	}

	currentIDs := make([]string, n)
	for i, s := range before.Plan.Stops {
		currentIDs[i] = s.ID
	}

	var orderings [][]string
	if n > 5 {
		for i := 0; i < n-1; i++ {
			swapped := append([]string(nil), currentIDs...)
			swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
			orderings = append(orderings, swapped)
		}
	} else {
		orderings = permutationsOf(currentIDs)
	}

	_, beforeArcTotal := compute.TiltedArcContribution(before.Plan, before.Travel, weights)

	var qualifying []reorderRepairCandidate
	for _, target := range orderings {
		if stats.Evaluated >= maxReorderRepairSeen {
			break
		}
		if sameOrder(target, currentIDs) {
			continue
		}
		ops := reorderOpsForTargetOrder(currentIDs, target)
		if len(ops) == 0 {
			continue
		}
		stats.Evaluated++

		patched, err := patch.Apply(before.Plan, ops, false)
		if err != nil {
			continue
		}
		after, err := engine.RecomputeLive(patched, now)
		if err != nil {
			continue
		}

		_, afterArcTotal := compute.TiltedArcContribution(after.Plan, after.Travel, weights)
		deltaArc := mathx.RoundN(afterArcTotal-beforeArcTotal, 6)
		deltaJourney := mathx.RoundN(after.Computed.JourneyScore-before.Computed.JourneyScore, 6)
		deltaViolations := len(before.Computed.ConstraintViolations) - len(after.Computed.ConstraintViolations)
		deltaHard := before.Computed.ConstraintHardCount - after.Computed.ConstraintHardCount

		stats.TopDeltas = append(stats.TopDeltas, deltaArc)

		if deltaHard < 0 {
			continue
		}
		if !(deltaViolations > 0 || deltaArc > nearEqualEpsilon || deltaJourney > nearEqualEpsilon) {
			continue
		}

		stats.Kept++
		qualifying = append(qualifying, reorderRepairCandidate{
			ops:             ops,
			after:           after,
			deltaViolations: deltaViolations,
			deltaArc:        deltaArc,
			deltaJourney:    deltaJourney,
			deltaHard:       deltaHard,
			signature:       signatureOfPlan(after.Plan),
		})
	}

	if len(qualifying) == 0 {
		return nil, stats
	}

	sort.SliceStable(qualifying, func(i, j int) bool {
		a, b := qualifying[i], qualifying[j]
		if !mathx.NearEqual(a.deltaArc, b.deltaArc, 0.015) {
			return a.deltaArc > b.deltaArc
		}
		if a.deltaHard != b.deltaHard {
			return a.deltaHard > b.deltaHard
		}
		if a.deltaViolations != b.deltaViolations {
			return a.deltaViolations > b.deltaViolations
		}
		if a.deltaJourney != b.deltaJourney {
			return a.deltaJourney > b.deltaJourney
		}
		return a.signature < b.signature
	})

	best := qualifying[0]
	sug := &model.Suggestion{
		ID:         fmt.Sprintf("reorder_repair:%s", best.signature),
		Kind:       model.SuggestionReorder,
		ReasonCode: reorderReasonCode(before.Computed, best.after.Computed),
		PatchOps:   best.ops,
		Impact: model.Impact{
			Before:    before.Computed.JourneyScore,
			After:     best.after.Computed.JourneyScore,
			Delta:     best.deltaJourney,
			Before100: before.Computed.JourneyScore100,
			After100:  best.after.Computed.JourneyScore100,
		},
		Preview: true,
	}
	return sug, stats
}

// permutationsOf returns every permutation of ids, deterministic for a
// given input (used only for reorder-repair's exhaustive ≤5-stop search).
func permutationsOf(ids []string) [][]string {
	n := len(ids)
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	var out [][]string
	var permute func(k int)
	permute = func(k int) {
		if k == n {
			perm := make([]string, n)
			for i, idx := range indices {
				perm[i] = ids[idx]
			}
			out = append(out, perm)
			return
		}
		for i := k; i < n; i++ {
			indices[k], indices[i] = indices[i], indices[k]
			permute(k + 1)
			indices[k], indices[i] = indices[i], indices[k]
		}
	}
	permute(0)
	return out
}

func sameOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// reorderOpsForTargetOrder returns the moveStop ops that, applied in order
// via patch.Apply, transform current's stop order into target's.
func reorderOpsForTargetOrder(current, target []string) []model.PatchOp {
	working := append([]string(nil), current...)
	var ops []model.PatchOp
	for i, want := range target {
		idx := indexOfID(working, want)
		if idx < 0 || idx == i {
			continue
		}
		ops = append(ops, model.NewMoveStop(want, i))
		without := append(append([]string{}, working[:idx]...), working[idx+1:]...)
		working = append(append(append([]string{}, without[:i]...), want), without[i:]...)
	}
	return ops
}

func indexOfID(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func firstOr(vals []string, fallback string) string {
	if len(vals) > 0 {
		return vals[0]
	}
	return fallback
}

// energyHeuristic infers a plausible energy level from a venue's types, used
// only to build a replacement candidate's idea-date profile, because the
// resolver contract carries no energy signal of its own.
func energyHeuristic(types []string) float64 {
	for _, t := range types {
		switch t {
		case "night_club", "bar", "casino":
			return 0.85
		case "restaurant", "pub":
			return 0.6
		case "museum", "art_gallery", "park", "botanical_garden":
			return 0.4
		case "cafe", "bakery", "ice_cream_shop":
			return 0.3
		}
	}
	return 0.5
}

func roleAcceptsEnergy(role model.Role, energy float64) bool {
	switch role {
	case model.RoleWindDown:
		return energy <= 0.6
	case model.RoleStart:
		return energy <= 0.7
	default:
		return true
	}
}

func isMockPlaceID(placeID string) bool {
	return len(placeID) >= 5 && placeID[:5] == "mock:"
}
