// Package refine implements the reorder and replacement suggestion
// searches (§4.6, §4.7).
package refine

import (
	"fmt"
	"time"

	"github.com/ideadate/journey-engine/pkg/ideadate/compute"
	"github.com/ideadate/journey-engine/pkg/ideadate/mathx"
	"github.com/ideadate/journey-engine/pkg/ideadate/model"
	"github.com/ideadate/journey-engine/pkg/ideadate/patch"
)

// MaxMovePairs is the hard cap on enumerated moveStop(i->j) candidates
// (§4.6).
const MaxMovePairs = 80

// MinReorderDelta is the minimum positive journey-score delta required to
// accept a reorder suggestion.
const MinReorderDelta = 0.08

// ReorderResult holds the accepted reorder suggestion, if any, plus the
// count of candidates evaluated (for telemetry).
type ReorderResult struct {
	Suggestion *model.Suggestion
	Evaluated  int
}

type reorderCandidate struct {
	op     model.PatchOp
	after  model.Live
	delta  float64
}

// FindReorderSuggestion enumerates adjacent swaps and capped moveStop
// pairs, recomputes each, and returns the single best candidate whose
// journey-score delta is positive and at least MinReorderDelta (§4.6).
func FindReorderSuggestion(engine *compute.Engine, before model.Live, now time.Time) ReorderResult {
	n := len(before.Plan.Stops)
	if n < 2 {
		return ReorderResult{}
	}

	var candidates []reorderCandidate

	for i := 0; i < n-1; i++ {
		op := model.NewMoveStop(before.Plan.Stops[i].ID, i+1)
		if c, ok := evaluateReorderCandidate(engine, before, op, now); ok {
			candidates = append(candidates, c)
		}
	}

	count := 0
outer:
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if count >= MaxMovePairs {
				break outer
			}
			op := model.NewMoveStop(before.Plan.Stops[i].ID, j)
			if c, ok := evaluateReorderCandidate(engine, before, op, now); ok {
				candidates = append(candidates, c)
			}
			count++
		}
	}

	evaluated := (n - 1) + count

	var best *reorderCandidate
	for idx := range candidates {
		c := &candidates[idx]
		if c.delta < MinReorderDelta {
			continue
		}
		if best == nil || c.delta > best.delta {
			best = c
		}
	}
	if best == nil {
		return ReorderResult{Evaluated: evaluated}
	}

	reasonCode := reorderReasonCode(before.Computed, best.after.Computed)

	sug := model.Suggestion{
		ID:         fmt.Sprintf("reorder:%s", signatureOfPlan(best.after.Plan)),
		Kind:       model.SuggestionReorder,
		ReasonCode: reasonCode,
		PatchOps:   []model.PatchOp{best.op},
		Impact: model.Impact{
			Before:    before.Computed.JourneyScore,
			After:     best.after.Computed.JourneyScore,
			Delta:     best.delta,
			Before100: before.Computed.JourneyScore100,
			After100:  best.after.Computed.JourneyScore100,
		},
		Preview: true,
	}

	return ReorderResult{Suggestion: &sug, Evaluated: evaluated}
}

func evaluateReorderCandidate(engine *compute.Engine, before model.Live, op model.PatchOp, now time.Time) (reorderCandidate, bool) {
	patched, err := patch.Apply(before.Plan, []model.PatchOp{op}, false)
	if err != nil {
		return reorderCandidate{}, false
	}
	after, err := engine.RecomputeLive(patched, now)
	if err != nil {
		return reorderCandidate{}, false
	}
	delta := mathx.RoundN(after.Computed.JourneyScore-before.Computed.JourneyScore, 6)
	return reorderCandidate{op: op, after: after, delta: delta}, true
}

// reorderReasonCode picks a reason by which score component improved most
// (§4.6).
func reorderReasonCode(before, after model.Computed) string {
	deltaFriction := before.FrictionPenalty - after.FrictionPenalty
	deltaFatigue := before.FatiguePenalty - after.FatiguePenalty

	switch {
	case deltaFriction >= deltaFatigue && deltaFriction > 0.05:
		return "reduce_friction"
	case deltaFatigue > 0.05:
		return "arc_smoothing"
	default:
		return "intent_alignment"
	}
}

// signatureOfPlan returns the final stop-id sequence, used for reorder
// suggestion ids and signatures within refine; suggestpack's semantic
// dedupe (§4.11) builds its own sequence.
func signatureOfPlan(plan model.Plan) string {
	ids := make([]byte, 0, 64)
	for i, s := range plan.Stops {
		if i > 0 {
			ids = append(ids, ',')
		}
		ids = append(ids, s.ID...)
	}
	return string(ids)
}
