// Package patch implements the two patch-op variants, moveStop and
// replaceStop, and their invariant-preserving batch applicator (§4.5).
package patch

import (
	"github.com/ideadate/journey-engine/pkg/ideadate/ideaerr"
	"github.com/ideadate/journey-engine/pkg/ideadate/model"
)

// Apply applies ops to plan in order and returns the resulting plan.
//
// When strict is true (non-production builds, and all test code), the
// result is checked against invariants P1 (unique stop ids), P2 (roles
// re-normalized after a move-only batch), P3 (stop count unchanged by a
// replace) and P4 (no new duplicate placeId from a replace), and an
// *ideaerr.Error of kind InvariantViolation is returned if they do not
// hold. When strict is false (production), none of these checks run:
// move-only batches still have their roles re-normalized, but a replaceStop
// that introduces a duplicate placeId is applied rather than rejected, and
// an unknown op kind is ignored.
func Apply(plan model.Plan, ops []model.PatchOp, strict bool) (model.Plan, error) {
	out := plan.Clone()
	startCount := len(out.Stops)
	prePlaceIDCounts := placeIDCounts(out)

	moveOnly := true
	anyReplace := false

	for _, op := range ops {
		switch op.Kind {
		case model.PatchMoveStop:
			applyMoveStop(&out, op.Move)
		case model.PatchReplaceStop:
			applyReplaceStop(&out, op.Replace)
			moveOnly = false
			anyReplace = true
		default:
			if strict {
				return plan, ideaerr.InvariantViolation("unknown patch op kind: " + string(op.Kind))
			}
		}
	}

	if moveOnly {
		renormalizeRoles(&out)
	}

	if !strict {
		return out, nil
	}

	if !out.UniqueStopIDs() {
		return plan, ideaerr.InvariantViolation("duplicate stop ids after patch (P1)")
	}
	if anyReplace && len(out.Stops) != startCount {
		return plan, ideaerr.InvariantViolation("stop count changed by replaceStop (P3)")
	}
	if anyReplace && introducesNewDuplicatePlaceID(prePlaceIDCounts, out) {
		return plan, ideaerr.InvariantViolation("replaceStop introduced a new duplicate placeId (P4)")
	}
	if moveOnly && !out.RolesMatchIndexConvention() {
		return plan, ideaerr.InvariantViolation("roles not re-normalized after move-only batch (P2)")
	}

	return out, nil
}

func applyMoveStop(plan *model.Plan, op *model.MoveStopOp) {
	if op == nil {
		return
	}
	idx := indexOfStop(*plan, op.StopID)
	if idx < 0 {
		return
	}
	stop := plan.Stops[idx]
	stops := append(plan.Stops[:idx:idx], plan.Stops[idx+1:]...)

	n := len(stops) + 1
	to := op.ToIndex
	if to < 0 {
		to = 0
	}
	if to > n-1 {
		to = n - 1
	}

	result := make([]model.Stop, 0, n)
	result = append(result, stops[:to]...)
	result = append(result, stop)
	result = append(result, stops[to:]...)
	plan.Stops = result
}

func applyReplaceStop(plan *model.Plan, op *model.ReplaceStopOp) {
	if op == nil {
		return
	}
	idx := indexOfStop(*plan, op.StopID)
	if idx < 0 {
		return
	}
	s := &plan.Stops[idx]
	originalRole := s.IdeaDate.Role

	if op.NewName != "" {
		s.Name = op.NewName
	}
	if op.NewPlaceRef != nil {
		s.PlaceRef = op.NewPlaceRef
	}
	if op.NewPlaceLite != nil {
		s.PlaceLite = op.NewPlaceLite
	}
	if op.NewIdeaDateProfile != nil {
		s.IdeaDate = *op.NewIdeaDateProfile
	}
	s.IdeaDate.Role = originalRole
}

func indexOfStop(plan model.Plan, id string) int {
	for i, s := range plan.Stops {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func renormalizeRoles(plan *model.Plan) {
	n := len(plan.Stops)
	for i := range plan.Stops {
		plan.Stops[i].IdeaDate.Role = model.RoleForIndex(i, n)
	}
}

func placeIDCounts(plan model.Plan) map[string]int {
	counts := make(map[string]int, len(plan.Stops))
	for _, s := range plan.Stops {
		if id := s.PlaceIDOf(); id != "" {
			counts[id]++
		}
	}
	return counts
}

func introducesNewDuplicatePlaceID(pre map[string]int, out model.Plan) bool {
	post := placeIDCounts(out)
	for id, count := range post {
		if count >= 2 && pre[id] < 2 {
			return true
		}
	}
	return false
}
