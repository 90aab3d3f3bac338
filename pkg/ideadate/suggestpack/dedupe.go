package suggestpack

import (
	"fmt"
	"strings"

	"github.com/ideadate/journey-engine/pkg/ideadate/model"
	"github.com/ideadate/journey-engine/pkg/ideadate/patch"
)

// DedupeBySemanticSignature drops suggestions whose patch ops are
// semantically identical to one already kept, first-occurrence wins
// (§4.11). Two reorder suggestions (from the reorder search or the
// reorder-repair pass) that land on the same final arrangement collapse to
// one.
func DedupeBySemanticSignature(plan model.Plan, suggestions []model.Suggestion) []model.Suggestion {
	seen := make(map[string]bool, len(suggestions))
	out := make([]model.Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		sig := semanticSignature(plan, s)
		if seen[sig] {
			continue
		}
		seen[sig] = true
		out = append(out, s)
	}
	return out
}

// semanticSignature keys a reorder suggestion on the final stop-id sequence
// it produces once applied to plan, so two reorders that reach the same
// arrangement via different move sequences collapse to one, regardless of
// how their patchOps got there. Replacement suggestions key on the op's own
// subject/placeId params, since two replacements are equivalent only if
// they touch the same stop with the same place.
func semanticSignature(plan model.Plan, s model.Suggestion) string {
	if s.Kind == model.SuggestionReorder {
		return "reorder|" + finalStopIDSequence(plan, s.PatchOps)
	}

	parts := make([]string, 0, len(s.PatchOps))
	for _, op := range s.PatchOps {
		switch op.Kind {
		case model.PatchMoveStop:
			parts = append(parts, fmt.Sprintf("move:%s:%d", op.Move.StopID, op.Move.ToIndex))
		case model.PatchReplaceStop:
			placeID := ""
			if op.Replace.NewPlaceLite != nil {
				placeID = op.Replace.NewPlaceLite.PlaceID
			}
			parts = append(parts, fmt.Sprintf("replace:%s:%s", op.Replace.StopID, placeID))
		}
	}
	return strings.Join(parts, "|")
}

// finalStopIDSequence applies ops to plan and returns the resulting stop-id
// order, comma-joined. If ops don't apply cleanly, it falls back to the
// op-param encoding so a malformed suggestion still gets a (non-colliding)
// signature rather than dropping silently.
func finalStopIDSequence(plan model.Plan, ops []model.PatchOp) string {
	patched, err := patch.Apply(plan, ops, false)
	if err != nil {
		parts := make([]string, 0, len(ops))
		for _, op := range ops {
			if op.Kind == model.PatchMoveStop {
				parts = append(parts, fmt.Sprintf("move:%s:%d", op.Move.StopID, op.Move.ToIndex))
			}
		}
		return strings.Join(parts, "|")
	}
	ids := make([]string, len(patched.Stops))
	for i, st := range patched.Stops {
		ids[i] = st.ID
	}
	return strings.Join(ids, ",")
}
