package suggestpack

import (
	"testing"

	"github.com/ideadate/journey-engine/pkg/ideadate/model"
)

func moveOp(stopID string, to int) model.PatchOp {
	return model.PatchOp{Kind: model.PatchMoveStop, Move: &model.MoveStopOp{StopID: stopID, ToIndex: to}}
}

func replaceOp(stopID, placeID string) model.PatchOp {
	return model.PatchOp{Kind: model.PatchReplaceStop, Replace: &model.ReplaceStopOp{StopID: stopID, NewPlaceLite: &model.PlaceLite{PlaceID: placeID}}}
}

func threeStopPlan() model.Plan {
	return model.Plan{
		ID: "p1",
		Stops: []model.Stop{
			{ID: "s1"},
			{ID: "s2"},
			{ID: "s3"},
		},
	}
}

func TestDedupeBySemanticSignatureCollapsesIdenticalMoves(t *testing.T) {
	in := []model.Suggestion{
		{ID: "a", PatchOps: []model.PatchOp{moveOp("s1", 2)}},
		{ID: "b", PatchOps: []model.PatchOp{moveOp("s1", 2)}},
	}
	out := DedupeBySemanticSignature(threeStopPlan(), in)
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if out[0].ID != "a" {
		t.Errorf("expected first occurrence to win, got %q", out[0].ID)
	}
}

func TestDedupeBySemanticSignatureKeepsDistinctReplacements(t *testing.T) {
	in := []model.Suggestion{
		{ID: "a", PatchOps: []model.PatchOp{replaceOp("s1", "place-a")}},
		{ID: "b", PatchOps: []model.PatchOp{replaceOp("s1", "place-b")}},
	}
	out := DedupeBySemanticSignature(threeStopPlan(), in)
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
}

func TestDedupeBySemanticSignatureEmptyInput(t *testing.T) {
	out := DedupeBySemanticSignature(threeStopPlan(), nil)
	if len(out) != 0 {
		t.Errorf("len(out) = %d, want 0", len(out))
	}
}

func TestSemanticSignatureDistinguishesMoveFromReplace(t *testing.T) {
	plan := threeStopPlan()
	move := semanticSignature(plan, model.Suggestion{PatchOps: []model.PatchOp{moveOp("s1", 1)}})
	replace := semanticSignature(plan, model.Suggestion{PatchOps: []model.PatchOp{replaceOp("s1", "p")}})
	if move == replace {
		t.Errorf("expected distinct signatures, both got %q", move)
	}
}

// Two reorder suggestions that reach the same final arrangement by
// different move sequences must collapse to one kept suggestion, even
// though their patchOps differ.
func TestDedupeBySemanticSignatureCollapsesEquivalentReorders(t *testing.T) {
	plan := threeStopPlan()

	// s1,s2,s3 -> s2,s3,s1 via moving s1 to the end.
	byTrailingMove := model.Suggestion{
		ID:       "a",
		Kind:     model.SuggestionReorder,
		PatchOps: []model.PatchOp{moveOp("s1", 2)},
	}
	// s1,s2,s3 -> s2,s3,s1 via a different two-move sequence: move s2 to
	// front, then move s3 to the middle slot.
	byTwoMoves := model.Suggestion{
		ID:       "b",
		Kind:     model.SuggestionReorder,
		PatchOps: []model.PatchOp{moveOp("s2", 0), moveOp("s3", 1)},
	}

	sigA := semanticSignature(plan, byTrailingMove)
	sigB := semanticSignature(plan, byTwoMoves)
	if sigA != sigB {
		t.Fatalf("expected equal signatures for reorders reaching the same arrangement, got %q vs %q", sigA, sigB)
	}

	out := DedupeBySemanticSignature(plan, []model.Suggestion{byTrailingMove, byTwoMoves})
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if out[0].ID != "a" {
		t.Errorf("expected first occurrence to win, got %q", out[0].ID)
	}
}

func TestDedupeBySemanticSignatureKeepsDistinctReorders(t *testing.T) {
	plan := threeStopPlan()
	a := model.Suggestion{ID: "a", Kind: model.SuggestionReorder, PatchOps: []model.PatchOp{moveOp("s1", 2)}}
	b := model.Suggestion{ID: "b", Kind: model.SuggestionReorder, PatchOps: []model.PatchOp{moveOp("s3", 0)}}

	out := DedupeBySemanticSignature(plan, []model.Suggestion{a, b})
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
}
