package model

// PatchOpKind tags the two supported patch-op variants (§4.5, §9: tagged
// variants for patch ops, exhaustive matching enforced in patch.Apply).
type PatchOpKind string

const (
	PatchMoveStop    PatchOpKind = "moveStop"
	PatchReplaceStop PatchOpKind = "replaceStop"
)

// MoveStopOp relocates a stop to a new index.
type MoveStopOp struct {
	StopID  string `json:"stopId" yaml:"stopId"`
	ToIndex int    `json:"toIndex" yaml:"toIndex"`
}

// ReplaceStopOp substitutes a stop's name, place, and idea-date profile in
// place, preserving its role and id.
type ReplaceStopOp struct {
	StopID             string           `json:"stopId" yaml:"stopId"`
	NewName            string           `json:"newName,omitempty" yaml:"newName,omitempty"`
	NewPlaceRef        *PlaceRef        `json:"newPlaceRef,omitempty" yaml:"newPlaceRef,omitempty"`
	NewPlaceLite       *PlaceLite       `json:"newPlaceLite,omitempty" yaml:"newPlaceLite,omitempty"`
	NewIdeaDateProfile *IdeaDateProfile `json:"newIdeaDateProfile,omitempty" yaml:"newIdeaDateProfile,omitempty"`
}

// PatchOp is a tagged union of MoveStopOp and ReplaceStopOp. Exactly one of
// Move/Replace is populated, selected by Kind.
type PatchOp struct {
	Kind    PatchOpKind    `json:"kind" yaml:"kind"`
	Move    *MoveStopOp    `json:"move,omitempty" yaml:"move,omitempty"`
	Replace *ReplaceStopOp `json:"replace,omitempty" yaml:"replace,omitempty"`
}

// NewMoveStop constructs a moveStop patch op.
func NewMoveStop(stopID string, toIndex int) PatchOp {
	return PatchOp{Kind: PatchMoveStop, Move: &MoveStopOp{StopID: stopID, ToIndex: toIndex}}
}

// NewReplaceStop constructs a replaceStop patch op.
func NewReplaceStop(stopID, newName string, placeLite *PlaceLite, placeRef *PlaceRef, profile *IdeaDateProfile) PatchOp {
	return PatchOp{
		Kind: PatchReplaceStop,
		Replace: &ReplaceStopOp{
			StopID:             stopID,
			NewName:            newName,
			NewPlaceLite:       placeLite,
			NewPlaceRef:        placeRef,
			NewIdeaDateProfile: profile,
		},
	}
}
