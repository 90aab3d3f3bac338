package model

// SuggestionKind distinguishes a reorder suggestion from a replacement.
type SuggestionKind string

const (
	SuggestionReorder     SuggestionKind = "reorder"
	SuggestionReplacement SuggestionKind = "replacement"
)

// Impact summarizes a suggestion's effect on journey score.
type Impact struct {
	Before    float64 `json:"before"`
	After     float64 `json:"after"`
	Delta     float64 `json:"delta"`
	Before100 int     `json:"before100"`
	After100  int     `json:"after100"`
}

// SuggestionMeta carries the narrative streams and constraint delta for a
// suggestion. All fields are optional.
type SuggestionMeta struct {
	StructuralNarrative string   `json:"structuralNarrative,omitempty"`
	ConstraintNarrative string   `json:"constraintNarrative,omitempty"`
	TiltNote            string   `json:"tiltNote,omitempty"`
	ConstraintDelta     *int     `json:"constraintDelta,omitempty"`
	DiscardReason       string   `json:"discardReason,omitempty"`
	ExtraNotes          []string `json:"extraNotes,omitempty"`
}

// Suggestion is a typed patch that, if applied, improves the journey under
// the engine's ordered tie-break criteria.
type Suggestion struct {
	ID            string          `json:"id"`
	Kind          SuggestionKind  `json:"kind"`
	ReasonCode    string          `json:"reasonCode"`
	PatchOps      []PatchOp       `json:"patchOps"`
	NewPlace      *PlaceLite      `json:"newPlace,omitempty"`
	Meta          *SuggestionMeta `json:"meta,omitempty"`
	Impact        Impact          `json:"impact"`
	ArcImpact     *float64        `json:"arcImpact,omitempty"`
	Preview       bool            `json:"preview"`
	SubjectStopID string          `json:"subjectStopId,omitempty"`
}

// SuggestionPack is the output of suggestion_pack: a recomputed live plan
// plus its ranked, deduped, narrated suggestions.
type SuggestionPack struct {
	Plan             Plan             `json:"plan"`
	Computed         Computed         `json:"computed"`
	Travel           TravelSnapshot   `json:"travel"`
	ArcModel         ArcModel         `json:"arcModel"`
	Suggestions      []Suggestion     `json:"suggestions"`
	DebugRefineStats *RefineStats     `json:"debugRefineStats,omitempty"`
}

// RefineStats is the telemetry contract's debug payload (§6). Declared here
// alongside Suggestion/SuggestionPack since SuggestionPack embeds it; the
// richer construction logic lives in package telemetry.
type RefineStats struct {
	CandidateCount  int                  `json:"candidateCount"`
	EvaluatedCount  int                  `json:"evaluatedCount"`
	DiscardedCount  int                  `json:"discardedCount"`
	DiscardCounts   map[string]int       `json:"discardCounts"`
	PassUsed        string               `json:"passUsed"`
	PassBreakdown   map[string]PassStats `json:"passBreakdown"`
	ReorderRepair   ReorderRepairStats   `json:"reorderRepair"`
	TopConstraintDelta *ConstraintDeltaSnapshot `json:"topConstraintDelta,omitempty"`
	TimingMs        TimingStats          `json:"timingMs"`
	WeightMap       map[string]float64   `json:"weightMap"`
	TiltProfile     PrefTilt             `json:"tiltProfile"`
}

// PassStats is the seen/kept/discarded tally for one refinement pass.
type PassStats struct {
	Seen      int `json:"seen"`
	Kept      int `json:"kept"`
	Discarded int `json:"discarded"`
}

// ReorderRepairStats tallies the reorder-repair fallback pass.
type ReorderRepairStats struct {
	Evaluated int       `json:"evaluated"`
	Kept      int       `json:"kept"`
	TopDeltas []float64 `json:"topDeltas,omitempty"`
}

// ConstraintDeltaSnapshot captures a before/after constraint comparison.
type ConstraintDeltaSnapshot struct {
	Baseline int `json:"baseline"`
	After    int `json:"after"`
	Hard     int `json:"hard"`
	Soft     int `json:"soft"`
}

// TimingStats records wall-clock milliseconds spent per phase (≥0).
type TimingStats struct {
	TotalMs      int64 `json:"totalMs"`
	ResolverMs   int64 `json:"resolverMs"`
	PrepMs       int64 `json:"prepMs"`
	EvaluationMs int64 `json:"evaluationMs"`
	RankingMs    int64 `json:"rankingMs"`
}
