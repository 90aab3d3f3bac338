package model

// Severity is the severity of a scoring violation.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarn     Severity = "warn"
	SeverityCritical Severity = "critical"
)

// Violation is a scoring-level flag (distinct from ConstraintViolation,
// which carries a hard/soft severity and a canonical narrative label).
type Violation struct {
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
	Details  string   `json:"details,omitempty"`
}

// ConstraintSeverity distinguishes hard (must-fix) from soft (should-fix)
// constraint violations.
type ConstraintSeverity string

const (
	ConstraintHard ConstraintSeverity = "hard"
	ConstraintSoft ConstraintSeverity = "soft"
)

// Edge identifies a directed transition between two stops by id.
type Edge struct {
	FromStopID string `json:"fromStopId"`
	ToStopID   string `json:"toStopId"`
}

// ConstraintViolation is one violation of a hard or soft constraint.
type ConstraintViolation struct {
	Kind     string             `json:"kind"`
	Severity ConstraintSeverity `json:"severity"`
	Message  string             `json:"message"`
	StopIDs  []string           `json:"stopIds,omitempty"`
	Edge     *Edge              `json:"edge,omitempty"`
	Meta     map[string]any     `json:"meta,omitempty"`
}

// FrictionComponents are the friction penalty's subcomponents (§4.1).
type FrictionComponents struct {
	EdgePenalty         float64 `json:"edgePenalty"`
	TravelSharePenalty  float64 `json:"travelSharePenalty"`
	BacktrackingPenalty float64 `json:"backtrackingPenalty"`
	TravelShare         float64 `json:"travelShare"`
}

// FatigueComponents are the fatigue penalty's subcomponents (§4.1).
type FatigueComponents struct {
	PeakDeviation float64 `json:"peakDeviation"`
	DoublePeak    bool    `json:"doublePeak"`
	NoTaper       bool    `json:"noTaper"`
}

// Components bundles the structured fatigue/friction subcomponents.
type Components struct {
	Fatigue  FatigueComponents  `json:"fatigue"`
	Friction FrictionComponents `json:"friction"`
}

// Computed is the full set of derived metrics for a plan.
type Computed struct {
	JourneyScore    float64 `json:"journeyScore"`
	JourneyScore100 int     `json:"journeyScore100"`
	IntentScore     float64 `json:"intentScore"`
	FatiguePenalty  float64 `json:"fatiguePenalty"`
	FrictionPenalty float64 `json:"frictionPenalty"`
	Components      Components `json:"components"`

	Violations           []Violation           `json:"violations"`
	ConstraintViolations []ConstraintViolation `json:"constraintViolations"`
	ConstraintHardCount  int                   `json:"constraintHardCount"`
	ConstraintSoftCount  int                   `json:"constraintSoftCount"`
	ConstraintNarratives []string              `json:"constraintNarratives"`

	ArcContributionTotal   float64   `json:"arcContributionTotal"`
	ArcContributionByIndex []float64 `json:"arcContributionByIndex"`
	ArcNarrativesByIndex   []string  `json:"arcNarrativesByIndex"`
}

// Point is one sample of the arc model's energy polyline.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ArcModel describes the energy curve shape across a journey.
type ArcModel struct {
	Points         []Point `json:"points"`
	PeakEarly      bool    `json:"peakEarly"`
	PeakLate       bool    `json:"peakLate"`
	DoublePeak     bool    `json:"doublePeak"`
	NoTaper        bool    `json:"noTaper"`
	PeakIndexIdeal int     `json:"peakIndexIdeal"`
	PeakIndexActual int    `json:"peakIndexActual"`
}

// TravelEdge is one resolved (or cached) travel estimate between two node
// keys under a given mode.
type TravelEdge struct {
	FromKey string     `json:"fromKey"`
	ToKey   string     `json:"toKey"`
	Mode    TravelMode `json:"mode"`
	Minutes int        `json:"minutes"`
	Meters  float64    `json:"meters"`
}

// TravelSnapshot is the resolved travel edges for one plan evaluation, in
// stop-transition order (length = len(Stops)-1).
type TravelSnapshot struct {
	Edges []TravelEdge `json:"edges"`
}

// Live is the output of recompute_live: a plan plus its derived metrics.
type Live struct {
	Plan     Plan           `json:"plan"`
	Computed Computed       `json:"computed"`
	Travel   TravelSnapshot `json:"travel"`
	ArcModel ArcModel       `json:"arcModel"`
}
