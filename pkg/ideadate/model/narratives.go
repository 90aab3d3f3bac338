package model

// Arc-contribution narrative labels, drawn from a fixed table (§4.4).
const (
	ArcNarrativeFrictionDrag     = "this stop's travel drags the arc"
	ArcNarrativeFatigueDrag      = "this stop sits at the fatigue low point"
	ArcNarrativePeakAligned      = "this stop anchors the energy peak"
	ArcNarrativeGoodTaper        = "this stop winds the evening down well"
	ArcNarrativeSmoothTransition = "this stop transitions smoothly"
	ArcNarrativeNeutral          = "this stop holds a steady middle beat"
)

// Constraint narrative labels, drawn from a fixed ordered list (§4.3). The
// ordering here is the canonical output order for ConstraintNarratives.
const (
	NarrativeLongTransferRisk  = "long transfer risk"
	NarrativeRoleOrderRisk     = "stop role order risk"
	NarrativeVarietyRisk       = "stop variety risk"
	NarrativeLateSpikeRisk     = "late spike risk"
)

// ConstraintNarrativeOrder is the canonical output order for constraint
// narrative labels.
var ConstraintNarrativeOrder = []string{
	NarrativeLongTransferRisk,
	NarrativeRoleOrderRisk,
	NarrativeVarietyRisk,
	NarrativeLateSpikeRisk,
}
