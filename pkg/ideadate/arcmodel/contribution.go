package arcmodel

import (
	"github.com/ideadate/journey-engine/pkg/ideadate/mathx"
	"github.com/ideadate/journey-engine/pkg/ideadate/model"
	"github.com/ideadate/journey-engine/pkg/ideadate/scoring"
)

// Weights scales the five arc-contribution factors. Defaults are 1; under
// tilt package tiltpolicy clamps each one to its own range inside [0.8,1.2]
// (for example [0.84,1.16] for PeakAlignment), except
// TaperIntegrity which the spec fixes at 1 regardless of tilt (§4.9).
type Weights struct {
	TransitionSmoothness float64
	PeakAlignment        float64
	TaperIntegrity       float64
	FatigueImpact        float64
	FrictionImpact       float64
}

// DefaultWeights returns the untilted weight map.
func DefaultWeights() Weights {
	return Weights{
		TransitionSmoothness: 1,
		PeakAlignment:        1,
		TaperIntegrity:       1,
		FatigueImpact:        1,
		FrictionImpact:       1,
	}
}

// Factors holds the five per-stop factors feeding arc contribution.
type Factors struct {
	TransitionSmoothness float64
	PeakAlignment        float64
	TaperIntegrity       float64
	FatigueImpact        float64
	FrictionImpact       float64
}

// perStopEdgePenalty averages the edge penalties incident to stop i (its
// incoming and/or outgoing transition), 0 when stop i has no edges (a
// single-stop plan).
func perStopEdgePenalty(i, n int, edgePenalties []float64) float64 {
	var sum float64
	var count int
	if i > 0 && i-1 < len(edgePenalties) {
		sum += edgePenalties[i-1]
		count++
	}
	if i < n-1 && i < len(edgePenalties) {
		sum += edgePenalties[i]
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// ComputeFactors derives the five per-stop factors for stop i.
func ComputeFactors(i, n int, fatigue scoring.FatigueResult, friction scoring.FrictionResult) Factors {
	edgePen := perStopEdgePenalty(i, n, friction.EdgePenalties)

	peakSpan := n - 1
	if peakSpan < 1 {
		peakSpan = 1
	}
	peakAlignment := mathx.Clamp01(1 - absDiffInt(i, fatigue.IdealPeakIndex)/float64(peakSpan))

	taperIntegrity := 1.0
	if i == n-1 && fatigue.NoTaper {
		taperIntegrity = 0
	}

	return Factors{
		TransitionSmoothness: mathx.Clamp01(1 - edgePen),
		PeakAlignment:        peakAlignment,
		TaperIntegrity:       taperIntegrity,
		FatigueImpact:        mathx.Clamp01(fatigue.Penalty),
		FrictionImpact:       mathx.Clamp01(edgePen),
	}
}

func absDiffInt(a, b int) float64 {
	if a > b {
		return float64(a - b)
	}
	return float64(b - a)
}

// Contribution combines a stop's factors into its arc-contribution scalar
// (§4.4): positives weighted-averaged, penalties weighted-averaged,
// contribution = positives·(1−penalties).
func Contribution(f Factors, w Weights) float64 {
	posNum := w.TransitionSmoothness*0.4*f.TransitionSmoothness +
		w.PeakAlignment*0.35*f.PeakAlignment +
		w.TaperIntegrity*0.25*f.TaperIntegrity
	posDen := w.TransitionSmoothness*0.4 + w.PeakAlignment*0.35 + w.TaperIntegrity*0.25
	positives := 0.0
	if posDen > 0 {
		positives = mathx.Clamp01(posNum / posDen)
	}

	penNum := w.FatigueImpact*0.55*f.FatigueImpact + w.FrictionImpact*0.45*f.FrictionImpact
	penDen := w.FatigueImpact*0.55 + w.FrictionImpact*0.45
	penalties := 0.0
	if penDen > 0 {
		penalties = mathx.Clamp01(penNum / penDen)
	}

	return mathx.Clamp01(positives * (1 - penalties))
}

// ComputeContributions returns the byIndex contribution vector, its sum,
// and per-stop narratives, for all n stops in order.
func ComputeContributions(n int, fatigue scoring.FatigueResult, friction scoring.FrictionResult, w Weights) (byIndex []float64, total float64, narratives []string) {
	byIndex = make([]float64, n)
	narratives = make([]string, n)
	for i := 0; i < n; i++ {
		f := ComputeFactors(i, n, fatigue, friction)
		c := Contribution(f, w)
		byIndex[i] = c
		total += c
		narratives[i] = narrativeFor(f)
	}
	return byIndex, total, narratives
}

// narrativeFor picks a narrative from a fixed table keyed on the dominant
// factor's sign, comparing the strongest positive factor against the
// strongest penalty factor.
func narrativeFor(f Factors) string {
	bestPositive := maxOf(f.TransitionSmoothness, f.PeakAlignment, f.TaperIntegrity)
	worstPenalty := maxOf(f.FatigueImpact, f.FrictionImpact)

	switch {
	case worstPenalty > 0.5 && worstPenalty >= bestPositive:
		if f.FrictionImpact >= f.FatigueImpact {
			return model.ArcNarrativeFrictionDrag
		}
		return model.ArcNarrativeFatigueDrag
	case f.PeakAlignment == bestPositive && f.PeakAlignment >= 0.7:
		return model.ArcNarrativePeakAligned
	case f.TaperIntegrity == bestPositive && f.TaperIntegrity >= 0.9:
		return model.ArcNarrativeGoodTaper
	case f.TransitionSmoothness == bestPositive && f.TransitionSmoothness >= 0.7:
		return model.ArcNarrativeSmoothTransition
	default:
		return model.ArcNarrativeNeutral
	}
}

func maxOf(vals ...float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
