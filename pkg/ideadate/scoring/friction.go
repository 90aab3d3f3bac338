package scoring

import (
	"github.com/ideadate/journey-engine/pkg/ideadate/mathx"
	"github.com/ideadate/journey-engine/pkg/ideadate/model"
	"github.com/ideadate/journey-engine/pkg/ideadate/travel"
)

// FrictionResult holds the friction penalty and its subcomponents.
type FrictionResult struct {
	Penalty     float64
	Components  model.FrictionComponents
	EdgePenalties []float64
}

// edgePenalty implements the piecewise-linear transition penalty: 0 up to
// 12 minutes, linear to 0.5 at 18 minutes, then linear to 1 at 30 minutes,
// clamped above that.
func edgePenalty(minutes int) float64 {
	m := float64(minutes)
	switch {
	case m <= 12:
		return 0
	case m <= 18:
		return (m - 12) / (18 - 12) * 0.5
	case m <= 30:
		return 0.5 + (m-18)/(30-18)*0.5
	default:
		return 1
	}
}

// ComputeFriction implements the §4.1 friction penalty given the stop
// sequence and its resolved travel edges (one fewer edge than stops).
func ComputeFriction(stops []model.Stop, edges []model.TravelEdge) FrictionResult {
	if len(stops) == 0 {
		return FrictionResult{}
	}
	if len(edges) == 0 {
		return FrictionResult{Components: model.FrictionComponents{}}
	}

	pens := make([]float64, len(edges))
	var edgeSum, totalTravelMin float64
	for i, e := range edges {
		pens[i] = edgePenalty(e.Minutes)
		edgeSum += pens[i]
		totalTravelMin += float64(e.Minutes)
	}
	edgePenaltyMean := edgeSum / float64(len(edges))

	var totalStopMin float64
	for _, s := range stops {
		totalStopMin += float64(s.IdeaDate.DurationMin)
	}

	denom := totalTravelMin + totalStopMin
	if denom < 1 {
		denom = 1
	}
	travelShare := totalTravelMin / denom

	travelSharePenalty := 0.0
	if travelShare > 0.35 {
		travelSharePenalty = mathx.Clamp01((travelShare - 0.35) / 0.3)
	}

	keys := make([]string, len(stops))
	for i, s := range stops {
		keys[i] = travel.NodeKey(s)
	}
	revisits := travel.CountRevisits(keys)
	backtrackingPenalty := mathx.Clamp01(0.4 * float64(revisits))

	penalty := mathx.Clamp01(0.55*edgePenaltyMean + 0.3*travelSharePenalty + 0.15*backtrackingPenalty)

	return FrictionResult{
		Penalty: penalty,
		Components: model.FrictionComponents{
			EdgePenalty:         edgePenaltyMean,
			TravelSharePenalty:  travelSharePenalty,
			BacktrackingPenalty: backtrackingPenalty,
			TravelShare:         travelShare,
		},
		EdgePenalties: pens,
	}
}
