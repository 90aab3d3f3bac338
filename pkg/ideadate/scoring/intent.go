// Package scoring implements the journey engine's scoring primitives:
// intent alignment, fatigue penalty, friction penalty, and their composite
// into a journey score (§4.1). Every function here is pure and iterates
// fixed, stated orders so floating-point sums are bit-identical across
// runs (§5, §9).
package scoring

import (
	"github.com/ideadate/journey-engine/pkg/ideadate/mathx"
	"github.com/ideadate/journey-engine/pkg/ideadate/model"
)

const minAxisWeight = 0.01

// StopIntentScore computes one stop's alignment against target T weighted
// by importance W, both over the six fixed intent axes.
func StopIntentScore(s model.IntentVector, target model.IntentVector, importance model.IntentVector) float64 {
	sAxes := s.Axes()
	tAxes := target.Axes()
	wAxes := importance.Axes()

	var weightedSum, weightTotal float64
	for i := 0; i < 6; i++ {
		w := wAxes[i]
		if w < minAxisWeight {
			w = minAxisWeight
		}
		alignment := mathx.Clamp01(1 - absDiff(sAxes[i], tAxes[i]))
		weightedSum += w * alignment
		weightTotal += w
	}
	if weightTotal <= 0 {
		return 0
	}
	return weightedSum / weightTotal
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

// JourneyIntentScore averages StopIntentScore across all stops, in stop
// order, then clamps to [0,1].
func JourneyIntentScore(stops []model.Stop, target, importance model.IntentVector) float64 {
	if len(stops) == 0 {
		return 0
	}
	var sum float64
	for _, s := range stops {
		sum += StopIntentScore(s.IdeaDate.IntentVector, target, importance)
	}
	return mathx.Clamp01(sum / float64(len(stops)))
}
