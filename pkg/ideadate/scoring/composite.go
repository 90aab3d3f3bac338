package scoring

import "github.com/ideadate/journey-engine/pkg/ideadate/mathx"

// JourneyScore combines intent, fatigue, and friction into the composite
// journey score (§4.1): 0.58·I + 0.22·(1−Fa) + 0.20·(1−Fr), clamped.
func JourneyScore(intent, fatiguePenalty, frictionPenalty float64) float64 {
	return mathx.Clamp01(0.58*intent + 0.22*(1-fatiguePenalty) + 0.20*(1-frictionPenalty))
}

// JourneyScore100 rounds a [0,1] journey score to an integer on [0,100].
func JourneyScore100(score float64) int {
	return mathx.Round100(score)
}
