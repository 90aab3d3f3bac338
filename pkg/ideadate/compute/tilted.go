package compute

import (
	"github.com/ideadate/journey-engine/pkg/ideadate/arcmodel"
	"github.com/ideadate/journey-engine/pkg/ideadate/model"
	"github.com/ideadate/journey-engine/pkg/ideadate/scoring"
)

// TiltedArcContribution recomputes the per-stop arc-contribution vector and
// its total under a custom weight map, reusing already-resolved travel
// edges. It never touches the travel cache and never affects baseline
// Computed — callers use it only for ranking and suggestion composition
// (§4.9's arc-contribution/scoring separation rule).
func TiltedArcContribution(plan model.Plan, travelSnapshot model.TravelSnapshot, weights arcmodel.Weights) (byIndex []float64, total float64) {
	energy := make([]float64, len(plan.Stops))
	for i, s := range plan.Stops {
		energy[i] = s.IdeaDate.EnergyLevel
	}
	fatigue := scoring.ComputeFatigue(energy)
	friction := scoring.ComputeFriction(plan.Stops, travelSnapshot.Edges)
	byIndex, total, _ = arcmodel.ComputeContributions(len(plan.Stops), fatigue, friction, weights)
	return byIndex, total
}
