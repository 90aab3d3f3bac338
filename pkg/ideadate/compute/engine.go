// Package compute implements recompute_live (§6): the single entry point
// that combines scoring, arc modeling, and constraint evaluation into a
// Computed result. It is the only package that wires travel, scoring,
// arcmodel, and constraint together for the baseline (untilted) metrics;
// tilt/mode only affect the ranking path (package tiltpolicy), never this
// one, per §4.9 and §9's arc-contribution/scoring separation rule.
package compute

import (
	"time"

	"github.com/ideadate/journey-engine/pkg/ideadate/arcmodel"
	"github.com/ideadate/journey-engine/pkg/ideadate/constraint"
	"github.com/ideadate/journey-engine/pkg/ideadate/mathx"
	"github.com/ideadate/journey-engine/pkg/ideadate/model"
	"github.com/ideadate/journey-engine/pkg/ideadate/scoring"
	"github.com/ideadate/journey-engine/pkg/ideadate/travel"
)

// Engine holds the travel cache (the engine's only shared mutable state,
// §4.2, §9) and the constraint evaluator's tunables. Construct one Engine
// per process and reuse it; RecomputeLive is otherwise stateless and safe
// to call concurrently.
type Engine struct {
	TravelCache     *travel.Cache
	ConstraintConfig constraint.Config
}

// NewEngine constructs an Engine with default cache TTL and constraint
// thresholds.
func NewEngine() *Engine {
	return &Engine{
		TravelCache:      travel.NewCache(travel.DefaultTTL),
		ConstraintConfig: constraint.DefaultConfig(),
	}
}

// RecomputeLive implements recompute_live: plan -> {plan, computed, travel,
// arc_model}. It validates and clamps the plan first (§7 SchemaValidation),
// then derives travel, scoring, arc model, and constraints in that order.
func (e *Engine) RecomputeLive(plan model.Plan, now time.Time) (model.Live, error) {
	plan = plan.Clone()
	if err := plan.Validate(); err != nil {
		return model.Live{}, err
	}

	travelSnapshot := e.resolveTravel(plan, now)
	energy := energySeries(plan)

	intent := scoring.JourneyIntentScore(plan.Stops, plan.Meta.IdeaDate.VibeTarget, plan.Meta.IdeaDate.VibeImportance)
	fatigue := scoring.ComputeFatigue(energy)
	friction := scoring.ComputeFriction(plan.Stops, travelSnapshot.Edges)
	journeyScore := scoring.JourneyScore(intent, fatigue.Penalty, friction.Penalty)

	arc := arcmodel.Build(energy, fatigue)
	byIndex, total, narratives := arcmodel.ComputeContributions(len(plan.Stops), fatigue, friction, arcmodel.DefaultWeights())

	constraintResult := constraint.Evaluate(plan, travelSnapshot.Edges, arc, e.ConstraintConfig)

	computed := model.Computed{
		JourneyScore:    journeyScore,
		JourneyScore100: scoring.JourneyScore100(journeyScore),
		IntentScore:     intent,
		FatiguePenalty:  fatigue.Penalty,
		FrictionPenalty: friction.Penalty,
		Components: model.Components{
			Fatigue: model.FatigueComponents{
				PeakDeviation: fatigue.PeakDeviation,
				DoublePeak:    fatigue.DoublePeak,
				NoTaper:       fatigue.NoTaper,
			},
			Friction: friction.Components,
		},
		Violations:             violationsFromConstraints(constraintResult.Violations),
		ConstraintViolations:   constraintResult.Violations,
		ConstraintHardCount:    constraintResult.HardCount,
		ConstraintSoftCount:    constraintResult.SoftCount,
		ConstraintNarratives:   constraintResult.Narratives,
		ArcContributionTotal:   mathx.RoundN(total, 6),
		ArcContributionByIndex: roundEach(byIndex, 6),
		ArcNarrativesByIndex:   narratives,
	}

	return model.Live{Plan: plan, Computed: computed, Travel: travelSnapshot, ArcModel: arc}, nil
}

func (e *Engine) resolveTravel(plan model.Plan, now time.Time) model.TravelSnapshot {
	n := len(plan.Stops)
	if n < 2 {
		return model.TravelSnapshot{}
	}
	edges := make([]model.TravelEdge, n-1)
	mode := plan.Meta.IdeaDate.TravelMode
	for i := 0; i < n-1; i++ {
		edges[i] = e.TravelCache.Get(plan.Stops[i], plan.Stops[i+1], mode, now)
	}
	return model.TravelSnapshot{Edges: edges}
}

func energySeries(plan model.Plan) []float64 {
	e := make([]float64, len(plan.Stops))
	for i, s := range plan.Stops {
		e[i] = mathx.Clamp01(s.IdeaDate.EnergyLevel)
	}
	return e
}

func roundEach(vals []float64, n int) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = mathx.RoundN(v, n)
	}
	return out
}

// violationsFromConstraints projects constraint violations into the
// generic Violation log (hard -> critical, soft -> warn), so callers that
// only want a flat severity view don't need to understand constraint kinds.
func violationsFromConstraints(cvs []model.ConstraintViolation) []model.Violation {
	out := make([]model.Violation, 0, len(cvs))
	for _, cv := range cvs {
		sev := model.SeverityWarn
		if cv.Severity == model.ConstraintHard {
			sev = model.SeverityCritical
		}
		out = append(out, model.Violation{Type: cv.Kind, Severity: sev, Details: cv.Message})
	}
	return out
}
