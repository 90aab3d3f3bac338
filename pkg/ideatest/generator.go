// Package ideatest provides deterministic fixture generators and assertion
// helpers for the idea-date journey engine's tests.
package ideatest

import (
	"fmt"
	"math/rand"

	"github.com/ideadate/journey-engine/pkg/ideadate/model"
)

// GeneratorConfig controls plan generation.
type GeneratorConfig struct {
	Seed       int64   // random seed for determinism (0 = use DefaultSeed)
	IDPrefix   string  // prefix for stop/plan ids (default: "stop")
	VibeID     model.VibeID
	TravelMode model.TravelMode
	CenterLat  float64
	CenterLng  float64
}

// DefaultSeed is the fixed seed used when a config specifies none, keeping
// every default-config fixture reproducible.
const DefaultSeed = 1337

// DefaultConfig returns a config suitable for most tests.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:       DefaultSeed,
		IDPrefix:   "stop",
		VibeID:     model.VibeAnniversaryIntimate,
		TravelMode: model.TravelWalk,
		CenterLat:  40.7128,
		CenterLng:  -74.0060,
	}
}

// Generator produces deterministic Plan fixtures of various shapes.
type Generator struct {
	cfg GeneratorConfig
	rng *rand.Rand
}

// New creates a Generator with the given config.
func New(cfg GeneratorConfig) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	if cfg.IDPrefix == "" {
		cfg.IDPrefix = "stop"
	}
	if cfg.VibeID == "" {
		cfg.VibeID = model.VibeAnniversaryIntimate
	}
	if cfg.TravelMode == "" {
		cfg.TravelMode = model.TravelWalk
	}
	return &Generator{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// NewDefault creates a Generator with DefaultConfig.
func NewDefault() *Generator {
	return New(DefaultConfig())
}

// LinearArc builds an n-stop plan with energy rising to a mid-journey peak
// and tapering off, roles assigned by RoleForIndex, stops placed along a
// small grid so travel distances are nontrivial but short.
func (g *Generator) LinearArc(n int) model.Plan {
	stops := make([]model.Stop, n)
	for i := 0; i < n; i++ {
		energy := peakShapedEnergy(i, n)
		stops[i] = model.Stop{
			ID:   fmt.Sprintf("%s-%d", g.cfg.IDPrefix, i),
			Name: fmt.Sprintf("Fixture Venue %d", i),
			PlaceLite: &model.PlaceLite{
				PlaceID: fmt.Sprintf("place-%s-%d", g.cfg.IDPrefix, i),
				Name:    fmt.Sprintf("Fixture Venue %d", i),
				LatLng: &model.LatLng{
					Lat: g.cfg.CenterLat + 0.003*float64(i),
					Lng: g.cfg.CenterLng + 0.003*float64(i),
				},
			},
			IdeaDate: model.IdeaDateProfile{
				Role:        model.RoleForIndex(i, n),
				EnergyLevel: energy,
				DurationMin: 45,
				IntentVector: model.IntentVector{
					Intimacy: 0.5, Energy: energy, Novelty: 0.5,
					Discovery: 0.5, Pretense: 0.4, Pressure: 0.3,
				},
			},
		}
	}
	return model.Plan{
		ID:    fmt.Sprintf("%s-plan", g.cfg.IDPrefix),
		Stops: stops,
		Meta: model.PlanMeta{
			IdeaDate: model.PlanProfile{
				VibeID:     g.cfg.VibeID,
				TravelMode: g.cfg.TravelMode,
				Mode:       model.ModeDefault,
				VibeTarget: model.IntentVector{Intimacy: 0.5, Energy: 0.5, Novelty: 0.5, Discovery: 0.5, Pretense: 0.4, Pressure: 0.3},
				VibeImportance: model.IntentVector{
					Intimacy: 1, Energy: 1, Novelty: 1, Discovery: 1, Pretense: 1, Pressure: 1,
				},
			},
		},
	}
}

// Backtracking builds a plan whose stops revisit the same physical location
// so friction's backtracking component is nonzero.
func (g *Generator) Backtracking(n int) model.Plan {
	plan := g.LinearArc(n)
	for i := range plan.Stops {
		if i%2 == 1 {
			plan.Stops[i].PlaceLite.LatLng = plan.Stops[0].PlaceLite.LatLng
			plan.Stops[i].PlaceLite.PlaceID = plan.Stops[0].PlaceLite.PlaceID
		}
	}
	return plan
}

// NoTaper builds a plan whose final stop holds the peak energy level, so
// the fatigue model's no-taper flag fires.
func (g *Generator) NoTaper(n int) model.Plan {
	plan := g.LinearArc(n)
	for i := range plan.Stops {
		plan.Stops[i].IdeaDate.EnergyLevel = 0.9
	}
	return plan
}

// RandomJitter returns a copy of plan with each stop's energy level jittered
// by a small deterministic delta (seeded by the generator's rng), useful for
// property-based tests that need many similar-but-distinct plans.
func (g *Generator) RandomJitter(plan model.Plan) model.Plan {
	out := plan.Clone()
	for i := range out.Stops {
		delta := (g.rng.Float64() - 0.5) * 0.1
		e := out.Stops[i].IdeaDate.EnergyLevel + delta
		if e < 0 {
			e = 0
		}
		if e > 1 {
			e = 1
		}
		out.Stops[i].IdeaDate.EnergyLevel = e
	}
	return out
}

// peakShapedEnergy produces a deterministic energy series that rises to a
// single peak around the journey's midpoint, then tapers.
func peakShapedEnergy(i, n int) float64 {
	if n <= 1 {
		return 0.5
	}
	mid := float64(n-1) / 2
	dist := float64(i) - mid
	if dist < 0 {
		dist = -dist
	}
	return clamp01(0.9 - 0.15*dist)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
