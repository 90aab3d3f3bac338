package model

import (
	"fmt"

	"github.com/ideadate/journey-engine/pkg/ideadate/mathx"
)

// Clamp constrains every axis of v to [0,1], returning a new IntentVector.
func (v IntentVector) Clamp() IntentVector {
	return IntentVector{
		Intimacy:  mathx.Clamp01(v.Intimacy),
		Energy:    mathx.Clamp01(v.Energy),
		Novelty:   mathx.Clamp01(v.Novelty),
		Discovery: mathx.Clamp01(v.Discovery),
		Pretense:  mathx.Clamp01(v.Pretense),
		Pressure:  mathx.Clamp01(v.Pressure),
	}
}

// Clamp constrains every override to [-1,1].
func (o Overrides) Clamp() Overrides {
	return Overrides{
		ChillLively:    mathx.Clamp(o.ChillLively, -1, 1),
		RelaxedActive:  mathx.Clamp(o.RelaxedActive, -1, 1),
		QuickLingering: mathx.Clamp(o.QuickLingering, -1, 1),
	}
}

// Clamp constrains a PrefTilt's fields to {-1,0,1}.
func (t PrefTilt) Clamp() PrefTilt {
	clampAxis := func(v int) int {
		switch {
		case v < 0:
			return -1
		case v > 0:
			return 1
		default:
			return 0
		}
	}
	return PrefTilt{Vibe: clampAxis(t.Vibe), Walking: clampAxis(t.Walking), Peak: clampAxis(t.Peak)}
}

// Validate checks the profile for values that cannot be recovered by
// clamping. EnergyLevel and DurationMin are clamped in place; an empty Role
// is the one unrecoverable condition (SchemaValidation, §7).
func (p *IdeaDateProfile) Validate() error {
	p.IntentVector = p.IntentVector.Clamp()
	p.EnergyLevel = mathx.Clamp01(p.EnergyLevel)
	if p.DurationMin < 20 {
		p.DurationMin = 20
	}
	if p.DurationMin > 240 {
		p.DurationMin = 240
	}
	p.Overrides = p.Overrides.Clamp()
	switch p.Role {
	case RoleStart, RoleMain, RoleWindDown:
	default:
		return fmt.Errorf("idea-date profile: %w", errEmptyRole)
	}
	return nil
}

var errEmptyRole = fmt.Errorf("missing or invalid role")

// Validate checks plan-level invariants P1 (unique stop ids) and returns a
// descriptive error when they cannot hold. Per-stop profile clamping is
// applied as a side effect so callers get a best-effort sanitized plan even
// when validation ultimately fails.
func (p *Plan) Validate() error {
	if len(p.Stops) == 0 {
		return fmt.Errorf("plan %q: %w", p.ID, errEmptyPlan)
	}
	seen := make(map[string]bool, len(p.Stops))
	for i := range p.Stops {
		s := &p.Stops[i]
		if seen[s.ID] {
			return fmt.Errorf("plan %q: %w: %s", p.ID, errDuplicateStopID, s.ID)
		}
		seen[s.ID] = true
		if err := s.IdeaDate.Validate(); err != nil {
			return fmt.Errorf("plan %q, stop %q: %w", p.ID, s.ID, err)
		}
	}
	p.Meta.IdeaDate.PrefTilt = p.Meta.IdeaDate.PrefTilt.Clamp()
	p.Meta.IdeaDate.VibeTarget = p.Meta.IdeaDate.VibeTarget.Clamp()
	p.Meta.IdeaDate.VibeImportance = p.Meta.IdeaDate.VibeImportance.Clamp()
	return nil
}

var (
	errEmptyPlan       = fmt.Errorf("plan has no stops")
	errDuplicateStopID = fmt.Errorf("duplicate stop id")
)

// RolesMatchIndexConvention reports whether every stop's role equals the
// role implied by its index (invariant P2).
func (p Plan) RolesMatchIndexConvention() bool {
	n := len(p.Stops)
	for i, s := range p.Stops {
		if s.IdeaDate.Role != RoleForIndex(i, n) {
			return false
		}
	}
	return true
}

// UniqueStopIDs reports whether invariant P1 holds.
func (p Plan) UniqueStopIDs() bool {
	seen := make(map[string]bool, len(p.Stops))
	for _, s := range p.Stops {
		if seen[s.ID] {
			return false
		}
		seen[s.ID] = true
	}
	return true
}

// PlaceIDOf returns the stop's resolvable placeId, or "" if it has none.
func (s Stop) PlaceIDOf() string {
	if s.PlaceLite != nil && s.PlaceLite.PlaceID != "" {
		return s.PlaceLite.PlaceID
	}
	if s.PlaceRef != nil {
		return s.PlaceRef.PlaceID
	}
	return ""
}
