package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ideadate/journey-engine/pkg/ideadate/resolver"
	"github.com/ideadate/journey-engine/pkg/ideadateconfig"
)

const samplePlanYAML = `
id: plan-1
stops:
  - id: a
    name: Start Venue
    placeLite:
      placeId: place-a
      latLng: { lat: 40.70, lng: -74.00 }
    ideaDate:
      role: start
      energyLevel: 0.8
      durationMin: 45
  - id: b
    name: Main Venue
    placeLite:
      placeId: place-b
      latLng: { lat: 40.71, lng: -74.01 }
    ideaDate:
      role: main
      energyLevel: 0.5
      durationMin: 60
meta:
  ideaDate:
    vibeId: anniversary_intimate
    travelMode: walk
    mode: default
`

const samplePatchOpsYAML = `
- kind: moveStop
  move:
    stopId: a
    toIndex: 1
`

func TestLoadPlanParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yaml")
	if err := os.WriteFile(path, []byte(samplePlanYAML), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	plan, err := loadPlan(path)
	if err != nil {
		t.Fatalf("loadPlan error: %v", err)
	}
	if plan.ID != "plan-1" {
		t.Errorf("plan.ID = %q, want plan-1", plan.ID)
	}
	if len(plan.Stops) != 2 {
		t.Fatalf("len(plan.Stops) = %d, want 2", len(plan.Stops))
	}
}

func TestLoadPlanMissingFile(t *testing.T) {
	if _, err := loadPlan("/nonexistent/plan.yaml"); err == nil {
		t.Error("expected an error for a missing plan file")
	}
}

func TestLoadPatchOpsParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ops.yaml")
	if err := os.WriteFile(path, []byte(samplePatchOpsYAML), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	ops, err := loadPatchOps(path)
	if err != nil {
		t.Fatalf("loadPatchOps error: %v", err)
	}
	if len(ops) != 1 || ops[0].Move == nil || ops[0].Move.StopID != "a" {
		t.Errorf("unexpected patch ops: %+v", ops)
	}
}

func TestResolverFromConfigSelectsByKind(t *testing.T) {
	if _, ok := resolverFromConfig(ideadateconfig.Config{Resolver: ideadateconfig.ResolverConfig{Kind: "empty"}}).(resolver.EmptyResolver); !ok {
		t.Error("expected Kind=empty to select EmptyResolver")
	}
	if _, ok := resolverFromConfig(ideadateconfig.Config{}).(resolver.LocalMockResolver); !ok {
		t.Error("expected the default to select LocalMockResolver")
	}
}

func TestNewEngineAppliesMaxTravelEdgeOverride(t *testing.T) {
	engine := newEngine(ideadateconfig.Config{Engine: ideadateconfig.EngineConfig{MaxTravelEdgeMinutes: 10}})
	if engine.ConstraintConfig.MaxTravelEdgeMinutes != 10 {
		t.Errorf("MaxTravelEdgeMinutes = %d, want 10", engine.ConstraintConfig.MaxTravelEdgeMinutes)
	}
}
