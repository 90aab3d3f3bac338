package refine

import (
	"testing"
	"time"

	"github.com/ideadate/journey-engine/pkg/ideadate/compute"
	"github.com/ideadate/journey-engine/pkg/ideadate/model"
)

func mkStop(id string, energy float64, lat, lng float64, role model.Role) model.Stop {
	return model.Stop{
		ID:   id,
		Name: "Venue " + id,
		PlaceLite: &model.PlaceLite{
			PlaceID: "place-" + id,
			LatLng:  &model.LatLng{Lat: lat, Lng: lng},
		},
		IdeaDate: model.IdeaDateProfile{
			Role:         role,
			EnergyLevel:  energy,
			DurationMin:  45,
			IntentVector: model.IntentVector{Intimacy: 0.5, Energy: energy, Novelty: 0.5, Discovery: 0.5, Pretense: 0.4, Pressure: 0.3},
		},
	}
}

func basePlan() model.Plan {
	return model.Plan{
		ID: "plan-1",
		Stops: []model.Stop{
			mkStop("a", 0.9, 40.70, -74.00, model.RoleStart),
			mkStop("b", 0.2, 40.71, -74.01, model.RoleMain),
			mkStop("c", 0.5, 40.72, -74.02, model.RoleWindDown),
		},
		Meta: model.PlanMeta{
			IdeaDate: model.PlanProfile{
				VibeID:         model.VibeAnniversaryIntimate,
				TravelMode:     model.TravelWalk,
				Mode:           model.ModeDefault,
				VibeTarget:     model.IntentVector{Intimacy: 0.5, Energy: 0.5, Novelty: 0.5, Discovery: 0.5, Pretense: 0.4, Pressure: 0.3},
				VibeImportance: model.IntentVector{Intimacy: 1, Energy: 1, Novelty: 1, Discovery: 1, Pretense: 1, Pressure: 1},
			},
		},
	}
}

func TestFindReorderSuggestionSingleStopNoSuggestion(t *testing.T) {
	engine := compute.NewEngine()
	plan := model.Plan{ID: "p", Stops: []model.Stop{mkStop("a", 0.5, 40, -74, model.RoleStart)}}
	live, err := engine.RecomputeLive(plan, time.Now())
	if err != nil {
		t.Fatalf("RecomputeLive error: %v", err)
	}
	result := FindReorderSuggestion(engine, live, time.Now())
	if result.Suggestion != nil {
		t.Errorf("expected no reorder suggestion for a single-stop plan")
	}
}

func TestFindReorderSuggestionImprovesJourneyScoreWhenAccepted(t *testing.T) {
	engine := compute.NewEngine()
	now := time.Now()
	live, err := engine.RecomputeLive(basePlan(), now)
	if err != nil {
		t.Fatalf("RecomputeLive error: %v", err)
	}
	result := FindReorderSuggestion(engine, live, now)
	if result.Evaluated == 0 {
		t.Error("expected at least one reorder candidate evaluated")
	}
	if result.Suggestion != nil {
		if result.Suggestion.Impact.Delta < MinReorderDelta {
			t.Errorf("accepted suggestion delta %v below MinReorderDelta %v", result.Suggestion.Impact.Delta, MinReorderDelta)
		}
		if len(result.Suggestion.PatchOps) != 1 || result.Suggestion.PatchOps[0].Kind != model.PatchMoveStop {
			t.Errorf("expected a single moveStop patch op, got %+v", result.Suggestion.PatchOps)
		}
	}
}

func TestFindReorderSuggestionDeterministic(t *testing.T) {
	engine := compute.NewEngine()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	live, err := engine.RecomputeLive(basePlan(), now)
	if err != nil {
		t.Fatalf("RecomputeLive error: %v", err)
	}
	first := FindReorderSuggestion(engine, live, now)
	second := FindReorderSuggestion(engine, live, now)
	if (first.Suggestion == nil) != (second.Suggestion == nil) {
		t.Fatal("non-deterministic acceptance")
	}
	if first.Suggestion != nil && first.Suggestion.ID != second.Suggestion.ID {
		t.Errorf("non-deterministic suggestion id: %q != %q", first.Suggestion.ID, second.Suggestion.ID)
	}
}
