package travel

import (
	"testing"

	"github.com/ideadate/journey-engine/pkg/ideadate/model"
)

func stopAt(id string, lat, lng float64) model.Stop {
	return model.Stop{
		ID: id,
		PlaceLite: &model.PlaceLite{
			PlaceID: "place-" + id,
			LatLng:  &model.LatLng{Lat: lat, Lng: lng},
		},
	}
}

func TestNodeKeyPrefersPlaceID(t *testing.T) {
	s := stopAt("a", 40.0, -74.0)
	if got := NodeKey(s); got != "place-a" {
		t.Errorf("NodeKey = %q, want place-a", got)
	}
}

func TestNodeKeyFallsBackToLatLng(t *testing.T) {
	s := model.Stop{ID: "a", PlaceLite: &model.PlaceLite{LatLng: &model.LatLng{Lat: 40.712800, Lng: -74.006000}}}
	if got := NodeKey(s); got != "latlng:40.71280,-74.00600" {
		t.Errorf("NodeKey = %q", got)
	}
}

func TestNodeKeyFallsBackToStopID(t *testing.T) {
	s := model.Stop{ID: "a"}
	if got := NodeKey(s); got != "a" {
		t.Errorf("NodeKey = %q, want a", got)
	}
}

func TestNodeKeyUnknown(t *testing.T) {
	s := model.Stop{}
	if got := NodeKey(s); got != "unknown" {
		t.Errorf("NodeKey = %q, want unknown", got)
	}
}

func TestEstimateDistanceIdenticalPlace(t *testing.T) {
	a := model.Stop{ID: "a", PlaceLite: &model.PlaceLite{PlaceID: "p1"}}
	b := model.Stop{ID: "b", PlaceLite: &model.PlaceLite{PlaceID: "p1"}}
	if got := EstimateDistanceMeters(a, b); got != identicalPlaceMeters {
		t.Errorf("EstimateDistanceMeters = %v, want %v", got, identicalPlaceMeters)
	}
}

func TestEstimateDistanceFallback(t *testing.T) {
	a := model.Stop{ID: "a"}
	b := model.Stop{ID: "b"}
	if got := EstimateDistanceMeters(a, b); got != fallbackMeters {
		t.Errorf("EstimateDistanceMeters = %v, want %v", got, fallbackMeters)
	}
}

func TestEstimateMinutesFloorsAtOne(t *testing.T) {
	if got := EstimateMinutes(1, model.TravelWalk); got != 1 {
		t.Errorf("EstimateMinutes(1) = %v, want 1", got)
	}
}

func TestEstimateMinutesWalkVsDrive(t *testing.T) {
	meters := 5000.0
	walk := EstimateMinutes(meters, model.TravelWalk)
	drive := EstimateMinutes(meters, model.TravelDrive)
	if walk <= drive {
		t.Errorf("expected walking to take longer than driving for the same distance: walk=%d drive=%d", walk, drive)
	}
}

func TestEstimateEdgeRoundTrip(t *testing.T) {
	a := stopAt("a", 40.0, -74.0)
	b := stopAt("b", 40.01, -74.01)
	edge := EstimateEdge(a, b, model.TravelWalk)
	if edge.FromKey != "place-a" || edge.ToKey != "place-b" {
		t.Errorf("unexpected edge keys: %+v", edge)
	}
	if edge.Minutes < 1 {
		t.Errorf("expected at least 1 minute, got %d", edge.Minutes)
	}
}

func TestCountRevisitsNoRepeats(t *testing.T) {
	if got := CountRevisits([]string{"a", "b", "c"}); got != 0 {
		t.Errorf("CountRevisits = %d, want 0", got)
	}
}

func TestCountRevisitsImmediateRepeatIsNotARevisit(t *testing.T) {
	// Visiting the same node key twice in a row is not a backtrack; it is
	// only a revisit when a distinct node separates the two visits.
	if got := CountRevisits([]string{"a", "a", "b"}); got != 0 {
		t.Errorf("CountRevisits = %d, want 0", got)
	}
}

func TestCountRevisitsDetectsBacktrack(t *testing.T) {
	if got := CountRevisits([]string{"a", "b", "a"}); got != 1 {
		t.Errorf("CountRevisits = %d, want 1", got)
	}
}

func TestCountRevisitsMultipleBacktracks(t *testing.T) {
	if got := CountRevisits([]string{"a", "b", "a", "c", "b"}); got != 2 {
		t.Errorf("CountRevisits = %d, want 2", got)
	}
}
