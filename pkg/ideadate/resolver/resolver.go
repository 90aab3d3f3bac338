// Package resolver defines the candidate-resolver contract (§6) and a
// deterministic local mock adapter used whenever a real resolver is absent
// or fails (§4.7, §4.12).
package resolver

import (
	"context"
	"fmt"
	"sort"

	"github.com/ideadate/journey-engine/pkg/ideadate/model"
)

// Candidate is one external venue candidate returned by a resolver.
type Candidate struct {
	PlaceID          string   `json:"placeId"`
	Name             string   `json:"name"`
	Lat              float64  `json:"lat"`
	Lng              float64  `json:"lng"`
	Types            []string `json:"types,omitempty"`
	PriceLevel       *int     `json:"priceLevel,omitempty"`
	EditorialSummary string   `json:"editorialSummary,omitempty"`
}

// CandidateResolver is the engine's only external collaborator. It must be
// pure with respect to its arguments from the engine's point of view, may
// return an empty slice on any failure, and must never panic into the
// engine (§6).
type CandidateResolver interface {
	SearchCandidates(ctx context.Context, role model.Role, stop model.Stop, plan model.Plan, radiusMeters float64, vibeID model.VibeID, limit int) ([]Candidate, error)
}

// MaxLimit is the resolver contract's hard cap on requested candidates.
const MaxLimit = 8

// LocalMockResolver derives candidates from other stops already in the
// plan, reusing their coordinates and types under a synthesized
// "mock:<subject>:<place>" id, so replacement search always has something to
// evaluate even with no live resolver wired in. It never errors.
type LocalMockResolver struct{}

// SearchCandidates implements CandidateResolver by synthesizing up to limit
// candidates from the plan's other stops, deterministically ordered by
// synthesized id.
func (LocalMockResolver) SearchCandidates(_ context.Context, _ model.Role, subject model.Stop, plan model.Plan, _ float64, _ model.VibeID, limit int) ([]Candidate, error) {
	if limit <= 0 || limit > MaxLimit {
		limit = MaxLimit
	}

	var out []Candidate
	for _, s := range plan.Stops {
		if s.ID == subject.ID {
			continue
		}
		ll := latLngOf(s)
		if ll == nil {
			continue
		}
		base := s.PlaceIDOf()
		if base == "" {
			base = s.ID
		}
		var types []string
		if s.PlaceLite != nil {
			types = s.PlaceLite.Types
		}
		out = append(out, Candidate{
			PlaceID: fmt.Sprintf("mock:%s:%s", subject.ID, base),
			Name:    "Nearby alternative to " + s.Name,
			Lat:     ll.Lat,
			Lng:     ll.Lng,
			Types:   types,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].PlaceID < out[j].PlaceID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func latLngOf(s model.Stop) *model.LatLng {
	if s.PlaceLite != nil && s.PlaceLite.LatLng != nil {
		return s.PlaceLite.LatLng
	}
	if s.PlaceRef != nil && s.PlaceRef.LatLng != nil {
		return s.PlaceRef.LatLng
	}
	return nil
}

// EmptyResolver always returns an empty candidate list; it models the
// "resolver absent" case (§9: "treat its absence as a zero-candidate
// adapter").
type EmptyResolver struct{}

func (EmptyResolver) SearchCandidates(context.Context, model.Role, model.Stop, model.Plan, float64, model.VibeID, int) ([]Candidate, error) {
	return nil, nil
}
