// Package travel estimates travel time between journey stops and caches the
// results. Distance falls back through haversine, identical-place, and a
// fixed default in that order (§4.2); minutes are derived from a per-mode
// walking/driving speed.
package travel

import (
	"fmt"
	"math"

	"github.com/ideadate/journey-engine/pkg/ideadate/model"
)

const (
	earthRadiusMeters = 6371000.0

	walkSpeedMPS  = 1.4
	driveSpeedMPS = 9.0

	identicalPlaceMeters = 120.0
	fallbackMeters       = 1800.0
)

// NodeKey returns the identity used to key travel edges and detect
// backtracking: placeId if present, else a 5-decimal-place lat/lng string,
// else the stop id, else "unknown".
func NodeKey(s model.Stop) string {
	if id := s.PlaceIDOf(); id != "" {
		return id
	}
	if ll := latLngOf(s); ll != nil {
		return fmt.Sprintf("latlng:%.5f,%.5f", ll.Lat, ll.Lng)
	}
	if s.ID != "" {
		return s.ID
	}
	return "unknown"
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

func speedMPS(mode model.TravelMode) float64 {
	if mode == model.TravelDrive {
		return driveSpeedMPS
	}
	return walkSpeedMPS
}

// haversineMeters returns the great-circle distance between two points.
func haversineMeters(a, b model.LatLng) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusMeters * c
}

// EstimateDistanceMeters implements the §4.2 distance fallback ladder.
func EstimateDistanceMeters(from, to model.Stop) float64 {
	fromLL, toLL := latLngOf(from), latLngOf(to)
	if fromLL != nil && toLL != nil {
		return haversineMeters(*fromLL, *toLL)
	}
	fromID, toID := from.PlaceIDOf(), to.PlaceIDOf()
	if fromID != "" && fromID == toID {
		return identicalPlaceMeters
	}
	return fallbackMeters
}

// EstimateMinutes converts a distance into whole minutes of travel time for
// the given mode: max(1, round((distance/speed)/60)).
func EstimateMinutes(meters float64, mode model.TravelMode) int {
	seconds := meters / speedMPS(mode)
	minutes := int(math.Round(seconds / 60))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// EstimateEdge computes the travel edge between two stops, independent of
// the cache.
func EstimateEdge(from, to model.Stop, mode model.TravelMode) model.TravelEdge {
	meters := EstimateDistanceMeters(from, to)
	return model.TravelEdge{
		FromKey: NodeKey(from),
		ToKey:   NodeKey(to),
		Mode:    mode,
		Minutes: EstimateMinutes(meters, mode),
		Meters:  meters,
	}
}
