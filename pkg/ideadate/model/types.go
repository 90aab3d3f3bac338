// Package model defines the data types shared across the idea-date journey
// engine: plans, stops, intent vectors, computed metrics, the arc model, and
// suggestions. Every type carries JSON tags (for telemetry and CLI output,
// marshaled with github.com/goccy/go-json). The plan-side types in this file
// and the patch ops also carry YAML tags (for the CLI's plan and patch-op
// files, via gopkg.in/yaml.v3); the computed-metric and suggestion types
// are JSON-only.
package model

// IntentVector holds six named axes, each expected in [0,1].
type IntentVector struct {
	Intimacy  float64 `json:"intimacy" yaml:"intimacy"`
	Energy    float64 `json:"energy" yaml:"energy"`
	Novelty   float64 `json:"novelty" yaml:"novelty"`
	Discovery float64 `json:"discovery" yaml:"discovery"`
	Pretense  float64 `json:"pretense" yaml:"pretense"`
	Pressure  float64 `json:"pressure" yaml:"pressure"`
}

// Axes returns the six named axes in a fixed, stable order. Every
// accumulation over an IntentVector in this engine iterates this order so
// floating-point sums are reproducible across runs.
func (v IntentVector) Axes() [6]float64 {
	return [6]float64{v.Intimacy, v.Energy, v.Novelty, v.Discovery, v.Pretense, v.Pressure}
}

// Role is a stop's position in the journey arc.
type Role string

const (
	RoleStart    Role = "start"
	RoleMain     Role = "main"
	RoleWindDown Role = "windDown"
)

// RoleForIndex returns the role implied by a stop's position in a plan of
// size n, per invariant P2.
func RoleForIndex(index, n int) Role {
	switch {
	case index == 0:
		return RoleStart
	case n >= 2 && index == n-1:
		return RoleWindDown
	default:
		return RoleMain
	}
}

// Overrides captures user dials, each in [-1,1].
type Overrides struct {
	ChillLively    float64 `json:"chillLively,omitempty" yaml:"chillLively,omitempty"`
	RelaxedActive  float64 `json:"relaxedActive,omitempty" yaml:"relaxedActive,omitempty"`
	QuickLingering float64 `json:"quickLingering,omitempty" yaml:"quickLingering,omitempty"`
}

// LatLng is a geographic coordinate.
type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// PlaceRef identifies a place in an external provider's namespace.
type PlaceRef struct {
	Provider   string  `json:"provider,omitempty" yaml:"provider,omitempty"`
	PlaceID    string  `json:"placeId,omitempty" yaml:"placeId,omitempty"`
	LatLng     *LatLng `json:"latLng,omitempty" yaml:"latLng,omitempty"`
	MapsURL    string  `json:"mapsUrl,omitempty" yaml:"mapsUrl,omitempty"`
	WebsiteURL string  `json:"websiteUrl,omitempty" yaml:"websiteUrl,omitempty"`
	Label      string  `json:"label,omitempty" yaml:"label,omitempty"`
}

// PlaceLite is a lightweight, display-ready snapshot of a place.
type PlaceLite struct {
	PlaceID          string   `json:"placeId,omitempty" yaml:"placeId,omitempty"`
	Name             string   `json:"name,omitempty" yaml:"name,omitempty"`
	Types            []string `json:"types,omitempty" yaml:"types,omitempty"`
	PriceLevel       *int     `json:"priceLevel,omitempty" yaml:"priceLevel,omitempty"`
	EditorialSummary string   `json:"editorialSummary,omitempty" yaml:"editorialSummary,omitempty"`
	Rating           *float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
	PhotoURL         string   `json:"photoUrl,omitempty" yaml:"photoUrl,omitempty"`
	LatLng           *LatLng  `json:"latLng,omitempty" yaml:"latLng,omitempty"`
}

// IdeaDateProfile is the per-stop planning profile.
type IdeaDateProfile struct {
	Role             Role         `json:"role" yaml:"role"`
	IntentVector     IntentVector `json:"intentVector" yaml:"intentVector"`
	EnergyLevel      float64      `json:"energyLevel" yaml:"energyLevel"`
	DurationMin      int          `json:"durationMin" yaml:"durationMin"`
	SourceGoogleType string       `json:"sourceGoogleType,omitempty" yaml:"sourceGoogleType,omitempty"`
	Overrides        Overrides    `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// Stop is a single venue in the journey.
type Stop struct {
	ID        string           `json:"id" yaml:"id"`
	Name      string           `json:"name" yaml:"name"`
	PlaceRef  *PlaceRef        `json:"placeRef,omitempty" yaml:"placeRef,omitempty"`
	PlaceLite *PlaceLite       `json:"placeLite,omitempty" yaml:"placeLite,omitempty"`
	IdeaDate  IdeaDateProfile  `json:"ideaDate" yaml:"ideaDate"`
}

// VibeID names a supported date vibe.
type VibeID string

const (
	VibeFirstDateLowPressure VibeID = "first_date_low_pressure"
	VibeAnniversaryIntimate  VibeID = "anniversary_intimate"
)

// TravelMode is the mode of transport assumed between stops.
type TravelMode string

const (
	TravelWalk  TravelMode = "walk"
	TravelDrive TravelMode = "drive"
)

// IdeaDateMode is a named preset controlling default tilt and labeling.
type IdeaDateMode string

const (
	ModeDefault               IdeaDateMode = "default"
	ModeTouristDay            IdeaDateMode = "tourist_day"
	ModeFamily                IdeaDateMode = "family"
	ModeAnniversaryIntimate   IdeaDateMode = "anniversary_intimate"
	ModeFirstDateLowPressure  IdeaDateMode = "first_date_low_pressure"
)

// PrefTilt is user steering across three axes, each in {-1,0,1}.
type PrefTilt struct {
	Vibe    int `json:"vibe" yaml:"vibe"`
	Walking int `json:"walking" yaml:"walking"`
	Peak    int `json:"peak" yaml:"peak"`
}

// IsNeutral reports whether the tilt is the all-zero triple.
func (t PrefTilt) IsNeutral() bool {
	return t.Vibe == 0 && t.Walking == 0 && t.Peak == 0
}

// PlanProfile is the plan-level idea-date metadata (meta.ideaDate).
type PlanProfile struct {
	VibeID                VibeID       `json:"vibeId" yaml:"vibeId"`
	VibeTarget            IntentVector `json:"vibeTarget" yaml:"vibeTarget"`
	VibeImportance        IntentVector `json:"vibeImportance" yaml:"vibeImportance"`
	TravelMode            TravelMode   `json:"travelMode" yaml:"travelMode"`
	Mode                  IdeaDateMode `json:"mode" yaml:"mode"`
	PrefTilt              PrefTilt     `json:"prefTilt" yaml:"prefTilt"`
	SeedResolverTelemetry bool         `json:"seedResolverTelemetry,omitempty" yaml:"seedResolverTelemetry,omitempty"`
}

// PlanMeta wraps plan-level metadata namespaces. Only IdeaDate is modeled;
// other namespaces are out of scope for this engine.
type PlanMeta struct {
	IdeaDate PlanProfile `json:"ideaDate" yaml:"ideaDate"`
}

// Plan is an ordered, non-empty sequence of stops plus plan metadata.
type Plan struct {
	ID    string   `json:"id" yaml:"id"`
	Stops []Stop   `json:"stops" yaml:"stops"`
	Meta  PlanMeta `json:"meta" yaml:"meta"`
}

// Clone returns a deep-enough copy of the plan: Plans and Suggestions are
// immutable values in this engine, so every transform starts from Clone
// rather than mutating the input.
func (p Plan) Clone() Plan {
	stops := make([]Stop, len(p.Stops))
	copy(stops, p.Stops)
	return Plan{ID: p.ID, Stops: stops, Meta: p.Meta}
}
