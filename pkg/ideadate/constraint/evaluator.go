package constraint

import (
	"sort"

	"github.com/ideadate/journey-engine/pkg/ideadate/model"
)

// DefaultMaxTravelEdgeMinutes is the configurable threshold for the
// max_travel_edge hard constraint (§4.3).
const DefaultMaxTravelEdgeMinutes = 25

// Config holds the evaluator's one tunable knob.
type Config struct {
	MaxTravelEdgeMinutes int
}

// DefaultConfig returns the spec's default threshold.
func DefaultConfig() Config {
	return Config{MaxTravelEdgeMinutes: DefaultMaxTravelEdgeMinutes}
}

// Result bundles the evaluator's output.
type Result struct {
	Violations []model.ConstraintViolation
	HardCount  int
	SoftCount  int
	Narratives []string
}

// Evaluate runs all four constraint checks over a plan given its resolved
// travel edges and arc model, in the fixed check order implied by §4.3, and
// returns narratives in the canonical order (§4.3).
func Evaluate(plan model.Plan, travelEdges []model.TravelEdge, arc model.ArcModel, cfg Config) Result {
	if cfg.MaxTravelEdgeMinutes <= 0 {
		cfg.MaxTravelEdgeMinutes = DefaultMaxTravelEdgeMinutes
	}

	var violations []model.ConstraintViolation
	narrativeSeen := make(map[string]bool, len(model.ConstraintNarrativeOrder))

	if v, label := checkMaxTravelEdge(plan, travelEdges, cfg.MaxTravelEdgeMinutes); len(v) > 0 {
		violations = append(violations, v...)
		narrativeSeen[label] = true
	}
	if v, label := checkRoleOrder(plan); len(v) > 0 {
		violations = append(violations, v...)
		narrativeSeen[label] = true
	}
	if v, label, ok := checkDuplicateFamily(plan); ok {
		violations = append(violations, v)
		narrativeSeen[label] = true
	}
	if v, label, ok := checkLateSpike(arc); ok {
		violations = append(violations, v)
		narrativeSeen[label] = true
	}

	var hard, soft int
	for _, v := range violations {
		if v.Severity == model.ConstraintHard {
			hard++
		} else {
			soft++
		}
	}

	narratives := make([]string, 0, len(model.ConstraintNarrativeOrder))
	for _, label := range model.ConstraintNarrativeOrder {
		if narrativeSeen[label] {
			narratives = append(narratives, label)
		}
	}

	return Result{Violations: violations, HardCount: hard, SoftCount: soft, Narratives: narratives}
}

func checkMaxTravelEdge(plan model.Plan, edges []model.TravelEdge, maxMinutes int) ([]model.ConstraintViolation, string) {
	var out []model.ConstraintViolation
	for i, e := range edges {
		if e.Minutes > maxMinutes {
			if i+1 >= len(plan.Stops) {
				continue
			}
			out = append(out, model.ConstraintViolation{
				Kind:     "max_travel_edge",
				Severity: model.ConstraintHard,
				Message:  "a transfer exceeds the travel-time threshold",
				StopIDs:  []string{plan.Stops[i].ID, plan.Stops[i+1].ID},
				Edge:     &model.Edge{FromStopID: plan.Stops[i].ID, ToStopID: plan.Stops[i+1].ID},
				Meta:     map[string]any{"minutes": e.Minutes},
			})
		}
	}
	return out, model.NarrativeLongTransferRisk
}

func checkRoleOrder(plan model.Plan) ([]model.ConstraintViolation, string) {
	var out []model.ConstraintViolation
	n := len(plan.Stops)
	for i, s := range plan.Stops {
		if s.IdeaDate.Role != model.RoleForIndex(i, n) {
			out = append(out, model.ConstraintViolation{
				Kind:     "role_order",
				Severity: model.ConstraintHard,
				Message:  "a stop's role does not match its position in the journey",
				StopIDs:  []string{s.ID},
			})
		}
	}
	return out, model.NarrativeRoleOrderRisk
}

func checkDuplicateFamily(plan model.Plan) (model.ConstraintViolation, string, bool) {
	counts := make(map[string][]string)
	for _, s := range plan.Stops {
		var types []string
		if s.PlaceLite != nil {
			types = s.PlaceLite.Types
		}
		family := ClassifyFamily(types, s.Name)
		counts[family] = append(counts[family], s.ID)
	}

	families := make([]string, 0, len(counts))
	for f := range counts {
		if f != FamilyOther && len(counts[f]) >= 2 {
			families = append(families, f)
		}
	}
	if len(families) == 0 {
		return model.ConstraintViolation{}, "", false
	}
	sort.Strings(families)

	bestFamily := families[0]
	bestCount := len(counts[bestFamily])
	for _, f := range families[1:] {
		if len(counts[f]) > bestCount {
			bestFamily = f
			bestCount = len(counts[f])
		}
	}

	return model.ConstraintViolation{
		Kind:     "duplicate_family",
		Severity: model.ConstraintSoft,
		Message:  "multiple stops share the " + bestFamily + " family",
		StopIDs:  counts[bestFamily],
		Meta:     map[string]any{"family": bestFamily, "count": bestCount},
	}, model.NarrativeVarietyRisk, true
}

func checkLateSpike(arc model.ArcModel) (model.ConstraintViolation, string, bool) {
	if !arc.NoTaper {
		return model.ConstraintViolation{}, "", false
	}
	return model.ConstraintViolation{
		Kind:     "late_spike",
		Severity: model.ConstraintSoft,
		Message:  "the journey's energy does not taper toward the end",
	}, model.NarrativeLateSpikeRisk, true
}
