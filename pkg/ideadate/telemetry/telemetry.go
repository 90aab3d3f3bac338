// Package telemetry assembles the debug refinement-stats contract (§6):
// the candidate/evaluated/discarded tallies, per-pass breakdown, and weight
// map snapshot surfaced on SuggestionPack.DebugRefineStats.
package telemetry

import (
	"github.com/ideadate/journey-engine/pkg/ideadate/arcmodel"
	"github.com/ideadate/journey-engine/pkg/ideadate/model"
	"github.com/ideadate/journey-engine/pkg/ideadate/refine"
	"github.com/ideadate/journey-engine/pkg/ideadate/tiltpolicy"
)

// BuildRefineStats combines the reorder search's candidate count, the
// replacement ladder's stats, the effective weight map, and the effective
// tilt into one RefineStats payload.
func BuildRefineStats(reorderEvaluated int, replStats refine.ReplacementStats, weights arcmodel.Weights, tilt model.PrefTilt, timing model.TimingStats) model.RefineStats {
	passUsed := replStats.PassUsed
	if passUsed == "" && reorderEvaluated > 0 {
		passUsed = "reorder_only"
	}

	return model.RefineStats{
		CandidateCount: replStats.CandidateCount,
		EvaluatedCount: replStats.EvaluatedCount + reorderEvaluated,
		DiscardedCount: replStats.DiscardedCount,
		DiscardCounts:  replStats.DiscardCounts,
		PassUsed:       passUsed,
		PassBreakdown:  replStats.PassBreakdown,
		ReorderRepair:  replStats.ReorderRepair,
		TimingMs:       timing,
		WeightMap:      tiltpolicy.AsFloatMap(weights),
		TiltProfile:    tilt,
	}
}
