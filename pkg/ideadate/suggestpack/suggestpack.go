// Package suggestpack implements suggestion_pack (§6): the entry point that
// recomputes a plan, searches for reorder and replacement suggestions under
// the effective tilt, dedupes, ranks, and narrates the result.
package suggestpack

import (
	"time"

	"github.com/ideadate/journey-engine/pkg/ideadate/compute"
	"github.com/ideadate/journey-engine/pkg/ideadate/model"
	"github.com/ideadate/journey-engine/pkg/ideadate/narrative"
	"github.com/ideadate/journey-engine/pkg/ideadate/rank"
	"github.com/ideadate/journey-engine/pkg/ideadate/refine"
	"github.com/ideadate/journey-engine/pkg/ideadate/resolver"
	"github.com/ideadate/journey-engine/pkg/ideadate/telemetry"
	"github.com/ideadate/journey-engine/pkg/ideadate/tiltpolicy"
)

// Build runs the full suggestion_pack pipeline and returns the resulting
// pack. res may be nil, in which case the local mock resolver stands in
// (§4.12).
func Build(engine *compute.Engine, plan model.Plan, res resolver.CandidateResolver, now time.Time) (model.SuggestionPack, error) {
	start := time.Now()

	live, err := engine.RecomputeLive(plan, now)
	if err != nil {
		return model.SuggestionPack{}, err
	}
	prepMs := time.Since(start).Milliseconds()

	evalStart := time.Now()
	tilt := tiltpolicy.EffectiveTilt(live.Plan.Meta.IdeaDate)
	weights := tiltpolicy.WeightMap(tilt)

	reorderResult := refine.FindReorderSuggestion(engine, live, now)
	replacements, replStats := refine.FindReplacementSuggestions(engine, live, weights, res, live.Plan.Meta.IdeaDate.VibeID, now)
	evaluationMs := time.Since(evalStart).Milliseconds()

	rankStart := time.Now()
	var combined []model.Suggestion
	if reorderResult.Suggestion != nil {
		combined = append(combined, *reorderResult.Suggestion)
	}
	combined = append(combined, replacements...)
	combined = DedupeBySemanticSignature(live.Plan, combined)
	ranked := rank.Rank(combined, live.Plan)

	for i := range ranked {
		narrative.Compose(&ranked[i], tilt)
	}
	rankingMs := time.Since(rankStart).Milliseconds()

	timing := model.TimingStats{
		TotalMs:      time.Since(start).Milliseconds(),
		PrepMs:       prepMs,
		EvaluationMs: evaluationMs,
		RankingMs:    rankingMs,
	}
	stats := telemetry.BuildRefineStats(reorderResult.Evaluated, replStats, weights, tilt, timing)

	return model.SuggestionPack{
		Plan:             live.Plan,
		Computed:         live.Computed,
		Travel:           live.Travel,
		ArcModel:         live.ArcModel,
		Suggestions:      ranked,
		DebugRefineStats: &stats,
	}, nil
}
