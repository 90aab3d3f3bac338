package telemetry

import (
	"testing"

	"github.com/ideadate/journey-engine/pkg/ideadate/arcmodel"
	"github.com/ideadate/journey-engine/pkg/ideadate/model"
	"github.com/ideadate/journey-engine/pkg/ideadate/refine"
)

func TestBuildRefineStatsSumsEvaluatedCounts(t *testing.T) {
	replStats := refine.ReplacementStats{
		CandidateCount: 10,
		EvaluatedCount: 6,
		DiscardedCount: 4,
		DiscardCounts:  map[string]int{"below_threshold": 4},
		PassUsed:       "primary",
		PassBreakdown:  map[string]model.PassStats{},
	}
	stats := BuildRefineStats(2, replStats, arcmodel.DefaultWeights(), model.PrefTilt{}, model.TimingStats{TotalMs: 5})

	if stats.EvaluatedCount != 8 {
		t.Errorf("EvaluatedCount = %d, want 8 (6 replacement + 2 reorder)", stats.EvaluatedCount)
	}
	if stats.CandidateCount != 10 {
		t.Errorf("CandidateCount = %d, want 10", stats.CandidateCount)
	}
	if stats.PassUsed != "primary" {
		t.Errorf("PassUsed = %q, want %q (replacement pass takes priority)", stats.PassUsed, "primary")
	}
	if stats.TimingMs.TotalMs != 5 {
		t.Errorf("TimingMs.TotalMs = %d, want 5", stats.TimingMs.TotalMs)
	}
}

func TestBuildRefineStatsFallsBackToReorderOnlyWhenNoReplacementPass(t *testing.T) {
	replStats := refine.ReplacementStats{}
	stats := BuildRefineStats(3, replStats, arcmodel.DefaultWeights(), model.PrefTilt{}, model.TimingStats{})
	if stats.PassUsed != "reorder_only" {
		t.Errorf("PassUsed = %q, want reorder_only", stats.PassUsed)
	}
}

func TestBuildRefineStatsEmptyWhenNothingEvaluated(t *testing.T) {
	stats := BuildRefineStats(0, refine.ReplacementStats{}, arcmodel.DefaultWeights(), model.PrefTilt{}, model.TimingStats{})
	if stats.PassUsed != "" {
		t.Errorf("PassUsed = %q, want empty when nothing was evaluated", stats.PassUsed)
	}
}

func TestBuildRefineStatsIncludesWeightMapAndTilt(t *testing.T) {
	tilt := model.PrefTilt{Vibe: 1, Walking: -1, Peak: 1}
	weights := arcmodel.DefaultWeights()
	stats := BuildRefineStats(0, refine.ReplacementStats{}, weights, tilt, model.TimingStats{})
	if stats.TiltProfile != tilt {
		t.Errorf("TiltProfile = %+v, want %+v", stats.TiltProfile, tilt)
	}
	if len(stats.WeightMap) == 0 {
		t.Error("expected a non-empty weight map snapshot")
	}
}
