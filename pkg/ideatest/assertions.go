package ideatest

import (
	"testing"

	"github.com/ideadate/journey-engine/pkg/ideadate/model"
)

// AssertUniqueStopIDs verifies every stop in plan has a unique id.
func AssertUniqueStopIDs(t *testing.T, plan model.Plan) {
	t.Helper()
	seen := make(map[string]bool, len(plan.Stops))
	for _, s := range plan.Stops {
		if seen[s.ID] {
			t.Errorf("duplicate stop id: %s", s.ID)
		}
		seen[s.ID] = true
	}
}

// AssertRolesMatchIndexConvention verifies every stop's role matches
// RoleForIndex for its position.
func AssertRolesMatchIndexConvention(t *testing.T, plan model.Plan) {
	t.Helper()
	n := len(plan.Stops)
	for i, s := range plan.Stops {
		if want := model.RoleForIndex(i, n); s.IdeaDate.Role != want {
			t.Errorf("stop %d (%s): role %q, want %q", i, s.ID, s.IdeaDate.Role, want)
		}
	}
}

// AssertStopCount verifies plan has exactly n stops.
func AssertStopCount(t *testing.T, plan model.Plan, n int) {
	t.Helper()
	if len(plan.Stops) != n {
		t.Errorf("expected %d stops, got %d", n, len(plan.Stops))
	}
}

// AssertScoreInRange verifies a journey score lies in [0,1].
func AssertScoreInRange(t *testing.T, score float64) {
	t.Helper()
	if score < 0 || score > 1 {
		t.Errorf("journey score %v out of [0,1] range", score)
	}
}

// AssertDeterministic recomputes fn twice and fails if the results differ;
// fn must itself be referentially transparent (no time.Now/rand inside).
func AssertDeterministic[T comparable](t *testing.T, fn func() T) {
	t.Helper()
	a := fn()
	b := fn()
	if a != b {
		t.Errorf("non-deterministic result: %v != %v", a, b)
	}
}
