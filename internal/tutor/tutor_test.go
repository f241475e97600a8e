package tutor

import (
	"math"
	"testing"

	"github.com/ankitray/sensei/internal/student"
)

func TestDiscretize(t *testing.T) {
	tut := NewSeeded(DefaultConfig(), 1)

	cases := []struct {
		in   float64
		want int
	}{
		{-0.5, 0},
		{0, 0},
		{0.19, 0},
		{0.2, 1},
		{0.5, 2},
		{0.79, 3},
		{0.9999, 4},
		{1.0, 4},
		{1.5, 4},
	}
	for _, tc := range cases {
		if got := tut.bucket(tc.in); got != tc.want {
			t.Errorf("bucket(%g) = %d, want %d", tc.in, got, tc.want)
		}
	}

	key := tut.Discretize(0.30, 0.20, 0.70)
	if key != (StateKey{1, 1, 3}) {
		t.Errorf("Discretize(start traits) = %v, want [1 1 3]", key)
	}
}

func TestUpdateBellman(t *testing.T) {
	tut := NewSeeded(DefaultConfig(), 1)
	s := StateKey{1, 1, 3}
	n := StateKey{2, 1, 3}

	tut.Update(s, student.ActionIncreaseDifficulty, 10, n)
	if got := tut.Q(s, student.ActionIncreaseDifficulty); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Q after first update = %g, want 1.0", got)
	}

	// Seed the next state so its max feeds back through the discount.
	tut.Update(n, student.ActionSwitchStyle, 20, StateKey{3, 1, 3})
	if got := tut.Q(n, student.ActionSwitchStyle); math.Abs(got-2.0) > 1e-12 {
		t.Errorf("Q(next) = %g, want 2.0", got)
	}

	tut.Update(s, student.ActionIncreaseDifficulty, 10, n)
	// 1.0 + 0.1*(10 + 0.95*2.0 - 1.0) = 2.09
	if got := tut.Q(s, student.ActionIncreaseDifficulty); math.Abs(got-2.09) > 1e-12 {
		t.Errorf("Q after second update = %g, want 2.09", got)
	}
}

func TestChooseActionGreedy(t *testing.T) {
	tut := NewSeeded(DefaultConfig(), 1)
	tut.Epsilon = 0
	s := StateKey{1, 1, 3}

	tut.Update(s, student.ActionOfferRevision, 10, StateKey{2, 0, 3})
	for i := 0; i < 20; i++ {
		if got := tut.ChooseAction(s); got != student.ActionOfferRevision {
			t.Fatalf("ChooseAction = %q, want %q", got, student.ActionOfferRevision)
		}
	}
}

func TestChooseActionExplores(t *testing.T) {
	tut := NewSeeded(DefaultConfig(), 1)
	tut.Epsilon = 1
	s := StateKey{0, 0, 0}

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[tut.ChooseAction(s)] = true
	}
	if len(seen) != len(student.Actions) {
		t.Errorf("exploration reached %d actions, want %d", len(seen), len(student.Actions))
	}
}

func TestReward(t *testing.T) {
	sim := student.NewSeeded(1)

	if got := Reward(sim, student.ResponseSuccess); math.Abs(got-13.6) > 1e-9 {
		t.Errorf("Reward(success) = %g, want 13.6", got)
	}
	if got := Reward(sim, student.ResponseFrustrated); math.Abs(got-(-8.4)) > 1e-9 {
		t.Errorf("Reward(frustrated) = %g, want -8.4", got)
	}
	if got := Reward(sim, student.ResponseBored); math.Abs(got-(-2.4)) > 1e-9 {
		t.Errorf("Reward(bored) = %g, want -2.4", got)
	}

	sim.Frustration = 0.95
	if got := Reward(sim, student.ResponseSuccess); math.Abs(got-(-36.4)) > 1e-9 {
		t.Errorf("Reward(success, frustrated learner) = %g, want -36.4", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	tut := NewSeeded(DefaultConfig(), 1)
	tut.Update(StateKey{1, 1, 3}, student.ActionIncreaseDifficulty, 10, StateKey{2, 1, 3})
	tut.Update(StateKey{2, 1, 3}, student.ActionSwitchStyle, -6, StateKey{2, 2, 3})

	snap := tut.Snapshot()
	if _, ok := snap["(1, 1, 3)"]; !ok {
		t.Fatalf("snapshot missing expected key, got %v", snap)
	}

	restored := NewSeeded(DefaultConfig(), 2)
	restored.Restore(snap)
	if got := restored.Q(StateKey{1, 1, 3}, student.ActionIncreaseDifficulty); got != tut.Q(StateKey{1, 1, 3}, student.ActionIncreaseDifficulty) {
		t.Errorf("restored Q = %g, want %g", got, tut.Q(StateKey{1, 1, 3}, student.ActionIncreaseDifficulty))
	}
}

func TestRestoreSkipsMalformedKeys(t *testing.T) {
	tut := NewSeeded(DefaultConfig(), 1)
	tut.Restore(map[string]map[string]float64{
		"garbage":      {student.ActionSwitchStyle: 1},
		"(1, 2)":       {student.ActionSwitchStyle: 2},
		"(1, 2, x)":    {student.ActionSwitchStyle: 3},
		"(4, 3, 2)":    {student.ActionSwitchStyle: 4},
		"( 0 , 0 , 0)": {student.ActionOfferRevision: 5},
	})

	if got := tut.States(); got != 2 {
		t.Errorf("States() = %d, want 2 valid entries", got)
	}
	if got := tut.Q(StateKey{4, 3, 2}, student.ActionSwitchStyle); got != 4 {
		t.Errorf("Q = %g, want 4", got)
	}
	if got := tut.Q(StateKey{0, 0, 0}, student.ActionOfferRevision); got != 5 {
		t.Errorf("Q = %g, want 5", got)
	}
}

func TestTrainSmoke(t *testing.T) {
	tut := NewSeeded(DefaultConfig(), 42)
	stats := Train(tut, 50, 40, 42)

	if len(stats) != 50 {
		t.Fatalf("len(stats) = %d, want 50", len(stats))
	}
	if tut.States() == 0 {
		t.Error("training visited no states")
	}
	if tut.Epsilon >= DefaultConfig().Epsilon {
		t.Errorf("epsilon did not decay: %g", tut.Epsilon)
	}
	for _, s := range stats {
		if s.FinalMastery < 0 || s.FinalMastery > 1 {
			t.Errorf("episode %d: mastery %g out of range", s.Episode, s.FinalMastery)
		}
		if s.Epsilon <= 0 || s.Epsilon > DefaultConfig().Epsilon {
			t.Errorf("episode %d: epsilon %g out of range", s.Episode, s.Epsilon)
		}
	}
	if avg := AverageReward(stats, 10); avg == 0 {
		t.Error("expected nonzero recent average reward")
	}
}

func TestEvaluatePolicy(t *testing.T) {
	tut := NewSeeded(DefaultConfig(), 42)
	Train(tut, 30, 30, 42)

	results := EvaluatePolicy(tut, 10, 30, 42)
	if len(results) != 10 {
		t.Fatalf("len(results) = %d, want 10", len(results))
	}
	for _, r := range results {
		if r.Mastery < 0 || r.Mastery > 1 || r.Frustration < 0 || r.Frustration > 1 {
			t.Errorf("result out of range: %+v", r)
		}
	}
}
