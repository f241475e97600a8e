package tutor

import (
	"math"
	"testing"

	"github.com/ankitray/sensei/internal/student"
)

func TestDifficultyToLevel(t *testing.T) {
	cases := []struct {
		diff float64
		want string
	}{
		{0, "easy"},
		{0.32, "easy"},
		{0.33, "medium"},
		{0.65, "medium"},
		{0.66, "hard"},
		{1, "hard"},
	}
	for _, tc := range cases {
		if got := DifficultyToLevel(tc.diff); got != tc.want {
			t.Errorf("DifficultyToLevel(%g) = %q, want %q", tc.diff, got, tc.want)
		}
	}
}

func TestApplyActionToDifficulty(t *testing.T) {
	cases := []struct {
		action string
		cur    float64
		want   float64
	}{
		{student.ActionIncreaseDifficulty, 0.5, 0.58},
		{student.ActionIncreaseDifficulty, 0.97, 1.0},
		{student.ActionDecreaseDifficulty, 0.5, 0.42},
		{student.ActionDecreaseDifficulty, 0.03, 0.0},
		{student.ActionSwitchStyle, 0.5, 0.52},
		{student.ActionOfferRevision, 0.5, 0.46},
		{"unknown", 0.5, 0.5},
	}
	for _, tc := range cases {
		if got := ApplyActionToDifficulty(tc.action, tc.cur); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("ApplyActionToDifficulty(%q, %g) = %g, want %g", tc.action, tc.cur, got, tc.want)
		}
	}
}

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestInferResponse(t *testing.T) {
	cases := []struct {
		name string
		sig  Signals
		want student.Response
	}{
		{"correct wins", Signals{Correct: boolPtr(true), Feedback: "Too Hard"}, student.ResponseSuccess},
		{"incorrect and hard", Signals{Correct: boolPtr(false), Feedback: "Too Hard"}, student.ResponseFrustrated},
		{"incorrect and slow", Signals{Correct: boolPtr(false), TimeSpent: floatPtr(60)}, student.ResponseFrustrated},
		{"incorrect otherwise", Signals{Correct: boolPtr(false)}, student.ResponseBored},
		{"unknown, hard feedback", Signals{Feedback: "way too hard"}, student.ResponseFrustrated},
		{"unknown, easy feedback", Signals{Feedback: "Too Easy"}, student.ResponseBored},
		{"unknown, unclear feedback", Signals{Feedback: "unclear wording"}, student.ResponseConfused},
		{"unknown, other feedback", Signals{Feedback: "fine I guess"}, student.ResponseImproved},
		{"no signals", Signals{}, student.ResponseNeutral},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := InferResponse(tc.sig); got != tc.want {
				t.Errorf("InferResponse(%+v) = %q, want %q", tc.sig, got, tc.want)
			}
		})
	}
}

func TestStepFromFeedbackWithoutHistory(t *testing.T) {
	tut := NewSeeded(DefaultConfig(), 5)
	sim := student.NewSeeded(5)

	res := StepFromFeedback(tut, sim, "", nil, 0.3, Signals{
		Correct:  boolPtr(false),
		Feedback: "Too Hard",
	})

	if res.Response != student.ResponseFrustrated {
		t.Errorf("Response = %q, want frustrated", res.Response)
	}
	// Reward(frustrated) on the starting traits minus the incorrect penalty.
	if math.Abs(res.Reward-(-10.4)) > 1e-9 {
		t.Errorf("Reward = %g, want -10.4", res.Reward)
	}
	if res.NextLevel != DifficultyToLevel(res.NextDifficulty) {
		t.Errorf("NextLevel %q does not match NextDifficulty %g", res.NextLevel, res.NextDifficulty)
	}
	found := false
	for _, a := range student.Actions {
		if a == res.NextAction {
			found = true
		}
	}
	if !found {
		t.Errorf("NextAction %q is not a known action", res.NextAction)
	}
	// No prior action means nothing to learn from.
	if tut.Q(res.NextState, res.NextAction) != 0 {
		t.Error("Q-table should be untouched without a previous action")
	}
}

func TestStepFromFeedbackUpdatesQTable(t *testing.T) {
	tut := NewSeeded(DefaultConfig(), 5)
	sim := student.NewSeeded(5)

	last := tut.Discretize(sim.Mastery, sim.Frustration, sim.Engagement)
	res := StepFromFeedback(tut, sim, student.ActionOfferRevision, &last, 0.3, Signals{})

	if res.Response != student.ResponseImproved {
		t.Errorf("Response = %q, want improved", res.Response)
	}
	if tut.Q(last, student.ActionOfferRevision) == 0 {
		t.Error("expected a Q-table update for the previous action")
	}
	if res.Reward <= 0 {
		t.Errorf("Reward = %g, want positive for an improvement", res.Reward)
	}
}

func TestStepFromFeedbackSlowAnswerPenalty(t *testing.T) {
	tut := NewSeeded(DefaultConfig(), 5)
	sim := student.NewSeeded(5)

	fast := StepFromFeedback(tut, sim, "", nil, 0.3, Signals{Correct: boolPtr(true)})
	sim2 := student.NewSeeded(5)
	slow := StepFromFeedback(tut, sim2, "", nil, 0.3, Signals{Correct: boolPtr(true), TimeSpent: floatPtr(150)})

	if math.Abs((fast.Reward-slow.Reward)-3.0) > 1e-9 {
		t.Errorf("slow-answer penalty = %g, want 3", fast.Reward-slow.Reward)
	}
}
