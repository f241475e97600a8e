package planning

import (
	"strings"
	"testing"
)

func TestSimulateUnknownAction(t *testing.T) {
	dom := TutoringDomain("ch1")
	_, err := Simulate(TutoringInitial("ch1"), []string{"TeachConcept", "Nope"}, dom)
	if err == nil || !strings.Contains(err.Error(), `step 2: action "Nope" not found`) {
		t.Errorf("err = %v, want unknown-action error at step 2", err)
	}
}

func TestSimulateUnsatisfiedPrecondition(t *testing.T) {
	dom := TutoringDomain("ch1")
	_, err := Simulate(TutoringInitial("ch1"), []string{"AskNeutralQuestion"}, dom)
	if err == nil || !strings.Contains(err.Error(), "step 1") ||
		!strings.Contains(err.Error(), "not satisfied") {
		t.Errorf("err = %v, want precondition error at step 1", err)
	}
}

func TestSimulateDoesNotMutateInput(t *testing.T) {
	dom := TutoringDomain("ch1")
	initial := TutoringInitial("ch1")
	if _, err := Simulate(initial, []string{"TeachConcept"}, dom); err != nil {
		t.Fatal(err)
	}
	if !initial.Equal(TutoringInitial("ch1")) {
		t.Errorf("initial state was mutated: %s", initial)
	}
}

func TestValidateGoalNotAchieved(t *testing.T) {
	dom := TutoringDomain("ch1")
	_, err := Validate(TutoringInitial("ch1"), TutoringGoal("ch1"), []string{"TeachConcept"}, dom)
	if err == nil || !strings.Contains(err.Error(), "does not achieve goal") {
		t.Errorf("err = %v, want goal-not-achieved error", err)
	}
}
