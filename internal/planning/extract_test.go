package planning

import (
	"errors"
	"reflect"
	"testing"
)

func TestExtractTutoringPlan(t *testing.T) {
	dom := TutoringDomain("ch1")
	res, err := Extract(TutoringInitial("ch1"), TutoringGoal("ch1"), dom, 50)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"TeachConcept",
		"AskNeutralQuestion",
		"EvalNeutral_Confused",
		"EvalNeutral_Confident",
		"EvalNeutral_Bored",
		"GiveEasyProblem_FromConfused",
		"EvalNeutral_Frustrated",
		"GiveHardProblem_FromConfident",
		"GiveHardProblem_FromBored",
		"FinalAssessment_AllBranches",
	}
	if !reflect.DeepEqual(res.Plan, want) {
		t.Errorf("Plan = %v, want %v", res.Plan, want)
	}
	if !res.Complete {
		t.Error("expected extraction to resolve down to the initial state")
	}
	if res.GoalLevel != 6 {
		t.Errorf("GoalLevel = %d, want 6", res.GoalLevel)
	}
}

func TestExtractedPlanSimulates(t *testing.T) {
	dom := TutoringDomain("ch1")
	initial, goal := TutoringInitial("ch1"), TutoringGoal("ch1")

	res, err := Extract(initial, goal, dom, 50)
	if err != nil {
		t.Fatal(err)
	}
	final, err := Simulate(initial, res.Plan, dom)
	if err != nil {
		t.Fatalf("extracted plan failed to simulate: %v", err)
	}
	if !final.ContainsAll(goal) {
		t.Errorf("final state %s does not contain goal %s", final, goal)
	}
}

func TestExtractUnreachableGoal(t *testing.T) {
	dom := TutoringDomain("ch1")
	_, err := Extract(TutoringInitial("ch1"), NewState(Lit("Impossible", "ch1")), dom, 50)
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("err = %v, want ErrUnreachable", err)
	}
}
