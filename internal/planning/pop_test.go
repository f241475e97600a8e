package planning

import (
	"errors"
	"reflect"
	"testing"
)

func TestPOPTutoringPlan(t *testing.T) {
	dom := TutoringDomain("ch1")
	initial, goal := TutoringInitial("ch1"), TutoringGoal("ch1")

	plan, err := NewPOPPlanner(dom).Plan(initial, goal, 100)
	if err != nil {
		t.Fatal(err)
	}

	if got := len(plan.Steps); got != 10 {
		t.Errorf("len(Steps) = %d, want 10", got)
	}
	if got, want := len(plan.Linearization), len(plan.Steps)-2; got != want {
		t.Errorf("len(Linearization) = %d, want %d", got, want)
	}

	want := []string{
		"TeachConcept",
		"AskNeutralQuestion",
		"EvalNeutral_Bored",
		"EvalNeutral_Confident",
		"EvalNeutral_Confused",
		"EvalNeutral_Frustrated",
		"GiveHardProblem_FromConfident",
		"FinalAssessment_AllBranches",
	}
	if !reflect.DeepEqual(plan.Linearization, want) {
		t.Errorf("Linearization = %v, want %v", plan.Linearization, want)
	}

	final, err := Simulate(initial, plan.Linearization, dom)
	if err != nil {
		t.Fatalf("linearization failed to simulate: %v", err)
	}
	if !final.ContainsAll(goal) {
		t.Errorf("final state %s does not contain goal %s", final, goal)
	}
}

func TestPOPCausalLinksSupported(t *testing.T) {
	dom := TutoringDomain("ch1")
	plan, err := NewPOPPlanner(dom).Plan(TutoringInitial("ch1"), TutoringGoal("ch1"), 100)
	if err != nil {
		t.Fatal(err)
	}

	for _, l := range plan.CausalLinks {
		if !plan.Steps[l.Producer].Add[l.Literal] {
			t.Errorf("link %v: producer %q does not add %q",
				l, plan.Steps[l.Producer].Name, l.Literal)
		}
		if !plan.Order[[2]int{l.Producer, l.Consumer}] {
			t.Errorf("link %v: missing ordering edge producer -> consumer", l)
		}
	}
}

func TestPOPNoProducer(t *testing.T) {
	dom := TutoringDomain("ch1")
	_, err := NewPOPPlanner(dom).Plan(TutoringInitial("ch1"), NewState(Lit("Impossible", "ch1")), 100)

	var npErr *ErrNoProducer
	if !errors.As(err, &npErr) {
		t.Fatalf("err = %v, want *ErrNoProducer", err)
	}
	if npErr.Literal != Lit("Impossible", "ch1") {
		t.Errorf("Literal = %q, want %q", npErr.Literal, Lit("Impossible", "ch1"))
	}
}

func TestPOPOrderingCycle(t *testing.T) {
	p, q := Lit("P", "x"), Lit("Q", "x")
	dom, err := NewDomain("loop", []Action{
		NewAction("MakeP", []Literal{q}, []Literal{p}, nil),
		NewAction("MakeQ", []Literal{p}, []Literal{q}, nil),
	})
	if err != nil {
		t.Fatal(err)
	}

	plan, err := NewPOPPlanner(dom).Plan(NewState(), NewState(p), 50)

	var cycErr *ErrOrderingCycle
	if !errors.As(err, &cycErr) {
		t.Fatalf("err = %v, want *ErrOrderingCycle", err)
	}
	if cycErr.Unordered == 0 {
		t.Error("Unordered = 0, want > 0")
	}
	if plan == nil {
		t.Fatal("expected partial plan alongside cycle error")
	}
	if got, limit := len(plan.Linearization), len(plan.Steps)-2; got >= limit {
		t.Errorf("len(Linearization) = %d, want < %d", got, limit)
	}
}

func TestPOPBudgetExceeded(t *testing.T) {
	dom := TutoringDomain("ch1")
	plan, err := NewPOPPlanner(dom).Plan(TutoringInitial("ch1"), TutoringGoal("ch1"), 1)

	var budgetErr *ErrBudgetExceeded
	if !errors.As(err, &budgetErr) {
		t.Fatalf("err = %v, want *ErrBudgetExceeded", err)
	}
	if budgetErr.Remaining != 5 {
		t.Errorf("Remaining = %d, want 5", budgetErr.Remaining)
	}
	if plan != nil {
		t.Error("expected no plan alongside budget error")
	}
}
