package planning

import "fmt"

// Simulate executes plan step by step from initial and returns the resulting
// state. It fails on the first unknown action or unsatisfied precondition;
// step numbers in errors are 1-based. The input state is not mutated.
func Simulate(initial State, plan []string, dom *Domain) (State, error) {
	s := initial.Clone()
	for i, name := range plan {
		a := dom.Get(name)
		if a == nil {
			return nil, fmt.Errorf("step %d: action %q not found in domain %q", i+1, name, dom.Name)
		}
		if !a.Applicable(s) {
			return nil, fmt.Errorf("step %d: preconditions of %q not satisfied: requires %s, have %s",
				i+1, name, a.Pre, s)
		}
		a.Apply(s)
	}
	return s, nil
}

// Validate simulates plan and additionally checks that the goal holds in the
// final state.
func Validate(initial, goal State, plan []string, dom *Domain) (State, error) {
	final, err := Simulate(initial, plan, dom)
	if err != nil {
		return nil, err
	}
	if !final.ContainsAll(goal) {
		return final, fmt.Errorf("plan does not achieve goal %s: final state %s", goal, final)
	}
	return final, nil
}
