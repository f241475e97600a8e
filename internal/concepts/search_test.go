package concepts

import (
	"math"
	"reflect"
	"testing"
)

var wantExplored = []string{"Variables", "Conditionals", "Loops", "Functions", "Recursion"}

func TestMismatch(t *testing.T) {
	g := DefaultGraph()
	p := Profile{Readiness: 2, Target: 3}

	cases := []struct {
		concept string
		want    float64
	}{
		{"Variables", 2},
		{"Conditionals", 0.5},
		{"Loops", 1},
		{"Functions", 2.5},
		{"Recursion", 4},
	}
	for _, tc := range cases {
		if got := p.Mismatch(tc.concept, g); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Mismatch(%q) = %g, want %g", tc.concept, got, tc.want)
		}
	}
}

func TestBFS(t *testing.T) {
	g := DefaultGraph()
	res := BFS(g, "Variables", Profile{Readiness: 2, Target: 3})

	if !reflect.DeepEqual(res.Explored, wantExplored) {
		t.Errorf("Explored = %v, want %v", res.Explored, wantExplored)
	}
	if res.Goal != "Conditionals" {
		t.Errorf("Goal = %q, want Conditionals", res.Goal)
	}
	if !reflect.DeepEqual(res.Path, []string{"Variables", "Conditionals"}) {
		t.Errorf("Path = %v", res.Path)
	}
}

func TestUCS(t *testing.T) {
	g := DefaultGraph()
	res := UCS(g, "Variables", Profile{Readiness: 2, Target: 3})

	if !reflect.DeepEqual(res.Explored, wantExplored) {
		t.Errorf("Explored = %v, want %v", res.Explored, wantExplored)
	}
	if res.Goal != "Conditionals" {
		t.Errorf("Goal = %q, want Conditionals", res.Goal)
	}
	if math.Abs(res.Cost-1.5) > 1e-12 {
		t.Errorf("Cost = %g, want 1.5", res.Cost)
	}
	if !reflect.DeepEqual(res.Path, []string{"Variables", "Conditionals"}) {
		t.Errorf("Path = %v", res.Path)
	}
}

func TestUCSAdvancedLearner(t *testing.T) {
	g := DefaultGraph()
	res := UCS(g, "Variables", Profile{Readiness: 4, Target: 5})

	if res.Goal != "Functions" {
		t.Errorf("Goal = %q, want Functions", res.Goal)
	}
	if math.Abs(res.Cost-2.5) > 1e-12 {
		t.Errorf("Cost = %g, want 2.5", res.Cost)
	}
	if !reflect.DeepEqual(res.Path, []string{"Variables", "Conditionals", "Functions"}) {
		t.Errorf("Path = %v", res.Path)
	}
}

func TestAStar(t *testing.T) {
	g := DefaultGraph()
	res := AStar(g, "Variables", Profile{Readiness: 2, Target: 3})

	if res.Goal != "Conditionals" {
		t.Errorf("Goal = %q, want Conditionals", res.Goal)
	}
	if math.Abs(res.Cost-1.5) > 1e-12 {
		t.Errorf("Cost = %g, want 1.5", res.Cost)
	}
	if len(res.Explored) != 5 {
		t.Errorf("Explored = %v, want all five concepts", res.Explored)
	}
}

func TestSearchDispatch(t *testing.T) {
	g := DefaultGraph()
	p := Profile{Readiness: 2, Target: 3}

	for _, strategy := range []string{StrategyBFS, StrategyUCS, StrategyAStar} {
		res, err := Search(strategy, g, "Variables", p)
		if err != nil {
			t.Fatalf("%s: %v", strategy, err)
		}
		if res.Goal != "Conditionals" {
			t.Errorf("%s: Goal = %q, want Conditionals", strategy, res.Goal)
		}
	}

	if _, err := Search("dfs", g, "Variables", p); err == nil {
		t.Error("expected error for unknown strategy")
	}
	if _, err := Search(StrategyBFS, g, "Pointers", p); err == nil {
		t.Error("expected error for unknown start concept")
	}
}

func TestSearchNoSuccessors(t *testing.T) {
	g := DefaultGraph()
	p := Profile{Readiness: 5, Target: 5}

	// Recursion is terminal, so no strategy has anything to recommend.
	for _, strategy := range []string{StrategyBFS, StrategyUCS, StrategyAStar} {
		if _, err := Search(strategy, g, "Recursion", p); err == nil {
			t.Errorf("%s: expected error for a start with no successors", strategy)
		}
	}

	res := BFS(g, "Recursion", p)
	if res.Goal != "" {
		t.Errorf("Goal = %q, want empty", res.Goal)
	}
	if res.Path != nil {
		t.Errorf("Path = %v, want nil", res.Path)
	}
	if len(res.Explored) != 1 || res.Explored[0] != "Recursion" {
		t.Errorf("Explored = %v, want [Recursion]", res.Explored)
	}
}
