package planning

import "testing"

func TestBuildGraphMonotonicFixedPoint(t *testing.T) {
	dom := TutoringDomain("ch1")
	g := BuildGraph(TutoringInitial("ch1"), dom, 50)

	if !g.FixedPoint {
		t.Fatal("expected graph to reach a fixed point")
	}
	if got := g.Levels(); got != 7 {
		t.Errorf("Levels() = %d, want 7", got)
	}
	for i := 1; i < len(g.LiteralLevels); i++ {
		if !g.LiteralLevels[i].ContainsAll(g.LiteralLevels[i-1]) {
			t.Errorf("level %d is not a superset of level %d", i, i-1)
		}
	}
	last := g.LiteralLevels[len(g.LiteralLevels)-1]
	prev := g.LiteralLevels[len(g.LiteralLevels)-2]
	if !last.Equal(prev) {
		t.Error("final two literal levels differ at fixed point")
	}
}

func TestLevelOf(t *testing.T) {
	dom := TutoringDomain("ch1")
	g := BuildGraph(TutoringInitial("ch1"), dom, 50)

	if got := g.LevelOf(TutoringGoal("ch1")); got != 6 {
		t.Errorf("LevelOf(goal) = %d, want 6", got)
	}
	if got := g.LevelOf(NewState(Lit("Impossible", "ch1"))); got != -1 {
		t.Errorf("LevelOf(unreachable) = %d, want -1", got)
	}
}

func TestActionMutexPairs(t *testing.T) {
	dom := TutoringDomain("ch1")
	g := BuildGraph(TutoringInitial("ch1"), dom, 50)

	// Level 3 is the first where the problem/hint actions fire alongside
	// the neutral evaluations.
	m := g.ActionMutex[3]

	mutex := [][2]string{
		{"EvalNeutral_Confused", "GiveEasyProblem_FromConfused"},
		{"EvalNeutral_Frustrated", "GiveHint_FromFrustrated"},
		{"GiveEasyProblem_FromConfused", "GiveHint_FromFrustrated"},
	}
	for _, p := range mutex {
		if !m.Has(p[0], p[1]) {
			t.Errorf("expected %q and %q to be mutex at level 3", p[0], p[1])
		}
	}
	if m.Has("EvalNeutral_Confident", "EvalNeutral_Bored") {
		t.Error("independent evaluations should not be mutex")
	}
}

func TestLiteralMutex(t *testing.T) {
	// Two actions that consume the same literal and produce different
	// results: their products are mutually exclusive at the next level.
	dom, err := NewDomain("fork", []Action{
		NewAction("a1", []Literal{"s"}, []Literal{"x"}, []Literal{"s"}),
		NewAction("a2", []Literal{"s"}, []Literal{"y"}, []Literal{"s"}),
	})
	if err != nil {
		t.Fatal(err)
	}

	g := BuildGraph(NewState("s"), dom, 10)
	if !g.LiteralMutex[1].Has("x", "y") {
		t.Error("expected x and y to be literal-mutex at level 1")
	}
	if g.LiteralMutex[1].Has("s", "x") {
		t.Error("persisting literal s should not be mutex with anything")
	}
}

func TestTutoringDomainHasNoLiteralMutexes(t *testing.T) {
	// Every literal persists once added, so the persistence rule blanks
	// out all literal mutexes in the built-in domain.
	dom := TutoringDomain("ch1")
	g := BuildGraph(TutoringInitial("ch1"), dom, 50)
	for i, m := range g.LiteralMutex {
		if m.Len() != 0 {
			t.Errorf("level %d: expected no literal mutexes, got %d", i, m.Len())
		}
	}
}
