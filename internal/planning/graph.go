package planning

// Planning graph construction: leveled literal and action layers built by
// forward expansion to a fixed point, with pairwise mutex detection at each
// level.

// MutexSet records unordered mutex pairs. Both orderings are stored so
// lookups never need to normalize.
type MutexSet map[[2]string]bool

func (m MutexSet) add(a, b string) {
	m[[2]string{a, b}] = true
	m[[2]string{b, a}] = true
}

// Has reports whether the pair (a, b) is mutex.
func (m MutexSet) Has(a, b string) bool {
	return m[[2]string{a, b}]
}

// Len returns the number of unordered mutex pairs.
func (m MutexSet) Len() int {
	return len(m) / 2
}

// Graph is a leveled planning graph. LiteralLevels[0] is the initial state;
// ActionLevels[i] holds the actions applicable at LiteralLevels[i], and
// LiteralLevels[i+1] is LiteralLevels[i] plus their add effects. Literals
// persist implicitly: the forward pass never removes them.
type Graph struct {
	LiteralLevels []State
	ActionLevels  [][]*Action

	// ActionMutex[i] holds mutex action-name pairs at ActionLevels[i].
	ActionMutex []MutexSet
	// LiteralMutex[i] holds mutex literal pairs at LiteralLevels[i].
	// Level 0 is always empty.
	LiteralMutex []MutexSet

	// FixedPoint reports whether construction stopped because a level
	// repeated, as opposed to exhausting maxLevels.
	FixedPoint bool
}

// BuildGraph expands the planning graph from initial until no new literal
// appears or maxLevels action layers have been built. It never fails: an
// unreachable goal shows up as absence from every literal level, which the
// caller checks.
func BuildGraph(initial State, dom *Domain, maxLevels int) *Graph {
	g := &Graph{
		LiteralLevels: []State{initial.Clone()},
		LiteralMutex:  []MutexSet{{}},
	}

	for range maxLevels {
		cur := g.LiteralLevels[len(g.LiteralLevels)-1]

		var applicable []*Action
		for i := range dom.actions {
			if dom.actions[i].Applicable(cur) {
				applicable = append(applicable, &dom.actions[i])
			}
		}
		g.ActionLevels = append(g.ActionLevels, applicable)

		mutexActions := make(MutexSet)
		for i := 0; i < len(applicable); i++ {
			for j := i + 1; j < len(applicable); j++ {
				if actionsMutex(applicable[i], applicable[j]) {
					mutexActions.add(applicable[i].Name, applicable[j].Name)
				}
			}
		}
		g.ActionMutex = append(g.ActionMutex, mutexActions)

		next := cur.Clone()
		for _, a := range applicable {
			next.Union(a.Add)
		}

		g.LiteralLevels = append(g.LiteralLevels, next)
		g.LiteralMutex = append(g.LiteralMutex, literalMutex(cur, next, applicable, mutexActions))

		if next.Equal(cur) {
			g.FixedPoint = true
			break
		}
	}

	return g
}

// Levels returns the number of literal levels built.
func (g *Graph) Levels() int {
	return len(g.LiteralLevels)
}

// LevelOf returns the highest literal level whose set contains every goal
// literal, or -1 if the goal never appears.
func (g *Graph) LevelOf(goal State) int {
	level := -1
	for i, lits := range g.LiteralLevels {
		if lits.ContainsAll(goal) {
			level = i
		}
	}
	return level
}

// actionsMutex reports whether two actions at the same level are mutex:
//   - inconsistent effects: one adds what the other deletes
//   - interference: one deletes a precondition of the other
//
// Competing needs (mutex preconditions) is deliberately not checked; the
// precondition-level mutex tracking it requires is not maintained, so the
// check conservatively reports false.
func actionsMutex(a1, a2 *Action) bool {
	if a1.Add.Intersects(a2.Del) || a2.Add.Intersects(a1.Del) {
		return true
	}
	if a1.Del.Intersects(a2.Pre) || a2.Del.Intersects(a1.Pre) {
		return true
	}
	return false
}

// literalMutex computes the mutex pairs for the next literal level. Two
// literals are mutex iff every pair of their producers is action-mutex.
// A literal already true at the current level gets an implicit persistence
// producer; persistence is treated as non-mutex with everything, so any
// persisting literal is non-mutex with all others. This is the same
// approximation the action-level check makes: cheap and sound enough for
// the extractor's greedy selection.
func literalMutex(cur, next State, applicable []*Action, mutexActions MutexSet) MutexSet {
	producers := make(map[Literal][]string, len(next))
	persists := make(map[Literal]bool, len(cur))
	for l := range next {
		for _, a := range applicable {
			if a.Add[l] {
				producers[l] = append(producers[l], a.Name)
			}
		}
		if cur[l] {
			persists[l] = true
		}
	}

	out := make(MutexSet)
	lits := next.Sorted()
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			l1, l2 := lits[i], lits[j]
			if persists[l1] || persists[l2] {
				continue
			}
			if allPairsMutex(producers[l1], producers[l2], mutexActions) {
				out.add(string(l1), string(l2))
			}
		}
	}
	return out
}

func allPairsMutex(prods1, prods2 []string, mutexActions MutexSet) bool {
	if len(prods1) == 0 || len(prods2) == 0 {
		return false
	}
	for _, p1 := range prods1 {
		for _, p2 := range prods2 {
			if !mutexActions.Has(p1, p2) {
				return false
			}
		}
	}
	return true
}
