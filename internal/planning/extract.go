package planning

import (
	"errors"
	"sort"
)

// ErrUnreachable signals that the goal literals never all appear in any
// literal level within the depth budget. Callers branch on it; it is not an
// exceptional condition.
var ErrUnreachable = errors.New("goal not reachable within level budget")

// ExtractResult is the outcome of a GraphPlan extraction.
type ExtractResult struct {
	// Plan is the action sequence in execution order, deduplicated
	// keeping first occurrence.
	Plan []string

	// Complete reports whether backward selection resolved every needed
	// literal down to the initial state. Incomplete plans are still
	// returned (the extractor is greedy and does not backtrack); callers
	// must validate them with Simulate before trusting them.
	Complete bool

	// GoalLevel is the literal level the backward pass started from.
	GoalLevel int
}

// Extract builds the planning graph and runs a greedy, mutex-aware backward
// extraction from the highest level containing the goal. It is a heuristic:
// a bad greedy choice is never undone, so extraction can miss plans a
// backtracking search would find.
// Returns ErrUnreachable when the goal never appears in the graph.
func Extract(initial, goal State, dom *Domain, maxLevels int) (*ExtractResult, error) {
	g := BuildGraph(initial, dom, maxLevels)

	goalLevel := g.LevelOf(goal)
	if goalLevel < 0 {
		return nil, ErrUnreachable
	}

	needed := goal.Clone()
	chosenByLevel := make([][]string, goalLevel)

	for lvl := goalLevel - 1; lvl >= 0; lvl-- {
		available := g.ActionLevels[lvl]
		mutex := g.ActionMutex[lvl]

		// Candidates: applicable actions covering at least one needed
		// literal, ordered by coverage (desc) then precondition count
		// (asc), declaration order as the stable tie-break.
		var candidates []*Action
		coverage := make(map[string]int)
		for _, a := range available {
			c := countIntersection(a.Add, needed)
			if c > 0 {
				candidates = append(candidates, a)
				coverage[a.Name] = c
			}
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			ci, cj := coverage[candidates[i].Name], coverage[candidates[j].Name]
			if ci != cj {
				return ci > cj
			}
			return len(candidates[i].Pre) < len(candidates[j].Pre)
		})

		var chosen []*Action
		for _, a := range candidates {
			conflict := false
			for _, c := range chosen {
				if mutex.Has(a.Name, c.Name) {
					conflict = true
					break
				}
			}
			if conflict {
				continue
			}
			chosen = append(chosen, a)
			for l := range a.Add {
				delete(needed, l)
			}
			needed.Union(a.Pre)
		}

		names := make([]string, len(chosen))
		for i, a := range chosen {
			names[i] = a.Name
		}
		chosenByLevel[lvl] = names
	}

	// Flatten level-ascending, dedup keeping first occurrence.
	var plan []string
	seen := make(map[string]bool)
	for _, names := range chosenByLevel {
		for _, name := range names {
			if !seen[name] {
				seen[name] = true
				plan = append(plan, name)
			}
		}
	}

	return &ExtractResult{
		Plan:      plan,
		Complete:  initial.ContainsAll(needed),
		GoalLevel: goalLevel,
	}, nil
}

func countIntersection(a, b State) int {
	n := 0
	for l := range a {
		if b[l] {
			n++
		}
	}
	return n
}
