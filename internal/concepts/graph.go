// Package concepts picks the next teaching topic by searching a prerequisite
// graph for the concept whose difficulty best matches the learner.
package concepts

// Graph is a directed prerequisite graph over named concepts, each with a
// difficulty rating.
type Graph struct {
	edges      map[string][]string
	difficulty map[string]int
}

// DefaultGraph returns the built-in programming-fundamentals curriculum.
func DefaultGraph() *Graph {
	return &Graph{
		edges: map[string][]string{
			"Variables":    {"Conditionals", "Loops"},
			"Conditionals": {"Loops", "Functions"},
			"Loops":        {"Functions", "Recursion"},
			"Functions":    {"Recursion"},
			"Recursion":    {},
		},
		difficulty: map[string]int{
			"Variables":    1,
			"Conditionals": 2,
			"Loops":        3,
			"Functions":    4,
			"Recursion":    5,
		},
	}
}

// Neighbors returns the concepts directly unlocked by node, in declaration
// order. Unknown nodes have no neighbors.
func (g *Graph) Neighbors(node string) []string {
	return g.edges[node]
}

// Difficulty returns the difficulty rating of node, or 0 if unknown.
func (g *Graph) Difficulty(node string) int {
	return g.difficulty[node]
}

// Contains reports whether node is part of the graph.
func (g *Graph) Contains(node string) bool {
	_, ok := g.difficulty[node]
	return ok
}

// Profile describes the learner for topic selection: current readiness and
// the difficulty they are aiming for, both on the graph's 1-5 scale.
type Profile struct {
	Readiness int
	Target    int
}

// Mismatch scores how poorly a concept fits the learner. Lower is better;
// distance from readiness counts double distance from the target.
func (p Profile) Mismatch(concept string, g *Graph) float64 {
	d := float64(g.Difficulty(concept))
	return abs(d-float64(p.Readiness)) + 0.5*abs(d-float64(p.Target))
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
