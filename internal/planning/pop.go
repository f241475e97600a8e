package planning

import (
	"fmt"
	"sort"
)

// Partial-order causal-link planner. Works backward from the goal: each open
// precondition is closed either by reusing a step that already produces the
// literal or by instantiating the first action schema that does. Ordering
// edges and causal links record why each step precedes another; a topological
// sort over the ordering relation yields one legal total order.

// Sentinel step indices. Start adds the initial literals; Finish requires
// the goal literals.
const (
	StepStart  = 0
	StepFinish = 1
)

// ErrNoProducer signals that some required literal is added by no action
// schema, so no plan can exist.
type ErrNoProducer struct {
	Literal Literal
}

func (e *ErrNoProducer) Error() string {
	return fmt.Sprintf("no action produces literal %q", e.Literal)
}

// ErrBudgetExceeded signals that the iteration budget ran out with open
// conditions remaining. The plan is incomplete and is not returned.
type ErrBudgetExceeded struct {
	Remaining int
}

func (e *ErrBudgetExceeded) Error() string {
	return fmt.Sprintf("iteration budget exhausted with %d open conditions", e.Remaining)
}

// ErrOrderingCycle signals that the ordering constraints contain a cycle, so
// no total order exists. The partial plan is returned alongside the error for
// inspection; its Linearization is shorter than len(Steps)-2.
type ErrOrderingCycle struct {
	Unordered int
}

func (e *ErrOrderingCycle) Error() string {
	return fmt.Sprintf("ordering constraints contain a cycle (%d steps unordered)", e.Unordered)
}

// Step is one node of a partial plan. Start and Finish are sentinels; every
// other step is an instance of a domain action (the same schema may be
// instantiated more than once).
type Step struct {
	Name string
	Pre  State
	Add  State
	Del  State
}

// CausalLink records that Producer establishes Literal for Consumer.
type CausalLink struct {
	Producer int
	Literal  Literal
	Consumer int
}

// PartialPlan is the output of POPPlanner.Plan.
type PartialPlan struct {
	Steps       []Step
	Order       map[[2]int]bool
	CausalLinks []CausalLink

	// Linearization is one legal total order of the non-sentinel steps.
	// On success its length is len(Steps)-2; a shorter linearization
	// accompanies ErrOrderingCycle.
	Linearization []string
}

// POPPlanner plans over a fixed domain.
type POPPlanner struct {
	dom *Domain
}

// NewPOPPlanner creates a planner for the given domain.
func NewPOPPlanner(dom *Domain) *POPPlanner {
	return &POPPlanner{dom: dom}
}

type openCondition struct {
	consumer int
	literal  Literal
}

// Plan resolves the goal's preconditions into a partial-order plan, bounded
// by maxIters resolution steps. Failure modes are explicit: *ErrNoProducer
// when a literal is unachievable, *ErrBudgetExceeded when the budget runs
// out, and *ErrOrderingCycle (with the plan attached) when the ordering
// relation is cyclic.
func (p *POPPlanner) Plan(initial, goal State, maxIters int) (*PartialPlan, error) {
	steps := []Step{
		{Name: "Start", Pre: NewState(), Add: initial.Clone(), Del: NewState()},
		{Name: "Finish", Pre: goal.Clone(), Add: NewState(), Del: NewState()},
	}
	order := map[[2]int]bool{{StepStart, StepFinish}: true}
	var links []CausalLink

	var open []openCondition
	for _, lit := range goal.Sorted() {
		open = append(open, openCondition{StepFinish, lit})
	}

	for iter := 0; len(open) > 0 && iter < maxIters; iter++ {
		oc := open[0]
		open = open[1:]

		// Reuse an existing producer when one exists; otherwise
		// instantiate the first schema (declaration order) adding the
		// literal.
		producer := -1
		for idx := range steps {
			if steps[idx].Add[oc.literal] {
				producer = idx
				break
			}
		}
		if producer < 0 {
			var schema *Action
			for i := range p.dom.actions {
				if p.dom.actions[i].Add[oc.literal] {
					schema = &p.dom.actions[i]
					break
				}
			}
			if schema == nil {
				return nil, &ErrNoProducer{Literal: oc.literal}
			}
			steps = append(steps, Step{
				Name: schema.Name,
				Pre:  schema.Pre.Clone(),
				Add:  schema.Add.Clone(),
				Del:  schema.Del.Clone(),
			})
			producer = len(steps) - 1
		}

		links = append(links, CausalLink{producer, oc.literal, oc.consumer})
		order[[2]int{producer, oc.consumer}] = true
		order[[2]int{StepStart, producer}] = true
		order[[2]int{producer, StepFinish}] = true

		// Each unguaranteed precondition of the producer becomes a new
		// open condition attributed to it.
		for _, pre := range steps[producer].Pre.Sorted() {
			satisfied := false
			for sid := range steps {
				if steps[sid].Add[pre] && order[[2]int{sid, producer}] {
					satisfied = true
					break
				}
			}
			if !satisfied {
				open = append(open, openCondition{producer, pre})
			}
		}
	}

	if len(open) > 0 {
		return nil, &ErrBudgetExceeded{Remaining: len(open)}
	}

	plan := &PartialPlan{
		Steps:       steps,
		Order:       order,
		CausalLinks: dedupLinks(links),
	}

	topo, complete := topoSort(len(steps), order)
	for _, idx := range topo {
		if idx == StepStart || idx == StepFinish {
			continue
		}
		plan.Linearization = append(plan.Linearization, steps[idx].Name)
	}
	if !complete {
		return plan, &ErrOrderingCycle{Unordered: len(steps) - len(topo)}
	}
	return plan, nil
}

// topoSort runs Kahn's algorithm over the ordering edges. Edges are sorted
// before building adjacency so linearization order is deterministic; ties
// resolve by step index. Returns the visit order and whether every step was
// ordered (false means a cycle).
func topoSort(n int, order map[[2]int]bool) ([]int, bool) {
	edges := make([][2]int, 0, len(order))
	for e := range order {
		if e[0] != e[1] {
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})

	indeg := make([]int, n)
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		indeg[e[1]]++
	}

	var queue []int
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			queue = append(queue, i)
		}
	}

	var topo []int
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		topo = append(topo, u)
		for _, v := range adj[u] {
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}
	return topo, len(topo) == n
}

// dedupLinks removes exact-duplicate causal links, preserving first-seen
// order. Duplicates arise when several open conditions resolve to the same
// producer/literal/consumer triple.
func dedupLinks(links []CausalLink) []CausalLink {
	seen := make(map[CausalLink]bool, len(links))
	out := links[:0]
	for _, l := range links {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}
