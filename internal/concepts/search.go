package concepts

import (
	"container/heap"
	"fmt"
	"math"
)

// Strategy names understood by Search.
const (
	StrategyBFS   = "bfs"
	StrategyUCS   = "ucs"
	StrategyAStar = "astar"
)

// Result is the outcome of a topic search.
type Result struct {
	// Explored lists visited concepts in visit order.
	Explored []string

	// Goal is the recommended next topic.
	Goal string

	// Path leads from the start concept to the goal.
	Path []string

	// Cost is the goal's combined score. Zero for BFS, which ranks by
	// mismatch alone.
	Cost float64
}

// Search dispatches to the named strategy.
func Search(strategy string, g *Graph, start string, p Profile) (*Result, error) {
	if !g.Contains(start) {
		return nil, fmt.Errorf("unknown start concept %q", start)
	}
	var res *Result
	switch strategy {
	case StrategyBFS:
		res = BFS(g, start, p)
	case StrategyUCS:
		res = UCS(g, start, p)
	case StrategyAStar:
		res = AStar(g, start, p)
	default:
		return nil, fmt.Errorf("unknown search strategy %q", strategy)
	}
	if res.Goal == "" {
		// Start had no reachable successors, so there is nothing to
		// recommend.
		return nil, fmt.Errorf("no concept to recommend from %q", start)
	}
	return res, nil
}

// BFS walks the whole graph breadth-first, then recommends the explored
// concept (excluding the start) with the lowest mismatch. First minimum wins
// on ties.
func BFS(g *Graph, start string, p Profile) *Result {
	var explored []string
	queued := map[string]bool{start: true}
	queue := []string{start}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		explored = append(explored, node)

		for _, nb := range g.Neighbors(node) {
			if !queued[nb] {
				queued[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	best := ""
	bestScore := math.Inf(1)
	for _, n := range explored[1:] {
		if s := p.Mismatch(n, g); s < bestScore {
			bestScore = s
			best = n
		}
	}

	res := &Result{Explored: explored, Goal: best}
	if best != "" {
		res.Path = []string{start, best}
	}
	return res
}

// pqItem is a frontier entry. For UCS the priority is the path cost g; for
// A* it is g plus the mismatch heuristic. Ties break on secondary cost, then
// on node name, keeping expansion order deterministic.
type pqItem struct {
	priority  float64
	secondary float64
	node      string
	path      []string
}

type frontier []pqItem

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	if f[i].secondary != f[j].secondary {
		return f[i].secondary < f[j].secondary
	}
	return f[i].node < f[j].node
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)   { *f = append(*f, x.(pqItem)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// UCS expands by uniform path cost (every edge costs 1) and recommends the
// visited concept minimizing path cost plus mismatch.
func UCS(g *Graph, start string, p Profile) *Result {
	pq := &frontier{{priority: 0, node: start, path: []string{start}}}
	heap.Init(pq)
	bestG := map[string]float64{start: 0}

	res := &Result{Cost: math.Inf(1)}
	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		res.Explored = append(res.Explored, item.node)

		total := item.priority + p.Mismatch(item.node, g)
		if item.node != start && total < res.Cost {
			res.Cost = total
			res.Goal = item.node
			res.Path = item.path
		}

		for _, nb := range g.Neighbors(item.node) {
			newG := item.priority + 1
			if prev, ok := bestG[nb]; !ok || newG < prev {
				bestG[nb] = newG
				heap.Push(pq, pqItem{
					priority: newG,
					node:     nb,
					path:     appendPath(item.path, nb),
				})
			}
		}
	}
	return res
}

// AStar expands by f = g + h with the mismatch as heuristic, and recommends
// the visited concept minimizing g plus mismatch.
func AStar(g *Graph, start string, p Profile) *Result {
	pq := &frontier{{priority: p.Mismatch(start, g), secondary: 0, node: start, path: []string{start}}}
	heap.Init(pq)
	bestG := map[string]float64{start: 0}

	res := &Result{Cost: math.Inf(1)}
	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		res.Explored = append(res.Explored, item.node)

		total := item.secondary + p.Mismatch(item.node, g)
		if item.node != start && total < res.Cost {
			res.Cost = total
			res.Goal = item.node
			res.Path = item.path
		}

		for _, nb := range g.Neighbors(item.node) {
			newG := item.secondary + 1
			if prev, ok := bestG[nb]; !ok || newG < prev {
				bestG[nb] = newG
				heap.Push(pq, pqItem{
					priority:  newG + p.Mismatch(nb, g),
					secondary: newG,
					node:      nb,
					path:      appendPath(item.path, nb),
				})
			}
		}
	}
	return res
}

func appendPath(path []string, node string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, node)
}
