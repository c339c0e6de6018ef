// Package astar implements A* search over implicit graphs.
//
// Nodes are any comparable value, and the graph is never built: the
// caller provides a function listing the neighbours of a node along
// with the cost of reaching them.  With an admissible and consistent
// heuristic (one that never overestimates the remaining cost) the
// cost found is the cheapest one.  ZeroHeuristic turns the search
// into Dijkstra's algorithm.
//
// Edge costs must not be negative.
package astar

import "golang.org/x/exp/constraints"

// Cost is any numeric type that can be ordered, added and has a zero
type Cost interface {
	constraints.Integer | constraints.Float
}

// Edge leads to `To` and costs `Cost` to follow
type Edge[N comparable, C Cost] struct {
	To   N
	Cost C
}

// Step is one node of a path and the total cost of reaching it
type Step[N comparable, C Cost] struct {
	Node N
	Cost C
}

// Result describes the cheapest path found, from the start node to
// the target node, both included
type Result[N comparable, C Cost] struct {
	Path      []Step[N, C]
	TotalCost C
}

// Neighbors appends the edges leaving `node` to `buf` and returns the
// extended slice.  The buffer is reused between calls.
type Neighbors[N comparable, C Cost] func(node N, buf []Edge[N, C]) []Edge[N, C]

// ZeroHeuristic never estimates any remaining cost
func ZeroHeuristic[N comparable, C Cost](N) C {
	var zero C
	return zero
}

// visit is what's known about a node that has been expanded
type visit[N comparable, C Cost] struct {
	cost     C
	previous N
	hasPrev  bool
}

// Search looks for the cheapest path from `start` to any node for
// which `isTarget` returns true.  It returns false when every
// reachable node was expanded without finding a target.
func Search[N comparable, C Cost](
	start N,
	next Neighbors[N, C],
	heuristic func(N) C,
	isTarget func(N) bool,
) (Result[N, C], bool) {
	var (
		zero    C
		queue   = &frontier[N, C]{}
		visited = map[N]visit[N, C]{}
		edges   []Edge[N, C]
	)
	queue.push(pending[N, C]{node: start, cost: zero, priority: heuristic(start)})

	for queue.Len() > 0 {
		entry := queue.pop()
		if isTarget(entry.node) {
			return Result[N, C]{
				Path:      walkBack(visited, entry),
				TotalCost: entry.cost,
			}, true
		}
		if seen, ok := visited[entry.node]; ok && seen.cost <= entry.cost {
			continue
		}
		visited[entry.node] = visit[N, C]{
			cost:     entry.cost,
			previous: entry.previous,
			hasPrev:  entry.hasPrev,
		}

		edges = next(entry.node, edges[:0])
		for _, edge := range edges {
			cost := entry.cost + edge.Cost
			queue.push(pending[N, C]{
				node:     edge.To,
				cost:     cost,
				priority: cost + heuristic(edge.To),
				previous: entry.node,
				hasPrev:  true,
			})
		}
	}
	return Result[N, C]{}, false
}

// walkBack follows the predecessors from `goal` to the start node and
// returns the path in forward order
func walkBack[N comparable, C Cost](visited map[N]visit[N, C], goal pending[N, C]) []Step[N, C] {
	path := []Step[N, C]{{Node: goal.node, Cost: goal.cost}}
	previous, ok := goal.previous, goal.hasPrev
	for ok {
		v := visited[previous]
		path = append(path, Step[N, C]{Node: previous, Cost: v.cost})
		previous, ok = v.previous, v.hasPrev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// SearchCost is like Search but only returns the total cost.  It
// doesn't keep track of predecessors, which saves memory on large
// graphs.
func SearchCost[N comparable, C Cost](
	start N,
	next Neighbors[N, C],
	heuristic func(N) C,
	isTarget func(N) bool,
) (C, bool) {
	var (
		zero  C
		queue = &frontier[N, C]{}
		best  = map[N]C{}
		edges []Edge[N, C]
	)
	queue.push(pending[N, C]{node: start, cost: zero, priority: heuristic(start)})

	for queue.Len() > 0 {
		entry := queue.pop()
		if isTarget(entry.node) {
			return entry.cost, true
		}
		if cost, ok := best[entry.node]; ok && cost <= entry.cost {
			continue
		}
		best[entry.node] = entry.cost

		edges = next(entry.node, edges[:0])
		for _, edge := range edges {
			cost := entry.cost + edge.Cost
			queue.push(pending[N, C]{
				node:     edge.To,
				cost:     cost,
				priority: cost + heuristic(edge.To),
			})
		}
	}
	return zero, false
}
