// Package graph holds the topological-sort primitive used to order
// categories by prerequisite. Edge discovery lives with the registry;
// keeping the two phases apart keeps cycle detection and ordering
// independently testable.
package graph

import (
	"sort"

	"github.com/arthur-debert/dotsync/pkg/errors"
)

// Edge is a single ordering constraint: From must appear before To.
type Edge[T comparable] struct {
	From T
	To   T
}

// Toposort orders vertices so that every edge's From precedes its To.
// Ties among unconstrained vertices are broken by the rank function,
// lowest first, which makes the output stable across runs. A cycle in
// the edge set yields a CYCLIC_DEPENDENCY error.
func Toposort[T comparable](vertices []T, edges []Edge[T], rank func(T) int) ([]T, error) {
	indegree := make(map[T]int, len(vertices))
	for _, v := range vertices {
		indegree[v] = 0
	}

	successors := make(map[T][]T, len(vertices))
	for _, e := range edges {
		// Edges may reference vertices not in the vertex list; that is
		// a caller bug, surface it rather than sorting a partial graph.
		if _, ok := indegree[e.From]; !ok {
			return nil, errors.Newf(errors.ErrInternal, "edge references unknown vertex %v", e.From)
		}
		if _, ok := indegree[e.To]; !ok {
			return nil, errors.Newf(errors.ErrInternal, "edge references unknown vertex %v", e.To)
		}
		successors[e.From] = append(successors[e.From], e.To)
		indegree[e.To]++
	}

	ready := make([]T, 0, len(vertices))
	for _, v := range vertices {
		if indegree[v] == 0 {
			ready = append(ready, v)
		}
	}

	ordered := make([]T, 0, len(vertices))
	for len(ready) > 0 {
		sort.SliceStable(ready, func(i, j int) bool { return rank(ready[i]) < rank(ready[j]) })

		next := ready[0]
		ready = ready[1:]
		ordered = append(ordered, next)

		for _, succ := range successors[next] {
			indegree[succ]--
			if indegree[succ] == 0 {
				ready = append(ready, succ)
			}
		}
	}

	if len(ordered) != len(vertices) {
		remaining := make([]T, 0)
		for _, v := range vertices {
			if indegree[v] > 0 {
				remaining = append(remaining, v)
			}
		}
		return nil, errors.New(errors.ErrCyclicDependency, "prerequisite graph contains a cycle").
			WithDetail("vertices", remaining)
	}

	return ordered, nil
}
