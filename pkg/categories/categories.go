// Package categories holds the closed set of configuration categories
// dotsync manages and the registry used to look them up and order them
// by prerequisite.
package categories

import (
	"strings"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/graph"
	"github.com/arthur-debert/dotsync/pkg/types"
)

// Category identifies one configuration category. The set is closed
// and fixed at build time; declaration order doubles as the
// deterministic tie-break order for topological sorting.
type Category int

const (
	Bash Category = iota
	Brew
	Git
	Sh
	VSCode
	Zsh
)

var names = [...]string{
	Bash:   "BASH",
	Brew:   "BREW",
	Git:    "GIT",
	Sh:     "SH",
	VSCode: "VSCODE",
	Zsh:    "ZSH",
}

// String returns the canonical uppercase name of the category
func (c Category) String() string {
	if int(c) < 0 || int(c) >= len(names) {
		return "INVALID"
	}
	return names[c]
}

// Registry binds category names to their descriptors. It is built once
// at startup, validated, and treated as read-only afterward.
type Registry struct {
	order       []Category
	byName      map[string]Category
	descriptors map[Category]types.Descriptor
}

// New builds a Registry over the given declaration-ordered categories.
// Every prerequisite must name a category in the registry; a dangling
// name is a defect in the static table and fails construction.
func New(order []Category, descriptors map[Category]types.Descriptor) (*Registry, error) {
	r := &Registry{
		order:       order,
		byName:      make(map[string]Category, len(order)),
		descriptors: descriptors,
	}
	for _, c := range order {
		r.byName[c.String()] = c
	}

	for _, c := range order {
		desc, ok := descriptors[c]
		if !ok {
			return nil, errors.Newf(errors.ErrInternal, "category %s has no descriptor", c)
		}
		for _, loc := range desc.Locations {
			if loc.Repo == "" {
				return nil, errors.Newf(errors.ErrInternal, "category %s has a location with an empty repo path", c)
			}
		}
		for _, name := range desc.Prerequisites {
			if _, ok := r.byName[strings.ToUpper(name)]; !ok {
				return nil, errors.Newf(errors.ErrInternal,
					"category %s lists unknown prerequisite %q", c, name)
			}
		}
	}
	return r, nil
}

// Lookup resolves a user-supplied name, case-insensitively
func (r *Registry) Lookup(name string) (Category, error) {
	c, ok := r.byName[strings.ToUpper(name)]
	if !ok {
		return 0, errors.Newf(errors.ErrUnknownCategory, "unknown category %q", name)
	}
	return c, nil
}

// Expand resolves each requested name; an empty request means every
// category, in declaration order.
func (r *Registry) Expand(requested []string) ([]Category, error) {
	if len(requested) == 0 {
		return append([]Category(nil), r.order...), nil
	}
	cats := make([]Category, 0, len(requested))
	for _, name := range requested {
		c, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, nil
}

// Descriptor returns the descriptor bound to the category
func (r *Registry) Descriptor(c Category) types.Descriptor {
	return r.descriptors[c]
}

// Categories returns all categories in declaration order
func (r *Registry) Categories() []Category {
	return append([]Category(nil), r.order...)
}

// TopologicalOrder resolves the requested names and returns them, plus
// every transitively required prerequisite, ordered so each category
// appears after all of its prerequisites. Edge discovery is an
// iterative depth-first walk over the prerequisite lists; the
// accumulated edges then go through the sort primitive, which breaks
// ties by declaration order.
func (r *Registry) TopologicalOrder(requested []string) ([]Category, error) {
	cats, err := r.Expand(requested)
	if err != nil {
		return nil, err
	}

	visited := make(map[Category]bool)
	stack := append([]Category(nil), cats...)

	var vertices []Category
	var edges []graph.Edge[Category]

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[c] {
			continue
		}
		visited[c] = true
		vertices = append(vertices, c)

		for _, name := range r.descriptors[c].Prerequisites {
			// Validated in New, cannot fail here
			prereq := r.byName[strings.ToUpper(name)]
			edges = append(edges, graph.Edge[Category]{From: prereq, To: c})
			if !visited[prereq] {
				stack = append(stack, prereq)
			}
		}
	}

	return graph.Toposort(vertices, edges, func(c Category) int { return int(c) })
}
