package domain

import (
	"sort"

	m "github.com/mouse-blink/covrig/internal/model"
)

// AncestorClosure walks the supertype graph from className and returns every
// strict ancestor plus the ancestors that had no metadata. The graph is
// treated as arbitrary: diamonds are visited once, cycles terminate, and the
// class is never reported as its own ancestor.
func AncestorClosure(className string, h m.Hierarchy) (ancestors []string, unknown []string) {
	visited := map[string]struct{}{className: {}}
	stack := append([]string(nil), h[className].Supertypes...)

	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := visited[name]; ok {
			continue
		}

		visited[name] = struct{}{}
		ancestors = append(ancestors, name)

		md, ok := h[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}

		stack = append(stack, md.Supertypes...)
	}

	sort.Strings(ancestors)
	sort.Strings(unknown)

	return ancestors, unknown
}
