package schema

import (
	"fmt"
	"strings"

	"github.com/abyssparanoia/blender-go/internal/ir"
)

// BaseCycle describes an inheritance cycle between classes.
//
// Generated types embed their base struct, and Go does not allow a struct
// to contain itself, so every cycle is an error.
type BaseCycle struct {
	Path    []string `json:"path"`    // ["A", "B", "A"]
	Message string   `json:"message"` // human-readable description
}

// AnalyzeBases detects inheritance cycles.
//
// The algorithm:
//  1. Build a class → base graph from the Base field
//  2. Use Tarjan's algorithm to find strongly connected components
//  3. Report each SCC with size > 1 or a self-loop as a cycle
//
// Classes are visited in input order so the result is deterministic.
func AnalyzeBases(classes []ir.ClassSpec) []BaseCycle {
	graph := make(baseGraph, len(classes))
	order := make([]string, 0, len(classes))
	for _, c := range classes {
		if _, seen := graph[c.Name]; !seen {
			order = append(order, c.Name)
		}
		if c.Base != "" {
			graph[c.Name] = append(graph[c.Name], c.Base)
		} else if graph[c.Name] == nil {
			graph[c.Name] = []string{}
		}
	}

	var cycles []BaseCycle
	for _, scc := range tarjanSCC(graph, order) {
		if len(scc) > 1 || hasSelfLoop(scc[0], graph) {
			cycles = append(cycles, sccToCycle(scc, graph))
		}
	}
	return cycles
}

// baseGraph maps a class name to its base classes.
type baseGraph map[string][]string

func hasSelfLoop(node string, graph baseGraph) bool {
	for _, neighbor := range graph[node] {
		if neighbor == node {
			return true
		}
	}
	return false
}

// tarjanSCC finds strongly connected components using Tarjan's algorithm,
// starting from nodes in order.
func tarjanSCC(graph baseGraph, order []string) [][]string {
	var (
		index   = 0
		stack   []string
		indices = make(map[string]int)
		lowlink = make(map[string]int)
		onStack = make(map[string]bool)
		sccs    [][]string
	)

	var strongConnect func(string)
	strongConnect = func(v string) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range graph[v] {
			if _, visited := indices[w]; !visited {
				strongConnect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], indices[w])
			}
		}

		// v is a root node: pop its component
		if lowlink[v] == indices[v] {
			var scc []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for _, node := range order {
		if _, visited := indices[node]; !visited {
			strongConnect(node)
		}
	}

	return sccs
}

// sccToCycle walks base links from the first member until it returns to it.
func sccToCycle(scc []string, graph baseGraph) BaseCycle {
	members := make(map[string]bool, len(scc))
	for _, n := range scc {
		members[n] = true
	}

	start := scc[len(scc)-1]
	path := []string{start}
	current := start
	for range scc {
		next := ""
		for _, w := range graph[current] {
			if members[w] {
				next = w
				break
			}
		}
		if next == "" {
			break
		}
		path = append(path, next)
		if next == start {
			break
		}
		current = next
	}

	return BaseCycle{
		Path:    path,
		Message: fmt.Sprintf("inheritance cycle: %s", strings.Join(path, " → ")),
	}
}
