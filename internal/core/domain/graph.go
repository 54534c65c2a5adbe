// Package domain contains the core domain models for one build invocation:
// the lifecycle phases, the build context, the project topology and the task
// dependency graph.
package domain

import (
	"iter"
	"sort"

	"go.trai.ch/zerr"
)

// Graph is the task container produced during the Configure phase: every
// task the build defines, keyed by name, with dependency validation. The
// executable subset for one invocation is computed later, from the entry
// tasks, by the execution graph.
type Graph struct {
	tasks map[InternedString]*Task
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		tasks: make(map[InternedString]*Task),
	}
}

// AddTask adds a task to the container.
// It returns an error if a task with the same name already exists.
func (g *Graph) AddTask(t *Task) error {
	if _, exists := g.tasks[t.Name]; exists {
		return zerr.With(zerr.Wrap(ErrTaskAlreadyExists, ""), "task_name", t.Name.String())
	}
	g.tasks[t.Name] = t
	return nil
}

// Task returns the task registered under name.
func (g *Graph) Task(name InternedString) (*Task, bool) {
	t, ok := g.tasks[name]
	return t, ok
}

// TaskCount returns the number of registered tasks.
func (g *Graph) TaskCount() int { return len(g.tasks) }

// Validate checks that every declared dependency exists and that the
// dependency relation is acyclic.
func (g *Graph) Validate() error {
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		task, exists := g.tasks[u]
		if !exists {
			return zerr.With(zerr.Wrap(ErrMissingDependency, ""), "dependency", u.String())
		}

		for _, dep := range task.Dependencies {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		return nil
	}

	for _, name := range g.sortedNames() {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []InternedString, dep InternedString) error {
	cyclePath := ""
	startIdx := -1
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += dep.String()
	return zerr.With(zerr.Wrap(ErrCycleDetected, ""), "cycle", cyclePath)
}

// Walk returns an iterator over all tasks, ordered by name for determinism.
func (g *Graph) Walk() iter.Seq[*Task] {
	return func(yield func(*Task) bool) {
		for _, name := range g.sortedNames() {
			if !yield(g.tasks[name]) {
				return
			}
		}
	}
}

func (g *Graph) sortedNames() []InternedString {
	names := make([]InternedString, 0, len(g.tasks))
	for name := range g.tasks {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].String() < names[j].String() })
	return names
}
