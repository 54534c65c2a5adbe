// Package taskgraph implements the executable task graph of one build: the
// entry tasks selected for an invocation plus the dependency closure computed
// from them.
package taskgraph

import (
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// ExecutionGraph implements ports.TaskGraph. It is single-writer: only the
// thread driving the owning build's lifecycle mutates it, and readers come
// after the TaskGraph phase has completed.
type ExecutionGraph struct {
	build *domain.Build

	entry     []*domain.Task
	index     map[domain.InternedString]*domain.Task
	scheduled []*domain.Task
	filtered  []*domain.Task
}

// New creates the execution graph for one build. Dependency names are
// resolved against the graph's own tasks first, then against the build's
// configured task container; on the fast path the container stays nil and
// every restored task is an entry task, so the closure resolves entirely
// from the entry set.
func New(build *domain.Build) *ExecutionGraph {
	return &ExecutionGraph{
		build: build,
		index: make(map[domain.InternedString]*domain.Task),
	}
}

// AddEntryTasks appends tasks to the live entry-task set, ignoring tasks
// already present.
func (g *ExecutionGraph) AddEntryTasks(tasks []*domain.Task) {
	for _, t := range tasks {
		if _, ok := g.index[t.Name]; ok {
			continue
		}
		g.index[t.Name] = t
		g.entry = append(g.entry, t)
	}
}

// Populate computes the full executable graph from the entry tasks:
// dependency closure, cycle detection, exclusion filtering and a
// deterministic execution order. Populate may run more than once; dynamic
// task scheduling re-populates after new entry tasks were selected.
func (g *ExecutionGraph) Populate() error {
	g.scheduled = nil
	g.filtered = nil

	excluded := make(map[string]bool, len(g.build.StartParameter.ExcludedTaskNames))
	for _, name := range g.build.StartParameter.ExcludedTaskNames {
		excluded[domain.TaskNameFromPath(domain.TaskPath(name))] = true
	}

	visited := make(map[domain.InternedString]int) // 0: unvisited, 1: visiting, 2: done
	var path []domain.InternedString

	var visit func(t *domain.Task) error
	visit = func(t *domain.Task) error {
		if excluded[t.Name.String()] {
			g.filtered = append(g.filtered, t)
			visited[t.Name] = 2
			return nil
		}
		visited[t.Name] = 1
		path = append(path, t.Name)

		for _, depName := range t.Dependencies {
			dep, err := g.resolve(depName)
			if err != nil {
				return err
			}
			switch visited[dep.Name] {
			case 1:
				return cycleError(path, dep.Name)
			case 0:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[t.Name] = 2
		path = path[:len(path)-1]
		g.scheduled = append(g.scheduled, t)
		return nil
	}

	for _, t := range g.entry {
		if visited[t.Name] == 0 {
			if err := visit(t); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *ExecutionGraph) resolve(name domain.InternedString) (*domain.Task, error) {
	if t, ok := g.index[name]; ok {
		return t, nil
	}
	if container := g.build.Tasks(); container != nil {
		if t, ok := container.Task(name); ok {
			g.index[name] = t
			return t, nil
		}
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrMissingDependency, ""), "dependency", name.String())
}

func cycleError(path []domain.InternedString, dep domain.InternedString) error {
	cycle := ""
	start := 0
	for i, node := range path {
		if node == dep {
			start = i
			break
		}
	}
	for i := start; i < len(path); i++ {
		cycle += path[i].String() + " -> "
	}
	cycle += dep.String()
	return zerr.With(zerr.Wrap(domain.ErrCycleDetected, ""), "cycle", cycle)
}

// RequestedTasks returns the entry tasks, in request order.
func (g *ExecutionGraph) RequestedTasks() []*domain.Task {
	out := make([]*domain.Task, len(g.entry))
	copy(out, g.entry)
	return out
}

// FilteredTasks returns the tasks excluded from execution.
func (g *ExecutionGraph) FilteredTasks() []*domain.Task {
	out := make([]*domain.Task, len(g.filtered))
	copy(out, g.filtered)
	return out
}

// AllTasks returns every scheduled task in execution order (dependencies
// before dependents).
func (g *ExecutionGraph) AllTasks() []*domain.Task {
	out := make([]*domain.Task, len(g.scheduled))
	copy(out, g.scheduled)
	return out
}

// Size returns the number of scheduled tasks.
func (g *ExecutionGraph) Size() int { return len(g.scheduled) }
