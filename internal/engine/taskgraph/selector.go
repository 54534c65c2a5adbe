package taskgraph

import (
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Selector implements ports.TaskSelector: it turns the requested task names
// of a build into entry points of the execution graph. Selection may run
// more than once per build; dynamic task scheduling re-selects with the
// enlarged name set and the graph deduplicates.
type Selector struct{}

// NewSelector creates a task selector.
func NewSelector() *Selector { return &Selector{} }

// Select resolves every requested task name against the build's configured
// task container and adds the results as entry tasks.
func (s *Selector) Select(build *domain.Build, graph ports.TaskGraph) error {
	names := build.StartParameter.TaskNames
	if len(names) == 0 && build.Settings() != nil {
		names = build.Settings().DefaultTasks
	}
	if len(names) == 0 {
		// An included build with no default tasks contributes nothing; only
		// a root invocation must name work to do.
		if build.ParentPath != "" {
			return nil
		}
		return domain.ErrNoTasksRequested
	}

	container := build.Tasks()
	if container == nil {
		return zerr.With(zerr.Wrap(domain.ErrIllegalBuildPhase, ""), "reason", "task container not configured")
	}

	tasks := make([]*domain.Task, 0, len(names))
	for _, name := range names {
		bare := domain.TaskNameFromPath(domain.TaskPath(name))
		task, ok := container.Task(domain.NewInternedString(bare))
		if !ok {
			return zerr.With(zerr.Wrap(domain.ErrTaskNotFound, ""), "task_name", name)
		}
		tasks = append(tasks, task)
	}
	graph.AddEntryTasks(tasks)
	return nil
}
