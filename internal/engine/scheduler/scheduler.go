// Package scheduler implements the task executor: it runs the populated
// execution graph of one build with bounded parallelism, collecting every
// task failure instead of stopping at the first one.
package scheduler

import (
	"context"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// TaskStatus represents the status of a task.
type TaskStatus string

const (
	// StatusPending indicates the task is waiting to be executed.
	StatusPending TaskStatus = "Pending"
	// StatusRunning indicates the task is currently executing.
	StatusRunning TaskStatus = "Running"
	// StatusCompleted indicates the task has finished successfully.
	StatusCompleted TaskStatus = "Completed"
	// StatusFailed indicates the task execution failed.
	StatusFailed TaskStatus = "Failed"
	// StatusSkipped indicates the task was not run because a dependency failed.
	StatusSkipped TaskStatus = "Skipped"
)

// Scheduler executes the tasks of a populated execution graph in dependency
// order. The internal ordering policy and parallelism are this package's
// concern; the lifecycle only sees the collected failures.
type Scheduler struct {
	executor  ports.Executor
	telemetry ports.Telemetry

	mu         sync.RWMutex
	taskStatus map[domain.InternedString]TaskStatus
}

// NewScheduler creates a new Scheduler running tasks through the given
// executor.
func NewScheduler(executor ports.Executor, telemetry ports.Telemetry) *Scheduler {
	return &Scheduler{
		executor:   executor,
		telemetry:  telemetry,
		taskStatus: make(map[domain.InternedString]TaskStatus),
	}
}

func (s *Scheduler) updateStatus(name domain.InternedString, status TaskStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskStatus[name] = status
}

// Status returns the status of a task.
func (s *Scheduler) Status(name domain.InternedString) TaskStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.taskStatus[name]
}

// Execute implements ports.TaskExecutor. It returns every task failure it
// observed; tasks whose dependencies failed are skipped, independent tasks
// keep running.
func (s *Scheduler) Execute(ctx context.Context, build *domain.Build, graph ports.TaskGraph) []error {
	parallelism := build.StartParameter.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	state := s.newRunState(ctx, build, graph, parallelism)
	for name := range state.tasks {
		s.updateStatus(name, StatusPending)
	}

	for !state.isDone() {
		state.schedule()

		if state.isDone() {
			break
		}

		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
		case <-ctx.Done():
			state.drain()
			state.failures = append(state.failures, ctx.Err())
			return state.failures
		}
	}

	for name, status := range s.snapshotStatuses() {
		if _, scheduled := state.tasks[name]; scheduled && status == StatusPending {
			s.updateStatus(name, StatusSkipped)
		}
	}

	return state.failures
}

func (s *Scheduler) snapshotStatuses() map[domain.InternedString]TaskStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[domain.InternedString]TaskStatus, len(s.taskStatus))
	for k, v := range s.taskStatus {
		out[k] = v
	}
	return out
}

type result struct {
	task domain.InternedString
	err  error
}

type runState struct {
	s           *Scheduler
	ctx         context.Context
	build       *domain.Build
	inDegree    map[domain.InternedString]int
	dependents  map[domain.InternedString][]domain.InternedString
	tasks       map[domain.InternedString]*domain.Task
	ready       []domain.InternedString
	active      int
	parallelism int
	resultsCh   chan result
	failures    []error
}

func (s *Scheduler) newRunState(ctx context.Context, build *domain.Build, graph ports.TaskGraph, parallelism int) *runState {
	scheduled := graph.AllTasks()
	tasks := make(map[domain.InternedString]*domain.Task, len(scheduled))
	for _, t := range scheduled {
		tasks[t.Name] = t
	}

	// Dependencies on filtered (excluded) tasks do not gate execution.
	inDegree := make(map[domain.InternedString]int, len(scheduled))
	dependents := make(map[domain.InternedString][]domain.InternedString)
	for _, t := range scheduled {
		degree := 0
		for _, dep := range t.Dependencies {
			if _, ok := tasks[dep]; ok {
				degree++
				dependents[dep] = append(dependents[dep], t.Name)
			}
		}
		inDegree[t.Name] = degree
	}

	var ready []domain.InternedString
	for _, t := range scheduled {
		if inDegree[t.Name] == 0 {
			ready = append(ready, t.Name)
		}
	}

	return &runState{
		s:           s,
		ctx:         ctx,
		build:       build,
		inDegree:    inDegree,
		dependents:  dependents,
		tasks:       tasks,
		ready:       ready,
		parallelism: parallelism,
		resultsCh:   make(chan result, parallelism),
	}
}

func (state *runState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

func (state *runState) schedule() {
	for len(state.ready) > 0 && state.active < state.parallelism && state.ctx.Err() == nil {
		taskName := state.ready[0]
		state.ready = state.ready[1:]

		state.active++
		state.s.updateStatus(taskName, StatusRunning)

		go func(t *domain.Task) {
			state.resultsCh <- result{task: t.Name, err: state.runTask(t)}
		}(state.tasks[taskName])
	}
}

func (state *runState) runTask(t *domain.Task) error {
	ctx, v := state.s.telemetry.Record(state.ctx, t.Path, ports.WithBuildPath(state.build.IdentityPath))
	err := state.s.executor.Execute(ctx, t)
	v.Complete(err)
	return err
}

func (state *runState) handleResult(res result) {
	state.active--
	if res.err != nil {
		state.failures = append(state.failures,
			zerr.With(zerr.Wrap(res.err, "task execution failed"), "task", res.task.String()))
		state.s.updateStatus(res.task, StatusFailed)
		return
	}
	state.s.updateStatus(res.task, StatusCompleted)
	for _, dep := range state.dependents[res.task] {
		state.inDegree[dep]--
		if state.inDegree[dep] == 0 {
			state.ready = append(state.ready, dep)
		}
	}
}

// drain waits out in-flight tasks after cancellation so their results are
// still recorded.
func (state *runState) drain() {
	for state.active > 0 {
		res := <-state.resultsCh
		state.handleResult(res)
	}
}
