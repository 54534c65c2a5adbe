package ports

import (
	"go.trai.ch/forge/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=taskgraph.go -destination=mocks/mock_taskgraph.go -package=mocks

// TaskSelector turns the requested task names of a build into entry points of
// the executable graph. Invoked once, during the TaskGraph phase.
type TaskSelector interface {
	Select(build *domain.Build, graph TaskGraph) error
}

// TaskGraph is the executable task graph of one build: entry tasks plus the
// dependency closure computed by Populate. It is mutated only by the thread
// driving the build's lifecycle; readers come after the owning phase has
// completed.
type TaskGraph interface {
	// AddEntryTasks appends tasks to the live entry-task set.
	AddEntryTasks(tasks []*domain.Task)
	// Populate computes the full executable graph from the entry tasks.
	Populate() error
	// RequestedTasks returns the entry tasks that were requested.
	RequestedTasks() []*domain.Task
	// FilteredTasks returns tasks excluded from execution.
	FilteredTasks() []*domain.Task
	// AllTasks returns every scheduled task in execution order.
	AllTasks() []*domain.Task
	// Size returns the number of scheduled tasks.
	Size() int
}
