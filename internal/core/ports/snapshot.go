package ports

import (
	"go.trai.ch/forge/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=snapshot.go -destination=mocks/mock_snapshot.go -package=mocks

// SnapshotStore is the persistence collaborator behind the fast path. The
// snapshot encoding is owned by the store; the lifecycle only asks three
// questions: can this invocation run from a snapshot, restore it, save one.
type SnapshotStore interface {
	// CanRunFromSnapshot reports whether a previously persisted task graph
	// can be restored for this invocation instead of reconstructing the
	// project model from scratch.
	CanRunFromSnapshot(build *domain.Build) bool

	// Restore rehydrates the persisted entry tasks through the host
	// contract. It never touches phase state directly.
	Restore(host SnapshotHost) error

	// Save persists the populated task graph. Called once, only on the
	// classic path, right before RunTasks.
	Save(build *domain.Build, graph TaskGraph) error
}

// SnapshotHost is the narrow contract the fast-path bridge exposes to the
// snapshot store: just enough to rehydrate task instances and their declared
// properties.
type SnapshotHost interface {
	// SystemProperty reads a named invocation-time system property.
	SystemProperty(name string) string

	// ResolveTaskType resolves a task implementation type by name.
	ResolveTaskType(name string) (domain.TaskFactory, error)

	// ScheduleTask appends a task to the live entry-task set.
	ScheduleTask(task *domain.Task)

	// ScheduledTasks reads back the full set of scheduled tasks.
	ScheduledTasks() []*domain.Task
}
