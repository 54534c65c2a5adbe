package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=included.go -destination=mocks/mock_included.go -package=mocks

// IncludedBuildControllers coordinates the builds included into a parent
// build. The parent calls in at two join points per build (task-graph
// population and task execution) and once during completion. A failing
// included build never aborts its siblings early: every child is given the
// chance to finish and report before the parent raises anything.
type IncludedBuildControllers interface {
	// PopulateTaskGraphs populates the task graphs of all included builds.
	// Synchronous fan-out; returns after every child finished populating.
	PopulateTaskGraphs(ctx context.Context) error

	// StartTaskExecution starts task execution in all included builds and
	// returns without waiting for them.
	StartTaskExecution(ctx context.Context)

	// AwaitTaskCompletion blocks until every included build's execution has
	// finished and returns the failures of all of them, none dropped.
	AwaitTaskCompletion(ctx context.Context) []error

	// Finish finishes every included build, collecting their failures.
	Finish(ctx context.Context) []error
}
