package ports

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks

// Executor runs a single task's command.
type Executor interface {
	// Execute runs the given task. It returns an error if the task fails.
	Execute(ctx context.Context, task *domain.Task) error
}

// TaskExecutor executes the populated task graph of a build. Invoked once,
// during the RunTasks phase. It returns every task failure it observed; it
// does not stop sibling tasks on the first failure.
type TaskExecutor interface {
	Execute(ctx context.Context, build *domain.Build, graph TaskGraph) []error
}
