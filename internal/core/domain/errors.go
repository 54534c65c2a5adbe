package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskAlreadyExists is returned when attempting to add a task with a name that already exists.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrMissingDependency is returned when a task references a dependency that doesn't exist.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the task dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTaskNotFound is returned when a requested task is not found in the build.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrIllegalBuildPhase is returned when phase work is requested while the
	// build is not in the phase it requires. Fatal, not retried.
	ErrIllegalBuildPhase = zerr.New("illegal build phase")

	// ErrNoTasksRequested is returned when task execution is requested with an
	// empty task name set.
	ErrNoTasksRequested = zerr.New("no tasks requested")

	// ErrUnknownTaskType is returned when a snapshot names a task
	// implementation type that is not registered.
	ErrUnknownTaskType = zerr.New("unknown task type")
)
