// Package fastpath implements the snapshot fast path: when a previously
// persisted task graph is restorable, the bridge fabricates the smallest
// possible stand-in for the settings and project model and rehydrates the
// entry tasks, so the build can jump straight to task execution without
// loading settings or configuring projects.
package fastpath

import (
	"context"
	"path/filepath"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Bridge builds the minimal live model needed to populate and run a restored
// task graph. Downstream phase logic operates on the synthetic settings and
// project tree unmodified.
type Bridge struct {
	snapshots ports.SnapshotStore
	taskTypes domain.TaskTypes
	projects  *domain.ProjectRegistry
	factory   *domain.ProjectFactory
}

// NewBridge creates a bridge over the given snapshot store and task type
// registry. The project registry is the same project-state registry a
// classic build registers into.
func NewBridge(snapshots ports.SnapshotStore, taskTypes domain.TaskTypes, projects *domain.ProjectRegistry) *Bridge {
	return &Bridge{
		snapshots: snapshots,
		taskTypes: taskTypes,
		projects:  projects,
		factory:   &domain.ProjectFactory{},
	}
}

// PrepareTaskGraph implements lifecycle.GraphRestorer: synthetic settings,
// synthetic root project, restore, project registration, populate.
func (b *Bridge) PrepareTaskGraph(_ context.Context, build *domain.Build, graph ports.TaskGraph) error {
	build.SetSettings(b.createSettings(build))

	root := b.createRootProject(build)
	build.SetRootProject(root)

	host := &bridgeHost{build: build, graph: graph, taskTypes: b.taskTypes}
	if err := b.snapshots.Restore(host); err != nil {
		return zerr.Wrap(err, "failed to restore task graph from snapshot")
	}

	b.projects.RegisterProjects(root)

	return graph.Populate()
}

// createSettings fabricates a settings object carrying no real script
// content, rooted at the build directory.
func (b *Bridge) createSettings(build *domain.Build) *domain.Settings {
	s := domain.NewSettings(filepath.Base(build.RootDir), build.RootDir)
	s.Synthetic = true
	return s
}

// createRootProject fabricates the project a normal configuration would
// produce for path ":", through the same descriptor registry and project
// factory a real build uses.
func (b *Bridge) createRootProject(build *domain.Build) *domain.Project {
	descriptor := &domain.ProjectDescriptor{
		Path: ":",
		Name: build.Settings().RootProjectName,
		Dir:  build.RootDir,
	}
	build.Settings().Descriptors().Add(descriptor)
	return b.factory.CreateProject(descriptor, nil)
}

// bridgeHost is the narrow contract the snapshot store rehydrates through.
// It never touches phase state.
type bridgeHost struct {
	build     *domain.Build
	graph     ports.TaskGraph
	taskTypes domain.TaskTypes
}

func (h *bridgeHost) SystemProperty(name string) string {
	return h.build.StartParameter.SystemProperty(name)
}

func (h *bridgeHost) ResolveTaskType(name string) (domain.TaskFactory, error) {
	factory, ok := h.taskTypes[name]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownTaskType, ""), "task_type", name)
	}
	return factory, nil
}

func (h *bridgeHost) ScheduleTask(task *domain.Task) {
	h.graph.AddEntryTasks([]*domain.Task{task})
}

func (h *bridgeHost) ScheduledTasks() []*domain.Task {
	return h.graph.RequestedTasks()
}
