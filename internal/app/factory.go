package app

import (
	"path/filepath"

	"go.trai.ch/forge/internal/adapters/classifier" //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/shell"      //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/snapshot"   //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/composite"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/fastpath"
	"go.trai.ch/forge/internal/engine/lifecycle"
	"go.trai.ch/forge/internal/engine/scheduler"
	"go.trai.ch/forge/internal/engine/taskgraph"
)

// LauncherFactory assembles the collaborator set of one build invocation.
// Everything below the launcher is per-invocation state; only the logger,
// the telemetry session and the task type registry are shared.
type LauncherFactory struct {
	logger    ports.Logger
	telemetry ports.Telemetry
	taskTypes domain.TaskTypes
}

// NewLauncherFactory creates a factory over the shared adapters.
func NewLauncherFactory(logger ports.Logger, telemetry ports.Telemetry) *LauncherFactory {
	return &LauncherFactory{
		logger:    logger,
		telemetry: telemetry,
		taskTypes: domain.DefaultTaskTypes(),
	}
}

// NewLauncher creates the launcher for a root build at rootDir. Included
// builds discovered in the settings get child launchers of their own,
// recursively.
func (f *LauncherFactory) NewLauncher(rootDir string, params *domain.StartParameter) *lifecycle.Launcher {
	return f.newLauncher(":", rootDir, params, true)
}

func (f *LauncherFactory) newLauncher(identityPath, rootDir string, params *domain.StartParameter, root bool) *lifecycle.Launcher {
	build := domain.NewBuild(identityPath, rootDir, params)
	projects := domain.NewProjectRegistry()
	graph := taskgraph.New(build)
	configurer := config.NewBuildConfigurer(f.taskTypes, projects)

	c := lifecycle.Collaborators{
		InitScripts:    config.NewInitScripts(),
		SettingsLoader: config.NewLoader(),
		BuildLoader:    configurer,
		Configurer:     configurer,
		Selector:       taskgraph.NewSelector(),
		Graph:          graph,
		Executor:       scheduler.NewScheduler(shell.NewExecutor(rootDir, f.logger), f.telemetry),
		Classifier:     classifier.NewClassifier(identityPath),
		Listener:       newLoggingListener(f.logger),
		Included:       composite.NewControllers(build, f.childFactory(identityPath, rootDir, params)),
		Telemetry:      f.telemetry,
	}

	// Only the root build persists and restores snapshots; included builds
	// are driven through their parent's join points.
	if root {
		store := snapshot.NewStore(rootDir, filepath.Join(rootDir, config.DefaultFilename))
		c.Snapshots = store
		c.Restorer = fastpath.NewBridge(store, f.taskTypes, projects)
	}

	return lifecycle.NewLauncher(build, c)
}

// childFactory derives the factory for builds included by the build rooted
// at parentDir. Children inherit the invocation-scoped parameters but not
// the requested task names: an included build runs its own default tasks.
func (f *LauncherFactory) childFactory(parentPath, parentDir string, parent *domain.StartParameter) composite.ChildFactory {
	return func(dir string) (*composite.IncludedBuild, error) {
		childDir := dir
		if !filepath.IsAbs(childDir) {
			childDir = filepath.Join(parentDir, dir)
		}

		base := parentPath
		if base == ":" {
			base = ""
		}
		path := base + ":" + filepath.Base(childDir)

		params := domain.NewStartParameter(nil)
		params.ConfigureOnDemand = parent.ConfigureOnDemand
		params.Parallelism = parent.Parallelism
		for k, v := range parent.SystemProperties {
			params.SystemProperties[k] = v
		}

		launcher := f.newLauncher(path, childDir, params, false)
		launcher.Build().ParentPath = parentPath
		return composite.NewIncludedBuild(path, launcher), nil
	}
}
