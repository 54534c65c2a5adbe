// Package app implements the application layer for forge: it owns the
// launcher factory and translates CLI invocations into build lifecycles.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/forge/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// RunOptions are the per-invocation parameters of a build run.
type RunOptions struct {
	// Dir is the build root directory.
	Dir string
	// TaskNames are the requested task names, in request order.
	TaskNames []string
	// ExcludedTaskNames are filtered out of the executable graph.
	ExcludedTaskNames []string
	// ConfigureOnDemand defers project evaluation to task selection.
	ConfigureOnDemand bool
	// Parallelism bounds concurrent task execution. Zero means one.
	Parallelism int
	// SystemProperties carries -D style invocation properties.
	SystemProperties map[string]string
	// Watch re-runs the build whenever files under Dir change.
	Watch bool
}

// App represents the main application logic.
type App struct {
	launchers *LauncherFactory
	logger    ports.Logger
	watcher   ports.Watcher
}

// New creates a new App instance.
func New(launchers *LauncherFactory, logger ports.Logger, w ports.Watcher) *App {
	return &App{
		launchers: launchers,
		logger:    logger,
		watcher:   w,
	}
}

// Run executes one build, or keeps re-running it in watch mode.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if !opts.Watch {
		return a.runOnce(ctx, opts)
	}
	return a.runWatching(ctx, opts)
}

func (a *App) runOnce(ctx context.Context, opts RunOptions) error {
	launcher := a.launchers.NewLauncher(opts.Dir, startParameter(opts))
	return launcher.ExecuteTasks(ctx)
}

// runWatching runs the build, then re-runs it on every coalesced batch of
// file changes until the context is cancelled. Build failures do not stop
// the loop.
func (a *App) runWatching(ctx context.Context, opts RunOptions) error {
	if err := a.runOnce(ctx, opts); err != nil {
		a.logger.Error(err)
	}

	if err := a.watcher.Start(ctx, opts.Dir); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	trigger := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		select {
		case trigger <- paths:
		default:
		}
	})
	go func() {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
	}()

	a.logger.Info("watching for changes")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case paths := <-trigger:
			a.logger.Info(fmt.Sprintf("%d path(s) changed, rebuilding", len(paths)))
			if err := a.runOnce(ctx, opts); err != nil {
				a.logger.Error(err)
			}
		}
	}
}

// Tasks configures the build at dir and returns its task container without
// executing anything.
func (a *App) Tasks(ctx context.Context, dir string) (*domain.Graph, error) {
	launcher := a.launchers.NewLauncher(dir, domain.NewStartParameter(nil))
	build, err := launcher.ConfiguredBuild(ctx)
	if err != nil {
		return nil, err
	}
	return build.Tasks(), nil
}

func startParameter(opts RunOptions) *domain.StartParameter {
	params := domain.NewStartParameter(opts.TaskNames)
	params.ExcludedTaskNames = opts.ExcludedTaskNames
	params.ConfigureOnDemand = opts.ConfigureOnDemand
	params.Parallelism = opts.Parallelism
	for k, v := range opts.SystemProperties {
		params.SystemProperties[k] = v
	}
	return params
}
