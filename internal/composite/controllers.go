// Package composite coordinates the builds included into a parent build.
// Each included build keeps its own independent phase state machine; the
// parent calls in at two join points per build (task-graph population and
// task execution) and once more during completion.
package composite

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/engine/lifecycle"
	"go.trai.ch/zerr"
)

// IncludedBuild is one child build folded into the parent invocation.
type IncludedBuild struct {
	path     string
	launcher *lifecycle.Launcher
}

// NewIncludedBuild wraps a child launcher under its identity path.
func NewIncludedBuild(path string, launcher *lifecycle.Launcher) *IncludedBuild {
	return &IncludedBuild{path: path, launcher: launcher}
}

// Path returns the child's identity path, e.g. ":tools".
func (b *IncludedBuild) Path() string { return b.path }

// Launcher returns the child's lifecycle launcher.
func (b *IncludedBuild) Launcher() *lifecycle.Launcher { return b.launcher }

// ChildFactory creates the included build for one directory listed in the
// parent's settings.
type ChildFactory func(dir string) (*IncludedBuild, error)

// Controllers implements ports.IncludedBuildControllers. Children are
// discovered lazily from the parent's settings at the first join point, so
// the coordinator can be constructed before settings are loaded. A failing
// child never aborts its siblings early: every child gets the chance to
// finish and report before the parent raises anything.
type Controllers struct {
	parent   *domain.Build
	newChild ChildFactory

	setup    sync.Once
	setupErr error
	children []*IncludedBuild

	mu        sync.Mutex
	executing sync.WaitGroup
	execErrs  []error
}

// NewControllers creates the coordinator for the given parent build.
// newChild may be nil when the invocation cannot have included builds.
func NewControllers(parent *domain.Build, newChild ChildFactory) *Controllers {
	return &Controllers{parent: parent, newChild: newChild}
}

// Children returns the included builds discovered so far.
func (c *Controllers) Children() []*IncludedBuild {
	out := make([]*IncludedBuild, len(c.children))
	copy(out, c.children)
	return out
}

func (c *Controllers) ensureChildren() error {
	c.setup.Do(func() {
		settings := c.parent.Settings()
		if settings == nil || c.newChild == nil {
			return
		}
		for _, dir := range settings.IncludedBuildDirs {
			child, err := c.newChild(dir)
			if err != nil {
				c.setupErr = zerr.With(zerr.Wrap(err, "failed to include build"), "build_dir", dir)
				return
			}
			c.children = append(c.children, child)
		}
	})
	return c.setupErr
}

// PopulateTaskGraphs populates the task graphs of all included builds.
// Synchronous fan-out: it returns only after every child has finished
// populating; children populate concurrently with each other and with the
// parent's own graph work having completed just before. Every child's
// failure is reported, not just the first.
func (c *Controllers) PopulateTaskGraphs(ctx context.Context) error {
	if err := c.ensureChildren(); err != nil {
		return err
	}
	var (
		mu       sync.Mutex
		failures []error
	)
	var g errgroup.Group
	for _, child := range c.children {
		g.Go(func() error {
			if err := child.launcher.PopulateTaskGraph(ctx); err != nil {
				mu.Lock()
				failures = append(failures, zerr.With(err, "build_path", child.path))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(failures...)
}

// StartTaskExecution starts task execution in all included builds and
// returns without waiting. Children that never reached the TaskGraph phase
// (nothing was populated for them) are left alone.
func (c *Controllers) StartTaskExecution(ctx context.Context) {
	if err := c.ensureChildren(); err != nil {
		c.mu.Lock()
		c.execErrs = append(c.execErrs, err)
		c.mu.Unlock()
		return
	}
	for _, child := range c.children {
		if child.launcher.Phase() != domain.PhaseTaskGraph {
			continue
		}
		c.executing.Add(1)
		go func(child *IncludedBuild) {
			defer c.executing.Done()
			if err := child.launcher.RunScheduledTasks(ctx); err != nil {
				c.mu.Lock()
				c.execErrs = append(c.execErrs, zerr.With(err, "build_path", child.path))
				c.mu.Unlock()
			}
		}(child)
	}
}

// AwaitTaskCompletion blocks until every included build's execution has
// finished and returns the failures of all of them. There is no
// first-failure-wins short-circuit at this layer.
func (c *Controllers) AwaitTaskCompletion(_ context.Context) []error {
	c.executing.Wait()
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.execErrs
	c.execErrs = nil
	return out
}

// Finish finishes every included build, collecting their failures.
func (c *Controllers) Finish(ctx context.Context) []error {
	var failures []error
	for _, child := range c.children {
		if err := child.launcher.FinishBuild(ctx); err != nil {
			failures = append(failures, zerr.With(err, "build_path", child.path))
		}
	}
	return failures
}
