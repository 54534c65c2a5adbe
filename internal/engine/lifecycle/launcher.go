// Package lifecycle drives a single build invocation through its ordered
// phases: LoadSettings, Configure, TaskGraph, RunTasks. Each phase runs at
// most once, the build always reaches the Finished phase exactly once, and
// every failure raised along the way, including failures raised while
// shutting down, surfaces to the caller as one consolidated error.
package lifecycle

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// GraphRestorer prepares the task graph from persisted state on the fast
// path, bypassing the LoadSettings, Configure and TaskGraph phase bodies.
type GraphRestorer interface {
	PrepareTaskGraph(ctx context.Context, build *domain.Build, graph ports.TaskGraph) error
}

// Collaborators are the external contracts one Launcher drives. All fields
// are required except Snapshots and Restorer; leaving those nil disables the
// fast path and the snapshot save seam.
type Collaborators struct {
	InitScripts    ports.InitScriptRunner
	SettingsLoader ports.SettingsLoader
	BuildLoader    ports.BuildLoader
	Configurer     ports.BuildConfigurer
	Selector       ports.TaskSelector
	Graph          ports.TaskGraph
	Executor       ports.TaskExecutor
	Classifier     ports.FailureClassifier
	Listener       ports.BuildListener
	Included       ports.IncludedBuildControllers
	Snapshots      ports.SnapshotStore
	Restorer       GraphRestorer
	Telemetry      ports.Telemetry
}

// Launcher is the phase sequencer of one build. It is single-threaded per
// build: phase transitions must be externally serialized.
type Launcher struct {
	build *domain.Build
	c     Collaborators
	phase domain.Phase
}

// NewLauncher creates the launcher for one build invocation.
func NewLauncher(build *domain.Build, c Collaborators) *Launcher {
	return &Launcher{build: build, c: c}
}

// Build returns the build this launcher drives.
func (l *Launcher) Build() *domain.Build { return l.build }

// Phase returns the build's current phase.
func (l *Launcher) Phase() domain.Phase { return l.phase }

// LoadedSettings advances the build to LoadSettings and returns the settings
// model. Completion runs before returning, as for every advance.
func (l *Launcher) LoadedSettings(ctx context.Context) (*domain.Settings, error) {
	err := l.advanceTo(ctx, domain.PhaseLoadSettings)
	return l.build.Settings(), err
}

// ConfiguredBuild advances the build to Configure and returns the build.
func (l *Launcher) ConfiguredBuild(ctx context.Context) (*domain.Build, error) {
	err := l.advanceTo(ctx, domain.PhaseConfigure)
	return l.build, err
}

// ExecuteTasks advances the build through RunTasks.
func (l *Launcher) ExecuteTasks(ctx context.Context) error {
	return l.advanceTo(ctx, domain.PhaseRunTasks)
}

// FinishBuild runs the completion protocol with no triggering failure. It is
// a no-op before the first phase advance and after the build finished.
func (l *Launcher) FinishBuild(ctx context.Context) error {
	if l.phase == domain.PhaseNone {
		return nil
	}
	return l.finish(ctx, l.phase.DisplayName(), nil)
}

// ScheduleTasks merges taskPaths into the requested task-name set, preserving
// order and dropping duplicates. If nothing new was added it returns
// immediately. Otherwise it forces the phase back to Configure, even from
// RunTasks, and re-advances to TaskGraph so that task selection and graph
// population run again with the enlarged set. This is the only permitted
// phase regression. Callable only after Configure has completed at least
// once.
func (l *Launcher) ScheduleTasks(ctx context.Context, taskPaths []string) error {
	if l.phase < domain.PhaseConfigure {
		return zerr.With(zerr.Wrap(domain.ErrIllegalBuildPhase, ""), "current_phase", l.phase.String())
	}
	if !l.build.StartParameter.MergeTaskNames(taskPaths) {
		return nil
	}
	// Force back to Configure so that the task graph is re-evaluated.
	l.phase = domain.PhaseConfigure
	return l.advanceTo(ctx, domain.PhaseTaskGraph)
}

// PopulateTaskGraph advances the build through the TaskGraph phase without
// running the completion protocol. It exists for the nested-build
// coordinator, which completes included builds at its own finish join point.
func (l *Launcher) PopulateTaskGraph(ctx context.Context) error {
	return l.runClassicStages(ctx, domain.PhaseTaskGraph)
}

// RunScheduledTasks executes the populated task graph without running the
// completion protocol. Like PopulateTaskGraph, it is a join point for the
// nested-build coordinator.
func (l *Launcher) RunScheduledTasks(ctx context.Context) error {
	return l.runTasks(ctx)
}

// advanceTo drives the build from its current phase to upTo, inclusive, then
// runs the completion protocol exactly once before returning.
func (l *Launcher) advanceTo(ctx context.Context, upTo domain.Phase) error {
	if err := l.runStages(ctx, upTo); err != nil {
		return l.finish(ctx, upTo.DisplayName(), err)
	}
	return l.FinishBuild(ctx)
}

func (l *Launcher) runStages(ctx context.Context, upTo domain.Phase) error {
	if upTo == domain.PhaseRunTasks && l.canRunFromSnapshot() {
		return l.runFromSnapshot(ctx)
	}
	return l.runClassicStages(ctx, upTo)
}

func (l *Launcher) canRunFromSnapshot() bool {
	return l.c.Snapshots != nil && l.c.Restorer != nil && l.c.Snapshots.CanRunFromSnapshot(l.build)
}

func (l *Launcher) runClassicStages(ctx context.Context, upTo domain.Phase) error {
	if err := l.loadSettings(ctx); err != nil {
		return err
	}
	if upTo == domain.PhaseLoadSettings {
		return nil
	}
	if err := l.configureBuild(ctx); err != nil {
		return err
	}
	if upTo == domain.PhaseConfigure {
		return nil
	}
	if err := l.calculateTaskGraph(ctx); err != nil {
		return err
	}
	if upTo == domain.PhaseTaskGraph {
		return nil
	}
	if l.c.Snapshots != nil {
		if err := l.c.Snapshots.Save(l.build, l.c.Graph); err != nil {
			return err
		}
	}
	return l.runTasks(ctx)
}

// runFromSnapshot restores the persisted task graph instead of running the
// LoadSettings, Configure and TaskGraph phase bodies. There is nothing new
// to persist on this path, so the snapshot save seam is skipped.
func (l *Launcher) runFromSnapshot(ctx context.Context) error {
	l.buildStarted()
	if err := l.c.Restorer.PrepareTaskGraph(ctx, l.build, l.c.Graph); err != nil {
		return err
	}
	l.phase = domain.PhaseTaskGraph
	return l.runTasks(ctx)
}

func (l *Launcher) buildStarted() {
	if l.phase == domain.PhaseNone {
		l.c.Listener.BuildStarted(l.build)
	}
}

// finish is the completion protocol. It runs shutdown notification exactly
// once, collects every failure raised while shutting down plus the
// triggering failure, and raises at most one consolidated error. Finished is
// terminal: once reached, repeated completion requests are no-ops.
func (l *Launcher) finish(ctx context.Context, action string, stageErr error) error {
	if l.phase == domain.PhaseFinished {
		return nil
	}

	var reportable error
	if stageErr != nil {
		reportable = l.c.Classifier.Transform(stageErr)
	}
	result := domain.BuildResult{Action: action, Build: l.build, Failure: reportable}

	failures := l.c.Included.Finish(ctx)
	if err := l.c.Listener.BuildFinished(result); err != nil {
		failures = append(failures, err)
	}
	l.phase = domain.PhaseFinished

	if len(failures) == 0 {
		return reportable
	}
	if agg, ok := stageErr.(*domain.AggregateFailure); ok {
		failures = append(append([]error{}, agg.Causes()...), failures...)
	} else if stageErr != nil {
		failures = append([]error{stageErr}, failures...)
	}
	return l.c.Classifier.Transform(domain.NewAggregateFailure(failures))
}

func (l *Launcher) loadSettings(ctx context.Context) error {
	if l.phase != domain.PhaseNone {
		return nil
	}
	l.buildStarted()

	_, v := l.c.Telemetry.Record(ctx, l.contextualize("Load build"), ports.WithBuildPath(l.build.IdentityPath))
	err := l.doLoadSettings()
	v.Complete(err)
	if err != nil {
		return err
	}
	l.phase = domain.PhaseLoadSettings
	return nil
}

func (l *Launcher) doLoadSettings() error {
	if err := l.c.InitScripts.RunInitScripts(l.build); err != nil {
		return err
	}
	settings, err := l.c.SettingsLoader.FindAndLoadSettings(l.build)
	if err != nil {
		return err
	}
	l.build.SetSettings(settings)
	return nil
}

func (l *Launcher) configureBuild(ctx context.Context) error {
	if l.phase != domain.PhaseLoadSettings {
		return nil
	}

	_, v := l.c.Telemetry.Record(ctx, l.contextualize("Configure build"), ports.WithBuildPath(l.build.IdentityPath))
	err := l.doConfigureBuild(ctx)
	v.Complete(err)
	if err != nil {
		return err
	}
	l.phase = domain.PhaseConfigure
	return nil
}

func (l *Launcher) doConfigureBuild(ctx context.Context) error {
	if err := l.c.BuildLoader.Load(l.build.Settings(), l.build); err != nil {
		return err
	}
	if err := l.c.Configurer.Configure(l.build); err != nil {
		return err
	}
	if !l.build.StartParameter.ConfigureOnDemand {
		return l.projectsEvaluated(ctx)
	}
	return nil
}

func (l *Launcher) calculateTaskGraph(ctx context.Context) error {
	if l.phase != domain.PhaseConfigure {
		return nil
	}

	_, v := l.c.Telemetry.Record(ctx, l.contextualize("Calculate task graph"), ports.WithBuildPath(l.build.IdentityPath))
	err := l.doCalculateTaskGraph(ctx)
	if err == nil {
		v.Log(domain.LogLevelInfo, fmt.Sprintf("requested tasks: %s", formatTaskPaths(l.c.Graph.RequestedTasks())))
		v.Log(domain.LogLevelInfo, fmt.Sprintf("excluded tasks: %s", formatTaskPaths(l.c.Graph.FilteredTasks())))
	}
	v.Complete(err)
	if err != nil {
		return err
	}
	l.phase = domain.PhaseTaskGraph
	return nil
}

func (l *Launcher) doCalculateTaskGraph(ctx context.Context) error {
	if err := l.c.Selector.Select(l.build, l.c.Graph); err != nil {
		return err
	}
	if l.build.StartParameter.ConfigureOnDemand {
		if err := l.projectsEvaluated(ctx); err != nil {
			return err
		}
	}
	if err := l.c.Graph.Populate(); err != nil {
		return err
	}
	return l.c.Included.PopulateTaskGraphs(ctx)
}

func (l *Launcher) runTasks(ctx context.Context) error {
	if l.phase != domain.PhaseTaskGraph {
		return zerr.With(zerr.Wrap(domain.ErrIllegalBuildPhase, ""), "current_phase", l.phase.String())
	}

	ctx, v := l.c.Telemetry.Record(ctx, l.contextualize("Run tasks"), ports.WithBuildPath(l.build.IdentityPath))
	err := l.doRunTasks(ctx)
	v.Complete(err)
	if err != nil {
		return err
	}
	l.phase = domain.PhaseRunTasks
	return nil
}

func (l *Launcher) doRunTasks(ctx context.Context) error {
	l.c.Included.StartTaskExecution(ctx)
	failures := l.c.Executor.Execute(ctx, l.build, l.c.Graph)
	failures = append(failures, l.c.Included.AwaitTaskCompletion(ctx)...)
	if len(failures) > 0 {
		return domain.NewAggregateFailure(failures)
	}
	return nil
}

// projectsEvaluated notifies the projects-evaluated listeners. In eager mode
// this fires at the end of Configure; with configure-on-demand it is deferred
// to the TaskGraph phase, after task selection has decided which projects
// actually needed configuring.
func (l *Launcher) projectsEvaluated(ctx context.Context) error {
	_, v := l.c.Telemetry.Record(ctx, l.contextualize("Notify projectsEvaluated listeners"), ports.WithBuildPath(l.build.IdentityPath))
	err := l.c.Listener.ProjectsEvaluated(l.build)
	v.Complete(err)
	return err
}

// contextualize qualifies an operation name with the build's identity path so
// that operations of included builds are distinguishable from the root's.
func (l *Launcher) contextualize(name string) string {
	if l.build.IdentityPath == ":" || l.build.IdentityPath == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, l.build.IdentityPath)
}

func formatTaskPaths(tasks []*domain.Task) string {
	paths := make([]string, len(tasks))
	for i, t := range tasks {
		paths[i] = t.Path
	}
	sort.Strings(paths)
	return "[" + strings.Join(paths, ", ") + "]"
}
