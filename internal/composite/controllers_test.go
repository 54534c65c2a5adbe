package composite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/telemetry"
	"go.trai.ch/forge/internal/composite"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.trai.ch/forge/internal/engine/lifecycle"
	"go.uber.org/mock/gomock"
)

// childLauncher builds a launcher whose collaborators all succeed, except
// that task execution returns execErrs.
func childLauncher(t *testing.T, ctrl *gomock.Controller, dir string, execErrs []error) *lifecycle.Launcher {
	t.Helper()

	build := domain.NewBuild(":"+filepath.Base(dir), dir, domain.NewStartParameter(nil))
	settings := domain.NewSettings(filepath.Base(dir), dir)

	initScripts := mocks.NewMockInitScriptRunner(ctrl)
	initScripts.EXPECT().RunInitScripts(gomock.Any()).Return(nil).AnyTimes()
	settingsLoader := mocks.NewMockSettingsLoader(ctrl)
	settingsLoader.EXPECT().FindAndLoadSettings(gomock.Any()).Return(settings, nil).AnyTimes()
	buildLoader := mocks.NewMockBuildLoader(ctrl)
	buildLoader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	configurer := mocks.NewMockBuildConfigurer(ctrl)
	configurer.EXPECT().Configure(gomock.Any()).Return(nil).AnyTimes()
	selector := mocks.NewMockTaskSelector(ctrl)
	selector.EXPECT().Select(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	graph := mocks.NewMockTaskGraph(ctrl)
	graph.EXPECT().Populate().Return(nil).AnyTimes()
	graph.EXPECT().RequestedTasks().Return(nil).AnyTimes()
	graph.EXPECT().FilteredTasks().Return(nil).AnyTimes()
	executor := mocks.NewMockTaskExecutor(ctrl)
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(execErrs).AnyTimes()
	classifier := mocks.NewMockFailureClassifier(ctrl)
	classifier.EXPECT().Transform(gomock.Any()).DoAndReturn(func(err error) error { return err }).AnyTimes()
	listener := mocks.NewMockBuildListener(ctrl)
	listener.EXPECT().BuildStarted(gomock.Any()).AnyTimes()
	listener.EXPECT().ProjectsEvaluated(gomock.Any()).Return(nil).AnyTimes()
	listener.EXPECT().BuildFinished(gomock.Any()).Return(nil).AnyTimes()
	included := mocks.NewMockIncludedBuildControllers(ctrl)
	included.EXPECT().PopulateTaskGraphs(gomock.Any()).Return(nil).AnyTimes()
	included.EXPECT().StartTaskExecution(gomock.Any()).AnyTimes()
	included.EXPECT().AwaitTaskCompletion(gomock.Any()).Return(nil).AnyTimes()
	included.EXPECT().Finish(gomock.Any()).Return(nil).AnyTimes()

	return lifecycle.NewLauncher(build, lifecycle.Collaborators{
		InitScripts:    initScripts,
		SettingsLoader: settingsLoader,
		BuildLoader:    buildLoader,
		Configurer:     configurer,
		Selector:       selector,
		Graph:          graph,
		Executor:       executor,
		Classifier:     classifier,
		Listener:       listener,
		Included:       included,
		Telemetry:      telemetry.NewNoOp(),
	})
}

// failingSettingsLauncher builds a launcher whose settings loading fails, so
// any graph population attempt surfaces loadErr.
func failingSettingsLauncher(t *testing.T, ctrl *gomock.Controller, dir string, loadErr error) *lifecycle.Launcher {
	t.Helper()

	build := domain.NewBuild(":"+filepath.Base(dir), dir, domain.NewStartParameter(nil))

	initScripts := mocks.NewMockInitScriptRunner(ctrl)
	initScripts.EXPECT().RunInitScripts(gomock.Any()).Return(nil).AnyTimes()
	settingsLoader := mocks.NewMockSettingsLoader(ctrl)
	settingsLoader.EXPECT().FindAndLoadSettings(gomock.Any()).Return(nil, loadErr).AnyTimes()
	graph := mocks.NewMockTaskGraph(ctrl)
	graph.EXPECT().RequestedTasks().Return(nil).AnyTimes()
	graph.EXPECT().FilteredTasks().Return(nil).AnyTimes()
	classifier := mocks.NewMockFailureClassifier(ctrl)
	classifier.EXPECT().Transform(gomock.Any()).DoAndReturn(func(err error) error { return err }).AnyTimes()
	listener := mocks.NewMockBuildListener(ctrl)
	listener.EXPECT().BuildStarted(gomock.Any()).AnyTimes()
	listener.EXPECT().BuildFinished(gomock.Any()).Return(nil).AnyTimes()
	included := mocks.NewMockIncludedBuildControllers(ctrl)
	included.EXPECT().Finish(gomock.Any()).Return(nil).AnyTimes()

	return lifecycle.NewLauncher(build, lifecycle.Collaborators{
		InitScripts:    initScripts,
		SettingsLoader: settingsLoader,
		Graph:          graph,
		Classifier:     classifier,
		Listener:       listener,
		Included:       included,
		Telemetry:      telemetry.NewNoOp(),
	})
}

func parentWithIncludes(t *testing.T, dirs ...string) *domain.Build {
	t.Helper()
	build := domain.NewBuild(":", t.TempDir(), domain.NewStartParameter(nil))
	settings := domain.NewSettings("root", build.RootDir)
	settings.IncludedBuildDirs = dirs
	build.SetSettings(settings)
	return build
}

func TestControllers_PopulateTaskGraphs_DiscoversChildren(t *testing.T) {
	ctrl := gomock.NewController(t)
	parent := parentWithIncludes(t, "tools", "libs")

	c := composite.NewControllers(parent, func(dir string) (*composite.IncludedBuild, error) {
		return composite.NewIncludedBuild(":"+dir, childLauncher(t, ctrl, dir, nil)), nil
	})

	require.NoError(t, c.PopulateTaskGraphs(context.Background()))

	children := c.Children()
	require.Len(t, children, 2)
	for _, child := range children {
		assert.Equal(t, domain.PhaseTaskGraph, child.Launcher().Phase())
	}
}

func TestControllers_PopulateTaskGraphs_ReportsEveryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	parent := parentWithIncludes(t, "tools", "libs", "docs")
	errTools := errors.New("tools settings broken")
	errLibs := errors.New("libs settings broken")

	loadErrs := map[string]error{"tools": errTools, "libs": errLibs}
	c := composite.NewControllers(parent, func(dir string) (*composite.IncludedBuild, error) {
		if loadErr := loadErrs[dir]; loadErr != nil {
			return composite.NewIncludedBuild(":"+dir, failingSettingsLauncher(t, ctrl, dir, loadErr)), nil
		}
		return composite.NewIncludedBuild(":"+dir, childLauncher(t, ctrl, dir, nil)), nil
	})

	err := c.PopulateTaskGraphs(context.Background())

	// Both failing children report; population is not first-failure-wins.
	require.Error(t, err)
	assert.ErrorIs(t, err, errTools)
	assert.ErrorIs(t, err, errLibs)

	// The healthy sibling still populated its graph.
	for _, child := range c.Children() {
		if child.Path() == ":docs" {
			assert.Equal(t, domain.PhaseTaskGraph, child.Launcher().Phase())
		}
	}
}

func TestControllers_AwaitTaskCompletion_CollectsEveryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	parent := parentWithIncludes(t, "tools", "libs", "docs")
	errTools := errors.New("tools build failed")
	errLibs := errors.New("libs build failed")

	failuresByDir := map[string][]error{
		"tools": {errTools},
		"libs":  {errLibs},
	}
	c := composite.NewControllers(parent, func(dir string) (*composite.IncludedBuild, error) {
		return composite.NewIncludedBuild(":"+dir, childLauncher(t, ctrl, dir, failuresByDir[dir])), nil
	})

	ctx := context.Background()
	require.NoError(t, c.PopulateTaskGraphs(ctx))
	c.StartTaskExecution(ctx)
	failures := c.AwaitTaskCompletion(ctx)

	// Both failing children report; the healthy one does not abort them.
	require.Len(t, failures, 2)
	all := errors.Join(failures...)
	assert.ErrorIs(t, all, errTools)
	assert.ErrorIs(t, all, errLibs)

	// Collected failures are handed over exactly once.
	assert.Empty(t, c.AwaitTaskCompletion(ctx))
}

func TestControllers_Finish_CompletesChildren(t *testing.T) {
	ctrl := gomock.NewController(t)
	parent := parentWithIncludes(t, "tools")

	c := composite.NewControllers(parent, func(dir string) (*composite.IncludedBuild, error) {
		return composite.NewIncludedBuild(":"+dir, childLauncher(t, ctrl, dir, nil)), nil
	})

	ctx := context.Background()
	require.NoError(t, c.PopulateTaskGraphs(ctx))
	c.StartTaskExecution(ctx)
	require.Empty(t, c.AwaitTaskCompletion(ctx))

	require.Empty(t, c.Finish(ctx))
	for _, child := range c.Children() {
		assert.Equal(t, domain.PhaseFinished, child.Launcher().Phase())
	}
}

func TestControllers_NoIncludedBuilds(t *testing.T) {
	parent := parentWithIncludes(t)

	c := composite.NewControllers(parent, nil)

	ctx := context.Background()
	require.NoError(t, c.PopulateTaskGraphs(ctx))
	c.StartTaskExecution(ctx)
	assert.Empty(t, c.AwaitTaskCompletion(ctx))
	assert.Empty(t, c.Finish(ctx))
	assert.Empty(t, c.Children())
}

func TestControllers_ChildFactoryFailure(t *testing.T) {
	parent := parentWithIncludes(t, "broken")
	factoryErr := errors.New("no settings file")

	c := composite.NewControllers(parent, func(string) (*composite.IncludedBuild, error) {
		return nil, factoryErr
	})

	err := c.PopulateTaskGraphs(context.Background())
	require.ErrorIs(t, err, factoryErr)
}
