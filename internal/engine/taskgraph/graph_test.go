package taskgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/engine/taskgraph"
)

func task(name string, deps ...string) *domain.Task {
	t := &domain.Task{
		Name: domain.NewInternedString(name),
		Path: domain.TaskPath(name),
	}
	for _, dep := range deps {
		t.Dependencies = append(t.Dependencies, domain.NewInternedString(dep))
	}
	return t
}

func buildWithTasks(t *testing.T, tasks ...*domain.Task) *domain.Build {
	t.Helper()
	build := domain.NewBuild(":", t.TempDir(), domain.NewStartParameter(nil))
	container := domain.NewGraph()
	for _, task := range tasks {
		require.NoError(t, container.AddTask(task))
	}
	build.SetTasks(container)
	return build
}

func names(tasks []*domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Name.String()
	}
	return out
}

func TestExecutionGraph_Populate_DependencyClosure(t *testing.T) {
	compile := task("compile")
	test := task("test", "compile")
	build := buildWithTasks(t, compile, test, task("docs"))

	g := taskgraph.New(build)
	g.AddEntryTasks([]*domain.Task{test})
	require.NoError(t, g.Populate())

	// "docs" was never requested and stays out of the graph.
	assert.Equal(t, []string{"compile", "test"}, names(g.AllTasks()))
	assert.Equal(t, []string{"test"}, names(g.RequestedTasks()))
	assert.Equal(t, 2, g.Size())
}

func TestExecutionGraph_AddEntryTasks_Dedupes(t *testing.T) {
	compile := task("compile")
	build := buildWithTasks(t, compile)

	g := taskgraph.New(build)
	g.AddEntryTasks([]*domain.Task{compile})
	g.AddEntryTasks([]*domain.Task{compile})

	assert.Len(t, g.RequestedTasks(), 1)
}

func TestExecutionGraph_Populate_ExcludedTasksFiltered(t *testing.T) {
	compile := task("compile")
	lint := task("lint")
	check := task("check", "compile", "lint")
	build := buildWithTasks(t, compile, lint, check)
	build.StartParameter.ExcludedTaskNames = []string{"lint"}

	g := taskgraph.New(build)
	g.AddEntryTasks([]*domain.Task{check})
	require.NoError(t, g.Populate())

	assert.Equal(t, []string{"compile", "check"}, names(g.AllTasks()))
	assert.Equal(t, []string{"lint"}, names(g.FilteredTasks()))
}

func TestExecutionGraph_Populate_CycleDetected(t *testing.T) {
	a := task("a", "b")
	b := task("b", "a")
	build := buildWithTasks(t, a, b)

	g := taskgraph.New(build)
	g.AddEntryTasks([]*domain.Task{a})

	err := g.Populate()
	require.ErrorIs(t, err, domain.ErrCycleDetected)
}

func TestExecutionGraph_Populate_MissingDependency(t *testing.T) {
	a := task("a", "gone")
	build := buildWithTasks(t, a)

	g := taskgraph.New(build)
	g.AddEntryTasks([]*domain.Task{a})

	err := g.Populate()
	require.ErrorIs(t, err, domain.ErrMissingDependency)
}

func TestExecutionGraph_Populate_Repopulates(t *testing.T) {
	compile := task("compile")
	test := task("test", "compile")
	build := buildWithTasks(t, compile, test)

	g := taskgraph.New(build)
	g.AddEntryTasks([]*domain.Task{compile})
	require.NoError(t, g.Populate())
	require.Equal(t, 1, g.Size())

	// Dynamic scheduling adds an entry task and populates again; the graph
	// is recomputed, not appended to.
	g.AddEntryTasks([]*domain.Task{test})
	require.NoError(t, g.Populate())
	assert.Equal(t, []string{"compile", "test"}, names(g.AllTasks()))
}

func TestExecutionGraph_Populate_WithoutContainer(t *testing.T) {
	// On the fast path every restored task is an entry task and the build
	// has no configured container; the closure resolves from the entry set.
	compile := task("compile")
	test := task("test", "compile")
	build := domain.NewBuild(":", t.TempDir(), domain.NewStartParameter(nil))

	g := taskgraph.New(build)
	g.AddEntryTasks([]*domain.Task{compile, test})
	require.NoError(t, g.Populate())

	assert.Equal(t, []string{"compile", "test"}, names(g.AllTasks()))
}
