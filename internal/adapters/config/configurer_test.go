package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/config"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

func configuredSettings() *domain.Settings {
	settings := domain.NewSettings("sample", "/tmp/sample")
	settings.TaskDefinitions["compile"] = domain.TaskDefinition{Command: []string{"make", "compile"}}
	settings.TaskDefinitions["check"] = domain.TaskDefinition{
		Command:   []string{"make", "check"},
		DependsOn: []string{"compile"},
	}
	settings.Descriptors().Add(&domain.ProjectDescriptor{Path: ":", Name: "sample", Dir: "/tmp/sample"})
	return settings
}

func TestBuildConfigurer_Load(t *testing.T) {
	registry := domain.NewProjectRegistry()
	c := config.NewBuildConfigurer(domain.DefaultTaskTypes(), registry)
	build := domain.NewBuild(":", "/tmp/sample", domain.NewStartParameter(nil))
	settings := configuredSettings()

	require.NoError(t, c.Load(settings, build))

	root := build.RootProject()
	require.NotNil(t, root)
	assert.Equal(t, ":", root.Path())
	assert.Same(t, root, registry.Project(":"))
}

func TestBuildConfigurer_Load_NoRootProject(t *testing.T) {
	c := config.NewBuildConfigurer(domain.DefaultTaskTypes(), domain.NewProjectRegistry())
	build := domain.NewBuild(":", "/tmp/sample", domain.NewStartParameter(nil))
	settings := domain.NewSettings("sample", "/tmp/sample")

	err := c.Load(settings, build)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no root project")
}

func TestBuildConfigurer_Configure(t *testing.T) {
	c := config.NewBuildConfigurer(domain.DefaultTaskTypes(), domain.NewProjectRegistry())
	build := domain.NewBuild(":", "/tmp/sample", domain.NewStartParameter(nil))
	build.SetSettings(configuredSettings())

	require.NoError(t, c.Configure(build))

	container := build.Tasks()
	require.NotNil(t, container)
	assert.Equal(t, 2, container.TaskCount())

	check, ok := container.Task(domain.NewInternedString("check"))
	require.True(t, ok)
	assert.Equal(t, ":check", check.Path)
	assert.Equal(t, []string{"make", "check"}, check.Command)
	require.Len(t, check.Dependencies, 1)
	assert.Equal(t, "compile", check.Dependencies[0].String())
}

func TestBuildConfigurer_Configure_UnknownTaskType(t *testing.T) {
	c := config.NewBuildConfigurer(domain.DefaultTaskTypes(), domain.NewProjectRegistry())
	build := domain.NewBuild(":", "/tmp/sample", domain.NewStartParameter(nil))
	settings := domain.NewSettings("sample", "/tmp/sample")
	settings.TaskDefinitions["deploy"] = domain.TaskDefinition{Type: "container"}
	build.SetSettings(settings)

	err := c.Configure(build)
	require.ErrorIs(t, err, domain.ErrUnknownTaskType)
	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "deploy", zErr.Metadata()["task_name"])
	assert.Equal(t, "container", zErr.Metadata()["task_type"])
}
