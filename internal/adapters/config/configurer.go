package config

import (
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// BuildConfigurer implements ports.BuildLoader and ports.BuildConfigurer: it
// attaches the project model described by the settings and materializes the
// task container.
type BuildConfigurer struct {
	taskTypes domain.TaskTypes
	projects  *domain.ProjectRegistry
	factory   *domain.ProjectFactory
}

// NewBuildConfigurer creates the configurer. The project registry is the
// project-state registry shared with the fast-path bridge, so both paths
// produce the same registered view.
func NewBuildConfigurer(taskTypes domain.TaskTypes, projects *domain.ProjectRegistry) *BuildConfigurer {
	return &BuildConfigurer{
		taskTypes: taskTypes,
		projects:  projects,
		factory:   &domain.ProjectFactory{},
	}
}

// Load applies the project model to the build.
func (c *BuildConfigurer) Load(settings *domain.Settings, build *domain.Build) error {
	descriptor := settings.Descriptors().Project(":")
	if descriptor == nil {
		return zerr.With(zerr.New("settings carry no root project"), "build_path", build.IdentityPath)
	}
	root := c.factory.CreateProject(descriptor, nil)
	build.SetRootProject(root)
	c.projects.RegisterProjects(root)
	return nil
}

// Configure evaluates the build logic: every task definition becomes a task
// in the build's task container, created through the task type registry.
func (c *BuildConfigurer) Configure(build *domain.Build) error {
	settings := build.Settings()
	container := domain.NewGraph()

	for name, def := range settings.TaskDefinitions {
		typeName := def.Type
		if typeName == "" {
			typeName = domain.ExecTaskType
		}
		factory, ok := c.taskTypes[typeName]
		if !ok {
			err := zerr.With(zerr.Wrap(domain.ErrUnknownTaskType, ""), "task_name", name)
			return zerr.With(err, "task_type", typeName)
		}
		task, err := factory(domain.TaskPath(name), def)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create task"), "task_name", name)
		}
		if err := container.AddTask(task); err != nil {
			return err
		}
	}

	if err := container.Validate(); err != nil {
		return err
	}
	build.SetTasks(container)
	return nil
}
