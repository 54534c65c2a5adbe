// Package config loads and applies the forge.yaml settings file: the
// settings loader for the LoadSettings phase and the build loader and
// configurer for the Configure phase.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the settings file forge looks for in a build directory.
const DefaultFilename = "forge.yaml"

// Loader implements ports.SettingsLoader over a YAML settings file.
type Loader struct {
	Filename string
}

// NewLoader creates a settings loader for the default filename.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultFilename}
}

// FindAndLoadSettings reads the settings file from the build's root
// directory and evaluates it into the settings model, establishing the
// project and included-build topology.
func (l *Loader) FindAndLoadSettings(build *domain.Build) (*domain.Settings, error) {
	path := filepath.Join(build.RootDir, l.Filename)
	//nolint:gosec // path is rooted at the user-chosen build directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
	}

	var file Forgefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse settings file"), "path", path)
	}

	return evaluate(&file, build)
}

func evaluate(file *Forgefile, build *domain.Build) (*domain.Settings, error) {
	name := file.Name
	if name == "" {
		name = filepath.Base(build.RootDir)
	}

	settings := domain.NewSettings(name, build.RootDir)
	settings.DefaultTasks = file.DefaultTasks
	settings.IncludedBuildDirs = file.Includes

	// First pass: collect task names so dependencies can be verified.
	taskNames := make(map[string]bool, len(file.Tasks))
	for taskName := range file.Tasks {
		taskNames[taskName] = true
	}

	for taskName, dto := range file.Tasks {
		if taskName == "all" {
			return nil, zerr.With(zerr.New("task name 'all' is reserved"), "task_name", taskName)
		}
		for _, dep := range dto.DependsOn {
			if !taskNames[dep] {
				err := zerr.With(zerr.Wrap(domain.ErrMissingDependency, ""), "task_name", taskName)
				return nil, zerr.With(err, "missing_dependency", dep)
			}
		}
		settings.TaskDefinitions[taskName] = domain.TaskDefinition{
			Type:        dto.Type,
			Command:     dto.Cmd,
			DependsOn:   dto.DependsOn,
			Environment: dto.Environment,
		}
	}

	settings.Descriptors().Add(&domain.ProjectDescriptor{
		Path: ":",
		Name: name,
		Dir:  build.RootDir,
	})

	return settings, nil
}

// InitScripts implements ports.InitScriptRunner. Init scripts are not part
// of the settings format yet; the runner exists so the LoadSettings phase
// shape matches the lifecycle contract.
type InitScripts struct{}

// NewInitScripts creates the init script runner.
func NewInitScripts() *InitScripts { return &InitScripts{} }

// RunInitScripts evaluates invocation-level init scripts.
func (r *InitScripts) RunInitScripts(_ *domain.Build) error { return nil }
