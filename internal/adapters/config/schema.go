package config

// Forgefile represents the structure of the forge.yaml settings file.
type Forgefile struct {
	Version      string             `yaml:"version"`
	Name         string             `yaml:"name"`
	DefaultTasks []string           `yaml:"defaultTasks"`
	Includes     []string           `yaml:"includes"`
	Tasks        map[string]TaskDTO `yaml:"tasks"`
}

// TaskDTO represents a task definition in the settings file.
type TaskDTO struct {
	Type        string            `yaml:"type"`
	Cmd         []string          `yaml:"cmd"`
	DependsOn   []string          `yaml:"dependsOn"`
	Environment map[string]string `yaml:"environment"`
}
