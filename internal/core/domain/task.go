package domain

// Task is a unit of work in the build. It uses InternedString for fields that
// are frequently repeated to save memory.
type Task struct {
	// Name is the bare task name, e.g. "build".
	Name InternedString
	// Path is the project-qualified task path, e.g. ":build".
	Path string
	// Type names the task implementation, resolved through the task type
	// registry when rehydrating from a snapshot. Defaults to "exec".
	Type string

	Command      []string
	Dependencies []InternedString
	Environment  map[string]string
}

// TaskFactory constructs a task of one implementation type at the given path
// from its declaration.
type TaskFactory func(path string, def TaskDefinition) (*Task, error)

// TaskTypes maps task implementation type names to their factories. Both the
// configurer and the fast-path bridge resolve task types through it.
type TaskTypes map[string]TaskFactory

// DefaultTaskTypes returns the built-in task type registry.
func DefaultTaskTypes() TaskTypes {
	return TaskTypes{
		ExecTaskType: NewExecTask,
	}
}

// ExecTaskType is the built-in command-running task implementation type.
const ExecTaskType = "exec"

// NewExecTask builds an exec task. It is the factory registered for
// ExecTaskType.
func NewExecTask(path string, def TaskDefinition) (*Task, error) {
	name := TaskNameFromPath(path)
	deps := make([]InternedString, len(def.DependsOn))
	for i, d := range def.DependsOn {
		deps[i] = NewInternedString(d)
	}
	return &Task{
		Name:         NewInternedString(name),
		Path:         path,
		Type:         ExecTaskType,
		Command:      def.Command,
		Dependencies: deps,
		Environment:  def.Environment,
	}, nil
}

// TaskPath qualifies a bare task name into a task path.
func TaskPath(name string) string {
	if len(name) > 0 && name[0] == ':' {
		return name
	}
	return ":" + name
}

// TaskNameFromPath strips the project qualifier from a task path.
func TaskNameFromPath(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == ':' {
			return path[i+1:]
		}
	}
	return path
}
