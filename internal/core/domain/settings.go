package domain

// Settings is the logical model produced by evaluating a build's settings
// file: the root project name, the project topology and the directories of
// included builds. The fast-path bridge fabricates a synthetic Settings with
// no script content; downstream code cannot tell the difference.
type Settings struct {
	// RootProjectName names the root project. Defaults to the directory name.
	RootProjectName string
	// Dir is the directory the settings are rooted at.
	Dir string
	// IncludedBuildDirs lists the directories of builds included into this
	// one, relative to Dir.
	IncludedBuildDirs []string
	// DefaultTasks are the tasks run when the invocation requests none,
	// notably for included builds driven by a parent.
	DefaultTasks []string
	// Synthetic marks settings fabricated by the fast-path bridge.
	Synthetic bool

	// TaskDefinitions carries the raw task definitions keyed by name, to be
	// materialized into the task container during Configure.
	TaskDefinitions map[string]TaskDefinition

	descriptors *ProjectDescriptorRegistry
}

// TaskDefinition is one task's declaration as read from the settings file.
type TaskDefinition struct {
	Type        string
	Command     []string
	DependsOn   []string
	Environment map[string]string
}

// NewSettings creates a settings model rooted at dir.
func NewSettings(rootProjectName, dir string) *Settings {
	return &Settings{
		RootProjectName: rootProjectName,
		Dir:             dir,
		TaskDefinitions: make(map[string]TaskDefinition),
		descriptors:     NewProjectDescriptorRegistry(),
	}
}

// Descriptors returns the project descriptor registry backing this settings
// model.
func (s *Settings) Descriptors() *ProjectDescriptorRegistry { return s.descriptors }
