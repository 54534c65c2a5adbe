package domain

// Build is the mutable root context of one build invocation. It holds the
// start parameters and the models produced lazily by the lifecycle phases.
// Exactly one Build exists per invocation; it is driven by a single logical
// control thread and is not safe for concurrent mutation.
type Build struct {
	// IdentityPath identifies this build within a composite invocation.
	// The root build is ":"; included builds are ":name".
	IdentityPath string
	// RootDir is the directory the build is rooted at.
	RootDir string
	// ParentPath is the identity path of the build that included this one,
	// or "" for the root build.
	ParentPath string

	StartParameter *StartParameter

	settings    *Settings
	rootProject *Project
	tasks       *Graph
}

// NewBuild creates the root context for one invocation.
func NewBuild(identityPath, rootDir string, params *StartParameter) *Build {
	if params == nil {
		params = NewStartParameter(nil)
	}
	return &Build{
		IdentityPath:   identityPath,
		RootDir:        rootDir,
		StartParameter: params,
	}
}

// Settings returns the settings model, or nil before LoadSettings completed.
func (b *Build) Settings() *Settings { return b.settings }

// SetSettings attaches the settings model produced by the settings loader or
// by the fast-path bridge.
func (b *Build) SetSettings(s *Settings) { b.settings = s }

// RootProject returns the root project, or nil before Configure completed.
func (b *Build) RootProject() *Project { return b.rootProject }

// SetRootProject attaches the root project.
func (b *Build) SetRootProject(p *Project) { b.rootProject = p }

// Tasks returns the configured task container, or nil before Configure.
func (b *Build) Tasks() *Graph { return b.tasks }

// SetTasks attaches the task container produced during Configure.
func (b *Build) SetTasks(g *Graph) { b.tasks = g }

// StartParameter holds the caller-supplied parameters of one invocation.
type StartParameter struct {
	// TaskNames are the requested task names, in request order.
	TaskNames []string
	// ExcludedTaskNames are filtered out of the executable graph.
	ExcludedTaskNames []string
	// ConfigureOnDemand defers project evaluation notification until task
	// selection has decided which projects actually needed configuring.
	ConfigureOnDemand bool
	// Parallelism bounds concurrent task execution. Zero means one.
	Parallelism int
	// SystemProperties carries invocation-time -D style properties.
	SystemProperties map[string]string
}

// NewStartParameter creates start parameters for the given requested tasks.
func NewStartParameter(taskNames []string) *StartParameter {
	return &StartParameter{
		TaskNames:        taskNames,
		SystemProperties: make(map[string]string),
	}
}

// SystemProperty returns the named invocation-time property, or "".
func (p *StartParameter) SystemProperty(name string) string {
	return p.SystemProperties[name]
}

// MergeTaskNames merges the given task paths into the requested set,
// preserving order and dropping duplicates. It reports whether anything new
// was added.
func (p *StartParameter) MergeTaskNames(taskPaths []string) bool {
	seen := make(map[string]bool, len(p.TaskNames))
	for _, name := range p.TaskNames {
		seen[name] = true
	}
	added := false
	for _, name := range taskPaths {
		if seen[name] {
			continue
		}
		seen[name] = true
		p.TaskNames = append(p.TaskNames, name)
		added = true
	}
	return added
}
