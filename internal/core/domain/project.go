package domain

import (
	"sort"
	"sync"
)

// ProjectDescriptor describes one project in the build's topology before it
// is configured: its path, its directory and its parent.
type ProjectDescriptor struct {
	Path   string
	Name   string
	Dir    string
	Parent *ProjectDescriptor
}

// ProjectDescriptorRegistry holds the descriptors of all projects known to a
// settings model, keyed by project path.
type ProjectDescriptorRegistry struct {
	mu          sync.RWMutex
	descriptors map[string]*ProjectDescriptor
}

// NewProjectDescriptorRegistry creates an empty registry.
func NewProjectDescriptorRegistry() *ProjectDescriptorRegistry {
	return &ProjectDescriptorRegistry{descriptors: make(map[string]*ProjectDescriptor)}
}

// Add registers a descriptor under its path, replacing any previous entry.
func (r *ProjectDescriptorRegistry) Add(d *ProjectDescriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.descriptors[d.Path] = d
}

// Project returns the descriptor registered under path, or nil.
func (r *ProjectDescriptorRegistry) Project(path string) *ProjectDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.descriptors[path]
}

// Project is a configured project. The fast-path bridge produces synthetic
// projects through the same factory a real build uses, so these are
// structurally identical on both paths.
type Project struct {
	Descriptor *ProjectDescriptor
	Parent     *Project
	children   map[string]*Project
}

// Path returns the project path, e.g. ":" for the root project.
func (p *Project) Path() string { return p.Descriptor.Path }

// ProjectFactory creates configured projects from descriptors.
type ProjectFactory struct{}

// CreateProject creates a project for the given descriptor under parent.
// parent is nil for the root project.
func (f *ProjectFactory) CreateProject(d *ProjectDescriptor, parent *Project) *Project {
	p := &Project{
		Descriptor: d,
		Parent:     parent,
		children:   make(map[string]*Project),
	}
	if parent != nil {
		parent.children[d.Name] = p
	}
	return p
}

// ProjectRegistry is the project-state registry: the view of configured
// projects that task execution machinery reads. Registration happens once
// per build, after configuration (or after the fast-path bridge has built the
// synthetic tree).
type ProjectRegistry struct {
	mu       sync.RWMutex
	projects map[string]*Project
}

// NewProjectRegistry creates an empty project-state registry.
func NewProjectRegistry() *ProjectRegistry {
	return &ProjectRegistry{projects: make(map[string]*Project)}
}

// RegisterProjects records the project tree rooted at root.
func (r *ProjectRegistry) RegisterProjects(root *Project) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var walk func(p *Project)
	walk = func(p *Project) {
		r.projects[p.Path()] = p
		for _, child := range p.children {
			walk(child)
		}
	}
	if root != nil {
		walk(root)
	}
}

// Project returns the configured project at path, or nil.
func (r *ProjectRegistry) Project(path string) *Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.projects[path]
}

// Paths returns all registered project paths, sorted.
func (r *ProjectRegistry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	paths := make([]string, 0, len(r.projects))
	for path := range r.projects {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
