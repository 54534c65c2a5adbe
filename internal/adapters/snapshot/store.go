// Package snapshot implements the persistence collaborator behind the fast
// path: a file-backed store of the entry tasks of a previous invocation,
// keyed by a fingerprint of the settings file and the requested task names.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnableProperty is the invocation-time system property that opts a build
// into running from a snapshot (-D forge.snapshot=true).
const EnableProperty = "forge.snapshot"

// DefaultDir is the state directory under the build root.
const DefaultDir = ".forge"

// DefaultFilename is the snapshot file name inside DefaultDir.
const DefaultFilename = "snapshot.json"

// Store implements ports.SnapshotStore using a flat JSON file. The encoding
// is owned by this package; the lifecycle never reads it.
type Store struct {
	path         string
	settingsPath string

	mu       sync.Mutex
	restored *snapshotFile
}

type snapshotFile struct {
	Fingerprint string       `json:"fingerprint"`
	Tasks       []taskRecord `json:"tasks"`
}

type taskRecord struct {
	Path        string            `json:"path"`
	Type        string            `json:"type"`
	Command     []string          `json:"command,omitempty"`
	DependsOn   []string          `json:"dependsOn,omitempty"`
	Environment map[string]string `json:"environment,omitempty"`
}

// NewStore creates a snapshot store for the build rooted at rootDir, with
// settingsPath as the fingerprinted settings file.
func NewStore(rootDir, settingsPath string) *Store {
	return &Store{
		path:         filepath.Join(rootDir, DefaultDir, DefaultFilename),
		settingsPath: settingsPath,
	}
}

// CanRunFromSnapshot reports whether this invocation can run instantaneously
// from the persisted state: the build opted in, a snapshot exists, and its
// fingerprint matches the current settings file and requested task names.
func (s *Store) CanRunFromSnapshot(build *domain.Build) bool {
	if !enabled(build.StartParameter.SystemProperty(EnableProperty)) {
		return false
	}

	file, err := s.load()
	if err != nil || file == nil {
		return false
	}
	fingerprint, err := s.fingerprint(build)
	if err != nil || file.Fingerprint != fingerprint {
		return false
	}

	s.mu.Lock()
	s.restored = file
	s.mu.Unlock()
	return true
}

// Restore rehydrates the persisted entry tasks through the host contract.
func (s *Store) Restore(host ports.SnapshotHost) error {
	if !enabled(host.SystemProperty(EnableProperty)) {
		return zerr.New("snapshot restore requested without " + EnableProperty)
	}

	s.mu.Lock()
	file := s.restored
	s.mu.Unlock()
	if file == nil {
		loaded, err := s.load()
		if err != nil {
			return err
		}
		if loaded == nil {
			return zerr.With(zerr.New("no snapshot to restore"), "path", s.path)
		}
		file = loaded
	}

	for _, rec := range file.Tasks {
		factory, err := host.ResolveTaskType(rec.Type)
		if err != nil {
			return err
		}
		task, err := factory(rec.Path, domain.TaskDefinition{
			Command:     rec.Command,
			DependsOn:   rec.DependsOn,
			Environment: rec.Environment,
		})
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to rehydrate task"), "task_path", rec.Path)
		}
		host.ScheduleTask(task)
	}

	if scheduled := len(host.ScheduledTasks()); scheduled < len(file.Tasks) {
		err := zerr.With(zerr.New("snapshot restore scheduled fewer tasks than persisted"), "persisted", len(file.Tasks))
		return zerr.With(err, "scheduled", scheduled)
	}
	return nil
}

// Save persists the populated task graph. It is a no-op unless the build
// opted into snapshots.
func (s *Store) Save(build *domain.Build, graph ports.TaskGraph) error {
	if !enabled(build.StartParameter.SystemProperty(EnableProperty)) {
		return nil
	}

	fingerprint, err := s.fingerprint(build)
	if err != nil {
		return err
	}

	tasks := graph.AllTasks()
	file := snapshotFile{
		Fingerprint: fingerprint,
		Tasks:       make([]taskRecord, 0, len(tasks)),
	}
	for _, t := range tasks {
		deps := make([]string, len(t.Dependencies))
		for i, d := range t.Dependencies {
			deps[i] = d.String()
		}
		file.Tasks = append(file.Tasks, taskRecord{
			Path:        t.Path,
			Type:        t.Type,
			Command:     t.Command,
			DependsOn:   deps,
			Environment: t.Environment,
		})
	}

	data, err := json.MarshalIndent(&file, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal snapshot")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create snapshot directory")
	}
	//nolint:gosec // path is rooted at the user-chosen build directory
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write snapshot")
	}
	return nil
}

func (s *Store) load() (*snapshotFile, error) {
	//nolint:gosec // path is rooted at the user-chosen build directory
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read snapshot")
	}
	if len(data) == 0 {
		return nil, nil
	}

	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal snapshot")
	}
	return &file, nil
}

// fingerprint hashes the settings file bytes and the ordered requested task
// names. Any change to either invalidates the snapshot.
func (s *Store) fingerprint(build *domain.Build) (string, error) {
	//nolint:gosec // path is rooted at the user-chosen build directory
	data, err := os.ReadFile(s.settingsPath)
	if err != nil {
		return "", zerr.Wrap(err, "failed to read settings file for fingerprint")
	}

	h := xxhash.New()
	_, _ = h.Write(data)
	for _, name := range build.StartParameter.TaskNames {
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(name)
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

func enabled(value string) bool {
	return value == "true" || value == "on"
}
