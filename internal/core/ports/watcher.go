package ports

import (
	"context"
	"iter"
)

//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// WatchOperation describes the kind of file system change observed.
type WatchOperation int

const (
	OpWrite WatchOperation = iota
	OpCreate
	OpRemove
	OpRename
)

// WatchEvent is one observed file system change.
type WatchEvent struct {
	Path      string
	Operation WatchOperation
}

// Watcher observes a directory tree for changes, used to re-run builds in
// watch mode.
type Watcher interface {
	// Start begins watching the given root directory recursively.
	Start(ctx context.Context, root string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file system events.
	Events() iter.Seq[WatchEvent]
}
