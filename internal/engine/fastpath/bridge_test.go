package fastpath_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.trai.ch/forge/internal/engine/fastpath"
	"go.uber.org/mock/gomock"
)

func TestBridge_PrepareTaskGraph(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	build := domain.NewBuild(":", dir, domain.NewStartParameter([]string{"compile"}))
	registry := domain.NewProjectRegistry()

	var entries []*domain.Task
	snapshots := mocks.NewMockSnapshotStore(ctrl)
	snapshots.EXPECT().Restore(gomock.Any()).DoAndReturn(func(host ports.SnapshotHost) error {
		factory, err := host.ResolveTaskType(domain.ExecTaskType)
		if err != nil {
			return err
		}
		task, err := factory(":compile", domain.TaskDefinition{Command: []string{"make"}})
		if err != nil {
			return err
		}
		host.ScheduleTask(task)
		return nil
	})
	graph := mocks.NewMockTaskGraph(ctrl)
	graph.EXPECT().AddEntryTasks(gomock.Any()).Do(func(tasks []*domain.Task) {
		entries = append(entries, tasks...)
	})
	graph.EXPECT().Populate().Return(nil)

	b := fastpath.NewBridge(snapshots, domain.DefaultTaskTypes(), registry)
	require.NoError(t, b.PrepareTaskGraph(context.Background(), build, graph))

	settings := build.Settings()
	require.NotNil(t, settings)
	assert.True(t, settings.Synthetic)
	assert.Equal(t, filepath.Base(dir), settings.RootProjectName)

	root := build.RootProject()
	require.NotNil(t, root)
	assert.Equal(t, ":", root.Path())
	assert.Same(t, root, registry.Project(":"))

	require.Len(t, entries, 1)
	assert.Equal(t, ":compile", entries[0].Path)
}

func TestBridge_UnknownTaskTypeFailsRestore(t *testing.T) {
	ctrl := gomock.NewController(t)
	build := domain.NewBuild(":", t.TempDir(), domain.NewStartParameter(nil))

	snapshots := mocks.NewMockSnapshotStore(ctrl)
	snapshots.EXPECT().Restore(gomock.Any()).DoAndReturn(func(host ports.SnapshotHost) error {
		_, err := host.ResolveTaskType("container")
		return err
	})
	graph := mocks.NewMockTaskGraph(ctrl)

	b := fastpath.NewBridge(snapshots, domain.DefaultTaskTypes(), domain.NewProjectRegistry())
	err := b.PrepareTaskGraph(context.Background(), build, graph)
	require.ErrorIs(t, err, domain.ErrUnknownTaskType)
}

func TestBridge_RestoreErrorSkipsPopulate(t *testing.T) {
	ctrl := gomock.NewController(t)
	build := domain.NewBuild(":", t.TempDir(), domain.NewStartParameter(nil))
	restoreErr := errors.New("snapshot file corrupt")

	snapshots := mocks.NewMockSnapshotStore(ctrl)
	snapshots.EXPECT().Restore(gomock.Any()).Return(restoreErr)
	graph := mocks.NewMockTaskGraph(ctrl)

	b := fastpath.NewBridge(snapshots, domain.DefaultTaskTypes(), domain.NewProjectRegistry())
	err := b.PrepareTaskGraph(context.Background(), build, graph)
	require.ErrorIs(t, err, restoreErr)
}
