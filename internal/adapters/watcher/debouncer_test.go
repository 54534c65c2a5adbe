package watcher_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/watcher"
)

func TestNewDebouncer(t *testing.T) {
	d := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func([]string) {})
	require.NotNil(t, d)
}

func TestDebouncer_Add_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/project/src/main.go")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		require.Len(t, receivedPaths, 1)
		assert.Equal(t, "/project/src/main.go", receivedPaths[0])
	})
}

func TestDebouncer_Add_MultiplePathsCoalesced(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/project/src/file1.go")
		d.Add("/project/src/file2.go")
		d.Add("/project/src/file2.go")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		// One invocation, duplicates collapsed.
		require.Equal(t, 1, callCount)
		require.Len(t, receivedPaths, 2)
		assert.Contains(t, receivedPaths, "/project/src/file1.go")
		assert.Contains(t, receivedPaths, "/project/src/file2.go")
	})
}

func TestDebouncer_WindowRestartsOnAdd(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
		})

		d.Add("/project/a")
		time.Sleep(60 * time.Millisecond)
		d.Add("/project/b")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		// The second Add restarted the window, so nothing fired yet.
		require.Equal(t, 0, callCount)

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		require.Equal(t, 1, callCount)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	var receivedPaths []string

	d := watcher.NewDebouncer(time.Hour, func(paths []string) {
		receivedPaths = paths
	})

	d.Add("/project/src/main.go")
	d.Flush()

	require.Len(t, receivedPaths, 1)
	assert.Equal(t, "/project/src/main.go", receivedPaths[0])
}

func TestDebouncer_Flush_Empty(t *testing.T) {
	var callCount int
	d := watcher.NewDebouncer(time.Hour, func([]string) { callCount++ })

	d.Flush()

	assert.Equal(t, 0, callCount)
}
