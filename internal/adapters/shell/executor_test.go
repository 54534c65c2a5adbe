package shell_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/shell"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func execTask(t *testing.T, command ...string) *domain.Task {
	t.Helper()
	task, err := domain.NewExecTask(":test", domain.TaskDefinition{Command: command})
	require.NoError(t, err)
	return task
}

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("line1").Times(1)
	mockLogger.EXPECT().Info("line2").Times(1)

	executor := shell.NewExecutor(t.TempDir(), mockLogger)
	task := execTask(t, "sh", "-c", "echo line1; echo line2")

	require.NoError(t, executor.Execute(context.Background(), task))
}

func TestExecutor_Execute_EnvironmentVariables(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("test-value-123").Times(1)

	executor := shell.NewExecutor(t.TempDir(), mockLogger)
	task := execTask(t, "sh", "-c", "echo $MY_TEST_VAR")
	task.Environment = map[string]string{"MY_TEST_VAR": "test-value-123"}

	require.NoError(t, executor.Execute(context.Background(), task))
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(t.TempDir(), mockLogger)
	task := execTask(t, "sh", "-c", "exit 42")

	err := executor.Execute(context.Background(), task)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, 42, zErr.Metadata()["exit_code"])
	assert.Equal(t, ":test", zErr.Metadata()["task"])
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(t.TempDir(), mockLogger)
	task := execTask(t, "nonexistent-command-xyz123")

	require.Error(t, executor.Execute(context.Background(), task))
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(t.TempDir(), mocks.NewMockLogger(ctrl))
	task := execTask(t)

	require.NoError(t, executor.Execute(context.Background(), task))
}

func TestExecutor_Execute_AbsolutePath(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(t.TempDir(), mockLogger)
	task := execTask(t, "/bin/sh", "-c", "echo test")

	require.NoError(t, executor.Execute(context.Background(), task))
}

// bufferVertex captures output the way a live telemetry vertex would.
type bufferVertex struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func (v *bufferVertex) Stdout() io.Writer           { return &v.stdout }
func (v *bufferVertex) Stderr() io.Writer           { return &v.stderr }
func (v *bufferVertex) Log(domain.LogLevel, string) {}
func (v *bufferVertex) Complete(error)              {}
func (v *bufferVertex) Cached()                     {}

func TestExecutor_Execute_OutputGoesToVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	// The logger must stay silent: vertex writers take over both streams.
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(t.TempDir(), mockLogger)
	task := execTask(t, "sh", "-c", "echo to-stdout; echo to-stderr >&2")

	v := &bufferVertex{}
	ctx := ports.ContextWithVertex(context.Background(), v)
	require.NoError(t, executor.Execute(ctx, task))

	assert.Contains(t, v.stdout.String(), "to-stdout")
	assert.Contains(t, v.stderr.String(), "to-stderr")
}

func TestExecutor_Execute_Cancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	executor := shell.NewExecutor(t.TempDir(), mockLogger)
	task := execTask(t, "sh", "-c", "sleep 10")

	err := executor.Execute(ctx, task)
	require.Error(t, err)
}
