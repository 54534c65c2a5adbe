package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/cmd/forge/commands"
	"go.trai.ch/forge/internal/adapters/telemetry"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newCLI(t *testing.T) (*commands.CLI, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	a := app.New(app.NewLauncherFactory(logger, telemetry.NewNoOp()), logger, nil)
	cli := commands.New(a)
	var out bytes.Buffer
	cli.SetOutput(&out)
	return cli, &out
}

func writeForgefile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "forge.yaml"), []byte(content), 0o644))
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	writeForgefile(t, dir, `
name: sample
tasks:
  compile:
    cmd: [sh, -c, "echo built > compile.out"]
`)

	cli, _ := newCLI(t)
	cli.SetArgs([]string{"run", "compile", "-C", dir})

	require.NoError(t, cli.Execute(context.Background()))
	assert.FileExists(t, filepath.Join(dir, "compile.out"))
}

func TestRunCommand_ExcludeAndProperties(t *testing.T) {
	dir := t.TempDir()
	writeForgefile(t, dir, `
name: sample
tasks:
  compile:
    cmd: [sh, -c, "echo $GREETING > compile.out"]
  lint:
    cmd: [sh, -c, "echo linted > lint.out"]
  check:
    cmd: [sh, -c, "true"]
    dependsOn: [compile, lint]
`)

	cli, _ := newCLI(t)
	cli.SetArgs([]string{"run", "check", "-C", dir, "-x", "lint", "-p", "2"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.FileExists(t, filepath.Join(dir, "compile.out"))
	assert.NoFileExists(t, filepath.Join(dir, "lint.out"))
}

func TestRunCommand_InvalidProperty(t *testing.T) {
	cli, _ := newCLI(t)
	cli.SetArgs([]string{"run", "compile", "-D", "no-separator"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid system property")
}

func TestRunCommand_BuildFailure(t *testing.T) {
	dir := t.TempDir()
	writeForgefile(t, dir, `
name: sample
tasks:
  compile:
    cmd: [sh, -c, "exit 1"]
`)

	cli, _ := newCLI(t)
	cli.SetArgs([]string{"run", "compile", "-C", dir})

	require.Error(t, cli.Execute(context.Background()))
}

func TestTasksCommand(t *testing.T) {
	dir := t.TempDir()
	writeForgefile(t, dir, `
name: sample
tasks:
  compile:
    cmd: [sh, -c, "true"]
  check:
    cmd: [sh, -c, "true"]
    dependsOn: [compile]
`)

	cli, out := newCLI(t)
	cli.SetArgs([]string{"tasks", "-C", dir})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), ":compile (exec)")
	assert.Contains(t, out.String(), ":check (exec) -> compile")
}

func TestVersionCommand(t *testing.T) {
	cli, out := newCLI(t)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "forge version dev")
}
