package app

import (
	"fmt"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// loggingListener is the default build listener: it narrates the lifecycle
// events through the shared logger.
type loggingListener struct {
	logger ports.Logger
}

func newLoggingListener(logger ports.Logger) *loggingListener {
	return &loggingListener{logger: logger}
}

func (l *loggingListener) BuildStarted(build *domain.Build) {
	l.logger.Info(fmt.Sprintf("build %s started in %s", build.IdentityPath, build.RootDir))
}

func (l *loggingListener) ProjectsEvaluated(build *domain.Build) error {
	if settings := build.Settings(); settings != nil && len(settings.DefaultTasks) == 0 && len(build.StartParameter.TaskNames) == 0 {
		l.logger.Warn(fmt.Sprintf("build %s defines no default tasks", build.IdentityPath))
	}
	return nil
}

func (l *loggingListener) BuildFinished(result domain.BuildResult) error {
	if result.Failure != nil {
		l.logger.Info(fmt.Sprintf("%s failed", result.Action))
		return nil
	}
	l.logger.Info(fmt.Sprintf("%s finished", result.Action))
	return nil
}
