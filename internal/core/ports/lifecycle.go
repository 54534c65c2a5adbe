// Package ports defines the collaborator contracts consumed by the build
// lifecycle. The lifecycle owns phase sequencing and failure composition;
// everything these interfaces describe is performed by adapters.
package ports

import (
	"go.trai.ch/forge/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=lifecycle.go -destination=mocks/mock_lifecycle.go -package=mocks

// InitScriptRunner evaluates invocation-level init scripts at the top of the
// LoadSettings phase.
type InitScriptRunner interface {
	RunInitScripts(build *domain.Build) error
}

// SettingsLoader locates and evaluates the settings model for a build,
// establishing the project and included-build topology. Invoked once, during
// LoadSettings.
type SettingsLoader interface {
	FindAndLoadSettings(build *domain.Build) (*domain.Settings, error)
}

// BuildLoader attaches the project model described by the settings to the
// build. Invoked once, during Configure.
type BuildLoader interface {
	Load(settings *domain.Settings, build *domain.Build) error
}

// BuildConfigurer evaluates the build logic, materializing the task
// container. Invoked once, during Configure.
type BuildConfigurer interface {
	Configure(build *domain.Build) error
}

// BuildListener observes build lifecycle events. Each callback fires exactly
// once per build: BuildStarted at the very first phase advance,
// ProjectsEvaluated at the end of Configure (eager mode) or TaskGraph (lazy
// mode), BuildFinished during completion. Errors returned from
// ProjectsEvaluated fail the running phase; errors from BuildFinished are
// collected into the completion failure list, never propagated directly.
type BuildListener interface {
	BuildStarted(build *domain.Build)
	ProjectsEvaluated(build *domain.Build) error
	BuildFinished(result domain.BuildResult) error
}

// FailureClassifier transforms a raised failure into its stable, user-facing
// reportable form. A nil input stays nil. Aggregate failures are classified
// as a whole; the classifier may collapse a single-cause aggregate into its
// cause.
type FailureClassifier interface {
	Transform(err error) error
}
