package domain

// Phase is one stage in the fixed build lifecycle order. A Build's current
// Phase only ever moves forward, with one exception: dynamic task scheduling
// may force it back to PhaseConfigure so that task selection re-runs.
type Phase int

const (
	// PhaseNone is the zero value: no phase has run yet.
	PhaseNone Phase = iota
	// PhaseLoadSettings covers init scripts and settings evaluation.
	PhaseLoadSettings
	// PhaseConfigure covers project model construction and build logic evaluation.
	PhaseConfigure
	// PhaseTaskGraph covers task selection and executable graph population.
	PhaseTaskGraph
	// PhaseRunTasks covers execution of the entry tasks and their dependencies.
	PhaseRunTasks
	// PhaseFinished is the absorbing terminal state.
	PhaseFinished
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNone:
		return "None"
	case PhaseLoadSettings:
		return "LoadSettings"
	case PhaseConfigure:
		return "Configure"
	case PhaseTaskGraph:
		return "TaskGraph"
	case PhaseRunTasks:
		return "RunTasks"
	case PhaseFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// DisplayName returns the human-readable label used in completion actions and
// telemetry. RunTasks is labelled "Build"; every other phase uses its name.
func (p Phase) DisplayName() string {
	if p == PhaseRunTasks {
		return "Build"
	}
	return p.String()
}
