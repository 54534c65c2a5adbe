package domain

import (
	"fmt"
	"strings"
)

// AggregateFailure is an ordered collection of causes raised as a single
// consolidated error. It is the only error shape that carries more than one
// failure out of a build, and it is produced only by the completion protocol
// and the RunTasks phase.
type AggregateFailure struct {
	causes []error
}

// NewAggregateFailure creates an aggregate from the given causes. Order is
// preserved: root causes first, shutdown-time failures after.
func NewAggregateFailure(causes []error) *AggregateFailure {
	return &AggregateFailure{causes: causes}
}

// Causes returns the ordered causes. Callers must not mutate the slice.
func (a *AggregateFailure) Causes() []error { return a.causes }

// Error summarizes the causes.
func (a *AggregateFailure) Error() string {
	if len(a.causes) == 1 {
		return a.causes[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "build completed with %d failures:", len(a.causes))
	for i, cause := range a.causes {
		fmt.Fprintf(&sb, "\n  %d: %s", i+1, cause.Error())
	}
	return sb.String()
}

// Unwrap supports errors.Is/As over all causes.
func (a *AggregateFailure) Unwrap() []error { return a.causes }

// BuildResult describes the outcome of one completion attempt: the action
// that was being performed, the build it was performed on, and the classified
// failure, nil on success.
type BuildResult struct {
	Action  string
	Build   *Build
	Failure error
}
