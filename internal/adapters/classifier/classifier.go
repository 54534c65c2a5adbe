// Package classifier turns raw stage failures into the errors reported to
// listeners and to the caller.
package classifier

import (
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Classifier implements ports.FailureClassifier. It collapses single-cause
// aggregates and attaches build metadata to everything else.
type Classifier struct {
	buildPath string
}

// NewClassifier creates a classifier for the build identified by buildPath.
func NewClassifier(buildPath string) *Classifier {
	return &Classifier{buildPath: buildPath}
}

// Transform maps a raw failure to its reportable form. A nil input stays nil.
func (c *Classifier) Transform(err error) error {
	if err == nil {
		return nil
	}

	if agg, ok := err.(*domain.AggregateFailure); ok {
		causes := agg.Causes()
		if len(causes) == 1 {
			err = causes[0]
		}
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		return zerr.With(zerr.Wrap(err, "build failed"), "build_path", c.buildPath)
	}
	if _, tagged := zErr.Metadata()["build_path"]; tagged {
		return zErr
	}
	// Wrap before tagging so the original error stays in the unwrap chain.
	return zerr.With(zerr.Wrap(zErr, ""), "build_path", c.buildPath)
}
