// Package telemetry provides telemetry implementations that do not depend
// on a live recording session.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new no-op telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns ctx unchanged and a vertex that discards everything.
func (t *NoOp) Record(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
	return ctx, NoOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stdout returns a writer that discards all input.
func (NoOpVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns a writer that discards all input.
func (NoOpVertex) Stderr() io.Writer { return io.Discard }

// Log does nothing.
func (NoOpVertex) Log(_ domain.LogLevel, _ string) {}

// Complete does nothing.
func (NoOpVertex) Complete(_ error) {}

// Cached does nothing.
func (NoOpVertex) Cached() {}
