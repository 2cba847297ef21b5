// Package progrock records compilations as vertices on a progrock tape.
package progrock

import (
	"context"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/srccache/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on top of a progrock writer. Vertex
// digests are derived from the vertex name, so repeated compilations of the
// same source key land on the same vertex.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	recorded atomic.Int64
	cached   atomic.Int64
}

// New creates a Recorder backed by an in-memory tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record opens a vertex named after the compilation.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	r.recorded.Add(1)
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &compileVertex{rec: r, vertex: v}
}

// Recorded returns how many vertices were opened and how many of them were
// marked as cache hits.
func (r *Recorder) Recorded() (total, cached int64) {
	return r.recorded.Load(), r.cached.Load()
}

// Close closes the underlying writer when it supports it.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
