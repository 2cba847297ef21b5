package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/srccache/internal/core/domain"
	"go.trai.ch/srccache/internal/core/ports"
)

var _ ports.Vertex = (*compileVertex)(nil)

type compileVertex struct {
	rec    *Recorder
	vertex *progrock.VertexRecorder
}

func (v *compileVertex) Stdout() io.Writer { return v.vertex.Stdout() }

func (v *compileVertex) Stderr() io.Writer { return v.vertex.Stderr() }

// Log writes msg to stdout, or to stderr for warnings and errors.
func (v *compileVertex) Log(level domain.LogLevel, msg string) {
	w := v.vertex.Stdout()
	if level >= domain.LogLevelWarn {
		w = v.vertex.Stderr()
	}
	_, _ = fmt.Fprintf(w, "[%s] %s\n", level.String(), msg)
}

func (v *compileVertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as served from the compilation cache.
func (v *compileVertex) Cached() {
	v.rec.cached.Add(1)
	v.vertex.Cached()
}
