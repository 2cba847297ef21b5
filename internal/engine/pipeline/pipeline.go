// Package pipeline implements the compile-through-cache flow.
//
// Every compilation builds one source key, looks it up, and on a miss
// compiles and associates under that same key. Using a single key for both
// steps guarantees an entry is never stored where its lookup cannot find it.
package pipeline

import (
	"context"
	"fmt"

	"go.trai.ch/srccache/internal/core/domain"
	"go.trai.ch/srccache/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pipeline compiles sources, reusing cached templates where possible.
type Pipeline struct {
	cache     ports.CompilationCache
	compiler  ports.Compiler
	telemetry ports.Telemetry
}

// New creates a new Pipeline.
func New(cache ports.CompilationCache, compiler ports.Compiler, telemetry ports.Telemetry) *Pipeline {
	return &Pipeline{
		cache:     cache,
		compiler:  compiler,
		telemetry: telemetry,
	}
}

// CompileScript compiles a top-level script with the given origin.
func (p *Pipeline) CompileScript(ctx context.Context, source string, origin domain.Origin) (domain.CompileResult, error) {
	return p.compile(ctx, domain.NewScriptKey(source, origin))
}

// CompileEval compiles eval code. kind must be an eval kind.
func (p *Pipeline) CompileEval(ctx context.Context, source string, kind domain.EntryKind) (domain.CompileResult, error) {
	key, err := domain.NewEvalKey(source, kind)
	if err != nil {
		return domain.CompileResult{}, err
	}
	return p.compile(ctx, key)
}

func (p *Pipeline) compile(ctx context.Context, key domain.SourceKey) (domain.CompileResult, error) {
	ctx, vertex := p.telemetry.Record(ctx, vertexName(key))

	// 1. Check Cache (Read)
	if tmpl, ok := p.cache.Lookup(key); ok {
		vertex.Cached()
		vertex.Complete(nil)
		return domain.CompileResult{Template: tmpl, Cached: true}, nil
	}

	// 2. Compile (Cache Miss)
	tmpl, err := p.compiler.Compile(ctx, key)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "compilation failed"), "kind", key.Kind().String())
		vertex.Complete(err)
		return domain.CompileResult{}, err
	}

	// 3. Update Cache (Write)
	p.cache.Associate(key, tmpl)
	vertex.Log(domain.LogLevelDebug, fmt.Sprintf("compiled %d lines, digest %016x", tmpl.Lines, tmpl.Digest))
	vertex.Complete(nil)

	return domain.CompileResult{Template: tmpl}, nil
}

func vertexName(key domain.SourceKey) string {
	if key.Kind() == domain.KindScript {
		origin := key.Origin()
		name := "<anonymous>"
		if origin.HasName() {
			name = origin.Name.String()
		}
		return fmt.Sprintf("compile %s:%d:%d", name, origin.LineOffset, origin.ColumnOffset)
	}
	return fmt.Sprintf("compile %s %016x", key.Kind(), key.Hash())
}
