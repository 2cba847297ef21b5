package fs

import (
	"context"
	"os"
	"runtime"

	"go.trai.ch/srccache/internal/core/domain"
	"go.trai.ch/srccache/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.SourceReader = (*Reader)(nil)

// Reader reads script sources concurrently.
type Reader struct {
	walker *Walker
	limit  int
}

// NewReader creates a Reader that reads at most runtime.NumCPU files at once.
func NewReader(walker *Walker) *Reader {
	return &Reader{walker: walker, limit: runtime.NumCPU()}
}

// ReadSources reads every path and returns the files in input order.
// A directory is replaced by the script files below it. Every file records
// the index of the path it was read for.
func (r *Reader) ReadSources(ctx context.Context, paths []string) ([]domain.SourceFile, error) {
	expanded, err := r.expand(paths)
	if err != nil {
		return nil, err
	}

	files := make([]domain.SourceFile, len(expanded))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)

	for i, src := range expanded {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return zerr.Wrap(err, "reading cancelled")
			}

			data, err := os.ReadFile(src.path) //nolint:gosec // Paths come from the workload config
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to read source"), "path", src.path)
			}

			// Each goroutine writes only its own slot.
			files[i] = domain.SourceFile{Path: src.path, Text: string(data), Input: src.input}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

type expandedPath struct {
	path  string
	input int
}

func (r *Reader) expand(paths []string) ([]expandedPath, error) {
	out := make([]expandedPath, 0, len(paths))
	for i, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to stat source"), "path", path)
		}
		if !info.IsDir() {
			out = append(out, expandedPath{path: path, input: i})
			continue
		}
		for script := range r.walker.WalkScripts(path) {
			out = append(out, expandedPath{path: script, input: i})
		}
	}
	return out, nil
}
