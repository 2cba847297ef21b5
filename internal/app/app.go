// Package app implements the application layer for srccache.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/srccache/internal/core/domain"
	"go.trai.ch/srccache/internal/core/ports"
	"go.trai.ch/srccache/internal/engine/compcache"
	"go.trai.ch/srccache/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	reader       ports.SourceReader
	pipeline     *pipeline.Pipeline
	cache        *compcache.Cache
	collector    ports.Collector
	logger       ports.Logger
}

// RunOptions configures a workload run.
type RunOptions struct {
	// ConfigPath is a srccache.yaml file or a directory to search from.
	ConfigPath string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	reader ports.SourceReader,
	p *pipeline.Pipeline,
	cache *compcache.Cache,
	collector ports.Collector,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		reader:       reader,
		pipeline:     p,
		cache:        cache,
		collector:    collector,
		logger:       logger,
	}
}

// compileUnit is one script file bound to the origin it is compiled with.
type compileUnit struct {
	text   string
	origin domain.Origin
}

// Run loads the workload and compiles it for the configured number of
// iterations, running collections between iterations per the schedule.
func (a *App) Run(ctx context.Context, opts RunOptions) (domain.RunReport, error) {
	// 1. Load the configuration
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return domain.RunReport{}, zerr.Wrap(err, "failed to load configuration")
	}

	workload := cfg.Workload
	if len(workload.Scripts) == 0 && len(workload.Evals) == 0 {
		return domain.RunReport{}, domain.ErrNoSources
	}

	a.cache.SetEnabled(cfg.Cache.Enabled)

	// 2. Read the scripts
	units, err := a.readScripts(ctx, workload.Scripts)
	if err != nil {
		return domain.RunReport{}, err
	}

	// 3. Compile through the cache
	report := domain.RunReport{}
	for i := 1; i <= workload.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return report, zerr.With(zerr.Wrap(err, "run cancelled"), "iteration", i)
		}

		if err := a.runIteration(ctx, units, workload.Evals, &report); err != nil {
			return report, zerr.With(err, "iteration", i)
		}
		report.Iterations = i

		if kind, ok := scheduledCollection(cfg.GC, i); ok {
			collection, err := a.collector.Collect(ctx, kind)
			if err != nil {
				return report, zerr.With(zerr.Wrap(err, "collection failed"), "iteration", i)
			}
			report.Collections = append(report.Collections, collection)
		}
	}

	report.Stats = a.cache.Stats()
	a.logger.Info(fmt.Sprintf("%d iterations: %d compiled, %d cached, %d collections",
		report.Iterations, report.Compiled, report.Cached, len(report.Collections)))

	return report, nil
}

// Stats returns the current compilation cache counters.
func (a *App) Stats() domain.CacheStats {
	return a.cache.Stats()
}

func (a *App) runIteration(
	ctx context.Context,
	units []compileUnit,
	evals []domain.EvalSource,
	report *domain.RunReport,
) error {
	for _, unit := range units {
		result, err := a.pipeline.CompileScript(ctx, unit.text, unit.origin)
		if err != nil {
			return err
		}
		tally(report, result)
	}

	for _, eval := range evals {
		result, err := a.pipeline.CompileEval(ctx, eval.Source, eval.Kind)
		if err != nil {
			return err
		}
		tally(report, result)
	}
	return nil
}

func tally(report *domain.RunReport, result domain.CompileResult) {
	if result.Cached {
		report.Cached++
		return
	}
	report.Compiled++
}

func (a *App) readScripts(ctx context.Context, scripts []domain.ScriptSource) ([]compileUnit, error) {
	if len(scripts) == 0 {
		return nil, nil
	}

	paths := make([]string, len(scripts))
	for i, s := range scripts {
		paths[i] = s.Path
	}

	files, err := a.reader.ReadSources(ctx, paths)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read scripts")
	}
	return bindScripts(scripts, files), nil
}

// bindScripts pairs every file with the script entry it was read for. A file
// read for a directory entry is named after its own path and keeps the
// entry's offsets.
func bindScripts(scripts []domain.ScriptSource, files []domain.SourceFile) []compileUnit {
	units := make([]compileUnit, 0, len(files))
	for _, file := range files {
		if file.Input < 0 || file.Input >= len(scripts) {
			continue
		}
		script := scripts[file.Input]

		origin := script.Origin
		if file.Path != script.Path && origin.HasName() {
			origin = domain.NewOrigin(file.Path, origin.LineOffset, origin.ColumnOffset)
		}
		units = append(units, compileUnit{text: file.Text, origin: origin})
	}
	return units
}

// scheduledCollection returns the collection due after iteration i. A major
// collection wins when both are due.
func scheduledCollection(gc domain.GCSchedule, i int) (domain.CollectionKind, bool) {
	switch {
	case gc.MajorEvery > 0 && i%gc.MajorEvery == 0:
		return domain.CollectionMajor, true
	case gc.MinorEvery > 0 && i%gc.MinorEvery == 0:
		return domain.CollectionMinor, true
	default:
		return 0, false
	}
}
