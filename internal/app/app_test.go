package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/srccache/internal/adapters/compiler"
	"go.trai.ch/srccache/internal/adapters/heap"
	"go.trai.ch/srccache/internal/adapters/telemetry"
	"go.trai.ch/srccache/internal/app"
	"go.trai.ch/srccache/internal/core/domain"
	"go.trai.ch/srccache/internal/core/ports/mocks"
	"go.trai.ch/srccache/internal/engine/compcache"
	"go.trai.ch/srccache/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app    *app.App
	cache  *compcache.Cache
	loader *mocks.MockConfigLoader
	reader *mocks.MockSourceReader
	logger *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := heap.New(nil)
	cache := compcache.New()
	h.Observe(cache)
	h.AddRoots(cache)
	p := pipeline.New(cache, compiler.New(h), telemetry.NewNoop())

	f := &fixture{
		cache:  cache,
		loader: mocks.NewMockConfigLoader(ctrl),
		reader: mocks.NewMockSourceReader(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	f.app = app.New(f.loader, f.reader, p, cache, h, f.logger)
	return f
}

func TestApp_Run_CompilesThroughCache(t *testing.T) {
	f := newFixture(t)

	cfg := domain.DefaultConfig()
	cfg.Workload = domain.Workload{
		Iterations: 3,
		Scripts: []domain.ScriptSource{
			{Path: "/w/a.js", Origin: domain.NewOrigin("a.js", 0, 0)},
		},
		Evals: []domain.EvalSource{
			{Source: "a + b", Kind: domain.KindEvalGlobal},
			{Source: "a + b", Kind: domain.KindEvalContextual},
		},
	}

	f.loader.EXPECT().Load("srccache.yaml").Return(&cfg, nil)
	f.reader.EXPECT().ReadSources(gomock.Any(), []string{"/w/a.js"}).
		Return([]domain.SourceFile{{Path: "/w/a.js", Text: "var x = 1;"}}, nil)
	f.logger.EXPECT().Info("3 iterations: 3 compiled, 6 cached, 0 collections")

	report, err := f.app.Run(context.Background(), app.RunOptions{ConfigPath: "srccache.yaml"})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Iterations)
	assert.Equal(t, 3, report.Compiled)
	assert.Equal(t, 6, report.Cached)
	assert.Empty(t, report.Collections)
	assert.Equal(t, 3, report.Stats.Entries())
	assert.Equal(t, uint64(2), report.Stats.Script.Hits)
	assert.Equal(t, report.Stats, f.app.Stats())
}

func TestApp_Run_MajorCollectionForcesRecompile(t *testing.T) {
	f := newFixture(t)

	cfg := domain.DefaultConfig()
	cfg.Workload = domain.Workload{
		Iterations: 4,
		Evals:      []domain.EvalSource{{Source: "x", Kind: domain.KindEvalGlobal}},
	}
	cfg.GC = domain.GCSchedule{MinorEvery: 1, MajorEvery: 2}

	f.loader.EXPECT().Load("").Return(&cfg, nil)
	f.logger.EXPECT().Info(gomock.Any())

	report, err := f.app.Run(context.Background(), app.RunOptions{})
	require.NoError(t, err)

	// 1: miss, minor; 2: hit, major; 3: miss, minor; 4: hit, major.
	assert.Equal(t, 2, report.Compiled)
	assert.Equal(t, 2, report.Cached)
	require.Len(t, report.Collections, 4)
	kinds := make([]domain.CollectionKind, 0, len(report.Collections))
	for _, c := range report.Collections {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []domain.CollectionKind{
		domain.CollectionMinor, domain.CollectionMajor,
		domain.CollectionMinor, domain.CollectionMajor,
	}, kinds)
	assert.True(t, f.cache.IsEmpty())
}

func TestApp_Run_DisabledCacheAlwaysCompiles(t *testing.T) {
	f := newFixture(t)

	cfg := domain.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.Workload = domain.Workload{
		Iterations: 2,
		Evals:      []domain.EvalSource{{Source: "x", Kind: domain.KindEvalGlobal}},
	}

	f.loader.EXPECT().Load(gomock.Any()).Return(&cfg, nil)
	f.logger.EXPECT().Info(gomock.Any())

	report, err := f.app.Run(context.Background(), app.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Compiled)
	assert.Zero(t, report.Cached)
	assert.True(t, f.cache.IsEmpty())
}

func TestApp_Run_ExpandedDirectoryKeepsOffsets(t *testing.T) {
	f := newFixture(t)

	cfg := domain.DefaultConfig()
	cfg.Workload = domain.Workload{
		Iterations: 1,
		Scripts: []domain.ScriptSource{
			{Path: "/w/lib", Origin: domain.NewOrigin("/w/lib", 5, 1)},
			{Path: "/w/main.js", Origin: domain.AnonymousOrigin(0, 0)},
		},
	}

	f.loader.EXPECT().Load(gomock.Any()).Return(&cfg, nil)
	f.reader.EXPECT().ReadSources(gomock.Any(), []string{"/w/lib", "/w/main.js"}).
		Return([]domain.SourceFile{
			{Path: "/w/lib/a.js", Text: "a();", Input: 0},
			{Path: "/w/lib/b.js", Text: "b();", Input: 0},
			{Path: "/w/main.js", Text: "main();", Input: 1},
		}, nil)
	f.logger.EXPECT().Info(gomock.Any())

	_, err := f.app.Run(context.Background(), app.RunOptions{})
	require.NoError(t, err)

	_, ok := f.cache.LookupScript("a();", domain.NewOrigin("/w/lib/a.js", 5, 1))
	assert.True(t, ok)
	_, ok = f.cache.LookupScript("b();", domain.NewOrigin("/w/lib/b.js", 5, 1))
	assert.True(t, ok)
	_, ok = f.cache.LookupScript("main();", domain.AnonymousOrigin(0, 0))
	assert.True(t, ok)
}

func TestApp_Run_ExplicitFileAfterItsDirectoryKeepsOwnOrigin(t *testing.T) {
	f := newFixture(t)

	cfg := domain.DefaultConfig()
	cfg.Workload = domain.Workload{
		Iterations: 1,
		Scripts: []domain.ScriptSource{
			{Path: "/w/lib", Origin: domain.NewOrigin("/w/lib", 0, 0)},
			{Path: "/w/lib/a.js", Origin: domain.NewOrigin("entry.js", 7, 3)},
			{Path: "/w/lib", Origin: domain.AnonymousOrigin(2, 0)},
		},
	}

	f.loader.EXPECT().Load(gomock.Any()).Return(&cfg, nil)
	f.reader.EXPECT().ReadSources(gomock.Any(), []string{"/w/lib", "/w/lib/a.js", "/w/lib"}).
		Return([]domain.SourceFile{
			{Path: "/w/lib/a.js", Text: "a();", Input: 0},
			{Path: "/w/lib/a.js", Text: "a();", Input: 1},
			{Path: "/w/lib/a.js", Text: "a();", Input: 2},
		}, nil)
	f.logger.EXPECT().Info("1 iterations: 3 compiled, 0 cached, 0 collections")

	report, err := f.app.Run(context.Background(), app.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Compiled)

	_, ok := f.cache.LookupScript("a();", domain.NewOrigin("/w/lib/a.js", 0, 0))
	assert.True(t, ok)
	_, ok = f.cache.LookupScript("a();", domain.NewOrigin("entry.js", 7, 3))
	assert.True(t, ok)
	_, ok = f.cache.LookupScript("a();", domain.AnonymousOrigin(2, 0))
	assert.True(t, ok)
	assert.Equal(t, 3, f.cache.Len())
}

func TestApp_Run_CollectionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	collector := mocks.NewMockCollector(ctrl)

	h := heap.New(nil)
	cache := compcache.New()
	p := pipeline.New(cache, compiler.New(h), telemetry.NewNoop())
	a := app.New(loader, mocks.NewMockSourceReader(ctrl), p, cache, collector, mocks.NewMockLogger(ctrl))

	cfg := domain.DefaultConfig()
	cfg.Workload.Iterations = 3
	cfg.Workload.Evals = []domain.EvalSource{{Source: "x", Kind: domain.KindEvalGlobal}}
	cfg.GC.MajorEvery = 2
	collectErr := errors.New("heap exhausted")

	loader.EXPECT().Load(gomock.Any()).Return(&cfg, nil)
	collector.EXPECT().Collect(gomock.Any(), domain.CollectionMajor).
		Return(domain.CollectionReport{}, collectErr)

	report, err := a.Run(context.Background(), app.RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, collectErr)
	assert.Contains(t, err.Error(), "collection failed")
	assert.Equal(t, 2, report.Iterations)
}

func TestApp_Run_NoSources(t *testing.T) {
	f := newFixture(t)
	cfg := domain.DefaultConfig()

	f.loader.EXPECT().Load(gomock.Any()).Return(&cfg, nil)

	_, err := f.app.Run(context.Background(), app.RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoSources)
}

func TestApp_Run_LoadError(t *testing.T) {
	f := newFixture(t)
	loadErr := errors.New("boom")

	f.loader.EXPECT().Load(gomock.Any()).Return(nil, loadErr)

	_, err := f.app.Run(context.Background(), app.RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, loadErr)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Run_ReadError(t *testing.T) {
	f := newFixture(t)
	cfg := domain.DefaultConfig()
	cfg.Workload.Scripts = []domain.ScriptSource{{Path: "/w/a.js"}}
	readErr := errors.New("permission denied")

	f.loader.EXPECT().Load(gomock.Any()).Return(&cfg, nil)
	f.reader.EXPECT().ReadSources(gomock.Any(), gomock.Any()).Return(nil, readErr)

	_, err := f.app.Run(context.Background(), app.RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
}

func TestApp_Run_SyntaxErrorStopsRun(t *testing.T) {
	f := newFixture(t)
	cfg := domain.DefaultConfig()
	cfg.Workload.Iterations = 2
	cfg.Workload.Evals = []domain.EvalSource{{Source: "f(", Kind: domain.KindEvalGlobal}}

	f.loader.EXPECT().Load(gomock.Any()).Return(&cfg, nil)

	report, err := f.app.Run(context.Background(), app.RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSyntax)
	assert.Zero(t, report.Iterations)
	assert.True(t, f.cache.IsEmpty())
}

func TestApp_Run_Cancelled(t *testing.T) {
	f := newFixture(t)
	cfg := domain.DefaultConfig()
	cfg.Workload.Evals = []domain.EvalSource{{Source: "x", Kind: domain.KindEvalGlobal}}

	f.loader.EXPECT().Load(gomock.Any()).Return(&cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.app.Run(ctx, app.RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
