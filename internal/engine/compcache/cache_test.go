package compcache_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/srccache/internal/core/domain"
	"go.trai.ch/srccache/internal/core/ports/mocks"
	"go.trai.ch/srccache/internal/engine/compcache"
	"go.uber.org/mock/gomock"
)

func evalKey(t *testing.T, source string, kind domain.EntryKind) domain.SourceKey {
	t.Helper()
	key, err := domain.NewEvalKey(source, kind)
	require.NoError(t, err)
	return key
}

func TestNew_StartsEmpty(t *testing.T) {
	c := compcache.New()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, uint64(1), c.Stats().Clears)
}

func TestCache_AssociateThenLookupScript(t *testing.T) {
	c := compcache.New()
	origin := domain.NewOrigin("a.js", 0, 0)
	t1 := &domain.FunctionTemplate{Address: 1}

	c.Associate(domain.NewScriptKey("x=1;", origin), t1)

	got, ok := c.LookupScript("x=1;", domain.NewOrigin("a.js", 0, 0))
	require.True(t, ok)
	assert.Same(t, t1, got)

	_, ok = c.LookupScript("x=1;", domain.NewOrigin("b.js", 0, 0))
	assert.False(t, ok)
}

func TestCache_LookupScript_OriginMismatchMisses(t *testing.T) {
	c := compcache.New()
	c.Associate(domain.NewScriptKey("x=1;", domain.NewOrigin("a.js", 2, 4)), &domain.FunctionTemplate{})

	tests := []struct {
		name   string
		origin domain.Origin
	}{
		{name: "name", origin: domain.NewOrigin("b.js", 2, 4)},
		{name: "line", origin: domain.NewOrigin("a.js", 3, 4)},
		{name: "column", origin: domain.NewOrigin("a.js", 2, 5)},
		{name: "no name", origin: domain.AnonymousOrigin(2, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := c.LookupScript("x=1;", tt.origin)
			assert.False(t, ok)
		})
	}
}

func TestCache_LookupUsesContentEquality(t *testing.T) {
	c := compcache.New()
	tmpl := &domain.FunctionTemplate{}
	c.Associate(domain.NewScriptKey("var a = 1;", domain.NewOrigin("a.js", 0, 0)), tmpl)

	source := strings.Join([]string{"var a", "= 1;"}, " ")
	got, ok := c.LookupScript(source, domain.NewOrigin("a.js", 0, 0))
	require.True(t, ok)
	assert.Same(t, tmpl, got)
}

func TestCache_LastWriteWins(t *testing.T) {
	c := compcache.New()
	key := evalKey(t, "x=1;", domain.KindEvalGlobal)
	t1 := &domain.FunctionTemplate{Address: 1}
	t2 := &domain.FunctionTemplate{Address: 2}

	c.Associate(key, t1)
	c.Associate(key, t2)

	got, ok := c.LookupEval("x=1;", domain.KindEvalGlobal)
	require.True(t, ok)
	assert.Same(t, t2, got)
	assert.Equal(t, 1, c.Len())
}

func TestCache_EvalKindsCoexist(t *testing.T) {
	c := compcache.New()
	t2 := &domain.FunctionTemplate{Address: 2}
	t3 := &domain.FunctionTemplate{Address: 3}

	c.Associate(evalKey(t, "x=1;", domain.KindEvalGlobal), t2)
	c.Associate(evalKey(t, "x=1;", domain.KindEvalContextual), t3)

	got, ok := c.LookupEval("x=1;", domain.KindEvalGlobal)
	require.True(t, ok)
	assert.Same(t, t2, got)

	got, ok = c.LookupEval("x=1;", domain.KindEvalContextual)
	require.True(t, ok)
	assert.Same(t, t3, got)
}

func TestCache_CrossKindIsolation(t *testing.T) {
	c := compcache.New()
	c.Associate(domain.NewScriptKey("x=1;", domain.Origin{}), &domain.FunctionTemplate{})

	_, ok := c.LookupEval("x=1;", domain.KindEvalGlobal)
	assert.False(t, ok)
	_, ok = c.LookupEval("x=1;", domain.KindEvalContextual)
	assert.False(t, ok)

	c2 := compcache.New()
	c2.Associate(evalKey(t, "x=1;", domain.KindEvalGlobal), &domain.FunctionTemplate{})

	_, ok = c2.LookupScript("x=1;", domain.Origin{})
	assert.False(t, ok)
}

func TestCache_LookupEvalWithScriptKindPanics(t *testing.T) {
	c := compcache.New()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, domain.ErrInvalidEvalKind))
	}()

	c.LookupEval("x=1;", domain.KindScript)
}

func TestCache_AssociateNilPanics(t *testing.T) {
	c := compcache.New()
	assert.Panics(t, func() {
		c.Associate(domain.NewScriptKey("x", domain.Origin{}), nil)
	})
}

func TestCache_ClearIsIdempotent(t *testing.T) {
	c := compcache.New()
	scriptOrigin := domain.NewOrigin("a.js", 0, 0)
	c.Associate(domain.NewScriptKey("a", scriptOrigin), &domain.FunctionTemplate{})
	c.Associate(evalKey(t, "b", domain.KindEvalGlobal), &domain.FunctionTemplate{})
	c.Associate(evalKey(t, "c", domain.KindEvalContextual), &domain.FunctionTemplate{})
	require.Equal(t, 3, c.Len())

	c.Clear()
	c.Clear()

	assert.True(t, c.IsEmpty())
	_, ok := c.LookupScript("a", scriptOrigin)
	assert.False(t, ok)
	_, ok = c.LookupEval("b", domain.KindEvalGlobal)
	assert.False(t, ok)
	_, ok = c.LookupEval("c", domain.KindEvalContextual)
	assert.False(t, ok)
}

func TestCache_Disabled(t *testing.T) {
	c := compcache.New(compcache.WithEnabled(false))
	key := domain.NewScriptKey("x", domain.Origin{})

	c.Associate(key, &domain.FunctionTemplate{})

	_, ok := c.Lookup(key)
	assert.False(t, ok)
	assert.True(t, c.IsEmpty())

	c.SetEnabled(true)
	c.Associate(key, &domain.FunctionTemplate{})
	_, ok = c.Lookup(key)
	assert.True(t, ok)
}

func TestCache_Stats(t *testing.T) {
	c := compcache.New()
	origin := domain.NewOrigin("a.js", 0, 0)

	_, _ = c.LookupScript("x", origin)
	c.Associate(domain.NewScriptKey("x", origin), &domain.FunctionTemplate{})
	_, _ = c.LookupScript("x", origin)
	_, _ = c.LookupEval("x", domain.KindEvalContextual)

	stats := c.Stats()
	assert.Equal(t, domain.TableStats{Hits: 1, Misses: 1, Entries: 1}, stats.Script)
	assert.Equal(t, domain.TableStats{Misses: 1}, stats.EvalContextual)
	assert.Equal(t, domain.TableStats{}, stats.EvalGlobal)
	assert.Equal(t, uint64(1), stats.Associations)
	assert.Equal(t, 1, stats.Entries())
}

func TestCache_IterateVisitsEveryTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	visitor := mocks.NewMockRootVisitor(ctrl)

	c := compcache.New()
	keys := []domain.SourceKey{
		domain.NewScriptKey("x", domain.NewOrigin("a.js", 0, 0)),
		evalKey(t, "x", domain.KindEvalGlobal),
		evalKey(t, "x", domain.KindEvalContextual),
	}
	for i, k := range keys {
		c.Associate(k, &domain.FunctionTemplate{Key: k, Address: uint64(i + 1)})
	}

	for _, k := range keys {
		visitor.EXPECT().VisitRoot(k, gomock.Any()).
			DoAndReturn(func(_ domain.SourceKey, tmpl *domain.FunctionTemplate) *domain.FunctionTemplate {
				return tmpl.Relocated(tmpl.Address + 100)
			}).
			Times(1)
	}

	c.Iterate(visitor)

	for i, k := range keys {
		got, ok := c.Lookup(k)
		require.True(t, ok)
		assert.Equal(t, uint64(i+101), got.Address)
	}
}
