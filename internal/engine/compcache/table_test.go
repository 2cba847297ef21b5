package compcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/srccache/internal/core/domain"
)

type relocatingVisitor struct {
	seen map[domain.SourceKey]int
	next uint64
}

func (v *relocatingVisitor) VisitRoot(key domain.SourceKey, tmpl *domain.FunctionTemplate) *domain.FunctionTemplate {
	v.seen[key]++
	v.next++
	return tmpl.Relocated(v.next)
}

func TestEntryTable_InsertLookup(t *testing.T) {
	table := newEntryTable(domain.KindScript)
	key := domain.NewScriptKey("x=1;", domain.NewOrigin("a.js", 0, 0))
	tmpl := &domain.FunctionTemplate{Key: key}

	_, ok := table.Lookup(key)
	assert.False(t, ok)

	table.Insert(key, tmpl)

	got, ok := table.Lookup(key)
	require.True(t, ok)
	assert.Same(t, tmpl, got)
	assert.Equal(t, 1, table.Len())
}

func TestEntryTable_InsertOverwrites(t *testing.T) {
	table := newEntryTable(domain.KindEvalGlobal)
	key, err := domain.NewEvalKey("x=1;", domain.KindEvalGlobal)
	require.NoError(t, err)

	first := &domain.FunctionTemplate{Key: key, Address: 1}
	second := &domain.FunctionTemplate{Key: key, Address: 2}
	table.Insert(key, first)
	table.Insert(key, second)

	got, ok := table.Lookup(key)
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, table.Len())
}

func TestEntryTable_CollidingHashesStayDistinct(t *testing.T) {
	table := newEntryTable(domain.KindScript)
	a := domain.NewScriptKey("a", domain.AnonymousOrigin(0, 0))
	b := domain.NewScriptKey("b", domain.AnonymousOrigin(0, 0))
	ta := &domain.FunctionTemplate{Key: a}
	tb := &domain.FunctionTemplate{Key: b}

	// Force both keys into one bucket.
	table.buckets[a.Hash()] = []*entry{{key: a, value: ta}, {key: b, value: tb}}
	table.size = 2

	got, ok := table.Lookup(a)
	require.True(t, ok)
	assert.Same(t, ta, got)

	_, ok = table.Lookup(b)
	assert.False(t, ok, "b hashes to another bucket and must not be found through a's bucket")

	table.Insert(a, tb)
	assert.Equal(t, 2, table.Len())
	got, _ = table.Lookup(a)
	assert.Same(t, tb, got)
}

func TestEntryTable_InsertWrongKindPanics(t *testing.T) {
	table := newEntryTable(domain.KindEvalContextual)
	key := domain.NewScriptKey("x", domain.Origin{})

	assert.Panics(t, func() {
		table.Insert(key, &domain.FunctionTemplate{Key: key})
	})
}

func TestEntryTable_Clear(t *testing.T) {
	table := newEntryTable(domain.KindScript)
	key := domain.NewScriptKey("x", domain.Origin{})
	table.Insert(key, &domain.FunctionTemplate{Key: key})

	table.Clear()
	table.Clear()

	assert.Equal(t, 0, table.Len())
	_, ok := table.Lookup(key)
	assert.False(t, ok)
}

func TestEntryTable_VisitAllStoresRelocatedReferences(t *testing.T) {
	table := newEntryTable(domain.KindScript)
	keys := []domain.SourceKey{
		domain.NewScriptKey("a", domain.NewOrigin("a.js", 0, 0)),
		domain.NewScriptKey("b", domain.NewOrigin("b.js", 0, 0)),
		domain.NewScriptKey("c", domain.NewOrigin("c.js", 3, 1)),
	}
	originals := make(map[domain.SourceKey]*domain.FunctionTemplate, len(keys))
	for _, k := range keys {
		tmpl := &domain.FunctionTemplate{Key: k}
		originals[k] = tmpl
		table.Insert(k, tmpl)
	}

	v := &relocatingVisitor{seen: make(map[domain.SourceKey]int)}
	table.VisitAll(v)

	require.Len(t, v.seen, len(keys))
	for _, k := range keys {
		assert.Equal(t, 1, v.seen[k], "each entry must be visited exactly once")

		got, ok := table.Lookup(k)
		require.True(t, ok)
		assert.NotSame(t, originals[k], got)
		assert.NotZero(t, got.Address)
	}
}
