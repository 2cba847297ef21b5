package compcache

import (
	"go.trai.ch/srccache/internal/core/domain"
	"go.trai.ch/srccache/internal/core/ports"
	"go.trai.ch/zerr"
)

type entry struct {
	key   domain.SourceKey
	value *domain.FunctionTemplate
}

// EntryTable maps source keys of a single entry kind to function templates.
// Keys are bucketed by SourceKey.Hash and compared with SourceKey.Equal, so a
// hash collision never conflates two keys.
type EntryTable struct {
	kind    domain.EntryKind
	buckets map[uint64][]*entry
	size    int
}

func newEntryTable(kind domain.EntryKind) *EntryTable {
	return &EntryTable{
		kind:    kind,
		buckets: make(map[uint64][]*entry),
	}
}

// Kind returns the entry kind stored in the table.
func (t *EntryTable) Kind() domain.EntryKind {
	return t.kind
}

// Len returns the number of entries.
func (t *EntryTable) Len() int {
	return t.size
}

// Lookup returns the template stored under an equal key.
func (t *EntryTable) Lookup(key domain.SourceKey) (*domain.FunctionTemplate, bool) {
	for _, e := range t.buckets[key.Hash()] {
		if e.key.Equal(key) {
			return e.value, true
		}
	}
	return nil, false
}

// Insert stores value under key, replacing the value of an equal key in place.
func (t *EntryTable) Insert(key domain.SourceKey, value *domain.FunctionTemplate) {
	if key.Kind() != t.kind {
		panic(zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidEntryKind, "key inserted into wrong table"), "table", t.kind.String()), "key", key.Kind().String()))
	}

	h := key.Hash()
	for _, e := range t.buckets[h] {
		if e.key.Equal(key) {
			e.value = value
			return
		}
	}
	t.buckets[h] = append(t.buckets[h], &entry{key: key, value: value})
	t.size++
}

// Clear drops every entry and the references they hold.
func (t *EntryTable) Clear() {
	clear(t.buckets)
	t.size = 0
}

// VisitAll presents every entry to v once and stores back the reference v returns.
func (t *EntryTable) VisitAll(v ports.RootVisitor) {
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			e.value = v.VisitRoot(e.key, e.value)
		}
	}
}
