// Package compcache implements the source-keyed compilation cache.
//
// The cache keeps function templates for compiled scripts and evals, looked
// up by source text. Scripts and the two eval kinds live in separate tables
// so a lookup can never return a template compiled as another kind. Script
// keys also carry their origin.
//
// Entries are retired wholesale: every major collection clears the cache.
// A template still in use is simply recompiled on its next lookup.
package compcache

import (
	"fmt"
	"sync"

	"go.trai.ch/srccache/internal/core/domain"
	"go.trai.ch/srccache/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.CompilationCache   = (*Cache)(nil)
	_ ports.RootHolder         = (*Cache)(nil)
	_ ports.CollectionObserver = (*Cache)(nil)
)

type tableCounters struct {
	hits   uint64
	misses uint64
}

// Cache is the compilation cache. It is safe for concurrent use; a single
// mutex guards all three tables.
type Cache struct {
	mu sync.Mutex

	script         *EntryTable
	evalGlobal     *EntryTable
	evalContextual *EntryTable

	enabled bool
	log     ports.Logger

	counters     [3]tableCounters
	associations uint64
	clears       uint64
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used to report retirements.
func WithLogger(log ports.Logger) Option {
	return func(c *Cache) {
		c.log = log
	}
}

// WithEnabled turns the cache on or off. A disabled cache misses every
// lookup and ignores Associate.
func WithEnabled(enabled bool) Option {
	return func(c *Cache) {
		c.enabled = enabled
	}
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		script:         newEntryTable(domain.KindScript),
		evalGlobal:     newEntryTable(domain.KindEvalGlobal),
		evalContextual: newEntryTable(domain.KindEvalContextual),
		enabled:        true,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Clear()
	return c
}

func (c *Cache) table(kind domain.EntryKind) *EntryTable {
	switch kind {
	case domain.KindScript:
		return c.script
	case domain.KindEvalGlobal:
		return c.evalGlobal
	case domain.KindEvalContextual:
		return c.evalContextual
	default:
		panic(zerr.With(zerr.Wrap(domain.ErrInvalidEntryKind, "no table for entry kind"), "kind", int(kind)))
	}
}

// LookupScript finds the template of a script compiled from source with
// exactly this origin. The same text cached under another origin misses.
func (c *Cache) LookupScript(source string, origin domain.Origin) (*domain.FunctionTemplate, bool) {
	return c.Lookup(domain.NewScriptKey(source, origin))
}

// LookupEval finds the template of eval source for the given eval kind.
// Passing domain.KindScript is a programming error and panics.
func (c *Cache) LookupEval(source string, kind domain.EntryKind) (*domain.FunctionTemplate, bool) {
	key, err := domain.NewEvalKey(source, kind)
	if err != nil {
		panic(err)
	}
	return c.Lookup(key)
}

// SetEnabled turns the cache on or off at runtime. Disabling does not drop
// existing entries; they become visible again once the cache is re-enabled
// unless a Clear happened in between.
func (c *Cache) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
}

// Lookup finds the template stored under key.
func (c *Cache) Lookup(key domain.SourceKey) (*domain.FunctionTemplate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.table(key.Kind())
	if !c.enabled {
		c.counters[key.Kind()].misses++
		return nil, false
	}

	tmpl, ok := t.Lookup(key)
	if ok {
		c.counters[key.Kind()].hits++
	} else {
		c.counters[key.Kind()].misses++
	}
	return tmpl, ok
}

// Associate stores tmpl under key, overwriting any previous mapping for an
// equal key. Associating a nil template panics.
func (c *Cache) Associate(key domain.SourceKey, tmpl *domain.FunctionTemplate) {
	if tmpl == nil {
		panic(zerr.With(zerr.Wrap(domain.ErrNilTemplate, "cannot associate"), "kind", key.Kind().String()))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.table(key.Kind())
	if !c.enabled {
		return
	}
	t.Insert(key, tmpl)
	c.associations++
}

// Clear drops every entry of every table. It also establishes the empty
// state at construction and is idempotent.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked()
}

func (c *Cache) clearLocked() int {
	dropped := c.script.Len() + c.evalGlobal.Len() + c.evalContextual.Len()
	c.script.Clear()
	c.evalGlobal.Clear()
	c.evalContextual.Clear()
	c.clears++
	return dropped
}

// Iterate presents every held reference to v, storing back what v returns.
// v runs with the cache locked and must not call back into the cache.
func (c *Cache) Iterate(v ports.RootVisitor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.script.VisitAll(v)
	c.evalGlobal.VisitAll(v)
	c.evalContextual.VisitAll(v)
}

// Len returns the number of entries across all tables.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.script.Len() + c.evalGlobal.Len() + c.evalContextual.Len()
}

// IsEmpty reports whether no table holds an entry.
func (c *Cache) IsEmpty() bool {
	return c.Len() == 0
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() domain.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	tableStats := func(t *EntryTable) domain.TableStats {
		n := c.counters[t.Kind()]
		return domain.TableStats{Hits: n.hits, Misses: n.misses, Entries: t.Len()}
	}

	return domain.CacheStats{
		Script:         tableStats(c.script),
		EvalGlobal:     tableStats(c.evalGlobal),
		EvalContextual: tableStats(c.evalContextual),
		Associations:   c.associations,
		Clears:         c.clears,
	}
}

func (c *Cache) logRetired(kind domain.CollectionKind, dropped int) {
	if c.log == nil || dropped == 0 {
		return
	}
	c.log.Info(fmt.Sprintf("compilation cache retired %d entries before %s collection", dropped, kind))
}
