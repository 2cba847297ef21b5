// Package heap implements a simulated stop-the-world collector.
//
// Every cycle first notifies observers, then walks the registered root
// holders with an evacuating visitor that moves each template to a fresh
// address. Observers therefore always run before any object moves, and root
// holders see every reference they keep before it is relocated.
package heap

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/srccache/internal/core/domain"
	"go.trai.ch/srccache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Collector = (*Heap)(nil)

// wordSize is the distance between two consecutive allocations.
const wordSize = 8

// Heap hands out template addresses and runs collection cycles.
type Heap struct {
	mu        sync.Mutex
	log       ports.Logger
	observers []ports.CollectionObserver
	roots     []ports.RootHolder
	top       uint64
	epoch     uint64
}

// New creates an empty heap.
func New(log ports.Logger) *Heap {
	return &Heap{
		log: log,
		top: wordSize,
	}
}

// Allocate places tmpl at the next free address and returns it.
func (h *Heap) Allocate(tmpl *domain.FunctionTemplate) *domain.FunctionTemplate {
	h.mu.Lock()
	defer h.mu.Unlock()

	tmpl.Address = h.bump()
	return tmpl
}

func (h *Heap) bump() uint64 {
	addr := h.top
	h.top += wordSize
	return addr
}

// Observe registers o to be notified before every collection.
func (h *Heap) Observe(o ports.CollectionObserver) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.observers = append(h.observers, o)
}

// AddRoots registers a root holder walked during every collection.
func (h *Heap) AddRoots(r ports.RootHolder) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.roots = append(h.roots, r)
}

// Collect runs a collection cycle of the given kind.
func (h *Heap) Collect(ctx context.Context, kind domain.CollectionKind) (domain.CollectionReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.CollectionReport{}, zerr.With(zerr.Wrap(err, "collection cancelled"), "kind", kind.String())
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.epoch++
	report := domain.CollectionReport{Kind: kind, Epoch: h.epoch}

	for _, o := range h.observers {
		o.BeforeCollection(kind)
	}

	ev := &evacuator{heap: h, moved: make(map[uint64]*domain.FunctionTemplate)}
	for _, r := range h.roots {
		r.Iterate(ev)
	}
	report.RootsVisited = ev.visited
	report.Relocated = len(ev.moved)

	if h.log != nil {
		h.log.Info(fmt.Sprintf("%s collection #%d: %d roots, %d relocated",
			kind, report.Epoch, report.RootsVisited, report.Relocated))
	}
	return report, nil
}

// evacuator copies every reachable template to a new address. A template
// reachable through several roots is moved once and all roots receive the
// same copy.
type evacuator struct {
	heap    *Heap
	moved   map[uint64]*domain.FunctionTemplate
	visited int
}

func (e *evacuator) VisitRoot(_ domain.SourceKey, tmpl *domain.FunctionTemplate) *domain.FunctionTemplate {
	e.visited++
	if tmpl == nil {
		return nil
	}
	if forwarded, ok := e.moved[tmpl.Address]; ok {
		return forwarded
	}
	copied := tmpl.Relocated(e.heap.bump())
	e.moved[tmpl.Address] = copied
	return copied
}
