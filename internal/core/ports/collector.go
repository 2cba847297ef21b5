package ports

import (
	"context"

	"go.trai.ch/srccache/internal/core/domain"
)

//go:generate mockgen -source=collector.go -destination=mocks/mock_collector.go -package=mocks

// RootVisitor is handed every template reference a root holder keeps alive.
// VisitRoot returns the reference to store back in place of tmpl, which is a
// different pointer when the collector moved the object.
type RootVisitor interface {
	VisitRoot(key domain.SourceKey, tmpl *domain.FunctionTemplate) *domain.FunctionTemplate
}

// RootHolder holds references the collector must treat as roots.
type RootHolder interface {
	// Iterate presents each held reference to v exactly once.
	Iterate(v RootVisitor)
}

// CollectionObserver is notified before a collection cycle starts.
type CollectionObserver interface {
	BeforeCollection(kind domain.CollectionKind)
}

// Allocator places new templates on the heap.
type Allocator interface {
	Allocate(tmpl *domain.FunctionTemplate) *domain.FunctionTemplate
}

// Collector runs collection cycles.
type Collector interface {
	Allocator
	// Observe registers an observer for collection notifications.
	Observe(o CollectionObserver)
	// AddRoots registers a root holder.
	AddRoots(h RootHolder)
	// Collect runs one collection cycle of the given kind.
	Collect(ctx context.Context, kind domain.CollectionKind) (domain.CollectionReport, error)
}
