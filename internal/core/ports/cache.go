// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/srccache/internal/core/domain"

// CompilationCache is the side of the compilation cache used by the compiler pipeline.
//
// A miss is reported as ok == false and is never an error.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type CompilationCache interface {
	// Lookup finds the template stored under key.
	Lookup(key domain.SourceKey) (*domain.FunctionTemplate, bool)

	// Associate stores tmpl under key, overwriting any previous mapping.
	Associate(key domain.SourceKey, tmpl *domain.FunctionTemplate)
}
