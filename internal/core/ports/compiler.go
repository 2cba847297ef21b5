package ports

import (
	"context"

	"go.trai.ch/srccache/internal/core/domain"
)

// Compiler turns source text into a function template.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile compiles the source held by key. The key's kind and origin
	// decide how the source is compiled.
	Compile(ctx context.Context, key domain.SourceKey) (*domain.FunctionTemplate, error)
}
