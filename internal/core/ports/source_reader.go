package ports

import (
	"context"

	"go.trai.ch/srccache/internal/core/domain"
)

// SourceReader loads script sources.
//
//go:generate mockgen -source=source_reader.go -destination=mocks/mock_source_reader.go -package=mocks
type SourceReader interface {
	// ReadSources reads every path and returns the files in input order.
	ReadSources(ctx context.Context, paths []string) ([]domain.SourceFile, error)
}
