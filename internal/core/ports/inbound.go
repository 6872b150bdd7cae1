package ports

import (
	"context"

	"github.com/kirillkom/docstruct/internal/core/domain"
)

// ProcessOptions narrows the processed output. Template wins when both a
// template and a field list are given.
type ProcessOptions struct {
	Template string
	Fields   []string
}

// DocumentProcessor is the inbound contract for synchronous document
// processing. It returns either a complete ProcessingResult or an error,
// never a partial result.
type DocumentProcessor interface {
	Process(ctx context.Context, filename string, content []byte, opts ProcessOptions) (*domain.ProcessingResult, error)
}

// RecordArchive is the inbound contract for the stored-record lifecycle.
type RecordArchive interface {
	Save(ctx context.Context, result *domain.ProcessingResult, filename string) (string, error)
	List(ctx context.Context) ([]domain.StoredRecord, error)
	Delete(ctx context.Context, id string) error
}
