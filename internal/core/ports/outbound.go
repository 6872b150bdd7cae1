package ports

import (
	"context"

	"github.com/kirillkom/docstruct/internal/core/domain"
)

// TypeValidator maps a filename to a canonical MIME type and enforces the
// supported-type allow-list.
type TypeValidator interface {
	Validate(filename string) (string, error)
}

// TextExtractor turns raw file content of a validated MIME type into plain
// text.
type TextExtractor interface {
	Extract(ctx context.Context, mimeType string, content []byte) (string, error)
}

// Structurer derives a StructuredRecord from extracted text. Tokens exposes
// the tokenization used for word-frequency analytics, which differs between
// the two modes.
type Structurer interface {
	Mode() string
	Structure(ctx context.Context, text string) (*domain.StructuredRecord, error)
	Tokens(ctx context.Context, text string) ([]domain.Token, error)
}

// LanguageService is the external language capability consumed by the full
// structuring mode. Healthy reports whether the capability is usable; it is
// probed once at startup, not per request.
type LanguageService interface {
	Analyze(ctx context.Context, text string) (*domain.LanguageAnalysis, error)
	Healthy(ctx context.Context) error
}

// RecordStore persists processed results as immutable flat-file records.
type RecordStore interface {
	Save(ctx context.Context, filename, data string) (string, error)
	List(ctx context.Context) ([]domain.StoredRecord, error)
	Delete(ctx context.Context, id string) error
}
