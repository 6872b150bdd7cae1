// Package extractor turns raw file bytes of a validated MIME type into plain
// text. Each supported type has a narrow bytes-to-text contract; parser
// failures surface as extraction errors wrapping the cause.
package extractor

import (
	"context"
	"fmt"

	"github.com/kirillkom/docstruct/internal/core/domain"
	"github.com/kirillkom/docstruct/internal/filetype"
)

type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(_ context.Context, mimeType string, content []byte) (string, error) {
	switch mimeType {
	case filetype.MimePDF:
		return extractPDF(content)
	case filetype.MimeDOC, filetype.MimeDOCX:
		return extractWord(content)
	case filetype.MimeTXT:
		return extractPlainText(content)
	case filetype.MimeXLS, filetype.MimeXLSX:
		return extractSpreadsheet(content)
	default:
		return "", domain.WrapError(domain.ErrUnsupportedType, "extract text",
			fmt.Errorf("unsupported file type: %s", mimeType))
	}
}
