package extractor

import (
	"fmt"
	"unicode/utf8"

	"github.com/kirillkom/docstruct/internal/core/domain"
)

// extractPlainText decodes raw bytes as UTF-8 verbatim.
func extractPlainText(content []byte) (string, error) {
	if !utf8.Valid(content) {
		return "", domain.WrapError(domain.ErrExtraction, "extract plain text",
			fmt.Errorf("content is not valid UTF-8"))
	}
	return string(content), nil
}
