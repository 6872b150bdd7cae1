package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/kirillkom/docstruct/internal/core/domain"
)

// extractPDF concatenates per-page text in page order. There is no OCR:
// scanned or image-only pages contribute nothing.
func extractPDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", domain.WrapError(domain.ErrExtraction, "extract pdf",
			fmt.Errorf("open pdf: %w", err))
	}

	var text strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", domain.WrapError(domain.ErrExtraction, "extract pdf",
				fmt.Errorf("page %d: %w", pageNum, err))
		}
		text.WriteString(pageText)
	}
	return text.String(), nil
}
