// Package filetype maps filenames to canonical MIME types and enforces the
// supported-type allow-list. Classification is extension-based only; misnamed
// files are misclassified or rejected.
package filetype

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kirillkom/docstruct/internal/core/domain"
)

const (
	MimePDF  = "application/pdf"
	MimeDOC  = "application/msword"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeTXT  = "text/plain"
	MimeXLS  = "application/vnd.ms-excel"
	MimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// byExtension is a fixed table rather than mime.TypeByExtension so that
// classification does not depend on the host's mime database.
var byExtension = map[string]string{
	".pdf":  MimePDF,
	".doc":  MimeDOC,
	".docx": MimeDOCX,
	".txt":  MimeTXT,
	".xls":  MimeXLS,
	".xlsx": MimeXLSX,
}

// known covers extensions the table understands plus common ones we can name
// in errors without consulting the OS.
var known = map[string]string{
	".csv":  "text/csv",
	".html": "text/html",
	".htm":  "text/html",
	".json": "application/json",
	".xml":  "application/xml",
	".md":   "text/markdown",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".zip":  "application/zip",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
}

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns the canonical MIME type for the filename's extension, or
// an unsupported-type error naming the offending type.
func (v *Validator) Validate(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	if mimeType, ok := byExtension[ext]; ok {
		return mimeType, nil
	}
	if mimeType, ok := known[ext]; ok {
		return "", domain.WrapError(domain.ErrUnsupportedType, "validate document",
			fmt.Errorf("unsupported file type: %s", mimeType))
	}
	return "", domain.WrapError(domain.ErrUnsupportedType, "validate document",
		fmt.Errorf("unsupported file type: undetectable extension %q", ext))
}
