// Package render serializes the canonical projected payload to JSON and XML.
package render

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/kirillkom/docstruct/internal/core/domain"
)

// JSON renders the payload as pretty-printed JSON with 2-space indentation.
// HTML escaping is off so sanitized fragments and non-ASCII characters are
// preserved verbatim.
func JSON(doc *domain.Output) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// CompactJSON renders the payload without indentation.
func CompactJSON(doc *domain.Output) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
