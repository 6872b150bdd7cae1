// Package structurer provides the two structuring strategies: the full mode
// backed by the language capability and the regex fallback used when the
// capability is unavailable. The strategy is selected once at startup.
package structurer

import (
	"strings"
	"unicode"
)

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// sanitize strips non-printable characters and escapes &, <, > so fragments
// are safe to embed in XML output.
func sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	return escaper.Replace(b.String())
}
