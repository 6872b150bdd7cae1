package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/kirillkom/docstruct/internal/core/domain"
)

func sampleDoc() *domain.Output {
	entities := []any{
		domain.NewOutput().Set("text", "Jane &amp; Co").Set("label", "ORG"),
		domain.NewOutput().Set("text", "Müller").Set("label", "PERSON"),
	}
	doc := domain.NewOutput()
	doc.Set("entities", entities)
	doc.Set("sentences", []any{"Jane &amp; Co hired Müller."})
	doc.Set("keywords", []any{"jane", "müller"})
	doc.Set("word_count", 5)
	doc.Set("sentence_count", 1)
	doc.Set("average_sentence_length", 2.33)
	return doc
}

func TestJSONIndentationAndOrder(t *testing.T) {
	out, err := JSON(sampleDoc())
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if !strings.HasPrefix(out, "{\n  \"entities\": [") {
		t.Fatalf("expected 2-space indentation with entities first, got:\n%s", out)
	}
	idxWord := strings.Index(out, `"word_count"`)
	idxSent := strings.Index(out, `"sentence_count"`)
	if idxWord < 0 || idxSent < 0 || idxWord > idxSent {
		t.Fatalf("keys out of insertion order:\n%s", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Fatalf("output should not carry a trailing newline")
	}
}

func TestJSONPreservesSanitizedAndUnicodeText(t *testing.T) {
	out, err := JSON(sampleDoc())
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if !strings.Contains(out, "Jane &amp; Co") {
		t.Fatalf("sanitized ampersand was re-escaped:\n%s", out)
	}
	if !strings.Contains(out, "Müller") {
		t.Fatalf("non-ASCII text was escaped:\n%s", out)
	}
}

func TestJSONRoundTripIsIdempotent(t *testing.T) {
	first, err := JSON(sampleDoc())
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	reparsed := domain.NewOutput()
	if err := json.Unmarshal([]byte(first), reparsed); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	second, err := JSON(reparsed)
	if err != nil {
		t.Fatalf("JSON() reparse error = %v", err)
	}
	if first != second {
		t.Fatalf("round trip changed output:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestCompactJSON(t *testing.T) {
	doc := domain.NewOutput().Set("name", domain.NewOutput().Set("0", "Jane"))
	out, err := CompactJSON(doc)
	if err != nil {
		t.Fatalf("CompactJSON() error = %v", err)
	}
	if out != `{"name":{"0":"Jane"}}` {
		t.Fatalf("unexpected compact output %q", out)
	}
}
