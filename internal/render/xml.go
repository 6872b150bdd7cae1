package render

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/kirillkom/docstruct/internal/core/domain"
)

const xmlIndent = "  "

// XML renders the payload as pretty-printed XML. Mapping keys become element
// tags, list values become parents of one <item> child per entry, scalars
// become text content. The root element is <document>. Output is
// deterministic: identical input yields byte-identical XML.
func XML(doc *domain.Output) (string, error) {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	if err := writeElement(&b, "document", doc, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeElement(b *strings.Builder, tag string, value any, depth int) error {
	indent := strings.Repeat(xmlIndent, depth)

	switch v := value.(type) {
	case *domain.Output:
		if v == nil || v.Len() == 0 {
			fmt.Fprintf(b, "%s<%s/>\n", indent, tag)
			return nil
		}
		fmt.Fprintf(b, "%s<%s>\n", indent, tag)
		for _, key := range v.Keys() {
			child, _ := v.Get(key)
			if err := writeElement(b, key, child, depth+1); err != nil {
				return err
			}
		}
		fmt.Fprintf(b, "%s</%s>\n", indent, tag)
	case []any:
		if len(v) == 0 {
			fmt.Fprintf(b, "%s<%s/>\n", indent, tag)
			return nil
		}
		fmt.Fprintf(b, "%s<%s>\n", indent, tag)
		for _, item := range v {
			if err := writeElement(b, "item", item, depth+1); err != nil {
				return err
			}
		}
		fmt.Fprintf(b, "%s</%s>\n", indent, tag)
	case nil:
		fmt.Fprintf(b, "%s<%s/>\n", indent, tag)
	default:
		text, err := formatScalar(v)
		if err != nil {
			return fmt.Errorf("element %q: %w", tag, err)
		}
		var escaped strings.Builder
		if err := xml.EscapeText(&escaped, []byte(text)); err != nil {
			return fmt.Errorf("element %q: %w", tag, err)
		}
		fmt.Fprintf(b, "%s<%s>%s</%s>\n", indent, tag, escaped.String(), tag)
	}
	return nil
}

func formatScalar(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case int:
		return strconv.Itoa(s), nil
	case int64:
		return strconv.FormatInt(s, 10), nil
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(s), nil
	default:
		return "", fmt.Errorf("unsupported scalar type %T", v)
	}
}
