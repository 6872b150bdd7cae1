package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/kirillkom/docstruct/internal/core/domain"
)

// extractWord reads word/document.xml from the OOXML archive and joins
// paragraph texts with single spaces in document order. Tables, headers and
// footers are not extracted. Legacy binary .doc files are not OOXML and fail
// here with an extraction error.
func extractWord(content []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", domain.WrapError(domain.ErrExtraction, "extract word document",
			fmt.Errorf("open archive: %w", err))
	}

	var docFile *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", domain.WrapError(domain.ErrExtraction, "extract word document",
			fmt.Errorf("word/document.xml not found in archive"))
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", domain.WrapError(domain.ErrExtraction, "extract word document",
			fmt.Errorf("open document.xml: %w", err))
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var paragraphs []string
	var current strings.Builder
	var inParagraph, inText bool
	var tableDepth int

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "p":
				// Paragraphs nested in tables are cell content,
				// not body text.
				if tableDepth == 0 {
					inParagraph = true
					current.Reset()
				}
			case "t":
				inText = inParagraph
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}
			case "t":
				inText = false
			case "p":
				if inParagraph {
					paragraphs = append(paragraphs, current.String())
				}
				inParagraph = false
			}
		}
	}

	return strings.Join(paragraphs, " "), nil
}
