package usecase

import (
	"fmt"

	"github.com/kirillkom/docstruct/internal/core/domain"
)

// Named templates understood by Project.
const (
	TemplateDataOnly         = "data_only"
	TemplateAnalyticsOnly    = "analytics_only"
	TemplateSpecificEntities = "specific_entities"
)

// Project narrows a structured record to a named view. An empty or
// unrecognized template passes the full record through unchanged.
func Project(record *domain.StructuredRecord, template string) *domain.Output {
	switch template {
	case TemplateDataOnly:
		return domain.NewOutput().
			Set("entities", entityList(record.Entities)).
			Set("keywords", stringList(record.Keywords))
	case TemplateAnalyticsOnly:
		// Counts recomputed from the record, not taken from an
		// Analytics value.
		return domain.NewOutput().
			Set("word_count", record.WordCount).
			Set("sentence_count", record.SentenceCount).
			Set("entity_count", len(record.Entities)).
			Set("keyword_count", len(record.Keywords))
	case TemplateSpecificEntities:
		return domain.NewOutput().
			Set("persons", entityTexts(record.Entities, "PERSON")).
			Set("organizations", entityTexts(record.Entities, "ORG")).
			Set("locations", entityTexts(record.Entities, "GPE", "LOC"))
	default:
		return fullRecord(record)
	}
}

// ExtractFields projects the record to an explicit field list. Unrecognized
// keys are silently omitted; this is a deliberate permissive policy, not an
// error.
func ExtractFields(record *domain.StructuredRecord, fields []string) *domain.Output {
	out := domain.NewOutput()
	for _, field := range fields {
		switch field {
		case "persons":
			out.Set(field, entityTexts(record.Entities, "PERSON"))
		case "organizations":
			out.Set(field, entityTexts(record.Entities, "ORG"))
		case "locations":
			out.Set(field, entityTexts(record.Entities, "GPE", "LOC"))
		case "dates":
			out.Set(field, entityTexts(record.Entities, "DATE"))
		}
	}
	return out
}

// CompletenessWarnings emits one warning per top-level key whose value is
// null, zero, an empty list or an empty object. Informational only, never
// fatal.
func CompletenessWarnings(doc *domain.Output) []string {
	warnings := []string{}
	for _, key := range doc.Keys() {
		value, _ := doc.Get(key)
		if isEmptyValue(value) {
			warnings = append(warnings, fmt.Sprintf("Warning: %s has no value or is empty.", key))
		}
	}
	return warnings
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case int:
		return v == 0
	case float64:
		return v == 0
	case []any:
		return len(v) == 0
	case *domain.Output:
		return v == nil || v.Len() == 0
	default:
		return false
	}
}

func fullRecord(record *domain.StructuredRecord) *domain.Output {
	return domain.NewOutput().
		Set("entities", entityList(record.Entities)).
		Set("sentences", stringList(record.Sentences)).
		Set("keywords", stringList(record.Keywords)).
		Set("word_count", record.WordCount).
		Set("sentence_count", record.SentenceCount)
}

// AnalyticsOutput converts an Analytics value into the ordered form merged
// into projected payloads and rendered by both serializers.
func AnalyticsOutput(a domain.Analytics) *domain.Output {
	entities := make([]any, 0, len(a.MostCommonEntities))
	for _, entry := range a.MostCommonEntities {
		entities = append(entities, domain.NewOutput().
			Set("label", entry.Label).
			Set("count", entry.Count))
	}
	words := make([]any, 0, len(a.MostCommonWords))
	for _, entry := range a.MostCommonWords {
		words = append(words, domain.NewOutput().
			Set("word", entry.Word).
			Set("count", entry.Count))
	}
	return domain.NewOutput().
		Set("word_count", a.WordCount).
		Set("sentence_count", a.SentenceCount).
		Set("average_sentence_length", a.AverageSentenceLength).
		Set("entity_count", a.EntityCount).
		Set("keyword_count", a.KeywordCount).
		Set("most_common_entities", entities).
		Set("most_common_words", words)
}

func entityList(entities []domain.Entity) []any {
	out := make([]any, 0, len(entities))
	for _, entity := range entities {
		out = append(out, domain.NewOutput().
			Set("text", entity.Text).
			Set("label", entity.Label))
	}
	return out
}

func stringList(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

func entityTexts(entities []domain.Entity, labels ...string) []any {
	out := []any{}
	for _, entity := range entities {
		for _, label := range labels {
			if entity.Label == label {
				out = append(out, entity.Text)
				break
			}
		}
	}
	return out
}
