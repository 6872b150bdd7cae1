package structurer

import (
	"context"

	"github.com/kirillkom/docstruct/internal/core/domain"
	"github.com/kirillkom/docstruct/internal/core/ports"
)

// Language is the full structuring mode. Sentence, entity and keyword
// inventories come from the external language capability; word and sentence
// counts use the capability's own tokenization and are not recomputed to
// match a naive whitespace split.
type Language struct {
	service ports.LanguageService
}

func NewLanguage(service ports.LanguageService) *Language {
	return &Language{service: service}
}

func (s *Language) Mode() string { return "language" }

func (s *Language) Structure(ctx context.Context, text string) (*domain.StructuredRecord, error) {
	analysis, err := s.service.Analyze(ctx, text)
	if err != nil {
		return nil, domain.WrapError(domain.ErrStructuring, "structure text", err)
	}

	record := &domain.StructuredRecord{
		Entities:      make([]domain.Entity, 0, len(analysis.Entities)),
		Sentences:     make([]string, 0, len(analysis.Sentences)),
		Keywords:      []string{},
		WordCount:     len(analysis.Tokens),
		SentenceCount: len(analysis.Sentences),
	}

	for _, entity := range analysis.Entities {
		record.Entities = append(record.Entities, domain.Entity{
			Text:  sanitize(entity.Text),
			Label: entity.Label,
		})
	}
	for _, sentence := range analysis.Sentences {
		record.Sentences = append(record.Sentences, sanitize(sentence))
	}

	// Keyword = sanitized noun-chunk head lemma, deduplicated by exact
	// equality in first-encounter order.
	seen := make(map[string]struct{}, len(analysis.NounChunkLemmas))
	for _, lemma := range analysis.NounChunkLemmas {
		keyword := sanitize(lemma)
		if _, ok := seen[keyword]; ok {
			continue
		}
		seen[keyword] = struct{}{}
		record.Keywords = append(record.Keywords, keyword)
	}

	return record, nil
}

func (s *Language) Tokens(ctx context.Context, text string) ([]domain.Token, error) {
	analysis, err := s.service.Analyze(ctx, text)
	if err != nil {
		return nil, domain.WrapError(domain.ErrStructuring, "tokenize text", err)
	}
	return analysis.Tokens, nil
}
