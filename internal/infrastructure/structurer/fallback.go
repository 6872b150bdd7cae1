package structurer

import (
	"context"
	"regexp"
	"strings"

	"github.com/kirillkom/docstruct/internal/core/domain"
)

var (
	sentenceBoundary = regexp.MustCompile(`[.!?]+`)
	wordPattern      = regexp.MustCompile(`\w+`)
)

// Fallback structures text without the language capability: sentences split
// on runs of sentence terminators, word count from a whitespace split, no
// entities and no keywords.
type Fallback struct{}

func NewFallback() *Fallback {
	return &Fallback{}
}

func (s *Fallback) Mode() string { return "fallback" }

func (s *Fallback) Structure(_ context.Context, text string) (*domain.StructuredRecord, error) {
	var sentences []string
	for _, fragment := range sentenceBoundary.Split(text, -1) {
		if strings.TrimSpace(fragment) == "" {
			continue
		}
		sentences = append(sentences, sanitize(fragment))
	}

	return &domain.StructuredRecord{
		Entities:      []domain.Entity{},
		Sentences:     sentences,
		Keywords:      []string{},
		WordCount:     len(strings.Fields(text)),
		SentenceCount: len(sentences),
	}, nil
}

// Tokens yields \w+ matches with the alpha flag set and no stopword
// information, so fallback word frequency has no stopword filtering.
func (s *Fallback) Tokens(_ context.Context, text string) ([]domain.Token, error) {
	matches := wordPattern.FindAllString(text, -1)
	tokens := make([]domain.Token, 0, len(matches))
	for _, match := range matches {
		tokens = append(tokens, domain.Token{Text: match, IsAlpha: true})
	}
	return tokens, nil
}
