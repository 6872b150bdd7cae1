package structurer

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/kirillkom/docstruct/internal/core/domain"
)

func TestFallbackStructure(t *testing.T) {
	s := NewFallback()
	record, err := s.Structure(context.Background(), "Hello world. How are you? Fine!")
	if err != nil {
		t.Fatalf("Structure() error = %v", err)
	}
	if record.SentenceCount != 3 {
		t.Fatalf("expected 3 sentences, got %d", record.SentenceCount)
	}
	if record.WordCount != 6 {
		t.Fatalf("expected 6 words, got %d", record.WordCount)
	}
	if len(record.Entities) != 0 || len(record.Keywords) != 0 {
		t.Fatalf("expected no entities or keywords, got %+v", record)
	}
	want := []string{"Hello world", " How are you", " Fine"}
	if !reflect.DeepEqual(record.Sentences, want) {
		t.Fatalf("expected sentences %q, got %q", want, record.Sentences)
	}
}

func TestFallbackStructureDiscardsEmptyFragments(t *testing.T) {
	s := NewFallback()
	record, err := s.Structure(context.Background(), "...  !?  One sentence.")
	if err != nil {
		t.Fatalf("Structure() error = %v", err)
	}
	if record.SentenceCount != 1 {
		t.Fatalf("expected 1 sentence, got %d", record.SentenceCount)
	}
}

func TestFallbackTokens(t *testing.T) {
	s := NewFallback()
	tokens, err := s.Tokens(context.Background(), "Go 1.25 beats go1, right?")
	if err != nil {
		t.Fatalf("Tokens() error = %v", err)
	}
	var words []string
	for _, tok := range tokens {
		if !tok.IsAlpha || tok.IsStop {
			t.Fatalf("fallback tokens must be alpha and non-stop, got %+v", tok)
		}
		words = append(words, tok.Text)
	}
	want := []string{"Go", "1", "25", "beats", "go1", "right"}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("expected tokens %q, got %q", want, words)
	}
}

func TestSanitize(t *testing.T) {
	got := sanitize("a\tb\nc & <d> é")
	if got != "abc &amp; &lt;d&gt; é" {
		t.Fatalf("unexpected sanitized text: %q", got)
	}
}

type languageFake struct {
	analysis *domain.LanguageAnalysis
	err      error
	calls    int
}

func (f *languageFake) Analyze(context.Context, string) (*domain.LanguageAnalysis, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.analysis, nil
}

func (f *languageFake) Healthy(context.Context) error { return f.err }

func TestLanguageStructure(t *testing.T) {
	fake := &languageFake{analysis: &domain.LanguageAnalysis{
		Sentences: []string{"Jane <admires> Acme & Co."},
		Entities: []domain.Entity{
			{Text: "Jane", Label: "PERSON"},
			{Text: "Acme & Co", Label: "ORG"},
		},
		NounChunkLemmas: []string{"jane", "company", "jane"},
		Tokens: []domain.Token{
			{Text: "Jane", IsAlpha: true},
			{Text: "admires", IsAlpha: true},
			{Text: "Acme", IsAlpha: true},
			{Text: "&"},
			{Text: "Co", IsAlpha: true},
			{Text: "."},
		},
	}}

	s := NewLanguage(fake)
	record, err := s.Structure(context.Background(), "whatever")
	if err != nil {
		t.Fatalf("Structure() error = %v", err)
	}

	if record.WordCount != 6 {
		t.Fatalf("expected word count from capability tokenization (6), got %d", record.WordCount)
	}
	if record.SentenceCount != 1 {
		t.Fatalf("expected 1 sentence, got %d", record.SentenceCount)
	}
	if record.Sentences[0] != "Jane &lt;admires&gt; Acme &amp; Co." {
		t.Fatalf("expected sanitized sentence, got %q", record.Sentences[0])
	}
	if record.Entities[1].Text != "Acme &amp; Co" {
		t.Fatalf("expected sanitized entity text, got %q", record.Entities[1].Text)
	}
	want := []string{"jane", "company"}
	if !reflect.DeepEqual(record.Keywords, want) {
		t.Fatalf("expected deduplicated keywords %q, got %q", want, record.Keywords)
	}
}

func TestLanguageStructureWrapsCapabilityError(t *testing.T) {
	fake := &languageFake{err: errors.New("model crashed")}
	s := NewLanguage(fake)
	_, err := s.Structure(context.Background(), "text")
	if !domain.IsKind(err, domain.ErrStructuring) {
		t.Fatalf("expected structuring error, got %v", err)
	}
}
