package usecase

import (
	"reflect"
	"testing"

	"github.com/kirillkom/docstruct/internal/core/domain"
)

func TestAnalyzeAverageSentenceLength(t *testing.T) {
	cases := []struct {
		words, sentences int
		want             float64
	}{
		{0, 0, 0},
		{10, 0, 0},
		{7, 3, 2.33},
		{6, 3, 2},
		{1, 3, 0.33},
	}
	for _, tc := range cases {
		record := &domain.StructuredRecord{WordCount: tc.words, SentenceCount: tc.sentences}
		got := Analyze(record, nil, 5, 10).AverageSentenceLength
		if got != tc.want {
			t.Fatalf("Analyze(%d/%d).AverageSentenceLength = %v, want %v", tc.words, tc.sentences, got, tc.want)
		}
	}
}

func TestAnalyzeEntityFrequency(t *testing.T) {
	record := &domain.StructuredRecord{
		Entities: []domain.Entity{
			{Text: "Paris", Label: "GPE"},
			{Text: "Acme", Label: "ORG"},
			{Text: "Berlin", Label: "GPE"},
			{Text: "Jane", Label: "PERSON"},
			{Text: "Ivan", Label: "PERSON"},
		},
	}

	got := Analyze(record, nil, 5, 10)
	if got.EntityCount != 5 {
		t.Fatalf("expected entity count 5, got %d", got.EntityCount)
	}
	want := []domain.LabelCount{
		{Label: "GPE", Count: 2},
		{Label: "PERSON", Count: 2},
		{Label: "ORG", Count: 1},
	}
	if !reflect.DeepEqual(got.MostCommonEntities, want) {
		t.Fatalf("expected entity frequency %v, got %v", want, got.MostCommonEntities)
	}
}

func TestAnalyzeEntityFrequencyCap(t *testing.T) {
	var entities []domain.Entity
	for _, label := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		entities = append(entities, domain.Entity{Text: label, Label: label})
	}
	got := Analyze(&domain.StructuredRecord{Entities: entities}, nil, 5, 10)
	if len(got.MostCommonEntities) != 5 {
		t.Fatalf("expected entity table capped at 5, got %d", len(got.MostCommonEntities))
	}
}

func TestAnalyzeWordFrequencyFiltersTokens(t *testing.T) {
	tokens := []domain.Token{
		{Text: "The", IsStop: true, IsAlpha: true},
		{Text: "Cat", IsAlpha: true},
		{Text: "cat", IsAlpha: true},
		{Text: "42"},
		{Text: "sat", IsAlpha: true},
		{Text: ",", IsAlpha: false},
	}
	got := Analyze(&domain.StructuredRecord{}, tokens, 5, 10)
	want := []domain.WordFrequency{
		{Word: "cat", Count: 2},
		{Word: "sat", Count: 1},
	}
	if !reflect.DeepEqual(got.MostCommonWords, want) {
		t.Fatalf("expected word frequency %v, got %v", want, got.MostCommonWords)
	}
}

func TestAnalyzeTieBrokenByFirstEncounter(t *testing.T) {
	tokens := []domain.Token{
		{Text: "beta", IsAlpha: true},
		{Text: "alpha", IsAlpha: true},
		{Text: "beta", IsAlpha: true},
		{Text: "alpha", IsAlpha: true},
	}
	got := Analyze(&domain.StructuredRecord{}, tokens, 5, 10)
	if got.MostCommonWords[0].Word != "beta" {
		t.Fatalf("expected first-encountered term to win ties, got %v", got.MostCommonWords)
	}
}

func TestAnalyzeEmptyTablesAreEmptySlices(t *testing.T) {
	got := Analyze(&domain.StructuredRecord{}, nil, 5, 10)
	if got.MostCommonEntities == nil || len(got.MostCommonEntities) != 0 {
		t.Fatalf("expected empty entity table, got %v", got.MostCommonEntities)
	}
	if got.MostCommonWords == nil || len(got.MostCommonWords) != 0 {
		t.Fatalf("expected empty word table, got %v", got.MostCommonWords)
	}
}
