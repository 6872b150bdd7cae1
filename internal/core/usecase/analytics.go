package usecase

import (
	"math"
	"sort"
	"strings"

	"github.com/kirillkom/docstruct/internal/core/domain"
)

// Analyze computes the derived summary statistics for a structured record.
// topEntities and topWords cap the frequency tables; ranking is by
// descending count with ties broken by first-encountered order.
func Analyze(record *domain.StructuredRecord, tokens []domain.Token, topEntities, topWords int) domain.Analytics {
	analytics := domain.Analytics{
		WordCount:     record.WordCount,
		SentenceCount: record.SentenceCount,
		EntityCount:   len(record.Entities),
		KeywordCount:  len(record.Keywords),
	}
	if record.SentenceCount > 0 {
		analytics.AverageSentenceLength = round2(float64(record.WordCount) / float64(record.SentenceCount))
	}

	labels := make([]string, 0, len(record.Entities))
	for _, entity := range record.Entities {
		labels = append(labels, entity.Label)
	}
	analytics.MostCommonEntities = make([]domain.LabelCount, 0, topEntities)
	for _, entry := range rankByCount(labels, topEntities) {
		analytics.MostCommonEntities = append(analytics.MostCommonEntities, domain.LabelCount{
			Label: entry.term,
			Count: entry.count,
		})
	}

	words := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !token.IsAlpha || token.IsStop {
			continue
		}
		words = append(words, strings.ToLower(token.Text))
	}
	analytics.MostCommonWords = make([]domain.WordFrequency, 0, topWords)
	for _, entry := range rankByCount(words, topWords) {
		analytics.MostCommonWords = append(analytics.MostCommonWords, domain.WordFrequency{
			Word:  entry.term,
			Count: entry.count,
		})
	}

	return analytics
}

type frequencyEntry struct {
	term  string
	count int
}

func rankByCount(terms []string, limit int) []frequencyEntry {
	counts := make(map[string]int, len(terms))
	var order []string
	for _, term := range terms {
		if counts[term] == 0 {
			order = append(order, term)
		}
		counts[term]++
	}

	entries := make([]frequencyEntry, 0, len(order))
	for _, term := range order {
		entries = append(entries, frequencyEntry{term: term, count: counts[term]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})

	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
