package domain

// Entity is one named entity found in a document's text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Token is one token of the analyzed text with the flags needed for
// word-frequency filtering.
type Token struct {
	Text    string `json:"text"`
	IsStop  bool   `json:"is_stop"`
	IsAlpha bool   `json:"is_alpha"`
}

// StructuredRecord holds the linguistic structure derived from one document's
// extracted text. Entities, sentences and keywords all come from the same
// text snapshot; the counts are computed once during structuring and are
// never recomputed downstream.
type StructuredRecord struct {
	Entities      []Entity `json:"entities"`
	Sentences     []string `json:"sentences"`
	Keywords      []string `json:"keywords"`
	WordCount     int      `json:"word_count"`
	SentenceCount int      `json:"sentence_count"`
}

// LabelCount is one entry of the entity-label frequency table.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// WordFrequency is one entry of the word frequency table.
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Analytics holds derived summary statistics over a StructuredRecord.
type Analytics struct {
	WordCount             int             `json:"word_count"`
	SentenceCount         int             `json:"sentence_count"`
	AverageSentenceLength float64         `json:"average_sentence_length"`
	EntityCount           int             `json:"entity_count"`
	KeywordCount          int             `json:"keyword_count"`
	MostCommonEntities    []LabelCount    `json:"most_common_entities"`
	MostCommonWords       []WordFrequency `json:"most_common_words"`
}

// ProcessingResult is the complete outcome of processing one uploaded
// document. It is created once by the orchestrator and immutable afterwards.
type ProcessingResult struct {
	StructuredData *Output   `json:"structured_data"`
	Analytics      Analytics `json:"analytics"`
	JSONOutput     string    `json:"json_output"`
	XMLOutput      string    `json:"xml_output"`
	ExtractedText  string    `json:"extracted_text"`
	Warnings       []string  `json:"warnings"`
}

// StoredRecord is the on-disk representation of a persisted ProcessingResult.
// Records are immutable once saved; there is no update operation.
type StoredRecord struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Date     string `json:"date"`
	Data     string `json:"data"`
}

// LanguageAnalysis is the raw output of the external language capability for
// one text. Token and sentence inventories come from the capability's own
// tokenization, which may differ from a naive whitespace split.
type LanguageAnalysis struct {
	Sentences       []string `json:"sentences"`
	Entities        []Entity `json:"entities"`
	NounChunkLemmas []string `json:"noun_chunk_lemmas"`
	Tokens          []Token  `json:"tokens"`
}
