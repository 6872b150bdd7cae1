package usecase

import (
	"context"
	"fmt"

	"github.com/kirillkom/docstruct/internal/core/domain"
	"github.com/kirillkom/docstruct/internal/core/ports"
	"github.com/kirillkom/docstruct/internal/render"
)

// ProcessDocumentUseCase runs the document-to-structured-output pipeline:
// validate type, extract text, structure, analyze, project, serialize. Any
// stage failure aborts the pipeline; a partial result is never returned.
type ProcessDocumentUseCase struct {
	validator  ports.TypeValidator
	extractor  ports.TextExtractor
	structurer ports.Structurer

	topEntities int
	topWords    int
}

func NewProcessDocumentUseCase(
	validator ports.TypeValidator,
	extractor ports.TextExtractor,
	structurer ports.Structurer,
	topEntities, topWords int,
) *ProcessDocumentUseCase {
	if topEntities <= 0 {
		topEntities = 5
	}
	if topWords <= 0 {
		topWords = 10
	}
	return &ProcessDocumentUseCase{
		validator:   validator,
		extractor:   extractor,
		structurer:  structurer,
		topEntities: topEntities,
		topWords:    topWords,
	}
}

func (uc *ProcessDocumentUseCase) Process(
	ctx context.Context,
	filename string,
	content []byte,
	opts ports.ProcessOptions,
) (*domain.ProcessingResult, error) {
	mimeType, err := uc.validator.Validate(filename)
	if err != nil {
		return nil, err
	}

	text, err := uc.extractor.Extract(ctx, mimeType, content)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	record, err := uc.structurer.Structure(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("structure text: %w", err)
	}

	tokens, err := uc.structurer.Tokens(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("tokenize text: %w", err)
	}
	analytics := Analyze(record, tokens, uc.topEntities, uc.topWords)

	output := uc.project(record, opts)
	output.Set("analytics", AnalyticsOutput(analytics))
	warnings := CompletenessWarnings(output)

	jsonOutput, err := render.JSON(output)
	if err != nil {
		return nil, fmt.Errorf("render json: %w", err)
	}
	xmlOutput, err := render.XML(output)
	if err != nil {
		return nil, fmt.Errorf("render xml: %w", err)
	}

	return &domain.ProcessingResult{
		StructuredData: output,
		Analytics:      analytics,
		JSONOutput:     jsonOutput,
		XMLOutput:      xmlOutput,
		ExtractedText:  text,
		Warnings:       warnings,
	}, nil
}

// project applies the named template when given, otherwise the custom field
// list, otherwise passes the full record through.
func (uc *ProcessDocumentUseCase) project(record *domain.StructuredRecord, opts ports.ProcessOptions) *domain.Output {
	if opts.Template != "" {
		return Project(record, opts.Template)
	}
	if len(opts.Fields) > 0 {
		return ExtractFields(record, opts.Fields)
	}
	return Project(record, "")
}
