// Package bootstrap wires configuration, infrastructure and use cases into a
// running application.
package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/kirillkom/docstruct/internal/config"
	"github.com/kirillkom/docstruct/internal/core/ports"
	"github.com/kirillkom/docstruct/internal/core/usecase"
	"github.com/kirillkom/docstruct/internal/filetype"
	"github.com/kirillkom/docstruct/internal/infrastructure/extractor"
	"github.com/kirillkom/docstruct/internal/infrastructure/language"
	"github.com/kirillkom/docstruct/internal/infrastructure/recordstore"
	"github.com/kirillkom/docstruct/internal/infrastructure/structurer"
	"github.com/kirillkom/docstruct/internal/observability/logging"
	"github.com/kirillkom/docstruct/internal/observability/metrics"
)

type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Metrics *metrics.ServerMetrics

	ProcessUC ports.DocumentProcessor
	ArchiveUC ports.RecordArchive
}

// New assembles the application. The language sidecar is probed exactly once;
// when it is disabled or unreachable the pipeline runs with the regex
// fallback structurer for the lifetime of the process.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	logger := logging.New(nil, "docstruct", cfg.LogLevel)
	slog.SetDefault(logger)

	serverMetrics := metrics.NewServerMetrics("api")

	structuring := selectStructurer(ctx, cfg, logger)
	serverMetrics.SetStructurerMode("api", structuring.Mode())

	processUC := usecase.NewProcessDocumentUseCase(
		filetype.NewValidator(),
		extractor.New(),
		structuring,
		cfg.TopEntities,
		cfg.TopWords,
	)

	store := recordstore.New(cfg.StoragePath, logger)
	archiveUC := usecase.NewRecordArchiveUseCase(store)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: serverMetrics,

		ProcessUC: processUC,
		ArchiveUC: archiveUC,
	}, nil
}

func selectStructurer(ctx context.Context, cfg config.Config, logger *slog.Logger) ports.Structurer {
	if !cfg.LanguageEnabled {
		logger.Info("language capability disabled, using fallback structurer")
		return structurer.NewFallback()
	}

	client := language.New(cfg.LanguageURL, language.Options{
		Timeout: time.Duration(cfg.LanguageTimeoutSeconds) * time.Second,
	})

	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Healthy(probeCtx); err != nil {
		logger.Warn("language capability unreachable, using fallback structurer",
			"url", cfg.LanguageURL, "error", err)
		return structurer.NewFallback()
	}

	logger.Info("language capability available", "url", cfg.LanguageURL)
	return structurer.NewLanguage(client)
}
