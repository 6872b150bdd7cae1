// Package recordstore persists processing results as individual JSON files
// under a configurable directory, one file per record id.
package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kirillkom/docstruct/internal/core/domain"
)

type Store struct {
	basePath string
	logger   *slog.Logger
}

func New(basePath string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{basePath: basePath, logger: logger}
}

// Save writes the payload as <uuid>.json and returns the generated id. The
// storage directory is created on first use.
func (s *Store) Save(ctx context.Context, filename, data string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.WrapError(domain.ErrPersistence, "save record", err)
	}
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return "", domain.WrapError(domain.ErrPersistence, "save record", fmt.Errorf("create storage dir: %w", err))
	}

	record := domain.StoredRecord{
		ID:       uuid.NewString(),
		Filename: filename,
		Date:     time.Now().UTC().Format(time.RFC3339),
		Data:     data,
	}

	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", domain.WrapError(domain.ErrPersistence, "save record", fmt.Errorf("encode record: %w", err))
	}
	path := filepath.Join(s.basePath, record.ID+".json")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", domain.WrapError(domain.ErrPersistence, "save record", err)
	}

	s.logger.Info("record saved", "record_id", record.ID, "filename", filename)
	return record.ID, nil
}

// List returns every readable record in the store. Files that cannot be
// parsed are logged and skipped so one corrupted record does not hide the
// rest.
func (s *Store) List(ctx context.Context) ([]domain.StoredRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.WrapError(domain.ErrPersistence, "list records", err)
	}
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.StoredRecord{}, nil
		}
		return nil, domain.WrapError(domain.ErrPersistence, "list records", err)
	}

	records := make([]domain.StoredRecord, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.basePath, entry.Name())
		payload, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("skipping unreadable record", "path", path, "error", err)
			continue
		}
		var record domain.StoredRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			s.logger.Warn("skipping corrupted record", "path", path, "error", err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// Delete removes the record file for the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return domain.WrapError(domain.ErrPersistence, "delete record", err)
	}
	path := filepath.Join(s.basePath, id+".json")
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.WrapError(domain.ErrRecordNotFound, "delete record", fmt.Errorf("record %s", id))
		}
		return domain.WrapError(domain.ErrPersistence, "delete record", err)
	}
	s.logger.Info("record deleted", "record_id", id)
	return nil
}
