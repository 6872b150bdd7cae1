package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kirillkom/docstruct/internal/core/domain"
	"github.com/kirillkom/docstruct/internal/core/ports"
)

// RecordArchiveUseCase mediates between processed results and the flat-file
// record store.
type RecordArchiveUseCase struct {
	store ports.RecordStore
}

func NewRecordArchiveUseCase(store ports.RecordStore) *RecordArchiveUseCase {
	return &RecordArchiveUseCase{store: store}
}

func (uc *RecordArchiveUseCase) Save(ctx context.Context, result *domain.ProcessingResult, filename string) (string, error) {
	if result == nil {
		return "", domain.WrapError(domain.ErrInvalidInput, "save record", fmt.Errorf("nil processing result"))
	}
	data, err := json.Marshal(result)
	if err != nil {
		return "", domain.WrapError(domain.ErrPersistence, "save record", fmt.Errorf("encode result: %w", err))
	}
	id, err := uc.store.Save(ctx, filename, string(data))
	if err != nil {
		return "", fmt.Errorf("save record: %w", err)
	}
	return id, nil
}

func (uc *RecordArchiveUseCase) List(ctx context.Context) ([]domain.StoredRecord, error) {
	records, err := uc.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

func (uc *RecordArchiveUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
