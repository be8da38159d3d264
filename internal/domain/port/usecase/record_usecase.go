package usecase

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// RecordInput carries a new income or expense entry.
// Amount is the raw decimal text and Date an optional YYYY-MM-DD day.
type RecordInput struct {
	Category string
	Amount   string
	Date     string
}

// RecordUseCase defines the per-owner record operations
type RecordUseCase interface {
	AddRecord(ctx context.Context, kind entity.RecordKind, ownerID uint64, input RecordInput) (*entity.Record, error)
	ListRecords(ctx context.Context, kind entity.RecordKind, ownerID uint64) ([]entity.Record, error)

	// DeleteRecord succeeds whether or not a matching record existed
	DeleteRecord(ctx context.Context, kind entity.RecordKind, ownerID, recordID uint64) error
}
