package record

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// RecordUseCase implements income and expense bookkeeping for a single owner
type RecordUseCase struct {
	recordRepo   persistence.RecordRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewRecordUseCase creates a new record use case instance
func NewRecordUseCase(
	recordRepo persistence.RecordRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.RecordUseCase {
	return &RecordUseCase{
		recordRepo:   recordRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// AddRecord validates the input and stores a record for the owner
func (r *RecordUseCase) AddRecord(
	ctx context.Context,
	kind entity.RecordKind,
	ownerID uint64,
	input usecase.RecordInput,
) (*entity.Record, error) {
	if _, err := entity.ParseKind(string(kind)); err != nil {
		return nil, errs.NewValidationErrorWrap("kind", "Kind must be income or expense", err)
	}
	if strings.TrimSpace(input.Category) == "" {
		return nil, errs.NewValidationError("category", "Category is required")
	}
	if strings.TrimSpace(input.Amount) == "" {
		return nil, errs.NewValidationError("amount", "Amount is required")
	}

	amountInCents, err := entity.ParseAmount(input.Amount)
	if err != nil {
		return nil, errs.NewValidationErrorWrap("amount", "Amount must be a number with at most two decimals", err)
	}

	date, err := entity.ParseRecordDate(input.Date)
	if err != nil {
		return nil, err
	}

	record, err := entity.NewRecord(kind, ownerID, input.Category, amountInCents, date, r.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := r.recordRepo.Create(ctx, record); err != nil {
		r.logger.Error("Failed to store record", map[string]any{
			"kind":    string(kind),
			"ownerId": ownerID,
			"error":   err.Error(),
		})
		return nil, err
	}

	r.logger.Info("Record added", map[string]any{
		"kind":     string(kind),
		"recordId": record.ID,
		"ownerId":  ownerID,
		"amount":   entity.CentsToString(record.AmountCents),
	})

	return record, nil
}

// ListRecords returns the owner's records, newest date first
func (r *RecordUseCase) ListRecords(ctx context.Context, kind entity.RecordKind, ownerID uint64) ([]entity.Record, error) {
	if _, err := entity.ParseKind(string(kind)); err != nil {
		return nil, errs.NewValidationErrorWrap("kind", "Kind must be income or expense", err)
	}

	records, err := r.recordRepo.ListByOwner(ctx, kind, ownerID)
	if err != nil {
		r.logger.Error("Failed to list records", map[string]any{
			"kind":    string(kind),
			"ownerId": ownerID,
			"error":   err.Error(),
		})
		return nil, err
	}
	if records == nil {
		records = []entity.Record{}
	}
	return records, nil
}

// DeleteRecord removes a record if the owner matches. Deleting a missing or
// foreign record is not an error.
func (r *RecordUseCase) DeleteRecord(ctx context.Context, kind entity.RecordKind, ownerID, recordID uint64) error {
	if _, err := entity.ParseKind(string(kind)); err != nil {
		return errs.NewValidationErrorWrap("kind", "Kind must be income or expense", err)
	}

	removed, err := r.recordRepo.DeleteOwned(ctx, kind, ownerID, recordID)
	if err != nil {
		r.logger.Error("Failed to delete record", map[string]any{
			"kind":     string(kind),
			"recordId": recordID,
			"ownerId":  ownerID,
			"error":    err.Error(),
		})
		return err
	}

	if removed == 0 {
		r.logger.Debug("Delete matched no record", map[string]any{
			"kind":     string(kind),
			"recordId": recordID,
			"ownerId":  ownerID,
		})
		return nil
	}

	r.logger.Info("Record deleted", map[string]any{
		"kind":     string(kind),
		"recordId": recordID,
		"ownerId":  ownerID,
	})
	return nil
}
