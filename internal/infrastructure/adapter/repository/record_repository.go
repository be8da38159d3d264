package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// RecordRepository implements the RecordRepository port over the incomes
// and expenses tables. Month bucketing is left to the caller so every
// query here stays portable between postgres and sqlite.
type RecordRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewRecordRepository creates a new RecordRepository instance
func NewRecordRepository(db *gorm.DB, logger coreport.Logger) *RecordRepository {
	return &RecordRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// TableFor returns the table holding records of kind
func TableFor(kind entity.RecordKind) (string, error) {
	switch kind {
	case entity.KindIncome:
		return model.IncomeTable, nil
	case entity.KindExpense:
		return model.ExpenseTable, nil
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidKind, kind)
	}
}

func (r *RecordRepository) table(ctx context.Context, kind entity.RecordKind) (*gorm.DB, error) {
	name, err := TableFor(kind)
	if err != nil {
		return nil, err
	}
	return r.db.WithContext(ctx).Table(name), nil
}

func (r *RecordRepository) handleDatabaseError(operation string, kind entity.RecordKind, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"kind":  string(kind),
		"error": err.Error(),
	})
	return r.errorClassifier.Wrap(err)
}

// postgres widens SUM(bigint) to numeric
const sumAmount = "CAST(COALESCE(SUM(amount), 0) AS BIGINT)"

func recordToEntity(kind entity.RecordKind, m *model.Record) entity.Record {
	var owner uint64
	if m.UserID != nil {
		owner = *m.UserID
	}
	return entity.Record{
		ID:          m.ID,
		Kind:        kind,
		Category:    m.Category,
		AmountCents: m.Amount,
		Date:        m.Date.UTC(),
		OwnerID:     owner,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Create inserts the record and fills in its generated ID
func (r *RecordRepository) Create(ctx context.Context, record *entity.Record) error {
	tx, err := r.table(ctx, record.Kind)
	if err != nil {
		return err
	}

	m := &model.Record{
		Category:  record.Category,
		Amount:    record.AmountCents,
		Date:      record.Date,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
	if record.OwnerID != 0 {
		owner := record.OwnerID
		m.UserID = &owner
	}

	if err := tx.Create(m).Error; err != nil {
		return r.handleDatabaseError("creating record", record.Kind, err)
	}
	record.ID = m.ID
	return nil
}

// ListByOwner returns the owner's records, newest date first
func (r *RecordRepository) ListByOwner(ctx context.Context, kind entity.RecordKind, ownerID uint64) ([]entity.Record, error) {
	tx, err := r.table(ctx, kind)
	if err != nil {
		return nil, err
	}

	var rows []model.Record
	if err := tx.Where("user_id = ?", ownerID).Order("date DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing records", kind, err)
	}

	records := make([]entity.Record, 0, len(rows))
	for i := range rows {
		records = append(records, recordToEntity(kind, &rows[i]))
	}
	return records, nil
}

// DeleteOwned removes the record when both id and owner match
func (r *RecordRepository) DeleteOwned(ctx context.Context, kind entity.RecordKind, ownerID, id uint64) (int64, error) {
	tx, err := r.table(ctx, kind)
	if err != nil {
		return 0, err
	}

	result := tx.Where("id = ? AND user_id = ?", id, ownerID).Delete(&model.Record{})
	if result.Error != nil {
		return 0, r.handleDatabaseError("deleting record", kind, result.Error)
	}
	return result.RowsAffected, nil
}

// SumByOwner returns the owner's total in cents
func (r *RecordRepository) SumByOwner(ctx context.Context, kind entity.RecordKind, ownerID uint64) (int64, error) {
	tx, err := r.table(ctx, kind)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := tx.Where("user_id = ?", ownerID).Select(sumAmount).Scan(&total).Error; err != nil {
		return 0, r.handleDatabaseError("summing owner records", kind, err)
	}
	return total, nil
}

// Sum returns the total of every record in cents
func (r *RecordRepository) Sum(ctx context.Context, kind entity.RecordKind) (int64, error) {
	tx, err := r.table(ctx, kind)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := tx.Select(sumAmount).Scan(&total).Error; err != nil {
		return 0, r.handleDatabaseError("summing records", kind, err)
	}
	return total, nil
}

// Count returns the number of records
func (r *RecordRepository) Count(ctx context.Context, kind entity.RecordKind) (int64, error) {
	tx, err := r.table(ctx, kind)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, r.handleDatabaseError("counting records", kind, err)
	}
	return n, nil
}

// SumsGroupedByOwner returns owner ID to total cents; unowned records are skipped
func (r *RecordRepository) SumsGroupedByOwner(ctx context.Context, kind entity.RecordKind) (map[uint64]int64, error) {
	tx, err := r.table(ctx, kind)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		UserID uint64
		Total  int64
	}
	err = tx.Select("user_id, " + sumAmount + " AS total").
		Where("user_id IS NOT NULL").
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("grouping sums by owner", kind, err)
	}

	sums := make(map[uint64]int64, len(rows))
	for _, row := range rows {
		sums[row.UserID] = row.Total
	}
	return sums, nil
}

// ActivitySince lists owner and creation time of records created at or after since
func (r *RecordRepository) ActivitySince(ctx context.Context, kind entity.RecordKind, since time.Time) ([]persistence.RecordActivity, error) {
	tx, err := r.table(ctx, kind)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		UserID    *uint64
		CreatedAt time.Time
	}
	if err := tx.Select("user_id, created_at").Where("created_at >= ?", since).Scan(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("loading activity", kind, err)
	}

	activity := make([]persistence.RecordActivity, 0, len(rows))
	for _, row := range rows {
		item := persistence.RecordActivity{CreatedAt: row.CreatedAt.UTC()}
		if row.UserID != nil {
			item.OwnerID = *row.UserID
		}
		activity = append(activity, item)
	}
	return activity, nil
}

// CountByCategory counts records per category ordered by label
func (r *RecordRepository) CountByCategory(ctx context.Context, kind entity.RecordKind) ([]entity.CategoryCount, error) {
	tx, err := r.table(ctx, kind)
	if err != nil {
		return nil, err
	}

	var counts []entity.CategoryCount
	err = tx.Select("category AS label, COUNT(*) AS value").
		Group("category").
		Order("category ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, r.handleDatabaseError("counting categories", kind, err)
	}
	if counts == nil {
		counts = []entity.CategoryCount{}
	}
	return counts, nil
}

// TopOwners ranks every user by record total, highest first, ties by user ID.
// A non-positive limit returns all users.
func (r *RecordRepository) TopOwners(ctx context.Context, kind entity.RecordKind, limit int) ([]entity.TopUser, error) {
	name, err := TableFor(kind)
	if err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Table("users").
		Select("users.id AS user_id, users.full_name AS name, " +
			"CAST(COALESCE(SUM(r.amount), 0) AS BIGINT) AS expense_cents, COUNT(r.id) AS transactions").
		Joins(fmt.Sprintf("LEFT JOIN %s r ON r.user_id = users.id", name)).
		Group("users.id, users.full_name").
		Order("expense_cents DESC, users.id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var top []entity.TopUser
	if err := query.Scan(&top).Error; err != nil {
		return nil, r.handleDatabaseError("ranking owners", kind, err)
	}
	if top == nil {
		top = []entity.TopUser{}
	}
	return top, nil
}
