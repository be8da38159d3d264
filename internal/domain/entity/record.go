package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
)

// RecordKind tells income records apart from expense records
type RecordKind string

// Record kinds
const (
	KindIncome  RecordKind = "income"
	KindExpense RecordKind = "expense"
)

// DateLayout is the wire format of a record date
const DateLayout = "2006-01-02"

// ParseKind validates a record kind
func ParseKind(kind string) (RecordKind, error) {
	switch RecordKind(kind) {
	case KindIncome, KindExpense:
		return RecordKind(kind), nil
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidKind, kind)
	}
}

// Record is a single income or expense entry.
// OwnerID 0 means the record belongs to nobody.
type Record struct {
	ID          uint64
	Kind        RecordKind
	Category    string
	AmountCents int64
	Date        time.Time
	OwnerID     uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewRecord builds a record after validating its fields.
// A zero date defaults to the current UTC day.
func NewRecord(
	kind RecordKind,
	ownerID uint64,
	category string,
	amountCents int64,
	date time.Time,
	timeProvider coreport.TimeProvider,
) (*Record, error) {
	if kind != KindIncome && kind != KindExpense {
		return nil, errs.NewValidationErrorWrap("kind", "Kind must be income or expense", errs.ErrInvalidKind)
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, errs.NewValidationError("category", "Category is required")
	}

	now := timeProvider.Now()
	if date.IsZero() {
		date = now
	}

	return &Record{
		Kind:        kind,
		Category:    category,
		AmountCents: amountCents,
		Date:        TruncateToDay(date),
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// TruncateToDay returns midnight UTC of the calendar day of t in UTC
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseRecordDate parses a YYYY-MM-DD date. An empty string yields the zero time.
func ParseRecordDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	date, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, errs.NewValidationError("date", "Date must be in YYYY-MM-DD format")
	}
	return date, nil
}

// FormattedDate renders the record date in wire format
func (r *Record) FormattedDate() string {
	return r.Date.UTC().Format(DateLayout)
}
