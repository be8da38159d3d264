package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// RecordActivity is the owner and creation time of one record
type RecordActivity struct {
	OwnerID   uint64 // 0 when unowned
	CreatedAt time.Time
}

// RecordRepository defines methods over income and expense records.
// Every method is scoped to one record kind.
type RecordRepository interface {
	// Create stores a new record and fills in its generated ID
	Create(ctx context.Context, record *entity.Record) error

	// ListByOwner returns the owner's records ordered by date, then ID, newest first
	ListByOwner(ctx context.Context, kind entity.RecordKind, ownerID uint64) ([]entity.Record, error)

	// DeleteOwned removes the record only when both ID and owner match.
	// Returns the number of rows removed, which is 0 for missing or foreign records.
	DeleteOwned(ctx context.Context, kind entity.RecordKind, ownerID, id uint64) (int64, error)

	// SumByOwner returns the total amount in cents of the owner's records
	SumByOwner(ctx context.Context, kind entity.RecordKind, ownerID uint64) (int64, error)

	// Sum returns the total amount in cents across all records
	Sum(ctx context.Context, kind entity.RecordKind) (int64, error)

	// Count returns the number of records
	Count(ctx context.Context, kind entity.RecordKind) (int64, error)

	// SumsGroupedByOwner returns owner ID to total cents for owned records
	SumsGroupedByOwner(ctx context.Context, kind entity.RecordKind) (map[uint64]int64, error)

	// ActivitySince lists owner and creation time of records created at or after since
	ActivitySince(ctx context.Context, kind entity.RecordKind, since time.Time) ([]RecordActivity, error)

	// CountByCategory counts records per category ordered by label
	CountByCategory(ctx context.Context, kind entity.RecordKind) ([]entity.CategoryCount, error)

	// TopOwners ranks users by their record total, highest first, ties by user ID.
	// Users without records are included with zero totals.
	TopOwners(ctx context.Context, kind entity.RecordKind, limit int) ([]entity.TopUser, error)
}
