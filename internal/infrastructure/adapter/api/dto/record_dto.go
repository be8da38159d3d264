package dto

import (
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// RecordRequest is the body of an add income or add expense call
type RecordRequest struct {
	Category string `json:"category"`
	Amount   Amount `json:"amount"`
	Date     string `json:"date"`
}

// RecordResponse is one income or expense entry
type RecordResponse struct {
	ID        uint64    `json:"id"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Date      string    `json:"date"`
	UserID    uint64    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewRecordResponse maps a record onto its wire shape
func NewRecordResponse(r *entity.Record) RecordResponse {
	return RecordResponse{
		ID:        r.ID,
		Category:  r.Category,
		Amount:    entity.CentsToFloat(r.AmountCents),
		Date:      r.FormattedDate(),
		UserID:    r.OwnerID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// NewRecordListResponse maps records, always returning a non-nil slice
func NewRecordListResponse(records []entity.Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for i := range records {
		out = append(out, NewRecordResponse(&records[i]))
	}
	return out
}
