package dashboard

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/persistence"
)

type monthBucket struct {
	incomeUsers  map[uint64]struct{}
	expenseUsers map[uint64]struct{}
	transactions int64
}

func newMonthBucket() *monthBucket {
	return &monthBucket{
		incomeUsers:  make(map[uint64]struct{}),
		expenseUsers: make(map[uint64]struct{}),
	}
}

func (b *monthBucket) users(unique bool) int64 {
	if !unique {
		return int64(len(b.incomeUsers) + len(b.expenseUsers))
	}
	union := len(b.incomeUsers)
	for id := range b.expenseUsers {
		if _, ok := b.incomeUsers[id]; !ok {
			union++
		}
	}
	return int64(union)
}

// monthWindow returns the series labels, the bucket key of each label, the
// earliest creation time to include and the key function for a record
func (d *DashboardUseCase) monthWindow(now time.Time) ([]string, []string, time.Time, func(time.Time) string) {
	if d.options.MonthWindow == WindowFixed {
		keyOf := func(t time.Time) string { return t.UTC().Format("Jan") }
		return entity.FixedMonthLabels, entity.FixedMonthLabels, now.AddDate(0, -(entity.MonthsInActivityWindow - 1), 0), keyOf
	}

	keyOf := func(t time.Time) string { return t.UTC().Format("2006-01") }
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(entity.MonthsInActivityWindow - 1), 0)

	labels := make([]string, 0, entity.MonthsInActivityWindow)
	keys := make([]string, 0, entity.MonthsInActivityWindow)
	for i := 0; i < entity.MonthsInActivityWindow; i++ {
		month := start.AddDate(0, i, 0)
		labels = append(labels, month.Format("Jan"))
		keys = append(keys, keyOf(month))
	}
	return labels, keys, start, keyOf
}

func (d *DashboardUseCase) monthlyActivity(ctx context.Context, now time.Time) ([]entity.MonthlyActivity, error) {
	labels, keys, since, keyOf := d.monthWindow(now)

	incomes, err := d.recordRepo.ActivitySince(ctx, entity.KindIncome, since)
	if err != nil {
		return nil, err
	}
	expenses, err := d.recordRepo.ActivitySince(ctx, entity.KindExpense, since)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*monthBucket, len(keys))
	for _, key := range keys {
		buckets[key] = newMonthBucket()
	}

	add := func(rows []persistence.RecordActivity, users func(*monthBucket) map[uint64]struct{}) {
		for _, row := range rows {
			bucket, ok := buckets[keyOf(row.CreatedAt)]
			if !ok {
				continue
			}
			bucket.transactions++
			if row.OwnerID != 0 {
				users(bucket)[row.OwnerID] = struct{}{}
			}
		}
	}
	add(incomes, func(b *monthBucket) map[uint64]struct{} { return b.incomeUsers })
	add(expenses, func(b *monthBucket) map[uint64]struct{} { return b.expenseUsers })

	activity := make([]entity.MonthlyActivity, 0, len(labels))
	for i, label := range labels {
		bucket := buckets[keys[i]]
		activity = append(activity, entity.MonthlyActivity{
			Month:        label,
			Users:        bucket.users(d.options.UniqueMonthlyUsers),
			Transactions: bucket.transactions,
		})
	}
	return activity, nil
}
