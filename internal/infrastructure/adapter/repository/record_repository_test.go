package repository

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addRecord(t *testing.T, repo *RecordRepository, kind entity.RecordKind, owner uint64, category string, cents int64, date, created time.Time) *entity.Record {
	t.Helper()
	rec := &entity.Record{
		Kind:        kind,
		Category:    category,
		AmountCents: cents,
		Date:        date,
		OwnerID:     owner,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	require.NoError(t, repo.Create(t.Context(), rec))
	return rec
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRecordRepository_OwnerScope(t *testing.T) {
	users, records := newRepos(t)
	ctx := t.Context()
	alice := seedUser(t, users, "Alice", "alice@example.com")
	bob := seedUser(t, users, "Bob", "bob@example.com")

	older := addRecord(t, records, entity.KindExpense, alice.ID, "Rent", 150000, day(2025, 3, 1), fixedNow)
	sameDayA := addRecord(t, records, entity.KindExpense, alice.ID, "Food", 1250, day(2025, 3, 10), fixedNow)
	sameDayB := addRecord(t, records, entity.KindExpense, alice.ID, "Food", 800, day(2025, 3, 10), fixedNow)
	bobs := addRecord(t, records, entity.KindExpense, bob.ID, "Food", 999, day(2025, 3, 12), fixedNow)
	addRecord(t, records, entity.KindIncome, alice.ID, "Salary", 500000, day(2025, 3, 1), fixedNow)

	t.Run("list is owner scoped, newest date then id first", func(t *testing.T) {
		list, err := records.ListByOwner(ctx, entity.KindExpense, alice.ID)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, []uint64{sameDayB.ID, sameDayA.ID, older.ID}, []uint64{list[0].ID, list[1].ID, list[2].ID})
		assert.Equal(t, entity.KindExpense, list[0].Kind)
		assert.Equal(t, "2025-03-10", list[0].FormattedDate())
		assert.Equal(t, alice.ID, list[0].OwnerID)
	})

	t.Run("list for user without records is empty, not nil", func(t *testing.T) {
		list, err := records.ListByOwner(ctx, entity.KindIncome, bob.ID)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("sums", func(t *testing.T) {
		sum, err := records.SumByOwner(ctx, entity.KindExpense, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(152050), sum)

		sum, err = records.SumByOwner(ctx, entity.KindIncome, bob.ID)
		require.NoError(t, err)
		assert.Zero(t, sum)

		total, err := records.Sum(ctx, entity.KindExpense)
		require.NoError(t, err)
		assert.Equal(t, int64(153049), total)

		grouped, err := records.SumsGroupedByOwner(ctx, entity.KindExpense)
		require.NoError(t, err)
		assert.Equal(t, map[uint64]int64{alice.ID: 152050, bob.ID: 999}, grouped)
	})

	t.Run("delete of a foreign record is a no-op", func(t *testing.T) {
		n, err := records.DeleteOwned(ctx, entity.KindExpense, alice.ID, bobs.ID)
		require.NoError(t, err)
		assert.Zero(t, n)

		list, err := records.ListByOwner(ctx, entity.KindExpense, bob.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("delete own record twice", func(t *testing.T) {
		n, err := records.DeleteOwned(ctx, entity.KindExpense, alice.ID, older.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = records.DeleteOwned(ctx, entity.KindExpense, alice.ID, older.ID)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("delete only touches the requested kind", func(t *testing.T) {
		n, err := records.DeleteOwned(ctx, entity.KindIncome, alice.ID, sameDayA.ID)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestRecordRepository_Aggregates(t *testing.T) {
	users, records := newRepos(t)
	ctx := t.Context()
	alice := seedUser(t, users, "Alice", "alice@example.com")
	bob := seedUser(t, users, "Bob", "bob@example.com")
	carol := seedUser(t, users, "Carol", "carol@example.com")
	seedUser(t, users, "Dave", "dave@example.com")

	addRecord(t, records, entity.KindExpense, alice.ID, "Food", 1000, day(2025, 3, 1), fixedNow.AddDate(0, -1, 0))
	addRecord(t, records, entity.KindExpense, alice.ID, "Rent", 2000, day(2025, 3, 2), fixedNow)
	addRecord(t, records, entity.KindExpense, bob.ID, "Food", 3000, day(2025, 3, 3), fixedNow.AddDate(0, -7, 0))
	addRecord(t, records, entity.KindExpense, carol.ID, "Travel", 500, day(2025, 3, 4), fixedNow)
	addRecord(t, records, entity.KindExpense, 0, "Food", 100, day(2025, 3, 5), fixedNow)

	t.Run("count", func(t *testing.T) {
		n, err := records.Count(ctx, entity.KindExpense)
		require.NoError(t, err)
		assert.Equal(t, int64(5), n)

		n, err = records.Count(ctx, entity.KindIncome)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("unowned records are excluded from grouped sums", func(t *testing.T) {
		grouped, err := records.SumsGroupedByOwner(ctx, entity.KindExpense)
		require.NoError(t, err)
		assert.Len(t, grouped, 3)
		assert.NotContains(t, grouped, uint64(0))
	})

	t.Run("activity since", func(t *testing.T) {
		activity, err := records.ActivitySince(ctx, entity.KindExpense, fixedNow.AddDate(0, -5, 0))
		require.NoError(t, err)
		require.Len(t, activity, 4)

		owners := map[uint64]int{}
		for _, a := range activity {
			owners[a.OwnerID]++
			assert.Equal(t, time.UTC, a.CreatedAt.Location())
		}
		assert.Equal(t, map[uint64]int{alice.ID: 2, carol.ID: 1, 0: 1}, owners)
	})

	t.Run("categories ordered by label", func(t *testing.T) {
		counts, err := records.CountByCategory(ctx, entity.KindExpense)
		require.NoError(t, err)
		assert.Equal(t, []entity.CategoryCount{
			{Label: "Food", Value: 3},
			{Label: "Rent", Value: 1},
			{Label: "Travel", Value: 1},
		}, counts)

		counts, err = records.CountByCategory(ctx, entity.KindIncome)
		require.NoError(t, err)
		assert.NotNil(t, counts)
		assert.Empty(t, counts)
	})

	t.Run("top owners with left join and tie break", func(t *testing.T) {
		top, err := records.TopOwners(ctx, entity.KindExpense, 0)
		require.NoError(t, err)
		require.Len(t, top, 4)

		assert.Equal(t, entity.TopUser{UserID: alice.ID, Name: "Alice", ExpenseCents: 3000, Transactions: 2}, top[0])
		assert.Equal(t, entity.TopUser{UserID: bob.ID, Name: "Bob", ExpenseCents: 3000, Transactions: 1}, top[1])
		assert.Equal(t, "Carol", top[2].Name)
		assert.Equal(t, entity.TopUser{UserID: top[3].UserID, Name: "Dave"}, top[3])

		limited, err := records.TopOwners(ctx, entity.KindExpense, 2)
		require.NoError(t, err)
		assert.Len(t, limited, 2)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := records.Count(ctx, entity.RecordKind("transfer"))
		assert.ErrorIs(t, err, errs.ErrInvalidKind)
	})
}
