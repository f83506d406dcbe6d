package ledger

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gympro/internal/logger"
	"gympro/internal/storage"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestService(t *testing.T, now time.Time) (*service, Repository) {
	t.Helper()
	repo := NewRepository(storage.NewMemoryStore())
	svc := NewService(repo).(*service)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func TestRecordAppendsToLedger(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	svc, repo := newTestService(t, now)

	rec, err := svc.Record(ctx, "GYM001", 1500, CategoryMembership, "Manager", "Initial joining for Ravi")
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, now, rec.Date)
	assert.Equal(t, MethodOffline, rec.Method)
	assert.Equal(t, "GYM001", rec.GymID)

	stored, err := repo.ListByGym(ctx, "GYM001")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, *rec, stored[0])
}

func TestRecordAtUsesGivenDate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	backdated := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc, repo := newTestService(t, now)

	rec, err := svc.RecordAt(ctx, "GYM001", backdated, 1500, CategoryMembership, "Manager", "Initial joining for Ravi")
	require.NoError(t, err)
	assert.Equal(t, backdated, rec.Date)

	stored, err := repo.ListByGym(ctx, "GYM001")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, backdated, stored[0].Date)
}

func TestRecordAtRejectsNegativeAmount(t *testing.T) {
	svc, _ := newTestService(t, time.Now())

	_, err := svc.RecordAt(context.Background(), "GYM001", time.Now(), -10, CategorySupplement, "Manager", "bad")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestRecordRejectsNegativeAmount(t *testing.T) {
	svc, _ := newTestService(t, time.Now())

	_, err := svc.Record(context.Background(), "GYM001", -10, CategorySupplement, "Manager", "bad")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestListByGymScopesTenants(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, time.Now())

	_, err := svc.Record(ctx, "GYM001", 100, CategoryMembership, "Manager", "a")
	require.NoError(t, err)
	_, err = svc.Record(ctx, "GYM002", 200, CategoryMembership, "Manager", "b")
	require.NoError(t, err)

	records, err := svc.ListByGym(ctx, "GYM001")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, float64(100), records[0].Amount)
}

func TestRollupWindows(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := NewRepository(storage.NewMemoryStore())
	svc := NewService(repo).(*service)
	svc.now = func() time.Time { return now }

	seed := []PaymentRecord{
		{ID: "1", Date: now.Add(-2 * time.Hour), Amount: 1500, Category: CategoryMembership, GymID: "GYM001"},
		{ID: "2", Date: now.Add(-3 * time.Hour), Amount: 400, Category: CategorySupplement, GymID: "GYM001"},
		{ID: "3", Date: now.AddDate(0, 0, -10), Amount: 2250, Category: CategoryMembership, GymID: "GYM001"},
		{ID: "4", Date: now.AddDate(0, -2, 0), Amount: 999, Category: CategoryMembership, GymID: "GYM001"},
		{ID: "5", Date: now, Amount: 777, Category: CategoryMembership, GymID: "GYM999"},
	}
	for _, rec := range seed {
		require.NoError(t, repo.Append(ctx, rec))
	}

	t.Run("today", func(t *testing.T) {
		r, err := svc.Rollup(ctx, "GYM001", Today())
		require.NoError(t, err)
		assert.Equal(t, float64(1900), r.Total)
		assert.Equal(t, float64(1500), r.Membership)
		assert.Equal(t, float64(400), r.Supplements)
		assert.Len(t, r.Transactions, 2)
	})

	t.Run("month", func(t *testing.T) {
		r, err := svc.Rollup(ctx, "GYM001", ThisMonth())
		require.NoError(t, err)
		assert.Equal(t, float64(1500+400+2250), r.Total)
	})

	t.Run("specific date", func(t *testing.T) {
		r, err := svc.Rollup(ctx, "GYM001", On(now.AddDate(0, 0, -10)))
		require.NoError(t, err)
		assert.Equal(t, float64(2250), r.Total)
		assert.Len(t, r.Transactions, 1)
	})

	t.Run("inclusive range", func(t *testing.T) {
		start := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC)
		r, err := svc.Rollup(ctx, "GYM001", Between(start, end))
		require.NoError(t, err)
		assert.Equal(t, float64(1500+400+2250), r.Total)
	})

	t.Run("total equals sum of subtotals", func(t *testing.T) {
		for _, w := range []Window{Today(), ThisMonth(), On(now), Between(now.AddDate(0, -3, 0), now)} {
			r, err := svc.Rollup(ctx, "GYM001", w)
			require.NoError(t, err)
			assert.Equal(t, r.Total, r.Membership+r.Supplements)
		}
	})

	t.Run("other tenant excluded", func(t *testing.T) {
		r, err := svc.Rollup(ctx, "GYM001", ThisMonth())
		require.NoError(t, err)
		for _, rec := range r.Transactions {
			assert.Equal(t, "GYM001", rec.GymID)
		}
	})
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		date    string
		start   string
		end     string
		want    WindowKind
		wantErr bool
	}{
		{name: "today", kind: "TODAY", want: WindowToday},
		{name: "month", kind: "MONTH", want: WindowMonth},
		{name: "default is month", kind: "", want: WindowMonth},
		{name: "specific", kind: "SPECIFIC", date: "2024-06-15", want: WindowSpecific},
		{name: "specific missing date", kind: "SPECIFIC", wantErr: true},
		{name: "range", kind: "RANGE", start: "2024-06-01", end: "2024-06-15", want: WindowRange},
		{name: "range missing end", kind: "RANGE", start: "2024-06-01", wantErr: true},
		{name: "unknown kind", kind: "YESTERDAY", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ParseWindow(tt.kind, tt.date, tt.start, tt.end)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWindow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.Kind)
		})
	}
}
