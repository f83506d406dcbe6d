package member

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gympro/internal/gym"
	"gympro/internal/ledger"
	"gympro/internal/logger"
	"gympro/internal/storage"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type fixture struct {
	svc    *service
	ledger ledger.Service
	store  storage.Store
	now    time.Time
}

// newFixture wires the service over a fresh in-memory store. The seeded
// GYM001 tenant (one-month price 1500) is available immediately.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := storage.NewMemoryStore()
	ledgerSvc := ledger.NewService(ledger.NewRepository(store))
	svc := NewService(NewRepository(store), gym.NewRepository(store), ledgerSvc).(*service)

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return &fixture{svc: svc, ledger: ledgerSvc, store: store, now: now}
}

func registerRavi(t *testing.T, f *fixture) *Member {
	t.Helper()
	m, err := f.svc.Register(context.Background(), "GYM001", RegisterRequest{
		Name:             "Ravi Kumar",
		Phone:            "9876543210",
		JoinDate:         "2024-06-01",
		PlanDurationDays: 30,
		Age:              28,
		Weight:           72,
		Height:           175,
		AmountPaid:       1500,
	})
	require.NoError(t, err)
	return m
}

func TestRegisterDefaultsAndExpiry(t *testing.T) {
	f := newFixture(t)
	m := registerRavi(t, f)

	assert.Equal(t, "9876543210", m.ID, "id defaults to phone")
	assert.Equal(t, defaultPassword, m.Password)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), m.ExpiryDate)
	assert.True(t, m.IsActive)
	assert.Equal(t, "GYM001", m.GymID)
}

func TestRegisterRecordsJoiningTransaction(t *testing.T) {
	f := newFixture(t)
	registerRavi(t, f)

	records, err := f.ledger.ListByGym(context.Background(), "GYM001")
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, float64(1500), records[0].Amount)
	assert.Equal(t, ledger.CategoryMembership, records[0].Category)
	assert.Equal(t, "Initial joining for Ravi Kumar", records[0].Details)
	assert.Equal(t, ledger.MethodOffline, records[0].Method)
}

func TestRegisterDatesJoiningEntryWithJoinDate(t *testing.T) {
	// Backdated registration: the member joined June 1 but is entered with
	// the clock at June 15. The joining payment belongs to June 1.
	f := newFixture(t)
	registerRavi(t, f)

	records, err := f.ledger.ListByGym(context.Background(), "GYM001")
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.True(t, records[0].Date.Before(f.now))
}

func TestRegisterUnknownGym(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Register(context.Background(), "GYM404", RegisterRequest{
		Name:             "Nobody",
		Phone:            "1",
		JoinDate:         "2024-06-01",
		PlanDurationDays: 30,
	})
	assert.ErrorIs(t, err, gym.ErrNotFound)
}

func TestRegisterDuplicateID(t *testing.T) {
	f := newFixture(t)
	registerRavi(t, f)

	_, err := f.svc.Register(context.Background(), "GYM001", RegisterRequest{
		Name:             "Ravi Again",
		Phone:            "9876543210",
		JoinDate:         "2024-06-01",
		PlanDurationDays: 30,
	})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestExtendPlanFromActiveExpiry(t *testing.T) {
	f := newFixture(t)
	m := registerRavi(t, f)

	// Expiry (Jul 1) is after now (Jun 15), so the extension counts from it.
	updated, amount, err := f.svc.ExtendPlan(context.Background(), "GYM001", m.ID, 30, nil)
	require.NoError(t, err)

	assert.Equal(t, m.ExpiryDate.Add(30*24*time.Hour), updated.ExpiryDate)
	assert.Equal(t, float64(1500), amount, "30-day tier uses the one-month price")
	assert.Equal(t, 30, updated.PlanDurationDays)
}

func TestExtendPlanFromExpiredMembership(t *testing.T) {
	f := newFixture(t)
	m := registerRavi(t, f)

	// Jump the clock past expiry; the extension must count from now, not
	// from the stale expiry.
	f.svc.now = func() time.Time { return time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC) }

	updated, _, err := f.svc.ExtendPlan(context.Background(), "GYM001", m.ID, 30, nil)
	require.NoError(t, err)

	want := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC).Add(30 * 24 * time.Hour)
	assert.Equal(t, want, updated.ExpiryDate)
}

func TestExtendPlanIsMonotonic(t *testing.T) {
	f := newFixture(t)
	m := registerRavi(t, f)

	ctx := context.Background()
	prev := m.ExpiryDate
	for _, days := range []int{10, 45, 30, 7} {
		updated, _, err := f.svc.ExtendPlan(ctx, "GYM001", m.ID, days, nil)
		require.NoError(t, err)

		base := prev
		if f.now.After(base) {
			base = f.now
		}
		assert.False(t, updated.ExpiryDate.Before(base.Add(time.Duration(days)*24*time.Hour)))
		assert.True(t, updated.ExpiryDate.After(prev))
		prev = updated.ExpiryDate
	}
}

func TestExtendPlanProration(t *testing.T) {
	f := newFixture(t)
	m := registerRavi(t, f)

	// GYM001 one-month price is 1500, so 45 days prorates to 2250.
	_, amount, err := f.svc.ExtendPlan(context.Background(), "GYM001", m.ID, 45, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(2250), amount)
}

func TestExtendPlanTierTable(t *testing.T) {
	pricing := gym.Pricing{OneMonth: 1500, TwoMonths: 2800, ThreeMonths: 4000, SixMonths: 7000, TwelveMonths: 12000}

	tests := []struct {
		days int
		want float64
	}{
		{30, 1500},
		{60, 2800},
		{90, 4000},
		{180, 7000},
		{365, 12000},
		{45, 2250},
		{1, 50},
		{100, 5000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, resolveFee(pricing, tt.days), "days=%d", tt.days)
	}
}

func TestExtendPlanExplicitFeeWins(t *testing.T) {
	f := newFixture(t)
	m := registerRavi(t, f)

	fee := 999.0
	_, amount, err := f.svc.ExtendPlan(context.Background(), "GYM001", m.ID, 45, &fee)
	require.NoError(t, err)
	assert.Equal(t, 999.0, amount)

	records, err := f.ledger.ListByGym(context.Background(), "GYM001")
	require.NoError(t, err)
	last := records[len(records)-1]
	assert.Equal(t, 999.0, last.Amount, "ledger amount must equal the charged fee")
	assert.Equal(t, "Extension: 45 days for Ravi Kumar", last.Details)
}

func TestExtendPlanRejectsNonPositiveDays(t *testing.T) {
	f := newFixture(t)
	m := registerRavi(t, f)

	for _, days := range []int{0, -5} {
		_, _, err := f.svc.ExtendPlan(context.Background(), "GYM001", m.ID, days, nil)
		assert.ErrorIs(t, err, ErrInvalidDays)
	}

	// Nothing was recorded for the rejected attempts.
	records, err := f.ledger.ListByGym(context.Background(), "GYM001")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAddSupplement(t *testing.T) {
	f := newFixture(t)
	m := registerRavi(t, f)

	updated, err := f.svc.AddSupplement(context.Background(), "GYM001", m.ID, SupplementRequest{
		ItemName: "Whey Protein",
		Qty:      2,
		Amount:   4200,
	})
	require.NoError(t, err)

	require.Len(t, updated.SupplementBills, 1)
	assert.Equal(t, "Whey Protein", updated.SupplementBills[0].ItemName)
	assert.NotEmpty(t, updated.SupplementBills[0].ID)

	records, err := f.ledger.ListByGym(context.Background(), "GYM001")
	require.NoError(t, err)
	last := records[len(records)-1]
	assert.Equal(t, ledger.CategorySupplement, last.Category)
	assert.Equal(t, 4200.0, last.Amount)
	assert.Equal(t, "Supplement: Whey Protein x 2 for Ravi Kumar", last.Details)
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	m := registerRavi(t, f)

	updated, err := f.svc.UpdateProfile(context.Background(), "GYM001", m.ID, UpdateProfileRequest{
		Name:     "Ravi K.",
		Age:      29,
		Weight:   70,
		Height:   175,
		Address:  "New Address",
		Password: "newpass",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ravi K.", updated.Name)
	assert.Equal(t, "newpass", updated.Password)
	// Plan fields are untouched by profile edits.
	assert.Equal(t, m.ExpiryDate, updated.ExpiryDate)
}

func TestSetPhoto(t *testing.T) {
	f := newFixture(t)
	m := registerRavi(t, f)
	ctx := context.Background()

	for _, tt := range []struct {
		kind string
		get  func(m *Member) string
	}{
		{"profile", func(m *Member) string { return m.ProfilePhoto }},
		{"before", func(m *Member) string { return m.TransformationPhotos.Before }},
		{"after", func(m *Member) string { return m.TransformationPhotos.After }},
	} {
		updated, err := f.svc.SetPhoto(ctx, "GYM001", m.ID, PhotoUploadRequest{Kind: tt.kind, Data: "blob-" + tt.kind})
		require.NoError(t, err)
		assert.Equal(t, "blob-"+tt.kind, tt.get(updated), tt.kind)
	}
}

func TestListFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	seed := []struct {
		name  string
		phone string
		join  string
		days  int
	}{
		{"Active Arya", "1111111111", "2024-06-01", 90},
		{"Soon Sam", "2222222222", "2024-05-20", 30},
		{"Expired Esha", "3333333333", "2024-01-01", 30},
	}
	for _, s := range seed {
		_, err := f.svc.Register(ctx, "GYM001", RegisterRequest{
			Name: s.name, Phone: s.phone, JoinDate: s.join, PlanDurationDays: s.days,
		})
		require.NoError(t, err)
	}

	t.Run("no filter returns everyone with status", func(t *testing.T) {
		views, err := f.svc.List(ctx, "GYM001", ListFilter{})
		require.NoError(t, err)
		require.Len(t, views, 3)

		byName := map[string]Status{}
		for _, v := range views {
			byName[v.Name] = v.Status
		}
		assert.Equal(t, StatusActive, byName["Active Arya"])
		assert.Equal(t, StatusExpiringSoon, byName["Soon Sam"])
		assert.Equal(t, StatusExpired, byName["Expired Esha"])
	})

	t.Run("search by name substring", func(t *testing.T) {
		views, err := f.svc.List(ctx, "GYM001", ListFilter{Search: "arya"})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Active Arya", views[0].Name)
	})

	t.Run("search by id substring", func(t *testing.T) {
		views, err := f.svc.List(ctx, "GYM001", ListFilter{Search: "2222"})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Soon Sam", views[0].Name)
	})

	t.Run("active filter includes expiring soon", func(t *testing.T) {
		views, err := f.svc.List(ctx, "GYM001", ListFilter{Status: "ACTIVE"})
		require.NoError(t, err)
		assert.Len(t, views, 2)
	})

	t.Run("expired filter", func(t *testing.T) {
		views, err := f.svc.List(ctx, "GYM001", ListFilter{Status: "EXPIRED"})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Expired Esha", views[0].Name)
	})

	t.Run("duration filter", func(t *testing.T) {
		views, err := f.svc.List(ctx, "GYM001", ListFilter{Duration: 90})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Active Arya", views[0].Name)
	})
}

func TestRepositoryScopesTenants(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewRepository(store)

	require.NoError(t, repo.Insert(ctx, Member{ID: "a", GymID: "GYM001"}))
	require.NoError(t, repo.Insert(ctx, Member{ID: "b", GymID: "GYM002"}))

	members, err := repo.ListByGym(ctx, "GYM001")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "a", members[0].ID)

	_, err = repo.GetByID(ctx, "GYM001", "b")
	assert.ErrorIs(t, err, ErrNotFound, "member of another gym is invisible")
}

func TestFindByIDOrPhone(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(storage.NewMemoryStore())

	require.NoError(t, repo.Insert(ctx, Member{ID: "MBR-7", Phone: "9876543210", GymID: "GYM001"}))

	byID, err := repo.FindByIDOrPhone(ctx, "GYM001", "MBR-7")
	require.NoError(t, err)
	assert.Equal(t, "MBR-7", byID.ID)

	byPhone, err := repo.FindByIDOrPhone(ctx, "GYM001", "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "MBR-7", byPhone.ID)

	_, err = repo.FindByIDOrPhone(ctx, "GYM002", "9876543210")
	assert.ErrorIs(t, err, ErrNotFound)
}
