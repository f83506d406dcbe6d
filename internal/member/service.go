package member

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"gympro/internal/gym"
	"gympro/internal/ledger"
	"gympro/internal/metrics"
)

var (
	ErrNotFound     = errors.New("member not found")
	ErrDuplicateID  = errors.New("member id already exists")
	ErrInvalidDate  = errors.New("invalid join date")
	ErrInvalidDays  = errors.New("extension days must be positive")
	ErrInvalidPhoto = errors.New("unknown photo kind")
)

const joinDateLayout = "2006-01-02"

// defaultPassword is handed to members who register without choosing one.
const defaultPassword = "1234"

type Service interface {
	Register(ctx context.Context, gymID string, req RegisterRequest) (*Member, error)
	List(ctx context.Context, gymID string, filter ListFilter) ([]View, error)
	Get(ctx context.Context, gymID, id string) (*View, error)
	UpdateProfile(ctx context.Context, gymID, id string, req UpdateProfileRequest) (*Member, error)
	ExtendPlan(ctx context.Context, gymID, id string, days int, fee *float64) (*Member, float64, error)
	AddSupplement(ctx context.Context, gymID, id string, req SupplementRequest) (*Member, error)
	SetPhoto(ctx context.Context, gymID, id string, req PhotoUploadRequest) (*Member, error)
}

type service struct {
	repo   Repository
	gyms   gym.Repository
	ledger ledger.Service
	now    func() time.Time
}

func NewService(repo Repository, gyms gym.Repository, ledgerSvc ledger.Service) Service {
	return &service{
		repo:   repo,
		gyms:   gyms,
		ledger: ledgerSvc,
		now:    time.Now,
	}
}

func (s *service) Register(ctx context.Context, gymID string, req RegisterRequest) (*Member, error) {
	if _, err := s.gyms.GetByID(ctx, gymID); err != nil {
		return nil, gym.ErrNotFound
	}

	joinDate, err := time.Parse(joinDateLayout, req.JoinDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	id := req.ID
	if id == "" {
		id = req.Phone
	}
	if _, err := s.repo.GetByID(ctx, gymID, id); err == nil {
		return nil, ErrDuplicateID
	}

	password := req.Password
	if password == "" {
		password = defaultPassword
	}

	m := Member{
		ID:               id,
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            req.Email,
		Password:         password,
		JoinDate:         joinDate,
		PlanDurationDays: req.PlanDurationDays,
		ExpiryDate:       joinDate.AddDate(0, 0, req.PlanDurationDays),
		Age:              req.Age,
		Weight:           req.Weight,
		Height:           req.Height,
		Address:          req.Address,
		AmountPaid:       req.AmountPaid,
		ProfilePhoto:     req.ProfilePhoto,
		SupplementBills:  []SupplementBill{},
		PaymentHistory:   []ledger.PaymentRecord{},
		GymID:            gymID,
		IsActive:         true,
	}

	if err := s.repo.Insert(ctx, m); err != nil {
		return nil, err
	}

	// The joining payment is dated with the join date, not the entry
	// clock, so backdated registrations roll up into the right window.
	if _, err := s.ledger.RecordAt(ctx, gymID, joinDate, m.AmountPaid, ledger.CategoryMembership,
		"Manager", fmt.Sprintf("Initial joining for %s", m.Name)); err != nil {
		return nil, err
	}

	metrics.MembersRegisteredTotal.Inc()
	return &m, nil
}

func (s *service) List(ctx context.Context, gymID string, filter ListFilter) ([]View, error) {
	members, err := s.repo.ListByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	search := strings.ToLower(filter.Search)

	views := make([]View, 0, len(members))
	for _, m := range members {
		status := StatusOf(m.ExpiryDate, now)

		if search != "" &&
			!strings.Contains(strings.ToLower(m.Name), search) &&
			!strings.Contains(m.ID, filter.Search) {
			continue
		}
		if !matchesStatus(filter.Status, status) {
			continue
		}
		if filter.Duration != 0 && m.PlanDurationDays != filter.Duration {
			continue
		}

		views = append(views, View{Member: m, Status: status})
	}
	return views, nil
}

// matchesStatus applies the manager-list status filter. The ACTIVE filter
// also admits EXPIRING_SOON, matching how the badge filter has always worked.
func matchesStatus(filter string, status Status) bool {
	switch filter {
	case "", "ALL":
		return true
	case string(StatusActive):
		return status == StatusActive || status == StatusExpiringSoon
	default:
		return string(status) == filter
	}
}

func (s *service) Get(ctx context.Context, gymID, id string) (*View, error) {
	m, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, err
	}
	return &View{Member: *m, Status: StatusOf(m.ExpiryDate, s.now())}, nil
}

func (s *service) UpdateProfile(ctx context.Context, gymID, id string, req UpdateProfileRequest) (*Member, error) {
	m, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, err
	}

	m.Name = req.Name
	if req.Email != "" {
		m.Email = req.Email
	}
	m.Age = req.Age
	m.Weight = req.Weight
	m.Height = req.Height
	m.Address = req.Address
	m.Password = req.Password
	if req.ProfilePhoto != "" {
		m.ProfilePhoto = req.ProfilePhoto
	}

	if err := s.repo.Update(ctx, *m); err != nil {
		return nil, err
	}
	return m, nil
}

// resolveFee looks up the tenant's tiered price for exact plan lengths and
// linearly prorates from the one-month price for everything else.
func resolveFee(p gym.Pricing, days int) float64 {
	switch days {
	case 30:
		return p.OneMonth
	case 60:
		return p.TwoMonths
	case 90:
		return p.ThreeMonths
	case 180:
		return p.SixMonths
	case 365:
		return p.TwelveMonths
	default:
		return math.Round(p.OneMonth / 30 * float64(days))
	}
}

func (s *service) ExtendPlan(ctx context.Context, gymID, id string, days int, fee *float64) (*Member, float64, error) {
	if days <= 0 {
		return nil, 0, ErrInvalidDays
	}

	g, err := s.gyms.GetByID(ctx, gymID)
	if err != nil {
		return nil, 0, gym.ErrNotFound
	}

	m, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, 0, err
	}

	// Extensions never shorten an active plan and never backdate an expired
	// one: the new expiry counts from whichever is later, current expiry or
	// now.
	now := s.now()
	base := m.ExpiryDate
	if now.After(base) {
		base = now
	}
	m.ExpiryDate = base.Add(time.Duration(days) * 24 * time.Hour)
	m.PlanDurationDays = days

	amount := resolveFee(g.Pricing, days)
	if fee != nil {
		amount = *fee
	}

	if _, err := s.ledger.Record(ctx, gymID, amount, ledger.CategoryMembership,
		"Manager", fmt.Sprintf("Extension: %d days for %s", days, m.Name)); err != nil {
		return nil, 0, err
	}

	if err := s.repo.Update(ctx, *m); err != nil {
		return nil, 0, err
	}

	metrics.PlanExtensionsTotal.Inc()
	return m, amount, nil
}

func (s *service) AddSupplement(ctx context.Context, gymID, id string, req SupplementRequest) (*Member, error) {
	m, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, err
	}

	bill := SupplementBill{
		ID:       "SUP-" + uuid.NewString(),
		ItemName: req.ItemName,
		Qty:      req.Qty,
		Days:     req.Days,
		Amount:   req.Amount,
		Date:     s.now(),
	}
	m.SupplementBills = append(m.SupplementBills, bill)

	if _, err := s.ledger.Record(ctx, gymID, req.Amount, ledger.CategorySupplement,
		"Manager", fmt.Sprintf("Supplement: %s x %d for %s", req.ItemName, req.Qty, m.Name)); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, *m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) SetPhoto(ctx context.Context, gymID, id string, req PhotoUploadRequest) (*Member, error) {
	m, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, err
	}

	switch req.Kind {
	case "profile":
		m.ProfilePhoto = req.Data
	case "before":
		m.TransformationPhotos.Before = req.Data
	case "after":
		m.TransformationPhotos.After = req.Data
	default:
		return nil, ErrInvalidPhoto
	}

	if err := s.repo.Update(ctx, *m); err != nil {
		return nil, err
	}
	return m, nil
}
