package gym

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gympro/internal/metrics"
)

var (
	ErrNotFound    = errors.New("gym not found")
	ErrInvalidDate = errors.New("invalid join date")
	ErrDuplicateID = errors.New("gym id already exists")
)

const joinDateLayout = "2006-01-02"

// defaultTerms is applied to freshly created tenants until the manager edits
// them.
const defaultTerms = "Standard Gym Terms Applied."

// initialSubscriptionDue is seeded on every new tenant account.
const initialSubscriptionDue = 100

type Service interface {
	Create(ctx context.Context, req CreateGymRequest) (*Gym, error)
	Update(ctx context.Context, id string, req UpdateGymRequest) (*Gym, error)
	ToggleStatus(ctx context.Context, id string) (*Gym, error)
	Delete(ctx context.Context, id string) error
	UpdateTerms(ctx context.Context, id, terms string) (*Gym, error)
	List(ctx context.Context) ([]Gym, error)
	GetByID(ctx context.Context, id string) (*Gym, error)
	Stats(ctx context.Context) (*PlatformStats, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

// generateID builds a short tenant id from the current clock, the same
// "GYM" + millisecond-suffix scheme managers already know.
func (s *service) generateID() string {
	ms := strconv.FormatInt(s.now().UnixMilli(), 10)
	return "GYM" + ms[len(ms)-4:]
}

func (s *service) Create(ctx context.Context, req CreateGymRequest) (*Gym, error) {
	joinDate, err := time.Parse(joinDateLayout, req.JoinDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	id := req.ID
	if id == "" {
		id = s.generateID()
	} else if _, err := s.repo.GetByID(ctx, id); err == nil {
		return nil, ErrDuplicateID
	}

	g := Gym{
		ID:                   id,
		Name:                 req.Name,
		Address:              req.Address,
		City:                 req.City,
		IDProof:              req.IDProof,
		Password:             req.Password,
		Status:               StatusActive,
		CreatedAt:            joinDate,
		SubscriptionPlanDays: req.PlanDays,
		SubscriptionExpiry:   joinDate.AddDate(0, 0, req.PlanDays),
		TermsAndConditions:   defaultTerms,
		Pricing:              req.Pricing,
		SubscriptionDue:      initialSubscriptionDue,
		LastPaymentDate:      s.now(),
	}

	if err := s.repo.Insert(ctx, g); err != nil {
		return nil, err
	}

	metrics.GymsTotal.WithLabelValues(string(StatusActive)).Inc()
	return &g, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateGymRequest) (*Gym, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	joinDate, err := time.Parse(joinDateLayout, req.JoinDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	g.Name = req.Name
	g.Address = req.Address
	g.City = req.City
	g.IDProof = req.IDProof
	g.Password = req.Password
	g.Pricing = req.Pricing
	g.CreatedAt = joinDate
	g.SubscriptionPlanDays = req.PlanDays
	// Expiry always tracks joinDate + planDays; it is never set directly.
	g.SubscriptionExpiry = joinDate.AddDate(0, 0, req.PlanDays)

	if err := s.repo.Update(ctx, *g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) ToggleStatus(ctx context.Context, id string) (*Gym, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if g.Status == StatusActive {
		g.Status = StatusPaused
		metrics.GymsTotal.WithLabelValues(string(StatusActive)).Dec()
		metrics.GymsTotal.WithLabelValues(string(StatusPaused)).Inc()
	} else {
		g.Status = StatusActive
		metrics.GymsTotal.WithLabelValues(string(StatusPaused)).Dec()
		metrics.GymsTotal.WithLabelValues(string(StatusActive)).Inc()
	}

	if err := s.repo.Update(ctx, *g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.GymsTotal.WithLabelValues(string(g.Status)).Dec()
	return nil
}

// SeedMetrics sets the tenant gauge from the persisted collection, so the
// gauge survives restarts instead of starting from zero.
func SeedMetrics(ctx context.Context, repo Repository) error {
	gyms, err := repo.List(ctx)
	if err != nil {
		return err
	}

	counts := map[Status]float64{}
	for _, g := range gyms {
		counts[g.Status]++
	}
	metrics.GymsTotal.WithLabelValues(string(StatusActive)).Set(counts[StatusActive])
	metrics.GymsTotal.WithLabelValues(string(StatusPaused)).Set(counts[StatusPaused])
	return nil
}

func (s *service) UpdateTerms(ctx context.Context, id, terms string) (*Gym, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	g.TermsAndConditions = terms
	if err := s.repo.Update(ctx, *g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) List(ctx context.Context) ([]Gym, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*Gym, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Stats(ctx context.Context) (*PlatformStats, error) {
	gyms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &PlatformStats{Total: len(gyms)}
	for _, g := range gyms {
		switch g.Status {
		case StatusActive:
			stats.Active++
		case StatusPaused:
			stats.Paused++
		}
		stats.Due += g.SubscriptionDue
	}
	return stats, nil
}
