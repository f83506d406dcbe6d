package gym

import (
	"context"
	"time"

	"gympro/internal/storage"
)

// seedGyms returns the demo tenant installed when the gym collection has
// never been written. Mirrors the stock record shipped with the platform.
func seedGyms(now time.Time) []Gym {
	return []Gym{
		{
			ID:                   "GYM001",
			Name:                 "Iron Paradise",
			Address:              "123 Muscle Street, BKC",
			City:                 "Mumbai",
			IDProof:              "REG-12345-IN",
			Password:             "admin",
			Status:               StatusActive,
			CreatedAt:            now,
			SubscriptionPlanDays: 365,
			SubscriptionExpiry:   now.AddDate(0, 0, 365),
			TermsAndConditions:   "1. Membership is non-refundable. 2. Proper gym attire is required. 3. Re-rack weights after use.",
			Pricing: Pricing{
				OneMonth:     1500,
				TwoMonths:    2800,
				ThreeMonths:  4000,
				SixMonths:    7000,
				TwelveMonths: 12000,
			},
			SubscriptionDue: 0,
			LastPaymentDate: now,
		},
	}
}

type repository struct {
	store storage.Store
	now   func() time.Time
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store, now: time.Now}
}

func (r *repository) List(ctx context.Context) ([]Gym, error) {
	var gyms []Gym
	found, err := storage.LoadCollection(ctx, r.store, storage.KeyGyms, &gyms)
	if err != nil {
		return nil, err
	}
	if !found {
		return seedGyms(r.now()), nil
	}
	return gyms, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Gym, error) {
	gyms, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range gyms {
		if gyms[i].ID == id {
			return &gyms[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *repository) SaveAll(ctx context.Context, gyms []Gym) error {
	return storage.SaveCollection(ctx, r.store, storage.KeyGyms, gyms)
}

func (r *repository) Insert(ctx context.Context, g Gym) error {
	gyms, err := r.List(ctx)
	if err != nil {
		return err
	}
	gyms = append(gyms, g)
	return r.SaveAll(ctx, gyms)
}

func (r *repository) Update(ctx context.Context, g Gym) error {
	gyms, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range gyms {
		if gyms[i].ID == g.ID {
			gyms[i] = g
			return r.SaveAll(ctx, gyms)
		}
	}
	return ErrNotFound
}

// Delete removes the tenant record only. Members and ledger entries that
// reference the gym are left in place and become unreachable through login.
func (r *repository) Delete(ctx context.Context, id string) error {
	gyms, err := r.List(ctx)
	if err != nil {
		return err
	}
	remaining := make([]Gym, 0, len(gyms))
	removed := false
	for _, g := range gyms {
		if g.ID == id {
			removed = true
			continue
		}
		remaining = append(remaining, g)
	}
	if !removed {
		return ErrNotFound
	}
	return r.SaveAll(ctx, remaining)
}
