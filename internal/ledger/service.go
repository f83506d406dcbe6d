package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"gympro/internal/metrics"
)

var ErrInvalidAmount = errors.New("amount must not be negative")

type Service interface {
	// Record appends a ledger entry for gymID dated now and returns it
	// with id and date filled in.
	Record(ctx context.Context, gymID string, amount float64, category Category, recordedBy, details string) (*PaymentRecord, error)
	// RecordAt is Record with an explicit entry date. Joining payments use
	// it so a backdated registration lands in the right rollup window.
	RecordAt(ctx context.Context, gymID string, date time.Time, amount float64, category Category, recordedBy, details string) (*PaymentRecord, error)
	ListByGym(ctx context.Context, gymID string) ([]PaymentRecord, error)
	Rollup(ctx context.Context, gymID string, window Window) (*Rollup, error)
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

func (s *service) Record(ctx context.Context, gymID string, amount float64, category Category, recordedBy, details string) (*PaymentRecord, error) {
	return s.RecordAt(ctx, gymID, s.now(), amount, category, recordedBy, details)
}

func (s *service) RecordAt(ctx context.Context, gymID string, date time.Time, amount float64, category Category, recordedBy, details string) (*PaymentRecord, error) {
	if amount < 0 {
		return nil, ErrInvalidAmount
	}

	record := PaymentRecord{
		ID:         "TX-" + uuid.NewString(),
		Date:       date,
		Amount:     amount,
		Method:     MethodOffline,
		RecordedBy: recordedBy,
		Category:   category,
		Details:    details,
		GymID:      gymID,
	}

	if err := s.repo.Append(ctx, record); err != nil {
		return nil, err
	}

	metrics.RecordRevenue(string(category), amount)
	return &record, nil
}

func (s *service) ListByGym(ctx context.Context, gymID string) ([]PaymentRecord, error) {
	return s.repo.ListByGym(ctx, gymID)
}

func (s *service) Rollup(ctx context.Context, gymID string, window Window) (*Rollup, error) {
	records, err := s.repo.ListByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := &Rollup{Transactions: []PaymentRecord{}}
	for _, rec := range records {
		if !window.Contains(rec.Date, now) {
			continue
		}
		result.Total += rec.Amount
		switch rec.Category {
		case CategoryMembership:
			result.Membership += rec.Amount
		case CategorySupplement:
			result.Supplements += rec.Amount
		}
		result.Transactions = append(result.Transactions, rec)
	}

	return result, nil
}
