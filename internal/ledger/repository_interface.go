package ledger

import "context"

type Repository interface {
	ListByGym(ctx context.Context, gymID string) ([]PaymentRecord, error)
	Append(ctx context.Context, record PaymentRecord) error
}
