package trainer

import "context"

type Repository interface {
	ListByGym(ctx context.Context, gymID string) ([]Trainer, error)
	Insert(ctx context.Context, t Trainer) error
}
