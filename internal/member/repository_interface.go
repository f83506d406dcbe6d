package member

import "context"

type Repository interface {
	ListByGym(ctx context.Context, gymID string) ([]Member, error)
	GetByID(ctx context.Context, gymID, id string) (*Member, error)
	FindByIDOrPhone(ctx context.Context, gymID, identifier string) (*Member, error)
	Insert(ctx context.Context, m Member) error
	Update(ctx context.Context, m Member) error
}
