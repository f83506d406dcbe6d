package gym

import "context"

type Repository interface {
	List(ctx context.Context) ([]Gym, error)
	GetByID(ctx context.Context, id string) (*Gym, error)
	SaveAll(ctx context.Context, gyms []Gym) error
	Insert(ctx context.Context, g Gym) error
	Update(ctx context.Context, g Gym) error
	Delete(ctx context.Context, id string) error
}
