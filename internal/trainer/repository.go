package trainer

import (
	"context"

	"gympro/internal/storage"
)

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) listAll(ctx context.Context) ([]Trainer, error) {
	var trainers []Trainer
	if _, err := storage.LoadCollection(ctx, r.store, storage.KeyTrainers, &trainers); err != nil {
		return nil, err
	}
	return trainers, nil
}

func (r *repository) ListByGym(ctx context.Context, gymID string) ([]Trainer, error) {
	all, err := r.listAll(ctx)
	if err != nil {
		return nil, err
	}
	scoped := make([]Trainer, 0, len(all))
	for _, t := range all {
		if t.GymID == gymID {
			scoped = append(scoped, t)
		}
	}
	return scoped, nil
}

func (r *repository) Insert(ctx context.Context, t Trainer) error {
	all, err := r.listAll(ctx)
	if err != nil {
		return err
	}
	all = append(all, t)
	return storage.SaveCollection(ctx, r.store, storage.KeyTrainers, all)
}
