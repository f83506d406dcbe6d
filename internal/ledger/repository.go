package ledger

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

// listAll reads the mixed-tenant ledger. Callers outside this file always go
// through the gym-scoped view.
func (r *repository) listAll(ctx context.Context) ([]PaymentRecord, error) {
	var records []PaymentRecord
	if _, err := storage.LoadCollection(ctx, r.store, storage.KeyTransactions, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) ListByGym(ctx context.Context, gymID string) ([]PaymentRecord, error) {
	all, err := r.listAll(ctx)
	if err != nil {
		return nil, err
	}
	scoped := make([]PaymentRecord, 0, len(all))
	for _, rec := range all {
		if rec.GymID == gymID {
			scoped = append(scoped, rec)
		}
	}
	return scoped, nil
}

func (r *repository) Append(ctx context.Context, record PaymentRecord) error {
	all, err := r.listAll(ctx)
	if err != nil {
		return err
	}
	all = append(all, record)
	return storage.SaveCollection(ctx, r.store, storage.KeyTransactions, all)
}
