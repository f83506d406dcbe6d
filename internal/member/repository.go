package member

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

// listAll reads the mixed-tenant collection. Everything outside this file
// goes through the gym-scoped accessors so tenant filtering cannot be
// forgotten at a call site.
func (r *repository) listAll(ctx context.Context) ([]Member, error) {
	var members []Member
	if _, err := storage.LoadCollection(ctx, r.store, storage.KeyMembers, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *repository) saveAll(ctx context.Context, members []Member) error {
	return storage.SaveCollection(ctx, r.store, storage.KeyMembers, members)
}

func (r *repository) ListByGym(ctx context.Context, gymID string) ([]Member, error) {
	all, err := r.listAll(ctx)
	if err != nil {
		return nil, err
	}
	scoped := make([]Member, 0, len(all))
	for _, m := range all {
		if m.GymID == gymID {
			scoped = append(scoped, m)
		}
	}
	return scoped, nil
}

func (r *repository) GetByID(ctx context.Context, gymID, id string) (*Member, error) {
	members, err := r.ListByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].ID == id {
			return &members[i], nil
		}
	}
	return nil, ErrNotFound
}

// FindByIDOrPhone resolves the login identifier the way members type it: an
// explicit member id or a registered phone number, within one gym.
func (r *repository) FindByIDOrPhone(ctx context.Context, gymID, identifier string) (*Member, error) {
	members, err := r.ListByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].ID == identifier || members[i].Phone == identifier {
			return &members[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *repository) Insert(ctx context.Context, m Member) error {
	all, err := r.listAll(ctx)
	if err != nil {
		return err
	}
	all = append(all, m)
	return r.saveAll(ctx, all)
}

func (r *repository) Update(ctx context.Context, m Member) error {
	all, err := r.listAll(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == m.ID && all[i].GymID == m.GymID {
			all[i] = m
			return r.saveAll(ctx, all)
		}
	}
	return ErrNotFound
}
