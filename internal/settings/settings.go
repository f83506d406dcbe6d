// Package settings holds the platform-wide singleton configuration record.
package settings

import (
	"context"

	"gympro/internal/storage"
)

type Settings struct {
	AutoNotifyWhatsApp bool   `json:"autoNotifyWhatsApp"`
	GymName            string `json:"gymName"`
}

func defaults() Settings {
	return Settings{AutoNotifyWhatsApp: false, GymName: "GymPro"}
}

type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s Settings) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Get(ctx context.Context) (*Settings, error) {
	var s Settings
	found, err := storage.LoadCollection(ctx, r.store, storage.KeySettings, &s)
	if err != nil {
		return nil, err
	}
	if !found {
		d := defaults()
		return &d, nil
	}
	return &s, nil
}

func (r *repository) Save(ctx context.Context, s Settings) error {
	return storage.SaveCollection(ctx, r.store, storage.KeySettings, s)
}
