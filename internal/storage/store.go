// Package storage provides the flat key-value persistence layer every
// repository sits on. Each collection lives under one fixed key as a JSON
// blob; backends only need Get/Set/Delete semantics.
package storage

import "context"

// Fixed storage keys. These names are part of the persisted layout and must
// not change between releases.
const (
	KeyGyms         = "gym_master_list"
	KeyMembers      = "gym_members"
	KeyTransactions = "gym_transactions"
	KeyTrainers     = "gym_trainers"
	KeySettings     = "gym_settings"
	KeySession      = "gym_auth"
)

// Store is a minimal key-value backend. Implementations: in-memory (tests),
// JSON file, Redis, Postgres.
type Store interface {
	// Get returns the raw value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
