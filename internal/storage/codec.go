package storage

import (
	"context"
	"encoding/json"

	"gympro/internal/logger"
)

// LoadCollection unmarshals the value at key into out. An absent key leaves
// out untouched and returns false. A value that fails to parse is treated as
// corrupt: the key is cleared and out is left untouched, so callers fall back
// to their defaults without surfacing an error.
func LoadCollection(ctx context.Context, s Store, key string, out interface{}) (bool, error) {
	data, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		logger.Errorf("Discarding malformed value for key %s: %v", key, err)
		if delErr := s.Delete(ctx, key); delErr != nil {
			return false, delErr
		}
		return false, nil
	}

	return true, nil
}

// SaveCollection marshals v and writes it under key.
func SaveCollection(ctx context.Context, s Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, data)
}
