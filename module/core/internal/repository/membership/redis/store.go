package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Aravinth1228/safehaven/module/core/internal/repository/membership"
)

var _ membership.Store = (*Store)(nil)

// Store keeps containment flags in Redis so multiple server instances
// share the same membership table.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func key(touristID, zoneID string) string {
	return "membership:" + touristID + ":" + zoneID
}

func (s *Store) Get(ctx context.Context, touristID, zoneID string) (bool, error) {
	val, err := s.client.Get(ctx, key(touristID, zoneID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("membership get: %w", err)
	}
	return val == "1", nil
}

func (s *Store) Set(ctx context.Context, touristID, zoneID string, inside bool) error {
	val := "0"
	if inside {
		val = "1"
	}
	if err := s.client.Set(ctx, key(touristID, zoneID), val, 0).Err(); err != nil {
		return fmt.Errorf("membership set: %w", err)
	}
	return nil
}
