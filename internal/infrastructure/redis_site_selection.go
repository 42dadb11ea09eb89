package infrastructure

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// RedisSiteSelectionStore stores admin site selections in Redis so every API
// node resolves the same selection.
type RedisSiteSelectionStore struct {
	client *redis.Client
}

func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func NewRedisSiteSelectionStore(client *redis.Client) *RedisSiteSelectionStore {
	return &RedisSiteSelectionStore{client: client}
}

func selectionKey(adminID uuid.UUID) string {
	return fmt.Sprintf("currentsite:%s", adminID)
}

func (s *RedisSiteSelectionStore) Get(ctx context.Context, adminID uuid.UUID) (uuid.UUID, bool, error) {
	val, err := s.client.Get(ctx, selectionKey(adminID)).Result()
	if err == redis.Nil {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	siteID, err := uuid.Parse(val)
	if err != nil {
		// A corrupt value is treated as no selection.
		return uuid.Nil, false, nil
	}
	return siteID, true, nil
}

func (s *RedisSiteSelectionStore) Set(ctx context.Context, adminID, siteID uuid.UUID) error {
	return s.client.Set(ctx, selectionKey(adminID), siteID.String(), 0).Err()
}
