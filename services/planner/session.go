package planner

import (
	"context"
	"sync"

	"github.com/go-redis/redis/v8"

	"tripforge/utils"
)

// RedisSessionStore keeps the backend session identifier in Redis under a
// fixed key per planning session, surviving process restarts.
type RedisSessionStore struct {
	client *redis.Client
	key    string
}

// NewRedisSessionStore returns a store scoped to one planning session.
func NewRedisSessionStore(client *redis.Client, planningSessionID string) *RedisSessionStore {
	return &RedisSessionStore{client: client, key: utils.PlannerSessionPrefix + planningSessionID}
}

func (s *RedisSessionStore) Get(ctx context.Context) (string, error) {
	id, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, id string) error {
	return s.client.Set(ctx, s.key, id, utils.PlannerSessionTTL).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

// MemorySessionStore is the in-process session store used in mock mode and
// in tests.
type MemorySessionStore struct {
	mu sync.RWMutex
	id string
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Get(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id, nil
}

func (s *MemorySessionStore) Set(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
	return nil
}

func (s *MemorySessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = ""
	return nil
}
