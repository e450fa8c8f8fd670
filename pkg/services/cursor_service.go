package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/shu-assistant/shu/pkg/host"
)

// cursorKey builds the Redis key for one cursor scope.
func cursorKey(pluginName, userID, scope string) string {
	return strings.Join([]string{"shu", "cursor", pluginName, userID, scope}, ":")
}

// RedisCursorStore persists feed cursors in Redis so cursors survive process
// restarts and are shared across pods.
type RedisCursorStore struct {
	rdb *redis.Client
}

var _ host.CursorStore = (*RedisCursorStore)(nil)

// NewRedisCursorStore creates a Redis-backed cursor store.
func NewRedisCursorStore(rdb *redis.Client) *RedisCursorStore {
	return &RedisCursorStore{rdb: rdb}
}

// Get reads a cursor.
func (s *RedisCursorStore) Get(ctx context.Context, pluginName, userID, scope string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, cursorKey(pluginName, userID, scope)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading cursor: %w", err)
	}
	return val, true, nil
}

// Set writes a cursor. Cursors have no TTL; they live until deleted.
func (s *RedisCursorStore) Set(ctx context.Context, pluginName, userID, scope, value string) error {
	if err := s.rdb.Set(ctx, cursorKey(pluginName, userID, scope), value, 0).Err(); err != nil {
		return fmt.Errorf("writing cursor: %w", err)
	}
	return nil
}

// Delete removes a cursor.
func (s *RedisCursorStore) Delete(ctx context.Context, pluginName, userID, scope string) error {
	if err := s.rdb.Del(ctx, cursorKey(pluginName, userID, scope)).Err(); err != nil {
		return fmt.Errorf("deleting cursor: %w", err)
	}
	return nil
}

// MemoryCursorStore is the in-process fallback used when Redis is not
// configured. Cursors are lost on restart.
type MemoryCursorStore struct {
	mu      sync.RWMutex
	cursors map[string]string
}

var _ host.CursorStore = (*MemoryCursorStore)(nil)

// NewMemoryCursorStore creates an in-memory cursor store.
func NewMemoryCursorStore() *MemoryCursorStore {
	return &MemoryCursorStore{cursors: make(map[string]string)}
}

// Get reads a cursor.
func (s *MemoryCursorStore) Get(_ context.Context, pluginName, userID, scope string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.cursors[cursorKey(pluginName, userID, scope)]
	return val, ok, nil
}

// Set writes a cursor.
func (s *MemoryCursorStore) Set(_ context.Context, pluginName, userID, scope, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursors[cursorKey(pluginName, userID, scope)] = value
	return nil
}

// Delete removes a cursor.
func (s *MemoryCursorStore) Delete(_ context.Context, pluginName, userID, scope string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cursors, cursorKey(pluginName, userID, scope))
	return nil
}
