package host

import (
	"container/list"
	"context"
	"fmt"
	"sync"
	"time"
)

// UnconfiguredError is returned when a granted capability has no backend
// wired at startup.
type UnconfiguredError struct {
	Capability string
}

func (e *UnconfiguredError) Error() string {
	return fmt.Sprintf("capability %q has no backend configured", e.Capability)
}

// Code returns the stable error code for structured results.
func (e *UnconfiguredError) Code() string { return "capability_unconfigured" }

// SecretsStore is the external key-value secrets backend.
type SecretsStore interface {
	// Lookup resolves a secret for (pluginName, userID, key). userID may be
	// empty for plugin-global secrets.
	Lookup(ctx context.Context, pluginName, userID, key string) (string, bool, error)
}

// SecretsCapability is the plugin-scoped secrets view.
type SecretsCapability struct {
	store      SecretsStore
	pluginName string
	userID     string
}

// Get resolves a secret, preferring the user-scoped value over the
// plugin-global one.
func (s *SecretsCapability) Get(ctx context.Context, key string) (string, bool, error) {
	if s.store == nil {
		return "", false, nil
	}
	if val, ok, err := s.store.Lookup(ctx, s.pluginName, s.userID, key); err != nil || ok {
		return val, ok, err
	}
	return s.store.Lookup(ctx, s.pluginName, "", key)
}

// CursorStore persists opaque per-feed cursors.
type CursorStore interface {
	Get(ctx context.Context, pluginName, userID, scope string) (string, bool, error)
	Set(ctx context.Context, pluginName, userID, scope, value string) error
	Delete(ctx context.Context, pluginName, userID, scope string) error
}

// CursorCapability stores sync cursors keyed by KB or schedule.
type CursorCapability struct {
	store      CursorStore
	pluginName string
	userID     string
	scheduleID string
}

// scopeKey prefers an explicit KB key, falling back to the schedule id.
func (c *CursorCapability) scopeKey(key string) string {
	if key != "" {
		return key
	}
	return c.scheduleID
}

// Get reads the cursor for key (or the schedule scope when key is empty).
func (c *CursorCapability) Get(ctx context.Context, key string) (string, bool, error) {
	if c.store == nil {
		return "", false, nil
	}
	return c.store.Get(ctx, c.pluginName, c.userID, c.scopeKey(key))
}

// Set writes the cursor.
func (c *CursorCapability) Set(ctx context.Context, key, value string) error {
	if c.store == nil {
		return nil
	}
	return c.store.Set(ctx, c.pluginName, c.userID, c.scopeKey(key), value)
}

// Delete removes the cursor.
func (c *CursorCapability) Delete(ctx context.Context, key string) error {
	if c.store == nil {
		return nil
	}
	return c.store.Delete(ctx, c.pluginName, c.userID, c.scopeKey(key))
}

// CacheCapability is a bounded in-memory TTL cache scoped to one execution's
// plugin. Oldest entries are evicted when the bound is reached.
type CacheCapability struct {
	mu      sync.Mutex
	max     int
	entries map[string]*cacheEntry
	order   *list.List // front = oldest
	nowFn   func() time.Time
}

type cacheEntry struct {
	value     any
	expiresAt time.Time
	elem      *list.Element
}

func newCacheCapability(max int) *CacheCapability {
	if max <= 0 {
		max = 256
	}
	return &CacheCapability{
		max:     max,
		entries: make(map[string]*cacheEntry),
		order:   list.New(),
		nowFn:   time.Now,
	}
}

// Get returns the cached value if present and unexpired.
func (c *CacheCapability) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.nowFn().After(entry.expiresAt) {
		c.order.Remove(entry.elem)
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

// Set stores value with a TTL, evicting the oldest entry at capacity.
func (c *CacheCapability) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[key]; ok {
		c.order.Remove(entry.elem)
		delete(c.entries, key)
	}
	for len(c.entries) >= c.max {
		oldest := c.order.Front()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(string))
	}
	elem := c.order.PushBack(key)
	c.entries[key] = &cacheEntry{
		value:     value,
		expiresAt: c.nowFn().Add(ttl),
		elem:      elem,
	}
}

// Delete removes a key.
func (c *CacheCapability) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[key]; ok {
		c.order.Remove(entry.elem)
		delete(c.entries, key)
	}
}

// ObjectStore is the external per-plugin object storage backend.
type ObjectStore interface {
	Put(ctx context.Context, namespace, key string, data []byte) error
	Get(ctx context.Context, namespace, key string) ([]byte, bool, error)
	List(ctx context.Context, namespace, prefix string) ([]string, error)
	Delete(ctx context.Context, namespace, key string) error
}

// StorageCapability is the plugin-namespaced object store view.
type StorageCapability struct {
	store     ObjectStore
	namespace string
}

// Put stores an object under the plugin's namespace.
func (s *StorageCapability) Put(ctx context.Context, key string, data []byte) error {
	if s.store == nil {
		return &UnconfiguredError{Capability: CapStorage}
	}
	return s.store.Put(ctx, s.namespace, key, data)
}

// Get reads an object.
func (s *StorageCapability) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.store == nil {
		return nil, false, &UnconfiguredError{Capability: CapStorage}
	}
	return s.store.Get(ctx, s.namespace, key)
}

// List lists object keys by prefix.
func (s *StorageCapability) List(ctx context.Context, prefix string) ([]string, error) {
	if s.store == nil {
		return nil, &UnconfiguredError{Capability: CapStorage}
	}
	return s.store.List(ctx, s.namespace, prefix)
}

// Delete removes an object.
func (s *StorageCapability) Delete(ctx context.Context, key string) error {
	if s.store == nil {
		return &UnconfiguredError{Capability: CapStorage}
	}
	return s.store.Delete(ctx, s.namespace, key)
}

// OCRService is the external text-extraction collaborator (PDF/OCR/DOCX).
type OCRService interface {
	ExtractText(ctx context.Context, data []byte, mode string) (string, error)
}

// OCRCapability extracts text from bytes using the mode bound from the
// execution context.
type OCRCapability struct {
	service OCRService
	mode    string
}

// ExtractText runs extraction with the bound mode.
func (o *OCRCapability) ExtractText(ctx context.Context, data []byte) (string, error) {
	if o.service == nil {
		return "", &UnconfiguredError{Capability: CapOCR}
	}
	return o.service.ExtractText(ctx, data, o.mode)
}

// IdentityCapability exposes the executing user's canonical identity.
// Email visibility is host-controlled.
type IdentityCapability struct {
	userID      string
	email       string
	emailHidden bool
}

// UserID returns the canonical user id.
func (i *IdentityCapability) UserID() string { return i.userID }

// Email returns the user's email, or empty when hidden by host policy.
func (i *IdentityCapability) Email() string {
	if i.emailHidden {
		return ""
	}
	return i.email
}
