package cache

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "crm:"

// Store is a Redis-backed read-through cache for collection listings and
// detail reads. Keys are grouped by collection so a write to one entity type
// can drop every cached read of the collections it touches. A nil Store (or
// a Store without a client) is safe to call and degrades to direct DB reads.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// BuildClient returns a connected Redis client or nil when addr is empty or
// the server is unreachable.
func BuildClient(ctx context.Context, addr, password string) *redis.Client {
	if strings.TrimSpace(addr) == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}

// CollectionKey builds a deterministic cache key for a collection read.
// Params are sorted so the same query always maps to the same key.
func CollectionKey(collection string, params map[string]string) string {
	if len(params) == 0 {
		return keyPrefix + collection
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(keyPrefix)
	b.WriteString(collection)
	for _, name := range names {
		b.WriteByte(':')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(params[name])
	}
	return b.String()
}

// DetailKey builds the cache key for a single entity read, e.g. "leads/L1".
func DetailKey(collection, id string) string {
	return keyPrefix + collection + "/" + id
}

// Get loads a cached value into dest, reporting whether it was present.
func (s *Store) Get(ctx context.Context, key string, dest any) bool {
	if s == nil || s.client == nil {
		return false
	}
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// Set stores a value under key with the configured TTL. Failures are
// ignored; the cache is best-effort.
func (s *Store) Set(ctx context.Context, key string, v any) {
	if s == nil || s.client == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.client.Set(ctx, key, raw, s.ttl)
}

// InvalidateCollections drops every cached read of the named collections,
// detail keys included.
func (s *Store) InvalidateCollections(ctx context.Context, collections ...string) {
	if s == nil || s.client == nil {
		return
	}
	for _, collection := range collections {
		s.deleteByPattern(ctx, keyPrefix+collection)
		s.deleteByPattern(ctx, keyPrefix+collection+":*")
		s.deleteByPattern(ctx, keyPrefix+collection+"/*")
	}
}

// InvalidateKey drops a single cache entry.
func (s *Store) InvalidateKey(ctx context.Context, key string) {
	if s == nil || s.client == nil {
		return
	}
	s.client.Del(ctx, key)
}

func (s *Store) deleteByPattern(ctx context.Context, pattern string) {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return
		}
		if len(keys) > 0 {
			s.client.Del(ctx, keys...)
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}
