package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"dataquality/internal/domain"
	"dataquality/internal/port"
)

const scanBatch = 500

// Store is the response cache. Redis is the primary backend; whenever it is absent or
// failing, reads and writes go to the in-process MemoryStore instead.
type Store struct {
	redis    redis.UniversalClient
	memory   *MemoryStore
	ttl      time.Duration
	degraded atomic.Bool
}

var _ port.ResponseCache = (*Store)(nil)

// NewStore creates a Store. client may be nil, in which case only memory is used.
func NewStore(client redis.UniversalClient, memory *MemoryStore, ttl time.Duration) *Store {
	return &Store{redis: client, memory: memory, ttl: ttl}
}

// TTL returns the default entry lifetime.
func (s *Store) TTL() time.Duration { return s.ttl }

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.redis != nil {
		val, err := s.redis.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			s.markHealthy()
			return val, true, nil
		case errors.Is(err, redis.Nil):
			s.markHealthy()
			// A value written while redis was down may still sit in memory.
			return s.memory.Get(ctx, key)
		default:
			s.markDegraded("Get", err)
		}
	}
	return s.memory.Get(ctx, key)
}

func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.ttl
	}
	if s.redis != nil {
		err := s.redis.Set(ctx, key, value, ttl).Err()
		if err == nil {
			s.markHealthy()
			return nil
		}
		s.markDegraded("Set", err)
	}
	return s.memory.Set(ctx, key, value, ttl)
}

// Clear removes matching keys from both backends. A redis failure is reported after the
// memory store has been cleared.
func (s *Store) Clear(ctx context.Context, prefix string) (int, error) {
	removed, _ := s.memory.Clear(ctx, prefix)
	if s.redis == nil {
		return removed, nil
	}

	n, err := s.clearRedis(ctx, prefix)
	if err != nil {
		s.markDegraded("Clear", err)
		return removed, fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	s.markHealthy()
	return removed + n, nil
}

func (s *Store) clearRedis(ctx context.Context, prefix string) (int, error) {
	removed := 0
	var cursor uint64
	for {
		keys, next, err := s.redis.Scan(ctx, cursor, prefix+"*", scanBatch).Result()
		if err != nil {
			return removed, err
		}
		if len(keys) > 0 {
			n, err := s.redis.Del(ctx, keys...).Result()
			if err != nil {
				return removed, err
			}
			removed += int(n)
		}
		if next == 0 {
			return removed, nil
		}
		cursor = next
	}
}

func (s *Store) Stats(ctx context.Context) domain.CacheStats {
	stats := s.memory.Stats(ctx)
	stats.TTL = s.ttl.String()
	if s.redis == nil {
		return stats
	}

	size, err := s.redis.DBSize(ctx).Result()
	if err != nil {
		s.markDegraded("Stats", err)
		stats.Backend = "memory (redis unavailable)"
		return stats
	}
	s.markHealthy()
	return domain.CacheStats{
		Backend:   "redis",
		Available: true,
		Keys:      int(size),
		TTL:       s.ttl.String(),
	}
}

// Ping reports whether the primary backend answers. Without redis it always succeeds.
func (s *Store) Ping(ctx context.Context) error {
	if s.redis == nil {
		return nil
	}
	if err := s.redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	return nil
}

func (s *Store) markDegraded(op string, err error) {
	if !s.degraded.Swap(true) {
		log.Printf("cache.Store.%s: redis unavailable, falling back to memory: %v", op, err)
	}
}

func (s *Store) markHealthy() {
	if s.degraded.Swap(false) {
		log.Printf("cache.Store: redis available again")
	}
}
