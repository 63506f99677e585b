package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"vetsoft/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RateStore counts hits per key inside fixed windows. Hit returns the count
// including this request and the moment the current window closes.
type RateStore interface {
	Hit(ctx context.Context, key string, window time.Duration) (int, time.Time, error)
}

// RateLimiter rejects a client IP with 429 once it exceeds limit requests in
// window. Store failures let the request through.
func RateLimiter(store RateStore, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, resetAt, err := store.Hit(c.Request.Context(), c.ClientIP(), window)
		if err != nil {
			log.Warn().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("rate limiter store unavailable")
			c.Next()
			return
		}

		if count > limit {
			retry := int(time.Until(resetAt).Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}

// ── In-process store ─────────────────────────────────────────────────────────

type rateEntry struct {
	count     int
	windowEnd time.Time
}

// MemoryRateStore keeps counters in a map; suitable for a single instance.
type MemoryRateStore struct {
	mu      sync.Mutex
	entries map[string]*rateEntry
	now     func() time.Time
}

func NewMemoryRateStore() *MemoryRateStore {
	return &MemoryRateStore{entries: make(map[string]*rateEntry), now: time.Now}
}

func (s *MemoryRateStore) Hit(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, ok := s.entries[key]
	if !ok || now.After(entry.windowEnd) {
		entry = &rateEntry{windowEnd: now.Add(window)}
		s.entries[key] = entry
	}
	entry.count++
	return entry.count, entry.windowEnd, nil
}

// Purge drops expired entries so IPs that never return do not accumulate.
func (s *MemoryRateStore) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	purged := 0
	for key, entry := range s.entries {
		if now.After(entry.windowEnd) {
			delete(s.entries, key)
			purged++
		}
	}
	return purged
}

// RunPurge calls Purge every interval until ctx is cancelled.
func (s *MemoryRateStore) RunPurge(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Purge(); n > 0 {
				log.Debug().Int("entries_purged", n).Msg("rate limiter entries purged")
			}
		}
	}
}

// ── Redis store ──────────────────────────────────────────────────────────────

// RedisRateStore shares counters across instances through INCR + EXPIRE.
type RedisRateStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisRateStore(rdb *redis.Client) *RedisRateStore {
	return &RedisRateStore{rdb: rdb, prefix: "vetsoft:rl:"}
}

func (s *RedisRateStore) Hit(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	k := s.prefix + key

	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, window)
	ttl := pipe.PTTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}

	remaining := ttl.Val()
	if remaining < 0 {
		remaining = window
	}
	return int(incr.Val()), time.Now().Add(remaining), nil
}
