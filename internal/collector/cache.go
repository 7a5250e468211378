package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"SignalSentinel/internal/model"

	goredis "github.com/go-redis/redis/v8"
)

// Cache stores fetched bars by key.
type Cache interface {
	Get(ctx context.Context, key string) ([]model.OHLCV, bool, error)
	Set(ctx context.Context, key string, bars []model.OHLCV, ttl time.Duration) error
}

// CachedFetcher serves bars from Cache and falls through to Fetcher on a miss.
type CachedFetcher struct {
	Fetcher Fetcher
	Cache   Cache
	TTL     time.Duration
}

// NewCachedFetcher wraps fetcher with cache.
func NewCachedFetcher(fetcher Fetcher, cache Cache, ttl time.Duration) *CachedFetcher {
	return &CachedFetcher{Fetcher: fetcher, Cache: cache, TTL: ttl}
}

func (f *CachedFetcher) Name() string { return f.Fetcher.Name() + "+cache" }

func (f *CachedFetcher) FetchBars(ctx context.Context, symbol, period string) ([]model.OHLCV, error) {
	key := fmt.Sprintf("bars:%s:%s:%s", f.Fetcher.Name(), symbol, period)
	bars, ok, err := f.Cache.Get(ctx, key)
	if err != nil {
		log.Printf("[WARN] cache get %s: %v", key, err)
	} else if ok {
		return bars, nil
	}

	bars, err = f.Fetcher.FetchBars(ctx, symbol, period)
	if err != nil {
		return nil, err
	}
	if len(bars) > 0 {
		if err := f.Cache.Set(ctx, key, bars, f.TTL); err != nil {
			log.Printf("[WARN] cache set %s: %v", key, err)
		}
	}
	return bars, nil
}

type memoryEntry struct {
	bars      []model.OHLCV
	expiresAt time.Time
}

// MemoryCache implements Cache using in-memory storage.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache creates a new in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry), now: time.Now}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]model.OHLCV, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || (!e.expiresAt.IsZero() && c.now().After(e.expiresAt)) {
		return nil, false, nil
	}
	// Return a copy to prevent external modifications
	out := make([]model.OHLCV, len(e.bars))
	copy(out, e.bars)
	return out, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, bars []model.OHLCV, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := make([]model.OHLCV, len(bars))
	copy(stored, bars)
	e := memoryEntry{bars: stored}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.entries[key] = e
	return nil
}

// cachedBar is the JSON shape stored in Redis.
type cachedBar struct {
	Time   int64   `json:"t"`
	Open   float64 `json:"o"`
	High   float64 `json:"h"`
	Low    float64 `json:"l"`
	Close  float64 `json:"c"`
	Volume float64 `json:"v"`
}

// RedisCache implements Cache on a Redis string key per entry.
type RedisCache struct {
	client *goredis.Client
}

// NewRedisCache connects to addr and pings the server.
func NewRedisCache(addr, password string, db int) (*RedisCache, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	log.Printf("[INFO] redis cache connected to %s", addr)
	return &RedisCache{client: client}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]model.OHLCV, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var cached []cachedBar
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false, fmt.Errorf("decode cached bars: %w", err)
	}
	bars := make([]model.OHLCV, len(cached))
	for i, b := range cached {
		bars[i] = model.OHLCV{
			Time:   time.Unix(b.Time, 0).UTC(),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	return bars, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, bars []model.OHLCV, ttl time.Duration) error {
	cached := make([]cachedBar, len(bars))
	for i, b := range bars {
		cached[i] = cachedBar{
			Time:   b.Time.Unix(),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("encode bars: %w", err)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
