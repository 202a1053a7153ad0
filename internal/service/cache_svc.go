package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis key TTLs. Summaries are immutable once stored, so the short TTL
// only bounds memory; channel listings go stale as channels upload.
const (
	SummaryCacheTTL       = 5 * time.Minute
	ChannelVideosCacheTTL = 15 * time.Minute
)

// CacheService provides a Redis cache-aside layer for summarize and
// channel-video responses.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or connection
// fails, it returns a CacheService with a nil client (cache operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetSummary retrieves a cached summarize response for a video ID.
// Returns nil if not cached or cache is disabled.
func (c *CacheService) GetSummary(ctx context.Context, videoID string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, summaryKey(videoID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetSummary stores a summarize response in cache.
func (c *CacheService) SetSummary(ctx context.Context, videoID string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, summaryKey(videoID), b, SummaryCacheTTL).Err()
}

// InvalidateSummary removes a video's cached response (called after an
// admin delete so the next request recomputes).
func (c *CacheService) InvalidateSummary(ctx context.Context, videoID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, summaryKey(videoID)).Err()
}

// GetChannelVideos retrieves a cached channel listing. Returns nil if not cached.
func (c *CacheService) GetChannelVideos(ctx context.Context, channelID string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, channelVideosKey(channelID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetChannelVideos stores a channel listing in cache.
func (c *CacheService) SetChannelVideos(ctx context.Context, channelID string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, channelVideosKey(channelID), b, ChannelVideosCacheTTL).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func summaryKey(videoID string) string {
	return fmt.Sprintf("summary:%s", videoID)
}

func channelVideosKey(channelID string) string {
	return fmt.Sprintf("channelvideos:%s", channelID)
}
