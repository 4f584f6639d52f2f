// Package cache is a read-through cache for analysis results, keyed by the
// content hash so re-uploading the same file skips the remote call.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"grc-docengine/internal/analysis"
	"grc-docengine/internal/catalog"
	"grc-docengine/internal/common/logger"
)

// AnalysisCache stores analysis results in Redis with a TTL. All methods are
// best effort: cache misses and Redis failures look the same to the caller.
type AnalysisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func New(client *redis.Client, ttl time.Duration, log logger.Logger) *AnalysisCache {
	return &AnalysisCache{
		client: client,
		ttl:    ttl,
		logger: log.With(map[string]interface{}{"component": "analysis-cache"}),
	}
}

// Key derives the cache key from module type and document content.
func Key(moduleType catalog.ModuleType, content string) string {
	sum := sha256.Sum256([]byte(content))
	return fmt.Sprintf("analysis:%s:%s", moduleType, hex.EncodeToString(sum[:8]))
}

// Get returns the cached result or nil on miss or error.
func (c *AnalysisCache) Get(ctx context.Context, key string) *analysis.Result {
	if c == nil || c.client == nil {
		return nil
	}

	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache read failed", map[string]interface{}{"key": key, "error": err.Error()})
		}
		return nil
	}

	var result analysis.Result
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		c.logger.Warn("cache entry corrupt, ignoring", map[string]interface{}{"key": key})
		return nil
	}
	return &result
}

// Put stores a result, logging but swallowing failures.
func (c *AnalysisCache) Put(ctx context.Context, key string, result *analysis.Result) {
	if c == nil || c.client == nil || result == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}
