package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const cacheTTL = time.Minute

// Cache keeps recently computed reports in redis for a short while. It is
// best effort: any redis failure is logged and treated as a miss.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func cacheKey(ownerID string) string {
	return fmt.Sprintf("progress::%s", ownerID)
}

func (c *Cache) Get(ctx context.Context, ownerID string) (*Report, bool) {
	raw, err := c.client.Get(ctx, cacheKey(ownerID)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Warnf("progress cache get for owner [%s]: %s", ownerID, err)
		return nil, false
	}

	var report Report
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		log.Warnf("progress cache unmarshal for owner [%s]: %s", ownerID, err)
		return nil, false
	}
	return &report, true
}

func (c *Cache) Set(ctx context.Context, ownerID string, report *Report) {
	raw, err := json.Marshal(report)
	if err != nil {
		log.Warnf("progress cache marshal for owner [%s]: %s", ownerID, err)
		return
	}
	if err := c.client.Set(ctx, cacheKey(ownerID), string(raw), cacheTTL).Err(); err != nil {
		log.Warnf("progress cache set for owner [%s]: %s", ownerID, err)
	}
}

// Invalidate drops the owner's cached report so the next read recomputes
// it; the session recording path calls this to not serve a pre-session
// report for up to a TTL. Safe on a nil cache (no redis configured).
func (c *Cache) Invalidate(ctx context.Context, ownerID string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, cacheKey(ownerID)).Err(); err != nil {
		log.Warnf("progress cache invalidate for owner [%s]: %s", ownerID, err)
	}
}
