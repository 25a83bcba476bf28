package ticketcache

import (
	"context"
	"encoding/json"
	"time"

	"flywise/models"
	"flywise/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const ticketKeyPrefix = "ticket:ctx:"

// RedisCache keeps ticket records in Redis with a native TTL, so expiry
// needs no sweeping of its own.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) key(phone string) string {
	return ticketKeyPrefix + utils.NormalizePhone(phone)
}

func (c *RedisCache) Store(ctx context.Context, phone string, ticket *models.TicketDetails, comparison *models.PriceComparison) error {
	record := newRecord(utils.NormalizePhone(phone), ticket, comparison, c.ttl)
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(phone), b, c.ttl).Err()
}

func (c *RedisCache) Get(ctx context.Context, phone string) (*models.TicketRecord, bool) {
	data, err := c.client.Get(ctx, c.key(phone)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		utils.GetLogger().Warn("Ticket cache read failed", zap.Error(err))
		return nil, false
	}
	var record models.TicketRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		// Corrupt entry reads as a miss and is removed.
		_ = c.client.Del(ctx, c.key(phone)).Err()
		return nil, false
	}
	if record.Expired() {
		_ = c.client.Del(ctx, c.key(phone)).Err()
		return nil, false
	}
	return &record, true
}

func (c *RedisCache) Clear(ctx context.Context, phone string) error {
	return c.client.Del(ctx, c.key(phone)).Err()
}

// CleanupExpired is a no-op for Redis; key TTLs handle expiry.
func (c *RedisCache) CleanupExpired(ctx context.Context) (int, error) {
	return 0, nil
}
