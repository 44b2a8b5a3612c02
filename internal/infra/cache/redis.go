package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Metrics метрики обращений к кэшу
type Metrics interface {
	IncCacheRequest(kind, result string)
}

// minGenerationTTL минимальное время жизни счетчика поколений
const minGenerationTTL = 24 * time.Hour

// RedisCache кэш запросов в Redis, значения хранятся в JSON
type RedisCache struct {
	client  redis.UniversalClient
	prefix  string
	ttl     time.Duration
	metrics Metrics
}

// NewRedisCache создает кэш поверх клиента Redis.
// prefix добавляется ко всем ключам, ttl - время жизни записей.
func NewRedisCache(client redis.UniversalClient, prefix string, ttl time.Duration, metrics Metrics) *RedisCache {
	return &RedisCache{
		client:  client,
		prefix:  prefix,
		ttl:     ttl,
		metrics: metrics,
	}
}

// Get читает значение по ключу в dest. Возвращает false при промахе.
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, c.fullKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.observe(key, "miss")
		return false, nil
	}
	if err != nil {
		c.observe(key, "error")
		return false, fmt.Errorf("%w: get %s: %v", ErrBackend, key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.observe(key, "error")
		return false, fmt.Errorf("%w: %s: %v", ErrDecode, key, err)
	}

	c.observe(key, "hit")
	return true, nil
}

// Set сохраняет значение по ключу с TTL кэша
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, key, err)
	}

	if err := c.client.Set(ctx, c.fullKey(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrBackend, key, err)
	}
	return nil
}

// Generation возвращает текущее поколение ключа (0, если оно еще не увеличивалось).
// Читатель берет поколение до чтения из БД и пишет результат под VersionedKey:
// запись, сделанная по устаревшему поколению, никем больше не читается.
func (c *RedisCache) Generation(ctx context.Context, key string) (int64, error) {
	gen, err := c.client.Get(ctx, c.fullKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: generation %s: %v", ErrBackend, key, err)
	}
	return gen, nil
}

// Bump увеличивает поколение ключа, делая недоступными все ранее записанные версии.
// Счетчик живет дольше данных, иначе после его истечения снова стала бы видна старая версия 0.
func (c *RedisCache) Bump(ctx context.Context, key string) error {
	full := c.fullKey(key)

	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, full)
	pipe.Expire(ctx, full, c.generationTTL())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: bump %s: %v", ErrBackend, key, err)
	}
	return nil
}

// Ping проверяет доступность Redis
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) generationTTL() time.Duration {
	return max(minGenerationTTL, 2*c.ttl)
}

func (c *RedisCache) fullKey(key string) string {
	if c.prefix == "" {
		return key
	}
	return c.prefix + ":" + key
}

func (c *RedisCache) observe(key, result string) {
	if c.metrics == nil {
		return
	}
	kind := key
	if i := strings.IndexByte(key, ':'); i >= 0 {
		kind = key[:i]
	}
	c.metrics.IncCacheRequest(kind, result)
}
