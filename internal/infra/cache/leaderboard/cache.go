// Package leaderboard keeps per-category rankings in Redis sorted sets.
package leaderboard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/arena-booking/internal/domain"
	"github.com/m04kA/arena-booking/internal/gamification"
)

var categories = []domain.LeaderboardCategory{
	domain.CategoryPoints,
	domain.CategoryVisits,
	domain.CategorySpending,
}

// Scored id пользователя и его значение в категории
type Scored struct {
	UserID int64
	Score  float64
}

// Cache рейтинг в Redis: один sorted set на категорию, member = id пользователя
type Cache struct {
	client *redis.Client
	prefix string
}

// NewCache создает кэш рейтинга
func NewCache(client *redis.Client, prefix string) *Cache {
	if prefix == "" {
		prefix = "arena"
	}
	return &Cache{client: client, prefix: prefix}
}

// NewClient создает клиента Redis
func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func (c *Cache) key(category domain.LeaderboardCategory) string {
	return c.prefix + ":leaderboard:" + string(category)
}

// Upsert обновляет значения пользователя во всех категориях одной транзакцией
func (c *Cache) Upsert(ctx context.Context, users ...*domain.User) error {
	if len(users) == 0 {
		return nil
	}

	pipe := c.client.TxPipeline()
	for _, category := range categories {
		members := make([]redis.Z, 0, len(users))
		for _, u := range users {
			members = append(members, redis.Z{
				Score:  gamification.Score(u, category),
				Member: strconv.FormatInt(u.ID, 10),
			})
		}
		pipe.ZAdd(ctx, c.key(category), members...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: upsert: %v", ErrCacheUnavailable, err)
	}
	return nil
}

// Rebuild заменяет рейтинги целиком: удаляет ключи и заново заполняет
// их переданными пользователями в одной транзакции
func (c *Cache) Rebuild(ctx context.Context, users ...*domain.User) error {
	pipe := c.client.TxPipeline()
	for _, category := range categories {
		pipe.Del(ctx, c.key(category))
		if len(users) == 0 {
			continue
		}
		members := make([]redis.Z, 0, len(users))
		for _, u := range users {
			members = append(members, redis.Z{
				Score:  gamification.Score(u, category),
				Member: strconv.FormatInt(u.ID, 10),
			})
		}
		pipe.ZAdd(ctx, c.key(category), members...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: rebuild: %v", ErrCacheUnavailable, err)
	}
	return nil
}

// Remove убирает пользователей из всех рейтингов
func (c *Cache) Remove(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}

	members := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		members = append(members, strconv.FormatInt(id, 10))
	}

	pipe := c.client.TxPipeline()
	for _, category := range categories {
		pipe.ZRem(ctx, c.key(category), members...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: remove: %v", ErrCacheUnavailable, err)
	}
	return nil
}

// Size число пользователей в рейтинге категории
func (c *Cache) Size(ctx context.Context, category domain.LeaderboardCategory) (int64, error) {
	n, err := c.client.ZCard(ctx, c.key(category)).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: size %s: %v", ErrCacheUnavailable, category, err)
	}
	return n, nil
}

// Top первые limit пользователей категории по убыванию
func (c *Cache) Top(ctx context.Context, category domain.LeaderboardCategory, limit int) ([]Scored, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	zs, err := c.client.ZRevRangeWithScores(ctx, c.key(category), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: top %s: %v", ErrCacheUnavailable, category, err)
	}
	if len(zs) == 0 {
		return nil, ErrCacheEmpty
	}

	out := make([]Scored, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, Scored{UserID: id, Score: z.Score})
	}
	return out, nil
}

// Ping проверяет доступность Redis
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}
	return nil
}

// Close закрывает соединение
func (c *Cache) Close() error {
	return c.client.Close()
}
