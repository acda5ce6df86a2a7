package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// 意图计数存放在一个 Redis hash 中，field 形如 "intent:language"。
const intentStatsKey = "assistant:stats:intents"

// StatsRepository 定义了意图使用统计的存取接口。
type StatsRepository interface {
	IncrIntent(ctx context.Context, intent, language string) error
	GetIntentCounts(ctx context.Context) (map[string]int64, error)
}

type redisStatsRepository struct {
	redisClient *redis.Client
}

// NewStatsRepository 创建一个新的 StatsRepository 实例。
func NewStatsRepository(redisClient *redis.Client) StatsRepository {
	return &redisStatsRepository{redisClient: redisClient}
}

// IncrIntent 将 (意图, 语言) 的使用计数加一。
func (r *redisStatsRepository) IncrIntent(ctx context.Context, intent, language string) error {
	field := fmt.Sprintf("%s:%s", intent, language)
	if err := r.redisClient.HIncrBy(ctx, intentStatsKey, field, 1).Err(); err != nil {
		return fmt.Errorf("failed to increment intent counter: %w", err)
	}
	return nil
}

// GetIntentCounts 返回全部意图计数。
func (r *redisStatsRepository) GetIntentCounts(ctx context.Context) (map[string]int64, error) {
	fields, err := r.redisClient.HGetAll(ctx, intentStatsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read intent counters: %w", err)
	}
	counts := make(map[string]int64, len(fields))
	for field, value := range fields {
		n, parseErr := strconv.ParseInt(value, 10, 64)
		if parseErr != nil {
			continue
		}
		counts[field] = n
	}
	return counts, nil
}
