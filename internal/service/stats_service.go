package service

import (
	"context"

	"zyron-go/internal/repository"
	"zyron-go/pkg/events"
)

// StatsService 把事件流聚合为意图使用统计。
// Handle 满足 kafka.EventHandler，由后台消费者驱动。
type StatsService interface {
	Handle(ctx context.Context, event events.AssistantEvent) error
	GetIntentCounts(ctx context.Context) (map[string]int64, error)
}

type statsService struct {
	repo repository.StatsRepository
}

// NewStatsService 创建一个新的 StatsService 实例。
func NewStatsService(repo repository.StatsRepository) StatsService {
	return &statsService{repo: repo}
}

// Handle 只统计 turn 事件；其他事件类型直接忽略。
func (s *statsService) Handle(ctx context.Context, event events.AssistantEvent) error {
	if event.Type != events.TypeTurn {
		return nil
	}
	return s.repo.IncrIntent(ctx, event.Intent, event.Language)
}

// GetIntentCounts 返回按 (意图, 语言) 聚合的使用计数。
func (s *statsService) GetIntentCounts(ctx context.Context) (map[string]int64, error) {
	return s.repo.GetIntentCounts(ctx)
}
