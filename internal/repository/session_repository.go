// Package repository 提供了数据访问层的实现。
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"zyron-go/internal/model"
	"zyron-go/pkg/log"

	"github.com/go-redis/redis/v8"
)

// 会话状态在 Redis 中的保留时长。
const sessionTTL = 7 * 24 * time.Hour

// SessionRepository 定义了会话状态的持久化接口。
// 底层布局是每个客户端三个键：对话记录(JSON)、当前语言、用户名。
type SessionRepository interface {
	Save(ctx context.Context, session *model.Session) error
	Load(ctx context.Context, clientID string) (*model.Session, error)
}

type redisSessionRepository struct {
	redisClient  *redis.Client
	historyLimit int
}

// NewSessionRepository 创建一个新的 SessionRepository 实例。
// historyLimit 限制持久化的对话条数，0 表示不限制。
func NewSessionRepository(redisClient *redis.Client, historyLimit int) SessionRepository {
	return &redisSessionRepository{redisClient: redisClient, historyLimit: historyLimit}
}

func conversationKey(clientID string) string {
	return fmt.Sprintf("assistant:%s:conversation", clientID)
}

func languageKey(clientID string) string {
	return fmt.Sprintf("assistant:%s:language", clientID)
}

func usernameKey(clientID string) string {
	return fmt.Sprintf("assistant:%s:username", clientID)
}

// Save 将会话的三项状态整体写入 Redis。每个回合都会调用，不做增量更新。
func (r *redisSessionRepository) Save(ctx context.Context, session *model.Session) error {
	turns := session.Log
	if r.historyLimit > 0 && len(turns) > r.historyLimit {
		turns = turns[len(turns)-r.historyLimit:]
	}
	jsonData, err := json.Marshal(turns)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation log: %w", err)
	}

	if err := r.redisClient.Set(ctx, conversationKey(session.ClientID), jsonData, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to set conversation log: %w", err)
	}
	if err := r.redisClient.Set(ctx, languageKey(session.ClientID), string(session.ActiveLanguage), sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to set active language: %w", err)
	}
	// 与历史行为一致：只有提取到用户名时才写入该键
	if session.UserDisplayName != "" {
		if err := r.redisClient.Set(ctx, usernameKey(session.ClientID), session.UserDisplayName, sessionTTL).Err(); err != nil {
			return fmt.Errorf("failed to set user display name: %w", err)
		}
	}
	return nil
}

// Load 从 Redis 还原会话。缺失或损坏的值静默退回默认，不阻止启动。
func (r *redisSessionRepository) Load(ctx context.Context, clientID string) (*model.Session, error) {
	session := model.NewSession(clientID)

	jsonData, err := r.redisClient.Get(ctx, conversationKey(clientID)).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get conversation log: %w", err)
	}
	if err == nil {
		var turns []model.Turn
		if unmarshalErr := json.Unmarshal([]byte(jsonData), &turns); unmarshalErr != nil {
			// 损坏的记录按空记录处理
			log.Warnf("会话记录已损坏，重置为空: client=%s, error=%v", clientID, unmarshalErr)
		} else {
			session.Log = turns
		}
	}

	langValue, err := r.redisClient.Get(ctx, languageKey(clientID)).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get active language: %w", err)
	}
	if err == nil {
		session.ActiveLanguage = model.ParseLanguage(langValue)
	}

	name, err := r.redisClient.Get(ctx, usernameKey(clientID)).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get user display name: %w", err)
	}
	if err == nil && name != "" {
		session.UserDisplayName = name
		// 已有名字说明名字提取早已发生过
		session.FirstTurn = false
	}

	return session, nil
}
