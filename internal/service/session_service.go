package service

import (
	"context"
	"time"

	"zyron-go/internal/lexicon"
	"zyron-go/internal/model"
	"zyron-go/internal/repository"
	"zyron-go/pkg/events"
	"zyron-go/pkg/log"
)

// SessionService 定义了会话状态的生命周期操作。
type SessionService interface {
	// Restore 从持久化存储还原会话；任何失败都退回全新默认会话，不上抛。
	Restore(ctx context.Context, clientID string) *model.Session
	// Persist 把会话整体写入存储；失败只记录并发事件，不回滚内存状态。
	Persist(ctx context.Context, session *model.Session)
	// Clear 清空对话记录并以当前语言重新写入唯一一条欢迎消息。
	Clear(ctx context.Context, session *model.Session) model.Turn
}

type sessionService struct {
	repo      repository.SessionRepository
	publisher events.Publisher
}

// NewSessionService 创建一个新的 SessionService 实例。
func NewSessionService(repo repository.SessionRepository, publisher events.Publisher) SessionService {
	return &sessionService{repo: repo, publisher: publisher}
}

// Restore 还原会话。全新会话（记录为空）会先写入一条欢迎消息。
func (s *sessionService) Restore(ctx context.Context, clientID string) *model.Session {
	session, err := s.repo.Load(ctx, clientID)
	if err != nil {
		log.Warnf("还原会话失败，使用默认会话: client=%s, error=%v", clientID, err)
		s.publishFailure(clientID, "restore", err)
		session = model.NewSession(clientID)
	}
	if len(session.Log) == 0 {
		session.AppendTurn(model.RoleAssistant, lexicon.Welcome(session.ActiveLanguage))
	}
	return session
}

// Persist 持久化会话。存储故障（如配额）不影响本次会话继续运行。
func (s *sessionService) Persist(ctx context.Context, session *model.Session) {
	if err := s.repo.Save(ctx, session); err != nil {
		log.Errorf("持久化会话失败: client=%s, error=%v", session.ClientID, err)
		s.publishFailure(session.ClientID, "persist", err)
	}
}

// Clear 重置对话记录为恰好一条欢迎消息，并立即持久化。
func (s *sessionService) Clear(ctx context.Context, session *model.Session) model.Turn {
	session.Log = nil
	welcome := session.AppendTurn(model.RoleAssistant, lexicon.Welcome(session.ActiveLanguage))
	s.Persist(ctx, session)
	return welcome
}

func (s *sessionService) publishFailure(clientID, stage string, cause error) {
	event := events.AssistantEvent{
		Type:      events.TypeRecoveredFailure,
		ClientID:  clientID,
		Stage:     stage,
		Error:     cause.Error(),
		Timestamp: time.Now(),
	}
	if err := s.publisher.Publish(event); err != nil {
		log.Warnf("发布故障事件失败: %v", err)
	}
}
