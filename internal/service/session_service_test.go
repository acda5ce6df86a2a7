package service

import (
	"context"
	"errors"
	"testing"

	"zyron-go/internal/lexicon"
	"zyron-go/internal/model"
	"zyron-go/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestRestoreFreshSessionSeedsWelcome(t *testing.T) {
	assert := assert.New(t)
	svc := NewSessionService(newFakeSessionRepo(), events.NopPublisher{})

	session := svc.Restore(context.Background(), "client-1")

	// 全新会话以恰好一条欢迎消息开场
	assert.Len(session.Log, 1)
	assert.Equal(model.RoleAssistant, session.Log[0].Role)
	assert.Equal(lexicon.Welcome(model.LanguageEnglish), session.Log[0].Content)
	assert.True(session.FirstTurn)
}

func TestPersistRestoreRoundTrip(t *testing.T) {
	assert := assert.New(t)
	repo := newFakeSessionRepo()
	svc := NewSessionService(repo, events.NopPublisher{})
	ctx := context.Background()

	session := svc.Restore(ctx, "client-1")
	session.ActiveLanguage = model.LanguageUrdu
	session.UserDisplayName = "احمد"
	session.AppendTurn(model.RoleUser, "سلام")
	svc.Persist(ctx, session)

	restored := svc.Restore(ctx, "client-1")
	assert.Equal(model.LanguageUrdu, restored.ActiveLanguage)
	assert.Equal("احمد", restored.UserDisplayName)
	assert.Equal(session.Log, restored.Log)
	// 已有名字的会话不再进入首轮提名流程
	assert.False(restored.FirstTurn)
}

func TestRestoreFailureFallsBackToDefaults(t *testing.T) {
	assert := assert.New(t)
	repo := newFakeSessionRepo()
	repo.failLoad = errors.New("connection refused")
	publisher := &capturePublisher{}
	svc := NewSessionService(repo, publisher)

	session := svc.Restore(context.Background(), "client-1")

	// 存储故障退回默认会话，并发出可观测的恢复事件
	assert.Equal("client-1", session.ClientID)
	assert.Equal(model.LanguageEnglish, session.ActiveLanguage)
	assert.Len(session.Log, 1)

	failures := publisher.byType(events.TypeRecoveredFailure)
	assert.Len(failures, 1)
	assert.Equal("restore", failures[0].Stage)
	assert.Equal("client-1", failures[0].ClientID)
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	assert := assert.New(t)
	repo := newFakeSessionRepo()
	repo.failSave = errors.New("quota exceeded")
	publisher := &capturePublisher{}
	svc := NewSessionService(repo, publisher)

	session := model.NewSession("client-1")
	session.AppendTurn(model.RoleUser, "hello")
	svc.Persist(context.Background(), session)

	// 写入失败不影响内存状态，只发事件
	assert.Len(session.Log, 1)
	failures := publisher.byType(events.TypeRecoveredFailure)
	assert.Len(failures, 1)
	assert.Equal("persist", failures[0].Stage)
}

func TestClearResetsToSingleWelcome(t *testing.T) {
	assert := assert.New(t)
	repo := newFakeSessionRepo()
	svc := NewSessionService(repo, events.NopPublisher{})
	ctx := context.Background()

	session := svc.Restore(ctx, "client-1")
	session.ActiveLanguage = model.LanguageUrdu
	session.AppendTurn(model.RoleUser, "سلام")
	session.AppendTurn(model.RoleAssistant, "وعلیکم")

	welcome := svc.Clear(ctx, session)

	// 清空后恰好剩一条当前语言的欢迎消息
	assert.Len(session.Log, 1)
	assert.Equal(welcome, session.Log[0])
	assert.Equal(lexicon.Welcome(model.LanguageUrdu), welcome.Content)

	restored := svc.Restore(ctx, "client-1")
	assert.Len(restored.Log, 1)
}
