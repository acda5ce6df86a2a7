package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"zyron-go/internal/lexicon"
	"zyron-go/internal/model"
	"zyron-go/pkg/events"

	"github.com/stretchr/testify/assert"
)

// newAssistantFixture 组装一个全内存的助手编排器。
func newAssistantFixture(t *testing.T) (AssistantService, *model.Session, *capturePublisher) {
	t.Helper()
	publisher := &capturePublisher{}
	search, _, _ := newInstantSearchService(NewCannedSearchProvider())
	sessionService := NewSessionService(newFakeSessionRepo(), publisher)
	svc := NewAssistantService(
		NewIntentService(),
		newSeededResponseService(search, 1),
		sessionService,
		publisher,
	)
	return svc, sessionService.Restore(context.Background(), "client-1"), publisher
}

func TestSubmitMessageAppendsUserAndAssistantTurns(t *testing.T) {
	assert := assert.New(t)
	svc, session, _ := newAssistantFixture(t)

	turn := svc.SubmitMessage(context.Background(), session, "hello")

	// 欢迎 + 用户 + 助手
	assert.Len(session.Log, 3)
	assert.Equal(model.RoleUser, session.Log[1].Role)
	assert.Equal("hello", session.Log[1].Content)
	assert.Equal(model.RoleAssistant, turn.Role)
	assert.Equal(turn, session.Log[2])
	assert.NotEmpty(turn.Content)
}

func TestSubmitMessageEmptyInputProducesNoTurn(t *testing.T) {
	assert := assert.New(t)
	svc, session, publisher := newAssistantFixture(t)

	turn := svc.SubmitMessage(context.Background(), session, "   ")

	assert.Equal(model.Turn{}, turn)
	assert.Len(session.Log, 1)
	assert.Empty(publisher.byType(events.TypeTurn))
}

func TestSubmitMessageExtractsNameOnFirstTurn(t *testing.T) {
	assert := assert.New(t)
	svc, session, _ := newAssistantFixture(t)
	ctx := context.Background()

	reply := svc.SubmitMessage(ctx, session, "hi, my name is Ali")
	assert.Equal("Ali", session.UserDisplayName)
	assert.Contains(reply.Content, "Ali")
	assert.False(session.FirstTurn)

	// 后续回合继续使用已提取的名字
	farewell := svc.SubmitMessage(ctx, session, "bye")
	assert.Contains(interpolated(lexicon.Templates(model.IntentFarewell, model.LanguageEnglish), "Ali"), farewell.Content)
}

func TestSubmitMessageNameWindowClosesAfterFirstTurn(t *testing.T) {
	assert := assert.New(t)
	svc, session, _ := newAssistantFixture(t)
	ctx := context.Background()

	svc.SubmitMessage(ctx, session, "hello")
	svc.SubmitMessage(ctx, session, "my name is Ali")

	// 名字提取只发生在首次交互，之后的自我介绍不再写入
	assert.Empty(session.UserDisplayName)
}

func TestSubmitMessageExplicitLanguageChoiceSticks(t *testing.T) {
	assert := assert.New(t)
	svc, session, _ := newAssistantFixture(t)
	ctx := context.Background()

	svc.SubmitMessage(ctx, session, "speak urdu")
	assert.Equal(model.LanguageUrdu, session.ActiveLanguage)

	// 纯拉丁输入不会把显式选择的乌尔都语降级回英语
	greeting := svc.SubmitMessage(ctx, session, "salam")
	assert.Equal(model.LanguageUrdu, session.ActiveLanguage)
	assert.Contains(interpolated(lexicon.Templates(model.IntentGreeting, model.LanguageUrdu), ""), greeting.Content)
}

func TestSubmitMessageArabicScriptUpgradesLanguage(t *testing.T) {
	assert := assert.New(t)
	svc, session, _ := newAssistantFixture(t)

	turn := svc.SubmitMessage(context.Background(), session, "السلام علیکم")

	assert.Equal(model.LanguageUrdu, session.ActiveLanguage)
	assert.Contains(interpolated(lexicon.Templates(model.IntentGreeting, model.LanguageUrdu), ""), turn.Content)
}

func TestSubmitMessagePublishesTurnEvent(t *testing.T) {
	assert := assert.New(t)
	svc, session, publisher := newAssistantFixture(t)

	svc.SubmitMessage(context.Background(), session, "tell me a joke")

	turns := publisher.byType(events.TypeTurn)
	assert.Len(turns, 1)
	assert.Equal("client-1", turns[0].ClientID)
	assert.Equal(string(model.IntentJokeRequest), turns[0].Intent)
	assert.Equal(string(model.LanguageEnglish), turns[0].Language)
	assert.False(turns[0].Timestamp.IsZero())
}

func TestSubmitMessageRecoversPanicIntoErrorTurn(t *testing.T) {
	assert := assert.New(t)
	publisher := &capturePublisher{}
	sessionService := NewSessionService(newFakeSessionRepo(), publisher)
	svc := NewAssistantService(NewIntentService(), panicResponseService{}, sessionService, publisher)
	session := model.NewSession("client-1")

	turn := svc.SubmitMessage(context.Background(), session, "hello")

	// panic 被兜住：用户得到一条通用错误回复，宿主不崩溃
	assert.Equal(lexicon.ProcessingError(model.LanguageEnglish), turn.Content)
	assert.Equal(turn, session.Log[len(session.Log)-1])

	failures := publisher.byType(events.TypeRecoveredFailure)
	assert.Len(failures, 1)
	assert.Equal("pipeline", failures[0].Stage)
}

func TestSubmitMessageConcurrentTurnsKeepPairing(t *testing.T) {
	assert := assert.New(t)
	svc, session, _ := newAssistantFixture(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			svc.SubmitMessage(context.Background(), session, fmt.Sprintf("hello %d", i))
		}(i)
	}
	wg.Wait()

	// 会话锁保证回合串行：记录里用户/助手严格成对出现
	assert.Len(session.Log, 1+8*2)
	for i := 1; i < len(session.Log); i += 2 {
		assert.Equal(model.RoleUser, session.Log[i].Role)
		assert.Equal(model.RoleAssistant, session.Log[i+1].Role)
	}
}

func TestOnInputSwitchesLanguageBothWays(t *testing.T) {
	assert := assert.New(t)
	svc, session, _ := newAssistantFixture(t)

	svc.OnInput(session, "سلام")
	assert.Equal(model.LanguageUrdu, session.ActiveLanguage)

	// 实时输入路径是双向的：拉丁输入会切回英语
	svc.OnInput(session, "hello there")
	assert.Equal(model.LanguageEnglish, session.ActiveLanguage)

	svc.OnInput(session, "   ")
	assert.Equal(model.LanguageEnglish, session.ActiveLanguage)
}

func TestOnTranscriptBehavesLikeMessage(t *testing.T) {
	assert := assert.New(t)
	svc, session, _ := newAssistantFixture(t)

	turn := svc.OnTranscript(context.Background(), session, "hello")

	assert.Equal(model.RoleAssistant, turn.Role)
	assert.Len(session.Log, 3)
}

func TestToggleLanguageRecordsConfirmationTurn(t *testing.T) {
	assert := assert.New(t)
	svc, session, _ := newAssistantFixture(t)

	turn := svc.ToggleLanguage(context.Background(), session)

	assert.Equal(model.LanguageUrdu, session.ActiveLanguage)
	assert.Equal(lexicon.LanguageToggleConfirmation(model.LanguageUrdu), turn.Content)
	assert.Equal(turn, session.Log[len(session.Log)-1])
}
