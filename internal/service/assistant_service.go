package service

import (
	"context"
	"strings"
	"time"

	"zyron-go/internal/lexicon"
	"zyron-go/internal/model"
	"zyron-go/pkg/events"
	"zyron-go/pkg/log"
)

// AssistantService 编排一个完整的回合：
// 语言检测 → 首次交互的名字提取 → 意图识别 → 回复生成 → 记录与持久化。
// 非空输入总会得到恰好一条助手回复；任何内部故障都被恢复为通用错误回复。
type AssistantService interface {
	SubmitMessage(ctx context.Context, session *model.Session, text string) model.Turn
	// OnTranscript 是语音协作方的入口，与 SubmitMessage 等价。
	OnTranscript(ctx context.Context, session *model.Session, text string) model.Turn
	// OnInput 是实时输入路径：随输入内容立即双向切换会话语言。
	OnInput(session *model.Session, text string)
	// ToggleLanguage 执行快捷语言切换动作并记录确认回复。
	ToggleLanguage(ctx context.Context, session *model.Session) model.Turn
}

type assistantService struct {
	intentService   IntentService
	responseService ResponseService
	sessionService  SessionService
	publisher       events.Publisher
}

// NewAssistantService 创建一个新的 AssistantService 实例。
func NewAssistantService(intentService IntentService, responseService ResponseService, sessionService SessionService, publisher events.Publisher) AssistantService {
	return &assistantService{
		intentService:   intentService,
		responseService: responseService,
		sessionService:  sessionService,
		publisher:       publisher,
	}
}

// SubmitMessage 处理一条用户输入并返回生成的助手回复。
// 会话锁保证同一会话内回合严格串行，对话记录的顺序因此稳定。
func (s *assistantService) SubmitMessage(ctx context.Context, session *model.Session, text string) (turn model.Turn) {
	if strings.TrimSpace(text) == "" {
		// 与历史行为一致：空输入不产生回合
		return model.Turn{}
	}

	session.Lock()
	defer session.Unlock()

	// 恢复边界：管道内的任何 panic 都换成一条通用错误回复，宿主不崩溃
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("回合处理发生未预期异常: client=%s, panic=%v", session.ClientID, r)
			s.publishEvent(events.AssistantEvent{
				Type:     events.TypeRecoveredFailure,
				ClientID: session.ClientID,
				Stage:    "pipeline",
				Error:    "recovered panic",
			})
			turn = session.AppendTurn(model.RoleAssistant, lexicon.ProcessingError(session.ActiveLanguage))
			s.sessionService.Persist(ctx, session)
		}
	}()

	session.AppendTurn(model.RoleUser, text)

	// 提交路径只在出现阿拉伯文字时升级到乌尔都语；
	// 纯拉丁输入不会覆盖用户显式选择的语言（双向检测属于实时输入路径）
	if s.intentService.Detect(text) == model.LanguageUrdu {
		session.ActiveLanguage = model.LanguageUrdu
	}

	if session.FirstTurn {
		s.responseService.ExtractName(session, text)
		// 无论是否提取到名字，首次交互标记都永久关闭
		session.FirstTurn = false
	}

	intent := s.intentService.Classify(text)
	response := s.responseService.Generate(ctx, session, intent, text)

	turn = session.AppendTurn(model.RoleAssistant, response)
	s.sessionService.Persist(ctx, session)

	s.publishEvent(events.AssistantEvent{
		Type:     events.TypeTurn,
		ClientID: session.ClientID,
		Intent:   string(intent),
		Language: string(session.ActiveLanguage),
	})
	return turn
}

// OnTranscript 把语音转写文本按普通消息处理。
func (s *assistantService) OnTranscript(ctx context.Context, session *model.Session, text string) model.Turn {
	return s.SubmitMessage(ctx, session, text)
}

// OnInput 实时输入路径：检测结果直接写入会话，输入过程中即可切换语言。
func (s *assistantService) OnInput(session *model.Session, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	session.Lock()
	defer session.Unlock()
	session.ActiveLanguage = s.intentService.Detect(text)
}

// ToggleLanguage 快捷切换语言并把确认语记入对话。
func (s *assistantService) ToggleLanguage(ctx context.Context, session *model.Session) model.Turn {
	session.Lock()
	defer session.Unlock()

	confirmation := s.responseService.ToggleLanguage(session)
	turn := session.AppendTurn(model.RoleAssistant, confirmation)
	s.sessionService.Persist(ctx, session)
	return turn
}

// publishEvent 尽力发布事件；事件通道故障绝不影响回合本身。
func (s *assistantService) publishEvent(event events.AssistantEvent) {
	event.Timestamp = time.Now()
	if err := s.publisher.Publish(event); err != nil {
		log.Warnf("发布助手事件失败: type=%s, error=%v", event.Type, err)
	}
}
