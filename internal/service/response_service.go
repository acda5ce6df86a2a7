package service

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"zyron-go/internal/lexicon"
	"zyron-go/internal/model"
)

// ResponseService 把 (意图, 会话状态) 映射为一条回复文本。
// language-change 意图会修改会话的当前语言，其余意图只读会话。
type ResponseService interface {
	Generate(ctx context.Context, session *model.Session, intent model.Intent, rawText string) string
	// ExtractName 在首次交互时尝试从输入中提取用户名；未命中不算错误。
	ExtractName(session *model.Session, rawText string)
	// ToggleLanguage 在英语和乌尔都语之间快捷切换，返回新语言的确认语。
	ToggleLanguage(session *model.Session) string
}

type responseService struct {
	search SearchService
	rnd    *rand.Rand
	rndMu  sync.Mutex
}

// NewResponseService 创建一个新的 ResponseService 实例。
func NewResponseService(search SearchService) ResponseService {
	return &responseService{
		search: search,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate 生成回复。模板类别在候选模板中等概率随机挑选；
// search-query 与 unknown 走搜索兜底缓存。
func (s *responseService) Generate(ctx context.Context, session *model.Session, intent model.Intent, rawText string) string {
	switch intent {
	case model.IntentLanguageChange:
		return s.handleLanguageChange(session, rawText)
	case model.IntentSearchQuery:
		return s.search.Lookup(ctx, rawText, session.ActiveLanguage).Answer
	case model.IntentUnknown:
		// 先试搜索词表；只有拿到兜底标记的结果时才退回固定填充语，
		// 避免通用兜底文案泄漏进开放式对话
		result := s.search.Lookup(ctx, rawText, session.ActiveLanguage)
		if !result.Default {
			return result.Answer
		}
		return s.pick(s.templatesFor(model.IntentUnknown, session.ActiveLanguage))
	default:
		template := s.pick(s.templatesFor(intent, session.ActiveLanguage))
		return interpolateName(template, session.UserDisplayName)
	}
}

// handleLanguageChange 查找显式的目标语言关键字。
// 命中时切换会话语言并用新语言确认；未命中时用当前语言说明能力，不改状态。
func (s *responseService) handleLanguageChange(session *model.Session, rawText string) string {
	lower := strings.ToLower(rawText)
	for _, target := range []model.Language{model.LanguageUrdu, model.LanguageEnglish} {
		for _, keyword := range lexicon.LanguageKeywords(target) {
			if strings.Contains(lower, keyword) {
				session.ActiveLanguage = target
				return lexicon.LanguageConfirmation(target)
			}
		}
	}
	return lexicon.LanguageCapabilityNotice(session.ActiveLanguage)
}

// ExtractName 按顺序尝试名字短语模式，首个匹配胜出。
func (s *responseService) ExtractName(session *model.Session, rawText string) {
	for _, pattern := range lexicon.NamePatterns {
		if match := pattern.FindStringSubmatch(rawText); len(match) > 1 && match[1] != "" {
			session.UserDisplayName = match[1]
			return
		}
	}
}

// ToggleLanguage 翻转会话语言并返回简短确认语。
func (s *responseService) ToggleLanguage(session *model.Session) string {
	if session.ActiveLanguage == model.LanguageEnglish {
		session.ActiveLanguage = model.LanguageUrdu
	} else {
		session.ActiveLanguage = model.LanguageEnglish
	}
	return lexicon.LanguageToggleConfirmation(session.ActiveLanguage)
}

// templatesFor 取 (类别, 语言) 的模板序列，乌尔都语缺失时回退英语。
func (s *responseService) templatesFor(category model.Intent, lang model.Language) []string {
	if templates := lexicon.Templates(category, lang); templates != nil {
		return templates
	}
	return lexicon.Templates(category, model.LanguageEnglish)
}

// pick 在模板序列中等概率随机取一条。
func (s *responseService) pick(templates []string) string {
	if len(templates) == 0 {
		return ""
	}
	s.rndMu.Lock()
	defer s.rndMu.Unlock()
	return templates[s.rnd.Intn(len(templates))]
}

// interpolateName 替换模板中的名字槽位。
// 无名字时槽位干净地消失，不留空括号或占位残留。
func interpolateName(template, name string) string {
	if name == "" {
		return strings.ReplaceAll(template, lexicon.NameSlot, "")
	}
	return strings.ReplaceAll(template, lexicon.NameSlot, " "+name)
}
