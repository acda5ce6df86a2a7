package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"zyron-go/internal/model"
	"zyron-go/pkg/events"
)

// fakeSessionRepo 是 SessionRepository 的内存实现，模拟 Redis 的三键布局。
type fakeSessionRepo struct {
	mu       sync.Mutex
	logs     map[string][]model.Turn
	langs    map[string]string
	names    map[string]string
	failSave error
	failLoad error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		logs:  make(map[string][]model.Turn),
		langs: make(map[string]string),
		names: make(map[string]string),
	}
}

func (r *fakeSessionRepo) Save(_ context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave != nil {
		return r.failSave
	}
	turns := make([]model.Turn, len(session.Log))
	copy(turns, session.Log)
	r.logs[session.ClientID] = turns
	r.langs[session.ClientID] = string(session.ActiveLanguage)
	if session.UserDisplayName != "" {
		r.names[session.ClientID] = session.UserDisplayName
	}
	return nil
}

func (r *fakeSessionRepo) Load(_ context.Context, clientID string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failLoad != nil {
		return nil, r.failLoad
	}
	session := model.NewSession(clientID)
	if turns, ok := r.logs[clientID]; ok {
		session.Log = make([]model.Turn, len(turns))
		copy(session.Log, turns)
	}
	if lang, ok := r.langs[clientID]; ok {
		session.ActiveLanguage = model.ParseLanguage(lang)
	}
	if name, ok := r.names[clientID]; ok && name != "" {
		session.UserDisplayName = name
		session.FirstTurn = false
	}
	return session, nil
}

// capturePublisher 记录所有发布的事件，供测试断言恢复路径的可观测性。
type capturePublisher struct {
	mu     sync.Mutex
	events []events.AssistantEvent
}

func (p *capturePublisher) Publish(event events.AssistantEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturePublisher) byType(eventType string) []events.AssistantEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []events.AssistantEvent
	for _, e := range p.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

// failingSearchProvider 总是返回错误，用于测试搜索兜底的失败路径。
type failingSearchProvider struct{}

func (failingSearchProvider) Search(context.Context, string, model.Language) (string, bool, error) {
	return "", false, errors.New("simulated lookup failure")
}

// newInstantSearchService 构造一个无延迟、时钟可控的 searchService。
// 返回的 advance 函数用于推进虚拟时钟，sleeps 统计模拟延迟的次数。
func newInstantSearchService(provider SearchProvider) (svc *searchService, advance func(time.Duration), sleeps *int) {
	current := time.Unix(1700000000, 0)
	count := 0
	svc = &searchService{
		provider: provider,
		ttl:      5 * time.Minute,
		now:      func() time.Time { return current },
		sleep:    func(context.Context, time.Duration) { count++ },
		rnd:      rand.New(rand.NewSource(1)),
		cache:    make(map[cacheKey]cacheEntry),
	}
	advance = func(d time.Duration) { current = current.Add(d) }
	sleeps = &count
	return svc, advance, sleeps
}

// newSeededResponseService 构造随机源固定的 responseService。
func newSeededResponseService(search SearchService, seed int64) *responseService {
	return &responseService{
		search: search,
		rnd:    rand.New(rand.NewSource(seed)),
	}
}

// panicResponseService 在生成回复时 panic，用于测试恢复边界。
type panicResponseService struct{}

func (panicResponseService) Generate(context.Context, *model.Session, model.Intent, string) string {
	panic("malformed session state")
}

func (panicResponseService) ExtractName(*model.Session, string) {}

func (panicResponseService) ToggleLanguage(*model.Session) string { return "" }

// interpolated 把模板序列中的名字槽位按给定名字展开，便于断言回复属于某一模板族。
func interpolated(templates []string, name string) []string {
	out := make([]string, 0, len(templates))
	for _, tmpl := range templates {
		out = append(out, interpolateName(tmpl, name))
	}
	return out
}
