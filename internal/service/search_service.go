package service

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"zyron-go/internal/config"
	"zyron-go/internal/lexicon"
	"zyron-go/internal/model"
	"zyron-go/pkg/log"
)

// SearchProvider 是模拟搜索的数据来源抽象，便于在测试中注入故障。
type SearchProvider interface {
	// Search 在词表中查找话题答案。matched 为 false 表示没有话题命中。
	Search(ctx context.Context, query string, lang model.Language) (answer string, matched bool, err error)
}

// cannedSearchProvider 用静态词表模拟搜索，按子串匹配话题。
type cannedSearchProvider struct{}

// NewCannedSearchProvider 创建基于内置词表的 SearchProvider。
func NewCannedSearchProvider() SearchProvider {
	return &cannedSearchProvider{}
}

// Search 在指定语言的词表中按插入顺序做子串匹配；该语言没有词表时回退英语词表。
func (p *cannedSearchProvider) Search(_ context.Context, query string, lang model.Language) (string, bool, error) {
	answers := lexicon.SearchAnswers(lang)
	if answers == nil {
		answers = lexicon.SearchAnswers(model.LanguageEnglish)
	}
	lowerQuery := strings.ToLower(strings.TrimSpace(query))
	for _, entry := range answers {
		if strings.Contains(lowerQuery, entry.Topic) {
			return entry.Answer, true, nil
		}
	}
	return "", false, nil
}

// SearchService 定义了搜索兜底缓存的接口。
// Lookup 从不失败：provider 出错时返回静态致歉文案，且不写缓存。
type SearchService interface {
	Lookup(ctx context.Context, query string, lang model.Language) model.SearchResult
}

type cacheKey struct {
	query string
	lang  model.Language
}

type cacheEntry struct {
	result   model.SearchResult
	cachedAt time.Time
}

type searchService struct {
	provider SearchProvider
	ttl      time.Duration
	delayMin time.Duration
	delayMax time.Duration

	// 时钟、休眠与随机源可注入，测试中用它们固定行为
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration)
	rnd   *rand.Rand
	rndMu sync.Mutex

	mu    sync.RWMutex
	cache map[cacheKey]cacheEntry
}

// NewSearchService 创建一个新的 SearchService 实例。
func NewSearchService(provider SearchProvider, cfg config.SearchConfig) SearchService {
	ttl := time.Duration(cfg.CacheTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &searchService{
		provider: provider,
		ttl:      ttl,
		delayMin: time.Duration(cfg.DelayMinMillis) * time.Millisecond,
		delayMax: time.Duration(cfg.DelayMaxMillis) * time.Millisecond,
		now:      time.Now,
		sleep:    sleepWithContext,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:    make(map[cacheKey]cacheEntry),
	}
}

// Lookup 以 (小写去空白后的查询, 语言) 为键查询缓存。
// TTL 内命中直接返回、不产生延迟；未命中先模拟查找延迟再查词表，
// 包括兜底回答在内的所有结果都以当前时间写入缓存。
func (s *searchService) Lookup(ctx context.Context, query string, lang model.Language) model.SearchResult {
	key := cacheKey{query: strings.ToLower(strings.TrimSpace(query)), lang: lang}

	s.mu.RLock()
	entry, ok := s.cache[key]
	s.mu.RUnlock()
	if ok && s.now().Sub(entry.cachedAt) < s.ttl {
		return entry.result
	}
	// 过期条目视为不存在，由下面的写入覆盖（惰性淘汰）

	s.sleep(ctx, s.lookupDelay())

	answer, matched, err := s.provider.Search(ctx, query, lang)
	if err != nil {
		// 模拟查找自身失败：返回静态致歉，不缓存
		log.Warnf("模拟搜索失败: query=%q, lang=%s, error=%v", query, lang, err)
		return model.SearchResult{Answer: lexicon.SearchUnavailable(lang)}
	}

	result := model.SearchResult{Answer: answer}
	if !matched {
		result = model.SearchResult{Answer: lexicon.DefaultSearchAnswer(query, lang), Default: true}
	}

	s.mu.Lock()
	s.cache[key] = cacheEntry{result: result, cachedAt: s.now()}
	s.mu.Unlock()

	return result
}

// lookupDelay 在配置的区间内取随机的人工延迟。
func (s *searchService) lookupDelay() time.Duration {
	if s.delayMax <= s.delayMin {
		return s.delayMin
	}
	s.rndMu.Lock()
	defer s.rndMu.Unlock()
	return s.delayMin + time.Duration(s.rnd.Int63n(int64(s.delayMax-s.delayMin)))
}

// sleepWithContext 等待给定时长，context 取消时提前返回。
func sleepWithContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
