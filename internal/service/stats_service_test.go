package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"zyron-go/pkg/events"

	"github.com/stretchr/testify/assert"
)

// fakeStatsRepo 以内存 map 模拟 Redis hash 计数器。
type fakeStatsRepo struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{counts: make(map[string]int64)}
}

func (r *fakeStatsRepo) IncrIntent(_ context.Context, intent, language string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[fmt.Sprintf("%s:%s", intent, language)]++
	return nil
}

func (r *fakeStatsRepo) GetIntentCounts(_ context.Context) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int64, len(r.counts))
	for k, v := range r.counts {
		out[k] = v
	}
	return out, nil
}

func TestStatsHandleCountsTurnEvents(t *testing.T) {
	assert := assert.New(t)
	repo := newFakeStatsRepo()
	svc := NewStatsService(repo)
	ctx := context.Background()

	assert.NoError(svc.Handle(ctx, events.AssistantEvent{Type: events.TypeTurn, Intent: "greeting", Language: "english"}))
	assert.NoError(svc.Handle(ctx, events.AssistantEvent{Type: events.TypeTurn, Intent: "greeting", Language: "english"}))
	assert.NoError(svc.Handle(ctx, events.AssistantEvent{Type: events.TypeTurn, Intent: "greeting", Language: "urdu"}))

	counts, err := svc.GetIntentCounts(ctx)
	assert.NoError(err)
	assert.Equal(int64(2), counts["greeting:english"])
	assert.Equal(int64(1), counts["greeting:urdu"])
}

func TestStatsHandleIgnoresNonTurnEvents(t *testing.T) {
	assert := assert.New(t)
	repo := newFakeStatsRepo()
	svc := NewStatsService(repo)

	err := svc.Handle(context.Background(), events.AssistantEvent{
		Type:   events.TypeRecoveredFailure,
		Intent: "greeting",
	})

	assert.NoError(err)
	counts, err := svc.GetIntentCounts(context.Background())
	assert.NoError(err)
	assert.Empty(counts)
}
