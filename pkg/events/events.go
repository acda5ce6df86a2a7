// Package events defines the structured assistant events that flow to Kafka.
// 每个回合和每次被内部吞掉的故障都会产生一条事件，使“永不崩溃、总有回复”
// 的恢复路径对外部可观测。
package events

import "time"

// 事件类型。
const (
	TypeTurn             = "turn"              // 一次完整的 用户→助手 回合
	TypeRecoveredFailure = "recovered_failure" // 被内部恢复、未上抛的故障
)

// AssistantEvent represents one observable fact about the assistant pipeline.
type AssistantEvent struct {
	Type      string    `json:"type"`
	ClientID  string    `json:"client_id"`
	Intent    string    `json:"intent,omitempty"`
	Language  string    `json:"language,omitempty"`
	Stage     string    `json:"stage,omitempty"` // 故障发生的环节，如 persist / pipeline
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher 是事件出口的抽象，解耦业务层与具体的 Kafka 实现。
type Publisher interface {
	Publish(event AssistantEvent) error
}

// NopPublisher 在 Kafka 未启用时使用，丢弃所有事件。
type NopPublisher struct{}

// Publish 实现 Publisher 接口。
func (NopPublisher) Publish(AssistantEvent) error { return nil }
