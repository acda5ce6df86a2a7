// Package kafka 提供了与 Kafka 消息队列交互的功能。
// 生产者侧发布助手事件；消费者侧驱动统计聚合。
package kafka

import (
	"context"
	"encoding/json"

	"zyron-go/internal/config"
	"zyron-go/pkg/events"
	"zyron-go/pkg/log"

	"github.com/segmentio/kafka-go"
)

// EventHandler defines the interface for any service that can process an
// assistant event. This decouples the Kafka consumer from the concrete
// aggregation implementation.
type EventHandler interface {
	Handle(ctx context.Context, event events.AssistantEvent) error
}

var producer *kafka.Writer

// InitProducer 初始化 Kafka 生产者。
func InitProducer(cfg config.KafkaConfig) {
	producer = &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}
	log.Info("Kafka 生产者初始化成功")
}

// Publisher 返回一个基于已初始化生产者的 events.Publisher。
func Publisher() events.Publisher {
	return producerPublisher{}
}

type producerPublisher struct{}

// Publish 将一条助手事件发送到 Kafka。
func (producerPublisher) Publish(event events.AssistantEvent) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return producer.WriteMessages(context.Background(),
		kafka.Message{
			Key:   []byte(event.ClientID),
			Value: eventBytes,
		},
	)
}

// StartConsumer 启动一个 Kafka 消费者来处理助手事件。
func StartConsumer(cfg config.KafkaConfig, handler EventHandler) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{cfg.Brokers},
		Topic:    cfg.Topic,
		GroupID:  "zyron-go-consumer",
		MinBytes: 10e3, // 10KB
		MaxBytes: 10e6, // 10MB
	})

	log.Infof("Kafka 消费者已启动，正在监听主题 '%s'", cfg.Topic)

	for {
		m, err := r.FetchMessage(context.Background())
		if err != nil {
			log.Error("从 Kafka 读取消息失败", err)
			break // 退出循环，可能需要重启策略
		}

		var event events.AssistantEvent
		if err := json.Unmarshal(m.Value, &event); err != nil {
			log.Errorf("无法解析 Kafka 消息: %v, value: %s", err, string(m.Value))
			// 消息格式错误，直接提交，避免阻塞队列
			if err := r.CommitMessages(context.Background(), m); err != nil {
				log.Errorf("提交错误消息失败: %v", err)
			}
			continue
		}

		// 统计聚合失败不重试：事件是低价值的计数数据，丢弃优于阻塞队列
		if err := handler.Handle(context.Background(), event); err != nil {
			log.Errorf("处理助手事件失败: type=%s, client=%s, error: %v", event.Type, event.ClientID, err)
		}
		if err := r.CommitMessages(context.Background(), m); err != nil {
			log.Errorf("提交 Kafka 消息 offset 失败: %v", err)
		}
	}

	if err := r.Close(); err != nil {
		log.Fatalf("关闭 Kafka 消费者失败: %v", err)
	}
}
