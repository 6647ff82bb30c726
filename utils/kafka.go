package utils

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sandesh021/event-listing-backend/config"
)

var kafkaWriter *kafka.Writer

// InitializeKafka sets up the notification publisher. Without brokers the
// publisher stays nil and Publish becomes a no-op.
func InitializeKafka(cfg *config.Config) {
	if cfg.KafkaBrokers == "" {
		log.Println("ℹ️ KAFKA_BROKERS not set, event notifications disabled")
		return
	}

	kafkaWriter = &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	log.Printf("✅ Kafka publisher initialized (topic %s)", cfg.KafkaTopic)
}

// PublishNotification emits an event lifecycle message. Best-effort: a
// publish failure is logged and never surfaced to the request.
func PublishNotification(ctx context.Context, action string, payload interface{}) {
	if kafkaWriter == nil {
		return
	}

	value, err := json.Marshal(map[string]interface{}{
		"action":  action,
		"event":   payload,
		"sent_at": time.Now().UTC(),
	})
	if err != nil {
		log.Printf("⚠️ Kafka: could not marshal %s message: %v", action, err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(action),
		Value: value,
	}
	if err := kafkaWriter.WriteMessages(ctx, msg); err != nil {
		log.Printf("⚠️ Kafka: publish %s failed: %v", action, err)
	}
}

// CloseKafka flushes and closes the publisher on shutdown.
func CloseKafka() {
	if kafkaWriter == nil {
		return
	}
	if err := kafkaWriter.Close(); err != nil {
		log.Printf("⚠️ Kafka: close failed: %v", err)
	}
}
