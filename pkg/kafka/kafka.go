package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

const (
	CirculationTopic         = "circulation-events"
	CirculationConsumerGroup = "circulation-stats"
)

type EventType string

const (
	EventIssued       EventType = "ISSUED"
	EventReturned     EventType = "RETURNED"
	EventFineAssessed EventType = "FINE_ASSESSED"
)

// CirculationEvent is the wire format for the circulation event stream.
type CirculationEvent struct {
	EventID       string    `json:"eventId"`
	EventType     EventType `json:"eventType"`
	StudentID     int       `json:"studentId"`
	ResourceID    int       `json:"resourceId"`
	TransactionID int       `json:"transactionId"`
	Amount        float64   `json:"amount,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer group loop until ctx is canceled. Consume returns
// after every rebalance, hence the loop.
func Consume(ctx context.Context, consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, log *zap.Logger, topics ...string) {
	for {
		if err := consumer.Consume(ctx, topics, handler); err != nil {
			log.Error("consumer.Consume", zap.Error(err))
		}
		if ctx.Err() != nil {
			return
		}
	}
}
