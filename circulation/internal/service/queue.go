package service

import (
	"encoding/json"
	"time"

	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/pkg/breaker"
	"github.com/IBM/sarama"
)

type Enqueuer interface {
	Enqueue(topic string, v any) error
}

// NewEnqueuer wraps a sync producer in a circuit breaker so a flapping broker
// does not stall every circulation call on producer timeouts.
func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
		cb:       breaker.New(20, 30*time.Second, 0.5, 3),
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
	cb       breaker.CircuitBreaker
}

func (q *enqueuerImpl) Enqueue(topic string, v any) error {
	return q.cb.Call(func() error {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.StringEncoder(data)}
		if _, _, err = q.producer.SendMessage(msg); err != nil {
			return err
		}
		return nil
	})
}
