package handler

import (
	"time"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/pkg/circuitbreaker"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Enqueuer interface {
	Enqueue(topic string, v any) error
}

// NewEnqueuer publishes through producer. A nil producer yields an enqueuer
// that drops every message, used when kafka is not configured.
func NewEnqueuer(producer sarama.SyncProducer, log *zap.Logger) Enqueuer {
	if producer == nil {
		return nopEnqueuer{}
	}
	return &enqueuerImpl{
		producer: producer,
		cb:       circuitbreaker.New(4, 30*time.Second, 0.5, 2),
		log:      log.Named("enqueuer"),
	}
}

type nopEnqueuer struct{}

func (nopEnqueuer) Enqueue(string, any) error { return nil }

type enqueuerImpl struct {
	producer sarama.SyncProducer
	cb       circuitbreaker.CircuitBreaker
	log      *zap.Logger
}

func (q *enqueuerImpl) Enqueue(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshal message")
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.ByteEncoder(data)}
	return q.cb.Call(func() error {
		partition, offset, err := q.producer.SendMessage(msg)
		if err != nil {
			return errors.Wrapf(err, "send to %s", topic)
		}
		q.log.Debug("message sent", zap.String("topic", topic), zap.Int32("partition", partition), zap.Int64("offset", offset))
		return nil
	})
}
