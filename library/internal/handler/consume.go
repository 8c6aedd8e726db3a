package handler

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
)

type upsertBorrow func(ctx context.Context, b model.Borrow) error

// Consumer ingests borrow events from the borrows topic.
type Consumer struct {
	upsertBorrowHandler upsertBorrow
	log                 *zap.Logger
}

var _ sarama.ConsumerGroupHandler = (*Consumer)(nil)

func NewConsumer(upsert upsertBorrow, log *zap.Logger) *Consumer {
	return &Consumer{
		upsertBorrowHandler: upsert,
		log:                 log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks malformed and rejected events so they are not redelivered.
// Any other failure leaves the event unmarked and ends the session, so the next
// session resumes from that event.
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event model.BorrowEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("decode borrow event", zap.Error(err), zap.Int64("offset", message.Offset))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.upsertBorrowHandler(session.Context(), event.Borrow()); err != nil {
				consumer.log.Error("consumer.upsertBorrowHandler", zap.String("id", event.ID), zap.Error(err))
				if !errors.Is(err, errs.ErrInvalidArgument) {
					return errors.Wrapf(err, "upsert borrow %s", event.ID)
				}
				session.MarkMessage(message, "")
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
