package handler

import (
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/circuitbreaker"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
)

func TestEnqueuer_Enqueue(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, producer.Close()) }()

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		require.JSONEq(t, `{"type":"AUTHOR_CREATED","authorId":1,"fullName":"Jane Austen","timestamp":"0001-01-01T00:00:00Z"}`, string(val))
		return nil
	})

	q := NewEnqueuer(producer, zap.NewNop())
	require.NoError(t, q.Enqueue(kafka.AuthorsTopic, model.AuthorEvent{
		Type:     model.AuthorCreated,
		AuthorID: 1,
		FullName: "Jane Austen",
	}))
}

func TestEnqueuer_OpensBreaker(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, producer.Close()) }()

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	q := NewEnqueuer(producer, zap.NewNop())
	event := model.AuthorEvent{Type: model.AuthorUpdated, AuthorID: 2, FullName: "J. Austen"}

	require.ErrorIs(t, q.Enqueue(kafka.AuthorsTopic, event), sarama.ErrOutOfBrokers)
	require.ErrorIs(t, q.Enqueue(kafka.AuthorsTopic, event), sarama.ErrOutOfBrokers)
	// the producer is not called while the breaker is open
	require.ErrorIs(t, q.Enqueue(kafka.AuthorsTopic, event), circuitbreaker.ErrOpen)
}

func TestEnqueuer_NilProducer(t *testing.T) {
	t.Parallel()
	q := NewEnqueuer(nil, zap.NewNop())
	require.NoError(t, q.Enqueue(kafka.AuthorsTopic, model.AuthorEvent{}))
}
