package handler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
)

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx context.Context

	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func TestConsumer_ConsumeClaim(t *testing.T) {
	t.Parallel()
	due := time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC)

	var got []model.Borrow
	upsert := func(_ context.Context, b model.Borrow) error {
		switch b.ID {
		case "rejected":
			return errors.Wrap(errs.ErrInvalidArgument, "unknown book")
		case "retry":
			return errors.New("db is down")
		}
		got = append(got, b)
		return nil
	}

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 5)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 1, Topic: "library.borrows",
		Value: []byte(`{"id":"b-1","borrowerId":1,"librarianId":2,"bookId":3,"requestedReturn":"2026-10-20T12:00:00Z","finished":true}`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 2, Value: []byte(`not json`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 3, Value: []byte(`{"id":"rejected"}`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 4, Value: []byte(`{"id":"retry"}`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 5, Value: []byte(`{"id":"b-2","bookId":3}`)}
	close(claim.messages)

	session := &fakeSession{ctx: context.Background()}
	consumer := NewConsumer(upsert, zap.NewNop())
	require.NoError(t, consumer.Setup(session))
	err := consumer.ConsumeClaim(session, claim)
	require.ErrorContains(t, err, "upsert borrow retry")
	require.NoError(t, consumer.Cleanup(session))

	require.Equal(t, []model.Borrow{{
		ID: "b-1", BorrowerID: 1, LibrarianID: 2, BookID: 3, RequestedReturn: due, Finished: true,
	}}, got)
	// the failed event and everything after it stay unconsumed for the next session
	require.Equal(t, []int64{1, 2, 3}, session.marked)
	require.Len(t, claim.messages, 1)
}

func TestConsumer_StopsOnSessionEnd(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	session := &fakeSession{ctx: ctx}
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage)}
	consumer := NewConsumer(func(context.Context, model.Borrow) error { return nil }, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- consumer.ConsumeClaim(session, claim) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop")
	}
}
