package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

type State uint8

const (
	Closed State = iota + 1
	Open
	HalfOpen
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

var ErrOpen = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(fn func() error) error
	State() State
	Reset()
}

type Option func(*breaker)

func WithClock(now func() time.Time) Option {
	return func(b *breaker) {
		b.now = now
	}
}

type breaker struct {
	mu    sync.Mutex
	state State
	now   func() time.Time

	// outcomes is a ring of the last len(outcomes) calls, true on failure.
	outcomes []bool
	pos      int
	// failureRatio of the ring that trips the breaker open.
	failureRatio float64
	// openTimeout before an open breaker lets a trial call through.
	openTimeout time.Duration
	openedAt    time.Time
	// recoveryCalls is the number of consecutive successes in half-open needed to close.
	recoveryCalls int
	successes     int
}

func New(window int, openTimeout time.Duration, failureRatio float64, recoveryCalls int, opts ...Option) CircuitBreaker {
	if window < 1 {
		window = 1
	}
	b := &breaker{
		state:         Closed,
		now:           time.Now,
		outcomes:      make([]bool, window),
		failureRatio:  failureRatio,
		openTimeout:   openTimeout,
		recoveryCalls: recoveryCalls,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *breaker) Call(fn func() error) error {
	b.mu.Lock()
	if b.state == Open {
		if b.now().Sub(b.openedAt) <= b.openTimeout {
			b.mu.Unlock()
			return ErrOpen
		}
		b.state = HalfOpen
		b.successes = 0
	}
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.outcomes[b.pos] = err != nil
	b.pos = (b.pos + 1) % len(b.outcomes)

	if b.state == HalfOpen {
		if err != nil {
			b.trip()
			return err
		}
		b.successes++
		if b.successes >= b.recoveryCalls {
			b.reset()
		}
		return nil
	}

	if b.failures() >= b.failureRatio {
		b.trip()
	}
	return err
}

func (b *breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reset()
}

func (b *breaker) failures() float64 {
	n := 0
	for _, failed := range b.outcomes {
		if failed {
			n++
		}
	}
	return float64(n) / float64(len(b.outcomes))
}

func (b *breaker) trip() {
	b.state = Open
	b.successes = 0
	b.openedAt = b.now()
}

func (b *breaker) reset() {
	for i := range b.outcomes {
		b.outcomes[i] = false
	}
	b.pos = 0
	b.successes = 0
	b.state = Closed
}
