package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState int

const (
	CircuitStateClosed CircuitState = iota
	CircuitStateOpen
	CircuitStateHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case CircuitStateOpen:
		return "open"
	case CircuitStateHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

// CircuitBreaker stops calling a dependency after FailureThreshold
// consecutive failures. After OpenTimeout it lets HalfOpenMaxReq trials
// through and closes again once they all succeed. A disabled breaker
// allows every call.
type CircuitBreaker struct {
	mu       sync.Mutex
	cfg      CircuitBreakerConfig
	state    CircuitState
	failures int
	openedAt time.Time
	trials   int
	passed   int
	now      func() time.Time
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 15 * time.Second
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = 1
	}
	return &CircuitBreaker{cfg: cfg, now: time.Now}
}

// Do runs fn unless the circuit is open. Errors for which isFailure returns
// true count against the dependency; any other outcome counts as healthy.
func (b *CircuitBreaker) Do(fn func() error, isFailure func(error) bool) error {
	if err := b.allow(); err != nil {
		return err
	}

	err := fn()
	b.record(err != nil && (isFailure == nil || isFailure(err)))
	return err
}

func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return CircuitStateHalfOpen
	}
	return b.state
}

func (b *CircuitBreaker) allow() error {
	if !b.cfg.Enabled {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			return ErrCircuitOpen
		}
		b.state, b.trials, b.passed = CircuitStateHalfOpen, 0, 0
	}
	if b.state == CircuitStateHalfOpen {
		if b.trials >= b.cfg.HalfOpenMaxReq {
			return ErrCircuitOpen
		}
		b.trials++
	}
	return nil
}

func (b *CircuitBreaker) record(failed bool) {
	if !b.cfg.Enabled {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		if !failed {
			b.failures = 0
			return
		}
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.open()
		}
	case CircuitStateHalfOpen:
		if failed {
			b.open()
			return
		}
		b.passed++
		if b.passed >= b.cfg.HalfOpenMaxReq {
			b.state, b.failures, b.trials, b.passed = CircuitStateClosed, 0, 0, 0
		}
	case CircuitStateOpen:
		if failed {
			b.openedAt = b.now()
		}
	}
}

func (b *CircuitBreaker) open() {
	b.state = CircuitStateOpen
	b.openedAt = b.now()
	b.trials, b.passed = 0, 0
}
