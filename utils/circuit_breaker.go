// ABOUTME: This file implements circuit breaker pattern for the rewrite API
// ABOUTME: Prevents cascade failures by temporarily blocking calls to a failing service
package utils

import (
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen is returned when calls are blocked by an open circuit.
var ErrCircuitOpen = errors.New("circuit breaker open")

// CircuitBreakerState represents the current state of the circuit breaker.
type CircuitBreakerState int

const (
	// StateClosed means the circuit is closed and requests are allowed
	StateClosed CircuitBreakerState = iota
	// StateOpen means the circuit is open and requests are blocked
	StateOpen
	// StateHalfOpen means the circuit is testing if the service has recovered
	StateHalfOpen
)

// CircuitBreaker blocks calls to a downstream service after repeated
// failures, letting a probe through once the timeout elapses.
type CircuitBreaker struct {
	lastFailure time.Time
	failures    int
	threshold   int
	timeout     time.Duration
	state       CircuitBreakerState
	mu          sync.Mutex
}

// NewCircuitBreaker creates a circuit breaker with the given failure
// threshold and open-state timeout.
func NewCircuitBreaker(threshold int, timeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		threshold: threshold,
		timeout:   timeout,
		state:     StateClosed,
	}
}

// Call executes fn with circuit breaker protection.
func (cb *CircuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()

	if cb.state == StateOpen && time.Since(cb.lastFailure) >= cb.timeout {
		cb.state = StateHalfOpen
	}

	if cb.state == StateOpen {
		cb.mu.Unlock()
		return ErrCircuitOpen
	}

	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil {
		cb.failures++
		cb.lastFailure = time.Now()

		if cb.state == StateHalfOpen || cb.failures >= cb.threshold {
			cb.state = StateOpen
		}

		return err
	}

	cb.failures = 0
	cb.state = StateClosed

	return nil
}

// State returns the current state of the circuit breaker.
func (cb *CircuitBreaker) State() CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.state
}
