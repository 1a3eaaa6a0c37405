package infra

import (
	"errors"
	"sync"
	"time"
)

type CBState int

const (
	CBClosed CBState = iota
	CBOpen
	CBHalfOpen
)

func (s CBState) String() string {
	switch s {
	case CBClosed:
		return "closed"
	case CBOpen:
		return "open"
	case CBHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// ErrCircuitOpen is returned by Execute while the breaker is open.
var ErrCircuitOpen = errors.New("smtp: envio suspendido tras fallos repetidos")

type CircuitBreakerConfig struct {
	FailureThreshold int
	OpenTimeout      time.Duration
}

// DefaultSMTPBreakerConfig trips after 3 failed sends and retries after 2 minutes.
func DefaultSMTPBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{FailureThreshold: 3, OpenTimeout: 2 * time.Minute}
}

// CircuitBreaker guards the SMTP relay used to mail dispatch sheets. After
// FailureThreshold consecutive send failures it opens and rejects sends
// until OpenTimeout has passed; then one trial send is let through.
type CircuitBreaker struct {
	mu        sync.Mutex
	state     CBState
	fallos    int
	abiertoEn time.Time
	cfg       CircuitBreakerConfig
	now       func() time.Time
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 3
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 2 * time.Minute
	}
	return &CircuitBreaker{cfg: cfg, now: time.Now}
}

// State returns the current state, moving open to half-open once the
// timeout has elapsed.
func (cb *CircuitBreaker) State() CBState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.stateLocked()
}

func (cb *CircuitBreaker) stateLocked() CBState {
	if cb.state == CBOpen && cb.now().Sub(cb.abiertoEn) >= cb.cfg.OpenTimeout {
		cb.state = CBHalfOpen
	}
	return cb.state
}

// Execute runs fn unless the breaker is open. Only one trial send runs while
// half-open; concurrent callers get ErrCircuitOpen.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	cb.mu.Lock()
	switch cb.stateLocked() {
	case CBOpen:
		cb.mu.Unlock()
		return ErrCircuitOpen
	case CBHalfOpen:
		// Block other callers until the trial send finishes.
		cb.state = CBOpen
		cb.abiertoEn = cb.now()
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err != nil {
		cb.fallos++
		if cb.fallos >= cb.cfg.FailureThreshold || cb.state == CBOpen {
			cb.state = CBOpen
			cb.abiertoEn = cb.now()
		}
		return err
	}
	cb.fallos = 0
	cb.state = CBClosed
	return nil
}
