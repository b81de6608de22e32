package swap

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Receipt is the settlement record of a successful swap.
type Receipt struct {
	// ID uniquely identifies the transaction.
	ID uuid.UUID `json:"id"`
	// Message is the user-facing settlement text.
	Message string `json:"message"`
}

// Executor submits a swap transaction. The call blocks until the
// transaction settles or fails; an in-flight call is not cancellable other
// than through its context.
type Executor interface {
	Execute(ctx context.Context, from, to string, amount float64) (*Receipt, error)
}

// Simulator is a fault-injecting Executor standing in for a real exchange:
// it settles after a fixed latency and fails a fixed fraction of
// submissions with ErrSwapFailed.
type Simulator struct {
	latency     time.Duration
	successRate float64
	logger      *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator creates a Simulator. successRate is the probability in
// [0, 1] that a submission settles. A nil rng gets seeded from the clock.
func NewSimulator(latency time.Duration, successRate float64, rng *rand.Rand, logger *slog.Logger) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Simulator{
		latency:     latency,
		successRate: successRate,
		rng:         rng,
		logger:      logger,
	}
}

// Execute simulates network and settlement latency, then settles or fails
// probabilistically. The context cancels the wait, not a settlement that
// already happened.
func (s *Simulator) Execute(ctx context.Context, from, to string, amount float64) (*Receipt, error) {
	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	if s.roll() >= s.successRate {
		s.logger.Warn("simulated swap failure", "from", from, "to", to, "amount", amount)
		return nil, ErrSwapFailed
	}

	receipt := &Receipt{
		ID:      uuid.New(),
		Message: SuccessMessage(amount, from, to),
	}
	s.logger.Info("swap settled", "tx", receipt.ID, "from", from, "to", to, "amount", amount)
	return receipt, nil
}

func (s *Simulator) roll() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// StubExecutor is a deterministic Executor for tests and demos: it returns
// the configured error, or a receipt when Err is nil.
type StubExecutor struct {
	Err error

	mu    sync.Mutex
	calls int
}

// Execute returns immediately with the configured outcome.
func (s *StubExecutor) Execute(_ context.Context, from, to string, amount float64) (*Receipt, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.Err != nil {
		return nil, fmt.Errorf("execute swap: %w", s.Err)
	}
	return &Receipt{ID: uuid.New(), Message: SuccessMessage(amount, from, to)}, nil
}

// Calls reports how many times Execute was invoked.
func (s *StubExecutor) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
