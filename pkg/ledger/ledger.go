// Package ledger holds the authoritative per-currency balances for a
// session. The ledger is the single source of truth for affordability
// checks and the only state mutated by a settled swap.
package ledger

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
)

var (
	// ErrInsufficientFunds is returned when a debit would drive the source
	// balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrNonPositiveAmount is returned when either leg of an apply is not a
	// strictly positive finite number.
	ErrNonPositiveAmount = errors.New("amount must be positive")
	// ErrSameCurrency is returned when both legs name the same currency.
	// Netting a self-swap is deliberately not supported; the caller must
	// reject the pair before it reaches the ledger.
	ErrSameCurrency = errors.New("cannot apply swap between the same currency")
)

// Ledger is a mutex-protected mapping of currency symbol to available
// amount. A missing symbol reads as zero.
type Ledger struct {
	mu       sync.Mutex
	balances map[string]float64
}

// New creates a Ledger seeded with the given balances. The seed map is
// copied; a nil seed yields an empty ledger.
func New(seed map[string]float64) *Ledger {
	balances := make(map[string]float64, len(seed))
	for sym, amount := range seed {
		balances[sym] = amount
	}
	return &Ledger{balances: balances}
}

// Get returns the available balance for symbol, zero when unknown.
func (l *Ledger) Get(symbol string) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[symbol]
}

// Apply debits fromAmount of from and credits toAmount of to as one atomic
// operation computed from a single snapshot of prior balances. On any error
// the ledger is left untouched.
func (l *Ledger) Apply(from string, fromAmount float64, to string, toAmount float64) error {
	// The negated comparison also rejects NaN, which fails every ordering.
	if !(fromAmount > 0) || !(toAmount > 0) || math.IsInf(fromAmount, 1) || math.IsInf(toAmount, 1) {
		return ErrNonPositiveAmount
	}
	if from == to {
		return ErrSameCurrency
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balances[from] < fromAmount {
		return fmt.Errorf("%w: %s balance %v, requested %v", ErrInsufficientFunds, from, l.balances[from], fromAmount)
	}

	l.balances[from] -= fromAmount
	l.balances[to] += toAmount
	return nil
}

// Snapshot returns a copy of all balances for display.
func (l *Ledger) Snapshot() map[string]float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]float64, len(l.balances))
	for sym, amount := range l.balances {
		out[sym] = amount
	}
	return out
}

// ParseSeed parses a seed string of the form "ETH:10,BTC:1,USDT:10000".
func ParseSeed(s string) (map[string]float64, error) {
	seed := make(map[string]float64)
	if strings.TrimSpace(s) == "" {
		return seed, nil
	}
	for _, part := range strings.Split(s, ",") {
		sym, amountText, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("invalid seed entry %q", part)
		}
		amount, err := strconv.ParseFloat(amountText, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed amount %q: %w", amountText, err)
		}
		if !(amount >= 0) || math.IsInf(amount, 1) {
			return nil, fmt.Errorf("invalid seed amount %q", part)
		}
		seed[strings.ToUpper(sym)] = amount
	}
	return seed, nil
}

// DefaultSeed returns the representative starting balances used when no
// seed is configured.
func DefaultSeed() map[string]float64 {
	return map[string]float64{
		"ETH":  10,
		"BTC":  1,
		"USDT": 10000,
		"BNB":  50,
		"SOL":  200,
		"AAVE": 1993,
	}
}
