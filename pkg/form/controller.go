// Package form orchestrates the currency swap pipeline: it debounces the
// raw amount input, derives the converted amount from the price table, and
// on submission validates and executes the swap against the balance ledger.
package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/amirasaad/swapflow/pkg/currency"
	"github.com/amirasaad/swapflow/pkg/debounce"
	"github.com/amirasaad/swapflow/pkg/eventbus"
	"github.com/amirasaad/swapflow/pkg/ledger"
	"github.com/amirasaad/swapflow/pkg/provider/catalog"
	"github.com/amirasaad/swapflow/pkg/swap"
)

// ErrSubmitInFlight is returned when a submission arrives while a previous
// one has not settled yet. The in-flight call is not cancellable;
// resubmission stays blocked until it settles or fails.
var ErrSubmitInFlight = errors.New("swap already submitting")

const (
	defaultDebounceInterval = 500 * time.Millisecond
	defaultCalcDelay        = 300 * time.Millisecond

	// quotePlaces is the display precision of the derived "to amount".
	quotePlaces = 4
)

// Config carries the timing parameters of the pipeline.
type Config struct {
	// DebounceInterval is the quiet period the raw amount input must hold
	// before it settles.
	DebounceInterval time.Duration
	// CalcDelay is the secondary delay between a settled input and the
	// conversion computation.
	CalcDelay time.Duration
}

// parsePositiveAmount parses text as a strictly positive finite number.
// "NaN" and "Inf" parse under strconv but are not amounts.
func parsePositiveAmount(text string) (float64, bool) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

func (c Config) withDefaults() Config {
	if c.DebounceInterval <= 0 {
		c.DebounceInterval = defaultDebounceInterval
	}
	if c.CalcDelay <= 0 {
		c.CalcDelay = defaultCalcDelay
	}
	return c
}

// Snapshot is a consistent copy of the form state for display
// collaborators.
type Snapshot struct {
	FromAmount   string  `json:"from_amount"`
	ToAmount     string  `json:"to_amount"`
	FromCurrency string  `json:"from_currency"`
	ToCurrency   string  `json:"to_currency"`
	Submitting   bool    `json:"submitting"`
	Calculating  bool    `json:"calculating"`
	CanSubmit    bool    `json:"can_submit"`
	Message      Message `json:"message"`
}

// Controller sequences the debounce, calculate and swap flow of one form
// session. All state transitions happen under a single lock; overlapping
// timers are superseded by a generation counter so the displayed quote
// always reflects the most recent (amount, pair) tuple.
type Controller struct {
	cfg      Config
	source   catalog.Source
	ledger   *ledger.Ledger
	executor swap.Executor
	bus      *eventbus.Bus
	logger   *slog.Logger

	mu            sync.Mutex
	catalog       *currency.Catalog
	fromAmount    string
	debouncedFrom string
	toAmount      string
	fromCurrency  string
	toCurrency    string
	submitting    bool
	calculating   bool
	message       Message
	calcGen       uint64
	calcTimer     *time.Timer

	amountDeb *debounce.Debouncer[string]
}

// NewController creates a Controller. bus may be nil when no collaborator
// listens for state changes.
func NewController(
	source catalog.Source,
	l *ledger.Ledger,
	executor swap.Executor,
	cfg Config,
	bus *eventbus.Bus,
	logger *slog.Logger,
) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		cfg:      cfg.withDefaults(),
		source:   source,
		ledger:   l,
		executor: executor,
		bus:      bus,
		logger:   logger,
	}
	c.amountDeb = debounce.New(c.cfg.DebounceInterval, c.onAmountSettled)
	return c
}

// LoadCatalog pulls the catalog from the source and resets the form. With
// two or more currencies the first two become the default pair; with one,
// only the source side is selected; with none, selection stays empty. On
// failure the form stays unpopulated and swap-disabled; no retry is
// attempted here.
func (c *Controller) LoadCatalog(ctx context.Context) error {
	cat, err := c.source.Load(ctx)
	if err != nil {
		c.logger.Error("catalog load failed, swap form stays disabled", "error", err)
		return fmt.Errorf("load catalog: %w", err)
	}

	// A settled value from before the reload must not resurface.
	c.amountDeb.Stop()

	c.mu.Lock()
	c.catalog = cat
	c.fromAmount, c.debouncedFrom, c.toAmount = "", "", ""
	c.message = Message{}
	c.submitting = false
	c.cancelCalcLocked()
	c.fromCurrency, c.toCurrency = "", ""
	switch {
	case cat.Len() >= 2:
		c.fromCurrency = cat.Currencies[0].Symbol
		c.toCurrency = cat.Currencies[1].Symbol
	case cat.Len() == 1:
		c.fromCurrency = cat.Currencies[0].Symbol
	}
	c.mu.Unlock()

	c.bus.Publish(ctx, CatalogLoaded{Currencies: cat.Len()})
	return nil
}

// Currencies returns the loaded catalog entries in catalog order.
func (c *Controller) Currencies() []currency.Currency {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.catalog == nil {
		return nil
	}
	out := make([]currency.Currency, len(c.catalog.Currencies))
	copy(out, c.catalog.Currencies)
	return out
}

// SetFromAmount records the raw amount text and feeds it into the
// debouncer. The derived quote only updates once the input settles.
func (c *Controller) SetFromAmount(text string) {
	c.mu.Lock()
	c.fromAmount = text
	c.mu.Unlock()

	c.amountDeb.Update(text)
}

// SetFromCurrency selects the source currency. Symbols the catalog does
// not list are ignored. The typed amount resets and the cleared input is
// pushed through the normal debounce path so the derived quote clears as
// well.
func (c *Controller) SetFromCurrency(symbol string) {
	c.mu.Lock()
	if symbol == c.fromCurrency || !c.listedLocked(symbol) {
		c.mu.Unlock()
		return
	}
	c.fromCurrency = symbol
	c.fromAmount = ""
	c.toAmount = ""
	c.message = Message{}
	c.cancelCalcLocked()
	c.mu.Unlock()

	c.amountDeb.Update("")
}

// SetToCurrency selects the destination currency and reschedules the
// conversion for the already-settled amount. Symbols the catalog does not
// list are ignored.
func (c *Controller) SetToCurrency(symbol string) {
	c.mu.Lock()
	if symbol == c.toCurrency || !c.listedLocked(symbol) {
		c.mu.Unlock()
		return
	}
	c.toCurrency = symbol
	ev := c.scheduleCalcLocked()
	c.mu.Unlock()

	if ev != nil {
		c.bus.Publish(context.Background(), *ev)
	}
}

// Reverse exchanges the selected pair and, when both amount fields are
// non-empty, the displayed amounts too. This is a display convenience: no
// prices are re-queried and the debounce/calculate pipeline is not
// triggered. Applying it twice restores the original state.
func (c *Controller) Reverse() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fromCurrency, c.toCurrency = c.toCurrency, c.fromCurrency
	if c.fromAmount != "" && c.toAmount != "" {
		c.fromAmount, c.toAmount = c.toAmount, c.fromAmount
		// Keep the settled copy aligned without re-entering the pipeline.
		c.debouncedFrom = c.fromAmount
	}
	// A pending calculation refers to the old pair.
	c.cancelCalcLocked()
}

// SetMax sets the amount input to the full ledger balance of the source
// currency, driven through the normal debounce path.
func (c *Controller) SetMax() {
	c.mu.Lock()
	symbol := c.fromCurrency
	c.mu.Unlock()

	if symbol == "" {
		return
	}
	c.SetFromAmount(strconv.FormatFloat(c.ledger.Get(symbol), 'f', -1, 64))
}

// Submit validates the current form state and, when the gate passes,
// executes the swap. The gate is evaluated in fixed order and
// short-circuits at the first violation, each setting an error message:
// amount, same currency, known prices, balance. Further amount edits while
// submitting are accepted but do not affect the in-flight request.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}

	from, to := c.fromCurrency, c.toCurrency
	amountText := c.fromAmount

	amount, ok := parsePositiveAmount(amountText)
	if !ok {
		c.message = Message{Kind: MessageError, Text: swap.MsgInvalidAmount}
		c.mu.Unlock()
		return swap.ErrInvalidAmount
	}
	if from == to {
		c.message = Message{Kind: MessageError, Text: swap.MsgSameCurrency}
		c.mu.Unlock()
		return swap.ErrSameCurrency
	}
	fromPrice, okFrom := c.pricesLocked().Price(from)
	toPrice, okTo := c.pricesLocked().Price(to)
	if !okFrom || !okTo {
		c.message = Message{Kind: MessageError, Text: swap.MsgInvalidCurrencies}
		c.mu.Unlock()
		return swap.ErrInvalidCurrencies
	}
	if amount > c.ledger.Get(from) {
		c.message = Message{Kind: MessageError, Text: swap.MsgInsufficientBalance}
		c.mu.Unlock()
		return swap.ErrInsufficientBalance
	}

	c.submitting = true
	c.message = Message{}
	c.mu.Unlock()

	c.logger.Info("swap submitted", "from", from, "to", to, "amount", amount)
	c.bus.Publish(ctx, SwapSubmitted{FromCurrency: from, ToCurrency: to, Amount: amount})

	receipt, err := c.executor.Execute(ctx, from, to, amount)

	c.mu.Lock()
	c.submitting = false
	if err != nil {
		c.message = Message{Kind: MessageError, Text: swap.MsgSwapFailed}
		c.mu.Unlock()
		c.logger.Error("swap failed", "from", from, "to", to, "amount", amount, "error", err)
		c.bus.Publish(ctx, SwapFailed{FromCurrency: from, ToCurrency: to, Amount: amount, Reason: err.Error()})
		return fmt.Errorf("execute swap: %w", err)
	}

	toAmount := swap.Convert(amount, fromPrice, toPrice)
	if err := c.ledger.Apply(from, amount, to, toAmount); err != nil {
		c.message = Message{Kind: MessageError, Text: swap.MsgSwapFailed}
		c.mu.Unlock()
		c.logger.Error("ledger apply failed", "from", from, "to", to, "error", err)
		return fmt.Errorf("apply swap: %w", err)
	}

	c.message = Message{Kind: MessageSuccess, Text: receipt.Message}
	c.fromAmount, c.debouncedFrom, c.toAmount = "", "", ""
	c.cancelCalcLocked()
	c.mu.Unlock()

	c.bus.Publish(ctx, SwapSettled{
		TransactionID: receipt.ID,
		FromCurrency:  from,
		ToCurrency:    to,
		FromAmount:    amount,
		ToAmount:      toAmount,
	})
	c.bus.Publish(ctx, BalancesChanged{Balances: c.ledger.Snapshot()})
	return nil
}

// CanSubmit mirrors the submission gate plus the transient flags, so the
// display affordance always matches what a submission would validate.
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canSubmitLocked()
}

// State returns a consistent snapshot of the form for display.
func (c *Controller) State() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		FromAmount:   c.fromAmount,
		ToAmount:     c.toAmount,
		FromCurrency: c.fromCurrency,
		ToCurrency:   c.toCurrency,
		Submitting:   c.submitting,
		Calculating:  c.calculating,
		CanSubmit:    c.canSubmitLocked(),
		Message:      c.message,
	}
}

// Close cancels all pending timers. The controller must not be used after.
func (c *Controller) Close() {
	c.amountDeb.Stop()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelCalcLocked()
}

func (c *Controller) onAmountSettled(text string) {
	c.mu.Lock()
	c.debouncedFrom = text
	ev := c.scheduleCalcLocked()
	c.mu.Unlock()

	if ev != nil {
		c.bus.Publish(context.Background(), *ev)
	}
}

// scheduleCalcLocked discards any pending calculation and schedules a new
// one for the settled amount. Trivial cases resolve synchronously and
// return the resulting quote event; otherwise the calculating flag is
// asserted for the duration of the secondary delay and nil is returned.
func (c *Controller) scheduleCalcLocked() *QuoteUpdated {
	c.cancelCalcLocked()

	amount, ok := parsePositiveAmount(c.debouncedFrom)
	if !ok {
		c.toAmount = ""
		return c.quoteLocked()
	}
	if c.fromCurrency == c.toCurrency {
		// Identical pair: output equals input, no price lookup.
		c.toAmount = c.debouncedFrom
		return c.quoteLocked()
	}

	c.calculating = true
	gen := c.calcGen
	c.calcTimer = time.AfterFunc(c.cfg.CalcDelay, func() {
		c.finishCalc(gen, amount)
	})
	return nil
}

func (c *Controller) finishCalc(gen uint64, amount float64) {
	c.mu.Lock()
	if gen != c.calcGen {
		// Superseded by a newer amount or pair change.
		c.mu.Unlock()
		return
	}
	c.calcTimer = nil
	c.calculating = false

	fromPrice, okFrom := c.pricesLocked().Price(c.fromCurrency)
	toPrice, okTo := c.pricesLocked().Price(c.toCurrency)
	if okFrom && okTo {
		c.toAmount = swap.FormatAmount(swap.Convert(amount, fromPrice, toPrice), quotePlaces)
	} else {
		c.toAmount = ""
	}
	ev := c.quoteLocked()
	c.mu.Unlock()

	c.bus.Publish(context.Background(), *ev)
}

// cancelCalcLocked supersedes any pending calculation timer.
func (c *Controller) cancelCalcLocked() {
	c.calcGen++
	if c.calcTimer != nil {
		c.calcTimer.Stop()
		c.calcTimer = nil
	}
	c.calculating = false
}

func (c *Controller) listedLocked(symbol string) bool {
	return c.catalog != nil && c.catalog.Has(symbol)
}

func (c *Controller) pricesLocked() currency.PriceTable {
	if c.catalog == nil {
		return nil
	}
	return c.catalog.Prices
}

func (c *Controller) quoteLocked() *QuoteUpdated {
	return &QuoteUpdated{
		FromAmount:   c.fromAmount,
		ToAmount:     c.toAmount,
		FromCurrency: c.fromCurrency,
		ToCurrency:   c.toCurrency,
	}
}

func (c *Controller) canSubmitLocked() bool {
	if c.submitting || c.calculating {
		return false
	}
	amount, ok := parsePositiveAmount(c.fromAmount)
	if !ok {
		return false
	}
	if c.fromCurrency == c.toCurrency {
		return false
	}
	if _, ok := c.pricesLocked().Price(c.fromCurrency); !ok {
		return false
	}
	if _, ok := c.pricesLocked().Price(c.toCurrency); !ok {
		return false
	}
	return amount <= c.ledger.Get(c.fromCurrency)
}
