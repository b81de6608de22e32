package form

import "github.com/google/uuid"

// CatalogLoaded is published when the currency catalog finishes loading
// and the form has been reset to its defaults.
type CatalogLoaded struct {
	Currencies int
}

// EventType returns the type of the CatalogLoaded event.
func (CatalogLoaded) EventType() string { return "CatalogLoaded" }

// QuoteUpdated is published whenever the derived "to amount" display
// changes.
type QuoteUpdated struct {
	FromAmount   string
	ToAmount     string
	FromCurrency string
	ToCurrency   string
}

// EventType returns the type of the QuoteUpdated event.
func (QuoteUpdated) EventType() string { return "QuoteUpdated" }

// SwapSubmitted is published when a validated swap is handed to the
// executor.
type SwapSubmitted struct {
	FromCurrency string
	ToCurrency   string
	Amount       float64
}

// EventType returns the type of the SwapSubmitted event.
func (SwapSubmitted) EventType() string { return "SwapSubmitted" }

// SwapSettled is published after a successful swap has been applied to the
// ledger.
type SwapSettled struct {
	TransactionID uuid.UUID
	FromCurrency  string
	ToCurrency    string
	FromAmount    float64
	ToAmount      float64
}

// EventType returns the type of the SwapSettled event.
func (SwapSettled) EventType() string { return "SwapSettled" }

// SwapFailed is published when a submitted swap fails to settle. Balances
// are untouched.
type SwapFailed struct {
	FromCurrency string
	ToCurrency   string
	Amount       float64
	Reason       string
}

// EventType returns the type of the SwapFailed event.
func (SwapFailed) EventType() string { return "SwapFailed" }

// BalancesChanged is published after the ledger has been mutated.
type BalancesChanged struct {
	Balances map[string]float64
}

// EventType returns the type of the BalancesChanged event.
func (BalancesChanged) EventType() string { return "BalancesChanged" }
