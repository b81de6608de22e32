package webapi

import "github.com/amirasaad/swapflow/pkg/swap"

// AmountRequest updates the raw "from" amount text.
type AmountRequest struct {
	Value string `json:"value"`
}

// CurrenciesRequest updates one or both sides of the selected pair.
type CurrenciesRequest struct {
	From string `json:"from" validate:"omitempty,uppercase"`
	To   string `json:"to" validate:"omitempty,uppercase"`
}

// BalanceResponse is one formatted ledger row.
type BalanceResponse struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
	Display  string  `json:"display"`
}

// NewBalanceResponse formats a ledger row for display.
func NewBalanceResponse(currency string, amount float64) BalanceResponse {
	return BalanceResponse{
		Currency: currency,
		Amount:   amount,
		Display:  swap.FormatAmount(amount, 4),
	}
}
