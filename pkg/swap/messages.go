package swap

import (
	"fmt"
	"strconv"
)

// User-facing message literals.
const (
	MsgInvalidAmount       = "Please enter a valid amount to swap."
	MsgSameCurrency        = "Cannot swap to the same currency."
	MsgInvalidCurrencies   = "Invalid currencies selected."
	MsgSwapFailed          = "An unknown error occurred."
	MsgInsufficientBalance = "Insufficient balance to perform the swap."
)

// feeDisplayFactor is the fixed 1% fee shown in the success message. It is
// display-only: the ledger credits the full converted amount.
const feeDisplayFactor = 0.99

// SuccessMessage returns the settlement message for a swap of amount units
// of from into to. The received quantity is shown net of the display fee,
// with 4 decimal places.
func SuccessMessage(amount float64, from, to string) string {
	received := FormatAmount(amount*feeDisplayFactor, 4)
	return fmt.Sprintf("Successfully swapped %s %s for %s %s.",
		strconv.FormatFloat(amount, 'f', -1, 64), from, received, to)
}
