package webapi

import (
	"sort"

	"github.com/amirasaad/swapflow/pkg/form"
	"github.com/amirasaad/swapflow/pkg/ledger"
	"github.com/gofiber/fiber/v2"
)

// FormRoutes registers the swap form session endpoints. The process hosts
// one form session; every endpoint reads or drives that session.
func FormRoutes(app *fiber.App, ctl *form.Controller, l *ledger.Ledger) {
	api := app.Group("/api")

	api.Get("/form", GetForm(ctl))
	api.Put("/form/amount", PutAmount(ctl))
	api.Put("/form/currencies", PutCurrencies(ctl))
	api.Post("/form/reverse", PostReverse(ctl))
	api.Post("/form/max", PostMax(ctl))
	api.Post("/form/swap", PostSwap(ctl))

	api.Get("/currencies", GetCurrencies(ctl))
	api.Get("/balances", GetBalances(l))
}

// GetForm returns the current form snapshot.
func GetForm(ctl *form.Controller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return SuccessResponseJSON(c, fiber.StatusOK, "Form state fetched", ctl.State())
	}
}

// PutAmount updates the raw "from" amount; the quote follows once the
// input settles through the debounce pipeline.
func PutAmount(ctl *form.Controller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := BindAndValidate[AmountRequest](c)
		if err != nil {
			return nil
		}
		ctl.SetFromAmount(req.Value)
		return SuccessResponseJSON(c, fiber.StatusOK, "Amount updated", ctl.State())
	}
}

// PutCurrencies updates the selected pair. Either side may be omitted.
func PutCurrencies(ctl *form.Controller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := BindAndValidate[CurrenciesRequest](c)
		if err != nil {
			return nil
		}
		if req.From != "" {
			ctl.SetFromCurrency(req.From)
		}
		if req.To != "" {
			ctl.SetToCurrency(req.To)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Currencies updated", ctl.State())
	}
}

// PostReverse swaps the selected pair and, when present, the displayed
// amounts.
func PostReverse(ctl *form.Controller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctl.Reverse()
		return SuccessResponseJSON(c, fiber.StatusOK, "Swap direction reversed", ctl.State())
	}
}

// PostMax sets the amount to the full balance of the source currency.
func PostMax(ctl *form.Controller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctl.SetMax()
		return SuccessResponseJSON(c, fiber.StatusOK, "Amount set to balance", ctl.State())
	}
}

// PostSwap validates and submits the swap. The call blocks until the
// transaction settles or fails.
func PostSwap(ctl *form.Controller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := ctl.Submit(c.Context()); err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Swap rejected", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Swap settled", ctl.State())
	}
}

// GetCurrencies lists the loaded catalog entries in catalog order.
func GetCurrencies(ctl *form.Controller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return SuccessResponseJSON(c, fiber.StatusOK, "Currencies fetched", ctl.Currencies())
	}
}

// GetBalances returns all ledger balances, sorted by currency.
func GetBalances(l *ledger.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snapshot := l.Snapshot()
		symbols := make([]string, 0, len(snapshot))
		for sym := range snapshot {
			symbols = append(symbols, sym)
		}
		sort.Strings(symbols)

		rows := make([]BalanceResponse, 0, len(symbols))
		for _, sym := range symbols {
			rows = append(rows, NewBalanceResponse(sym, snapshot[sym]))
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Balances fetched", rows)
	}
}
