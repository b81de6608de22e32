package currency

// Currency describes a tradable asset as presented by the catalog feed.
type Currency struct {
	// Symbol is the unique identifier of the currency (e.g., "ETH").
	Symbol string `json:"symbol"`
	// Name is the human-readable display name (e.g., "Ethereum").
	Name string `json:"name"`
	// Icon is a reference (URL) to the currency's image icon.
	Icon string `json:"icon"`
}

// PriceTable maps a currency symbol to its unit price expressed in the
// common quote currency. A price is always strictly positive when present;
// a missing entry means the price is unknown.
type PriceTable map[string]float64

// Price returns the unit price for symbol. The second return value is false
// when no price is known for the symbol.
func (p PriceTable) Price(symbol string) (float64, bool) {
	v, ok := p[symbol]
	return v, ok
}

// Catalog is the set of tradable currencies and their prices, loaded once
// per session. Currencies keeps the order produced by the source; the first
// two entries act as the default selection for a swap pair.
type Catalog struct {
	Currencies []Currency `json:"currencies"`
	Prices     PriceTable `json:"prices"`
}

// Has reports whether the catalog lists a currency with the given symbol.
func (c *Catalog) Has(symbol string) bool {
	for _, cur := range c.Currencies {
		if cur.Symbol == symbol {
			return true
		}
	}
	return false
}

// Len returns the number of currencies in the catalog.
func (c *Catalog) Len() int { return len(c.Currencies) }
