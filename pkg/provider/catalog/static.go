package catalog

import (
	"context"

	"github.com/amirasaad/swapflow/pkg/currency"
)

// StaticSource serves a fixed in-memory catalog. Useful for tests and for
// running the pipeline without a network feed.
type StaticSource struct {
	catalog *currency.Catalog
}

// NewStaticSource creates a StaticSource serving the given catalog.
func NewStaticSource(cat *currency.Catalog) *StaticSource {
	return &StaticSource{catalog: cat}
}

// Load returns a copy of the configured catalog so callers cannot mutate
// the source's backing data.
func (s *StaticSource) Load(_ context.Context) (*currency.Catalog, error) {
	if s.catalog == nil {
		return nil, ErrUnavailable
	}
	cat := &currency.Catalog{
		Currencies: make([]currency.Currency, len(s.catalog.Currencies)),
		Prices:     make(currency.PriceTable, len(s.catalog.Prices)),
	}
	copy(cat.Currencies, s.catalog.Currencies)
	for sym, price := range s.catalog.Prices {
		cat.Prices[sym] = price
	}
	return cat, nil
}
