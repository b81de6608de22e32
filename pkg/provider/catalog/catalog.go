// Package catalog loads the set of tradable currencies and their unit
// prices from an external feed. The loader is the collaborator boundary of
// the swap pipeline: it runs once per session and either yields a full
// catalog or fails terminally for that session.
package catalog

import (
	"context"
	"errors"

	"github.com/amirasaad/swapflow/pkg/currency"
)

// ErrUnavailable is returned when the catalog source cannot produce a
// catalog. The caller decides whether to retry; the pipeline itself never
// does.
var ErrUnavailable = errors.New("currency catalog unavailable")

// Source produces a currency catalog. Implementations must return a
// catalog whose prices are strictly positive for every listed entry.
type Source interface {
	Load(ctx context.Context) (*currency.Catalog, error)
}
