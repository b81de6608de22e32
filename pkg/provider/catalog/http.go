package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/amirasaad/swapflow/pkg/currency"
	"github.com/tidwall/gjson"
)

// HTTPSource loads the catalog from a markets-style JSON feed: an array of
// objects with "symbol", "name", "image" and "current_price" fields.
type HTTPSource struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPSource creates an HTTPSource for the given feed URL.
func NewHTTPSource(url string, timeout time.Duration, logger *slog.Logger) *HTTPSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPSource{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Load fetches and parses the feed. Symbols are uppercased and the currency
// list is sorted by symbol; entries without a symbol or with a non-positive
// price are skipped so the price table only ever holds positive prices.
func (s *HTTPSource) Load(ctx context.Context) (*currency.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	s.logger.Info("fetching currency catalog", "url", s.url)
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: feed returned status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("%w: feed is not a JSON array", ErrUnavailable)
	}

	cat := &currency.Catalog{Prices: currency.PriceTable{}}
	parsed.ForEach(func(_, item gjson.Result) bool {
		symbol := strings.ToUpper(item.Get("symbol").String())
		price := item.Get("current_price").Float()
		if symbol == "" || price <= 0 {
			return true
		}
		if _, seen := cat.Prices[symbol]; seen {
			return true
		}
		cat.Prices[symbol] = price
		cat.Currencies = append(cat.Currencies, currency.Currency{
			Symbol: symbol,
			Name:   item.Get("name").String(),
			Icon:   item.Get("image").String(),
		})
		return true
	})

	sort.Slice(cat.Currencies, func(i, j int) bool {
		return cat.Currencies[i].Symbol < cat.Currencies[j].Symbol
	})

	s.logger.Info("currency catalog loaded", "currencies", cat.Len())
	return cat, nil
}
