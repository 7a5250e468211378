package collector

import (
	"context"

	"SignalSentinel/internal/model"
)

// DefaultPeriod is the history range requested when none is configured.
const DefaultPeriod = "1y"

// Periods lists the supported history ranges.
var Periods = []string{"1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}

// ValidPeriod reports whether period is one of Periods.
func ValidPeriod(period string) bool {
	for _, p := range Periods {
		if p == period {
			return true
		}
	}
	return false
}

// Fetcher defines the interface for fetching daily bars.
type Fetcher interface {
	FetchBars(ctx context.Context, symbol, period string) ([]model.OHLCV, error)
	Name() string
}
