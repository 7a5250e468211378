package collector

import (
	"context"
	"fmt"
	"log"
	"sort"

	"SignalSentinel/internal/model"
)

// Collector fetches history for one symbol and turns it into a Series.
type Collector struct {
	Fetcher Fetcher
	Symbol  string
	Period  string
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol, period string) *Collector {
	if period == "" {
		period = DefaultPeriod
	}
	return &Collector{Fetcher: fetcher, Symbol: symbol, Period: period}
}

// Collect fetches bars and returns them as a validated Series.
func (c *Collector) Collect(ctx context.Context) (*model.Series, error) {
	bars, err := c.Fetcher.FetchBars(ctx, c.Symbol, c.Period)
	if err != nil {
		return nil, fmt.Errorf("fetch %s bars: %w", c.Symbol, err)
	}
	bars = Normalize(bars)
	if len(bars) == 0 {
		return nil, fmt.Errorf("no data found for %s: %w", c.Symbol, model.ErrEmptySeries)
	}
	log.Printf("[INFO] collected %d bars for %s from %s (%s .. %s)", len(bars), c.Symbol, c.Fetcher.Name(),
		bars[0].Time.Format("2006-01-02"), bars[len(bars)-1].Time.Format("2006-01-02"))
	return model.NewSeries(c.Symbol, bars)
}

// Normalize sorts bars chronologically, keeps the last bar for any repeated
// timestamp, and drops bars without a positive close.
func Normalize(bars []model.OHLCV) []model.OHLCV {
	out := make([]model.OHLCV, 0, len(bars))
	for _, b := range bars {
		if b.Close > 0 {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })

	deduped := out[:0]
	for _, b := range out {
		if n := len(deduped); n > 0 && deduped[n-1].Time.Equal(b.Time) {
			deduped[n-1] = b
			continue
		}
		deduped = append(deduped, b)
	}
	return deduped
}
