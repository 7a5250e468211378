package model

import (
	"fmt"
	"time"
)

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series is an ordered, validated sequence of bars for one symbol.
// Bars are strictly increasing by time with no duplicate timestamps.
type Series struct {
	Symbol string
	bars   []OHLCV
}

// NewSeries validates bars and returns a Series holding its own copy of them.
func NewSeries(symbol string, bars []OHLCV) (*Series, error) {
	if len(bars) == 0 {
		return nil, ErrEmptySeries
	}
	for i := 1; i < len(bars); i++ {
		if !bars[i].Time.After(bars[i-1].Time) {
			return nil, fmt.Errorf("bar %d at %s does not follow %s: %w",
				i, bars[i].Time.Format(time.DateOnly), bars[i-1].Time.Format(time.DateOnly), ErrUnorderedSeries)
		}
	}
	owned := make([]OHLCV, len(bars))
	copy(owned, bars)
	return &Series{Symbol: symbol, bars: owned}, nil
}

// Len returns the number of bars.
func (s *Series) Len() int { return len(s.bars) }

// Bar returns the bar at position i.
func (s *Series) Bar(i int) OHLCV { return s.bars[i] }

// Bars returns a copy of the underlying bars.
func (s *Series) Bars() []OHLCV {
	out := make([]OHLCV, len(s.bars))
	copy(out, s.bars)
	return out
}

// Closes returns the closing-price column.
func (s *Series) Closes() []float64 {
	closes := make([]float64, len(s.bars))
	for i, b := range s.bars {
		closes[i] = b.Close
	}
	return closes
}
