// Package report selects and renders the most recent fully-defined bar of an
// indicated series.
package report

import (
	"fmt"
	"time"

	"SignalSentinel/internal/model"
)

// Summary is the fixed set of fields reported for one bar.
type Summary struct {
	Symbol   string
	Date     time.Time
	Close    float64
	SMAShort float64
	SMALong  float64
	RSI      float64
	Signal   model.Signal
	Params   model.Params
}

// Latest returns the index of the last bar whose derived columns are all
// defined, skipping any trailing undefined bars.
func Latest(ind *model.IndicatedSeries) (int, error) {
	if ind == nil {
		return -1, model.ErrNoDataAvailable
	}
	for i := len(ind.Bars) - 1; i >= 0; i-- {
		if ind.Bars[i].Defined() {
			return i, nil
		}
	}
	return -1, model.ErrNoDataAvailable
}

// Summarize returns the Summary of the latest fully-defined bar.
func Summarize(ind *model.IndicatedSeries) (*Summary, error) {
	i, err := Latest(ind)
	if err != nil {
		return nil, err
	}
	b := ind.Bars[i]
	return &Summary{
		Symbol:   ind.Symbol,
		Date:     b.Time,
		Close:    b.Close,
		SMAShort: b.SMAShort.Float(),
		SMALong:  b.SMALong.Float(),
		RSI:      b.RSI.Float(),
		Signal:   b.Signal,
		Params:   ind.Params,
	}, nil
}

// Line renders the summary as a single console line.
func (s *Summary) Line() string {
	return fmt.Sprintf("%s: Close=%.2f, SMA_SHORT=%.2f, SMA_LONG=%.2f, RSI=%.2f, Signal=%s",
		s.Date.Format(time.DateOnly), s.Close, s.SMAShort, s.SMALong, s.RSI, s.Signal)
}
