package export

import (
	"time"

	"SignalSentinel/internal/model"
)

// Row is the flat DTO written by every exporter. Undefined indicator values
// are nil.
type Row struct {
	Date     string   `json:"date" parquet:"date"`
	Open     float64  `json:"open" parquet:"open"`
	High     float64  `json:"high" parquet:"high"`
	Low      float64  `json:"low" parquet:"low"`
	Close    float64  `json:"close" parquet:"close"`
	Volume   float64  `json:"volume" parquet:"volume"`
	SMAShort *float64 `json:"sma_short" parquet:"sma_short,optional"`
	SMALong  *float64 `json:"sma_long" parquet:"sma_long,optional"`
	AvgGain  *float64 `json:"avg_gain" parquet:"avg_gain,optional"`
	AvgLoss  *float64 `json:"avg_loss" parquet:"avg_loss,optional"`
	RSI      *float64 `json:"rsi" parquet:"rsi,optional"`
	Signal   string   `json:"signal" parquet:"signal"`
}

// Header is the column order used by the tabular exporters.
var Header = []string{"date", "open", "high", "low", "close", "volume",
	"sma_short", "sma_long", "avg_gain", "avg_loss", "rsi", "signal"}

// Rows flattens an indicated series.
func Rows(ind *model.IndicatedSeries) []Row {
	rows := make([]Row, len(ind.Bars))
	for i, b := range ind.Bars {
		rows[i] = Row{
			Date:     b.Time.Format(time.DateOnly),
			Open:     b.Open,
			High:     b.High,
			Low:      b.Low,
			Close:    b.Close,
			Volume:   b.Volume,
			SMAShort: b.SMAShort.Ptr(),
			SMALong:  b.SMALong.Ptr(),
			AvgGain:  b.AvgGain.Ptr(),
			AvgLoss:  b.AvgLoss.Ptr(),
			RSI:      b.RSI.Ptr(),
			Signal:   b.Signal.String(),
		}
	}
	return rows
}

// cells returns the row as values in Header order; undefined values are nil.
func (r Row) cells() []interface{} {
	opt := func(p *float64) interface{} {
		if p == nil {
			return nil
		}
		return *p
	}
	return []interface{}{r.Date, r.Open, r.High, r.Low, r.Close, r.Volume,
		opt(r.SMAShort), opt(r.SMALong), opt(r.AvgGain), opt(r.AvgLoss), opt(r.RSI), r.Signal}
}
