package calculator

import "SignalSentinel/internal/model"

// Compute runs the indicator engine over the closing prices of series and
// returns an IndicatedSeries of the same length. Signals are left at HOLD.
//
// A window that is non-positive or longer than the series can ever fill is
// rejected with *model.InvalidWindowError. RSI needs period+1 closes.
func Compute(series *model.Series, params model.Params) (*model.IndicatedSeries, error) {
	if series == nil || series.Len() == 0 {
		return nil, model.ErrEmptySeries
	}
	if err := ValidateWindows(params, series.Len()); err != nil {
		return nil, err
	}

	closes := series.Closes()
	smaShort := SMA(closes, params.Short)
	smaLong := SMA(closes, params.Long)
	avgGain, avgLoss := AverageGainLoss(closes, params.RSIPeriod)
	rsi := rsiColumn(avgGain, avgLoss)

	bars := make([]model.IndicatedBar, series.Len())
	for i := range bars {
		bars[i] = model.IndicatedBar{
			OHLCV:    series.Bar(i),
			SMAShort: smaShort[i],
			SMALong:  smaLong[i],
			AvgGain:  avgGain[i],
			AvgLoss:  avgLoss[i],
			RSI:      rsi[i],
		}
	}
	return &model.IndicatedSeries{Symbol: series.Symbol, Params: params, Bars: bars}, nil
}

// ValidateWindows checks params against a series of length n.
func ValidateWindows(params model.Params, n int) error {
	checks := []struct {
		name   string
		window int
		needs  int
	}{
		{"short", params.Short, params.Short},
		{"long", params.Long, params.Long},
		{"rsi_period", params.RSIPeriod, params.RSIPeriod + 1},
	}
	for _, c := range checks {
		if c.window <= 0 || c.needs > n {
			return &model.InvalidWindowError{Name: c.name, Window: c.window, Length: n}
		}
	}
	return nil
}
