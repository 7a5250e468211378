package strategy

import (
	"SignalSentinel/internal/calculator"
	"SignalSentinel/internal/model"
)

const (
	// OversoldRSI is the RSI level below which an uptrend is a BUY.
	OversoldRSI = 30.0
	// OverboughtRSI is the RSI level above which a downtrend is a SELL.
	OverboughtRSI = 70.0
)

// Signal classifies a single bar. Any undefined input yields HOLD.
func Signal(bar model.IndicatedBar) model.Signal {
	short, okS := bar.SMAShort.Get()
	long, okL := bar.SMALong.Get()
	rsi, okR := bar.RSI.Get()
	if !okS || !okL || !okR {
		return model.Hold
	}
	switch {
	case short > long && rsi < OversoldRSI:
		return model.Buy
	case short < long && rsi > OverboughtRSI:
		return model.Sell
	default:
		return model.Hold
	}
}

// Classify fills the Signal column of every bar in place. Each bar is
// classified on its own indicators only.
func Classify(ind *model.IndicatedSeries) {
	for i := range ind.Bars {
		ind.Bars[i].Signal = Signal(ind.Bars[i])
	}
}

// Evaluate computes indicators for series and classifies every bar.
func Evaluate(series *model.Series, params model.Params) (*model.IndicatedSeries, error) {
	ind, err := calculator.Compute(series, params)
	if err != nil {
		return nil, err
	}
	Classify(ind)
	return ind, nil
}
