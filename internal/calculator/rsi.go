package calculator

import "SignalSentinel/internal/model"

// NeutralRSI is reported when both average gain and average loss are zero.
const NeutralRSI = 50.0

// AverageGainLoss returns the trailing arithmetic means of gains and losses
// over period price changes. The first change is at position 1, so both
// columns are undefined before position period.
func AverageGainLoss(prices []float64, period int) (avgGain, avgLoss []model.Value) {
	avgGain = make([]model.Value, len(prices))
	avgLoss = make([]model.Value, len(prices))
	if period <= 0 {
		return avgGain, avgLoss
	}

	gains := make([]float64, len(prices))
	losses := make([]float64, len(prices))
	for i := 1; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	// Sums are taken fresh for each window so a run without losses averages
	// to exactly zero.
	for i := period; i < len(prices); i++ {
		var g, l float64
		for j := i - period + 1; j <= i; j++ {
			g += gains[j]
			l += losses[j]
		}
		avgGain[i] = model.Some(g / float64(period))
		avgLoss[i] = model.Some(l / float64(period))
	}
	return avgGain, avgLoss
}

// RSIFromAverages converts average gain and loss into an RSI in [0, 100].
// No losses with some gain is 100, and no movement at all is NeutralRSI.
func RSIFromAverages(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return NeutralRSI
		}
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}

// RSI returns the relative strength index of prices over period, one value
// per position, undefined wherever the averages are undefined.
func RSI(prices []float64, period int) []model.Value {
	avgGain, avgLoss := AverageGainLoss(prices, period)
	return rsiColumn(avgGain, avgLoss)
}

func rsiColumn(avgGain, avgLoss []model.Value) []model.Value {
	out := make([]model.Value, len(avgGain))
	for i := range avgGain {
		g, okG := avgGain[i].Get()
		l, okL := avgLoss[i].Get()
		if !okG || !okL {
			continue
		}
		out[i] = model.Some(RSIFromAverages(g, l))
	}
	return out
}
