package calculator

import (
	"errors"

	"SignalSentinel/internal/model"
)

// CalculateSMA computes the simple moving average of the last period prices.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// SMA returns the rolling simple moving average of prices, one value per
// position. Positions before the window is full are undefined, and a window
// longer than prices leaves every position undefined.
func SMA(prices []float64, period int) []model.Value {
	out := make([]model.Value, len(prices))
	if period <= 0 {
		return out
	}
	for i := period - 1; i < len(prices); i++ {
		avg, err := CalculateSMA(prices[:i+1], period)
		if err != nil {
			continue
		}
		out[i] = model.Some(avg)
	}
	return out
}
