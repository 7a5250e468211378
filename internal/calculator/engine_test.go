package calculator

import (
	"errors"
	"testing"
	"time"

	"SignalSentinel/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seriesOf(t *testing.T, closes ...float64) *model.Series {
	t.Helper()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{Time: start.AddDate(0, 0, i), Open: c, High: c, Low: c, Close: c}
	}
	s, err := model.NewSeries("TEST", bars)
	require.NoError(t, err)
	return s
}

func TestCompute_AlignedColumns(t *testing.T) {
	s := seriesOf(t, 1, 2, 3, 4, 5, 6)
	ind, err := Compute(s, model.Params{Short: 2, Long: 3, RSIPeriod: 2})
	require.NoError(t, err)
	require.Equal(t, s.Len(), ind.Len())
	assert.Equal(t, "TEST", ind.Symbol)

	for i, b := range ind.Bars {
		assert.Equal(t, s.Bar(i), b.OHLCV)
		assert.Equal(t, i >= 1, b.SMAShort.Defined(), "sma_short %d", i)
		assert.Equal(t, i >= 2, b.SMALong.Defined(), "sma_long %d", i)
		assert.Equal(t, i >= 2, b.RSI.Defined(), "rsi %d", i)
		assert.Equal(t, model.Hold, b.Signal)
	}
	assert.Equal(t, 5.5, ind.Bars[5].SMAShort.Float())
	assert.Equal(t, 5.0, ind.Bars[5].SMALong.Float())
}

func TestCompute_EmptySeries(t *testing.T) {
	_, err := Compute(nil, model.DefaultParams())
	assert.ErrorIs(t, err, model.ErrEmptySeries)
}

func TestCompute_InvalidWindows(t *testing.T) {
	s := seriesOf(t, 1, 2, 3, 4, 5)
	tests := []struct {
		name   string
		params model.Params
		field  string
	}{
		{"zero short", model.Params{Short: 0, Long: 3, RSIPeriod: 2}, "short"},
		{"negative long", model.Params{Short: 2, Long: -1, RSIPeriod: 2}, "long"},
		{"zero rsi", model.Params{Short: 2, Long: 3, RSIPeriod: 0}, "rsi_period"},
		{"long beyond series", model.Params{Short: 2, Long: 6, RSIPeriod: 2}, "long"},
		{"rsi equals length", model.Params{Short: 2, Long: 3, RSIPeriod: 5}, "rsi_period"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(s, tt.params)
			var werr *model.InvalidWindowError
			require.True(t, errors.As(err, &werr), "got %v", err)
			assert.Equal(t, tt.field, werr.Name)
			assert.Equal(t, 5, werr.Length)
		})
	}
}

func TestCompute_WindowEqualsLength(t *testing.T) {
	s := seriesOf(t, 2, 4, 6, 8)
	ind, err := Compute(s, model.Params{Short: 2, Long: 4, RSIPeriod: 3})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.False(t, ind.Bars[i].SMALong.Defined())
	}
	assert.Equal(t, 5.0, ind.Bars[3].SMALong.Float())
	assert.True(t, ind.Bars[3].Defined())
}

func TestCompute_Idempotent(t *testing.T) {
	s := seriesOf(t, 5, 7, 6, 9, 8, 11, 10, 12, 9, 13)
	p := model.Params{Short: 2, Long: 4, RSIPeriod: 3}

	first, err := Compute(s, p)
	require.NoError(t, err)
	second, err := Compute(s, p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
