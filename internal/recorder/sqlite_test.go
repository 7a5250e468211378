package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"SignalSentinel/internal/model"
	"SignalSentinel/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summary(symbol string, day int, sig model.Signal) *report.Summary {
	return &report.Summary{
		Symbol:   symbol,
		Date:     time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC),
		Close:    100 + float64(day),
		SMAShort: 99,
		SMALong:  98.5,
		RSI:      42.25,
		Signal:   sig,
		Params:   model.DefaultParams(),
	}
}

func TestSQLiteRecorder_History(t *testing.T) {
	rec, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "nested", "signals.db"))
	require.NoError(t, err)
	defer rec.Close()

	base := time.Date(2024, 5, 10, 22, 30, 0, 0, time.UTC)
	for i, sig := range []model.Signal{model.Buy, model.Hold, model.Sell} {
		require.NoError(t, rec.RecordEvaluation(&Evaluation{
			RecordedAt: base.Add(time.Duration(i) * time.Hour),
			Summary:    summary("AAPL", i+1, sig),
		}))
	}
	require.NoError(t, rec.RecordEvaluation(&Evaluation{RecordedAt: base, Summary: summary("MSFT", 9, model.Buy)}))

	got, err := rec.History("AAPL", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	newest := got[0].Summary
	assert.Equal(t, "AAPL", newest.Symbol)
	assert.Equal(t, model.Sell, newest.Signal)
	assert.Equal(t, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), newest.Date)
	assert.Equal(t, 103.0, newest.Close)
	assert.Equal(t, 42.25, newest.RSI)
	assert.Equal(t, model.DefaultParams(), newest.Params)
	assert.Equal(t, base.Add(2*time.Hour).Unix(), got[0].RecordedAt.Unix())
	assert.Equal(t, model.Hold, got[1].Summary.Signal)

	none, err := rec.History("TSLA", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLiteRecorder_SameTimestampNewestFirst(t *testing.T) {
	rec, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "signals.db"))
	require.NoError(t, err)
	defer rec.Close()

	at := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, rec.RecordEvaluation(&Evaluation{RecordedAt: at, Summary: summary("AAPL", 1, model.Buy)}))
	require.NoError(t, rec.RecordEvaluation(&Evaluation{RecordedAt: at, Summary: summary("AAPL", 2, model.Sell)}))

	got, err := rec.History("AAPL", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.Sell, got[0].Summary.Signal)
}

func TestNoopRecorder(t *testing.T) {
	var rec Recorder = NewNoopRecorder()
	assert.NoError(t, rec.RecordEvaluation(&Evaluation{Summary: summary("AAPL", 1, model.Buy)}))
	got, err := rec.History("AAPL", 5)
	assert.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, rec.Close())
}
