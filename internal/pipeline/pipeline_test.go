package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"SignalSentinel/internal/collector"
	"SignalSentinel/internal/config"
	"SignalSentinel/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func TestRun(t *testing.T) {
	closes := []float64{10, 11, 12, 11, 13, 14}
	m := &collector.MockFetcher{Bars: collector.BarsFromCloses(start, closes)}
	p := New(collector.NewCollector(m, "AAPL", "1y"), model.Params{Short: 2, Long: 3, RSIPeriod: 2})

	res, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(closes), res.Series.Len())
	assert.Equal(t, len(closes), res.Indicated.Len())

	s := res.Summary
	assert.Equal(t, "AAPL", s.Symbol)
	assert.Equal(t, start.AddDate(0, 0, 5), s.Date)
	assert.Equal(t, 14.0, s.Close)
	assert.InDelta(t, 13.5, s.SMAShort, 1e-9)
	assert.InDelta(t, 38.0/3, s.SMALong, 1e-9)
	assert.Equal(t, res.Indicated.Bars[5].Signal, s.Signal)
}

func TestRun_Errors(t *testing.T) {
	short := &collector.MockFetcher{Bars: collector.BarsFromCloses(start, []float64{1, 2, 3})}
	_, err := New(collector.NewCollector(short, "AAPL", "1y"), model.DefaultParams()).Run(context.Background())
	var werr *model.InvalidWindowError
	require.ErrorAs(t, err, &werr)

	_, err = New(collector.NewCollector(&collector.MockFetcher{}, "AAPL", "1y"), model.DefaultParams()).Run(context.Background())
	assert.ErrorIs(t, err, model.ErrEmptySeries)
}

func TestNewFetcher(t *testing.T) {
	cfg := &config.Config{}
	cfg.DataSource.Provider = "csv"
	cfg.DataSource.CSVPath = filepath.Join(t.TempDir(), "bars.csv")
	require.NoError(t, os.WriteFile(cfg.DataSource.CSVPath, []byte("date,open,high,low,close\n2024-01-02,1,1,1,1\n"), 0o644))

	f, closeFn, err := NewFetcher(cfg)
	require.NoError(t, err)
	defer closeFn()
	assert.Equal(t, "csv", f.Name())
	bars, err := f.FetchBars(context.Background(), "X", "1y")
	require.NoError(t, err)
	assert.Len(t, bars, 1)

	cfg.DataSource.Provider = "bloomberg"
	_, closeFn, err = NewFetcher(cfg)
	assert.Error(t, err)
	assert.NotNil(t, closeFn)
}

func TestNewFetcher_RedisCache(t *testing.T) {
	srv := miniredis.RunT(t)
	cfg := &config.Config{}
	cfg.DataSource.Provider = "yahoo"
	cfg.Cache.RedisAddr = srv.Addr()
	cfg.Cache.TTL = time.Minute

	f, closeFn, err := NewFetcher(cfg)
	require.NoError(t, err)
	assert.Equal(t, "yahoo+cache", f.Name())
	assert.NoError(t, closeFn())
}
