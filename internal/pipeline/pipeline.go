// Package pipeline runs one evaluation: load the series, compute indicators,
// classify bars and pick the latest fully-defined bar.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"SignalSentinel/internal/collector"
	"SignalSentinel/internal/config"
	"SignalSentinel/internal/model"
	"SignalSentinel/internal/report"
	"SignalSentinel/internal/strategy"
)

// Result is the output of one evaluation.
type Result struct {
	Series    *model.Series
	Indicated *model.IndicatedSeries
	Summary   *report.Summary
}

// Pipeline evaluates one symbol with fixed indicator params.
type Pipeline struct {
	Collector *collector.Collector
	Params    model.Params
}

// New creates a Pipeline.
func New(col *collector.Collector, params model.Params) *Pipeline {
	return &Pipeline{Collector: col, Params: params}
}

// Run executes the full evaluation. Any error is terminal for this run.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	series, err := p.Collector.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}
	ind, err := strategy.Evaluate(series, p.Params)
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", series.Symbol, err)
	}
	summary, err := report.Summarize(ind)
	if err != nil {
		return nil, fmt.Errorf("report %s: %w", series.Symbol, err)
	}
	return &Result{Series: series, Indicated: ind, Summary: summary}, nil
}

// Closer is returned alongside a fetcher that holds connections.
type Closer func() error

// NewFetcher builds the configured data source, wrapped in a Redis cache when
// one is configured. The returned Closer is never nil.
func NewFetcher(cfg *config.Config) (collector.Fetcher, Closer, error) {
	noop := func() error { return nil }

	var fetcher collector.Fetcher
	switch cfg.DataSource.Provider {
	case "rest":
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	case "csv":
		return collector.NewCSVFetcher(cfg.DataSource.CSVPath), noop, nil
	case "yahoo", "":
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	default:
		return nil, noop, fmt.Errorf("unknown data provider %q", cfg.DataSource.Provider)
	}

	if cfg.Cache.RedisAddr == "" {
		return fetcher, noop, nil
	}
	rc, err := collector.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
	if err != nil {
		log.Printf("[WARN] init redis cache failed, fetching without cache: %v", err)
		return fetcher, noop, nil
	}
	return collector.NewCachedFetcher(fetcher, rc, cfg.Cache.TTL), rc.Close, nil
}
