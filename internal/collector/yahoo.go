package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"SignalSentinel/internal/model"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using the Yahoo Finance chart API.
type YahooFetcher struct {
	BaseURL   string
	Client    *http.Client
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
	// Adjusted scales every price by adjclose/close so splits and dividends
	// do not show up as jumps in the series.
	Adjusted bool
}

// NewYahooFetcher creates a fetcher that returns split and dividend
// adjusted bars.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	return &YahooFetcher{
		BaseURL: yahooBaseURL,
		Client:  newHTTPClient(proxyURL),
		SymbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		},
		Adjusted: true,
	}
}

func newHTTPClient(proxyURL string) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) ticker(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// prices is one chart column; Yahoo sends null for sessions without trades.
type prices []*float64

func (p prices) at(i int) (float64, bool) {
	if i >= len(p) || p[i] == nil {
		return 0, false
	}
	return *p[i], true
}

type chartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   prices `json:"open"`
			High   prices `json:"high"`
			Low    prices `json:"low"`
			Close  prices `json:"close"`
			Volume prices `json:"volume"`
		} `json:"quote"`
		AdjClose []struct {
			AdjClose prices `json:"adjclose"`
		} `json:"adjclose"`
	} `json:"indicators"`
}

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchBars downloads daily bars covering period, e.g. "1y". An unknown
// symbol with no rows yields an empty result, not an error.
func (f *YahooFetcher) FetchBars(ctx context.Context, symbol, period string) ([]model.OHLCV, error) {
	base := f.BaseURL
	if base == "" {
		base = yahooBaseURL
	}
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("range", period)
	if f.Adjusted {
		q.Set("events", "div,split")
	}
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", base, url.PathEscape(f.ticker(symbol)), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, nil
	}
	return f.bars(&chart.Chart.Result[0]), nil
}

func (f *YahooFetcher) bars(r *chartResult) []model.OHLCV {
	if len(r.Indicators.Quote) == 0 {
		return nil
	}
	quote := r.Indicators.Quote[0]
	var adj prices
	if f.Adjusted && len(r.Indicators.AdjClose) > 0 {
		adj = r.Indicators.AdjClose[0].AdjClose
	}

	out := make([]model.OHLCV, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		c, ok := quote.Close.at(i)
		if !ok || c == 0 {
			continue // holiday or halted session
		}
		o, _ := quote.Open.at(i)
		h, _ := quote.High.at(i)
		l, _ := quote.Low.at(i)
		v, _ := quote.Volume.at(i)

		if a, ok := adj.at(i); ok {
			ratio := a / c
			o, h, l, c = o*ratio, h*ratio, l*ratio, a
		}

		t := time.Unix(ts, 0).UTC()
		out = append(out, model.OHLCV{
			Time:   time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: v,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })
	return out
}
