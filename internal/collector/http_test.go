package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartJSON = `{"chart":{"result":[{"timestamp":[1704204000,1704117600,1704290400],
"indicators":{"quote":[{"open":[101,100,null],"high":[102,101,null],"low":[99,98,null],
"close":[101.5,100.5,null],"volume":[2000,1000,null]}]}}],"error":null}}`

func TestYahooFetcher_FetchBars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/finance/chart/^GSPC", r.URL.Path)
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		assert.Equal(t, "6mo", r.URL.Query().Get("range"))
		w.Write([]byte(chartJSON))
	}))
	defer srv.Close()

	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	bars, err := f.FetchBars(context.Background(), "SPX500", "6mo")
	require.NoError(t, err)
	require.Len(t, bars, 2)
	assert.Equal(t, 100.5, bars[0].Close)
	assert.Equal(t, 101.5, bars[1].Close)
	assert.True(t, bars[0].Time.Before(bars[1].Time))
	assert.Equal(t, 0, bars[0].Time.Hour())
}

func TestYahooFetcher_Adjusted(t *testing.T) {
	const body = `{"chart":{"result":[{"timestamp":[1704117600,1704204000],
"indicators":{"quote":[{"open":[100,200],"high":[110,220],"low":[90,180],"close":[100,200],"volume":[1,2]}],
"adjclose":[{"adjclose":[50,200]}]}}],"error":null}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	bars, err := f.FetchBars(context.Background(), "AAPL", "1y")
	require.NoError(t, err)
	require.Len(t, bars, 2)
	assert.Equal(t, 50.0, bars[0].Close)
	assert.Equal(t, 55.0, bars[0].High)
	assert.Equal(t, 45.0, bars[0].Low)
	assert.Equal(t, 200.0, bars[1].Close)

	f.Adjusted = false
	bars, err = f.FetchBars(context.Background(), "AAPL", "1y")
	require.NoError(t, err)
	assert.Equal(t, 100.0, bars[0].Close)
}

func TestYahooFetcher_NoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
	}))
	defer srv.Close()

	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	bars, err := f.FetchBars(context.Background(), "ZZZZ", "1y")
	require.NoError(t, err)
	assert.Empty(t, bars)
}

func TestYahooFetcher_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	}))
	defer srv.Close()

	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	_, err := f.FetchBars(context.Background(), "ZZZZ", "1y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delisted")
}

func TestYahooFetcher_HTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	_, err := f.FetchBars(context.Background(), "AAPL", "1y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestRESTFetcher_FetchBars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, "1y", r.URL.Query().Get("range"))
		w.Write([]byte(`[{"timestamp":1704240000,"open":2,"high":2,"low":2,"close":2,"volume":5},
			{"timestamp":1704153600,"open":1,"high":1,"low":1,"close":1,"volume":5}]`))
	}))
	defer srv.Close()

	bars, err := NewRESTFetcher(srv.URL, "secret", "").FetchBars(context.Background(), "AAPL", "1y")
	require.NoError(t, err)
	require.Len(t, bars, 2)
	assert.Equal(t, 1.0, bars[0].Close)
	assert.Equal(t, 2.0, bars[1].Close)
}
