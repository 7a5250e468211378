package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"SignalSentinel/internal/model"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleSeries() *model.IndicatedSeries {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	return &model.IndicatedSeries{
		Symbol: "AAPL",
		Params: model.Params{Short: 1, Long: 2, RSIPeriod: 1},
		Bars: []model.IndicatedBar{
			{
				OHLCV:    model.OHLCV{Time: day, Open: 10, High: 11, Low: 9, Close: 10.5, Volume: 100},
				SMAShort: model.Some(10.5),
			},
			{
				OHLCV:    model.OHLCV{Time: day.AddDate(0, 0, 1), Open: 10.5, High: 12, Low: 10, Close: 11, Volume: 200},
				SMAShort: model.Some(11),
				SMALong:  model.Some(10.75),
				AvgGain:  model.Some(0.5),
				AvgLoss:  model.Some(0),
				RSI:      model.Some(100),
				Signal:   model.Sell,
			},
		},
	}
}

func TestRows(t *testing.T) {
	rows := Rows(sampleSeries())
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-01-02", rows[0].Date)
	assert.Nil(t, rows[0].SMALong)
	assert.Nil(t, rows[0].RSI)
	require.NotNil(t, rows[0].SMAShort)
	assert.Equal(t, 10.5, *rows[0].SMAShort)
	assert.Equal(t, "HOLD", rows[0].Signal)
	assert.Equal(t, "SELL", rows[1].Signal)
	assert.Equal(t, 100.0, *rows[1].RSI)
	assert.Len(t, rows[1].cells(), len(Header))
}

func TestForPath(t *testing.T) {
	for ext, want := range map[string]string{
		"out.csv": "csv", "out.JSON": "json", "a/b.parquet": "parquet", "x.xlsx": "xlsx",
	} {
		e, err := ForPath(ext)
		require.NoError(t, err, ext)
		assert.Equal(t, want, e.Extension())
	}
	_, err := ForPath("out.txt")
	assert.Error(t, err)
	_, err = ForPath("noext")
	assert.Error(t, err)
}

func TestWrite_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aapl.csv")
	require.NoError(t, Write(sampleSeries(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{"2024-01-02", "10", "11", "9", "10.5", "100", "10.5", "", "", "", "", "HOLD"}, records[1])
	assert.Equal(t, []string{"2024-01-03", "10.5", "12", "10", "11", "200", "11", "10.75", "0.5", "0", "100", "SELL"}, records[2])
}

func TestWrite_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aapl.json")
	require.NoError(t, Write(sampleSeries(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.Nil(t, got[0]["rsi"])
	assert.Contains(t, got[0], "rsi")
	assert.Equal(t, 100.0, got[1]["rsi"])
	assert.Equal(t, "SELL", got[1]["signal"])
}

func TestWrite_Parquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aapl.parquet")
	require.NoError(t, Write(sampleSeries(), path))

	rows, err := parquet.ReadFile[Row](path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Rows(sampleSeries()), rows)
}

func TestWrite_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aapl.xlsx")
	require.NoError(t, Write(sampleSeries(), path))

	fx, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer fx.Close()

	rows, err := fx.GetRows(xlsxSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, "2024-01-02", rows[1][0])
	assert.Equal(t, "", rows[1][7])
	assert.Equal(t, "HOLD", rows[1][11])
	assert.Equal(t, "10.75", rows[2][7])
	assert.Equal(t, "SELL", rows[2][11])
}

func TestWrite_Unsupported(t *testing.T) {
	err := Write(sampleSeries(), filepath.Join(t.TempDir(), "aapl.txt"))
	assert.Error(t, err)
}
