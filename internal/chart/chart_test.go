package chart

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"StockDash/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSeries() *model.StockSeries {
	return &model.StockSeries{
		Symbol: "AAPL",
		Data: []model.OHLCV{
			{Date: "2025-01-02", Open: 100, High: 104, Low: 99, Close: 103, Volume: 1_200_000},
			{Date: "2025-01-03", Open: 103, High: 105, Low: 100, Close: 101, Volume: 900_000},
			{Date: "2025-01-06", Open: 101, High: 108, Low: 101, Close: 107, Volume: 2_100_000},
		},
	}
}

func TestParseView(t *testing.T) {
	assert.Equal(t, Candlestick, ParseView("candlestick"))
	assert.Equal(t, Candlestick, ParseView(" C "))
	assert.Equal(t, Volume, ParseView("VOLUME"))
	assert.Equal(t, Line, ParseView("line"))
	assert.Equal(t, Line, ParseView("area"))
	assert.Equal(t, Line, ParseView(""))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "AAPL Stock Price Trend", Title(Line, "AAPL"))
	assert.Equal(t, "AAPL Candlestick Chart", Title(Candlestick, "AAPL"))
	assert.Equal(t, "AAPL Trading Volume", Title(Volume, "AAPL"))
}

func TestTerminalRender(t *testing.T) {
	for _, v := range Views {
		t.Run(string(v), func(t *testing.T) {
			out, err := Terminal{}.Render(v, sampleSeries(), 60, 16)
			require.NoError(t, err)
			assert.Contains(t, out, Title(v, "AAPL"))
			assert.Greater(t, strings.Count(out, "\n"), 4)
		})
	}
}

func TestTerminalRender_SinglePointAndTinySize(t *testing.T) {
	s := sampleSeries()
	s.Data = s.Data[:1]
	for _, v := range Views {
		_, err := Terminal{}.Render(v, s, 1, 1)
		assert.NoError(t, err, string(v))
	}
}

func TestTerminalRender_Empty(t *testing.T) {
	for _, v := range Views {
		_, err := Terminal{}.Render(v, &model.StockSeries{Symbol: "AAPL"}, 60, 16)
		assert.ErrorIs(t, err, ErrNoData)
		_, err = Terminal{}.Render(v, nil, 60, 16)
		assert.ErrorIs(t, err, ErrNoData)
	}
}

func TestWriteHTML(t *testing.T) {
	cases := map[View]string{
		Line:        "AAPL Stock Price Trend",
		Candlestick: "AAPL Candlestick Chart",
		Volume:      "AAPL Trading Volume",
	}
	for v, title := range cases {
		var buf bytes.Buffer
		require.NoError(t, WriteHTML(&buf, v, sampleSeries()))
		html := buf.String()
		assert.Contains(t, html, title)
		assert.Contains(t, html, "stock_chart")
		assert.Contains(t, html, "2025-01-06")
	}
}

func TestWriteHTML_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteHTML(&buf, Line, &model.StockSeries{})
	assert.ErrorIs(t, err, ErrNoData)
	assert.Zero(t, buf.Len())
}

func TestExportFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	path, err := ExportFile(dir, Candlestick, sampleSeries())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "AAPL_candlestick.html"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	_, err = ExportFile(dir, Line, nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestGuard(t *testing.T) {
	err := guard(func() error { panic("boom") })
	assert.ErrorIs(t, err, ErrRender)
	assert.Equal(t, MsgRenderFailed, Message(err))

	err = guard(func() error { return errors.New("disk full") })
	assert.ErrorIs(t, err, ErrRender)

	assert.Equal(t, MsgNoData, Message(ErrNoData))
}
