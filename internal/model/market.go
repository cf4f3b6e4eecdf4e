package model

import "time"

// DateLayout is the calendar date format used by the price API.
const DateLayout = "2006-01-02"

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// Time parses Date. The zero time is returned for malformed dates.
func (b OHLCV) Time() time.Time {
	t, err := time.Parse(DateLayout, b.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// StockSeries is the price history of one symbol plus derived statistics.
// Derived fields are optional and rendered as "--" when absent.
type StockSeries struct {
	Symbol           string   `json:"symbol"`
	Data             []OHLCV  `json:"data"`
	LatestClose      *float64 `json:"latestClose,omitempty"`
	FiftyTwoWeekHigh *float64 `json:"fiftyTwoWeekHigh,omitempty"`
	FiftyTwoWeekLow  *float64 `json:"fiftyTwoWeekLow,omitempty"`
	AverageVolume    *float64 `json:"averageVolume,omitempty"`
	Error            string   `json:"error,omitempty"`
}

// Empty reports whether the series has nothing to chart.
func (s *StockSeries) Empty() bool {
	return s == nil || len(s.Data) == 0
}
