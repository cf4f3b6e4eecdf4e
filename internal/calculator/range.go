package calculator

import (
	"errors"
	"math"

	"StockDash/internal/model"
)

// TradingDaysPerYear is the lookback window for the 52-week range.
const TradingDaysPerYear = 252

// Calculate52WeekRange scans the most recent 252 trading days and returns the high and low.
func Calculate52WeekRange(dailyBars []model.OHLCV) (high, low float64, err error) {
	if len(dailyBars) == 0 {
		return 0, 0, errors.New("no daily bars provided")
	}
	start := len(dailyBars) - TradingDaysPerYear
	if start < 0 {
		start = 0
	}
	high, low = PriceRange(dailyBars[start:])
	return Round2(high), Round2(low), nil
}

// PriceRange returns the lowest low and highest high across all bars.
// Both are zero for an empty slice.
func PriceRange(bars []model.OHLCV) (high, low float64) {
	if len(bars) == 0 {
		return 0, 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, b := range bars {
		if b.High > high {
			high = b.High
		}
		if b.Low < low {
			low = b.Low
		}
	}
	return high, low
}

// CloseRange returns the extremes of the closing prices.
func CloseRange(bars []model.OHLCV) (high, low float64) {
	if len(bars) == 0 {
		return 0, 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, c := range extractCloses(bars) {
		high = math.Max(high, c)
		low = math.Min(low, c)
	}
	return high, low
}

// MaxVolume returns the largest single-day volume.
func MaxVolume(bars []model.OHLCV) float64 {
	var max float64
	for _, v := range extractVolumes(bars) {
		if v > max {
			max = v
		}
	}
	return max
}

// PaddedRange widens [low, high] by pct of its span on each side.
// A flat range is widened by pct of its magnitude so the axis never collapses.
func PaddedRange(low, high, pct float64) (float64, float64) {
	span := high - low
	if span <= 0 {
		span = math.Abs(high)
		if span == 0 {
			span = 1
		}
	}
	return low - span*pct, high + span*pct
}
