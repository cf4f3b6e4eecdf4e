package calculator

import (
	"errors"

	"StockDash/internal/model"
)

// DefaultPredictionDays is how many recent closes feed the regression.
const DefaultPredictionDays = 30

// ErrNotEnoughData is returned when fewer than two closes are available.
var ErrNotEnoughData = errors.New("not enough data to make a prediction")

// PredictNextClose fits an ordinary least-squares line through the last
// `days` closes (x = 0..n-1) and evaluates it at x = n.
func PredictNextClose(bars []model.OHLCV, days int) (float64, error) {
	if days <= 0 {
		days = DefaultPredictionDays
	}
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	closes := extractCloses(bars)
	n := len(closes)
	if n < 2 {
		return 0, ErrNotEnoughData
	}

	var sumX, sumY float64
	for i, y := range closes {
		sumX += float64(i)
		sumY += y
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var sxy, sxx float64
	for i, y := range closes {
		dx := float64(i) - meanX
		sxy += dx * (y - meanY)
		sxx += dx * dx
	}
	slope := sxy / sxx
	intercept := meanY - slope*meanX

	return Round2(intercept + slope*float64(n)), nil
}
