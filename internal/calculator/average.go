package calculator

import (
	"errors"
	"math"

	"StockDash/internal/model"
)

// CalculateSMA computes the simple moving average of the given values over the specified period.
func CalculateSMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), nil
}

// AverageVolume returns the mean volume across all bars, rounded to a whole share count.
func AverageVolume(bars []model.OHLCV) (float64, error) {
	avg, err := CalculateSMA(extractVolumes(bars), len(bars))
	if err != nil {
		return 0, err
	}
	return math.Round(avg), nil
}

// LatestClose returns the close of the most recent bar rounded to cents.
func LatestClose(bars []model.OHLCV) (float64, error) {
	if len(bars) == 0 {
		return 0, errors.New("no bars provided")
	}
	return Round2(bars[len(bars)-1].Close), nil
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func extractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

func extractVolumes(bars []model.OHLCV) []float64 {
	vols := make([]float64, len(bars))
	for i, b := range bars {
		vols[i] = b.Volume
	}
	return vols
}
