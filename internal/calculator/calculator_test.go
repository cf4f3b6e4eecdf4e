package calculator

import (
	"errors"
	"math"
	"testing"

	"StockDash/internal/model"
)

func bars(closes ...float64) []model.OHLCV {
	out := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		out[i] = model.OHLCV{Open: c, High: c + 1, Low: c - 1, Close: c, Volume: float64(1000 * (i + 1))}
	}
	return out
}

func TestPredictNextClose_Linear(t *testing.T) {
	got, err := PredictNextClose(bars(10, 11, 12, 13), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 14 {
		t.Errorf("expected 14, got %.2f", got)
	}
}

func TestPredictNextClose_UsesLastDays(t *testing.T) {
	// The first two closes are outside the window and must not bend the fit.
	got, err := PredictNextClose(bars(500, 900, 1, 2, 3), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 4 {
		t.Errorf("expected 4, got %.2f", got)
	}
}

func TestPredictNextClose_Rounds(t *testing.T) {
	got, err := PredictNextClose(bars(1, 1.333, 1.5), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != math.Round(got*100)/100 {
		t.Errorf("expected 2dp result, got %v", got)
	}
}

func TestPredictNextClose_NotEnoughData(t *testing.T) {
	if _, err := PredictNextClose(bars(10), 30); !errors.Is(err, ErrNotEnoughData) {
		t.Fatalf("expected ErrNotEnoughData, got %v", err)
	}
	if _, err := PredictNextClose(nil, 30); !errors.Is(err, ErrNotEnoughData) {
		t.Fatalf("expected ErrNotEnoughData for nil bars, got %v", err)
	}
	if msg := ErrNotEnoughData.Error(); msg != "not enough data to make a prediction" {
		t.Errorf("unexpected error text %q", msg)
	}
}

func TestCalculate52WeekRange_Window(t *testing.T) {
	data := bars(make([]float64, 300)...)
	for i := range data {
		data[i].High = 100
		data[i].Low = 50
	}
	data[10].High = 999 // outside the 252-bar window
	data[299].Low = 5

	high, low, err := Calculate52WeekRange(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high != 100 {
		t.Errorf("expected high 100, got %.2f", high)
	}
	if low != 5 {
		t.Errorf("expected low 5, got %.2f", low)
	}
}

func TestCalculate52WeekRange_Empty(t *testing.T) {
	if _, _, err := Calculate52WeekRange(nil); err == nil {
		t.Fatal("expected error for empty bars")
	}
}

func TestRanges(t *testing.T) {
	data := bars(10, 30, 20)
	high, low := PriceRange(data)
	if high != 31 || low != 9 {
		t.Errorf("price range: got %v/%v", high, low)
	}
	high, low = CloseRange(data)
	if high != 30 || low != 10 {
		t.Errorf("close range: got %v/%v", high, low)
	}
	if v := MaxVolume(data); v != 3000 {
		t.Errorf("max volume: got %v", v)
	}
}

func TestPaddedRange_Flat(t *testing.T) {
	lo, hi := PaddedRange(100, 100, 0.05)
	if !(lo < 100 && hi > 100) {
		t.Errorf("flat range not widened: %v..%v", lo, hi)
	}
	lo, hi = PaddedRange(0, 0, 0.05)
	if lo >= hi {
		t.Errorf("zero range not widened: %v..%v", lo, hi)
	}
}

func TestAverageVolumeAndLatestClose(t *testing.T) {
	data := bars(10, 11, 12.345)
	avg, err := AverageVolume(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg != 2000 {
		t.Errorf("expected 2000, got %v", avg)
	}
	last, err := LatestClose(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last != 12.35 && last != 12.34 {
		t.Errorf("expected rounded close, got %v", last)
	}
	if _, err := AverageVolume(nil); err == nil {
		t.Error("expected error for empty bars")
	}
}
