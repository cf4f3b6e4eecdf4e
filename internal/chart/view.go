package chart

import (
	"errors"
	"fmt"
	"strings"

	"StockDash/internal/model"
)

// View selects how a series is drawn.
type View string

const (
	Line        View = "line"
	Candlestick View = "candlestick"
	Volume      View = "volume"
)

// Views lists every view in display order.
var Views = []View{Line, Candlestick, Volume}

// User-facing chart messages.
const (
	MsgNoData       = "No data available for chart"
	MsgRenderFailed = "Failed to render chart. Please try again."
)

var (
	// ErrNoData means the series has no points to draw.
	ErrNoData = errors.New(MsgNoData)
	// ErrRender wraps any failure inside a renderer.
	ErrRender = errors.New(MsgRenderFailed)
)

// Series colors.
const (
	ColorLine   = "#007bff"
	ColorUp     = "#28a745"
	ColorDown   = "#dc3545"
	ColorVolume = "#17a2b8"
)

// ParseView maps a name (or its first letter) to a View. Unknown names fall back to Line.
func ParseView(name string) View {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "candlestick", "candle", "c":
		return Candlestick
	case "volume", "v":
		return Volume
	default:
		return Line
	}
}

// Title is the heading drawn above a chart.
func Title(v View, symbol string) string {
	switch v {
	case Candlestick:
		return symbol + " Candlestick Chart"
	case Volume:
		return symbol + " Trading Volume"
	default:
		return symbol + " Stock Price Trend"
	}
}

// Validate rejects series that cannot be drawn.
func Validate(s *model.StockSeries) error {
	if s.Empty() {
		return ErrNoData
	}
	return nil
}

// Message returns the banner text for a render error.
func Message(err error) string {
	if errors.Is(err, ErrNoData) {
		return MsgNoData
	}
	return MsgRenderFailed
}

// guard converts a panic inside fn into ErrRender.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrRender, r)
		}
	}()
	if err := fn(); err != nil {
		if errors.Is(err, ErrNoData) || errors.Is(err, ErrRender) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}
