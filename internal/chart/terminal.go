package chart

import (
	"math"
	"strings"

	"StockDash/internal/calculator"
	"StockDash/internal/model"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	minWidth  = 30
	minHeight = 8
)

var (
	lineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLine))
	upStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorUp))
	downStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDown))
	volumeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorVolume))
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

// Terminal draws charts with braille line segments.
type Terminal struct{}

// Render draws s in the given view and returns the chart text. The title
// occupies the first line; the plot fills the remaining height.
func (Terminal) Render(v View, s *model.StockSeries, width, height int) (string, error) {
	if err := Validate(s); err != nil {
		return "", err
	}
	var out string
	err := guard(func() error {
		if width < minWidth {
			width = minWidth
		}
		if height < minHeight+1 {
			height = minHeight + 1
		}
		var plot string
		switch v {
		case Candlestick:
			plot = drawCandles(s.Data, width, height-1)
		case Volume:
			plot = drawVolume(s.Data, width, height-1)
		default:
			plot = drawLine(s.Data, width, height-1)
		}
		out = titleStyle.Render(Title(v, s.Symbol)) + "\n" + plot
		return nil
	})
	return out, err
}

func newCanvas(bars []model.OHLCV, w, h int, minY, maxY float64, yLabel func(float64) string) linechart.Model {
	maxX := float64(len(bars) - 1)
	if maxX < 1 {
		maxX = 1
	}
	return linechart.New(w, h,
		-0.5, maxX+0.5,
		minY, maxY,
		linechart.WithXYSteps(6, 4),
		linechart.WithXLabelFormatter(dateLabels(bars)),
		linechart.WithYLabelFormatter(func(_ int, value float64) string {
			return yLabel(value)
		}),
		linechart.WithStyles(lipgloss.Style{}, lipgloss.Style{}, lineStyle),
	)
}

func drawLine(bars []model.OHLCV, w, h int) string {
	hi, lo := calculator.CloseRange(bars)
	minY, maxY := calculator.PaddedRange(lo, hi, 0.05)
	lc := newCanvas(bars, w, h, minY, maxY, priceLabel)

	if len(bars) == 1 {
		p := canvas.Float64Point{X: 0, Y: bars[0].Close}
		lc.DrawBrailleLineWithStyle(p, p, lineStyle)
	}
	for i := 0; i < len(bars)-1; i++ {
		p1 := canvas.Float64Point{X: float64(i), Y: bars[i].Close}
		p2 := canvas.Float64Point{X: float64(i + 1), Y: bars[i+1].Close}
		lc.DrawBrailleLineWithStyle(p1, p2, lineStyle)
	}
	lc.DrawXYAxisAndLabel()
	return lc.View()
}

func drawCandles(bars []model.OHLCV, w, h int) string {
	hi, lo := calculator.PriceRange(bars)
	minY, maxY := calculator.PaddedRange(lo, hi, 0.03)
	lc := newCanvas(bars, w, h, minY, maxY, priceLabel)

	for i, b := range bars {
		st := upStyle
		if b.Close < b.Open {
			st = downStyle
		}
		x := float64(i)
		lc.DrawBrailleLineWithStyle(
			canvas.Float64Point{X: x, Y: b.Low},
			canvas.Float64Point{X: x, Y: b.High}, st)
		// Body: a second stroke beside the wick between open and close.
		for _, dx := range []float64{-0.25, 0.25} {
			lc.DrawBrailleLineWithStyle(
				canvas.Float64Point{X: x + dx, Y: b.Open},
				canvas.Float64Point{X: x + dx, Y: b.Close}, st)
		}
	}
	lc.DrawXYAxisAndLabel()
	return lc.View()
}

func drawVolume(bars []model.OHLCV, w, h int) string {
	maxVol := calculator.MaxVolume(bars)
	if maxVol <= 0 {
		maxVol = 1
	}
	lc := newCanvas(bars, w, h, 0, maxVol*1.05, volumeLabel)

	for i, b := range bars {
		x := float64(i)
		lc.DrawBrailleLineWithStyle(
			canvas.Float64Point{X: x, Y: 0},
			canvas.Float64Point{X: x, Y: b.Volume}, volumeStyle)
	}
	lc.DrawXYAxisAndLabel()
	return lc.View()
}

func dateLabels(bars []model.OHLCV) func(int, float64) string {
	return func(_ int, value float64) string {
		idx := int(math.Round(value))
		if idx < 0 || idx >= len(bars) {
			return ""
		}
		t := bars[idx].Time()
		if t.IsZero() {
			return bars[idx].Date
		}
		return t.Format("01/02")
	}
}

func priceLabel(v float64) string {
	return "$" + strings.TrimSuffix(humanize.FormatFloat("#,###.##", v), ".00")
}

func volumeLabel(v float64) string {
	if v <= 0 {
		return "0"
	}
	return humanize.SIWithDigits(v, 1, "")
}
