package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"StockDash/internal/model"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	exportWidth  = "800px"
	exportHeight = "500px"
	exportImage  = "stock_chart"
)

// WriteHTML renders s as a standalone interactive HTML page.
func WriteHTML(w io.Writer, v View, s *model.StockSeries) error {
	if err := Validate(s); err != nil {
		return err
	}
	return guard(func() error {
		dates := make([]string, len(s.Data))
		for i, b := range s.Data {
			dates[i] = b.Date
		}
		switch v {
		case Candlestick:
			return candleHTML(s, dates).Render(w)
		case Volume:
			return volumeHTML(s, dates).Render(w)
		default:
			return lineHTML(s, dates).Render(w)
		}
	})
}

// ExportFile writes the HTML page to {dir}/{SYMBOL}_{view}.html and returns the path.
func ExportFile(dir string, v View, s *model.StockSeries) (string, error) {
	if err := Validate(s); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	name := fmt.Sprintf("%s_%s.html", strings.ReplaceAll(s.Symbol, "/", "-"), v)
	path := filepath.Join(dir, name)
	if err := WriteFile(path, v, s); err != nil {
		return "", err
	}
	return path, nil
}

// WriteFile renders to the given path, replacing any existing file.
func WriteFile(path string, v View, s *model.StockSeries) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteHTML(f, v, s); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func globalOpts(v View, s *model.StockSeries, yName string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: Title(v, s.Symbol),
			Width:     exportWidth,
			Height:    exportHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    Title(v, s.Symbol),
			Subtitle: "Historical price data for the last year",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date", Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, Scale: opts.Bool(v != Volume)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show: opts.Bool(true),
					Type: "png",
					Name: exportImage,
				},
			},
		}),
	}
}

func lineHTML(s *model.StockSeries, dates []string) *charts.Line {
	items := make([]opts.LineData, len(s.Data))
	for i, b := range s.Data {
		items[i] = opts.LineData{Value: b.Close}
	}
	c := charts.NewLine()
	c.SetGlobalOptions(globalOpts(Line, s, "Price ($)")...)
	c.SetXAxis(dates).AddSeries("Close", items,
		charts.WithLineStyleOpts(opts.LineStyle{Color: ColorLine, Width: 2}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: ColorLine}),
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
	)
	return c
}

func candleHTML(s *model.StockSeries, dates []string) *charts.Kline {
	items := make([]opts.KlineData, len(s.Data))
	for i, b := range s.Data {
		// ECharts order: open, close, low, high.
		items[i] = opts.KlineData{Value: [4]float64{b.Open, b.Close, b.Low, b.High}}
	}
	c := charts.NewKLine()
	c.SetGlobalOptions(globalOpts(Candlestick, s, "Price ($)")...)
	c.SetXAxis(dates).AddSeries(s.Symbol, items,
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color:        ColorUp,
			Color0:       ColorDown,
			BorderColor:  ColorUp,
			BorderColor0: ColorDown,
		}),
	)
	return c
}

func volumeHTML(s *model.StockSeries, dates []string) *charts.Bar {
	items := make([]opts.BarData, len(s.Data))
	for i, b := range s.Data {
		items[i] = opts.BarData{Value: b.Volume}
	}
	c := charts.NewBar()
	c.SetGlobalOptions(globalOpts(Volume, s, "Volume")...)
	c.SetXAxis(dates).AddSeries("Volume", items,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: ColorVolume, Opacity: opts.Float(0.7)}),
	)
	return c
}
