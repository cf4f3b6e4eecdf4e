package tui

import (
	"context"

	"StockDash/internal/chart"
	"StockDash/internal/collector"
	"StockDash/internal/dashboard"
	"StockDash/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// ReloadCompaniesMsg asks the program to fetch the company directory again.
type ReloadCompaniesMsg struct{}

// RefreshMsg asks the program to refresh the current stock.
type RefreshMsg struct{}

type companiesMsg struct {
	list []model.Company
	err  error
}

type stockMsg struct {
	req    dashboard.Request
	series *model.StockSeries
	err    error
}

type predictionMsg struct {
	req   dashboard.Request
	value float64
	err   error
}

type exportedMsg struct {
	path string
	err  error
}

func loadCompanies(ctx context.Context, col *collector.Collector) tea.Cmd {
	return func() tea.Msg {
		list, err := col.Companies(ctx)
		return companiesMsg{list: list, err: err}
	}
}

func fetchStock(ctx context.Context, col *collector.Collector, req dashboard.Request) tea.Cmd {
	return func() tea.Msg {
		s, err := col.Stock(ctx, req.Symbol)
		return stockMsg{req: req, series: s, err: err}
	}
}

func fetchPrediction(ctx context.Context, col *collector.Collector, req dashboard.Request, s *model.StockSeries) tea.Cmd {
	return func() tea.Msg {
		v, err := col.Predict(ctx, s)
		return predictionMsg{req: req, value: v, err: err}
	}
}

func exportChart(dir string, v chart.View, s *model.StockSeries) tea.Cmd {
	return func() tea.Msg {
		path, err := chart.ExportFile(dir, v, s)
		return exportedMsg{path: path, err: err}
	}
}
