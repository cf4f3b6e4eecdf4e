// Package dashboard holds the UI state of the stock dashboard and the
// transitions that drive it. It is not safe for concurrent use; a single
// owner (the terminal program's update loop) applies every transition.
package dashboard

import (
	"fmt"
	"log"
	"strings"
	"time"

	"StockDash/internal/chart"
	"StockDash/internal/collector"
	"StockDash/internal/model"
)

// Subtitle shown once a company is selected.
const Subtitle = "Historical price data for the last year"

// Renderer draws a series in one chart view.
type Renderer interface {
	Render(v chart.View, s *model.StockSeries, width, height int) (string, error)
}

// Request identifies one outstanding stock fetch. Token increases with every
// selection; only the response carrying the latest token is applied.
type Request struct {
	Symbol string
	Name   string
	Token  uint64
}

// State is the whole dashboard: company list, selection, chart and cards.
type State struct {
	Panels Panels
	Cards  map[ElementID]string

	Title        string
	Subtitle     string
	ErrorMessage string
	Chart        string
	View         chart.View
	LastUpdated  time.Time

	// Active is the highlighted symbol; Current is the last series that loaded successfully.
	Active  string
	Current *model.StockSeries

	Width, Height int

	companies []model.Company
	visible   []model.Company
	filter    string
	token     uint64
	cursor    int
	renderer  Renderer
}

// New returns the initial dashboard: placeholder chart, empty cards.
func New(r Renderer) *State {
	s := &State{
		Panels:   Panels{},
		Cards:    map[ElementID]string{},
		View:     chart.Line,
		Title:    "Select a company",
		Width:    80,
		Height:   20,
		renderer: r,
	}
	s.Panels.Show(ChartPlaceholder)
	s.resetCards()
	return s
}

func (s *State) resetCards() {
	for _, id := range StatCards {
		s.Cards[id] = Missing
	}
}

// Companies returns the full directory.
func (s *State) Companies() []model.Company { return s.companies }

// Visible returns the companies matching the current filter.
func (s *State) Visible() []model.Company { return s.visible }

// Filter returns the current search term.
func (s *State) Filter() string { return s.filter }

// BeginCompaniesLoad shows the directory spinner.
func (s *State) BeginCompaniesLoad() {
	s.Panels.Show(CompaniesLoading)
	s.Panels.Hide(CompaniesList, CompaniesError)
}

// CompaniesLoaded replaces the directory and re-applies the filter.
func (s *State) CompaniesLoaded(list []model.Company) {
	s.companies = list
	s.visible = FilterCompanies(list, s.filter)
	s.Panels.Hide(CompaniesLoading, CompaniesError)
	s.Panels.Show(CompaniesList)
}

// CompaniesFailed shows the persistent directory error.
func (s *State) CompaniesFailed(err error) {
	log.Printf("[ERROR] companies: %v", err)
	s.Panels.Hide(CompaniesLoading, CompaniesList)
	s.Panels.Show(CompaniesError)
}

// SetFilter recomputes the visible list without refetching.
func (s *State) SetFilter(term string) {
	s.filter = term
	s.visible = FilterCompanies(s.companies, term)
}

// Loading reports whether a stock fetch is outstanding.
func (s *State) Loading() bool { return s.Panels.Visible(ChartLoading) }

// Token returns the token of the most recent selection.
func (s *State) Token() uint64 { return s.token }

// Select starts loading symbol. It returns false, without issuing a request,
// when the symbol is blank.
func (s *State) Select(symbol, name string, now time.Time) (Request, bool) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	name = strings.TrimSpace(name)
	if symbol == "" {
		s.ShowChartError(collector.MsgInvalidSymbol)
		return Request{}, false
	}
	if name == "" {
		name = symbol
	}

	s.Active = symbol
	s.Title = fmt.Sprintf("%s (%s)", name, symbol)
	s.Subtitle = Subtitle
	s.LastUpdated = now
	s.Panels.Hide(ChartPlaceholder, ChartError)
	s.Panels.Show(ChartLoading)

	s.token++
	log.Printf("[INFO] select %s (token %d)", symbol, s.token)
	return Request{Symbol: symbol, Name: name, Token: s.token}, true
}

func (s *State) stale(token uint64, what string) bool {
	if token != s.token {
		log.Printf("[INFO] dropping stale %s (token %d, latest %d)", what, token, s.token)
		return true
	}
	return false
}

// ApplyStock applies a fetched series. It reports whether the series was
// accepted and the prediction should now be requested.
func (s *State) ApplyStock(token uint64, series *model.StockSeries) bool {
	if s.stale(token, "stock response") {
		return false
	}
	defer s.Panels.Hide(ChartLoading)

	if series == nil {
		s.ShowChartError(chart.MsgNoData)
		return false
	}
	if series.Error != "" {
		s.ShowChartError(series.Error)
		return false
	}

	// An empty series still counts as loaded: the chart shows the no-data
	// banner while the cards and prediction are filled as usual.
	s.View = chart.Line
	s.cursor = len(series.Data) - 1
	s.ShowChart(series)
	s.Cards[LatestClose] = FormatCurrency(series.LatestClose)
	s.Cards[FiftyTwoWeekHigh] = FormatCurrency(series.FiftyTwoWeekHigh)
	s.Cards[FiftyTwoWeekLow] = FormatCurrency(series.FiftyTwoWeekLow)
	s.Cards[AverageVolume] = FormatOptionalVolume(series.AverageVolume)
	s.Cards[PredictedClose] = Missing
	s.Current = series
	return true
}

// FailStock shows a fetch error for the latest request.
func (s *State) FailStock(token uint64, err error) {
	if s.stale(token, "stock error") {
		return
	}
	s.Panels.Hide(ChartLoading)
	s.ShowChartError(collector.UserMessage(err))
}

// ApplyPrediction fills the prediction card if the response is still current.
func (s *State) ApplyPrediction(token uint64, value float64) bool {
	if s.stale(token, "prediction") {
		return false
	}
	s.Cards[PredictedClose] = FormatCurrency(&value)
	return true
}

// PredictionFailed only logs; the card keeps its placeholder.
func (s *State) PredictionFailed(token uint64, symbol string, err error) {
	log.Printf("[WARN] prediction for %s (token %d): %v", symbol, token, err)
}

// ShowChart renders series in the current view. Empty data and renderer
// failures end in the chart error panel.
func (s *State) ShowChart(series *model.StockSeries) bool {
	if err := chart.Validate(series); err != nil {
		s.ShowChartError(chart.Message(err))
		return false
	}
	out, err := s.render(series)
	if err != nil {
		log.Printf("[ERROR] render %s %s: %v", series.Symbol, s.View, err)
		s.ShowChartError(chart.MsgRenderFailed)
		return false
	}
	s.Chart = out
	s.ErrorMessage = ""
	s.Panels.Hide(ChartPlaceholder, ChartError)
	s.Panels.Show(StockChart)
	return true
}

func (s *State) render(series *model.StockSeries) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", chart.ErrRender, r)
		}
	}()
	return s.renderer.Render(s.View, series, s.Width, s.Height)
}

// ShowChartError replaces the chart area with message.
func (s *State) ShowChartError(message string) {
	s.ErrorMessage = message
	s.Cards[ChartErrorMessage] = message
	s.Panels.Hide(ChartPlaceholder, ChartLoading, StockChart)
	s.Panels.Show(ChartError)
}

// SwitchView redraws the current series in v. Without a loaded series it
// only records the choice.
func (s *State) SwitchView(v chart.View) {
	s.View = v
	if s.Current == nil || !s.Panels.Visible(StockChart) {
		return
	}
	s.ShowChart(s.Current)
}

// ClearChart hides the chart and shows the placeholder.
func (s *State) ClearChart() {
	s.Chart = ""
	s.Panels.Hide(StockChart)
	s.Panels.Show(ChartPlaceholder)
}

// RefreshRequest re-selects the current symbol if it is still listed.
func (s *State) RefreshRequest(now time.Time) (Request, bool) {
	if s.Current == nil {
		return Request{}, false
	}
	symbol := s.Current.Symbol
	listed := false
	for _, c := range s.visible {
		if strings.EqualFold(c.Symbol, symbol) {
			listed = true
			break
		}
	}
	if !listed {
		return Request{}, false
	}
	return s.Select(symbol, s.nameOf(symbol), now)
}

func (s *State) nameOf(symbol string) string {
	for _, c := range s.companies {
		if strings.EqualFold(c.Symbol, symbol) {
			return c.Name
		}
	}
	return symbol
}

// Resize records the chart area and redraws the visible chart.
func (s *State) Resize(width, height int) {
	s.Width, s.Height = width, height
	if s.Current != nil && s.Panels.Visible(StockChart) {
		s.ShowChart(s.Current)
	}
}

// Inspect moves the data-point cursor by delta and describes the point under it.
func (s *State) Inspect(delta int) (string, bool) {
	if s.Current.Empty() {
		return "", false
	}
	n := len(s.Current.Data)
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= n {
		s.cursor = n - 1
	}
	bar := s.Current.Data[s.cursor]
	date := bar.Date
	if t := bar.Time(); !t.IsZero() {
		date = t.Format("01/02/2006")
	}
	info := fmt.Sprintf("Date: %s\nPrice: $%.2f", date, bar.Close)
	log.Printf("[INFO] %s point %d: %s", s.Current.Symbol, s.cursor, strings.ReplaceAll(info, "\n", " "))
	return info, true
}

// Cursor returns the index of the inspected data point.
func (s *State) Cursor() int { return s.cursor }
