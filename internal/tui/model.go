// Package tui is the interactive terminal front end of the dashboard.
package tui

import (
	"context"
	"log"
	"time"

	"StockDash/internal/chart"
	"StockDash/internal/collector"
	"StockDash/internal/dashboard"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const listWidth = 34

// Options configures a Model.
type Options struct {
	ExportDir string
	Renderer  dashboard.Renderer
	Now       func() time.Time
}

// Model is the bubbletea model wrapping dashboard.State.
type Model struct {
	ctx   context.Context
	col   *collector.Collector
	state *dashboard.State

	search  textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	cursor    int
	status    string
	exportDir string
	now       func() time.Time

	width, height int
}

// New builds the model. The company directory is requested by Init.
func New(ctx context.Context, col *collector.Collector, opts Options) Model {
	if opts.Renderer == nil {
		opts.Renderer = chart.Terminal{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}

	search := textinput.New()
	search.Prompt = "🔍 "
	search.Placeholder = "Search companies..."
	search.Width = listWidth - 6
	search.Cursor.SetMode(cursor.CursorStatic)

	return Model{
		ctx:       ctx,
		col:       col,
		state:     dashboard.New(opts.Renderer),
		search:    search,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(accentStyle)),
		help:      help.New(),
		keys:      defaultKeys(),
		exportDir: opts.ExportDir,
		now:       opts.Now,
	}
}

// State exposes the dashboard state, mainly for tests.
func (m Model) State() *dashboard.State { return m.state }

func (m Model) Init() tea.Cmd {
	m.state.BeginCompaniesLoad()
	return tea.Batch(loadCompanies(m.ctx, m.col), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		w, h := m.chartSize()
		m.state.Resize(w, h)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if !m.busy() {
			return m, nil
		}
		return m, cmd

	case companiesMsg:
		if msg.err != nil {
			m.state.CompaniesFailed(msg.err)
		} else {
			m.state.CompaniesLoaded(msg.list)
		}
		m.clampCursor()
		return m, nil

	case stockMsg:
		if msg.err != nil {
			m.state.FailStock(msg.req.Token, msg.err)
			return m, nil
		}
		if m.state.ApplyStock(msg.req.Token, msg.series) {
			return m, fetchPrediction(m.ctx, m.col, msg.req, msg.series)
		}
		return m, nil

	case predictionMsg:
		if msg.err != nil {
			m.state.PredictionFailed(msg.req.Token, msg.req.Symbol, msg.err)
			return m, nil
		}
		m.state.ApplyPrediction(msg.req.Token, msg.value)
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			log.Printf("[ERROR] export: %v", msg.err)
			m.status = "Export failed: " + chart.Message(msg.err)
		} else {
			log.Printf("[INFO] exported %s", msg.path)
			m.status = "Saved " + msg.path
		}
		return m, nil

	case ReloadCompaniesMsg:
		m.state.BeginCompaniesLoad()
		return m, tea.Batch(loadCompanies(m.ctx, m.col), m.spinner.Tick)

	case RefreshMsg:
		cmd := m.refresh()
		return m, cmd

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter", "down", "up":
		m.search.Blur()
		if msg.String() == "enter" && len(m.state.Visible()) > 0 {
			cmd := m.selectCursor()
			return m, cmd
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.state.Filter() {
		m.state.SetFilter(m.search.Value())
		m.clampCursor()
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.state.Visible())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		cmd := m.selectCursor()
		return m, cmd
	case key.Matches(msg, m.keys.Search):
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Escape):
		m.state.ClearChart()
		m.status = ""
	case key.Matches(msg, m.keys.Refresh):
		cmd := m.refresh()
		return m, cmd
	case key.Matches(msg, m.keys.Line):
		m.state.SwitchView(chart.Line)
	case key.Matches(msg, m.keys.Candlestick):
		m.state.SwitchView(chart.Candlestick)
	case key.Matches(msg, m.keys.Volume):
		m.state.SwitchView(chart.Volume)
	case key.Matches(msg, m.keys.PrevPoint):
		m.inspect(-1)
	case key.Matches(msg, m.keys.NextPoint):
		m.inspect(1)
	case key.Matches(msg, m.keys.Export):
		if m.state.Current.Empty() || !m.state.Panels.Visible(dashboard.StockChart) {
			m.status = "Export failed: " + chart.MsgNoData
			return m, nil
		}
		m.status = "Exporting..."
		return m, exportChart(m.exportDir, m.state.View, m.state.Current)
	}
	return m, nil
}

func (m *Model) inspect(delta int) {
	if info, ok := m.state.Inspect(delta); ok {
		m.status = info
	}
}

func (m *Model) selectCursor() tea.Cmd {
	list := m.state.Visible()
	if m.cursor < 0 || m.cursor >= len(list) {
		return nil
	}
	c := list[m.cursor]
	return m.load(m.state.Select(c.Symbol, c.Name, m.now()))
}

func (m *Model) refresh() tea.Cmd {
	return m.load(m.state.RefreshRequest(m.now()))
}

func (m *Model) load(req dashboard.Request, ok bool) tea.Cmd {
	if !ok {
		return nil
	}
	m.status = ""
	return tea.Batch(fetchStock(m.ctx, m.col, req), m.spinner.Tick)
}

func (m *Model) clampCursor() {
	n := len(m.state.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) busy() bool {
	return m.state.Loading() || m.state.Panels.Visible(dashboard.CompaniesLoading)
}

func (m Model) chartSize() (int, int) {
	w := m.width - listWidth - 6
	h := m.height - 14
	return w, h
}
