package cmd

import (
	"context"
	"fmt"
	"log"

	"StockDash/internal/scheduler"
	"StockDash/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive dashboard",
	Long: `Start the interactive terminal dashboard.

Keys:
  ↑/↓ j/k     move through companies      enter   select
  ctrl+f /    search                      esc     clear chart
  1 2 3       line / candlestick / volume f5      refresh
  [ ]         inspect data points         x       export HTML
  q           quit

Logs go to the file set in logging.file (default stockdash.log).`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	f, err := tea.LogToFile(a.cfg.Logging.File, "")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockDash starting...")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	m := tui.New(ctx, a.col, tui.Options{ExportDir: a.cfg.Export.Dir})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	sched := scheduler.NewScheduler(scheduler.Jobs{
		ReloadCompanies: func() { p.Send(tui.ReloadCompaniesMsg{}) },
		RefreshStock:    func() { p.Send(tui.RefreshMsg{}) },
	})
	if err := sched.RegisterAll(a.cfg.Schedule.CompaniesCron, a.cfg.Schedule.RefreshCron); err != nil {
		return fmt.Errorf("register cron tasks: %w", err)
	}
	log.Printf("[INFO] %d scheduled tasks registered", sched.Len())
	sched.Start()
	defer sched.Stop()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	log.Println("[INFO] StockDash stopped")
	return nil
}
