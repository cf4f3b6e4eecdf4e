package cmd

import (
	"StockDash/internal/dashboard"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent stock lookups",
	Long: `Print the most recent lookups stored in the SQLite history database.

Examples:
  stockdash history
  stockdash history --limit 50`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of lookups to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	lookups, err := a.rec.RecentLookups(historyLimit)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Time", "Symbol", "Source", "Result", "Points", "Latest Close", "Took"})
	for _, l := range lookups {
		result := "ok"
		last := dashboard.Missing
		if l.OK {
			last = dashboard.FormatCurrency(&l.LatestClose)
		} else {
			result = l.Message
		}
		t.AppendRow(table.Row{
			l.Timestamp.Format("2006-01-02 15:04:05"),
			l.Symbol, l.Source, result, l.Points, last, l.Duration.String(),
		})
	}
	t.Render()
	return nil
}
