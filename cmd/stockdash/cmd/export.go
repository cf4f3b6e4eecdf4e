package cmd

import (
	"errors"
	"fmt"

	"StockDash/internal/chart"
	"StockDash/internal/collector"

	"github.com/spf13/cobra"
)

var (
	exportView string
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export <SYMBOL>",
	Short: "Write a chart as an interactive HTML page",
	Long: `Fetch a symbol's price history and write it as a standalone HTML chart.

Without --out the file is written to export.dir as {SYMBOL}_{view}.html.

Examples:
  stockdash export AAPL
  stockdash export msft --view volume --out msft.html`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportView, "view", "v", "line", "chart view: line, candlestick or volume")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	series, err := a.col.Stock(cmd.Context(), args[0])
	if err != nil {
		return errors.New(collector.UserMessage(err))
	}
	if series.Error != "" {
		return errors.New(series.Error)
	}

	view := chart.ParseView(exportView)
	path := exportOut
	if path == "" {
		path, err = chart.ExportFile(a.cfg.Export.Dir, view, series)
	} else {
		err = chart.WriteFile(path, view, series)
	}
	if err != nil {
		if errors.Is(err, chart.ErrNoData) || errors.Is(err, chart.ErrRender) {
			return errors.New(chart.Message(err))
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
	return nil
}
