package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"StockDash/internal/collector"
	"StockDash/internal/dashboard"

	"github.com/spf13/cobra"
)

var quoteCmd = &cobra.Command{
	Use:   "quote <SYMBOL>",
	Short: "Print the stat cards for one symbol",
	Long: `Fetch a symbol and print its latest close, 52-week range, average volume
and predicted next close.

Examples:
  stockdash quote AAPL
  stockdash quote ko --mock`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)
}

func runQuote(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	series, err := a.col.Stock(ctx, args[0])
	if err != nil {
		return errors.New(collector.UserMessage(err))
	}
	if series.Error != "" {
		return errors.New(series.Error)
	}

	var predicted *float64
	if v, err := a.col.Predict(ctx, series); err != nil {
		log.Printf("[WARN] prediction for %s: %v", series.Symbol, err)
	} else {
		predicted = &v
	}

	name := series.Symbol
	if list, err := a.col.Companies(ctx); err == nil {
		for _, c := range list {
			if strings.EqualFold(c.Symbol, series.Symbol) {
				name = c.Name
				break
			}
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), dashboard.FormatQuote(name, series, predicted, time.Now()))
	return nil
}
