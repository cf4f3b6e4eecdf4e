package cmd

import (
	"fmt"

	"StockDash/internal/dashboard"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var companiesFilter string

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "List the company directory",
	Long: `Fetch the company directory and print it as a table.

Examples:
  stockdash companies
  stockdash companies --filter bank`,
	Args: cobra.NoArgs,
	RunE: runCompanies,
}

func init() {
	rootCmd.AddCommand(companiesCmd)
	companiesCmd.Flags().StringVarP(&companiesFilter, "filter", "f", "", "case-insensitive match on symbol or name")
}

func runCompanies(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	list, err := a.col.Companies(cmd.Context())
	if err != nil {
		return err
	}
	list = dashboard.FilterCompanies(list, companiesFilter)

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Symbol", "Name"})
	for _, c := range list {
		t.AppendRow(table.Row{c.Symbol, c.Name})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d companies", len(list))})
	t.Render()
	return nil
}
