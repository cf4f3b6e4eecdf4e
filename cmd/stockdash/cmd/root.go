package cmd

import (
	"fmt"
	"log"
	"time"

	"StockDash/internal/collector"
	"StockDash/internal/config"
	"StockDash/internal/recorder"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	useMock bool
)

var rootCmd = &cobra.Command{
	Use:   "stockdash",
	Short: "Terminal stock dashboard",
	Long: `StockDash browses a company directory and charts daily prices in the terminal.

It talks to the dashboard REST API (/api/companies, /api/stock/{symbol},
/api/predict/{symbol}) and can export line, candlestick and volume charts
as interactive HTML pages.

Examples:
  stockdash run
  stockdash companies --filter apple
  stockdash export AAPL --view candlestick
  stockdash history --limit 10`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default configs/config.yaml or $CONFIG_PATH)")
	rootCmd.PersistentFlags().BoolVar(&useMock, "mock", false, "use generated data instead of the API")
}

// app bundles what every command needs.
type app struct {
	cfg *config.Config
	col *collector.Collector
	rec recorder.Recorder
}

func (a *app) Close() {
	if err := a.rec.Close(); err != nil {
		log.Printf("[WARN] close recorder: %v", err)
	}
}

func loadApp() (*app, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.Load(config.ResolvePath(cfgFile))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	var fetcher collector.Fetcher
	if useMock {
		fetcher = &collector.MockFetcher{}
	} else {
		fetcher = collector.NewAPIFetcher(cfg.API.BaseURL, cfg.Proxy, time.Duration(cfg.API.TimeoutSeconds)*time.Second)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	col := collector.NewCollector(fetcher, rec, cfg.Prediction.Days, cfg.Prediction.Source)
	return &app{cfg: cfg, col: col, rec: rec}, nil
}
