package collector

import (
	"context"

	"StockDash/internal/model"
)

// Fetcher defines the interface for fetching dashboard data.
type Fetcher interface {
	FetchCompanies(ctx context.Context) ([]model.Company, error)
	FetchStock(ctx context.Context, symbol string) (*model.StockSeries, error)
	FetchPrediction(ctx context.Context, symbol string, days int) (float64, error)
	Name() string
}
