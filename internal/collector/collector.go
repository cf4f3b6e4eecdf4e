package collector

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"StockDash/internal/calculator"
	"StockDash/internal/model"
	"StockDash/internal/recorder"
)

// Prediction sources accepted by Collector.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// Collector orchestrates data fetching, local enrichment and history recording.
type Collector struct {
	Fetcher          Fetcher
	Recorder         recorder.Recorder
	PredictionDays   int
	PredictionSource string
}

// NewCollector creates a new Collector. A nil recorder is replaced by a no-op one.
func NewCollector(fetcher Fetcher, rec recorder.Recorder, days int, source string) *Collector {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	if days <= 0 {
		days = calculator.DefaultPredictionDays
	}
	if source == "" {
		source = SourceRemote
	}
	return &Collector{Fetcher: fetcher, Recorder: rec, PredictionDays: days, PredictionSource: source}
}

// Companies loads the company directory.
func (c *Collector) Companies(ctx context.Context) ([]model.Company, error) {
	list, err := c.Fetcher.FetchCompanies(ctx)
	if err != nil {
		if !errors.Is(err, ErrCompanies) {
			err = fmt.Errorf("%w: %w", ErrCompanies, err)
		}
		log.Printf("[ERROR] load companies: %v", err)
		return nil, err
	}
	log.Printf("[INFO] loaded %d companies from %s", len(list), c.Fetcher.Name())
	return list, nil
}

// Stock fetches the price series for symbol and records the lookup.
// A series whose Error field is set is returned without an error; the caller
// decides how to show it.
func (c *Collector) Stock(ctx context.Context, symbol string) (*model.StockSeries, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrInvalidSymbol
	}

	start := time.Now()
	series, err := c.Fetcher.FetchStock(ctx, symbol)
	if err == nil && series == nil {
		err = ErrEmptyResponse
	}
	evt := &recorder.LookupEvent{
		Timestamp: start,
		Symbol:    symbol,
		Source:    c.Fetcher.Name(),
		Duration:  time.Since(start),
	}
	switch {
	case err != nil:
		evt.Message = UserMessage(err)
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			evt.Status = apiErr.Status
		}
		log.Printf("[WARN] fetch %s: %v", symbol, err)
	case series.Error != "":
		evt.Message = series.Error
		log.Printf("[WARN] fetch %s: server reported %q", symbol, series.Error)
	default:
		evt.OK = true
		evt.Points = len(series.Data)
		if series.LatestClose != nil {
			evt.LatestClose = *series.LatestClose
		}
	}
	if recErr := c.Recorder.RecordLookup(evt); recErr != nil {
		log.Printf("[ERROR] record lookup: %v", recErr)
	}
	return series, err
}

// Predict returns the next-close estimate for a loaded series, either from the
// backend or from a local regression over the same closes.
func (c *Collector) Predict(ctx context.Context, series *model.StockSeries) (float64, error) {
	if series == nil {
		return 0, ErrNoPrediction
	}
	var (
		value float64
		err   error
	)
	if c.PredictionSource == SourceLocal {
		value, err = calculator.PredictNextClose(series.Data, c.PredictionDays)
	} else {
		value, err = c.Fetcher.FetchPrediction(ctx, series.Symbol, c.PredictionDays)
	}

	evt := &recorder.PredictionEvent{
		Timestamp:      time.Now(),
		Symbol:         series.Symbol,
		Source:         c.PredictionSource,
		Days:           c.PredictionDays,
		PredictedClose: value,
		OK:             err == nil,
	}
	if err != nil {
		evt.Message = err.Error()
	}
	if recErr := c.Recorder.RecordPrediction(evt); recErr != nil {
		log.Printf("[ERROR] record prediction: %v", recErr)
	}
	return value, err
}
