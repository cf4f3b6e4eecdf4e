package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"StockDash/internal/model"
)

// APIFetcher implements Fetcher against the dashboard REST backend.
type APIFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewAPIFetcher creates a new fetcher with optional proxy support.
// A zero timeout falls back to 30 seconds.
func NewAPIFetcher(baseURL, proxyURL string, timeout time.Duration) *APIFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &APIFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *APIFetcher) Name() string { return "api" }

func (f *APIFetcher) FetchCompanies(ctx context.Context) ([]model.Company, error) {
	resp, err := f.get(ctx, f.BaseURL+"/api/companies")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompanies, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrCompanies, resp.StatusCode)
	}
	var list model.CompanyList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: decode companies: %w", ErrCompanies, err)
	}
	if list.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrCompanies, list.Error)
	}
	return list.Companies, nil
}

func (f *APIFetcher) FetchStock(ctx context.Context, symbol string) (*model.StockSeries, error) {
	endpoint := fmt.Sprintf("%s/api/stock/%s", f.BaseURL, url.PathEscape(symbol))
	resp, err := f.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read stock body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewAPIError(resp.StatusCode, body)
	}
	var series model.StockSeries
	if err := json.Unmarshal(body, &series); err != nil {
		return nil, fmt.Errorf("decode stock: %w", err)
	}
	if series.Symbol == "" {
		series.Symbol = symbol
	}
	return &series, nil
}

func (f *APIFetcher) FetchPrediction(ctx context.Context, symbol string, days int) (float64, error) {
	endpoint := fmt.Sprintf("%s/api/predict/%s?days=%s",
		f.BaseURL, url.PathEscape(symbol), strconv.Itoa(days))
	resp, err := f.get(ctx, endpoint)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("prediction request failed with status %d", resp.StatusCode)
	}
	var result struct {
		PredictedClose *float64 `json:"predictedClose"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNoPrediction, err)
	}
	if result.PredictedClose == nil {
		return 0, ErrNoPrediction
	}
	return *result.PredictedClose, nil
}

// get issues a GET. Transport failures are reported as ErrNetwork.
func (f *APIFetcher) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := f.Client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	return resp, nil
}
