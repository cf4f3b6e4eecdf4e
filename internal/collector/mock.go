package collector

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"time"

	"StockDash/internal/calculator"
	"StockDash/internal/model"
)

// DefaultMockCompanies is the directory served by MockFetcher when none is set.
var DefaultMockCompanies = []model.Company{
	{Symbol: "AAPL", Name: "Apple Inc"},
	{Symbol: "MSFT", Name: "Microsoft Corporation"},
	{Symbol: "GOOGL", Name: "Alphabet Inc"},
	{Symbol: "AMZN", Name: "Amazon.com Inc"},
	{Symbol: "NVDA", Name: "NVIDIA Corporation"},
	{Symbol: "TSLA", Name: "Tesla Inc"},
	{Symbol: "JPM", Name: "JPMorgan Chase & Co"},
	{Symbol: "KO", Name: "The Coca-Cola Company"},
}

// MockFetcher returns generated data for offline use and testing.
type MockFetcher struct {
	Companies []model.Company
	// Series overrides the generated data per symbol.
	Series map[string]*model.StockSeries
	// Days is the number of generated bars; 100 when zero.
	Days int
	// End is the date of the last generated bar; today when zero.
	End time.Time
	// Err, when set, is returned by every call.
	Err error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchCompanies(_ context.Context) ([]model.Company, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.companies(), nil
}

func (m *MockFetcher) FetchStock(_ context.Context, symbol string) (*model.StockSeries, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if s, ok := m.Series[symbol]; ok {
		return s, nil
	}
	if !m.known(symbol) {
		return nil, &APIError{Status: 404, Message: MsgNotFound}
	}
	return seriesFromBars(symbol, m.bars(symbol)), nil
}

func (m *MockFetcher) FetchPrediction(ctx context.Context, symbol string, days int) (float64, error) {
	s, err := m.FetchStock(ctx, symbol)
	if err != nil {
		return 0, err
	}
	return calculator.PredictNextClose(s.Data, days)
}

func (m *MockFetcher) companies() []model.Company {
	if m.Companies != nil {
		return m.Companies
	}
	return DefaultMockCompanies
}

func (m *MockFetcher) known(symbol string) bool {
	for _, c := range m.companies() {
		if strings.EqualFold(c.Symbol, symbol) {
			return true
		}
	}
	return false
}

func (m *MockFetcher) bars(symbol string) []model.OHLCV {
	days := m.Days
	if days <= 0 {
		days = 100
	}
	end := m.End
	if end.IsZero() {
		end = time.Now()
	}
	h := fnv.New32a()
	h.Write([]byte(symbol))
	seed := h.Sum32()
	basePrice := 20 + float64(seed%480)
	return generateMockBars(basePrice, days, end, float64(seed%17))
}

func generateMockBars(basePrice float64, count int, end time.Time, phase float64) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		trend := 1 + float64(i-count/2)*0.001
		wave := 1 + 0.03*math.Sin((float64(i)+phase)/6)
		p := basePrice * trend * wave
		open := p * (1 + 0.004*math.Cos(float64(i)+phase))
		bars[i] = model.OHLCV{
			Date:   end.AddDate(0, 0, -(count - 1 - i)).Format(model.DateLayout),
			Open:   calculator.Round2(open),
			High:   calculator.Round2(math.Max(open, p) * 1.006),
			Low:    calculator.Round2(math.Min(open, p) * 0.994),
			Close:  calculator.Round2(p),
			Volume: math.Round(1_000_000 * (1 + 0.5*math.Abs(math.Sin(float64(i)/3+phase)))),
		}
	}
	return bars
}

// seriesFromBars derives the stat-card values from raw bars.
func seriesFromBars(symbol string, bars []model.OHLCV) *model.StockSeries {
	s := &model.StockSeries{Symbol: symbol, Data: bars}
	if v, err := calculator.LatestClose(bars); err == nil {
		s.LatestClose = &v
	}
	if hi, lo, err := calculator.Calculate52WeekRange(bars); err == nil {
		s.FiftyTwoWeekHigh = &hi
		s.FiftyTwoWeekLow = &lo
	}
	if v, err := calculator.AverageVolume(bars); err == nil {
		s.AverageVolume = &v
	}
	return s
}
