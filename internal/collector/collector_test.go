package collector

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"StockDash/internal/model"
	"StockDash/internal/recorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRecorder struct {
	mu          sync.Mutex
	lookups     []recorder.LookupEvent
	predictions []recorder.PredictionEvent
}

func (m *memRecorder) RecordLookup(evt *recorder.LookupEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups = append(m.lookups, *evt)
	return nil
}

func (m *memRecorder) RecordPrediction(evt *recorder.PredictionEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.predictions = append(m.predictions, *evt)
	return nil
}

func (m *memRecorder) RecentLookups(int) ([]recorder.LookupEvent, error) { return m.lookups, nil }
func (m *memRecorder) Close() error                                      { return nil }

func testMock() *MockFetcher {
	return &MockFetcher{Days: 60, End: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)}
}

func TestCollector_StockRecordsLookup(t *testing.T) {
	rec := &memRecorder{}
	c := NewCollector(testMock(), rec, 30, SourceRemote)

	s, err := c.Stock(context.Background(), "  aapl ")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", s.Symbol)
	assert.Len(t, s.Data, 60)

	require.Len(t, rec.lookups, 1)
	assert.True(t, rec.lookups[0].OK)
	assert.Equal(t, "AAPL", rec.lookups[0].Symbol)
	assert.Equal(t, 60, rec.lookups[0].Points)
	assert.Equal(t, "mock", rec.lookups[0].Source)
}

func TestCollector_StockNotFound(t *testing.T) {
	rec := &memRecorder{}
	c := NewCollector(testMock(), rec, 30, SourceRemote)

	_, err := c.Stock(context.Background(), "NOPE")
	require.Error(t, err)
	assert.Equal(t, MsgNotFound, UserMessage(err))
	require.Len(t, rec.lookups, 1)
	assert.False(t, rec.lookups[0].OK)
	assert.Equal(t, 404, rec.lookups[0].Status)
}

func TestCollector_StockBlankSymbol(t *testing.T) {
	rec := &memRecorder{}
	c := NewCollector(testMock(), rec, 30, SourceRemote)
	_, err := c.Stock(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidSymbol)
	assert.Empty(t, rec.lookups)
}

func TestCollector_StockServerError(t *testing.T) {
	rec := &memRecorder{}
	m := testMock()
	m.Series = map[string]*model.StockSeries{"AAPL": {Symbol: "AAPL", Error: "Alpha Vantage API key not configured"}}
	c := NewCollector(m, rec, 30, SourceRemote)

	s, err := c.Stock(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "Alpha Vantage API key not configured", s.Error)
	assert.False(t, rec.lookups[0].OK)
}

func TestCollector_StockNilSeries(t *testing.T) {
	rec := &memRecorder{}
	m := testMock()
	m.Series = map[string]*model.StockSeries{"AAPL": nil}
	c := NewCollector(m, rec, 30, SourceRemote)

	s, err := c.Stock(context.Background(), "AAPL")
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.Equal(t, MsgFetchFailed, UserMessage(err))
	require.Len(t, rec.lookups, 1)
	assert.False(t, rec.lookups[0].OK)
}

func TestCollector_PredictLocalMatchesRemote(t *testing.T) {
	ctx := context.Background()
	remote := NewCollector(testMock(), &memRecorder{}, 30, SourceRemote)
	localRec := &memRecorder{}
	local := NewCollector(testMock(), localRec, 30, SourceLocal)

	s, err := remote.Stock(ctx, "MSFT")
	require.NoError(t, err)

	rv, err := remote.Predict(ctx, s)
	require.NoError(t, err)
	lv, err := local.Predict(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, rv, lv)

	require.Len(t, localRec.predictions, 1)
	assert.Equal(t, SourceLocal, localRec.predictions[0].Source)
	assert.True(t, localRec.predictions[0].OK)
}

func TestCollector_PredictNotEnoughData(t *testing.T) {
	rec := &memRecorder{}
	c := NewCollector(testMock(), rec, 30, SourceLocal)
	_, err := c.Predict(context.Background(), &model.StockSeries{Symbol: "X", Data: []model.OHLCV{{Close: 1}}})
	require.Error(t, err)
	require.Len(t, rec.predictions, 1)
	assert.False(t, rec.predictions[0].OK)
}

func TestCollector_CompaniesFailure(t *testing.T) {
	m := testMock()
	m.Err = errors.New("boom")
	c := NewCollector(m, nil, 0, "")
	_, err := c.Companies(context.Background())
	assert.ErrorIs(t, err, ErrCompanies)
}

func TestMockFetcher_Deterministic(t *testing.T) {
	m := testMock()
	a, err := m.FetchStock(context.Background(), "NVDA")
	require.NoError(t, err)
	b, err := m.FetchStock(context.Background(), "NVDA")
	require.NoError(t, err)
	assert.Equal(t, a.Data, b.Data)
	assert.Equal(t, "2025-06-30", a.Data[len(a.Data)-1].Date)
	for _, bar := range a.Data {
		assert.LessOrEqual(t, bar.Low, bar.High)
	}
	require.NotNil(t, a.FiftyTwoWeekHigh)
	require.NotNil(t, a.AverageVolume)
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, MsgServerError, StatusMessage(599))
	assert.Equal(t, MsgInvalid, StatusMessage(418))
	assert.Equal(t, MsgUnexpected, StatusMessage(200))
	assert.Equal(t, "Something", NewAPIError(500, []byte(`{"detail":"Something"}`)).Message)
	assert.Equal(t, MsgUnexpected, NewAPIError(302, []byte(`{"detail":"moved"}`)).Message)
}
