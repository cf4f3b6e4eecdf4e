package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"StockDash/internal/collector"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "api:\n  base_url: http://localhost:8000\n" +
		"database:\n  sqlite_path: " + filepath.Join(dir, "history.db") + "\n" +
		"export:\n  dir: " + dir + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLoadAppWithMock(t *testing.T) {
	cfgFile, useMock = writeConfig(t), true
	t.Cleanup(func() { cfgFile, useMock = "", false })

	a, err := loadApp()
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, "mock", a.col.Fetcher.Name())
	list, err := a.col.Companies(t.Context())
	require.NoError(t, err)
	assert.Len(t, list, 8)
}

func TestExportAndHistory(t *testing.T) {
	cfg := writeConfig(t)
	t.Cleanup(func() { cfgFile, useMock, exportView, exportOut = "", false, "line", "" })

	out, err := execute(t, "export", "aapl", "--view", "candlestick", "--mock", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "AAPL_candlestick.html")

	path := filepath.Join(filepath.Dir(cfg), "AAPL_candlestick.html")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "echarts")

	cfgFile, useMock = cfg, true
	a, err := loadApp()
	require.NoError(t, err)
	defer a.Close()
	lookups, err := a.rec.RecentLookups(5)
	require.NoError(t, err)
	require.Len(t, lookups, 1)
	assert.Equal(t, "AAPL", lookups[0].Symbol)
	assert.True(t, lookups[0].OK)
}

func TestExportUnknownSymbol(t *testing.T) {
	cfg := writeConfig(t)
	t.Cleanup(func() { cfgFile, useMock = "", false })

	_, err := execute(t, "export", "NOPE", "--mock", "--config", cfg)
	require.Error(t, err)
	assert.Equal(t, collector.MsgNotFound, err.Error())
}

func TestQuote(t *testing.T) {
	cfg := writeConfig(t)
	t.Cleanup(func() { cfgFile, useMock = "", false })

	out, err := execute(t, "quote", "ko", "--mock", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "The Coca-Cola Company (KO)")
	assert.Contains(t, out, "Latest Close:")
	assert.Contains(t, out, "100 trading days")
}

func TestCompaniesFilter(t *testing.T) {
	cfg := writeConfig(t)
	t.Cleanup(func() { cfgFile, useMock, companiesFilter = "", false, "" })

	out, err := execute(t, "companies", "--filter", "apple", "--mock", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "AAPL")
	assert.Contains(t, out, "Apple Inc")
	assert.NotContains(t, out, "MSFT")
	assert.Contains(t, out, "1 COMPANIES")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "stockdash version "+version+"\n", out)
}
