package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/pos_ledger/internal/core/chart"
	"github.com/SscSPs/pos_ledger/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestChartExport_CSVRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, "chart", "export", "--format", "csv")
	require.NoError(t, err)

	accounts, err := chart.ReadCSV(bytes.NewBufferString(out))
	require.NoError(t, err)
	seed := chart.DefaultAccounts()
	require.Len(t, accounts, len(seed))
	for i := range seed {
		assert.Equal(t, seed[i].ID, accounts[i].ID)
		assert.Equal(t, seed[i].Name, accounts[i].Name)
		assert.Equal(t, seed[i].Type, accounts[i].Type)
		assert.True(t, seed[i].InitialBalance.Equal(accounts[i].InitialBalance))
	}
}

func TestChartExport_UnknownFormat(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := run(t, "chart", "export", "--format", "xml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestReport_EmptySQLiteStore(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("STORE_DRIVER", config.StoreSQLite)
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "ledger.db"))

	out, err := run(t, "report", "--balances")
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, len(chart.DefaultAccounts()))
	_, statErr := os.Stat(filepath.Join(dir, "ledger.db"))
	assert.NoError(t, statErr)
}

func TestReport_RequiresBothDates(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := run(t, "report", "--start", "2024-03-01")
	assert.Error(t, err)
}

func TestCORSConfig(t *testing.T) {
	all := corsConfig(&config.Config{CORSAllowedOrigins: []string{"*"}})
	assert.True(t, all.AllowAllOrigins)

	some := corsConfig(&config.Config{CORSAllowedOrigins: []string{"https://kasir.example"}})
	assert.False(t, some.AllowAllOrigins)
	assert.Equal(t, []string{"https://kasir.example"}, some.AllowOrigins)
	assert.Contains(t, some.AllowHeaders, "X-Request-ID")
}
