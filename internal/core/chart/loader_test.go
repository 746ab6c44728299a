package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		in   string
		want domain.AccountType
	}{
		{"ASSET", domain.Asset},
		{"other_expense", domain.OtherExpense},
		{"Aset", domain.Asset},
		{"Kewajiban", domain.Liability},
		{"Pendapatan Lain-lain", domain.OtherIncome},
		{"Beban Lain-lain", domain.OtherExpense},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAccountType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseAccountType("Piutang")
	assert.Error(t, err)
}

func TestCSVRoundTrip(t *testing.T) {
	accounts := DefaultAccounts()
	accounts[0].InitialBalance = decimal.RequireFromString("1500000.50")

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, accounts))
	assert.True(t, strings.HasPrefix(buf.String(), "id,name,type,initial_balance\n"))

	got, err := ReadCSV(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(accounts))
	for i := range accounts {
		assert.Equal(t, accounts[i].ID, got[i].ID)
		assert.Equal(t, accounts[i].Name, got[i].Name)
		assert.Equal(t, accounts[i].Type, got[i].Type)
		assert.True(t, accounts[i].InitialBalance.Equal(got[i].InitialBalance), accounts[i].ID)
	}
}

func TestReadCSV_BadRow(t *testing.T) {
	in := "id,name,type,initial_balance\n101,Kas,Aset,abc\n"
	_, err := ReadCSV(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadYAML(t *testing.T) {
	in := `
accounts:
  - id: "101"
    name: Kas
    type: Aset
    initialBalance: 250000
  - id: "301"
    name: Modal Disetor
    type: EQUITY
    initialBalance: "250000"
`
	got, err := ReadYAML(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.Asset, got[0].Type)
	assert.True(t, got[0].InitialBalance.Equal(decimal.NewFromInt(250000)))
	assert.Equal(t, domain.Equity, got[1].Type)
}

func TestWriteYAML_ReadBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, DefaultAccounts()))

	got, err := ReadYAML(&buf)
	require.NoError(t, err)
	assert.Len(t, got, len(DefaultAccounts()))
}

func TestReadTOML(t *testing.T) {
	in := `
[[accounts]]
id = "101"
name = "Kas"
type = "ASSET"
initialBalance = "1000"

[[accounts]]
id = "401"
name = "Pendapatan Penjualan Barang"
type = "Pendapatan"
`
	got, err := ReadTOML(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].InitialBalance.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, domain.Revenue, got[1].Type)
	assert.True(t, got[1].InitialBalance.IsZero())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "chart.csv")
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, DefaultAccounts()))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 22, c.Len())

	_, err = LoadFile(filepath.Join(dir, "chart.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "chart.txt")
	require.NoError(t, os.WriteFile(bad, []byte("x"), 0o600))
	_, err = LoadFile(bad)
	assert.Error(t, err)
}
