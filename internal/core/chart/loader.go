package chart

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	numFields  = 4
	colID      = 0
	colName    = 1
	colType    = 2
	colBalance = 3
)

// typeLabels accepts the bookkeeping labels used by the shop staff next to the enum values.
var typeLabels = map[string]domain.AccountType{
	"aset":                 domain.Asset,
	"kewajiban":            domain.Liability,
	"ekuitas":              domain.Equity,
	"modal":                domain.Equity,
	"pendapatan":           domain.Revenue,
	"beban":                domain.Expense,
	"pendapatan lain-lain": domain.OtherIncome,
	"beban lain-lain":      domain.OtherExpense,
}

// ParseAccountType accepts either an AccountType value (ASSET, OTHER_INCOME, …) or its
// Indonesian label (Aset, Pendapatan Lain-lain, …).
func ParseAccountType(s string) (domain.AccountType, error) {
	t := domain.AccountType(strings.ToUpper(strings.TrimSpace(s)))
	if t.IsValid() {
		return t, nil
	}
	if t, ok := typeLabels[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown account type %q", s)
}

// fileAccount is the on-disk shape shared by the YAML and TOML formats. InitialBalance follows
// the natural-direction convention described on LoadFile.
type fileAccount struct {
	ID             string `yaml:"id" toml:"id"`
	Name           string `yaml:"name" toml:"name"`
	Type           string `yaml:"type" toml:"type"`
	InitialBalance string `yaml:"initialBalance,omitempty" toml:"initialBalance,omitempty"`
}

type fileChart struct {
	Accounts []fileAccount `yaml:"accounts" toml:"accounts"`
}

func (f fileAccount) toDomain() (domain.Account, error) {
	t, err := ParseAccountType(f.Type)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account %s: %w", f.ID, err)
	}
	balance := decimal.Zero
	if strings.TrimSpace(f.InitialBalance) != "" {
		balance, err = decimal.NewFromString(strings.TrimSpace(f.InitialBalance))
		if err != nil {
			return domain.Account{}, fmt.Errorf("account %s: parsing initial balance %q: %w", f.ID, f.InitialBalance, err)
		}
	}
	return domain.Account{ID: f.ID, Name: f.Name, Type: t, InitialBalance: balance}, nil
}

func fromFileChart(fc fileChart) ([]domain.Account, error) {
	accounts := make([]domain.Account, 0, len(fc.Accounts))
	for _, fa := range fc.Accounts {
		a, err := fa.toDomain()
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

// LoadFile reads a chart file and builds a Chart. The format is chosen by extension:
// .yaml/.yml, .toml or .csv.
//
// In every format the initial balance is stated in the account's natural direction: a positive
// figure is a normal balance (a debit for assets and expenses, a credit for liabilities, equity
// and revenue) and a negative figure is a contra balance.
func LoadFile(path string) (*Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart file: %w", err)
	}
	defer f.Close()

	var accounts []domain.Account
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		accounts, err = ReadYAML(f)
	case ".toml":
		accounts, err = ReadTOML(f)
	case ".csv":
		accounts, err = ReadCSV(f)
	default:
		return nil, fmt.Errorf("unsupported chart file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("reading chart file %s: %w", path, err)
	}
	return New(accounts)
}

// ReadYAML reads a chart document with a top-level "accounts" list.
func ReadYAML(r io.Reader) ([]domain.Account, error) {
	var fc fileChart
	if err := yaml.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decoding chart YAML: %w", err)
	}
	return fromFileChart(fc)
}

// WriteYAML writes accounts in the format ReadYAML accepts.
func WriteYAML(w io.Writer, accounts []domain.Account) error {
	fc := fileChart{Accounts: make([]fileAccount, 0, len(accounts))}
	for _, a := range accounts {
		fc.Accounts = append(fc.Accounts, fileAccount{
			ID:             a.ID,
			Name:           a.Name,
			Type:           string(a.Type),
			InitialBalance: a.InitialBalance.String(),
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("encoding chart YAML: %w", err)
	}
	return enc.Close()
}

// ReadTOML reads a chart document made of [[accounts]] tables. Initial balances are strings.
func ReadTOML(r io.Reader) ([]domain.Account, error) {
	var fc fileChart
	if _, err := toml.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decoding chart TOML: %w", err)
	}
	return fromFileChart(fc)
}

// ReadCSV reads a chart with the header id,name,type,initial_balance.
func ReadCSV(r io.Reader) ([]domain.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	accounts := make([]domain.Account, 0, len(records)-1)
	for i, rec := range records[1:] {
		a, err := fileAccount{
			ID:             rec[colID],
			Name:           rec[colName],
			Type:           rec[colType],
			InitialBalance: rec[colBalance],
		}.toDomain()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

// WriteCSV writes accounts in the format ReadCSV accepts.
func WriteCSV(w io.Writer, accounts []domain.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"id", "name", "type", "initial_balance"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, a := range accounts {
		row := make([]string, numFields)
		row[colID] = a.ID
		row[colName] = a.Name
		row[colType] = string(a.Type)
		row[colBalance] = a.InitialBalance.String()
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
