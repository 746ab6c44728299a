// Package chart holds the chart of accounts and the lookup tables built from it.
package chart

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// Chart is an immutable, indexed chart of accounts. It is safe for concurrent use.
type Chart struct {
	accounts []domain.Account
	byID     map[string]domain.Account
	byName   map[string]domain.Account
}

// New validates the accounts and builds the id and name indexes.
func New(accounts []domain.Account) (*Chart, error) {
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: chart of accounts is empty", apperrors.ErrConfiguration)
	}

	c := &Chart{
		accounts: make([]domain.Account, 0, len(accounts)),
		byID:     make(map[string]domain.Account, len(accounts)),
		byName:   make(map[string]domain.Account, len(accounts)),
	}
	for _, a := range accounts {
		if a.ID == "" || a.Name == "" {
			return nil, fmt.Errorf("%w: account id and name are required (id=%q name=%q)", apperrors.ErrConfiguration, a.ID, a.Name)
		}
		if !a.Type.IsValid() {
			return nil, fmt.Errorf("%w: account %s has unknown type %q", apperrors.ErrConfiguration, a.ID, a.Type)
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate account id %s", apperrors.ErrConfiguration, a.ID)
		}
		if _, dup := c.byName[a.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate account name %q", apperrors.ErrConfiguration, a.Name)
		}
		c.accounts = append(c.accounts, a)
		c.byID[a.ID] = a
		c.byName[a.Name] = a
	}
	sort.SliceStable(c.accounts, func(i, j int) bool { return c.accounts[i].ID < c.accounts[j].ID })
	return c, nil
}

// Default returns the chart built from DefaultAccounts.
func Default() *Chart {
	c, err := New(DefaultAccounts())
	if err != nil {
		panic(fmt.Sprintf("default chart is invalid: %v", err))
	}
	return c
}

// Accounts returns a copy of all accounts ordered by id.
func (c *Chart) Accounts() []domain.Account {
	out := make([]domain.Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// Len returns the number of accounts.
func (c *Chart) Len() int {
	return len(c.accounts)
}

// ByID looks an account up by its id.
func (c *Chart) ByID(id string) (domain.Account, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// ByName looks an account up by its exact display name.
func (c *Chart) ByName(name string) (domain.Account, bool) {
	a, ok := c.byName[name]
	return a, ok
}

// ResolveName maps a user-entered account name to its id. Surrounding whitespace is ignored.
func (c *Chart) ResolveName(name string) (string, error) {
	a, ok := c.byName[strings.TrimSpace(name)]
	if !ok {
		return "", fmt.Errorf("%w: unknown account %s", apperrors.ErrNotFound, name)
	}
	return a.ID, nil
}

// Require returns the named account or a configuration error. Posting rules use it so
// that a missing account aborts the post instead of landing on a wrong account.
func (c *Chart) Require(name string) (domain.Account, error) {
	a, ok := c.byName[name]
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: account %q is missing from the chart", apperrors.ErrConfiguration, name)
	}
	return a, nil
}
