// Package storetest holds the behaviour every store adapter must share, as a testify suite.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// Store is what an adapter must implement to run the suite.
type Store interface {
	portsrepo.LedgerRepositoryFacade
	portsrepo.ProductRepositoryFacade
	portsrepo.StoreLifecycle
}

// StoreSuite runs the shared store contract against the store built by New.
type StoreSuite struct {
	suite.Suite
	New func(t *testing.T) Store

	store Store
	ctx   context.Context
}

func (s *StoreSuite) SetupTest() {
	s.store = s.New(s.T())
	s.ctx = context.Background()
}

func (s *StoreSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

var base = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func entryAt(createdOffset time.Duration, day int, ref string) domain.JournalEntry {
	return domain.JournalEntry{
		Date:        time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
		CreatedAt:   base.Add(createdOffset),
		Description: "entry " + ref,
		Reference:   ref,
		Origin:      domain.OriginManual,
		Lines: []domain.JournalLine{
			domain.DebitLine("101", decimal.RequireFromString("1500.25")),
			domain.CreditLine("401", decimal.RequireFromString("1500.25")),
		},
	}
}

func (s *StoreSuite) append(e domain.JournalEntry) string {
	id, err := s.store.AppendEntry(s.ctx, e)
	s.Require().NoError(err)
	s.Require().NotEmpty(id)
	return id
}

func (s *StoreSuite) TestPing() {
	s.NoError(s.store.Ping(s.ctx))
}

func (s *StoreSuite) TestAppendAndFind() {
	id := s.append(entryAt(0, 5, "R1"))

	got, err := s.store.FindEntryByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(id, got.ID)
	s.Equal("R1", got.Reference)
	s.Equal("entry R1", got.Description)
	s.Equal(domain.OriginManual, got.Origin)
	s.True(got.CreatedAt.Equal(base), "createdAt %s", got.CreatedAt)
	s.Equal("2024-03-05", domain.FormatDate(got.Date))
	s.Require().Len(got.Lines, 2)
	s.Equal("101", got.Lines[0].AccountID)
	s.Equal(domain.Debit, got.Lines[0].Side)
	s.True(got.Lines[0].Amount.Equal(decimal.RequireFromString("1500.25")))
	s.Equal(domain.Credit, got.Lines[1].Side)
	s.True(got.IsBalanced())
}

func (s *StoreSuite) TestAppendAssignsDistinctIDs() {
	a := s.append(entryAt(0, 1, "A"))
	b := s.append(entryAt(0, 1, "A"))
	s.NotEqual(a, b)
}

func (s *StoreSuite) TestListOrdering() {
	older := s.append(entryAt(0, 20, "older-created"))
	newerEarlyDate := s.append(entryAt(time.Minute, 2, "newer-early"))
	newerLateDate := s.append(entryAt(time.Minute, 9, "newer-late"))

	list, err := s.store.ListEntries(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal([]string{newerLateDate, newerEarlyDate, older}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func (s *StoreSuite) TestListEntriesPage() {
	for i := 0; i < 5; i++ {
		s.append(entryAt(time.Duration(i)*time.Second, 1, "P"))
	}
	all, err := s.store.ListEntries(s.ctx)
	s.Require().NoError(err)

	var seen []string
	var token *string
	for pages := 0; pages < 5; pages++ {
		page, next, err := s.store.ListEntriesPage(s.ctx, 2, token)
		s.Require().NoError(err)
		for _, e := range page {
			seen = append(seen, e.ID)
		}
		if next == nil {
			break
		}
		token = next
	}

	want := make([]string, len(all))
	for i, e := range all {
		want[i] = e.ID
	}
	s.Equal(want, seen)
}

func (s *StoreSuite) TestUpdateKeepsIdentity() {
	id := s.append(entryAt(0, 5, "R1"))

	replacement := domain.JournalEntry{
		Date:        time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:   base.Add(time.Hour),
		Description: "edited",
		Reference:   "R2",
		Origin:      domain.OriginAutomatic,
		Lines: []domain.JournalLine{
			domain.DebitLine("501", decimal.NewFromInt(10)),
			domain.DebitLine("502", decimal.NewFromInt(5)),
			domain.CreditLine("101", decimal.NewFromInt(15)),
		},
	}
	s.Require().NoError(s.store.UpdateEntry(s.ctx, id, replacement))

	got, err := s.store.FindEntryByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(id, got.ID)
	s.True(got.CreatedAt.Equal(base))
	s.Equal(domain.OriginManual, got.Origin)
	s.Equal("edited", got.Description)
	s.Equal("R2", got.Reference)
	s.Equal("2024-04-01", domain.FormatDate(got.Date))
	s.Require().Len(got.Lines, 3)
	s.Equal("502", got.Lines[1].AccountID)
}

func (s *StoreSuite) TestDelete() {
	id := s.append(entryAt(0, 5, "R1"))
	keep := s.append(entryAt(time.Second, 5, "R2"))

	s.Require().NoError(s.store.DeleteEntry(s.ctx, id))

	_, err := s.store.FindEntryByID(s.ctx, id)
	s.ErrorIs(err, apperrors.ErrNotFound)

	list, err := s.store.ListEntries(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(keep, list[0].ID)
}

func (s *StoreSuite) TestMissingEntries() {
	_, err := s.store.FindEntryByID(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(s.store.DeleteEntry(s.ctx, "missing"), apperrors.ErrNotFound)
	s.ErrorIs(s.store.UpdateEntry(s.ctx, "missing", entryAt(0, 1, "X")), apperrors.ErrNotFound)
}

func (s *StoreSuite) TestProducts() {
	p1 := domain.Product{
		ID: "P1", Name: "Kopi", Category: "Minuman",
		Price: decimal.NewFromInt(25000), Cost: decimal.NewFromInt(10000),
		Stock: 10, MinStock: 2, Supplier: "CV Maju", CreatedAt: base,
	}
	p2 := domain.Product{ID: "P2", Name: "Air", Price: decimal.NewFromInt(5000), Cost: decimal.NewFromInt(2000), CreatedAt: base}
	s.Require().NoError(s.store.SaveProduct(s.ctx, p1))
	s.Require().NoError(s.store.SaveProduct(s.ctx, p2))
	s.ErrorIs(s.store.SaveProduct(s.ctx, p1), apperrors.ErrDuplicate)

	got, err := s.store.FindProductByID(s.ctx, "P1")
	s.Require().NoError(err)
	s.Equal("Kopi", got.Name)
	s.Equal("CV Maju", got.Supplier)
	s.True(got.Cost.Equal(decimal.NewFromInt(10000)))
	s.Equal(10, got.Stock)

	s.Require().NoError(s.store.SetStock(s.ctx, "P1", 7))
	found, err := s.store.FindProductsByIDs(s.ctx, []string{"P1", "nope"})
	s.Require().NoError(err)
	s.Len(found, 1)
	s.Equal(7, found["P1"].Stock)

	list, err := s.store.ListProducts(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Air", list[0].Name)

	_, err = s.store.FindProductByID(s.ctx, "nope")
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(s.store.SetStock(s.ctx, "nope", 1), apperrors.ErrNotFound)
}

func (s *StoreSuite) TestUpdateProductKeepsStock() {
	s.Require().NoError(s.store.SaveProduct(s.ctx, domain.Product{
		ID: "P1", Name: "Kopi", Price: decimal.NewFromInt(25000), Cost: decimal.NewFromInt(10000),
		Stock: 10, MinStock: 2, CreatedAt: base,
	}))

	s.Require().NoError(s.store.UpdateProduct(s.ctx, domain.Product{
		ID: "P1", Name: "Kopi Susu", Category: "Minuman",
		Price: decimal.NewFromInt(28000), Cost: decimal.NewFromInt(12000),
		Stock: 99, MinStock: 5, Supplier: "CV Maju",
	}))

	got, err := s.store.FindProductByID(s.ctx, "P1")
	s.Require().NoError(err)
	s.Equal("Kopi Susu", got.Name)
	s.Equal("Minuman", got.Category)
	s.True(got.Price.Equal(decimal.NewFromInt(28000)))
	s.True(got.Cost.Equal(decimal.NewFromInt(12000)))
	s.Equal(5, got.MinStock)
	s.Equal("CV Maju", got.Supplier)
	s.Equal(10, got.Stock)
	s.True(got.CreatedAt.Equal(base))

	s.ErrorIs(s.store.UpdateProduct(s.ctx, domain.Product{ID: "nope", Name: "X"}), apperrors.ErrNotFound)
}

func (s *StoreSuite) TestDeleteProduct() {
	s.Require().NoError(s.store.SaveProduct(s.ctx, domain.Product{ID: "P1", Name: "Kopi", CreatedAt: base}))
	s.Require().NoError(s.store.SaveProduct(s.ctx, domain.Product{ID: "P2", Name: "Air", CreatedAt: base}))

	s.Require().NoError(s.store.DeleteProduct(s.ctx, "P1"))
	_, err := s.store.FindProductByID(s.ctx, "P1")
	s.ErrorIs(err, apperrors.ErrNotFound)

	list, err := s.store.ListProducts(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("P2", list[0].ID)

	s.ErrorIs(s.store.DeleteProduct(s.ctx, "P1"), apperrors.ErrNotFound)
}
