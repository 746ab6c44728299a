package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/pos_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/chart"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// failingLedger makes the n-th append (and optionally every delete) fail.
type failingLedger struct {
	*memory.Store
	failAppendOn int
	appends      int
	failDeletes  bool
}

func (f *failingLedger) AppendEntry(ctx context.Context, e domain.JournalEntry) (string, error) {
	f.appends++
	if f.appends == f.failAppendOn {
		return "", errors.New("disk full")
	}
	return f.Store.AppendEntry(ctx, e)
}

func (f *failingLedger) DeleteEntry(ctx context.Context, id string) error {
	if f.failDeletes {
		return errors.New("disk gone")
	}
	return f.Store.DeleteEntry(ctx, id)
}

type PostingServiceTestSuite struct {
	suite.Suite
	store   *memory.Store
	service portssvc.PostingSvc
	ctx     context.Context
}

func (s *PostingServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.service = services.NewPostingService(s.store, s.store, chart.Default())

	s.Require().NoError(s.store.SaveProduct(s.ctx, domain.Product{
		ID: "P1", Name: "Kopi Bubuk", Price: decimal.NewFromInt(25000), Cost: decimal.NewFromInt(10000), Stock: 10, MinStock: 2,
	}))
	s.Require().NoError(s.store.SaveProduct(s.ctx, domain.Product{
		ID: "P2", Name: "Gula", Price: decimal.NewFromInt(15000), Cost: decimal.Zero, Stock: 1,
	}))
}

func (s *PostingServiceTestSuite) stock(id string) int {
	p, err := s.store.FindProductByID(s.ctx, id)
	s.Require().NoError(err)
	return p.Stock
}

func (s *PostingServiceTestSuite) entries() []domain.JournalEntry {
	list, err := s.store.ListEntries(s.ctx)
	s.Require().NoError(err)
	return list
}

func sale(id string, amount int64, items ...domain.SaleItem) domain.Sale {
	return domain.Sale{
		ID:            id,
		Date:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(amount),
		PaymentMethod: domain.PaymentCash,
		Items:         items,
	}
}

func (s *PostingServiceTestSuite) TestRecordSale_PostsRevenueAndCOGS() {
	posted, err := s.service.RecordSale(s.ctx, sale("TRX-1", 50000, domain.SaleItem{ProductID: "P1", Quantity: 2}))
	s.Require().NoError(err)
	s.Equal("TRX-1", posted.EventID)
	s.Require().Len(posted.Entries, 2)

	revenue, cogs := posted.Entries[0], posted.Entries[1]
	s.Equal(domain.OriginAutomatic, revenue.Origin)
	s.Equal("TRX-1", revenue.Reference)
	s.Equal("101", revenue.Lines[0].AccountID)
	s.Equal("401", revenue.Lines[1].AccountID)
	s.True(revenue.Lines[0].Amount.Equal(decimal.NewFromInt(50000)))

	s.Equal("501", cogs.Lines[0].AccountID)
	s.Equal("104", cogs.Lines[1].AccountID)
	s.True(cogs.Lines[0].Amount.Equal(decimal.NewFromInt(20000)))
	s.Equal("TRX-1", cogs.Reference)

	for _, e := range s.entries() {
		s.True(e.IsBalanced())
		s.NotEmpty(e.ID)
	}
	s.Len(s.entries(), 2)
	s.Equal(8, s.stock("P1"))
}

func (s *PostingServiceTestSuite) TestRecordSale_GeneratesEventID() {
	posted, err := s.service.RecordSale(s.ctx, sale("", 1000))
	s.Require().NoError(err)
	s.True(strings.HasPrefix(posted.EventID, "TRX-"))
	s.Require().Len(posted.Entries, 1)
	s.Equal(posted.EventID, posted.Entries[0].Reference)
}

func (s *PostingServiceTestSuite) TestRecordSale_StockClampedAtZero() {
	_, err := s.service.RecordSale(s.ctx, sale("TRX-2", 45000, domain.SaleItem{ProductID: "P2", Quantity: 3}))
	s.Require().NoError(err)
	s.Equal(0, s.stock("P2"))
	// Gula has no cost, so only the revenue entry is posted.
	s.Len(s.entries(), 1)
}

func (s *PostingServiceTestSuite) TestRecordSale_UnknownProductIgnored() {
	posted, err := s.service.RecordSale(s.ctx, sale("TRX-3", 5000, domain.SaleItem{ProductID: "GHOST", Quantity: 1}))
	s.Require().NoError(err)
	s.Len(posted.Entries, 1)
}

func (s *PostingServiceTestSuite) TestRecordSale_CompensatesWhenCOGSFails() {
	ledger := &failingLedger{Store: s.store, failAppendOn: 2}
	svc := services.NewPostingService(ledger, s.store, chart.Default())

	posted, err := svc.RecordSale(s.ctx, sale("TRX-4", 50000, domain.SaleItem{ProductID: "P1", Quantity: 2}))
	s.Nil(posted)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.Contains(err.Error(), "disk full")

	s.Empty(s.entries(), "revenue entry must be removed")
	s.Equal(10, s.stock("P1"), "stock must be restored")
}

func (s *PostingServiceTestSuite) TestRecordSale_IncompleteCompensation() {
	ledger := &failingLedger{Store: s.store, failAppendOn: 2, failDeletes: true}
	svc := services.NewPostingService(ledger, s.store, chart.Default())

	_, err := svc.RecordSale(s.ctx, sale("TRX-5", 50000, domain.SaleItem{ProductID: "P1", Quantity: 2}))
	s.Require().Error(err)
	s.NotErrorIs(err, apperrors.ErrConflict)
	s.Contains(err.Error(), "could not be fully rolled back")
	s.Equal(10, s.stock("P1"))
}

func (s *PostingServiceTestSuite) TestRecordSale_ConfigErrorLeavesNoTrace() {
	accounts := make([]domain.Account, 0)
	for _, a := range chart.DefaultAccounts() {
		if a.Name != domain.AccountCOGS {
			accounts = append(accounts, a)
		}
	}
	c, err := chart.New(accounts)
	s.Require().NoError(err)
	svc := services.NewPostingService(s.store, s.store, c)

	_, err = svc.RecordSale(s.ctx, sale("TRX-6", 50000, domain.SaleItem{ProductID: "P1", Quantity: 2}))
	s.ErrorIs(err, apperrors.ErrConfiguration)
	s.Empty(s.entries())
	s.Equal(10, s.stock("P1"))
}

func (s *PostingServiceTestSuite) TestRecordPurchase_OnCredit() {
	posted, err := s.service.RecordPurchase(s.ctx, domain.Purchase{
		Date:          time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		Supplier:      "CV Maju",
		Amount:        decimal.NewFromInt(120000),
		PaymentMethod: domain.PaymentCredit,
		Items:         []domain.PurchaseItem{{ProductID: "P1", Quantity: 12, Cost: decimal.NewFromInt(10000)}},
	})
	s.Require().NoError(err)
	s.True(strings.HasPrefix(posted.EventID, "PUR-"))
	s.Require().Len(posted.Entries, 1)
	s.Equal("104", posted.Entries[0].Lines[0].AccountID)
	s.Equal("201", posted.Entries[0].Lines[1].AccountID)
	s.Equal(22, s.stock("P1"))
}

func (s *PostingServiceTestSuite) TestRecordPurchase_CompensatesStock() {
	ledger := &failingLedger{Store: s.store, failAppendOn: 1}
	svc := services.NewPostingService(ledger, s.store, chart.Default())

	_, err := svc.RecordPurchase(s.ctx, domain.Purchase{
		ID:            "PUR-1",
		Amount:        decimal.NewFromInt(50000),
		PaymentMethod: domain.PaymentCash,
		Items:         []domain.PurchaseItem{{ProductID: "P1", Quantity: 5}},
	})
	s.ErrorIs(err, apperrors.ErrConflict)
	s.Equal(10, s.stock("P1"))
	s.Empty(s.entries())
}

func (s *PostingServiceTestSuite) TestRecordExpense_UnpaidUtility() {
	posted, err := s.service.RecordExpense(s.ctx, domain.ExpenseRecord{
		ID:          "EXP-1",
		Date:        time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		Description: "Bayar token listrik",
		Amount:      decimal.NewFromInt(75000),
		Category:    domain.CategoryOperational,
		Status:      domain.StatusUnpaid,
	})
	s.Require().NoError(err)
	s.Require().Len(posted.Entries, 1)
	e := posted.Entries[0]
	s.Equal("504", e.Lines[0].AccountID)
	s.Equal(domain.Debit, e.Lines[0].Side)
	s.Equal("201", e.Lines[1].AccountID)
	s.Equal(domain.Credit, e.Lines[1].Side)
	s.True(e.Lines[0].Amount.Equal(decimal.NewFromInt(75000)))
}

func (s *PostingServiceTestSuite) TestRecordExpense_ZeroAmountPostsNothing() {
	posted, err := s.service.RecordExpense(s.ctx, domain.ExpenseRecord{
		Description: "gratis",
		Category:    domain.CategoryOther,
		Status:      domain.StatusPaid,
	})
	s.Require().NoError(err)
	s.True(strings.HasPrefix(posted.EventID, "EXP-"))
	s.Empty(posted.Entries)
	s.Empty(s.entries())
}

func TestPostingService(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
