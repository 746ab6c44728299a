package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/chart"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/core/posting"
	"github.com/SscSPs/pos_ledger/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event id prefixes for generated business-event ids.
const (
	salePrefix     = "TRX"
	purchasePrefix = "PUR"
	expensePrefix  = "EXP"
)

// postingService records business events as a single command each: stock and journal
// entries succeed together or are compensated together.
type postingService struct {
	BaseService
	rules       *posting.Rules
	ledgerRepo  portsrepo.LedgerWriter
	productRepo portsrepo.ProductRepositoryFacade
	writeMu     *sync.Mutex
	now         func() time.Time
}

// PostingServiceOption is a functional option for configuring the posting service
type PostingServiceOption func(*postingService)

// WithPostingWriteLock shares the ledger write lock with other writers.
func WithPostingWriteLock(mu *sync.Mutex) PostingServiceOption {
	return func(s *postingService) {
		s.writeMu = mu
	}
}

// WithPostingClock overrides the clock used for createdAt.
func WithPostingClock(now func() time.Time) PostingServiceOption {
	return func(s *postingService) {
		s.now = now
	}
}

// NewPostingService creates a new posting service.
func NewPostingService(ledgerRepo portsrepo.LedgerWriter, productRepo portsrepo.ProductRepositoryFacade, c *chart.Chart, options ...PostingServiceOption) portssvc.PostingSvc {
	svc := &postingService{
		rules:       posting.NewRules(c),
		ledgerRepo:  ledgerRepo,
		productRepo: productRepo,
		writeMu:     &sync.Mutex{},
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure postingService implements the portssvc.PostingSvc interface
var _ portssvc.PostingSvc = (*postingService)(nil)

func newEventID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// loadProducts fetches the products referenced by an event. Unknown ids are logged and left out.
func (s *postingService) loadProducts(ctx context.Context, eventID string, ids []string) (map[string]domain.Product, error) {
	if len(ids) == 0 {
		return map[string]domain.Product{}, nil
	}
	products, err := s.productRepo.FindProductsByIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to load products for event", slog.String("event_id", eventID))
		return nil, err
	}
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			s.LogWarn(ctx, "Event references unknown product; stock and cost ignored",
				slog.String("event_id", eventID),
				slog.String("product_id", id))
		}
	}
	return products, nil
}

func (s *postingService) finish(ctx context.Context, cmd *recordCommand) *domain.PostedEvent {
	metrics.EventsRecorded.WithLabelValues(cmd.kind, cmd.State()).Inc()
	metrics.EntriesPosted.WithLabelValues(string(domain.OriginAutomatic)).Add(float64(len(cmd.posted)))
	s.LogInfo(ctx, "Business event recorded",
		slog.String("kind", cmd.kind),
		slog.String("event_id", cmd.eventID),
		slog.Int("entries", len(cmd.posted)))
	return &domain.PostedEvent{EventID: cmd.eventID, Entries: cmd.posted}
}

func (s *postingService) abort(cmd *recordCommand, err error) error {
	metrics.EventsRecorded.WithLabelValues(cmd.kind, cmd.State()).Inc()
	return err
}

// RecordSale decrements stock, then posts the revenue entry and the cost-of-goods entry.
func (s *postingService) RecordSale(ctx context.Context, sale domain.Sale) (*domain.PostedEvent, error) {
	if sale.ID == "" {
		sale.ID = newEventID(salePrefix)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	ids := make([]string, 0, len(sale.Items))
	deltas := make(map[string]int, len(sale.Items))
	for _, item := range sale.Items {
		if _, seen := deltas[item.ProductID]; !seen {
			ids = append(ids, item.ProductID)
		}
		deltas[item.ProductID] -= item.Quantity
	}

	products, err := s.loadProducts(ctx, sale.ID, ids)
	if err != nil {
		return nil, err
	}
	unitCosts := make(map[string]decimal.Decimal, len(products))
	for id, p := range products {
		unitCosts[id] = p.Cost
	}

	// Entries are built before anything is written, so configuration errors leave no trace.
	entries, err := s.rules.Sale(sale, unitCosts)
	if err != nil {
		s.LogError(ctx, err, "Sale cannot be posted", slog.String("event_id", sale.ID))
		return nil, err
	}

	cmd := newRecordCommand("sale", sale.ID, s.ledgerRepo, s.productRepo, s.now, s.GetLogger(ctx))
	if err := cmd.adjustStock(ctx, deltas, products); err != nil {
		return nil, s.abort(cmd, cmd.fail(ctx, err))
	}
	if err := cmd.post(ctx, entries.Revenue, eventPostRevenue); err != nil {
		return nil, s.abort(cmd, cmd.fail(ctx, err))
	}
	if err := cmd.post(ctx, entries.COGS, eventPostCOGS); err != nil {
		return nil, s.abort(cmd, cmd.fail(ctx, err))
	}
	return s.finish(ctx, cmd), nil
}

// RecordPurchase increments stock, then posts the inventory entry.
func (s *postingService) RecordPurchase(ctx context.Context, purchase domain.Purchase) (*domain.PostedEvent, error) {
	if purchase.ID == "" {
		purchase.ID = newEventID(purchasePrefix)
	}
	if purchase.Status == "" {
		purchase.Status = domain.StatusUnpaid
		if purchase.PaymentMethod.SettlesImmediately() {
			purchase.Status = domain.StatusPaid
		}
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	ids := make([]string, 0, len(purchase.Items))
	deltas := make(map[string]int, len(purchase.Items))
	for _, item := range purchase.Items {
		if _, seen := deltas[item.ProductID]; !seen {
			ids = append(ids, item.ProductID)
		}
		deltas[item.ProductID] += item.Quantity
	}

	products, err := s.loadProducts(ctx, purchase.ID, ids)
	if err != nil {
		return nil, err
	}

	entry, err := s.rules.Purchase(purchase)
	if err != nil {
		s.LogError(ctx, err, "Purchase cannot be posted", slog.String("event_id", purchase.ID))
		return nil, err
	}

	cmd := newRecordCommand("purchase", purchase.ID, s.ledgerRepo, s.productRepo, s.now, s.GetLogger(ctx))
	if err := cmd.adjustStock(ctx, deltas, products); err != nil {
		return nil, s.abort(cmd, cmd.fail(ctx, err))
	}
	if err := cmd.post(ctx, entry, eventPostEntry); err != nil {
		return nil, s.abort(cmd, cmd.fail(ctx, err))
	}
	return s.finish(ctx, cmd), nil
}

// RecordExpense posts the entry of an operating cost.
func (s *postingService) RecordExpense(ctx context.Context, expense domain.ExpenseRecord) (*domain.PostedEvent, error) {
	if expense.ID == "" {
		expense.ID = newEventID(expensePrefix)
	}

	entry, err := s.rules.Expense(expense)
	if err != nil {
		s.LogError(ctx, err, "Expense cannot be posted", slog.String("event_id", expense.ID))
		return nil, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	cmd := newRecordCommand("expense", expense.ID, s.ledgerRepo, s.productRepo, s.now, s.GetLogger(ctx))
	if err := cmd.adjustStock(ctx, nil, nil); err != nil {
		return nil, s.abort(cmd, cmd.fail(ctx, err))
	}
	if err := cmd.post(ctx, entry, eventPostEntry); err != nil {
		return nil, s.abort(cmd, cmd.fail(ctx, err))
	}
	return s.finish(ctx, cmd), nil
}
