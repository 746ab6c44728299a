package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger/internal/platform/metrics"
	"github.com/looplab/fsm"
)

// Record command states.
const (
	statePending       = "pending"
	stateStockAdjusted = "stock_adjusted"
	stateRevenuePosted = "revenue_posted"
	stateCompleted     = "completed"
	stateCompensating  = "compensating"
	stateRolledBack    = "rolled_back"
)

// Record command events.
const (
	eventAdjustStock = "adjust_stock"
	eventPostRevenue = "post_revenue"
	eventPostCOGS    = "post_cogs"
	eventPostEntry   = "post_entry"
	eventFail        = "fail"
	eventRollback    = "rollback"
)

// recordCommand sequences the side effects of one business event: stock first, then the
// journal entries. When a step fails it undoes the steps already done.
type recordCommand struct {
	kind    string
	eventID string
	machine *fsm.FSM

	ledger   portsrepo.LedgerWriter
	products portsrepo.ProductWriter
	now      func() time.Time
	logger   *slog.Logger

	previousStock map[string]int
	appended      []string
	posted        []domain.JournalEntry
}

func newRecordCommand(kind, eventID string, ledger portsrepo.LedgerWriter, products portsrepo.ProductWriter, now func() time.Time, logger *slog.Logger) *recordCommand {
	c := &recordCommand{
		kind:          kind,
		eventID:       eventID,
		ledger:        ledger,
		products:      products,
		now:           now,
		logger:        logger,
		previousStock: make(map[string]int),
	}

	c.machine = fsm.NewFSM(
		statePending,
		fsm.Events{
			// pending → stock_adjusted
			{Name: eventAdjustStock, Src: []string{statePending}, Dst: stateStockAdjusted},

			// sale: stock_adjusted → revenue_posted → completed
			{Name: eventPostRevenue, Src: []string{stateStockAdjusted}, Dst: stateRevenuePosted},
			{Name: eventPostCOGS, Src: []string{stateRevenuePosted}, Dst: stateCompleted},

			// purchase and expense: stock_adjusted → completed
			{Name: eventPostEntry, Src: []string{stateStockAdjusted}, Dst: stateCompleted},

			// any unfinished state → compensating → rolled_back
			{Name: eventFail, Src: []string{statePending, stateStockAdjusted, stateRevenuePosted}, Dst: stateCompensating},
			{Name: eventRollback, Src: []string{stateCompensating}, Dst: stateRolledBack},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				c.logger.Debug("Record command transition",
					slog.String("kind", c.kind),
					slog.String("event_id", c.eventID),
					slog.String("from", e.Src),
					slog.String("to", e.Dst))
			},
		},
	)
	return c
}

// State returns the current state of the command.
func (c *recordCommand) State() string {
	return c.machine.Current()
}

// adjustStock applies per-product stock deltas, clamping at zero, and remembers the previous
// levels for compensation.
func (c *recordCommand) adjustStock(ctx context.Context, deltas map[string]int, current map[string]domain.Product) error {
	ids := make([]string, 0, len(deltas))
	for id := range deltas {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		p, ok := current[id]
		if !ok {
			continue
		}
		next := p.Stock + deltas[id]
		if next < 0 {
			next = 0
		}
		if err := c.products.SetStock(ctx, id, next); err != nil {
			return fmt.Errorf("failed to set stock of product %s: %w", id, err)
		}
		c.previousStock[id] = p.Stock
	}
	return c.machine.Event(ctx, eventAdjustStock)
}

// post appends entry, when present, and fires event.
func (c *recordCommand) post(ctx context.Context, entry *domain.JournalEntry, event string) error {
	if entry != nil {
		entry.CreatedAt = c.now().UTC()
		id, err := c.ledger.AppendEntry(ctx, *entry)
		if err != nil {
			return fmt.Errorf("failed to append journal entry: %w", err)
		}
		entry.ID = id
		c.appended = append(c.appended, id)
		c.posted = append(c.posted, *entry)
	}
	return c.machine.Event(ctx, event)
}

// fail compensates the steps already taken and returns the error reported to the caller.
func (c *recordCommand) fail(ctx context.Context, cause error) error {
	if err := c.machine.Event(ctx, eventFail); err != nil {
		c.logger.Error("Record command cannot enter compensation",
			slog.String("kind", c.kind),
			slog.String("event_id", c.eventID),
			slog.String("state", c.State()),
			slog.String("error", err.Error()))
	}

	var undoErrs []error
	for i := len(c.appended) - 1; i >= 0; i-- {
		if err := c.ledger.DeleteEntry(ctx, c.appended[i]); err != nil {
			undoErrs = append(undoErrs, fmt.Errorf("delete entry %s: %w", c.appended[i], err))
		}
	}
	for id, stock := range c.previousStock {
		if err := c.products.SetStock(ctx, id, stock); err != nil {
			undoErrs = append(undoErrs, fmt.Errorf("restore stock of %s: %w", id, err))
		}
	}
	metrics.Compensations.WithLabelValues(c.kind).Inc()

	if len(undoErrs) > 0 {
		undoErr := errors.Join(undoErrs...)
		c.logger.Error("Record command compensation incomplete",
			slog.String("kind", c.kind),
			slog.String("event_id", c.eventID),
			slog.String("cause", cause.Error()),
			slog.String("error", undoErr.Error()))
		return fmt.Errorf("recording %s %s failed and could not be fully rolled back: %w", c.kind, c.eventID, errors.Join(cause, undoErr))
	}

	if err := c.machine.Event(ctx, eventRollback); err != nil {
		c.logger.Error("Record command cannot finish rollback", slog.String("error", err.Error()))
	}
	c.logger.Warn("Record command rolled back",
		slog.String("kind", c.kind),
		slog.String("event_id", c.eventID),
		slog.String("cause", cause.Error()))
	c.posted = nil
	return fmt.Errorf("%w: recording %s %s was rolled back: %w", apperrors.ErrConflict, c.kind, c.eventID, cause)
}
