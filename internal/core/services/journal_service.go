package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/chart"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/platform/metrics"
	"github.com/SscSPs/pos_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var (
	ErrDescriptionMissing = fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	ErrReferenceMissing   = fmt.Errorf("%w: reference is required", apperrors.ErrValidation)
	ErrEntryNotBalanced   = fmt.Errorf("%w: not balanced", apperrors.ErrValidation)
	ErrUnknownAccount     = fmt.Errorf("%w: unknown account", apperrors.ErrValidation)
	ErrEntryInvalid       = fmt.Errorf("%w: entry invalid", apperrors.ErrValidation)
	ErrInvalidDate        = fmt.Errorf("%w: invalid date", apperrors.ErrValidation)
)

const defaultPageSize = 20

// journalService implements the manual journal editor and the journal listing.
type journalService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	chart      *chart.Chart
	writeMu    *sync.Mutex
	now        func() time.Time
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithJournalWriteLock shares the ledger write lock with other writers.
func WithJournalWriteLock(mu *sync.Mutex) JournalServiceOption {
	return func(s *journalService) {
		s.writeMu = mu
	}
}

// WithJournalClock overrides the clock used for createdAt.
func WithJournalClock(now func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.now = now
	}
}

// NewJournalService creates a new journal service.
func NewJournalService(ledgerRepo portsrepo.LedgerRepositoryFacade, c *chart.Chart, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		ledgerRepo: ledgerRepo,
		chart:      c,
		writeMu:    &sync.Mutex{},
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// sumAmounts adds up the amounts of the given lines as typed, empty lines included.
func sumAmounts(lines []dto.ManualLineRequest) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}

// resolveLines maps named lines to journal lines. Lines without a name or without a positive
// amount are dropped before lookup; every remaining line must resolve.
func (s *journalService) resolveLines(lines []dto.ManualLineRequest, side domain.TransactionType) ([]domain.JournalLine, error) {
	out := make([]domain.JournalLine, 0, len(lines))
	for _, l := range lines {
		name := strings.TrimSpace(l.AccountName)
		if name == "" || !l.Amount.IsPositive() {
			continue
		}
		accountID, err := s.chart.ResolveName(name)
		if err != nil {
			return nil, fmt.Errorf("%w %s", ErrUnknownAccount, name)
		}
		out = append(out, domain.JournalLine{AccountID: accountID, Amount: l.Amount, Side: side})
	}
	return out, nil
}

// buildManualEntry validates a manual payload and turns it into an entry. Checks run in a
// fixed order and the first failure is returned.
func (s *journalService) buildManualEntry(req dto.ManualEntryRequest) (domain.JournalEntry, error) {
	description := strings.TrimSpace(req.Description)
	reference := strings.TrimSpace(req.Reference)
	if description == "" {
		return domain.JournalEntry{}, ErrDescriptionMissing
	}
	if reference == "" {
		return domain.JournalEntry{}, ErrReferenceMissing
	}

	debits, credits := sumAmounts(req.Debits), sumAmounts(req.Credits)
	if !debits.Equal(credits) || !debits.IsPositive() {
		return domain.JournalEntry{}, fmt.Errorf("%w: debits %s, credits %s", ErrEntryNotBalanced, debits.String(), credits.String())
	}

	debitLines, err := s.resolveLines(req.Debits, domain.Debit)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	creditLines, err := s.resolveLines(req.Credits, domain.Credit)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	if len(debitLines) == 0 || len(creditLines) == 0 {
		return domain.JournalEntry{}, ErrEntryInvalid
	}

	lines := append(debitLines, creditLines...)
	// Nameless or non-positive lines count in the typed totals but are not posted.
	if err := accounting.ValidateEntryBalance(lines); err != nil {
		return domain.JournalEntry{}, fmt.Errorf("%w: %v", ErrEntryNotBalanced, err)
	}

	date, err := domain.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	return domain.JournalEntry{
		Date:        date,
		Description: description,
		Reference:   reference,
		Origin:      domain.OriginManual,
		Lines:       lines,
	}, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrDescriptionMissing), errors.Is(err, ErrReferenceMissing):
		return "missing_metadata"
	case errors.Is(err, ErrEntryNotBalanced):
		return "not_balanced"
	case errors.Is(err, ErrUnknownAccount):
		return "unknown_account"
	case errors.Is(err, ErrEntryInvalid):
		return "entry_invalid"
	default:
		return "invalid_date"
	}
}

// CreateManualEntry validates a user-composed entry and appends it to the ledger.
func (s *journalService) CreateManualEntry(ctx context.Context, req dto.ManualEntryRequest) (*domain.JournalEntry, error) {
	entry, err := s.buildManualEntry(req)
	if err != nil {
		metrics.ManualRejections.WithLabelValues(rejectionReason(err)).Inc()
		s.LogWarn(ctx, "Manual journal entry rejected",
			slog.String("reference", req.Reference),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	entry.CreatedAt = s.now().UTC()
	id, err := s.ledgerRepo.AppendEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to append manual journal entry", slog.String("reference", entry.Reference))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}
	entry.ID = id
	metrics.EntriesPosted.WithLabelValues(string(domain.OriginManual)).Inc()

	s.LogInfo(ctx, "Manual journal entry created",
		slog.String("entry_id", id),
		slog.String("reference", entry.Reference))
	return &entry, nil
}

// UpdateManualEntry replaces date, description, reference and lines of an existing entry.
// The id, creation time and origin of the stored entry are kept.
func (s *journalService) UpdateManualEntry(ctx context.Context, entryID string, req dto.ManualEntryRequest) (*domain.JournalEntry, error) {
	entry, err := s.buildManualEntry(req)
	if err != nil {
		metrics.ManualRejections.WithLabelValues(rejectionReason(err)).Inc()
		s.LogWarn(ctx, "Journal entry update rejected",
			slog.String("entry_id", entryID),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	existing, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load journal entry for update", slog.String("entry_id", entryID))
		}
		return nil, err
	}

	entry.ID = existing.ID
	entry.CreatedAt = existing.CreatedAt
	entry.Origin = existing.Origin
	if existing.Origin == domain.OriginAutomatic {
		s.LogWarn(ctx, "Editing an automatic journal entry; its source record is not changed",
			slog.String("entry_id", entryID),
			slog.String("reference", existing.Reference))
	}

	if err := s.ledgerRepo.UpdateEntry(ctx, entryID, entry); err != nil {
		s.LogError(ctx, err, "Failed to update journal entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry updated", slog.String("entry_id", entryID))
	return &entry, nil
}

// DeleteEntry removes an entry from the ledger.
func (s *journalService) DeleteEntry(ctx context.Context, entryID string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.ledgerRepo.DeleteEntry(ctx, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete journal entry", slog.String("entry_id", entryID))
		}
		return err
	}
	s.LogInfo(ctx, "Journal entry deleted", slog.String("entry_id", entryID))
	return nil
}

// GetEntry retrieves a specific journal entry by its ID.
func (s *journalService) GetEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get journal entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

// ListEntries retrieves a paginated list of journal entries, newest first.
func (s *journalService) ListEntries(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	entries, nextToken, err := s.ledgerRepo.ListEntriesPage(ctx, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.Int("limit", limit))
		return nil, err
	}

	return &dto.ListJournalsResponse{
		Journals:  dto.ToJournalResponses(entries, s.chart),
		NextToken: nextToken,
	}, nil
}
