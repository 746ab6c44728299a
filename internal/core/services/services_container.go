package services

import (
	"sync"

	"github.com/SscSPs/pos_ledger/internal/core/chart"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Every service that writes to the ledger shares one write lock, so writes are serialized while
// reads work on store snapshots.
func NewServiceContainer(c *chart.Chart, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	writeMu := &sync.Mutex{}

	return &portssvc.ServiceContainer{
		Chart:   c,
		Account: NewAccountService(c),
		Journal: NewJournalService(repos.LedgerRepo, c,
			WithJournalWriteLock(writeMu),
		),
		Posting: NewPostingService(repos.LedgerRepo, repos.ProductRepo, c,
			WithPostingWriteLock(writeMu),
		),
		Reporting: NewReportingService(repos.LedgerRepo, c),
		Product:   NewProductService(repos.ProductRepo),
	}
}
