package services

import (
	"github.com/SscSPs/pos_ledger/internal/core/chart"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Chart     *chart.Chart
	Account   AccountSvc
	Journal   JournalSvcFacade
	Posting   PostingSvc
	Reporting ReportingService
	Product   ProductSvcFacade
}
