package services

import (
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Company:   NewCompanyService(repos.CompanyRepo, cfg.DefaultReportingCurrency),
		Account:   NewAccountService(repos.AccountRepo, repos.CompanyRepo),
		Journal:   NewJournalService(repos.JournalRepo, repos.AccountRepo, repos.PeriodRepo),
		Period:    NewPeriodService(repos.PeriodRepo),
		Rate:      NewRateService(repos.RateRepo),
		Balance:   NewBalanceService(repos),
		Reporting: NewReportingService(repos, cfg.StatementTimeout),
		Invoice:   NewInvoiceService(),
	}
}
