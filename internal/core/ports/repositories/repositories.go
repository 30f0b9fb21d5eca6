package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Every repository is scoped by company; no query crosses tenants.
type RepositoryProvider struct {
	CompanyRepo        CompanyRepositoryFacade
	AccountRepo        AccountRepositoryFacade
	JournalRepo        JournalRepositoryFacade
	PeriodRepo         PeriodRepositoryFacade
	RateRepo           RateRepositoryFacade
	InitialBalanceRepo InitialBalanceRepositoryFacade
}
