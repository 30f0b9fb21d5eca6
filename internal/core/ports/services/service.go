package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Company   CompanySvcFacade
	Account   AccountSvcFacade
	Journal   JournalSvcFacade
	Period    PeriodSvcFacade
	Rate      RateSvcFacade
	Balance   BalanceSvcFacade
	Reporting ReportingService
	Invoice   InvoiceSvc
}
