package services

// ServiceContainer holds all service facades for handler wiring.
type ServiceContainer struct {
	Worker      WorkerSvcFacade
	Debt        DebtSvcFacade
	Payment     PaymentSvcFacade
	Assignment  AssignmentSvcFacade
	Ledger      LedgerSvcFacade
	Performance PerformanceSvcFacade
	Activity    ActivitySvcFacade
}
