package services

import (
	portsrepo "github.com/bukidworks/farm_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/bukidworks/farm_ledger_app/internal/core/ports/services"
	"github.com/bukidworks/farm_ledger_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Activity first since every write path records through it
	container.Activity = NewActivityService(repos.ActivityRepo)

	container.Worker = NewWorkerService(repos.UoWManager, repos.WorkerRepo, container.Activity, cfg.CSVExportDir, cfg.CSVExportTTL)
	container.Debt = NewDebtService(repos.UoWManager, repos.DebtRepo, repos.WorkerRepo, container.Activity)
	container.Payment = NewPaymentService(repos.UoWManager, repos.PaymentRepo, repos.DebtRepo, repos.WorkerRepo, container.Activity)
	container.Assignment = NewAssignmentService(repos.UoWManager, repos.AssignmentRepo, repos.WorkerRepo, container.Activity)

	// Read-only aggregators
	container.Ledger = NewLedgerService(repos.WorkerRepo, repos.DebtRepo, repos.PaymentRepo)
	container.Performance = NewPerformanceService(repos.WorkerRepo, repos.AssignmentRepo, repos.PaymentRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.WorkerSvcFacade      = (*workerService)(nil)
	_ portssvc.DebtSvcFacade        = (*debtService)(nil)
	_ portssvc.PaymentSvcFacade     = (*paymentService)(nil)
	_ portssvc.AssignmentSvcFacade  = (*assignmentService)(nil)
	_ portssvc.LedgerSvcFacade      = (*ledgerService)(nil)
	_ portssvc.PerformanceSvcFacade = (*performanceService)(nil)
	_ portssvc.ActivitySvcFacade    = (*activityService)(nil)
)
