package services_test

import (
	"context"
	"time"

	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	portsrepo "github.com/bukidworks/farm_ledger_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Fake UnitOfWork / manager ---

// fakeUnitOfWork records commit/rollback outcomes so tests can assert the
// abort policy. Rollback after commit is a no-op, matching the pgx unit.
type fakeUnitOfWork struct {
	committed  bool
	rolledBack bool
}

func (u *fakeUnitOfWork) DB() portsrepo.DBTX { return nil }
func (u *fakeUnitOfWork) Owns() bool         { return true }

func (u *fakeUnitOfWork) Commit(context.Context) error {
	u.committed = true
	return nil
}

func (u *fakeUnitOfWork) Rollback(context.Context) error {
	if !u.committed {
		u.rolledBack = true
	}
	return nil
}

// fakeBorrowedUnit wraps an outer unit the way a non-owning unit does. Its
// commit and rollback record the call but never reach the outer unit.
type fakeBorrowedUnit struct {
	outer      portsrepo.UnitOfWork
	committed  bool
	rolledBack bool
}

func (u *fakeBorrowedUnit) DB() portsrepo.DBTX { return u.outer.DB() }
func (u *fakeBorrowedUnit) Owns() bool         { return false }

func (u *fakeBorrowedUnit) Commit(context.Context) error {
	u.committed = true
	return nil
}

func (u *fakeBorrowedUnit) Rollback(context.Context) error {
	if !u.committed {
		u.rolledBack = true
	}
	return nil
}

type fakeUoWManager struct {
	last     *fakeUnitOfWork
	borrowed []*fakeBorrowedUnit
}

func (m *fakeUoWManager) Begin(_ context.Context, outer portsrepo.UnitOfWork) (portsrepo.UnitOfWork, error) {
	if outer != nil {
		u := &fakeBorrowedUnit{outer: outer}
		m.borrowed = append(m.borrowed, u)
		return u, nil
	}
	u := &fakeUnitOfWork{}
	m.last = u
	return u, nil
}

// --- Mock WorkerRepository ---

type MockWorkerRepository struct {
	mock.Mock
	SaveWorkerFn           func(ctx context.Context, uow portsrepo.UnitOfWork, worker domain.Worker) error
	FindWorkerByIDFn       func(ctx context.Context, uow portsrepo.UnitOfWork, workerID string) (*domain.Worker, error)
	FindWorkersByEmailsFn  func(ctx context.Context, uow portsrepo.UnitOfWork, emails []string) (map[string]domain.Worker, error)
	FindWorkerByEmailFn    func(ctx context.Context, uow portsrepo.UnitOfWork, email string) (*domain.Worker, error)
	UpdateWorkerFn         func(ctx context.Context, uow portsrepo.UnitOfWork, worker domain.Worker) error
	ListWorkersFn          func(ctx context.Context, limit int, nextToken *string, status *domain.WorkerStatus) ([]domain.Worker, *string, error)
	ListWorkersForExportFn func(ctx context.Context, filter portsrepo.WorkerExportFilter) ([]domain.Worker, error)
}

func (m *MockWorkerRepository) SaveWorker(ctx context.Context, uow portsrepo.UnitOfWork, worker domain.Worker) error {
	if m.SaveWorkerFn != nil {
		return m.SaveWorkerFn(ctx, uow, worker)
	}
	return nil
}

func (m *MockWorkerRepository) FindWorkerByID(ctx context.Context, uow portsrepo.UnitOfWork, workerID string) (*domain.Worker, error) {
	if m.FindWorkerByIDFn != nil {
		return m.FindWorkerByIDFn(ctx, uow, workerID)
	}
	return nil, nil
}

func (m *MockWorkerRepository) FindWorkersByEmails(ctx context.Context, uow portsrepo.UnitOfWork, emails []string) (map[string]domain.Worker, error) {
	if m.FindWorkersByEmailsFn != nil {
		return m.FindWorkersByEmailsFn(ctx, uow, emails)
	}
	return map[string]domain.Worker{}, nil
}

func (m *MockWorkerRepository) FindWorkerByEmail(ctx context.Context, uow portsrepo.UnitOfWork, email string) (*domain.Worker, error) {
	if m.FindWorkerByEmailFn != nil {
		return m.FindWorkerByEmailFn(ctx, uow, email)
	}
	return nil, nil
}

func (m *MockWorkerRepository) UpdateWorker(ctx context.Context, uow portsrepo.UnitOfWork, worker domain.Worker) error {
	if m.UpdateWorkerFn != nil {
		return m.UpdateWorkerFn(ctx, uow, worker)
	}
	return nil
}

func (m *MockWorkerRepository) ListWorkers(ctx context.Context, limit int, nextToken *string, status *domain.WorkerStatus) ([]domain.Worker, *string, error) {
	if m.ListWorkersFn != nil {
		return m.ListWorkersFn(ctx, limit, nextToken, status)
	}
	return nil, nil, nil
}

func (m *MockWorkerRepository) ListWorkersForExport(ctx context.Context, filter portsrepo.WorkerExportFilter) ([]domain.Worker, error) {
	if m.ListWorkersForExportFn != nil {
		return m.ListWorkersForExportFn(ctx, filter)
	}
	return nil, nil
}

// --- Mock DebtRepository ---

type MockDebtRepository struct {
	mock.Mock
	SaveDebtFn            func(ctx context.Context, uow portsrepo.UnitOfWork, debt domain.Debt) error
	FindDebtByIDFn        func(ctx context.Context, uow portsrepo.UnitOfWork, debtID string) (*domain.Debt, error)
	FindDebtsByWorkerIDFn func(ctx context.Context, uow portsrepo.UnitOfWork, workerID string, activeOnly bool) ([]domain.Debt, error)
	UpdateDebtFn          func(ctx context.Context, uow portsrepo.UnitOfWork, debt domain.Debt) error
}

func (m *MockDebtRepository) SaveDebt(ctx context.Context, uow portsrepo.UnitOfWork, debt domain.Debt) error {
	if m.SaveDebtFn != nil {
		return m.SaveDebtFn(ctx, uow, debt)
	}
	return nil
}

func (m *MockDebtRepository) FindDebtByID(ctx context.Context, uow portsrepo.UnitOfWork, debtID string) (*domain.Debt, error) {
	if m.FindDebtByIDFn != nil {
		return m.FindDebtByIDFn(ctx, uow, debtID)
	}
	return nil, nil
}

func (m *MockDebtRepository) FindDebtsByWorkerID(ctx context.Context, uow portsrepo.UnitOfWork, workerID string, activeOnly bool) ([]domain.Debt, error) {
	if m.FindDebtsByWorkerIDFn != nil {
		return m.FindDebtsByWorkerIDFn(ctx, uow, workerID, activeOnly)
	}
	return nil, nil
}

func (m *MockDebtRepository) UpdateDebt(ctx context.Context, uow portsrepo.UnitOfWork, debt domain.Debt) error {
	if m.UpdateDebtFn != nil {
		return m.UpdateDebtFn(ctx, uow, debt)
	}
	return nil
}

// --- Mock PaymentRepository ---

type MockPaymentRepository struct {
	mock.Mock
	SavePaymentFn                 func(ctx context.Context, uow portsrepo.UnitOfWork, payment domain.Payment) error
	FindPaymentByIDFn             func(ctx context.Context, uow portsrepo.UnitOfWork, paymentID string) (*domain.Payment, error)
	FindPaymentsByWorkerIDFn      func(ctx context.Context, uow portsrepo.UnitOfWork, workerID string) ([]domain.Payment, error)
	FindPaymentsByWorkerInRangeFn func(ctx context.Context, workerID string, start, end time.Time) ([]domain.Payment, error)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, uow portsrepo.UnitOfWork, payment domain.Payment) error {
	if m.SavePaymentFn != nil {
		return m.SavePaymentFn(ctx, uow, payment)
	}
	return nil
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, uow portsrepo.UnitOfWork, paymentID string) (*domain.Payment, error) {
	if m.FindPaymentByIDFn != nil {
		return m.FindPaymentByIDFn(ctx, uow, paymentID)
	}
	return nil, nil
}

func (m *MockPaymentRepository) FindPaymentsByWorkerID(ctx context.Context, uow portsrepo.UnitOfWork, workerID string) ([]domain.Payment, error) {
	if m.FindPaymentsByWorkerIDFn != nil {
		return m.FindPaymentsByWorkerIDFn(ctx, uow, workerID)
	}
	return nil, nil
}

func (m *MockPaymentRepository) FindPaymentsByWorkerInRange(ctx context.Context, workerID string, start, end time.Time) ([]domain.Payment, error) {
	if m.FindPaymentsByWorkerInRangeFn != nil {
		return m.FindPaymentsByWorkerInRangeFn(ctx, workerID, start, end)
	}
	return nil, nil
}

// --- Mock AssignmentRepository ---

type MockAssignmentRepository struct {
	mock.Mock
	SaveAssignmentFn                 func(ctx context.Context, uow portsrepo.UnitOfWork, assignment domain.Assignment) error
	FindAssignmentByIDFn             func(ctx context.Context, uow portsrepo.UnitOfWork, assignmentID string) (*domain.Assignment, error)
	UpdateAssignmentFn               func(ctx context.Context, uow portsrepo.UnitOfWork, assignment domain.Assignment) error
	FindAssignmentsByWorkerIDFn      func(ctx context.Context, workerID string) ([]domain.Assignment, error)
	FindAssignmentsByWorkerInRangeFn func(ctx context.Context, workerID string, start, end time.Time) ([]domain.Assignment, error)
}

func (m *MockAssignmentRepository) SaveAssignment(ctx context.Context, uow portsrepo.UnitOfWork, assignment domain.Assignment) error {
	if m.SaveAssignmentFn != nil {
		return m.SaveAssignmentFn(ctx, uow, assignment)
	}
	return nil
}

func (m *MockAssignmentRepository) FindAssignmentByID(ctx context.Context, uow portsrepo.UnitOfWork, assignmentID string) (*domain.Assignment, error) {
	if m.FindAssignmentByIDFn != nil {
		return m.FindAssignmentByIDFn(ctx, uow, assignmentID)
	}
	return nil, nil
}

func (m *MockAssignmentRepository) UpdateAssignment(ctx context.Context, uow portsrepo.UnitOfWork, assignment domain.Assignment) error {
	if m.UpdateAssignmentFn != nil {
		return m.UpdateAssignmentFn(ctx, uow, assignment)
	}
	return nil
}

func (m *MockAssignmentRepository) FindAssignmentsByWorkerID(ctx context.Context, workerID string) ([]domain.Assignment, error) {
	if m.FindAssignmentsByWorkerIDFn != nil {
		return m.FindAssignmentsByWorkerIDFn(ctx, workerID)
	}
	return nil, nil
}

func (m *MockAssignmentRepository) FindAssignmentsByWorkerInRange(ctx context.Context, workerID string, start, end time.Time) ([]domain.Assignment, error) {
	if m.FindAssignmentsByWorkerInRangeFn != nil {
		return m.FindAssignmentsByWorkerInRangeFn(ctx, workerID, start, end)
	}
	return nil, nil
}

// --- Mock ActivityRepository ---

type MockActivityRepository struct {
	mock.Mock
	SaveEntryFn   func(ctx context.Context, uow portsrepo.UnitOfWork, entry domain.ActivityLogEntry) error
	ListEntriesFn func(ctx context.Context, limit int, nextToken *string, actorID *string) ([]domain.ActivityLogEntry, *string, error)

	saved []domain.ActivityLogEntry
}

func (m *MockActivityRepository) SaveEntry(ctx context.Context, uow portsrepo.UnitOfWork, entry domain.ActivityLogEntry) error {
	if m.SaveEntryFn != nil {
		return m.SaveEntryFn(ctx, uow, entry)
	}
	m.saved = append(m.saved, entry)
	return nil
}

func (m *MockActivityRepository) ListEntries(ctx context.Context, limit int, nextToken *string, actorID *string) ([]domain.ActivityLogEntry, *string, error) {
	if m.ListEntriesFn != nil {
		return m.ListEntriesFn(ctx, limit, nextToken, actorID)
	}
	return m.saved, nil, nil
}
