package services_test

import (
	"context"
	"testing"

	"github.com/bukidworks/farm_ledger_app/internal/apperrors"
	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	portsrepo "github.com/bukidworks/farm_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/bukidworks/farm_ledger_app/internal/core/ports/services"
	"github.com/bukidworks/farm_ledger_app/internal/core/services"
	"github.com/bukidworks/farm_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DebtServiceTestSuite struct {
	suite.Suite
	uowMgr           *fakeUoWManager
	mockDebtRepo     *MockDebtRepository
	mockWorkerRepo   *MockWorkerRepository
	mockActivityRepo *MockActivityRepository
	service          portssvc.DebtSvcFacade
}

func (suite *DebtServiceTestSuite) SetupTest() {
	suite.uowMgr = &fakeUoWManager{}
	suite.mockDebtRepo = new(MockDebtRepository)
	suite.mockWorkerRepo = new(MockWorkerRepository)
	suite.mockActivityRepo = new(MockActivityRepository)
	suite.mockWorkerRepo.FindWorkerByIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, id string) (*domain.Worker, error) {
		return &domain.Worker{WorkerID: id, Name: "Ana", Status: domain.WorkerActive}, nil
	}
	activity := services.NewActivityService(suite.mockActivityRepo)
	suite.service = services.NewDebtService(suite.uowMgr, suite.mockDebtRepo, suite.mockWorkerRepo, activity)
}

func debtRequest(amount, rate int64) dto.CreateDebtRequest {
	return dto.CreateDebtRequest{
		WorkerID:     "w-1",
		Amount:       decimal.NewFromInt(amount),
		InterestRate: decimal.NewFromInt(rate),
		DateIncurred: "2026-08-01",
		Reason:       "cash advance",
	}
}

func (suite *DebtServiceTestSuite) TestCreateDebt_InterestFixedAtCreation() {
	ctx := context.Background()

	var saved *domain.Debt
	suite.mockDebtRepo.SaveDebtFn = func(_ context.Context, _ portsrepo.UnitOfWork, debt domain.Debt) error {
		saved = &debt
		return nil
	}

	debt, err := suite.service.CreateDebt(ctx, debtRequest(1000, 5), "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(saved)
	// Simple interest computed once: 1000 * 5 / 100 = 50.
	suite.True(debt.TotalInterest.Equal(decimal.NewFromInt(50)))
	suite.True(debt.Balance.Equal(decimal.NewFromInt(1050)))
	suite.True(debt.TotalPaid.IsZero())
	suite.Equal(domain.DebtPending, debt.Status)
	suite.True(suite.uowMgr.last.committed)

	suite.Require().Len(suite.mockActivityRepo.saved, 1)
	suite.Equal("debt.create", suite.mockActivityRepo.saved[0].Action)
}

func (suite *DebtServiceTestSuite) TestCreateDebt_ZeroRate() {
	ctx := context.Background()

	debt, err := suite.service.CreateDebt(ctx, debtRequest(800, 0), "user-1")

	suite.Require().NoError(err)
	suite.True(debt.TotalInterest.IsZero())
	suite.True(debt.Balance.Equal(decimal.NewFromInt(800)))
}

func (suite *DebtServiceTestSuite) TestCreateDebt_RejectsNonPositiveAmount() {
	ctx := context.Background()

	debt, err := suite.service.CreateDebt(ctx, debtRequest(0, 5), "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(debt)
	suite.Nil(suite.uowMgr.last)
}

func (suite *DebtServiceTestSuite) TestCreateDebt_WorkerMissing() {
	ctx := context.Background()
	suite.mockWorkerRepo.FindWorkerByIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, _ string) (*domain.Worker, error) {
		return nil, apperrors.ErrNotFound
	}

	debt, err := suite.service.CreateDebt(ctx, debtRequest(1000, 5), "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(debt)
	suite.False(suite.uowMgr.last.committed)
}

func (suite *DebtServiceTestSuite) TestCancelDebt_PaidStaysPaid() {
	ctx := context.Background()
	suite.mockDebtRepo.FindDebtByIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, id string) (*domain.Debt, error) {
		return &domain.Debt{DebtID: id, Status: domain.DebtPaid}, nil
	}

	debt, err := suite.service.CancelDebt(ctx, "d-1", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(debt)
	suite.False(suite.uowMgr.last.committed)
}

func (suite *DebtServiceTestSuite) TestCancelDebt_ActiveDebt() {
	ctx := context.Background()
	suite.mockDebtRepo.FindDebtByIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, id string) (*domain.Debt, error) {
		return &domain.Debt{DebtID: id, Status: domain.DebtPartiallyPaid}, nil
	}

	debt, err := suite.service.CancelDebt(ctx, "d-1", "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.DebtCancelled, debt.Status)
	suite.True(suite.uowMgr.last.committed)
}

func (suite *DebtServiceTestSuite) TestUpdateDebt_PatchWhitelist() {
	ctx := context.Background()
	suite.mockDebtRepo.FindDebtByIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, id string) (*domain.Debt, error) {
		return &domain.Debt{DebtID: id, Status: domain.DebtPending, Reason: "old"}, nil
	}

	reason := "seed purchase"
	due := "2026-12-01"
	debt, err := suite.service.UpdateDebt(ctx, "d-1", dto.DebtPatch{Reason: &reason, DueDate: &due}, "user-1")

	suite.Require().NoError(err)
	suite.Equal("seed purchase", debt.Reason)
	suite.Require().NotNil(debt.DueDate)
	suite.Equal("2026-12-01", debt.DueDate.Format("2006-01-02"))
	suite.True(suite.uowMgr.last.committed)
}

func TestDebtServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DebtServiceTestSuite))
}
