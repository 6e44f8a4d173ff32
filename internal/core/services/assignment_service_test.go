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

type AssignmentServiceTestSuite struct {
	suite.Suite
	uowMgr             *fakeUoWManager
	mockAssignmentRepo *MockAssignmentRepository
	mockWorkerRepo     *MockWorkerRepository
	mockActivityRepo   *MockActivityRepository
	service            portssvc.AssignmentSvcFacade
}

func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.uowMgr = &fakeUoWManager{}
	suite.mockAssignmentRepo = new(MockAssignmentRepository)
	suite.mockWorkerRepo = new(MockWorkerRepository)
	suite.mockActivityRepo = new(MockActivityRepository)
	suite.mockWorkerRepo.FindWorkerByIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, id string) (*domain.Worker, error) {
		return &domain.Worker{WorkerID: id, Name: "Ana", Status: domain.WorkerActive}, nil
	}
	activity := services.NewActivityService(suite.mockActivityRepo)
	suite.service = services.NewAssignmentService(suite.uowMgr, suite.mockAssignmentRepo, suite.mockWorkerRepo, activity)
}

func (suite *AssignmentServiceTestSuite) TestCreateAssignment() {
	ctx := context.Background()

	assignment, err := suite.service.CreateAssignment(ctx, dto.CreateAssignmentRequest{
		WorkerID:       "w-1",
		PitakID:        "p-1",
		LuwangCount:    decimal.NewFromInt(4),
		AssignmentDate: "2026-08-20",
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.AssignmentActive, assignment.Status)
	suite.NotEmpty(assignment.AssignmentID)
	suite.True(suite.uowMgr.last.committed)
}

func (suite *AssignmentServiceTestSuite) TestCompleteAssignment_OverridesYield() {
	ctx := context.Background()
	suite.mockAssignmentRepo.FindAssignmentByIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, id string) (*domain.Assignment, error) {
		return &domain.Assignment{AssignmentID: id, WorkerID: "w-1", Status: domain.AssignmentActive, LuwangCount: decimal.NewFromInt(4)}, nil
	}

	final := decimal.NewFromInt(6)
	assignment, err := suite.service.CompleteAssignment(ctx, "a-1", dto.CompleteAssignmentRequest{LuwangCount: &final}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.AssignmentCompleted, assignment.Status)
	suite.True(assignment.LuwangCount.Equal(decimal.NewFromInt(6)))
	suite.True(suite.uowMgr.last.committed)

	suite.Require().Len(suite.mockActivityRepo.saved, 1)
	suite.Equal("assignment.complete", suite.mockActivityRepo.saved[0].Action)
}

func (suite *AssignmentServiceTestSuite) TestCompleteAssignment_OnlyActive() {
	ctx := context.Background()
	suite.mockAssignmentRepo.FindAssignmentByIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, id string) (*domain.Assignment, error) {
		return &domain.Assignment{AssignmentID: id, Status: domain.AssignmentCompleted}, nil
	}

	assignment, err := suite.service.CompleteAssignment(ctx, "a-1", dto.CompleteAssignmentRequest{}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(assignment)
	suite.False(suite.uowMgr.last.committed)
}

func (suite *AssignmentServiceTestSuite) TestCancelAssignment() {
	ctx := context.Background()
	suite.mockAssignmentRepo.FindAssignmentByIDFn = func(_ context.Context, _ portsrepo.UnitOfWork, id string) (*domain.Assignment, error) {
		return &domain.Assignment{AssignmentID: id, Status: domain.AssignmentActive}, nil
	}

	assignment, err := suite.service.CancelAssignment(ctx, "a-1", "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.AssignmentCancelled, assignment.Status)
}

func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}
