package services

import (
	"context"

	portsrepo "github.com/bukidworks/farm_ledger_app/internal/core/ports/repositories"
	"github.com/bukidworks/farm_ledger_app/internal/dto"
)

// ActivitySvcFacade appends and lists immutable audit entries.
type ActivitySvcFacade interface {
	// Record appends one entry describing a completed operation. It writes
	// through the caller's UnitOfWork so the entry commits or rolls back with
	// the operation it describes.
	Record(ctx context.Context, uow portsrepo.UnitOfWork, actorID, action, description string, details any) error
	ListActivities(ctx context.Context, params dto.ListActivitiesParams) (*dto.ListActivitiesResponse, error)
}
