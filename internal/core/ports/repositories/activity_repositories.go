package repositories

import (
	"context"

	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
)

// ActivityRepositoryFacade defines persistence for the append-only activity
// log. There is intentionally no update or delete operation.
type ActivityRepositoryFacade interface {
	SaveEntry(ctx context.Context, uow UnitOfWork, entry domain.ActivityLogEntry) error
	ListEntries(ctx context.Context, limit int, nextToken *string, actorID *string) ([]domain.ActivityLogEntry, *string, error)
}
