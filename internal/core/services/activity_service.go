package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	portsrepo "github.com/bukidworks/farm_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/bukidworks/farm_ledger_app/internal/core/ports/services"
	"github.com/bukidworks/farm_ledger_app/internal/dto"
	"github.com/google/uuid"
)

type activityService struct {
	BaseService
	repo portsrepo.ActivityRepositoryFacade
}

// NewActivityService creates the append-only activity recorder.
func NewActivityService(repo portsrepo.ActivityRepositoryFacade) portssvc.ActivitySvcFacade {
	return &activityService{repo: repo}
}

// Record appends one audit entry inside the caller's unit of work, so the
// entry commits or rolls back together with the operation it describes.
func (s *activityService) Record(ctx context.Context, uow portsrepo.UnitOfWork, actorID, action, description string, details any) error {
	var detailsJSON *string
	if details != nil {
		encoded, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("failed to encode activity details: %w", err)
		}
		str := string(encoded)
		detailsJSON = &str
	}

	entry := domain.ActivityLogEntry{
		EntryID:     uuid.NewString(),
		ActorID:     actorID,
		Action:      action,
		Description: description,
		Details:     detailsJSON,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.SaveEntry(ctx, uow, entry); err != nil {
		return fmt.Errorf("failed to record activity entry: %w", err)
	}
	return nil
}

// ListActivities retrieves a page of audit entries, newest first.
func (s *activityService) ListActivities(ctx context.Context, params dto.ListActivitiesParams) (*dto.ListActivitiesResponse, error) {
	entries, nextToken, err := s.repo.ListEntries(ctx, params.Limit, params.NextToken, params.ActorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity entries: %w", err)
	}
	return &dto.ListActivitiesResponse{
		Entries:   entries,
		NextToken: nextToken,
	}, nil
}
