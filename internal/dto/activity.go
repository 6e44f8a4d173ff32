package dto

import (
	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
)

// ListActivitiesParams defines query parameters for the activity log.
type ListActivitiesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
	ActorID   *string `form:"actorId"`
}

// ListActivitiesResponse wraps a page of activity log entries.
type ListActivitiesResponse struct {
	Entries   []domain.ActivityLogEntry `json:"entries"`
	NextToken *string                   `json:"nextToken,omitempty"`
}
