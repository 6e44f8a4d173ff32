package pgsql

import (
	"context"
	"strconv"

	"github.com/bukidworks/farm_ledger_app/internal/apperrors"
	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	portsrepo "github.com/bukidworks/farm_ledger_app/internal/core/ports/repositories"
	"github.com/bukidworks/farm_ledger_app/internal/models"
	"github.com/bukidworks/farm_ledger_app/internal/utils/mapping"
	"github.com/bukidworks/farm_ledger_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

const activityColumns = `entry_id, actor_id, action, description, details, created_at`

// PgxActivityRepository persists the append-only activity log. Entries are
// only ever inserted; nothing here updates or deletes a row.
type PgxActivityRepository struct {
	BaseRepository
}

func newPgxActivityRepository(pool *pgxpool.Pool) *PgxActivityRepository {
	return &PgxActivityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ActivityRepositoryFacade = (*PgxActivityRepository)(nil)

// SaveEntry appends an entry to the activity log.
func (r *PgxActivityRepository) SaveEntry(ctx context.Context, uow portsrepo.UnitOfWork, entry domain.ActivityLogEntry) error {
	m := mapping.ToModelActivityLogEntry(entry)
	query := `
		INSERT INTO activity_log (` + activityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db(uow).Exec(ctx, query,
		m.EntryID,
		m.ActorID,
		m.Action,
		m.Description,
		m.Details,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert activity log entry "+m.EntryID, err)
	}
	return nil
}

// ListEntries retrieves a keyset-paginated page of activity entries, newest
// first, optionally filtered by actor.
func (r *PgxActivityRepository) ListEntries(ctx context.Context, limit int, nextToken *string, actorID *string) ([]domain.ActivityLogEntry, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	fetchLimit := limit + 1

	query := `SELECT ` + activityColumns + ` FROM activity_log WHERE 1=1`
	args := []any{}

	if actorID != nil && *actorID != "" {
		args = append(args, *actorID)
		query += ` AND actor_id = $` + strconv.Itoa(len(args))
	}
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, decodeErr := pagination.DecodeDateBasedToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastCreatedAt)
		query += ` AND created_at < $` + strconv.Itoa(len(args))
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query activity log", err)
	}
	defer rows.Close()

	modelEntries := make([]models.ActivityLogEntry, 0, fetchLimit)
	for rows.Next() {
		var m models.ActivityLogEntry
		if err := rows.Scan(&m.EntryID, &m.ActorID, &m.Action, &m.Description, &m.Details, &m.CreatedAt); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan activity log row", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating activity log rows", err)
	}

	var nextTokenVal *string
	results := modelEntries
	if len(modelEntries) > limit {
		last := modelEntries[limit-1]
		token := pagination.EncodeDateBasedToken(last.CreatedAt)
		nextTokenVal = &token
		results = modelEntries[:limit]
	}

	return mapping.ToDomainActivityLogEntrySlice(results), nextTokenVal, nil
}
