package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/bukidworks/farm_ledger_app/internal/apperrors"
	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	portsrepo "github.com/bukidworks/farm_ledger_app/internal/core/ports/repositories"
	"github.com/bukidworks/farm_ledger_app/internal/models"
	"github.com/bukidworks/farm_ledger_app/internal/utils/mapping"
	"github.com/bukidworks/farm_ledger_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const workerColumns = `worker_id, name, contact, email, address, status, hire_date, created_at, created_by, last_updated_at, last_updated_by`

type PgxWorkerRepository struct {
	BaseRepository
}

func newPgxWorkerRepository(pool *pgxpool.Pool) *PgxWorkerRepository {
	return &PgxWorkerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxWorkerRepository implements portsrepo.WorkerRepositoryFacade
var _ portsrepo.WorkerRepositoryFacade = (*PgxWorkerRepository)(nil)

// SaveWorker inserts a new worker row.
//
// Email uniqueness is enforced by check-then-insert in the batch layer, not
// by a unique index; two concurrent batches can both pass the existence
// check before either commits. That race is a documented property of the
// design, not something this repository papers over.
func (r *PgxWorkerRepository) SaveWorker(ctx context.Context, uow portsrepo.UnitOfWork, worker domain.Worker) error {
	m := mapping.ToModelWorker(worker)
	query := `
		INSERT INTO workers (` + workerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db(uow).Exec(ctx, query,
		m.WorkerID,
		m.Name,
		m.Contact,
		m.Email,
		m.Address,
		m.Status,
		m.HireDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert worker "+m.WorkerID, err)
	}
	return nil
}

// FindWorkerByID retrieves a worker by its ID.
func (r *PgxWorkerRepository) FindWorkerByID(ctx context.Context, uow portsrepo.UnitOfWork, workerID string) (*domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE worker_id = $1;`

	m, err := scanWorkerRow(r.db(uow).QueryRow(ctx, query, workerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find worker by ID "+workerID, err)
	}

	worker := mapping.ToDomainWorker(*m)
	return &worker, nil
}

// FindWorkersByEmails resolves all given emails in one IN-clause query and
// returns the matches keyed by email.
func (r *PgxWorkerRepository) FindWorkersByEmails(ctx context.Context, uow portsrepo.UnitOfWork, emails []string) (map[string]domain.Worker, error) {
	if len(emails) == 0 {
		return map[string]domain.Worker{}, nil
	}

	query := `SELECT ` + workerColumns + ` FROM workers WHERE email = ANY($1);`
	rows, err := r.db(uow).Query(ctx, query, emails)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workers by emails", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Worker)
	for rows.Next() {
		m, err := scanWorkerRows(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan worker row during email lookup", err)
		}
		worker := mapping.ToDomainWorker(*m)
		if worker.Email != nil {
			result[*worker.Email] = worker
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating worker rows during email lookup", err)
	}

	return result, nil
}

// FindWorkerByEmail retrieves a worker by email.
func (r *PgxWorkerRepository) FindWorkerByEmail(ctx context.Context, uow portsrepo.UnitOfWork, email string) (*domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE email = $1;`

	m, err := scanWorkerRow(r.db(uow).QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find worker by email", err)
	}

	worker := mapping.ToDomainWorker(*m)
	return &worker, nil
}

// UpdateWorker persists the mutable columns of a worker row.
func (r *PgxWorkerRepository) UpdateWorker(ctx context.Context, uow portsrepo.UnitOfWork, worker domain.Worker) error {
	m := mapping.ToModelWorker(worker)
	query := `
		UPDATE workers
		SET name = $2,
		    contact = $3,
		    email = $4,
		    address = $5,
		    status = $6,
		    hire_date = $7,
		    last_updated_at = $8,
		    last_updated_by = $9
		WHERE worker_id = $1;
	`
	cmdTag, err := r.db(uow).Exec(ctx, query,
		m.WorkerID,
		m.Name,
		m.Contact,
		m.Email,
		m.Address,
		m.Status,
		m.HireDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update worker "+m.WorkerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("worker " + m.WorkerID + " not found for update")
	}
	return nil
}

// ListWorkers retrieves a keyset-paginated list of workers ordered by hire
// date descending with created_at as tie-breaker.
func (r *PgxWorkerRepository) ListWorkers(ctx context.Context, limit int, nextToken *string, status *domain.WorkerStatus) ([]domain.Worker, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to learn whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + workerColumns + ` FROM workers`
	filterClause := ` WHERE 1=1`
	args := []any{}
	if status != nil {
		args = append(args, string(*status))
		filterClause += ` AND status = $` + strconv.Itoa(len(args))
	}
	orderByClause := ` ORDER BY hire_date DESC, created_at DESC`

	if nextToken != nil && *nextToken != "" {
		lastHireDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastHireDate, lastCreatedAt)
		filterClause += ` AND (hire_date, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + filterClause + orderByClause + ` LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query workers", err)
	}
	defer rows.Close()

	modelWorkers := make([]models.Worker, 0, fetchLimit)
	for rows.Next() {
		m, err := scanWorkerRows(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan worker row", err)
		}
		modelWorkers = append(modelWorkers, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating worker rows", err)
	}

	var nextTokenVal *string
	results := modelWorkers
	if len(modelWorkers) > limit {
		last := modelWorkers[limit-1]
		token := pagination.EncodeToken(last.HireDate, last.CreatedAt)
		nextTokenVal = &token
		results = modelWorkers[:limit]
	}

	return mapping.ToDomainWorkerSlice(results), nextTokenVal, nil
}

// ListWorkersForExport retrieves workers matching the export filter, ordered
// by name for a stable file layout.
func (r *PgxWorkerRepository) ListWorkersForExport(ctx context.Context, filter portsrepo.WorkerExportFilter) ([]domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE 1=1`
	args := []any{}

	if len(filter.WorkerIDs) > 0 {
		args = append(args, filter.WorkerIDs)
		query += ` AND worker_id = ANY($` + strconv.Itoa(len(args)) + `)`
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.HiredFrom != nil {
		args = append(args, *filter.HiredFrom)
		query += ` AND hire_date >= $` + strconv.Itoa(len(args))
	}
	if filter.HiredTo != nil {
		args = append(args, *filter.HiredTo)
		query += ` AND hire_date <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY name ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workers for export", err)
	}
	defer rows.Close()

	modelWorkers := []models.Worker{}
	for rows.Next() {
		m, err := scanWorkerRows(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan worker row for export", err)
		}
		modelWorkers = append(modelWorkers, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating worker rows for export", err)
	}

	return mapping.ToDomainWorkerSlice(modelWorkers), nil
}

func scanWorkerRow(row pgx.Row) (*models.Worker, error) {
	var m models.Worker
	err := row.Scan(
		&m.WorkerID,
		&m.Name,
		&m.Contact,
		&m.Email,
		&m.Address,
		&m.Status,
		&m.HireDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanWorkerRows(rows pgx.Rows) (*models.Worker, error) {
	return scanWorkerRow(rows)
}
