package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/bukidworks/farm_ledger_app/internal/apperrors"
	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	portsrepo "github.com/bukidworks/farm_ledger_app/internal/core/ports/repositories"
	"github.com/bukidworks/farm_ledger_app/internal/models"
	"github.com/bukidworks/farm_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const assignmentColumns = `assignment_id, worker_id, pitak_id, luwang_count, status, assignment_date, created_at, created_by, last_updated_at, last_updated_by`

type PgxAssignmentRepository struct {
	BaseRepository
}

func newPgxAssignmentRepository(pool *pgxpool.Pool) *PgxAssignmentRepository {
	return &PgxAssignmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AssignmentRepositoryFacade = (*PgxAssignmentRepository)(nil)

// SaveAssignment inserts a new assignment row.
func (r *PgxAssignmentRepository) SaveAssignment(ctx context.Context, uow portsrepo.UnitOfWork, assignment domain.Assignment) error {
	m := mapping.ToModelAssignment(assignment)
	query := `
		INSERT INTO assignments (` + assignmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db(uow).Exec(ctx, query,
		m.AssignmentID,
		m.WorkerID,
		m.PitakID,
		m.LuwangCount,
		m.Status,
		m.AssignmentDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert assignment "+m.AssignmentID, err)
	}
	return nil
}

// FindAssignmentByID retrieves an assignment by its ID.
func (r *PgxAssignmentRepository) FindAssignmentByID(ctx context.Context, uow portsrepo.UnitOfWork, assignmentID string) (*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE assignment_id = $1;`

	m, err := scanAssignmentRow(r.db(uow).QueryRow(ctx, query, assignmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find assignment by ID "+assignmentID, err)
	}

	assignment := mapping.ToDomainAssignment(*m)
	return &assignment, nil
}

// UpdateAssignment persists the mutable columns of an assignment row.
func (r *PgxAssignmentRepository) UpdateAssignment(ctx context.Context, uow portsrepo.UnitOfWork, assignment domain.Assignment) error {
	m := mapping.ToModelAssignment(assignment)
	query := `
		UPDATE assignments
		SET pitak_id = $2,
		    luwang_count = $3,
		    status = $4,
		    assignment_date = $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE assignment_id = $1;
	`
	cmdTag, err := r.db(uow).Exec(ctx, query,
		m.AssignmentID,
		m.PitakID,
		m.LuwangCount,
		m.Status,
		m.AssignmentDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update assignment "+m.AssignmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("assignment " + m.AssignmentID + " not found for update")
	}
	return nil
}

// FindAssignmentsByWorkerID retrieves all assignments for a worker, newest
// first.
func (r *PgxAssignmentRepository) FindAssignmentsByWorkerID(ctx context.Context, workerID string) ([]domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE worker_id = $1 ORDER BY assignment_date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, workerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query assignments for worker "+workerID, err)
	}
	defer rows.Close()

	return collectAssignments(rows)
}

// FindAssignmentsByWorkerInRange retrieves a worker's assignments with
// assignment_date in [start, end).
func (r *PgxAssignmentRepository) FindAssignmentsByWorkerInRange(ctx context.Context, workerID string, start, end time.Time) ([]domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE worker_id = $1 AND assignment_date >= $2 AND assignment_date < $3 ORDER BY assignment_date ASC;`

	rows, err := r.Pool.Query(ctx, query, workerID, start, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query assignments in range for worker "+workerID, err)
	}
	defer rows.Close()

	return collectAssignments(rows)
}

func collectAssignments(rows pgx.Rows) ([]domain.Assignment, error) {
	modelAssignments := []models.Assignment{}
	for rows.Next() {
		m, err := scanAssignmentRows(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan assignment row", err)
		}
		modelAssignments = append(modelAssignments, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating assignment rows", err)
	}
	return mapping.ToDomainAssignmentSlice(modelAssignments), nil
}

func scanAssignmentRow(row pgx.Row) (*models.Assignment, error) {
	var m models.Assignment
	err := row.Scan(
		&m.AssignmentID,
		&m.WorkerID,
		&m.PitakID,
		&m.LuwangCount,
		&m.Status,
		&m.AssignmentDate,
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

func scanAssignmentRows(rows pgx.Rows) (*models.Assignment, error) {
	return scanAssignmentRow(rows)
}
