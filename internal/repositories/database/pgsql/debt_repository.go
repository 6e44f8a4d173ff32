package pgsql

import (
	"context"
	"errors"

	"github.com/bukidworks/farm_ledger_app/internal/apperrors"
	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	portsrepo "github.com/bukidworks/farm_ledger_app/internal/core/ports/repositories"
	"github.com/bukidworks/farm_ledger_app/internal/models"
	"github.com/bukidworks/farm_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const debtColumns = `debt_id, worker_id, original_amount, amount, total_interest, interest_rate, total_paid, balance, status, date_incurred, due_date, reason, created_at, created_by, last_updated_at, last_updated_by`

type PgxDebtRepository struct {
	BaseRepository
}

func newPgxDebtRepository(pool *pgxpool.Pool) *PgxDebtRepository {
	return &PgxDebtRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DebtRepositoryFacade = (*PgxDebtRepository)(nil)

// SaveDebt inserts a new debt row.
func (r *PgxDebtRepository) SaveDebt(ctx context.Context, uow portsrepo.UnitOfWork, debt domain.Debt) error {
	m := mapping.ToModelDebt(debt)
	query := `
		INSERT INTO debts (` + debtColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.db(uow).Exec(ctx, query,
		m.DebtID,
		m.WorkerID,
		m.OriginalAmount,
		m.Amount,
		m.TotalInterest,
		m.InterestRate,
		m.TotalPaid,
		m.Balance,
		m.Status,
		m.DateIncurred,
		m.DueDate,
		m.Reason,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert debt "+m.DebtID, err)
	}
	return nil
}

// FindDebtByID retrieves a debt by its ID.
func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, uow portsrepo.UnitOfWork, debtID string) (*domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE debt_id = $1;`

	m, err := scanDebtRow(r.db(uow).QueryRow(ctx, query, debtID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find debt by ID "+debtID, err)
	}

	debt := mapping.ToDomainDebt(*m)
	return &debt, nil
}

// FindDebtsByWorkerID retrieves a worker's debts ordered oldest first, which
// is the order payment allocation walks them in.
func (r *PgxDebtRepository) FindDebtsByWorkerID(ctx context.Context, uow portsrepo.UnitOfWork, workerID string, activeOnly bool) ([]domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE worker_id = $1`
	if activeOnly {
		query += ` AND status IN ('pending', 'partially_paid')`
	}
	query += ` ORDER BY date_incurred ASC, created_at ASC;`

	rows, err := r.db(uow).Query(ctx, query, workerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query debts for worker "+workerID, err)
	}
	defer rows.Close()

	modelDebts := []models.Debt{}
	for rows.Next() {
		m, err := scanDebtRows(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan debt row", err)
		}
		modelDebts = append(modelDebts, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating debt rows", err)
	}

	return mapping.ToDomainDebtSlice(modelDebts), nil
}

// UpdateDebt persists the mutable columns of a debt row.
func (r *PgxDebtRepository) UpdateDebt(ctx context.Context, uow portsrepo.UnitOfWork, debt domain.Debt) error {
	m := mapping.ToModelDebt(debt)
	query := `
		UPDATE debts
		SET amount = $2,
		    total_interest = $3,
		    interest_rate = $4,
		    total_paid = $5,
		    balance = $6,
		    status = $7,
		    due_date = $8,
		    reason = $9,
		    last_updated_at = $10,
		    last_updated_by = $11
		WHERE debt_id = $1;
	`
	cmdTag, err := r.db(uow).Exec(ctx, query,
		m.DebtID,
		m.Amount,
		m.TotalInterest,
		m.InterestRate,
		m.TotalPaid,
		m.Balance,
		m.Status,
		m.DueDate,
		m.Reason,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update debt "+m.DebtID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("debt " + m.DebtID + " not found for update")
	}
	return nil
}

func scanDebtRow(row pgx.Row) (*models.Debt, error) {
	var m models.Debt
	err := row.Scan(
		&m.DebtID,
		&m.WorkerID,
		&m.OriginalAmount,
		&m.Amount,
		&m.TotalInterest,
		&m.InterestRate,
		&m.TotalPaid,
		&m.Balance,
		&m.Status,
		&m.DateIncurred,
		&m.DueDate,
		&m.Reason,
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

func scanDebtRows(rows pgx.Rows) (*models.Debt, error) {
	return scanDebtRow(rows)
}
