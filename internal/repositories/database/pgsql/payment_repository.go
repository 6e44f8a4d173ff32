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

const paymentColumns = `payment_id, worker_id, gross_pay, net_pay, total_debt_deduction, other_deductions, payment_date, status, payment_method, created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) *PgxPaymentRepository {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// SavePayment inserts a new payment row.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, uow portsrepo.UnitOfWork, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db(uow).Exec(ctx, query,
		m.PaymentID,
		m.WorkerID,
		m.GrossPay,
		m.NetPay,
		m.TotalDebtDeduction,
		m.OtherDeductions,
		m.PaymentDate,
		m.Status,
		m.PaymentMethod,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}
	return nil
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, uow portsrepo.UnitOfWork, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`

	m, err := scanPaymentRow(r.db(uow).QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment by ID "+paymentID, err)
	}

	payment := mapping.ToDomainPayment(*m)
	return &payment, nil
}

// FindPaymentsByWorkerID retrieves all payments for a worker, newest first.
func (r *PgxPaymentRepository) FindPaymentsByWorkerID(ctx context.Context, uow portsrepo.UnitOfWork, workerID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE worker_id = $1 ORDER BY payment_date DESC, created_at DESC;`

	rows, err := r.db(uow).Query(ctx, query, workerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments for worker "+workerID, err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

// FindPaymentsByWorkerInRange retrieves a worker's payments with
// payment_date in [start, end).
func (r *PgxPaymentRepository) FindPaymentsByWorkerInRange(ctx context.Context, workerID string, start, end time.Time) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE worker_id = $1 AND payment_date >= $2 AND payment_date < $3 ORDER BY payment_date ASC;`

	rows, err := r.Pool.Query(ctx, query, workerID, start, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments in range for worker "+workerID, err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

func collectPayments(rows pgx.Rows) ([]domain.Payment, error) {
	modelPayments := []models.Payment{}
	for rows.Next() {
		m, err := scanPaymentRows(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		modelPayments = append(modelPayments, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return mapping.ToDomainPaymentSlice(modelPayments), nil
}

func scanPaymentRow(row pgx.Row) (*models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.WorkerID,
		&m.GrossPay,
		&m.NetPay,
		&m.TotalDebtDeduction,
		&m.OtherDeductions,
		&m.PaymentDate,
		&m.Status,
		&m.PaymentMethod,
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

func scanPaymentRows(rows pgx.Rows) (*models.Payment, error) {
	return scanPaymentRow(rows)
}
