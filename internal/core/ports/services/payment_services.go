package services

import (
	"context"

	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	"github.com/bukidworks/farm_ledger_app/internal/dto"
)

// PaymentSvcFacade defines payment operations.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error)
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListPaymentsByWorker(ctx context.Context, workerID string) ([]domain.Payment, error)
}
