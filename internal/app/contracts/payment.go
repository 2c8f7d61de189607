package contracts

import (
	"context"
	"docportal-service/internal/app/models"
	"docportal-service/internal/pkg/dto/requests"
	"docportal-service/internal/pkg/dto/responses"
)

type PaymentRepository interface {
	// UpsertByTransactionID appends the audit record on first sight of a
	// transaction id and leaves it stable on replays.
	UpsertByTransactionID(ctx context.Context, payment *models.Payment) error
}

type PaymentUsecase interface {
	CreatePaymentIntent(ctx context.Context, claimedEmail string, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error)
	ReconcilePayment(ctx context.Context, bookingID string, request *requests.ReconcilePayment) (*responses.ReconcilePayment, error)
}
