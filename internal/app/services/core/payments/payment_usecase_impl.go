package payments

import (
	"context"
	"docportal-service/internal/app/config"
	"docportal-service/internal/app/contracts"
	"docportal-service/internal/app/models"
	"docportal-service/internal/pkg/dto/requests"
	"docportal-service/internal/pkg/dto/responses"
	"math"
)

type paymentUsecase struct {
	PaymentRepository contracts.PaymentRepository
	BookingRepository contracts.BookingRepository
	PaymentGateway    contracts.PaymentGatewayService
	InternalConfig    *config.InternalConfig
}

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	bookingRepository contracts.BookingRepository,
	paymentGateway contracts.PaymentGatewayService,
	internalConfig *config.InternalConfig,
) contracts.PaymentUsecase {
	return &paymentUsecase{
		PaymentRepository: paymentRepository,
		BookingRepository: bookingRepository,
		PaymentGateway:    paymentGateway,
		InternalConfig:    internalConfig,
	}
}

func (uc *paymentUsecase) CreatePaymentIntent(ctx context.Context, claimedEmail string, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error) {
	amountInCents := int64(math.Round(request.Price * 100))

	clientSecret, err := uc.PaymentGateway.CreatePaymentIntent(ctx, amountInCents, uc.InternalConfig.PaymentGateway.Currency)
	if err != nil {
		return nil, err
	}

	return &responses.PaymentIntent{ClientSecret: clientSecret}, nil
}

// ReconcilePayment links a completed external payment to its booking:
// append the audit record, then flip the booking to paid. Both writes are
// set-style, so reconciling the same booking twice cannot corrupt state.
func (uc *paymentUsecase) ReconcilePayment(ctx context.Context, bookingID string, request *requests.ReconcilePayment) (*responses.ReconcilePayment, error) {
	payment := &models.Payment{
		TransactionID: request.TransactionID,
		Amount:        request.Amount,
		BookingID:     bookingID,
		Patient:       request.Patient,
	}
	if err := uc.PaymentRepository.UpsertByTransactionID(ctx, payment); err != nil {
		return nil, err
	}

	if err := uc.BookingRepository.MarkPaid(ctx, bookingID, request.TransactionID); err != nil {
		return nil, err
	}

	return &responses.ReconcilePayment{
		Paid:          true,
		TransactionID: request.TransactionID,
	}, nil
}
