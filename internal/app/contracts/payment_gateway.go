package contracts

import "context"

// PaymentGatewayService fronts the external payment processor. The core
// only hands the resulting client secret back to the caller; completion
// arrives later through payment reconciliation.
type PaymentGatewayService interface {
	CreatePaymentIntent(ctx context.Context, amountInCents int64, currency string) (clientSecret string, err error)
}
