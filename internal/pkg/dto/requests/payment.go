package requests

type CreatePaymentIntent struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type ReconcilePayment struct {
	TransactionID string  `json:"transactionId" validate:"required"`
	Amount        float64 `json:"amount" validate:"omitempty,gte=0"`
	Patient       string  `json:"patient" validate:"omitempty,email"`
}
