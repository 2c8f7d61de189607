package responses

type PaymentIntent struct {
	ClientSecret string `json:"clientSecret"`
}

type ReconcilePayment struct {
	Paid          bool   `json:"paid"`
	TransactionID string `json:"transactionId"`
}
