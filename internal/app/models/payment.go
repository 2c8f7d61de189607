package models

// Payment is an append-only audit record, one per successful external
// payment. It is upserted by transactionId so a retried reconciliation
// cannot leave two divergent records for the same transaction.
type Payment struct {
	ID            string  `json:"_id" bson:"_id,omitempty"`
	TransactionID string  `json:"transactionId" bson:"transactionId"`
	Amount        float64 `json:"amount" bson:"amount"`
	BookingID     string  `json:"bookingId" bson:"bookingId"`
	Patient       string  `json:"patient,omitempty" bson:"patient,omitempty"`
	TimeModel     `bson:",inline"`
}
