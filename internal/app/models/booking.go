package models

// Booking references a Service by treatment name and a slot label out of
// that service's schedule. Slot labels are compared by exact string
// equality everywhere; no time-zone or format normalization is applied.
type Booking struct {
	ID            string  `json:"_id" bson:"_id,omitempty"`
	Treatment     string  `json:"treatment" bson:"treatment"`
	Date          string  `json:"date" bson:"date"`
	Slot          string  `json:"slot" bson:"slot"`
	Patient       string  `json:"patient" bson:"patient"`
	PatientName   string  `json:"patientName,omitempty" bson:"patientName,omitempty"`
	Price         float64 `json:"price,omitempty" bson:"price,omitempty"`
	Paid          bool    `json:"paid" bson:"paid"`
	TransactionID string  `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	TimeModel     `bson:",inline"`
}
