package models

// Service is an immutable catalog entry. Slots is the full theoretical
// schedule for the treatment, independent of any date; availability per
// date is always derived, never stored.
type Service struct {
	ID    string   `json:"_id" bson:"_id,omitempty"`
	Name  string   `json:"name" bson:"name"`
	Slots []string `json:"slots" bson:"slots"`
	Price float64  `json:"price" bson:"price"`
}
