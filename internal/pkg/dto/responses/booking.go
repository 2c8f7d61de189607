package responses

import "docportal-service/internal/app/models"

// CreateBooking mirrors the ledger contract: a duplicate
// (treatment,date,patient) triple is not an error, the existing record
// rides back with success=false.
type CreateBooking struct {
	Success    bool            `json:"success"`
	Booking    *models.Booking `json:"booking,omitempty"`
	InsertedID string          `json:"insertedId,omitempty"`
}
