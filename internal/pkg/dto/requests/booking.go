package requests

type CreateBooking struct {
	Treatment string `json:"treatment" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Slot      string `json:"slot" validate:"required"`
	Patient   string `json:"patient" validate:"required,email"`
	// PatientName travels with the booking document for display purposes,
	// the identity key stays Patient.
	PatientName string  `json:"patientName" validate:"omitempty,max=100"`
	Price       float64 `json:"price" validate:"omitempty,gte=0"`
}
