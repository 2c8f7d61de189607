package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Catalog messages
	GetServicesSuccessMessage     = "get services successfully"
	GetAvailabilitySuccessMessage = "get available slots successfully"

	// User messages
	GetUsersSuccessMessage   = "get users successfully"
	UpsertUserSuccessMessage = "user saved successfully"
	PromoteAdminSuccess      = "user promoted to admin successfully"
	CheckAdminSuccessMessage = "check admin successfully"

	// Booking messages
	GetBookingSuccessMessage    = "get booking successfully"
	GetBookingsSuccessMessage   = "get bookings successfully"
	CreateBookingSuccessMessage = "booking created successfully"

	// Doctor messages
	GetDoctorsSuccessMessage   = "get doctors successfully"
	CreateDoctorSuccessMessage = "doctor created successfully"
	DeleteDoctorSuccessMessage = "doctor deleted successfully"

	// Payment messages
	CreatePaymentIntentSuccessMessage = "payment intent created successfully"
	ReconcilePaymentSuccessMessage    = "payment recorded successfully"
)
