package constvars

const (
	MongoCollectionServices = "services"
	MongoCollectionBookings = "bookings"
	MongoCollectionUsers    = "users"
	MongoCollectionDoctors  = "doctors"
	MongoCollectionPayments = "payments"
)
