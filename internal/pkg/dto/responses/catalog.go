package responses

// ServiceSummary is the catalog projection exposed on GET /services.
type ServiceSummary struct {
	ID    string   `json:"_id"`
	Name  string   `json:"name"`
	Slots []string `json:"slots"`
	Price float64  `json:"price"`
}

// ServiceAvailability carries the per-date remaining slots for one service,
// in the catalog's original slot order.
type ServiceAvailability struct {
	ID    string   `json:"_id"`
	Name  string   `json:"name"`
	Slots []string `json:"slots"`
	Price float64  `json:"price"`
}
