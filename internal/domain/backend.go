package domain

// TechnicianSummary is a live technician record returned by the booking
// backend. Consumed read-only by the response composer.
type TechnicianSummary struct {
	Name       string   `json:"name"`
	Phone      string   `json:"phone,omitempty"`
	Rating     float64  `json:"rating"`
	Skills     []string `json:"skills"`
	DistanceKm float64  `json:"distanceKm,omitempty"`
}

// PaymentInfo is the payment section of a booking record on the backend.
type PaymentInfo struct {
	Status string `json:"status"`
	Method string `json:"method"`
}

// Payment statuses the backend is known to report. Anything else gets
// the generic phrasing.
const (
	PaymentCompleted = "completed"
	PaymentPending   = "pending"
)
