package domain

type Status string

const (
	StatusSafe   Status = "safe"
	StatusAlert  Status = "alert"
	StatusDanger Status = "danger"
)

// Elevated reports whether the status is beyond the safe baseline.
// Elevated tourists do not receive further geofence alerts.
func (s Status) Elevated() bool {
	return s == StatusAlert || s == StatusDanger
}

func (s Status) Valid() bool {
	return s == StatusSafe || s == StatusAlert || s == StatusDanger
}

type Tourist struct {
	TouristID string `json:"tourist_id"`
	Status    Status `json:"status"`
}
