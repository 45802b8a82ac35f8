package domain

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Zone is a named circular danger area. The zone covers the closed disk
// of RadiusMeters around (Lat, Lon). Inactive zones are kept for audit
// but excluded from evaluation.
type Zone struct {
	ID           string   `json:"zone_id"`
	Name         string   `json:"name"`
	Lat          float64  `json:"latitude"`
	Lon          float64  `json:"longitude"`
	RadiusMeters float64  `json:"radius_meters"`
	Severity     Severity `json:"severity"`
	Active       bool     `json:"active"`
}
