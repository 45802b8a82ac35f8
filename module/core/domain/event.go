package domain

type TransitionKind string

const (
	TransitionEntered TransitionKind = "zone_entry"
	TransitionLeft    TransitionKind = "zone_exit"
)

// Transition is a one-shot containment flip for a (tourist, zone) pair.
type Transition struct {
	TouristID string         `json:"tourist_id"`
	ZoneID    string         `json:"zone_id"`
	ZoneName  string         `json:"zone_name"`
	Kind      TransitionKind `json:"event"`
	Severity  Severity       `json:"severity"`
	Location  Location       `json:"location"`
	Timestamp int64          `json:"timestamp"`
}

type AlertReason string

const (
	AlertReasonZoneEntry AlertReason = "zone_entry"
	AlertReasonSOS       AlertReason = "sos"
)

// Alert escalates a tourist's situation to administrators. Zone fields
// are empty for SOS alerts.
type Alert struct {
	TouristID string      `json:"tourist_id"`
	Reason    AlertReason `json:"reason"`
	ZoneID    string      `json:"zone_id,omitempty"`
	ZoneName  string      `json:"zone_name,omitempty"`
	Severity  Severity    `json:"severity,omitempty"`
	Location  Location    `json:"location"`
	Timestamp int64       `json:"timestamp"`
}

// Evaluation is the result of checking one sample against a zone snapshot.
type Evaluation struct {
	Transitions []Transition
	Alert       *Alert
}
