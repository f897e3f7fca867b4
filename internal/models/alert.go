package models

const AlertTypePanicButton = "panic_button"

// AlertLocation is the coordinate pair captured when an alert fires. It is
// absent when geolocation failed or was never requested.
type AlertLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AlertEvent is one entry of the emergency-alert history.
type AlertEvent struct {
	ID        string         `json:"id"`
	Timestamp string         `json:"timestamp"`
	Location  *AlertLocation `json:"location,omitempty"`
	Type      string         `json:"type"`
}

func (event AlertEvent) RecordID() string {
	return event.ID
}
