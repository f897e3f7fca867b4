package models

const (
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

// DayMark annotates one calendar date. Flow is meaningful only while
// IsPeriod is true; setting a flow level forces IsPeriod on. Toggling the
// period off leaves a previously chosen flow stored, matching how the
// calendar always behaved.
type DayMark struct {
	IsPeriod    bool   `json:"isPeriod"`
	IsOvulation bool   `json:"isOvulation"`
	Flow        string `json:"flow,omitempty"`
}

func ValidFlowLevel(level string) bool {
	switch level {
	case FlowLight, FlowMedium, FlowHeavy:
		return true
	}
	return false
}
