package models

// SymptomEntry is one day of the symptom logger, keyed by date like
// MoodEntry.
type SymptomEntry struct {
	Date     string   `json:"date"`
	Mood     string   `json:"mood"`
	Flow     string   `json:"flow"`
	Cramps   int      `json:"cramps"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

func (entry SymptomEntry) DateKey() string {
	return entry.Date
}

func MoodOptions() []string {
	return []string{"😊 Great", "🙂 Good", "😐 Okay", "😔 Low", "😢 Difficult"}
}

func FlowOptions() []string {
	return []string{"None", "Spotting", "Light", "Medium", "Heavy"}
}

func SymptomOptions() []string {
	return []string{"Headache", "Bloating", "Tender Breasts", "Fatigue", "Mood Swings", "Back Pain", "Acne"}
}
