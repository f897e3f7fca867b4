package models

// MoodEntry is one day of the mood tracker. At most one entry exists per
// date; saving an existing date replaces the stored entry.
type MoodEntry struct {
	Date    string `json:"date"`
	Mood    int    `json:"mood"`
	Energy  int    `json:"energy"`
	Anxiety int    `json:"anxiety"`
	Notes   string `json:"notes"`
}

func (entry MoodEntry) DateKey() string {
	return entry.Date
}

// NewMoodEntry returns the neutral starting entry for a date: mood, energy
// and anxiety all at the slider midpoint.
func NewMoodEntry(date string) MoodEntry {
	return MoodEntry{
		Date:    date,
		Mood:    5,
		Energy:  5,
		Anxiety: 5,
	}
}
