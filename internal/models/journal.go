package models

// JournalEntry has independent identity: several entries may share a date,
// and the ID never changes after creation.
type JournalEntry struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Mood    string `json:"mood"`
}

func (entry JournalEntry) RecordID() string {
	return entry.ID
}

const DefaultJournalMood = "😊"

func JournalMoodOptions() []string {
	return []string{"😊", "🙂", "😐", "😔", "😢", "😍", "😤", "😴"}
}
