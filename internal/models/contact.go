package models

// Contact is an emergency contact. Name and phone are mandatory; the ID is
// stable across edits.
type Contact struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
	Email        string `json:"email,omitempty"`
}

func (contact Contact) RecordID() string {
	return contact.ID
}
