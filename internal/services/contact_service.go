package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/haven/internal/models"
	"github.com/terraincognita07/haven/internal/records"
	"github.com/terraincognita07/haven/internal/security"
	"github.com/terraincognita07/haven/internal/storage"
)

const emergencyContactsKey = "emergencyContacts"

// ContactService manages the emergency contact list. The alert flow reads
// the same collection; nothing else shares storage across features.
type ContactService struct {
	contacts *records.List[models.Contact]
}

func NewContactService(store storage.Store) *ContactService {
	return &ContactService{contacts: records.NewList[models.Contact](store, emergencyContactsKey)}
}

func (service *ContactService) Add(name, phone, relationship, email string, now time.Time) (models.Contact, error) {
	if err := validateContact(name, phone); err != nil {
		return models.Contact{}, err
	}

	contact := models.Contact{
		ID:           security.NewRecordID(now),
		Name:         strings.TrimSpace(name),
		Phone:        strings.TrimSpace(phone),
		Relationship: strings.TrimSpace(relationship),
		Email:        strings.TrimSpace(email),
	}
	if err := service.contacts.Append(contact); err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}

// Update edits the contact with the given ID in place. The ID is stable
// across edits; an unknown ID changes nothing.
func (service *ContactService) Update(contact models.Contact) error {
	if err := validateContact(contact.Name, contact.Phone); err != nil {
		return err
	}

	contacts := service.contacts.Records()
	for index, existing := range contacts {
		if existing.ID == contact.ID {
			contacts[index] = contact
			return service.contacts.ReplaceAll(contacts)
		}
	}
	return nil
}

func (service *ContactService) Delete(id string) error {
	return service.contacts.DeleteByID(id)
}

func (service *ContactService) List() []models.Contact {
	return service.contacts.Records()
}

func validateContact(name, phone string) error {
	if strings.TrimSpace(name) == "" {
		return invalidf("contact name is required")
	}
	if strings.TrimSpace(phone) == "" {
		return invalidf("contact phone is required")
	}
	return nil
}
