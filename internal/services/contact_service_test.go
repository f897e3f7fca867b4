package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/haven/internal/models"
	"github.com/terraincognita07/haven/internal/storage"
)

func TestContactServiceAdd(t *testing.T) {
	service := NewContactService(storage.NewMemory())
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	if _, err := service.Add("", "555-0100", "", "", now); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for missing name, got %v", err)
	}
	if _, err := service.Add("Alex", "  ", "", "", now); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for missing phone, got %v", err)
	}

	contact, err := service.Add("  Alex  ", "555-0100", "sibling", "alex@example.com", now)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if contact.ID == "" {
		t.Fatalf("expected an assigned id")
	}
	if contact.Name != "Alex" {
		t.Fatalf("expected trimmed name, got %q", contact.Name)
	}

	contacts := service.List()
	if len(contacts) != 1 || contacts[0].ID != contact.ID {
		t.Fatalf("expected one stored contact, got %#v", contacts)
	}
}

func TestContactServiceUpdate(t *testing.T) {
	service := NewContactService(storage.NewMemory())
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	contact, err := service.Add("Alex", "555-0100", "sibling", "", now)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	edited := contact
	edited.Phone = "555-0199"
	if err := service.Update(edited); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got := service.List()[0]; got.ID != contact.ID || got.Phone != "555-0199" {
		t.Fatalf("expected in-place edit with a stable id, got %#v", got)
	}

	// Unknown IDs change nothing.
	if err := service.Update(models.Contact{ID: "missing", Name: "Nobody", Phone: "555-0000"}); err != nil {
		t.Fatalf("update of unknown id should be a no-op, got %v", err)
	}
	if contacts := service.List(); len(contacts) != 1 || contacts[0].Phone != "555-0199" {
		t.Fatalf("contact list changed unexpectedly: %#v", contacts)
	}
}

func TestContactServiceDelete(t *testing.T) {
	service := NewContactService(storage.NewMemory())
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	contact, err := service.Add("Alex", "555-0100", "", "", now)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := service.Delete(contact.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if contacts := service.List(); len(contacts) != 0 {
		t.Fatalf("expected empty list, got %#v", contacts)
	}
	if err := service.Delete(contact.ID); err != nil {
		t.Fatalf("deleting an absent contact should be a no-op, got %v", err)
	}
}
