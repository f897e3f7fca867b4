package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/haven/internal/models"
	"github.com/terraincognita07/haven/internal/pin"
	"github.com/terraincognita07/haven/internal/records"
	"github.com/terraincognita07/haven/internal/security"
	"github.com/terraincognita07/haven/internal/storage"
)

const (
	journalEntriesKey = "journalEntries"
	journalPinKey     = "journalPin"
)

// ErrJournalLocked guards every read and write until the gate is unlocked.
var ErrJournalLocked = errors.New("journal is locked")

type JournalService struct {
	entries *records.List[models.JournalEntry]
	gate    *pin.Gate
}

func NewJournalService(store storage.Store, codec pin.Codec) *JournalService {
	return &JournalService{
		entries: records.NewList[models.JournalEntry](store, journalEntriesKey),
		gate:    pin.NewGate(store, journalPinKey, codec),
	}
}

func (service *JournalService) GateState() pin.State {
	return service.gate.State()
}

// Unlock enrolls the PIN on first use and attempts it afterwards.
func (service *JournalService) Unlock(pinCode string) (bool, error) {
	if service.gate.State() == pin.StateUnset {
		if err := service.gate.Enroll(pinCode); err != nil {
			return false, err
		}
		return true, nil
	}
	return service.gate.Attempt(pinCode), nil
}

func (service *JournalService) Lock() {
	service.gate.Lock()
}

// Add creates a new entry at the front of the journal, newest first.
func (service *JournalService) Add(title, content, date, mood string, now time.Time) (models.JournalEntry, error) {
	if service.gate.State() != pin.StateUnlocked {
		return models.JournalEntry{}, ErrJournalLocked
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return models.JournalEntry{}, invalidf("title and content are required")
	}
	if date == "" {
		date = Today(now)
	}
	if err := validateDate(date); err != nil {
		return models.JournalEntry{}, err
	}
	if mood == "" {
		mood = models.DefaultJournalMood
	}

	entry := models.JournalEntry{
		ID:      security.NewRecordID(now),
		Title:   title,
		Content: content,
		Date:    date,
		Mood:    mood,
	}
	if err := service.entries.Prepend(entry); err != nil {
		return models.JournalEntry{}, err
	}
	return entry, nil
}

// Update commits an edit to an existing entry. The ID stays as assigned;
// an unknown ID leaves the journal unchanged.
func (service *JournalService) Update(entry models.JournalEntry) error {
	if service.gate.State() != pin.StateUnlocked {
		return ErrJournalLocked
	}
	if strings.TrimSpace(entry.Title) == "" || strings.TrimSpace(entry.Content) == "" {
		return invalidf("title and content are required")
	}

	entries := service.entries.Records()
	for index, existing := range entries {
		if existing.ID == entry.ID {
			entries[index] = entry
			return service.entries.ReplaceAll(entries)
		}
	}
	return nil
}

func (service *JournalService) Delete(id string) error {
	if service.gate.State() != pin.StateUnlocked {
		return ErrJournalLocked
	}
	return service.entries.DeleteByID(id)
}

func (service *JournalService) List() ([]models.JournalEntry, error) {
	if service.gate.State() != pin.StateUnlocked {
		return nil, ErrJournalLocked
	}
	return service.entries.Records(), nil
}
