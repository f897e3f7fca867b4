package services

import (
	"context"
	"fmt"
	"time"

	"github.com/terraincognita07/haven/internal/geo"
	"github.com/terraincognita07/haven/internal/models"
	"github.com/terraincognita07/haven/internal/records"
	"github.com/terraincognita07/haven/internal/security"
	"github.com/terraincognita07/haven/internal/storage"
)

const emergencyHistoryKey = "emergencyHistory"

// AlertContactReader is the read-only view the alert flow has of the
// contact list.
type AlertContactReader interface {
	List() []models.Contact
}

// AlertService fires the panic-button flow: resolve a best-effort location,
// build the emergency message, record the event. Delivery to contacts is an
// external concern; the service only prepares the message and recipients.
type AlertService struct {
	history  *records.List[models.AlertEvent]
	contacts AlertContactReader
	locator  geo.Locator
}

func NewAlertService(store storage.Store, contacts AlertContactReader, locator geo.Locator) *AlertService {
	return &AlertService{
		history:  records.NewList[models.AlertEvent](store, emergencyHistoryKey),
		contacts: contacts,
		locator:  locator,
	}
}

type Alert struct {
	Message    string
	Recipients []models.Contact
	Event      models.AlertEvent
	// Guidance is set when location retrieval failed, telling the user how
	// to retry. The alert still goes out without a location.
	Guidance string
}

// Send builds and records one alert. Location retrieval is fire-once: a
// failure is folded into the message, never retried here.
func (service *AlertService) Send(ctx context.Context, now time.Time) (Alert, error) {
	alert := Alert{Recipients: service.contacts.List()}

	var location *models.AlertLocation
	if service.locator != nil {
		position, err := service.locator.Current(ctx)
		if err != nil {
			alert.Guidance = geo.FailureGuidance(err)
		} else {
			location = &models.AlertLocation{Lat: position.Lat, Lng: position.Lng}
		}
	}

	alert.Message = alertMessage(location)
	alert.Event = models.AlertEvent{
		ID:        security.NewRecordID(now),
		Timestamp: now.Format(time.RFC3339),
		Location:  location,
		Type:      models.AlertTypePanicButton,
	}

	if err := service.history.Append(alert.Event); err != nil {
		return alert, err
	}
	return alert, nil
}

func (service *AlertService) History() []models.AlertEvent {
	return service.history.Records()
}

func alertMessage(location *models.AlertLocation) string {
	if location == nil {
		return "EMERGENCY ALERT: I need help! Location unavailable"
	}
	link := geo.MapLink(geo.Coordinates{Lat: location.Lat, Lng: location.Lng})
	return fmt.Sprintf("EMERGENCY ALERT: I need help! My location: %s", link)
}
