// Package geo is the geolocation collaborator of the alert flow. Retrieval
// itself lives outside the core: the alert service only needs a Locator and
// the failure taxonomy to turn errors into user guidance.
package geo

import (
	"context"
	"errors"
	"fmt"
)

type Coordinates struct {
	Lat float64
	Lng float64
}

var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrTimeout             = errors.New("location request timed out")
)

// Locator answers exactly one position request. There is no automatic
// retry and no cancellation beyond the context; a fresh call supersedes
// interest in any prior one.
type Locator interface {
	Current(ctx context.Context) (Coordinates, error)
}

// Fixed always reports the same coordinates, the CLI's stand-in for a
// platform location provider.
type Fixed struct {
	Position Coordinates
}

func (locator Fixed) Current(context.Context) (Coordinates, error) {
	return locator.Position, nil
}

// MapLink renders the shareable maps URL embedded in alert messages.
func MapLink(position Coordinates) string {
	return fmt.Sprintf("https://maps.google.com/?q=%v,%v", position.Lat, position.Lng)
}

// FailureGuidance maps a retrieval failure to the guidance text shown to
// the user. Every category is retryable on demand.
func FailureGuidance(err error) string {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return "Location access was denied. Enable location permissions and try again."
	case errors.Is(err, ErrPositionUnavailable):
		return "Your position could not be determined. Move to an open area and try again."
	case errors.Is(err, ErrTimeout):
		return "The location request timed out. Try again."
	default:
		return "Location is unavailable right now. Try again."
	}
}
