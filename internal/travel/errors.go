package travel

import (
	"errors"
	"fmt"
)

// Error messages surfaced to API clients keep the wording the front-end
// expects.
var (
	ErrCityNotFound  = errors.New("Ville non trouvée")
	ErrRateLookup    = errors.New("Erreur taux")
	ErrRateService   = errors.New("Erreur serveur")
	ErrNoFlights     = errors.New("Aucun vol trouvé ce jour-là.")
	ErrFlightService = errors.New("Erreur service vol")
)

// UnknownAirportError reports a destination with no IATA mapping. It is
// returned before any upstream call happens.
type UnknownAirportError struct {
	Destination string
}

func (e *UnknownAirportError) Error() string {
	return fmt.Sprintf("Code aéroport inconnu pour %s", e.Destination)
}

// PhotosError carries the provider's own error payload alongside the
// user-facing message.
type PhotosError struct {
	Details any
}

func (e *PhotosError) Error() string {
	return "Erreur photos"
}

// statusError is an internal marker for non-success upstream statuses.
type statusError struct {
	status int
	msg    string
}

func (e *statusError) Error() string {
	if e.msg != "" {
		return fmt.Sprintf("upstream status %d: %s", e.status, e.msg)
	}
	return fmt.Sprintf("upstream status %d", e.status)
}
