package domain

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Flight struct {
	ID                   int
	AircraftID           int
	FlightNumber         string
	Origin               string
	Destination          string
	DepartureTime        time.Time
	ArrivalTime          time.Time
	Price                decimal.Decimal
	AircraftRegistration string
	AircraftCapacity     int
}

func (f Flight) Validate() error {
	if !f.ArrivalTime.After(f.DepartureTime) {
		return ErrInvalidSchedule
	}

	if strings.EqualFold(strings.TrimSpace(f.Origin), strings.TrimSpace(f.Destination)) {
		return ErrSameOriginDestination
	}

	return nil
}

type FlightFilters struct {
	Pagination
	Origin      string
	Destination string
	Date        *time.Time
}

// Match reports whether the flight passes the origin, destination and date
// filters. Cities match case-insensitively on substrings; the date matches the
// UTC calendar day of departure.
func (f FlightFilters) Match(flight Flight) bool {
	if f.Origin != "" && !containsFold(flight.Origin, f.Origin) {
		return false
	}

	if f.Destination != "" && !containsFold(flight.Destination, f.Destination) {
		return false
	}

	if f.Date != nil {
		start := DayStart(*f.Date)
		departure := flight.DepartureTime.UTC()

		if departure.Before(start) || !departure.Before(start.AddDate(0, 0, 1)) {
			return false
		}
	}

	return true
}

// DayStart truncates t to midnight UTC of its calendar day.
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(strings.TrimSpace(substr)))
}

type FlightRepository interface {
	Create(ctx context.Context, flight *Flight) error
	GetById(ctx context.Context, id int) (*Flight, error)
	GetAll(ctx context.Context, filters FlightFilters) ([]Flight, *Metadata, error)

	// Update replaces the schedule of an existing flight. Moving it to another
	// aircraft is refused with ErrAircraftChangeBlocked while any reservation
	// still holds a seat.
	Update(ctx context.Context, flight *Flight) error

	// Delete returns ErrFlightHasReservations when any reservation, canceled
	// ones included, refers to the flight.
	Delete(ctx context.Context, id int) error
}
