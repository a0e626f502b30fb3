package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCanceled  ReservationStatus = "canceled"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCanceled:
		return true
	default:
		return false
	}
}

// Active reports whether a reservation in this status occupies its seat.
func (s ReservationStatus) Active() bool {
	return s == ReservationStatusPending || s == ReservationStatusConfirmed
}

// CanTransitionTo reports whether target is reachable from s in one step.
// Re-applying the current status is not a transition; callers treat it as a no-op.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	switch s {
	case ReservationStatusPending:
		return target == ReservationStatusConfirmed || target == ReservationStatusCanceled
	case ReservationStatusConfirmed:
		return target == ReservationStatusCanceled
	default:
		return false
	}
}

type Reservation struct {
	ID          int
	FlightID    int
	SeatID      int
	PassengerID int
	Code        string
	Status      ReservationStatus
	BookingDate time.Time
	UpdatedAt   time.Time
}

type ReservationDetail struct {
	Reservation
	FlightNumber  string
	Origin        string
	Destination   string
	DepartureTime time.Time
	ArrivalTime   time.Time
	SeatNumber    string
	SeatClass     SeatClass
	PassengerName string
	Fare          decimal.Decimal
	TicketCode    *string
}

type ReservationFilters struct {
	Pagination
	Status ReservationStatus
}

func (f ReservationFilters) Match(reservation Reservation) bool {
	return f.Status == "" || reservation.Status == f.Status
}

type ReservationRepository interface {
	GetById(ctx context.Context, id int) (*Reservation, error)
	GetDetailByCode(ctx context.Context, code string) (*ReservationDetail, error)

	// GetAll lists reservations newest booking first.
	GetAll(ctx context.Context, filters ReservationFilters) ([]ReservationDetail, *Metadata, error)
}
