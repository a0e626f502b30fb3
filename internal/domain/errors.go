package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")

	ErrDuplicateRegistration = errors.New("an aircraft with this registration number already exists")
	ErrDuplicateSeatNumber   = errors.New("seat number is already registered for this aircraft")
	ErrDuplicateFlightNumber = errors.New("a flight with this flight number already exists")
	ErrDuplicatePassenger    = errors.New("a passenger with this email or identification number already exists")
	ErrAircraftFull          = errors.New("aircraft has no capacity left for another seat")
	ErrAircraftInUse         = errors.New("aircraft is assigned to one or more flights")
	ErrInvalidCapacity       = errors.New("aircraft capacity must be a positive integer")
	ErrInvalidSchedule       = errors.New("arrival time must be after departure time")
	ErrSameOriginDestination = errors.New("origin and destination cannot be the same city")
	ErrAircraftChangeBlocked = errors.New("aircraft cannot be changed while the flight has active reservations")
	ErrFlightHasReservations = errors.New("flight has reservations and cannot be deleted")

	ErrIncompatibleSeat    = errors.New("seat does not belong to the aircraft operating this flight")
	ErrSeatUnavailable     = errors.New("seat is already taken on this flight")
	ErrCapacityExceeded    = errors.New("flight has no remaining capacity")
	ErrInvalidTransition   = errors.New("reservation status cannot be changed from its current state")
	ErrNotConfirmed        = errors.New("reservation is not confirmed")
	ErrTicketAlreadyIssued = errors.New("a ticket has already been issued for this reservation")

	// ErrCodeCollision is returned by a store when a generated reservation or
	// ticket code is already taken. Callers regenerate and retry.
	ErrCodeCollision      = errors.New("generated code is already in use")
	ErrCodeSpaceExhausted = errors.New("could not generate a unique code")
)

type Entity string

const (
	EntityAircraft    Entity = "aircraft"
	EntitySeat        Entity = "seat"
	EntityFlight      Entity = "flight"
	EntityPassenger   Entity = "passenger"
	EntityReservation Entity = "reservation"
	EntityTicket      Entity = "ticket"
)

// NotFoundError reports which referenced entity is missing. It matches
// ErrRecordNotFound so generic lookups can keep using errors.Is.
type NotFoundError struct {
	Entity Entity
}

func NewNotFoundError(entity Entity) error {
	return &NotFoundError{Entity: entity}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrRecordNotFound
}
