package allocator

import (
	"errors"

	"github.com/metinatakli/airline-reservation-system/internal/domain"
)

const (
	outcomeBooked           = "booked"
	outcomeNotFound         = "not_found"
	outcomeIncompatibleSeat = "incompatible_seat"
	outcomeSeatUnavailable  = "seat_unavailable"
	outcomeCapacityExceeded = "capacity_exceeded"
	outcomeError            = "error"
)

func bookingOutcome(err error) string {
	switch {
	case err == nil:
		return outcomeBooked
	case errors.Is(err, domain.ErrRecordNotFound):
		return outcomeNotFound
	case errors.Is(err, domain.ErrIncompatibleSeat):
		return outcomeIncompatibleSeat
	case errors.Is(err, domain.ErrSeatUnavailable):
		return outcomeSeatUnavailable
	case errors.Is(err, domain.ErrCapacityExceeded):
		return outcomeCapacityExceeded
	default:
		return outcomeError
	}
}
