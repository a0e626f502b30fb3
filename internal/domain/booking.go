package domain

import "context"

// BookingTx is the view of the data store available inside one booking unit of
// work. Every read reflects writes committed before the lock it follows was taken.
type BookingTx interface {
	// LockFlight loads the flight together with its aircraft capacity and holds
	// an exclusive lock on it until the unit of work ends. Bookings of the same
	// flight are serialized through this lock.
	LockFlight(ctx context.Context, flightID int) (*Flight, error)
	GetSeat(ctx context.Context, seatID int) (*Seat, error)
	GetPassenger(ctx context.Context, passengerID int) (*Passenger, error)
	IsSeatOccupied(ctx context.Context, flightID, seatID int) (bool, error)
	CountActiveReservations(ctx context.Context, flightID int) (int, error)
	ReservationCodeExists(ctx context.Context, code string) (bool, error)

	// InsertReservation returns ErrSeatUnavailable when the store's own
	// uniqueness rule on active (flight, seat) pairs rejects the row, and
	// ErrCodeCollision when the code is taken.
	InsertReservation(ctx context.Context, reservation *Reservation) error

	LockReservation(ctx context.Context, reservationID int) (*Reservation, error)
	UpdateReservationStatus(ctx context.Context, reservation *Reservation) error

	TicketExists(ctx context.Context, reservationID int) (bool, error)
	TicketCodeExists(ctx context.Context, code string) (bool, error)

	// InsertTicket returns ErrTicketAlreadyIssued or ErrCodeCollision when the
	// store's uniqueness rules reject the row.
	InsertTicket(ctx context.Context, ticket *Ticket) error
	LockTicketByCode(ctx context.Context, code string) (*Ticket, error)
	MarkCheckedIn(ctx context.Context, ticket *Ticket) error
}

// BookingStore runs fn inside a single atomic unit of work. The work is
// committed when fn returns nil and rolled back otherwise.
type BookingStore interface {
	InTx(ctx context.Context, fn func(tx BookingTx) error) error
}

type CodeGenerator interface {
	ReservationCode() (string, error)
	TicketCode(reservationCode string) (string, error)
}
