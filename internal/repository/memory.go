package repository

import (
	"context"
	"sync"
	"time"

	"github.com/metinatakli/airline-reservation-system/internal/domain"
)

// MemoryStore keeps the whole data set in process memory. A unit of work holds
// the store mutex from start to finish, so units of work never interleave.
// It backs the -store=memory mode and the allocator tests.
type MemoryStore struct {
	mu sync.Mutex

	aircraft     map[int]domain.Aircraft
	seats        map[int]domain.Seat
	flights      map[int]domain.Flight
	passengers   map[int]domain.Passenger
	reservations map[int]domain.Reservation
	tickets      map[int]domain.Ticket

	lastID map[domain.Entity]int
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		aircraft:     make(map[int]domain.Aircraft),
		seats:        make(map[int]domain.Seat),
		flights:      make(map[int]domain.Flight),
		passengers:   make(map[int]domain.Passenger),
		reservations: make(map[int]domain.Reservation),
		tickets:      make(map[int]domain.Ticket),
		lastID:       make(map[domain.Entity]int),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryStore) nextID(entity domain.Entity) int {
	s.lastID[entity]++
	return s.lastID[entity]
}

func (s *MemoryStore) InTx(ctx context.Context, fn func(tx domain.BookingTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &memoryTx{store: s}

	err := fn(tx)
	if err != nil {
		tx.rollback()
		return err
	}

	return nil
}

// memoryTx records an undo step for every write so a failed unit of work
// leaves the store as it found it.
type memoryTx struct {
	store *MemoryStore
	undo  []func()
}

func (t *memoryTx) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
}

func (t *memoryTx) LockFlight(ctx context.Context, flightID int) (*domain.Flight, error) {
	flight, ok := t.store.flightWithAircraft(flightID)
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityFlight)
	}

	return &flight, nil
}

func (t *memoryTx) GetSeat(ctx context.Context, seatID int) (*domain.Seat, error) {
	seat, ok := t.store.seats[seatID]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntitySeat)
	}

	return &seat, nil
}

func (t *memoryTx) GetPassenger(ctx context.Context, passengerID int) (*domain.Passenger, error) {
	passenger, ok := t.store.passengers[passengerID]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityPassenger)
	}

	return &passenger, nil
}

func (t *memoryTx) IsSeatOccupied(ctx context.Context, flightID, seatID int) (bool, error) {
	return t.store.seatOccupied(flightID, seatID), nil
}

func (t *memoryTx) CountActiveReservations(ctx context.Context, flightID int) (int, error) {
	return t.store.activeReservations(flightID), nil
}

func (t *memoryTx) ReservationCodeExists(ctx context.Context, code string) (bool, error) {
	_, ok := t.store.reservationByCode(code)
	return ok, nil
}

func (t *memoryTx) InsertReservation(ctx context.Context, reservation *domain.Reservation) error {
	if reservation.Status.Active() && t.store.seatOccupied(reservation.FlightID, reservation.SeatID) {
		return domain.ErrSeatUnavailable
	}

	if _, ok := t.store.reservationByCode(reservation.Code); ok {
		return domain.ErrCodeCollision
	}

	now := t.store.now()
	reservation.ID = t.store.nextID(domain.EntityReservation)
	reservation.BookingDate = now
	reservation.UpdatedAt = now

	t.store.reservations[reservation.ID] = *reservation

	id := reservation.ID
	t.undo = append(t.undo, func() { delete(t.store.reservations, id) })

	return nil
}

func (t *memoryTx) LockReservation(ctx context.Context, reservationID int) (*domain.Reservation, error) {
	reservation, ok := t.store.reservations[reservationID]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityReservation)
	}

	return &reservation, nil
}

func (t *memoryTx) UpdateReservationStatus(ctx context.Context, reservation *domain.Reservation) error {
	previous, ok := t.store.reservations[reservation.ID]
	if !ok {
		return domain.NewNotFoundError(domain.EntityReservation)
	}

	updated := previous
	updated.Status = reservation.Status
	updated.UpdatedAt = t.store.now()

	t.store.reservations[reservation.ID] = updated
	t.undo = append(t.undo, func() { t.store.reservations[previous.ID] = previous })

	*reservation = updated

	return nil
}

func (t *memoryTx) TicketExists(ctx context.Context, reservationID int) (bool, error) {
	_, ok := t.store.ticketByReservation(reservationID)
	return ok, nil
}

func (t *memoryTx) TicketCodeExists(ctx context.Context, code string) (bool, error) {
	_, ok := t.store.ticketByCode(code)
	return ok, nil
}

func (t *memoryTx) InsertTicket(ctx context.Context, ticket *domain.Ticket) error {
	if _, ok := t.store.ticketByReservation(ticket.ReservationID); ok {
		return domain.ErrTicketAlreadyIssued
	}

	if _, ok := t.store.ticketByCode(ticket.Code); ok {
		return domain.ErrCodeCollision
	}

	ticket.ID = t.store.nextID(domain.EntityTicket)
	ticket.IssueDate = t.store.now()

	t.store.tickets[ticket.ID] = *ticket

	id := ticket.ID
	t.undo = append(t.undo, func() { delete(t.store.tickets, id) })

	return nil
}

func (t *memoryTx) LockTicketByCode(ctx context.Context, code string) (*domain.Ticket, error) {
	ticket, ok := t.store.ticketByCode(code)
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityTicket)
	}

	return &ticket, nil
}

func (t *memoryTx) MarkCheckedIn(ctx context.Context, ticket *domain.Ticket) error {
	previous, ok := t.store.tickets[ticket.ID]
	if !ok {
		return domain.NewNotFoundError(domain.EntityTicket)
	}

	updated := previous
	updated.IsCheckedIn = true

	t.store.tickets[ticket.ID] = updated
	t.undo = append(t.undo, func() { t.store.tickets[previous.ID] = previous })

	return nil
}

// The helpers below expect s.mu to be held.

func (s *MemoryStore) flightWithAircraft(flightID int) (domain.Flight, bool) {
	flight, ok := s.flights[flightID]
	if !ok {
		return domain.Flight{}, false
	}

	aircraft := s.aircraft[flight.AircraftID]
	flight.AircraftRegistration = aircraft.RegistrationNumber
	flight.AircraftCapacity = aircraft.Capacity

	return flight, true
}

func (s *MemoryStore) seatOccupied(flightID, seatID int) bool {
	for _, r := range s.reservations {
		if r.FlightID == flightID && r.SeatID == seatID && r.Status.Active() {
			return true
		}
	}

	return false
}

func (s *MemoryStore) activeReservations(flightID int) int {
	count := 0
	for _, r := range s.reservations {
		if r.FlightID == flightID && r.Status.Active() {
			count++
		}
	}

	return count
}

func (s *MemoryStore) reservationByCode(code string) (domain.Reservation, bool) {
	for _, r := range s.reservations {
		if r.Code == code {
			return r, true
		}
	}

	return domain.Reservation{}, false
}

func (s *MemoryStore) ticketByReservation(reservationID int) (domain.Ticket, bool) {
	for _, t := range s.tickets {
		if t.ReservationID == reservationID {
			return t, true
		}
	}

	return domain.Ticket{}, false
}

func (s *MemoryStore) ticketByCode(code string) (domain.Ticket, bool) {
	for _, t := range s.tickets {
		if t.Code == code {
			return t, true
		}
	}

	return domain.Ticket{}, false
}
