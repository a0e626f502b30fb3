package repository

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/metinatakli/airline-reservation-system/internal/domain"
)

type MemoryAircraftRepository struct {
	store *MemoryStore
}

func NewMemoryAircraftRepository(store *MemoryStore) *MemoryAircraftRepository {
	return &MemoryAircraftRepository{store: store}
}

func (m *MemoryAircraftRepository) Create(ctx context.Context, aircraft *domain.Aircraft) error {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if aircraft.Capacity <= 0 {
		return domain.ErrInvalidCapacity
	}

	for _, a := range s.aircraft {
		if a.RegistrationNumber == aircraft.RegistrationNumber {
			return domain.ErrDuplicateRegistration
		}
	}

	aircraft.ID = s.nextID(domain.EntityAircraft)
	aircraft.SeatCount = 0
	s.aircraft[aircraft.ID] = *aircraft

	return nil
}

func (m *MemoryAircraftRepository) GetById(ctx context.Context, id int) (*domain.Aircraft, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	aircraft, ok := s.aircraft[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityAircraft)
	}

	aircraft.SeatCount = s.seatCount(id)

	return &aircraft, nil
}

func (m *MemoryAircraftRepository) GetAll(ctx context.Context) ([]domain.Aircraft, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	fleet := make([]domain.Aircraft, 0, len(s.aircraft))
	for _, a := range s.aircraft {
		a.SeatCount = s.seatCount(a.ID)
		fleet = append(fleet, a)
	}

	slices.SortFunc(fleet, func(a, b domain.Aircraft) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return fleet, nil
}

func (m *MemoryAircraftRepository) Delete(ctx context.Context, id int) error {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.aircraft[id]; !ok {
		return domain.NewNotFoundError(domain.EntityAircraft)
	}

	for _, f := range s.flights {
		if f.AircraftID == id {
			return domain.ErrAircraftInUse
		}
	}

	for seatID, seat := range s.seats {
		if seat.AircraftID == id {
			delete(s.seats, seatID)
		}
	}

	delete(s.aircraft, id)

	return nil
}

func (s *MemoryStore) seatCount(aircraftID int) int {
	count := 0
	for _, seat := range s.seats {
		if seat.AircraftID == aircraftID {
			count++
		}
	}

	return count
}

type MemorySeatRepository struct {
	store *MemoryStore
}

func NewMemorySeatRepository(store *MemoryStore) *MemorySeatRepository {
	return &MemorySeatRepository{store: store}
}

func (m *MemorySeatRepository) AddToAircraft(ctx context.Context, seat *domain.Seat) error {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	aircraft, ok := s.aircraft[seat.AircraftID]
	if !ok {
		return domain.NewNotFoundError(domain.EntityAircraft)
	}

	for _, existing := range s.seats {
		if existing.AircraftID == seat.AircraftID && existing.SeatNumber == seat.SeatNumber {
			return domain.ErrDuplicateSeatNumber
		}
	}

	if s.seatCount(aircraft.ID) >= aircraft.Capacity {
		return domain.ErrAircraftFull
	}

	seat.ID = s.nextID(domain.EntitySeat)
	s.seats[seat.ID] = *seat

	return nil
}

func (m *MemorySeatRepository) GetByAircraft(ctx context.Context, aircraftID int) ([]domain.Seat, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.aircraft[aircraftID]; !ok {
		return nil, domain.NewNotFoundError(domain.EntityAircraft)
	}

	return s.aircraftSeats(aircraftID), nil
}

func (m *MemorySeatRepository) GetSeatMapByFlight(ctx context.Context, flightID int) (*domain.FlightSeatMap, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, ok := s.flightWithAircraft(flightID)
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityFlight)
	}

	seatMap := &domain.FlightSeatMap{
		FlightID:             flight.ID,
		FlightNumber:         flight.FlightNumber,
		AircraftRegistration: flight.AircraftRegistration,
		Capacity:             flight.AircraftCapacity,
		Seats:                make([]domain.FlightSeat, 0),
	}

	for _, seat := range s.aircraftSeats(flight.AircraftID) {
		seatMap.Seats = append(seatMap.Seats, domain.FlightSeat{
			Seat:      seat,
			Available: !s.seatOccupied(flight.ID, seat.ID),
			Fare:      domain.Fare(flight.Price, seat.BasePrice),
		})
	}

	return seatMap, nil
}

func (m *MemorySeatRepository) GetFlightSeat(ctx context.Context, flightID, seatID int) (*domain.FlightSeat, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, ok := s.flightWithAircraft(flightID)
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityFlight)
	}

	seat, ok := s.seats[seatID]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntitySeat)
	}

	if seat.AircraftID != flight.AircraftID {
		return nil, domain.ErrIncompatibleSeat
	}

	return &domain.FlightSeat{
		Seat:      seat,
		Available: !s.seatOccupied(flight.ID, seat.ID),
		Fare:      domain.Fare(flight.Price, seat.BasePrice),
	}, nil
}

func (s *MemoryStore) aircraftSeats(aircraftID int) []domain.Seat {
	seats := make([]domain.Seat, 0)
	for _, seat := range s.seats {
		if seat.AircraftID == aircraftID {
			seats = append(seats, seat)
		}
	}

	slices.SortFunc(seats, func(a, b domain.Seat) int {
		return cmp.Compare(a.SeatNumber, b.SeatNumber)
	})

	return seats
}

type MemoryFlightRepository struct {
	store *MemoryStore
}

func NewMemoryFlightRepository(store *MemoryStore) *MemoryFlightRepository {
	return &MemoryFlightRepository{store: store}
}

func (m *MemoryFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	aircraft, ok := s.aircraft[flight.AircraftID]
	if !ok {
		return domain.NewNotFoundError(domain.EntityAircraft)
	}

	if aircraft.Capacity <= 0 {
		return domain.ErrInvalidCapacity
	}

	if err := flight.Validate(); err != nil {
		return err
	}

	for _, f := range s.flights {
		if f.FlightNumber == flight.FlightNumber {
			return domain.ErrDuplicateFlightNumber
		}
	}

	flight.ID = s.nextID(domain.EntityFlight)
	flight.AircraftRegistration = aircraft.RegistrationNumber
	flight.AircraftCapacity = aircraft.Capacity

	stored := *flight
	stored.AircraftRegistration = ""
	stored.AircraftCapacity = 0
	s.flights[flight.ID] = stored

	return nil
}

func (m *MemoryFlightRepository) GetById(ctx context.Context, id int) (*domain.Flight, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, ok := s.flightWithAircraft(id)
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityFlight)
	}

	return &flight, nil
}

func (m *MemoryFlightRepository) GetAll(
	ctx context.Context,
	filters domain.FlightFilters) ([]domain.Flight, *domain.Metadata, error) {

	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	matches := make([]domain.Flight, 0)
	for id := range s.flights {
		flight, _ := s.flightWithAircraft(id)
		if filters.Match(flight) {
			matches = append(matches, flight)
		}
	}

	slices.SortFunc(matches, func(a, b domain.Flight) int {
		c := compareFlights(a, b, filters.SortColumn())
		if filters.SortDirection() == "DESC" {
			c = -c
		}

		return cmp.Or(c, cmp.Compare(a.ID, b.ID))
	})

	metadata := domain.NewMetadata(len(matches), filters.Page, filters.PageSize)

	start := min(filters.Offset(), len(matches))
	end := min(start+filters.Limit(), len(matches))

	return matches[start:end], metadata, nil
}

func (m *MemoryFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.flights[flight.ID]
	if !ok {
		return domain.NewNotFoundError(domain.EntityFlight)
	}

	aircraft, ok := s.aircraft[flight.AircraftID]
	if !ok {
		return domain.NewNotFoundError(domain.EntityAircraft)
	}

	if err := flight.Validate(); err != nil {
		return err
	}

	if current.AircraftID != flight.AircraftID && s.activeReservations(flight.ID) > 0 {
		return domain.ErrAircraftChangeBlocked
	}

	for _, f := range s.flights {
		if f.ID != flight.ID && f.FlightNumber == flight.FlightNumber {
			return domain.ErrDuplicateFlightNumber
		}
	}

	flight.AircraftRegistration = aircraft.RegistrationNumber
	flight.AircraftCapacity = aircraft.Capacity

	stored := *flight
	stored.AircraftRegistration = ""
	stored.AircraftCapacity = 0
	s.flights[flight.ID] = stored

	return nil
}

func (m *MemoryFlightRepository) Delete(ctx context.Context, id int) error {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.flights[id]; !ok {
		return domain.NewNotFoundError(domain.EntityFlight)
	}

	for _, r := range s.reservations {
		if r.FlightID == id {
			return domain.ErrFlightHasReservations
		}
	}

	delete(s.flights, id)

	return nil
}

func compareFlights(a, b domain.Flight, column string) int {
	switch column {
	case "departure_time":
		return a.DepartureTime.Compare(b.DepartureTime)
	case "price":
		return a.Price.Cmp(b.Price)
	case "flight_number":
		return cmp.Compare(a.FlightNumber, b.FlightNumber)
	default:
		return cmp.Compare(a.ID, b.ID)
	}
}

type MemoryPassengerRepository struct {
	store *MemoryStore
}

func NewMemoryPassengerRepository(store *MemoryStore) *MemoryPassengerRepository {
	return &MemoryPassengerRepository{store: store}
}

func (m *MemoryPassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) error {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.passengers {
		if strings.EqualFold(p.Email, passenger.Email) {
			return domain.ErrDuplicatePassenger
		}

		if p.IdentificationNumber != nil && passenger.IdentificationNumber != nil &&
			*p.IdentificationNumber == *passenger.IdentificationNumber {
			return domain.ErrDuplicatePassenger
		}
	}

	passenger.ID = s.nextID(domain.EntityPassenger)
	passenger.CreatedAt = s.now()
	s.passengers[passenger.ID] = *passenger

	return nil
}

func (m *MemoryPassengerRepository) GetById(ctx context.Context, id int) (*domain.Passenger, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	passenger, ok := s.passengers[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityPassenger)
	}

	return &passenger, nil
}

type MemoryReservationRepository struct {
	store *MemoryStore
}

func NewMemoryReservationRepository(store *MemoryStore) *MemoryReservationRepository {
	return &MemoryReservationRepository{store: store}
}

func (m *MemoryReservationRepository) GetById(ctx context.Context, id int) (*domain.Reservation, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation, ok := s.reservations[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityReservation)
	}

	return &reservation, nil
}

func (m *MemoryReservationRepository) GetDetailByCode(
	ctx context.Context,
	code string) (*domain.ReservationDetail, error) {

	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation, ok := s.reservationByCode(code)
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityReservation)
	}

	detail := s.reservationDetail(reservation)

	return &detail, nil
}

func (m *MemoryReservationRepository) GetAll(
	ctx context.Context,
	filters domain.ReservationFilters) ([]domain.ReservationDetail, *domain.Metadata, error) {

	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	matches := make([]domain.Reservation, 0)
	for _, r := range s.reservations {
		if filters.Match(r) {
			matches = append(matches, r)
		}
	}

	slices.SortFunc(matches, func(a, b domain.Reservation) int {
		return cmp.Or(b.BookingDate.Compare(a.BookingDate), cmp.Compare(b.ID, a.ID))
	})

	metadata := domain.NewMetadata(len(matches), filters.Page, filters.PageSize)

	start := min(filters.Offset(), len(matches))
	end := min(start+filters.Limit(), len(matches))

	details := make([]domain.ReservationDetail, 0, end-start)
	for _, r := range matches[start:end] {
		details = append(details, s.reservationDetail(r))
	}

	return details, metadata, nil
}

func (s *MemoryStore) reservationDetail(reservation domain.Reservation) domain.ReservationDetail {
	flight := s.flights[reservation.FlightID]
	seat := s.seats[reservation.SeatID]

	detail := domain.ReservationDetail{
		Reservation:   reservation,
		FlightNumber:  flight.FlightNumber,
		Origin:        flight.Origin,
		Destination:   flight.Destination,
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
		SeatNumber:    seat.SeatNumber,
		SeatClass:     seat.Class,
		PassengerName: s.passengers[reservation.PassengerID].FullName(),
		Fare:          domain.Fare(flight.Price, seat.BasePrice),
	}

	if ticket, ok := s.ticketByReservation(reservation.ID); ok {
		detail.TicketCode = &ticket.Code
	}

	return detail
}

type MemoryTicketRepository struct {
	store *MemoryStore
}

func NewMemoryTicketRepository(store *MemoryStore) *MemoryTicketRepository {
	return &MemoryTicketRepository{store: store}
}

func (m *MemoryTicketRepository) GetDetailByCode(ctx context.Context, code string) (*domain.TicketDetail, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok := s.ticketByCode(code)
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityTicket)
	}

	reservation := s.reservations[ticket.ReservationID]
	flight := s.flights[reservation.FlightID]

	return &domain.TicketDetail{
		Ticket:            ticket,
		ReservationCode:   reservation.Code,
		ReservationStatus: reservation.Status,
		FlightNumber:      flight.FlightNumber,
		Origin:            flight.Origin,
		Destination:       flight.Destination,
		DepartureTime:     flight.DepartureTime,
		SeatNumber:        s.seats[reservation.SeatID].SeatNumber,
		PassengerName:     s.passengers[reservation.PassengerID].FullName(),
	}, nil
}
