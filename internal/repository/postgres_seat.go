package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/airline-reservation-system/internal/domain"
)

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

// AddToAircraft locks the aircraft row so concurrent additions cannot push
// the seat count past capacity.
func (p *PostgresSeatRepository) AddToAircraft(ctx context.Context, seat *domain.Seat) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var capacity int

		err := tx.QueryRow(ctx, `SELECT capacity FROM aircraft WHERE id = $1 FOR UPDATE`, seat.AircraftID).
			Scan(&capacity)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NewNotFoundError(domain.EntityAircraft)
			}

			return err
		}

		var taken bool

		err = tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM seats WHERE aircraft_id = $1 AND seat_number = $2)`,
			seat.AircraftID,
			seat.SeatNumber).Scan(&taken)
		if err != nil {
			return err
		}

		if taken {
			return domain.ErrDuplicateSeatNumber
		}

		var count int

		err = tx.QueryRow(ctx, `SELECT count(*) FROM seats WHERE aircraft_id = $1`, seat.AircraftID).Scan(&count)
		if err != nil {
			return err
		}

		if count >= capacity {
			return domain.ErrAircraftFull
		}

		query := `
			INSERT INTO seats (aircraft_id, seat_number, seat_class, is_window_seat, base_price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`

		err = tx.QueryRow(ctx,
			query,
			seat.AircraftID,
			seat.SeatNumber,
			string(seat.Class),
			seat.IsWindowSeat,
			seat.BasePrice).Scan(&seat.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicateSeatNumber
			}

			return err
		}

		return nil
	})
}

func (p *PostgresSeatRepository) GetByAircraft(ctx context.Context, aircraftID int) ([]domain.Seat, error) {
	var exists bool

	err := p.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM aircraft WHERE id = $1)`, aircraftID).Scan(&exists)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, domain.NewNotFoundError(domain.EntityAircraft)
	}

	query := `
		SELECT id, aircraft_id, seat_number, seat_class, is_window_seat, base_price
		FROM seats
		WHERE aircraft_id = $1
		ORDER BY seat_number
	`

	rows, err := p.db.Query(ctx, query, aircraftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0)

	for rows.Next() {
		seat, err := scanSeat(rows)
		if err != nil {
			return nil, err
		}

		seats = append(seats, *seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (p *PostgresSeatRepository) GetSeatMapByFlight(ctx context.Context, flightID int) (*domain.FlightSeatMap, error) {
	query := `
		SELECT f.id, f.flight_number, f.aircraft_id, f.price, a.registration_number, a.capacity
		FROM flights f
		JOIN aircraft a ON a.id = f.aircraft_id
		WHERE f.id = $1
	`

	var (
		seatMap    domain.FlightSeatMap
		aircraftID int
		price      pgtype.Numeric
	)

	err := p.db.QueryRow(ctx, query, flightID).Scan(
		&seatMap.FlightID,
		&seatMap.FlightNumber,
		&aircraftID,
		&price,
		&seatMap.AircraftRegistration,
		&seatMap.Capacity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.EntityFlight)
		}

		return nil, err
	}

	query = `
		SELECT s.id, s.aircraft_id, s.seat_number, s.seat_class, s.is_window_seat, s.base_price,
			NOT EXISTS (
				SELECT 1 FROM reservations r
				WHERE r.flight_id = $1 AND r.seat_id = s.id AND r.status <> 'canceled'
			)
		FROM seats s
		WHERE s.aircraft_id = $2
		ORDER BY s.seat_number
	`

	rows, err := p.db.Query(ctx, query, flightID, aircraftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flightPrice := toDecimal(price)
	seatMap.Seats = make([]domain.FlightSeat, 0)

	for rows.Next() {
		var (
			flightSeat domain.FlightSeat
			class      string
			basePrice  pgtype.Numeric
		)

		err = rows.Scan(
			&flightSeat.ID,
			&flightSeat.AircraftID,
			&flightSeat.SeatNumber,
			&class,
			&flightSeat.IsWindowSeat,
			&basePrice,
			&flightSeat.Available,
		)
		if err != nil {
			return nil, err
		}

		flightSeat.Class = domain.SeatClass(class)
		flightSeat.BasePrice = toDecimal(basePrice)
		flightSeat.Fare = domain.Fare(flightPrice, flightSeat.BasePrice)

		seatMap.Seats = append(seatMap.Seats, flightSeat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &seatMap, nil
}

func (p *PostgresSeatRepository) GetFlightSeat(ctx context.Context, flightID, seatID int) (*domain.FlightSeat, error) {
	var (
		aircraftID int
		price      pgtype.Numeric
	)

	err := p.db.QueryRow(ctx, `SELECT aircraft_id, price FROM flights WHERE id = $1`, flightID).
		Scan(&aircraftID, &price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.EntityFlight)
		}

		return nil, err
	}

	query := `
		SELECT s.id, s.aircraft_id, s.seat_number, s.seat_class, s.is_window_seat, s.base_price,
			NOT EXISTS (
				SELECT 1 FROM reservations r
				WHERE r.flight_id = $1 AND r.seat_id = s.id AND r.status <> 'canceled'
			)
		FROM seats s
		WHERE s.id = $2
	`

	var (
		flightSeat domain.FlightSeat
		class      string
		basePrice  pgtype.Numeric
	)

	err = p.db.QueryRow(ctx, query, flightID, seatID).Scan(
		&flightSeat.ID,
		&flightSeat.AircraftID,
		&flightSeat.SeatNumber,
		&class,
		&flightSeat.IsWindowSeat,
		&basePrice,
		&flightSeat.Available,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.EntitySeat)
		}

		return nil, err
	}

	if flightSeat.AircraftID != aircraftID {
		return nil, domain.ErrIncompatibleSeat
	}

	flightSeat.Class = domain.SeatClass(class)
	flightSeat.BasePrice = toDecimal(basePrice)
	flightSeat.Fare = domain.Fare(toDecimal(price), flightSeat.BasePrice)

	return &flightSeat, nil
}

func scanSeat(row pgx.Row) (*domain.Seat, error) {
	var (
		seat      domain.Seat
		class     string
		basePrice pgtype.Numeric
	)

	err := row.Scan(
		&seat.ID,
		&seat.AircraftID,
		&seat.SeatNumber,
		&class,
		&seat.IsWindowSeat,
		&basePrice,
	)
	if err != nil {
		return nil, err
	}

	seat.Class = domain.SeatClass(class)
	seat.BasePrice = toDecimal(basePrice)

	return &seat, nil
}
