package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/airline-reservation-system/internal/domain"
)

type PostgresFlightRepository struct {
	db *pgxpool.Pool
}

func NewPostgresFlightRepository(db *pgxpool.Pool) *PostgresFlightRepository {
	return &PostgresFlightRepository{
		db: db,
	}
}

func (p *PostgresFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		// Share lock keeps the aircraft from being deleted before the flight lands.
		err := tx.QueryRow(ctx,
			`SELECT registration_number, capacity FROM aircraft WHERE id = $1 FOR SHARE`,
			flight.AircraftID).Scan(&flight.AircraftRegistration, &flight.AircraftCapacity)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NewNotFoundError(domain.EntityAircraft)
			}

			return err
		}

		if flight.AircraftCapacity <= 0 {
			return domain.ErrInvalidCapacity
		}

		if err := flight.Validate(); err != nil {
			return err
		}

		query := `
			INSERT INTO flights (aircraft_id, flight_number, origin, destination, departure_time, arrival_time, price)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`

		err = tx.QueryRow(ctx,
			query,
			flight.AircraftID,
			flight.FlightNumber,
			flight.Origin,
			flight.Destination,
			flight.DepartureTime,
			flight.ArrivalTime,
			flight.Price).Scan(&flight.ID)
		if err != nil {
			return flightWriteError(err)
		}

		return nil
	})
}

// Update locks the flight row first, the same lock bookings take, so the
// active reservation check cannot race a booking of the old aircraft's seats.
func (p *PostgresFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var currentAircraftID int

		err := tx.QueryRow(ctx,
			`SELECT aircraft_id FROM flights WHERE id = $1 FOR UPDATE`,
			flight.ID).Scan(&currentAircraftID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NewNotFoundError(domain.EntityFlight)
			}

			return err
		}

		err = tx.QueryRow(ctx,
			`SELECT registration_number, capacity FROM aircraft WHERE id = $1 FOR SHARE`,
			flight.AircraftID).Scan(&flight.AircraftRegistration, &flight.AircraftCapacity)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NewNotFoundError(domain.EntityAircraft)
			}

			return err
		}

		if err := flight.Validate(); err != nil {
			return err
		}

		if currentAircraftID != flight.AircraftID {
			var booked bool

			err = tx.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM reservations WHERE flight_id = $1 AND status <> 'canceled')`,
				flight.ID).Scan(&booked)
			if err != nil {
				return err
			}

			if booked {
				return domain.ErrAircraftChangeBlocked
			}
		}

		query := `
			UPDATE flights
			SET aircraft_id = $2, flight_number = $3, origin = $4, destination = $5,
				departure_time = $6, arrival_time = $7, price = $8
			WHERE id = $1
		`

		_, err = tx.Exec(ctx,
			query,
			flight.ID,
			flight.AircraftID,
			flight.FlightNumber,
			flight.Origin,
			flight.Destination,
			flight.DepartureTime,
			flight.ArrivalTime,
			flight.Price)
		if err != nil {
			return flightWriteError(err)
		}

		return nil
	})
}

func (p *PostgresFlightRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		if _, ok := pgError(err, pgerrcode.ForeignKeyViolation); ok {
			return domain.ErrFlightHasReservations
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityFlight)
	}

	return nil
}

func flightWriteError(err error) error {
	if isUniqueViolation(err) {
		return domain.ErrDuplicateFlightNumber
	}

	if pgErr, ok := pgError(err, pgerrcode.CheckViolation); ok {
		switch pgErr.ConstraintName {
		case "flights_route_check":
			return domain.ErrSameOriginDestination
		case "flights_schedule_check":
			return domain.ErrInvalidSchedule
		}
	}

	return err
}

const flightColumns = `f.id, f.aircraft_id, f.flight_number, f.origin, f.destination,
	f.departure_time, f.arrival_time, f.price, a.registration_number, a.capacity`

func (p *PostgresFlightRepository) GetById(ctx context.Context, id int) (*domain.Flight, error) {
	query := `SELECT ` + flightColumns + `
		FROM flights f
		JOIN aircraft a ON a.id = f.aircraft_id
		WHERE f.id = $1`

	flight, err := scanFlight(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.EntityFlight)
		}

		return nil, err
	}

	return flight, nil
}

// GetAll lists flights matching the filters. Sort must already be checked
// against the safelist, since it is interpolated into the query.
func (p *PostgresFlightRepository) GetAll(
	ctx context.Context,
	filters domain.FlightFilters) ([]domain.Flight, *domain.Metadata, error) {

	var dayStart *time.Time
	if filters.Date != nil {
		start := domain.DayStart(*filters.Date)
		dayStart = &start
	}

	query := fmt.Sprintf(`SELECT count(*) OVER(), %s
		FROM flights f
		JOIN aircraft a ON a.id = f.aircraft_id
		WHERE (f.origin ILIKE '%%' || $1 || '%%' OR $1 = '')
			AND (f.destination ILIKE '%%' || $2 || '%%' OR $2 = '')
			AND ($3::timestamptz IS NULL
				OR (f.departure_time >= $3 AND f.departure_time < $3 + interval '1 day'))
		ORDER BY f.%s %s, f.id ASC
		LIMIT $4 OFFSET $5`, flightColumns, filters.SortColumn(), filters.SortDirection())

	rows, err := p.db.Query(ctx,
		query,
		strings.TrimSpace(filters.Origin),
		strings.TrimSpace(filters.Destination),
		dayStart,
		filters.Limit(),
		filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	flights := make([]domain.Flight, 0)

	for rows.Next() {
		var (
			flight domain.Flight
			price  pgtype.Numeric
		)

		err := rows.Scan(
			&totalRecords,
			&flight.ID,
			&flight.AircraftID,
			&flight.FlightNumber,
			&flight.Origin,
			&flight.Destination,
			&flight.DepartureTime,
			&flight.ArrivalTime,
			&price,
			&flight.AircraftRegistration,
			&flight.AircraftCapacity,
		)
		if err != nil {
			return nil, nil, err
		}

		flight.Price = toDecimal(price)
		flights = append(flights, flight)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return flights, metadata, nil
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var (
		flight domain.Flight
		price  pgtype.Numeric
	)

	err := row.Scan(
		&flight.ID,
		&flight.AircraftID,
		&flight.FlightNumber,
		&flight.Origin,
		&flight.Destination,
		&flight.DepartureTime,
		&flight.ArrivalTime,
		&price,
		&flight.AircraftRegistration,
		&flight.AircraftCapacity,
	)
	if err != nil {
		return nil, err
	}

	flight.Price = toDecimal(price)

	return &flight, nil
}
