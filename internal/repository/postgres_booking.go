package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/airline-reservation-system/internal/domain"
)

// PostgresBookingStore runs booking units of work in a PostgreSQL transaction.
// Row locks are taken with SELECT ... FOR UPDATE and held until commit.
type PostgresBookingStore struct {
	db *pgxpool.Pool
}

func NewPostgresBookingStore(db *pgxpool.Pool) *PostgresBookingStore {
	return &PostgresBookingStore{
		db: db,
	}
}

func (p *PostgresBookingStore) InTx(ctx context.Context, fn func(tx domain.BookingTx) error) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		return fn(&postgresBookingTx{tx: tx})
	})
}

type postgresBookingTx struct {
	tx pgx.Tx
}

func (b *postgresBookingTx) LockFlight(ctx context.Context, flightID int) (*domain.Flight, error) {
	query := `SELECT ` + flightColumns + `
		FROM flights f
		JOIN aircraft a ON a.id = f.aircraft_id
		WHERE f.id = $1
		FOR UPDATE OF f`

	flight, err := scanFlight(b.tx.QueryRow(ctx, query, flightID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.EntityFlight)
		}

		return nil, err
	}

	return flight, nil
}

func (b *postgresBookingTx) GetSeat(ctx context.Context, seatID int) (*domain.Seat, error) {
	query := `
		SELECT id, aircraft_id, seat_number, seat_class, is_window_seat, base_price
		FROM seats
		WHERE id = $1
	`

	seat, err := scanSeat(b.tx.QueryRow(ctx, query, seatID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.EntitySeat)
		}

		return nil, err
	}

	return seat, nil
}

func (b *postgresBookingTx) GetPassenger(ctx context.Context, passengerID int) (*domain.Passenger, error) {
	query := `
		SELECT id, first_name, last_name, email, phone_number, identification_number, birth_date, created_at
		FROM passengers
		WHERE id = $1
	`

	passenger, err := scanPassenger(b.tx.QueryRow(ctx, query, passengerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.EntityPassenger)
		}

		return nil, err
	}

	return passenger, nil
}

func (b *postgresBookingTx) IsSeatOccupied(ctx context.Context, flightID, seatID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE flight_id = $1 AND seat_id = $2 AND status <> 'canceled'
		)
	`

	var occupied bool
	err := b.tx.QueryRow(ctx, query, flightID, seatID).Scan(&occupied)

	return occupied, err
}

func (b *postgresBookingTx) CountActiveReservations(ctx context.Context, flightID int) (int, error) {
	query := `SELECT count(*) FROM reservations WHERE flight_id = $1 AND status <> 'canceled'`

	var count int
	err := b.tx.QueryRow(ctx, query, flightID).Scan(&count)

	return count, err
}

func (b *postgresBookingTx) ReservationCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := b.tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reservations WHERE reservation_code = $1)`,
		code).Scan(&exists)

	return exists, err
}

// InsertReservation runs in a savepoint so a rejected row leaves the
// surrounding transaction usable for another attempt.
func (b *postgresBookingTx) InsertReservation(ctx context.Context, reservation *domain.Reservation) error {
	query := `
		INSERT INTO reservations (flight_id, seat_id, passenger_id, reservation_code, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, booking_date, updated_at
	`

	err := b.savepoint(ctx, func(sp pgx.Tx) error {
		return sp.QueryRow(ctx,
			query,
			reservation.FlightID,
			reservation.SeatID,
			reservation.PassengerID,
			reservation.Code,
			string(reservation.Status)).Scan(&reservation.ID, &reservation.BookingDate, &reservation.UpdatedAt)
	})

	if err != nil {
		if pgErr, ok := uniqueViolation(err); ok {
			switch pgErr.ConstraintName {
			case constraintActiveSeat:
				return domain.ErrSeatUnavailable
			case constraintReservationCode:
				return domain.ErrCodeCollision
			}
		}

		return err
	}

	return nil
}

func (b *postgresBookingTx) LockReservation(ctx context.Context, reservationID int) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations r WHERE r.id = $1 FOR UPDATE`

	reservation, err := scanReservation(b.tx.QueryRow(ctx, query, reservationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.EntityReservation)
		}

		return nil, err
	}

	return reservation, nil
}

func (b *postgresBookingTx) UpdateReservationStatus(ctx context.Context, reservation *domain.Reservation) error {
	query := `
		UPDATE reservations
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING updated_at
	`

	err := b.tx.QueryRow(ctx, query, string(reservation.Status), reservation.ID).Scan(&reservation.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewNotFoundError(domain.EntityReservation)
		}

		if pgErr, ok := uniqueViolation(err); ok && pgErr.ConstraintName == constraintActiveSeat {
			return domain.ErrSeatUnavailable
		}

		return err
	}

	return nil
}

func (b *postgresBookingTx) TicketExists(ctx context.Context, reservationID int) (bool, error) {
	var exists bool
	err := b.tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM tickets WHERE reservation_id = $1)`,
		reservationID).Scan(&exists)

	return exists, err
}

func (b *postgresBookingTx) TicketCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := b.tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM tickets WHERE ticket_code = $1)`,
		code).Scan(&exists)

	return exists, err
}

func (b *postgresBookingTx) InsertTicket(ctx context.Context, ticket *domain.Ticket) error {
	query := `
		INSERT INTO tickets (reservation_id, ticket_code)
		VALUES ($1, $2)
		RETURNING id, issue_date, is_checked_in
	`

	err := b.savepoint(ctx, func(sp pgx.Tx) error {
		return sp.QueryRow(ctx, query, ticket.ReservationID, ticket.Code).
			Scan(&ticket.ID, &ticket.IssueDate, &ticket.IsCheckedIn)
	})

	if err != nil {
		if pgErr, ok := uniqueViolation(err); ok {
			switch pgErr.ConstraintName {
			case constraintTicketOnce:
				return domain.ErrTicketAlreadyIssued
			case constraintTicketCode:
				return domain.ErrCodeCollision
			}
		}

		return err
	}

	return nil
}

func (b *postgresBookingTx) LockTicketByCode(ctx context.Context, code string) (*domain.Ticket, error) {
	query := `
		SELECT id, reservation_id, ticket_code, issue_date, is_checked_in
		FROM tickets
		WHERE ticket_code = $1
		FOR UPDATE
	`

	var ticket domain.Ticket

	err := b.tx.QueryRow(ctx, query, code).Scan(
		&ticket.ID,
		&ticket.ReservationID,
		&ticket.Code,
		&ticket.IssueDate,
		&ticket.IsCheckedIn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.EntityTicket)
		}

		return nil, err
	}

	return &ticket, nil
}

func (b *postgresBookingTx) MarkCheckedIn(ctx context.Context, ticket *domain.Ticket) error {
	tag, err := b.tx.Exec(ctx, `UPDATE tickets SET is_checked_in = TRUE WHERE id = $1`, ticket.ID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityTicket)
	}

	return nil
}

// savepoint runs fn in a nested transaction, which pgx maps to a SAVEPOINT.
func (b *postgresBookingTx) savepoint(ctx context.Context, fn func(sp pgx.Tx) error) error {
	sp, err := b.tx.Begin(ctx)
	if err != nil {
		return err
	}

	err = fn(sp)
	if err == nil {
		return sp.Commit(ctx)
	}

	rollbackErr := sp.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
