package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/airline-reservation-system/internal/domain"
)

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

const reservationColumns = `r.id, r.flight_id, r.seat_id, r.passenger_id, r.reservation_code,
	r.status, r.booking_date, r.updated_at`

func (p *PostgresReservationRepository) GetById(ctx context.Context, id int) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations r WHERE r.id = $1`

	reservation, err := scanReservation(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.EntityReservation)
		}

		return nil, err
	}

	return reservation, nil
}

const reservationDetailColumns = reservationColumns + `,
	f.flight_number, f.origin, f.destination, f.departure_time, f.arrival_time,
	s.seat_number, s.seat_class, p.first_name || ' ' || p.last_name,
	f.price, s.base_price, t.ticket_code`

const reservationDetailJoins = `
	FROM reservations r
	JOIN flights f ON r.flight_id = f.id
	JOIN seats s ON r.seat_id = s.id
	JOIN passengers p ON r.passenger_id = p.id
	LEFT JOIN tickets t ON t.reservation_id = r.id`

func (p *PostgresReservationRepository) GetDetailByCode(
	ctx context.Context,
	code string) (*domain.ReservationDetail, error) {

	query := `SELECT ` + reservationDetailColumns + reservationDetailJoins + `
		WHERE r.reservation_code = $1`

	detail, err := scanReservationDetail(p.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.EntityReservation)
		}

		return nil, err
	}

	return detail, nil
}

func (p *PostgresReservationRepository) GetAll(
	ctx context.Context,
	filters domain.ReservationFilters) ([]domain.ReservationDetail, *domain.Metadata, error) {

	query := `SELECT count(*) OVER(), ` + reservationDetailColumns + reservationDetailJoins + `
		WHERE (r.status = $1 OR $1 = '')
		ORDER BY r.booking_date DESC, r.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := p.db.Query(ctx, query, string(filters.Status), filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	reservations := make([]domain.ReservationDetail, 0)

	for rows.Next() {
		detail, err := scanReservationDetail(rows, &totalRecords)
		if err != nil {
			return nil, nil, err
		}

		reservations = append(reservations, *detail)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return reservations, metadata, nil
}

// scanReservationDetail reads reservationDetailColumns, after any leading
// columns the query selects into dest.
func scanReservationDetail(row pgx.Row, dest ...any) (*domain.ReservationDetail, error) {
	var (
		detail     domain.ReservationDetail
		status     string
		class      string
		price      pgtype.Numeric
		basePrice  pgtype.Numeric
		ticketCode pgtype.Text
	)

	dest = append(dest,
		&detail.ID,
		&detail.FlightID,
		&detail.SeatID,
		&detail.PassengerID,
		&detail.Code,
		&status,
		&detail.BookingDate,
		&detail.UpdatedAt,
		&detail.FlightNumber,
		&detail.Origin,
		&detail.Destination,
		&detail.DepartureTime,
		&detail.ArrivalTime,
		&detail.SeatNumber,
		&class,
		&detail.PassengerName,
		&price,
		&basePrice,
		&ticketCode,
	)

	err := row.Scan(dest...)
	if err != nil {
		return nil, err
	}

	detail.Status = domain.ReservationStatus(status)
	detail.SeatClass = domain.SeatClass(class)
	detail.Fare = domain.Fare(toDecimal(price), toDecimal(basePrice))

	if ticketCode.Valid {
		detail.TicketCode = &ticketCode.String
	}

	return &detail, nil
}

func scanReservation(row pgx.Row) (*domain.Reservation, error) {
	var (
		reservation domain.Reservation
		status      string
	)

	err := row.Scan(
		&reservation.ID,
		&reservation.FlightID,
		&reservation.SeatID,
		&reservation.PassengerID,
		&reservation.Code,
		&status,
		&reservation.BookingDate,
		&reservation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.Status = domain.ReservationStatus(status)

	return &reservation, nil
}

type PostgresTicketRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTicketRepository(db *pgxpool.Pool) *PostgresTicketRepository {
	return &PostgresTicketRepository{
		db: db,
	}
}

func (p *PostgresTicketRepository) GetDetailByCode(ctx context.Context, code string) (*domain.TicketDetail, error) {
	query := `
		SELECT
			t.id,
			t.reservation_id,
			t.ticket_code,
			t.issue_date,
			t.is_checked_in,
			r.reservation_code,
			r.status,
			f.flight_number,
			f.origin,
			f.destination,
			f.departure_time,
			s.seat_number,
			p.first_name || ' ' || p.last_name
		FROM tickets t
		JOIN reservations r ON t.reservation_id = r.id
		JOIN flights f ON r.flight_id = f.id
		JOIN seats s ON r.seat_id = s.id
		JOIN passengers p ON r.passenger_id = p.id
		WHERE t.ticket_code = $1
	`

	var (
		detail domain.TicketDetail
		status string
	)

	err := p.db.QueryRow(ctx, query, code).Scan(
		&detail.ID,
		&detail.ReservationID,
		&detail.Code,
		&detail.IssueDate,
		&detail.IsCheckedIn,
		&detail.ReservationCode,
		&status,
		&detail.FlightNumber,
		&detail.Origin,
		&detail.Destination,
		&detail.DepartureTime,
		&detail.SeatNumber,
		&detail.PassengerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.EntityTicket)
		}

		return nil, err
	}

	detail.ReservationStatus = domain.ReservationStatus(status)

	return &detail, nil
}
