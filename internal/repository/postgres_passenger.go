package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/airline-reservation-system/internal/domain"
)

type PostgresPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPassengerRepository(db *pgxpool.Pool) *PostgresPassengerRepository {
	return &PostgresPassengerRepository{
		db: db,
	}
}

func (p *PostgresPassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) error {
	query := `INSERT INTO passengers (first_name, last_name, email, phone_number, identification_number, birth_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := p.db.QueryRow(ctx,
		query,
		passenger.FirstName,
		passenger.LastName,
		passenger.Email,
		passenger.PhoneNumber,
		passenger.IdentificationNumber,
		passenger.BirthDate).Scan(&passenger.ID, &passenger.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicatePassenger
		}

		return err
	}

	return nil
}

func (p *PostgresPassengerRepository) GetById(ctx context.Context, id int) (*domain.Passenger, error) {
	query := `
		SELECT id, first_name, last_name, email, phone_number, identification_number, birth_date, created_at
		FROM passengers
		WHERE id = $1
	`

	passenger, err := scanPassenger(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.EntityPassenger)
		}

		return nil, err
	}

	return passenger, nil
}

func scanPassenger(row pgx.Row) (*domain.Passenger, error) {
	var passenger domain.Passenger

	err := row.Scan(
		&passenger.ID,
		&passenger.FirstName,
		&passenger.LastName,
		&passenger.Email,
		&passenger.PhoneNumber,
		&passenger.IdentificationNumber,
		&passenger.BirthDate,
		&passenger.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &passenger, nil
}
