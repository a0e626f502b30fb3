package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/airline-reservation-system/internal/domain"
)

type PostgresAircraftRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAircraftRepository(db *pgxpool.Pool) *PostgresAircraftRepository {
	return &PostgresAircraftRepository{
		db: db,
	}
}

func (p *PostgresAircraftRepository) Create(ctx context.Context, aircraft *domain.Aircraft) error {
	if aircraft.Capacity <= 0 {
		return domain.ErrInvalidCapacity
	}

	query := `INSERT INTO aircraft (registration_number, model_name, capacity)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := p.db.QueryRow(ctx,
		query,
		aircraft.RegistrationNumber,
		aircraft.ModelName,
		aircraft.Capacity).Scan(&aircraft.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRegistration
		}

		if _, ok := pgError(err, pgerrcode.CheckViolation); ok {
			return domain.ErrInvalidCapacity
		}

		return err
	}

	aircraft.SeatCount = 0

	return nil
}

func (p *PostgresAircraftRepository) GetById(ctx context.Context, id int) (*domain.Aircraft, error) {
	query := `
		SELECT a.id, a.registration_number, a.model_name, a.capacity,
			(SELECT count(*) FROM seats s WHERE s.aircraft_id = a.id)
		FROM aircraft a
		WHERE a.id = $1
	`

	var aircraft domain.Aircraft

	err := p.db.QueryRow(ctx, query, id).Scan(
		&aircraft.ID,
		&aircraft.RegistrationNumber,
		&aircraft.ModelName,
		&aircraft.Capacity,
		&aircraft.SeatCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(domain.EntityAircraft)
		}

		return nil, err
	}

	return &aircraft, nil
}

func (p *PostgresAircraftRepository) GetAll(ctx context.Context) ([]domain.Aircraft, error) {
	query := `
		SELECT a.id, a.registration_number, a.model_name, a.capacity, count(s.id)
		FROM aircraft a
		LEFT JOIN seats s ON s.aircraft_id = a.id
		GROUP BY a.id
		ORDER BY a.id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fleet := make([]domain.Aircraft, 0)

	for rows.Next() {
		var aircraft domain.Aircraft

		err = rows.Scan(
			&aircraft.ID,
			&aircraft.RegistrationNumber,
			&aircraft.ModelName,
			&aircraft.Capacity,
			&aircraft.SeatCount,
		)
		if err != nil {
			return nil, err
		}

		fleet = append(fleet, aircraft)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fleet, nil
}

// Delete removes the aircraft together with its seats. Aircraft still
// referenced by flights are kept.
func (p *PostgresAircraftRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM aircraft WHERE id = $1`, id)
	if err != nil {
		if _, ok := pgError(err, pgerrcode.ForeignKeyViolation); ok {
			return domain.ErrAircraftInUse
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityAircraft)
	}

	return nil
}
