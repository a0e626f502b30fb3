package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Constraint names from migrations/, used to tell apart violations of the same
// error class.
const (
	constraintActiveSeat      = "reservations_active_seat_key"
	constraintReservationCode = "reservations_reservation_code_key"
	constraintTicketOnce      = "tickets_reservation_id_key"
	constraintTicketCode      = "tickets_ticket_code_key"
)

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

// pgError returns the PostgreSQL error behind err when it has the given code.
func pgError(err error, code string) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr, true
	}

	return nil, false
}

func uniqueViolation(err error) (*pgconn.PgError, bool) {
	return pgError(err, pgerrcode.UniqueViolation)
}

func isUniqueViolation(err error) bool {
	_, ok := uniqueViolation(err)
	return ok
}

func toDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(n.Int, n.Exp)
}
