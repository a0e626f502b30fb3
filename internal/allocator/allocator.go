// Package allocator decides whether a booking attempt may become a reservation
// and drives the reservation and ticket lifecycle afterwards.
//
// Every state-changing operation runs in one unit of work of the data store.
// Bookings take the flight lock first, so occupancy and capacity are read
// after every earlier booking of the same flight has committed.
package allocator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/metinatakli/airline-reservation-system/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/metinatakli/airline-reservation-system/internal/allocator"
	maxCodeAttempts     = 10
)

type BookingRequest struct {
	FlightID    int
	SeatID      int
	PassengerID int
	// Status is the initial status of the reservation. Empty means pending.
	Status domain.ReservationStatus
}

type Allocator struct {
	store    domain.BookingStore
	codes    domain.CodeGenerator
	logger   *slog.Logger
	tracer   trace.Tracer
	outcomes metric.Int64Counter
}

func New(store domain.BookingStore, codes domain.CodeGenerator, logger *slog.Logger) *Allocator {
	outcomes, err := otel.Meter(instrumentationName).Int64Counter(
		"reservation.booking.attempts",
		metric.WithDescription("Booking attempts by outcome"),
	)
	if err != nil {
		logger.Warn("failed to create booking outcome counter", "error", err)
		outcomes = noop.Int64Counter{}
	}

	return &Allocator{
		store:    store,
		codes:    codes,
		logger:   logger,
		tracer:   otel.Tracer(instrumentationName),
		outcomes: outcomes,
	}
}

// AttemptBooking persists a reservation for the seat on the flight, or returns
// the first rule the attempt violates: a *domain.NotFoundError for the flight,
// seat or passenger, domain.ErrIncompatibleSeat, domain.ErrSeatUnavailable or
// domain.ErrCapacityExceeded.
func (a *Allocator) AttemptBooking(ctx context.Context, req BookingRequest) (*domain.Reservation, error) {
	ctx, span := a.tracer.Start(ctx, "Allocator.AttemptBooking", trace.WithAttributes(
		attribute.Int("flight.id", req.FlightID),
		attribute.Int("seat.id", req.SeatID),
		attribute.Int("passenger.id", req.PassengerID),
	))
	defer span.End()

	status := req.Status
	if status == "" {
		status = domain.ReservationStatusPending
	}

	if status != domain.ReservationStatusPending && status != domain.ReservationStatusConfirmed {
		return nil, fmt.Errorf("%w: a reservation cannot start as %q", domain.ErrInvalidTransition, status)
	}

	var reservation *domain.Reservation

	err := a.store.InTx(ctx, func(tx domain.BookingTx) error {
		flight, err := tx.LockFlight(ctx, req.FlightID)
		if err != nil {
			return err
		}

		seat, err := tx.GetSeat(ctx, req.SeatID)
		if err != nil {
			return err
		}

		passenger, err := tx.GetPassenger(ctx, req.PassengerID)
		if err != nil {
			return err
		}

		err = checkCompatibility(flight, seat)
		if err != nil {
			return err
		}

		occupied, err := tx.IsSeatOccupied(ctx, flight.ID, seat.ID)
		if err != nil {
			return err
		}

		if occupied {
			return domain.ErrSeatUnavailable
		}

		active, err := tx.CountActiveReservations(ctx, flight.ID)
		if err != nil {
			return err
		}

		err = checkCapacity(flight, active)
		if err != nil {
			return err
		}

		candidate := &domain.Reservation{
			FlightID:    flight.ID,
			SeatID:      seat.ID,
			PassengerID: passenger.ID,
			Status:      status,
		}

		err = a.insertReservation(ctx, tx, candidate)
		if err != nil {
			return err
		}

		reservation = candidate

		return nil
	})

	outcome := bookingOutcome(err)
	a.outcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	span.SetAttributes(attribute.String("booking.outcome", outcome))

	if err != nil {
		if outcome == outcomeError {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		return nil, err
	}

	return reservation, nil
}

func checkCompatibility(flight *domain.Flight, seat *domain.Seat) error {
	if seat.AircraftID != flight.AircraftID {
		return domain.ErrIncompatibleSeat
	}

	return nil
}

// checkCapacity reports whether one more active reservation still fits.
func checkCapacity(flight *domain.Flight, activeReservations int) error {
	if activeReservations+1 > flight.AircraftCapacity {
		return domain.ErrCapacityExceeded
	}

	return nil
}

func (a *Allocator) insertReservation(ctx context.Context, tx domain.BookingTx, reservation *domain.Reservation) error {
	for range maxCodeAttempts {
		code, err := a.codes.ReservationCode()
		if err != nil {
			return fmt.Errorf("failed to generate reservation code: %w", err)
		}

		taken, err := tx.ReservationCodeExists(ctx, code)
		if err != nil {
			return err
		}

		if taken {
			a.logger.Debug("reservation code collision, regenerating", "code", code)
			continue
		}

		reservation.Code = code

		err = tx.InsertReservation(ctx, reservation)
		if errors.Is(err, domain.ErrCodeCollision) {
			a.logger.Debug("reservation code taken by a concurrent booking, regenerating", "code", code)
			continue
		}

		return err
	}

	return domain.ErrCodeSpaceExhausted
}

// Confirm moves a pending reservation to confirmed. Confirming a confirmed
// reservation returns it unchanged.
func (a *Allocator) Confirm(ctx context.Context, reservationID int) (*domain.Reservation, error) {
	return a.transition(ctx, reservationID, domain.ReservationStatusConfirmed)
}

// Cancel releases the seat of a pending or confirmed reservation. Canceling a
// canceled reservation returns it unchanged.
func (a *Allocator) Cancel(ctx context.Context, reservationID int) (*domain.Reservation, error) {
	return a.transition(ctx, reservationID, domain.ReservationStatusCanceled)
}

func (a *Allocator) transition(
	ctx context.Context,
	reservationID int,
	target domain.ReservationStatus) (*domain.Reservation, error) {

	ctx, span := a.tracer.Start(ctx, "Allocator.Transition", trace.WithAttributes(
		attribute.Int("reservation.id", reservationID),
		attribute.String("reservation.target_status", string(target)),
	))
	defer span.End()

	var reservation *domain.Reservation

	err := a.store.InTx(ctx, func(tx domain.BookingTx) error {
		current, err := tx.LockReservation(ctx, reservationID)
		if err != nil {
			return err
		}

		if current.Status == target {
			reservation = current
			return nil
		}

		if !current.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, current.Status, target)
		}

		current.Status = target

		err = tx.UpdateReservationStatus(ctx, current)
		if err != nil {
			return err
		}

		reservation = current

		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return reservation, nil
}

// IssueTicket creates the single ticket of a confirmed reservation.
func (a *Allocator) IssueTicket(ctx context.Context, reservationID int) (*domain.Ticket, error) {
	ctx, span := a.tracer.Start(ctx, "Allocator.IssueTicket", trace.WithAttributes(
		attribute.Int("reservation.id", reservationID),
	))
	defer span.End()

	var ticket *domain.Ticket

	err := a.store.InTx(ctx, func(tx domain.BookingTx) error {
		reservation, err := tx.LockReservation(ctx, reservationID)
		if err != nil {
			return err
		}

		if reservation.Status != domain.ReservationStatusConfirmed {
			return domain.ErrNotConfirmed
		}

		issued, err := tx.TicketExists(ctx, reservation.ID)
		if err != nil {
			return err
		}

		if issued {
			return domain.ErrTicketAlreadyIssued
		}

		ticket, err = a.insertTicket(ctx, tx, reservation)

		return err
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return ticket, nil
}

func (a *Allocator) insertTicket(
	ctx context.Context,
	tx domain.BookingTx,
	reservation *domain.Reservation) (*domain.Ticket, error) {

	for range maxCodeAttempts {
		code, err := a.codes.TicketCode(reservation.Code)
		if err != nil {
			return nil, fmt.Errorf("failed to generate ticket code: %w", err)
		}

		taken, err := tx.TicketCodeExists(ctx, code)
		if err != nil {
			return nil, err
		}

		if taken {
			a.logger.Debug("ticket code collision, regenerating", "code", code)
			continue
		}

		ticket := &domain.Ticket{
			ReservationID: reservation.ID,
			Code:          code,
		}

		err = tx.InsertTicket(ctx, ticket)
		if errors.Is(err, domain.ErrCodeCollision) {
			continue
		}

		if err != nil {
			return nil, err
		}

		return ticket, nil
	}

	return nil, domain.ErrCodeSpaceExhausted
}

// CheckIn marks the ticket as checked in. The reservation behind it must still
// be confirmed; checking in twice is a no-op.
func (a *Allocator) CheckIn(ctx context.Context, ticketCode string) (*domain.Ticket, error) {
	ctx, span := a.tracer.Start(ctx, "Allocator.CheckIn")
	defer span.End()

	var ticket *domain.Ticket

	err := a.store.InTx(ctx, func(tx domain.BookingTx) error {
		current, err := tx.LockTicketByCode(ctx, ticketCode)
		if err != nil {
			return err
		}

		reservation, err := tx.LockReservation(ctx, current.ReservationID)
		if err != nil {
			return err
		}

		if reservation.Status != domain.ReservationStatusConfirmed {
			return domain.ErrNotConfirmed
		}

		if !current.IsCheckedIn {
			current.IsCheckedIn = true

			err = tx.MarkCheckedIn(ctx, current)
			if err != nil {
				return err
			}
		}

		ticket = current

		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return ticket, nil
}
