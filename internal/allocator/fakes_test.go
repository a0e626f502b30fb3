package allocator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/metinatakli/airline-reservation-system/internal/domain"
	"github.com/metinatakli/airline-reservation-system/internal/repository"
)

const phantomSeatBase = 1000

// phantomSeatStore serves seats with IDs from phantomSeatBase upwards as seats
// of one aircraft, beyond what provisioning would ever allow.
type phantomSeatStore struct {
	*repository.MemoryStore
	aircraftID int
}

func withPhantomSeats(store *repository.MemoryStore, aircraftID int) *phantomSeatStore {
	return &phantomSeatStore{MemoryStore: store, aircraftID: aircraftID}
}

func (p *phantomSeatStore) InTx(ctx context.Context, fn func(tx domain.BookingTx) error) error {
	return p.MemoryStore.InTx(ctx, func(tx domain.BookingTx) error {
		return fn(&phantomSeatTx{BookingTx: tx, aircraftID: p.aircraftID})
	})
}

type phantomSeatTx struct {
	domain.BookingTx
	aircraftID int
}

func (t *phantomSeatTx) GetSeat(ctx context.Context, seatID int) (*domain.Seat, error) {
	if seatID < phantomSeatBase {
		return t.BookingTx.GetSeat(ctx, seatID)
	}

	return &domain.Seat{
		ID:         seatID,
		AircraftID: t.aircraftID,
		SeatNumber: fmt.Sprintf("%dZ", seatID-phantomSeatBase),
		Class:      domain.SeatClassEconomy,
	}, nil
}

var errInjected = errors.New("injected failure")

// failingInsertStore lets the reservation insert through and then fails the
// unit of work, so the insert has to be undone.
type failingInsertStore struct {
	*repository.MemoryStore
}

func (f *failingInsertStore) InTx(ctx context.Context, fn func(tx domain.BookingTx) error) error {
	return f.MemoryStore.InTx(ctx, func(tx domain.BookingTx) error {
		if err := fn(tx); err != nil {
			return err
		}

		return errInjected
	})
}

// scriptedCodes hands out codes in order and keeps repeating the last one.
type scriptedCodes struct {
	mu          sync.Mutex
	reservation []string
	ticket      []string
}

func (c *scriptedCodes) ReservationCode() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return next(&c.reservation), nil
}

func (c *scriptedCodes) TicketCode(string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return next(&c.ticket), nil
}

func next(codes *[]string) string {
	code := (*codes)[0]
	if len(*codes) > 1 {
		*codes = (*codes)[1:]
	}

	return code
}
