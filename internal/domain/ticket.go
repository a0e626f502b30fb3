package domain

import (
	"context"
	"time"
)

type Ticket struct {
	ID            int
	ReservationID int
	Code          string
	IssueDate     time.Time
	IsCheckedIn   bool
}

type TicketDetail struct {
	Ticket
	ReservationCode   string
	ReservationStatus ReservationStatus
	FlightNumber      string
	Origin            string
	Destination       string
	DepartureTime     time.Time
	SeatNumber        string
	PassengerName     string
}

type TicketRepository interface {
	GetDetailByCode(ctx context.Context, code string) (*TicketDetail, error)
}
