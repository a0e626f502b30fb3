package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type SeatClass string

const (
	SeatClassEconomy  SeatClass = "ECONOMY"
	SeatClassBusiness SeatClass = "BUSINESS"
	SeatClassFirst    SeatClass = "FIRST"
)

func (c SeatClass) Valid() bool {
	switch c {
	case SeatClassEconomy, SeatClassBusiness, SeatClassFirst:
		return true
	default:
		return false
	}
}

type Seat struct {
	ID           int
	AircraftID   int
	SeatNumber   string
	Class        SeatClass
	IsWindowSeat bool
	BasePrice    decimal.Decimal
}

// FlightSeat is a seat of the aircraft operating a flight, as seen by that flight.
type FlightSeat struct {
	Seat
	Available bool
	Fare      decimal.Decimal
}

type FlightSeatMap struct {
	FlightID             int
	FlightNumber         string
	AircraftRegistration string
	Capacity             int
	Seats                []FlightSeat
}

// Fare is the price a passenger pays for a seat on a flight.
func Fare(flightPrice, seatBasePrice decimal.Decimal) decimal.Decimal {
	return flightPrice.Add(seatBasePrice)
}

type SeatRepository interface {
	// AddToAircraft persists the seat unless the aircraft is already at capacity
	// or the seat number is taken on that aircraft.
	AddToAircraft(ctx context.Context, seat *Seat) error
	GetByAircraft(ctx context.Context, aircraftID int) ([]Seat, error)
	GetSeatMapByFlight(ctx context.Context, flightID int) (*FlightSeatMap, error)
	GetFlightSeat(ctx context.Context, flightID, seatID int) (*FlightSeat, error)
}
