package mocks

import (
	"context"

	"github.com/metinatakli/airline-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSeatRepo struct {
	mock.Mock
	domain.SeatRepository
}

func (m *MockSeatRepo) AddToAircraft(ctx context.Context, seat *domain.Seat) error {
	args := m.Called(ctx, seat)
	return args.Error(0)
}

func (m *MockSeatRepo) GetByAircraft(ctx context.Context, aircraftID int) ([]domain.Seat, error) {
	args := m.Called(ctx, aircraftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seat), args.Error(1)
}

func (m *MockSeatRepo) GetSeatMapByFlight(ctx context.Context, flightID int) (*domain.FlightSeatMap, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightSeatMap), args.Error(1)
}

func (m *MockSeatRepo) GetFlightSeat(ctx context.Context, flightID, seatID int) (*domain.FlightSeat, error) {
	args := m.Called(ctx, flightID, seatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightSeat), args.Error(1)
}
