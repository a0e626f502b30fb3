package mocks

import (
	"context"

	"github.com/metinatakli/airline-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepo struct {
	mock.Mock
	domain.FlightRepository
}

func (m *MockFlightRepo) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepo) GetById(ctx context.Context, id int) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepo) GetAll(ctx context.Context, filters domain.FlightFilters) ([]domain.Flight, *domain.Metadata, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Flight), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockFlightRepo) Update(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
