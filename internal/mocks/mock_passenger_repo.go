package mocks

import (
	"context"

	"github.com/metinatakli/airline-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPassengerRepo struct {
	mock.Mock
	domain.PassengerRepository
}

func (m *MockPassengerRepo) Create(ctx context.Context, passenger *domain.Passenger) error {
	args := m.Called(ctx, passenger)
	return args.Error(0)
}

func (m *MockPassengerRepo) GetById(ctx context.Context, id int) (*domain.Passenger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}
