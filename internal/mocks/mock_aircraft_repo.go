package mocks

import (
	"context"

	"github.com/metinatakli/airline-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockAircraftRepo struct {
	mock.Mock
	domain.AircraftRepository
}

func (m *MockAircraftRepo) Create(ctx context.Context, aircraft *domain.Aircraft) error {
	args := m.Called(ctx, aircraft)
	return args.Error(0)
}

func (m *MockAircraftRepo) GetById(ctx context.Context, id int) (*domain.Aircraft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Aircraft), args.Error(1)
}

func (m *MockAircraftRepo) GetAll(ctx context.Context) ([]domain.Aircraft, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Aircraft), args.Error(1)
}

func (m *MockAircraftRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
