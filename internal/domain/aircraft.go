package domain

import "context"

type Aircraft struct {
	ID                 int
	RegistrationNumber string
	ModelName          string
	Capacity           int
	SeatCount          int
}

type AircraftRepository interface {
	Create(ctx context.Context, aircraft *Aircraft) error
	GetById(ctx context.Context, id int) (*Aircraft, error)
	GetAll(ctx context.Context) ([]Aircraft, error)
	Delete(ctx context.Context, id int) error
}
