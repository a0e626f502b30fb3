package domain

import (
	"context"
	"time"
)

type Passenger struct {
	ID                   int
	FirstName            string
	LastName             string
	Email                string
	PhoneNumber          *string
	IdentificationNumber *string
	BirthDate            *time.Time
	CreatedAt            time.Time
}

func (p Passenger) FullName() string {
	return p.FirstName + " " + p.LastName
}

type PassengerRepository interface {
	Create(ctx context.Context, passenger *Passenger) error
	GetById(ctx context.Context, id int) (*Passenger, error)
}
