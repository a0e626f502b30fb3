package app

import (
	"net/http"
	"strings"

	"github.com/metinatakli/airline-reservation-system/api"
	"github.com/metinatakli/airline-reservation-system/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

func (app *Application) RegisterPassenger(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.RegisterPassengerRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	passenger := domain.Passenger{
		FirstName:            strings.TrimSpace(input.FirstName),
		LastName:             strings.TrimSpace(input.LastName),
		Email:                strings.ToLower(string(input.Email)),
		PhoneNumber:          input.PhoneNumber,
		IdentificationNumber: input.IdentificationNumber,
	}

	if input.BirthDate != nil {
		birthDate := input.BirthDate.Time
		passenger.BirthDate = &birthDate
	}

	err = app.passengerRepo.Create(r.Context(), &passenger)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	logger.Info("passenger registered", "passenger_id", passenger.ID)

	err = app.writeJSON(w, http.StatusCreated, toApiPassenger(&passenger), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPassenger(w http.ResponseWriter, r *http.Request, passengerId int) {
	if !app.validID(w, r, "passenger ID", passengerId) {
		return
	}

	passenger, err := app.passengerRepo.GetById(r.Context(), passengerId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiPassenger(passenger), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiPassenger(passenger *domain.Passenger) api.PassengerResponse {
	resp := api.PassengerResponse{
		Id:                   passenger.ID,
		FirstName:            passenger.FirstName,
		LastName:             passenger.LastName,
		Email:                passenger.Email,
		PhoneNumber:          passenger.PhoneNumber,
		IdentificationNumber: passenger.IdentificationNumber,
		CreatedAt:            passenger.CreatedAt,
	}

	if passenger.BirthDate != nil {
		resp.BirthDate = &types.Date{Time: *passenger.BirthDate}
	}

	return resp
}
