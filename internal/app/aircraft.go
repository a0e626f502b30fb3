package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/airline-reservation-system/api"
	"github.com/metinatakli/airline-reservation-system/internal/domain"
)

func (app *Application) ListAircraft(w http.ResponseWriter, r *http.Request) {
	fleet, err := app.aircraftRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.AircraftListResponse{
		Aircraft: make([]api.AircraftResponse, len(fleet)),
	}

	for i := range fleet {
		resp.Aircraft[i] = toApiAircraft(&fleet[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateAircraft(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateAircraftRequest

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

	aircraft := domain.Aircraft{
		RegistrationNumber: input.RegistrationNumber,
		ModelName:          input.ModelName,
		Capacity:           input.Capacity,
	}

	err = app.aircraftRepo.Create(r.Context(), &aircraft)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	logger.Info("aircraft registered", "aircraft_id", aircraft.ID, "registration", aircraft.RegistrationNumber)

	headers := http.Header{"Location": []string{fmt.Sprintf("/aircraft/%d/seats", aircraft.ID)}}

	err = app.writeJSON(w, http.StatusCreated, toApiAircraft(&aircraft), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteAircraft(w http.ResponseWriter, r *http.Request, aircraftId int) {
	if !app.validID(w, r, "aircraft ID", aircraftId) {
		return
	}

	err := app.aircraftRepo.Delete(r.Context(), aircraftId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("aircraft deleted", "aircraft_id", aircraftId)

	w.WriteHeader(http.StatusNoContent)
}

func toApiAircraft(aircraft *domain.Aircraft) api.AircraftResponse {
	return api.AircraftResponse{
		Id:                 aircraft.ID,
		RegistrationNumber: aircraft.RegistrationNumber,
		ModelName:          aircraft.ModelName,
		Capacity:           aircraft.Capacity,
		SeatCount:          aircraft.SeatCount,
	}
}
