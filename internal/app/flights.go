package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/airline-reservation-system/api"
	"github.com/metinatakli/airline-reservation-system/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSort     = "departure_time"
)

func (app *Application) ListFlights(w http.ResponseWriter, r *http.Request, params api.ListFlightsParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := toFlightFilters(params)

	flights, metadata, err := app.flightRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.FlightListResponse{
		Flights:  make([]api.FlightResponse, len(flights)),
		Metadata: toApiMetadata(metadata),
	}

	for i := range flights {
		resp.Flights[i] = toApiFlight(&flights[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateFlight(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateFlightRequest

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

	flight := toDomainFlight(input)

	err = app.flightRepo.Create(r.Context(), &flight)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	logger.Info("flight scheduled", "flight_id", flight.ID, "flight_number", flight.FlightNumber)

	headers := http.Header{"Location": []string{fmt.Sprintf("/flights/%d", flight.ID)}}

	err = app.writeJSON(w, http.StatusCreated, toApiFlight(&flight), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetFlight(w http.ResponseWriter, r *http.Request, flightId int) {
	if !app.validID(w, r, "flight ID", flightId) {
		return
	}

	flight, err := app.flightRepo.GetById(r.Context(), flightId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiFlight(flight), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UpdateFlight replaces the whole schedule of a flight.
func (app *Application) UpdateFlight(w http.ResponseWriter, r *http.Request, flightId int) {
	logger := app.contextGetLogger(r)

	if !app.validID(w, r, "flight ID", flightId) {
		return
	}

	var input api.UpdateFlightRequest

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

	flight := toDomainFlight(api.CreateFlightRequest(input))
	flight.ID = flightId

	err = app.flightRepo.Update(r.Context(), &flight)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	logger.Info("flight rescheduled", "flight_id", flight.ID, "flight_number", flight.FlightNumber)

	err = app.writeJSON(w, http.StatusOK, toApiFlight(&flight), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteFlight(w http.ResponseWriter, r *http.Request, flightId int) {
	if !app.validID(w, r, "flight ID", flightId) {
		return
	}

	err := app.flightRepo.Delete(r.Context(), flightId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("flight deleted", "flight_id", flightId)

	w.WriteHeader(http.StatusNoContent)
}

func toDomainFlight(input api.CreateFlightRequest) domain.Flight {
	return domain.Flight{
		AircraftID:    input.AircraftId,
		FlightNumber:  input.FlightNumber,
		Origin:        input.OriginCity,
		Destination:   input.DestinationCity,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
		Price:         input.Price,
	}
}

func toFlightFilters(params api.ListFlightsParams) domain.FlightFilters {
	filters := domain.FlightFilters{
		Pagination: domain.Pagination{
			Page:     DefaultPage,
			PageSize: DefaultPageSize,
			Sort:     DefaultSort,
		},
	}

	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}
	if params.Sort != nil {
		filters.Sort = string(*params.Sort)
	}
	if params.Origin != nil {
		filters.Origin = *params.Origin
	}
	if params.Destination != nil {
		filters.Destination = *params.Destination
	}
	if params.Date != nil {
		date := params.Date.Time
		filters.Date = &date
	}

	return filters
}

func toApiFlight(flight *domain.Flight) api.FlightResponse {
	return api.FlightResponse{
		Id:                   flight.ID,
		AircraftId:           flight.AircraftID,
		AircraftRegistration: flight.AircraftRegistration,
		Capacity:             flight.AircraftCapacity,
		FlightNumber:         flight.FlightNumber,
		OriginCity:           flight.Origin,
		DestinationCity:      flight.Destination,
		DepartureTime:        flight.DepartureTime,
		ArrivalTime:          flight.ArrivalTime,
		Price:                flight.Price,
	}
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
