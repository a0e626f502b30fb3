package app

import (
	"net/http"

	"github.com/metinatakli/airline-reservation-system/api"
	"github.com/metinatakli/airline-reservation-system/internal/domain"
	"github.com/shopspring/decimal"
)

func (app *Application) ListAircraftSeats(w http.ResponseWriter, r *http.Request, aircraftId int) {
	if !app.validID(w, r, "aircraft ID", aircraftId) {
		return
	}

	seats, err := app.seatRepo.GetByAircraft(r.Context(), aircraftId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	resp := api.SeatListResponse{
		Seats: make([]api.SeatResponse, len(seats)),
	}

	for i := range seats {
		resp.Seats[i] = toApiSeat(&seats[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) AddSeat(w http.ResponseWriter, r *http.Request, aircraftId int) {
	logger := app.contextGetLogger(r)

	if !app.validID(w, r, "aircraft ID", aircraftId) {
		return
	}

	var input api.CreateSeatRequest

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

	seat := domain.Seat{
		AircraftID: aircraftId,
		SeatNumber: input.SeatNumber,
		Class:      domain.SeatClass(input.SeatClass),
		BasePrice:  decimal.Zero,
	}

	if input.IsWindowSeat != nil {
		seat.IsWindowSeat = *input.IsWindowSeat
	}
	if input.BasePrice != nil {
		seat.BasePrice = *input.BasePrice
	}

	err = app.seatRepo.AddToAircraft(r.Context(), &seat)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	logger.Info("seat added", "aircraft_id", aircraftId, "seat_id", seat.ID, "seat_number", seat.SeatNumber)

	err = app.writeJSON(w, http.StatusCreated, toApiSeat(&seat), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetFlightSeatMap(w http.ResponseWriter, r *http.Request, flightId int) {
	if !app.validID(w, r, "flight ID", flightId) {
		return
	}

	seatMap, err := app.seatRepo.GetSeatMapByFlight(r.Context(), flightId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toSeatMapResponse(seatMap), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSeatAvailability(w http.ResponseWriter, r *http.Request, flightId int, seatId int) {
	if !app.validID(w, r, "flight ID", flightId) || !app.validID(w, r, "seat ID", seatId) {
		return
	}

	seat, err := app.seatRepo.GetFlightSeat(r.Context(), flightId, seatId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	resp := api.SeatAvailabilityResponse{
		FlightId:   flightId,
		SeatId:     seat.ID,
		SeatNumber: seat.SeatNumber,
		Available:  seat.Available,
		Fare:       seat.Fare,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatMapResponse(seatMap *domain.FlightSeatMap) api.FlightSeatMapResponse {
	resp := api.FlightSeatMapResponse{
		FlightId:             seatMap.FlightID,
		FlightNumber:         seatMap.FlightNumber,
		AircraftRegistration: seatMap.AircraftRegistration,
		Capacity:             seatMap.Capacity,
		Seats:                make([]api.FlightSeat, len(seatMap.Seats)),
	}

	for i, seat := range seatMap.Seats {
		if seat.Available {
			resp.AvailableSeats++
		}

		resp.Seats[i] = api.FlightSeat{
			Id:           seat.ID,
			SeatNumber:   seat.SeatNumber,
			SeatClass:    api.SeatClass(seat.Class),
			IsWindowSeat: seat.IsWindowSeat,
			Available:    seat.Available,
			Fare:         seat.Fare,
		}
	}

	return resp
}

func toApiSeat(seat *domain.Seat) api.SeatResponse {
	return api.SeatResponse{
		Id:           seat.ID,
		AircraftId:   seat.AircraftID,
		SeatNumber:   seat.SeatNumber,
		SeatClass:    api.SeatClass(seat.Class),
		IsWindowSeat: seat.IsWindowSeat,
		BasePrice:    seat.BasePrice,
	}
}
