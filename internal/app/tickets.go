package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/metinatakli/airline-reservation-system/api"
	"github.com/metinatakli/airline-reservation-system/internal/domain"
)

const maxTicketCodeLength = 32

func (app *Application) IssueTicket(w http.ResponseWriter, r *http.Request, reservationId int) {
	if !app.validID(w, r, "reservation ID", reservationId) {
		return
	}

	ticket, err := app.booking.IssueTicket(r.Context(), reservationId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	headers := http.Header{"Location": []string{"/tickets/" + ticket.Code}}

	err = app.writeJSON(w, http.StatusCreated, toApiTicket(ticket), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTicket(w http.ResponseWriter, r *http.Request, ticketCode string) {
	code, ok := app.normalizeTicketCode(w, r, ticketCode)
	if !ok {
		return
	}

	detail, err := app.ticketRepo.GetDetailByCode(r.Context(), code)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	resp := api.TicketDetailResponse{
		TicketCode:        detail.Code,
		IssueDate:         detail.IssueDate,
		IsCheckedIn:       detail.IsCheckedIn,
		ReservationCode:   detail.ReservationCode,
		ReservationStatus: api.ReservationStatus(detail.ReservationStatus),
		FlightNumber:      detail.FlightNumber,
		OriginCity:        detail.Origin,
		DestinationCity:   detail.Destination,
		DepartureTime:     detail.DepartureTime,
		SeatNumber:        detail.SeatNumber,
		PassengerName:     detail.PassengerName,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CheckInTicket(w http.ResponseWriter, r *http.Request, ticketCode string) {
	code, ok := app.normalizeTicketCode(w, r, ticketCode)
	if !ok {
		return
	}

	ticket, err := app.booking.CheckIn(r.Context(), code)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiTicket(ticket), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) normalizeTicketCode(w http.ResponseWriter, r *http.Request, ticketCode string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(ticketCode))
	if code == "" || len(code) > maxTicketCodeLength {
		app.badRequestResponse(w, r, errors.New("ticket code is invalid"))
		return "", false
	}

	return code, true
}

func toApiTicket(ticket *domain.Ticket) api.TicketResponse {
	return api.TicketResponse{
		Id:            ticket.ID,
		ReservationId: ticket.ReservationID,
		TicketCode:    ticket.Code,
		IssueDate:     ticket.IssueDate,
		IsCheckedIn:   ticket.IsCheckedIn,
	}
}
