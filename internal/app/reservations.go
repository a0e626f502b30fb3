package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/metinatakli/airline-reservation-system/api"
	"github.com/metinatakli/airline-reservation-system/internal/allocator"
	"github.com/metinatakli/airline-reservation-system/internal/domain"
)

var reservationCodeRgx = regexp.MustCompile(`^[A-Z0-9]{6}$`)

func (app *Application) CreateReservation(
	w http.ResponseWriter,
	r *http.Request,
	params api.CreateReservationParams) {

	var input api.CreateReservationRequest

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

	req := allocator.BookingRequest{
		FlightID:    input.FlightId,
		SeatID:      input.SeatId,
		PassengerID: input.PassengerId,
	}

	if input.Status != nil {
		req.Status = domain.ReservationStatus(*input.Status)
	}

	if params.IdempotencyKey == nil || app.redis == nil {
		app.book(w, r, req)
		return
	}

	key := strings.TrimSpace(*params.IdempotencyKey)
	if key == "" || len(key) > maxIdempotencyKeyLength {
		app.badRequestResponse(w, r, fmt.Errorf("Idempotency-Key must be between 1 and %d characters", maxIdempotencyKeyLength))
		return
	}

	app.bookIdempotent(w, r, idempotencyRedisKey(key), req)
}

func (app *Application) book(w http.ResponseWriter, r *http.Request, req allocator.BookingRequest) {
	reservation, err := app.booking.AttemptBooking(r.Context(), req)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiReservation(reservation), reservationLocation(reservation))
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// bookIdempotent books at most once per idempotency key. Repeated requests get the
// first response back; a request that reuses a key with a different body is rejected.
func (app *Application) bookIdempotent(w http.ResponseWriter, r *http.Request, key string, req allocator.BookingRequest) {
	logger := app.contextGetLogger(r)
	fingerprint := bookingFingerprint(req)

	stored, err := app.claimIdempotencyKey(r.Context(), key, fingerprint)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if stored != nil {
		switch {
		case stored.Fingerprint != fingerprint:
			logger.Warn("idempotency key reused with a different booking request")
			app.errorResponse(w, r, http.StatusUnprocessableEntity, CodeIdempotencyMismatch,
				"Idempotency-Key was already used for a different booking request")
		case !stored.completed():
			app.errorResponse(w, r, http.StatusConflict, CodeIdempotencyConflict,
				"A booking request with this Idempotency-Key is still being processed")
		default:
			logger.Info("replaying booking response for idempotency key")
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Idempotent-Replayed", "true")
			w.WriteHeader(stored.Status)
			w.Write(stored.Body)
		}

		return
	}

	reservation, err := app.booking.AttemptBooking(r.Context(), req)
	if err != nil {
		releaseErr := app.releaseIdempotencyKey(r.Context(), key)
		if releaseErr != nil {
			logger.Error("failed to release idempotency key", "error", releaseErr)
		}

		app.domainErrorResponse(w, r, err)
		return
	}

	resp := toApiReservation(reservation)

	body, err := json.Marshal(resp)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.storeIdempotentResponse(r.Context(), key, idempotentResponse{
		Fingerprint: fingerprint,
		Status:      http.StatusCreated,
		Body:        body,
	})
	if err != nil {
		logger.Error("failed to store idempotent booking response", "error", err, "reservation_id", reservation.ID)
	}

	err = app.writeJSON(w, http.StatusCreated, resp, reservationLocation(reservation))
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListReservations(w http.ResponseWriter, r *http.Request, params api.ListReservationsParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := domain.ReservationFilters{
		Pagination: domain.Pagination{
			Page:     DefaultPage,
			PageSize: DefaultPageSize,
		},
	}

	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}
	if params.Status != nil {
		filters.Status = domain.ReservationStatus(*params.Status)
	}

	reservations, metadata, err := app.reservationRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ReservationListResponse{
		Reservations: make([]api.ReservationDetailResponse, len(reservations)),
		Metadata:     toApiMetadata(metadata),
	}

	for i := range reservations {
		resp.Reservations[i] = toReservationDetailResponse(&reservations[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetReservationByCode(w http.ResponseWriter, r *http.Request, reservationCode string) {
	code := strings.ToUpper(strings.TrimSpace(reservationCode))
	if !reservationCodeRgx.MatchString(code) {
		app.badRequestResponse(w, r, errors.New("reservation code must be 6 letters or digits"))
		return
	}

	detail, err := app.reservationRepo.GetDetailByCode(r.Context(), code)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toReservationDetailResponse(detail), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ConfirmReservation(w http.ResponseWriter, r *http.Request, reservationId int) {
	if !app.validID(w, r, "reservation ID", reservationId) {
		return
	}

	reservation, err := app.booking.Confirm(r.Context(), reservationId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiReservation(reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelReservation(w http.ResponseWriter, r *http.Request, reservationId int) {
	if !app.validID(w, r, "reservation ID", reservationId) {
		return
	}

	reservation, err := app.booking.Cancel(r.Context(), reservationId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiReservation(reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func reservationLocation(reservation *domain.Reservation) http.Header {
	return http.Header{"Location": []string{"/reservations/" + reservation.Code}}
}

func toApiReservation(reservation *domain.Reservation) api.ReservationResponse {
	return api.ReservationResponse{
		Id:              reservation.ID,
		ReservationCode: reservation.Code,
		FlightId:        reservation.FlightID,
		SeatId:          reservation.SeatID,
		PassengerId:     reservation.PassengerID,
		Status:          api.ReservationStatus(reservation.Status),
		BookingDate:     reservation.BookingDate,
		UpdatedAt:       reservation.UpdatedAt,
	}
}

func toReservationDetailResponse(detail *domain.ReservationDetail) api.ReservationDetailResponse {
	return api.ReservationDetailResponse{
		Id:              detail.ID,
		ReservationCode: detail.Code,
		Status:          api.ReservationStatus(detail.Status),
		BookingDate:     detail.BookingDate,
		FlightNumber:    detail.FlightNumber,
		OriginCity:      detail.Origin,
		DestinationCity: detail.Destination,
		DepartureTime:   detail.DepartureTime,
		ArrivalTime:     detail.ArrivalTime,
		SeatNumber:      detail.SeatNumber,
		SeatClass:       api.SeatClass(detail.SeatClass),
		PassengerName:   detail.PassengerName,
		Fare:            detail.Fare,
		TicketCode:      detail.TicketCode,
	}
}
