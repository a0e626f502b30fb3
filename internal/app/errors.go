package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/airline-reservation-system/api"
	"github.com/metinatakli/airline-reservation-system/internal/domain"
	appvalidator "github.com/metinatakli/airline-reservation-system/internal/validator"
)

const (
	ErrInternalServer = "The server encountered a problem and could not process your request"
	ErrNotFound       = "The requested resource not found"
	ErrUnauthorized   = "You must be signed in as an administrator to access this resource"
	ErrBadCredentials = "Invalid authentication credentials"
	ErrInvalidFields  = "One or more fields have invalid values"
)

// Error codes returned in the code field of error bodies.
const (
	CodeBadRequest          = "bad_request"
	CodeValidation          = "validation_failed"
	CodeNotFound            = "not_found"
	CodeUnauthorized        = "unauthorized"
	CodeInternal            = "internal_error"
	CodeDuplicate           = "duplicate"
	CodeIncompatibleSeat    = "incompatible_seat"
	CodeSeatUnavailable     = "seat_unavailable"
	CodeCapacityExceeded    = "capacity_exceeded"
	CodeInvalidTransition   = "invalid_transition"
	CodeNotConfirmed        = "not_confirmed"
	CodeTicketIssued        = "ticket_already_issued"
	CodeAircraftFull        = "aircraft_full"
	CodeAircraftInUse       = "aircraft_in_use"
	CodeAircraftChange      = "aircraft_change_blocked"
	CodeFlightBooked        = "flight_has_reservations"
	CodeIdempotencyConflict = "idempotency_conflict"
	CodeIdempotencyMismatch = "idempotency_mismatch"
)

func (app *Application) logError(r *http.Request, err error) {
	logger := app.contextGetLogger(r)
	logger.Error(err.Error())
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	resp := api.ErrorResponse{
		Code:      &code,
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, CodeInternal, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, CodeNotFound, ErrNotFound)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, CodeBadRequest, err.Error())
}

func (app *Application) unauthorizedAccessResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, CodeUnauthorized, ErrUnauthorized)
}

func (app *Application) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, CodeUnauthorized, ErrBadCredentials)
}

func (app *Application) invalidParameterResponse(w http.ResponseWriter, r *http.Request, err error) {
	var formatErr *api.InvalidParamFormatError
	if errors.As(err, &formatErr) {
		err = fmt.Errorf("invalid value for parameter %s", formatErr.ParamName)
	}

	app.badRequestResponse(w, r, err)
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := api.ValidationErrorResponse{
		Message:          ErrInvalidFields,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: make([]api.ValidationError, 0, len(validationErrors)),
	}

	for _, fe := range validationErrors {
		resp.ValidationErrors = append(resp.ValidationErrors, api.ValidationError{
			Field: fe.Field(),
			Issue: appvalidator.ValidationMessage(fe),
		})
	}

	err = app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type errorMapping struct {
	target error
	status int
	code   string
}

var domainErrors = []errorMapping{
	{domain.ErrIncompatibleSeat, http.StatusUnprocessableEntity, CodeIncompatibleSeat},
	{domain.ErrSeatUnavailable, http.StatusConflict, CodeSeatUnavailable},
	{domain.ErrCapacityExceeded, http.StatusConflict, CodeCapacityExceeded},
	{domain.ErrInvalidTransition, http.StatusConflict, CodeInvalidTransition},
	{domain.ErrNotConfirmed, http.StatusConflict, CodeNotConfirmed},
	{domain.ErrTicketAlreadyIssued, http.StatusConflict, CodeTicketIssued},
	{domain.ErrAircraftFull, http.StatusConflict, CodeAircraftFull},
	{domain.ErrAircraftInUse, http.StatusConflict, CodeAircraftInUse},
	{domain.ErrAircraftChangeBlocked, http.StatusConflict, CodeAircraftChange},
	{domain.ErrFlightHasReservations, http.StatusConflict, CodeFlightBooked},
	{domain.ErrDuplicateRegistration, http.StatusConflict, CodeDuplicate},
	{domain.ErrDuplicateSeatNumber, http.StatusConflict, CodeDuplicate},
	{domain.ErrDuplicateFlightNumber, http.StatusConflict, CodeDuplicate},
	{domain.ErrDuplicatePassenger, http.StatusConflict, CodeDuplicate},
	{domain.ErrInvalidSchedule, http.StatusUnprocessableEntity, CodeValidation},
	{domain.ErrSameOriginDestination, http.StatusUnprocessableEntity, CodeValidation},
	{domain.ErrInvalidCapacity, http.StatusUnprocessableEntity, CodeValidation},
}

// domainErrorResponse answers with the status and code of a known domain error
// and falls back to a 500 for anything else.
func (app *Application) domainErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		app.errorResponse(w, r, http.StatusNotFound, CodeNotFound, capitalize(notFound.Error()))
		return
	}

	if errors.Is(err, domain.ErrRecordNotFound) {
		app.notFoundResponse(w, r)
		return
	}

	for _, m := range domainErrors {
		if errors.Is(err, m.target) {
			app.contextGetLogger(r).Warn("request rejected", "code", m.code, "error", err.Error())
			app.errorResponse(w, r, m.status, m.code, capitalize(m.target.Error()))
			return
		}
	}

	app.serverErrorResponse(w, r, err)
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}

	return string(s[0]-'a'+'A') + s[1:]
}
