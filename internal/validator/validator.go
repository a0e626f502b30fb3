package validator

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/airline-reservation-system/api"
	"github.com/metinatakli/airline-reservation-system/internal/domain"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

var (
	maxAge        = 130
	moneyScale    = int32(2)
	seatNumberRgx = regexp.MustCompile(`^[1-9][0-9]{0,2}[A-Z]$`)
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat_number", validateSeatNumber)
	validator.RegisterValidation("seat_class", validateSeatClass)
	validator.RegisterValidation("money", validateMoney)
	validator.RegisterValidation("past_date", validatePastDate)
	validator.RegisterValidation("initial_status", validateInitialStatus)

	return validator
}

// validateSeatNumber accepts a row number followed by a seat letter, like 12C.
func validateSeatNumber(fl validator.FieldLevel) bool {
	return seatNumberRgx.MatchString(fl.Field().String())
}

func validateSeatClass(fl validator.FieldLevel) bool {
	return domain.SeatClass(fl.Field().String()).Valid()
}

func validateMoney(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	return !amount.IsNegative() && amount.Equal(amount.Truncate(moneyScale))
}

func validatePastDate(fl validator.FieldLevel) bool {
	date := fl.Field().Interface().(openapi_types.Date).Time

	today := time.Now().UTC()
	return date.Before(today) && today.Year()-date.Year() <= maxAge
}

// validateInitialStatus allows the statuses a reservation may be created in.
func validateInitialStatus(fl validator.FieldLevel) bool {
	status := api.ReservationStatus(fl.Field().String())
	return status == api.Pending || status == api.Confirmed
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "gtfield":
		return fmt.Sprintf("must be after %s", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	case "alphanum":
		return "must contain only letters and digits"
	case "e164":
		return "must be a phone number in E.164 format"
	case "seat_number":
		return "must be a row number followed by a seat letter, like 12C"
	case "seat_class":
		return "must be one of: ECONOMY BUSINESS FIRST"
	case "money":
		return "must be a non-negative amount with at most two decimal places"
	case "past_date":
		return "must be a date in the past"
	case "initial_status":
		return "must be one of: pending confirmed"
	default:
		return "is invalid"
	}
}
