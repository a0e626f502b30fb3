package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/metinatakli/airline-reservation-system/api"
	"github.com/metinatakli/airline-reservation-system/internal/config"
	"github.com/metinatakli/airline-reservation-system/internal/domain"
	"github.com/metinatakli/airline-reservation-system/internal/repository"
	"github.com/metinatakli/airline-reservation-system/internal/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		Env:   "test",
		Store: config.StoreMemory,
		Admin: config.AdminConfig{Username: "admin"},
		Booking: config.BookingConfig{
			IdempotencyTTL: time.Hour,
		},
	}
}

// newTestApplication builds an application backed by a fresh in-memory store.
// Options run last and may swap any collaborator for a mock.
func newTestApplication(opts ...func(*Application)) *Application {
	app := NewApp(
		testConfig(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		nil,
		nil,
		validator.NewValidator(),
		newMemorySessionManager(),
		NewMemoryRepositories(repository.NewMemoryStore()),
	)

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// fixture is a bookable flight with its aircraft, seats and one passenger.
type fixture struct {
	aircraft  domain.Aircraft
	seats     []domain.Seat
	flight    domain.Flight
	passenger domain.Passenger
}

func seedFixture(t *testing.T, app *Application, capacity int, seatNumbers ...string) fixture {
	t.Helper()

	ctx := context.Background()
	f := fixture{
		aircraft: domain.Aircraft{RegistrationNumber: "TC-JRA", ModelName: "A321neo", Capacity: capacity},
	}

	require.NoError(t, app.aircraftRepo.Create(ctx, &f.aircraft))

	for _, number := range seatNumbers {
		seat := domain.Seat{
			AircraftID: f.aircraft.ID,
			SeatNumber: number,
			Class:      domain.SeatClassEconomy,
			BasePrice:  decimal.RequireFromString("25.00"),
		}
		require.NoError(t, app.seatRepo.AddToAircraft(ctx, &seat))
		f.seats = append(f.seats, seat)
	}

	departure := time.Date(2030, time.May, 4, 9, 30, 0, 0, time.UTC)
	f.flight = domain.Flight{
		AircraftID:    f.aircraft.ID,
		FlightNumber:  "TK1971",
		Origin:        "Istanbul",
		Destination:   "Ankara",
		DepartureTime: departure,
		ArrivalTime:   departure.Add(75 * time.Minute),
		Price:         decimal.RequireFromString("100.00"),
	}
	require.NoError(t, app.flightRepo.Create(ctx, &f.flight))

	f.passenger = newPassenger(t, app, "ada@example.com")

	return f
}

func newPassenger(t *testing.T, app *Application, email string) domain.Passenger {
	t.Helper()

	passenger := domain.Passenger{FirstName: "Ada", LastName: "Lovelace", Email: email}
	require.NoError(t, app.passengerRepo.Create(context.Background(), &passenger))

	return passenger
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader = http.NoBody

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func executeRawRequest(method, url, body string) (*httptest.ResponseRecorder, *http.Request) {
	r := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")

	return httptest.NewRecorder(), r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantCode       string
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	if w.Code == http.StatusUnprocessableEntity && tt.wantCode == "" {
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if tt.wantErrMessage != "" && !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

		return
	}

	var errorResp api.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
		t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
	}

	if tt.wantCode != "" && (errorResp.Code == nil || *errorResp.Code != tt.wantCode) {
		t.Errorf("Error code = %v, want %v", errorResp.Code, tt.wantCode)
	}
}

type errorExpectation = struct {
	wantStatus     int
	wantCode       string
	wantErrMessage string
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))

	return v
}

func ptr[T any](v T) *T {
	return &v
}
