package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// Fields that differ on every run.
var keysToIgnore = map[string]struct{}{
	"timestamp":       {},
	"requestId":       {},
	"createdAt":       {},
	"bookingDate":     {},
	"updatedAt":       {},
	"issueDate":       {},
	"reservationCode": {},
	"ticketCode":      {},
}

func prepareRequest(
	method, path string,
	body io.Reader,
	headers map[string]string,
	cookies []*http.Cookie) *http.Request {

	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

func jsonBody(t testing.TB, v any) io.Reader {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(data)
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}

		switch v := m[k].(type) {
		case map[string]any:
			cleanMap(v)
		case []any:
			for _, item := range v {
				if nested, ok := item.(map[string]any); ok {
					cleanMap(nested)
				}
			}
		}
	}
}

func truncateAll(t testing.TB, app *TestApp) {
	t.Helper()

	_, err := app.DB.Exec(context.Background(),
		"TRUNCATE tickets, reservations, passengers, flights, seats, aircraft RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	require.NoError(t, app.Redis.FlushDB(context.Background()).Err())
}

// seedFlight provisions one aircraft with the given seats, a flight on it and
// one passenger per seat. Rows get ids 1..n in insertion order.
func seedFlight(t testing.TB, app *TestApp, capacity int, seatNumbers ...string) {
	t.Helper()

	ctx := context.Background()

	_, err := app.DB.Exec(ctx,
		`INSERT INTO aircraft (registration_number, model_name, capacity) VALUES ($1, 'A321neo', $2)`,
		TestRegistration, capacity)
	require.NoError(t, err)

	for i, number := range seatNumbers {
		_, err = app.DB.Exec(ctx,
			`INSERT INTO seats (aircraft_id, seat_number, seat_class, is_window_seat, base_price)
			VALUES (1, $1, 'ECONOMY', $2, 20.00)`,
			number, i == 0)
		require.NoError(t, err)

		_, err = app.DB.Exec(ctx,
			`INSERT INTO passengers (first_name, last_name, email) VALUES ('Passenger', $1, $2)`,
			number, "passenger-"+number+"@example.com")
		require.NoError(t, err)
	}

	_, err = app.DB.Exec(ctx,
		`INSERT INTO flights (aircraft_id, flight_number, origin, destination, departure_time, arrival_time, price)
		VALUES (1, $1, 'Istanbul', 'Ankara', $2, $3, 150.00)`,
		TestFlightNumber, TestDeparture, TestArrival)
	require.NoError(t, err)
}

func httpRecorder(app *TestApp, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	return rec
}
