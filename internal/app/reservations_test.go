package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/metinatakli/airline-reservation-system/api"
	"github.com/metinatakli/airline-reservation-system/internal/allocator"
	"github.com/metinatakli/airline-reservation-system/internal/domain"
	"github.com/metinatakli/airline-reservation-system/internal/mocks"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func bookingOf(f fixture, seat int) allocator.BookingRequest {
	return allocator.BookingRequest{
		FlightID:    f.flight.ID,
		SeatID:      f.seats[seat].ID,
		PassengerID: f.passenger.ID,
	}
}

func reservationRequestOf(f fixture, seat int) api.CreateReservationRequest {
	return api.CreateReservationRequest{
		FlightId:    f.flight.ID,
		SeatId:      f.seats[seat].ID,
		PassengerId: f.passenger.ID,
	}
}

type ReservationsTestSuite struct {
	suite.Suite
	app     *Application
	fixture fixture
}

func (s *ReservationsTestSuite) SetupTest() {
	s.app = newTestApplication()
	s.fixture = seedFixture(s.T(), s.app, 3, "1A", "1B", "1C")
}

func TestReservationsSuite(t *testing.T) {
	suite.Run(t, new(ReservationsTestSuite))
}

func (s *ReservationsTestSuite) TestCreateReservation() {
	tests := []struct {
		name           string
		input          func() any
		setup          func()
		wantStatus     int
		wantCode       string
		wantErrMessage string
		wantStatusBody api.ReservationStatus
	}{
		{
			name:           "should book free seat as pending",
			input:          func() any { return reservationRequestOf(s.fixture, 0) },
			wantStatus:     http.StatusCreated,
			wantStatusBody: api.Pending,
		},
		{
			name: "should book free seat as confirmed",
			input: func() any {
				req := reservationRequestOf(s.fixture, 0)
				req.Status = ptr(api.Confirmed)
				return req
			},
			wantStatus:     http.StatusCreated,
			wantStatusBody: api.Confirmed,
		},
		{
			name: "should fail when initial status is canceled",
			input: func() any {
				req := reservationRequestOf(s.fixture, 0)
				req.Status = ptr(api.Canceled)
				return req
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be one of: pending confirmed",
		},
		{
			name:           "should fail when seat is missing",
			input:          func() any { return map[string]int{"flightId": 1, "passengerId": 1} },
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name: "should fail when flight does not exist",
			input: func() any {
				req := reservationRequestOf(s.fixture, 0)
				req.FlightId = 99
				return req
			},
			wantStatus:     http.StatusNotFound,
			wantCode:       CodeNotFound,
			wantErrMessage: "Flight not found",
		},
		{
			name: "should fail when passenger does not exist",
			input: func() any {
				req := reservationRequestOf(s.fixture, 0)
				req.PassengerId = 99
				return req
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "Passenger not found",
		},
		{
			name:  "should fail when seat is already taken",
			input: func() any { return reservationRequestOf(s.fixture, 0) },
			setup: func() {
				_, err := s.app.booking.AttemptBooking(context.Background(), bookingOf(s.fixture, 0))
				s.Require().NoError(err)
			},
			wantStatus:     http.StatusConflict,
			wantCode:       CodeSeatUnavailable,
			wantErrMessage: "Seat is already taken on this flight",
		},
		{
			name:  "should rebook seat after cancellation",
			input: func() any { return reservationRequestOf(s.fixture, 0) },
			setup: func() {
				reservation, err := s.app.booking.AttemptBooking(context.Background(), bookingOf(s.fixture, 0))
				s.Require().NoError(err)
				_, err = s.app.booking.Cancel(context.Background(), reservation.ID)
				s.Require().NoError(err)
			},
			wantStatus:     http.StatusCreated,
			wantStatusBody: api.Pending,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.setup != nil {
				tt.setup()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/reservations", tt.input())
			s.app.CreateReservation(w, r, api.CreateReservationParams{})

			s.Equal(tt.wantStatus, w.Code)
			checkErrorResponse(s.T(), w, errorExpectation{tt.wantStatus, tt.wantCode, tt.wantErrMessage})

			if tt.wantStatus == http.StatusCreated {
				got := decodeJSON[api.ReservationResponse](s.T(), w)
				s.Equal(tt.wantStatusBody, got.Status)
				s.Regexp(`^[A-Z0-9]{6}$`, got.ReservationCode)
				s.Equal("/reservations/"+got.ReservationCode, w.Header().Get("Location"))
			}
		})
	}
}

func (s *ReservationsTestSuite) TestCreateReservationMapsAllocatorErrors() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"incompatible seat", domain.ErrIncompatibleSeat, http.StatusUnprocessableEntity, CodeIncompatibleSeat},
		{"capacity exceeded", domain.ErrCapacityExceeded, http.StatusConflict, CodeCapacityExceeded},
		{"wrapped seat unavailable", fmt.Errorf("insert: %w", domain.ErrSeatUnavailable), http.StatusConflict, CodeSeatUnavailable},
		{"code space exhausted", domain.ErrCodeSpaceExhausted, http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			booking := new(mocks.MockBookingService)
			booking.On("AttemptBooking", mock.Anything, mock.AnythingOfType("allocator.BookingRequest")).Return(nil, tt.err)

			app := newTestApplication(func(a *Application) { a.booking = booking })

			w, r := executeRequest(s.T(), http.MethodPost, "/reservations", reservationRequestOf(s.fixture, 0))
			app.CreateReservation(w, r, api.CreateReservationParams{})

			s.Equal(tt.wantStatus, w.Code)
			checkErrorResponse(s.T(), w, errorExpectation{tt.wantStatus, tt.wantCode, ""})
			booking.AssertExpectations(s.T())
		})
	}
}

func (s *ReservationsTestSuite) TestConcurrentBookingsOfOneSeat() {
	const attempts = 20

	passengers := make([]domain.Passenger, attempts)
	for i := range passengers {
		passengers[i] = newPassenger(s.T(), s.app, fmt.Sprintf("racer%d@example.com", i))
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		statuses = make(map[int]int)
	)

	for i := range attempts {
		wg.Add(1)
		go func(passengerID int) {
			defer wg.Done()

			req := reservationRequestOf(s.fixture, 1)
			req.PassengerId = passengerID

			w, r := executeRequest(s.T(), http.MethodPost, "/reservations", req)
			s.app.CreateReservation(w, r, api.CreateReservationParams{})

			mu.Lock()
			statuses[w.Code]++
			mu.Unlock()
		}(passengers[i].ID)
	}

	wg.Wait()

	s.Equal(1, statuses[http.StatusCreated])
	s.Equal(attempts-1, statuses[http.StatusConflict])
}

func (s *ReservationsTestSuite) TestGetReservationByCode() {
	reservation, err := s.app.booking.AttemptBooking(context.Background(), allocator.BookingRequest{
		FlightID:    s.fixture.flight.ID,
		SeatID:      s.fixture.seats[2].ID,
		PassengerID: s.fixture.passenger.ID,
		Status:      domain.ReservationStatusConfirmed,
	})
	s.Require().NoError(err)

	ticket, err := s.app.booking.IssueTicket(context.Background(), reservation.ID)
	s.Require().NoError(err)

	tests := []struct {
		name           string
		code           string
		wantStatus     int
		wantErrMessage string
	}{
		{name: "should return reservation detail", code: reservation.Code, wantStatus: http.StatusOK},
		{name: "should accept lowercase code", code: " " + strings.ToLower(reservation.Code), wantStatus: http.StatusOK},
		{name: "should fail when code is malformed", code: "AB-12", wantStatus: http.StatusBadRequest, wantErrMessage: "reservation code must be 6 letters or digits"},
		{name: "should fail when code is unknown", code: "ZZZZZZ", wantStatus: http.StatusNotFound, wantErrMessage: "Reservation not found"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w, r := executeRequest(s.T(), http.MethodGet, "/reservations/code", nil)
			s.app.GetReservationByCode(w, r, tt.code)

			s.Equal(tt.wantStatus, w.Code)
			checkErrorResponse(s.T(), w, errorExpectation{tt.wantStatus, "", tt.wantErrMessage})

			if tt.wantStatus == http.StatusOK {
				got := decodeJSON[api.ReservationDetailResponse](s.T(), w)
				s.Equal(reservation.Code, got.ReservationCode)
				s.Equal(api.Confirmed, got.Status)
				s.Equal("TK1971", got.FlightNumber)
				s.Equal("1C", got.SeatNumber)
				s.Equal(api.ECONOMY, got.SeatClass)
				s.Equal("Ada Lovelace", got.PassengerName)
				s.True(got.Fare.Equal(decimal.RequireFromString("125.00")))
				s.Require().NotNil(got.TicketCode)
				s.Equal(ticket.Code, *got.TicketCode)
			}
		})
	}
}

func (s *ReservationsTestSuite) TestReservationLifecycle() {
	reservation, err := s.app.booking.AttemptBooking(context.Background(), bookingOf(s.fixture, 0))
	s.Require().NoError(err)

	steps := []struct {
		name       string
		action     func(w http.ResponseWriter, r *http.Request, id int)
		id         int
		wantStatus int
		wantCode   string
		wantState  api.ReservationStatus
	}{
		{name: "confirm pending", action: s.app.ConfirmReservation, id: reservation.ID, wantStatus: http.StatusOK, wantState: api.Confirmed},
		{name: "confirm again is a no-op", action: s.app.ConfirmReservation, id: reservation.ID, wantStatus: http.StatusOK, wantState: api.Confirmed},
		{name: "cancel confirmed", action: s.app.CancelReservation, id: reservation.ID, wantStatus: http.StatusOK, wantState: api.Canceled},
		{name: "cancel again is a no-op", action: s.app.CancelReservation, id: reservation.ID, wantStatus: http.StatusOK, wantState: api.Canceled},
		{name: "confirm canceled", action: s.app.ConfirmReservation, id: reservation.ID, wantStatus: http.StatusConflict, wantCode: CodeInvalidTransition},
		{name: "confirm unknown", action: s.app.ConfirmReservation, id: 404, wantStatus: http.StatusNotFound, wantCode: CodeNotFound},
		{name: "cancel with zero ID", action: s.app.CancelReservation, id: 0, wantStatus: http.StatusBadRequest, wantCode: CodeBadRequest},
	}

	for _, step := range steps {
		s.Run(step.name, func() {
			w, r := executeRequest(s.T(), http.MethodPost, "/reservations/id", nil)
			step.action(w, r, step.id)

			s.Equal(step.wantStatus, w.Code)
			checkErrorResponse(s.T(), w, errorExpectation{step.wantStatus, step.wantCode, ""})

			if step.wantStatus == http.StatusOK {
				got := decodeJSON[api.ReservationResponse](s.T(), w)
				s.Equal(step.wantState, got.Status)
			}
		})
	}
}

type IdempotencyTestSuite struct {
	suite.Suite
	app     *Application
	fixture fixture
	redis   *mocks.MockRedisClient
	booking *mocks.MockBookingService
	key     string
	request api.CreateReservationRequest
}

func (s *IdempotencyTestSuite) SetupTest() {
	s.redis = new(mocks.MockRedisClient)
	s.booking = new(mocks.MockBookingService)
	s.app = newTestApplication(func(a *Application) {
		a.redis = s.redis
		a.booking = s.booking
	})
	s.fixture = seedFixture(s.T(), s.app, 2, "1A")
	s.key = idempotencyRedisKey("order-7f3c")
	s.request = reservationRequestOf(s.fixture, 0)
}

func (s *ReservationsTestSuite) TestGetReservationByCodeRepositoryFailure() {
	repo := new(mocks.MockReservationRepo)
	repo.On("GetDetailByCode", mock.Anything, "K7M2QX").Return(nil, errors.New("read tcp: i/o timeout"))

	app := newTestApplication(func(a *Application) { a.reservationRepo = repo })

	w, r := executeRequest(s.T(), http.MethodGet, "/reservations/k7m2qx", nil)
	app.GetReservationByCode(w, r, "k7m2qx")

	s.Equal(http.StatusInternalServerError, w.Code)
	checkErrorResponse(s.T(), w, errorExpectation{http.StatusInternalServerError, CodeInternal, ErrInternalServer})
	repo.AssertExpectations(s.T())
}

func (s *ReservationsTestSuite) TestListReservations() {
	ctx := context.Background()

	first, err := s.app.booking.AttemptBooking(ctx, bookingOf(s.fixture, 0))
	s.Require().NoError(err)
	_, err = s.app.booking.AttemptBooking(ctx, bookingOf(s.fixture, 1))
	s.Require().NoError(err)
	_, err = s.app.booking.Cancel(ctx, first.ID)
	s.Require().NoError(err)

	tests := []struct {
		name           string
		params         api.ListReservationsParams
		wantStatus     int
		wantErrMessage string
		wantCount      int
		wantTotal      int
		wantState      api.ReservationStatus
	}{
		{
			name:       "should list every reservation by default",
			params:     api.ListReservationsParams{},
			wantStatus: http.StatusOK,
			wantCount:  2,
			wantTotal:  2,
		},
		{
			name:       "should filter by status",
			params:     api.ListReservationsParams{Status: ptr(api.Canceled)},
			wantStatus: http.StatusOK,
			wantCount:  1,
			wantTotal:  1,
			wantState:  api.Canceled,
		},
		{
			name:       "should page through results",
			params:     api.ListReservationsParams{Page: ptr(2), PageSize: ptr(1)},
			wantStatus: http.StatusOK,
			wantCount:  1,
			wantTotal:  2,
		},
		{
			name:           "should reject an unknown status",
			params:         api.ListReservationsParams{Status: ptr(api.ReservationStatus("expired"))},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be one of: pending confirmed canceled",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w, r := executeRequest(s.T(), http.MethodGet, "/reservations", nil)
			s.app.ListReservations(w, r, tt.params)

			s.Equal(tt.wantStatus, w.Code)
			checkErrorResponse(s.T(), w, errorExpectation{tt.wantStatus, "", tt.wantErrMessage})

			if tt.wantStatus != http.StatusOK {
				return
			}

			got := decodeJSON[api.ReservationListResponse](s.T(), w)
			s.Len(got.Reservations, tt.wantCount)
			s.Require().NotNil(got.Metadata)
			s.Equal(tt.wantTotal, got.Metadata.TotalRecords)

			if tt.wantState != "" {
				s.Equal(tt.wantState, got.Reservations[0].Status)
				s.Equal(first.Code, got.Reservations[0].ReservationCode)
			}
		})
	}
}

func (s *ReservationsTestSuite) TestListReservationsRepositoryFailure() {
	repo := new(mocks.MockReservationRepo)
	repo.On("GetAll", mock.Anything, mock.AnythingOfType("domain.ReservationFilters")).
		Return(nil, nil, errors.New("statement timeout"))

	app := newTestApplication(func(a *Application) { a.reservationRepo = repo })

	w, r := executeRequest(s.T(), http.MethodGet, "/reservations", nil)
	app.ListReservations(w, r, api.ListReservationsParams{})

	s.Equal(http.StatusInternalServerError, w.Code)
	repo.AssertExpectations(s.T())
}

func TestIdempotencySuite(t *testing.T) {
	suite.Run(t, new(IdempotencyTestSuite))
}

func (s *IdempotencyTestSuite) fingerprint() string {
	return bookingFingerprint(allocator.BookingRequest{
		FlightID:    s.request.FlightId,
		SeatID:      s.request.SeatId,
		PassengerID: s.request.PassengerId,
	})
}

func (s *IdempotencyTestSuite) storedRecord(record idempotentResponse) *redis.Cmd {
	data, err := json.Marshal(record)
	s.Require().NoError(err)

	return redis.NewCmdResult(string(data), nil)
}

func (s *IdempotencyTestSuite) send(key string) (int, http.Header, []byte) {
	w, r := executeRequest(s.T(), http.MethodPost, "/reservations", s.request)
	s.app.CreateReservation(w, r, api.CreateReservationParams{IdempotencyKey: &key})

	return w.Code, w.Header(), w.Body.Bytes()
}

func (s *IdempotencyTestSuite) reservation() *domain.Reservation {
	return &domain.Reservation{
		ID:          1,
		FlightID:    s.fixture.flight.ID,
		SeatID:      s.fixture.seats[0].ID,
		PassengerID: s.fixture.passenger.ID,
		Code:        "K7M2QX",
		Status:      domain.ReservationStatusPending,
		BookingDate: time.Date(2030, time.January, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:   time.Date(2030, time.January, 2, 3, 4, 5, 0, time.UTC),
	}
}

func (s *IdempotencyTestSuite) TestFirstRequestBooksAndStoresResponse() {
	s.redis.On("EvalSha", mock.Anything, mock.Anything, []string{s.key}, mock.Anything, mock.Anything).
		Return(redis.NewCmdResult(nil, redis.Nil))
	s.booking.On("AttemptBooking", mock.Anything, bookingOf(s.fixture, 0)).Return(s.reservation(), nil)
	s.redis.On("Set", mock.Anything, s.key, mock.MatchedBy(func(value []byte) bool {
		var record idempotentResponse
		return json.Unmarshal(value, &record) == nil &&
			record.Status == http.StatusCreated &&
			record.Fingerprint == s.fingerprint()
	}), time.Hour).Return(redis.NewStatusResult("OK", nil))

	status, headers, _ := s.send("order-7f3c")

	s.Equal(http.StatusCreated, status)
	s.Empty(headers.Get("Idempotent-Replayed"))
	s.redis.AssertExpectations(s.T())
	s.booking.AssertExpectations(s.T())
}

func (s *IdempotencyTestSuite) TestCompletedRequestIsReplayed() {
	body := []byte(`{"id":1,"reservationCode":"K7M2QX"}`)

	s.redis.On("EvalSha", mock.Anything, mock.Anything, []string{s.key}, mock.Anything, mock.Anything).
		Return(s.storedRecord(idempotentResponse{
			Fingerprint: s.fingerprint(),
			Status:      http.StatusCreated,
			Body:        body,
		}))

	status, headers, got := s.send("order-7f3c")

	s.Equal(http.StatusCreated, status)
	s.Equal("true", headers.Get("Idempotent-Replayed"))
	s.JSONEq(string(body), string(got))
	s.booking.AssertNotCalled(s.T(), "AttemptBooking", mock.Anything, mock.Anything)
}

func (s *IdempotencyTestSuite) TestKeyReusedWithDifferentBody() {
	s.redis.On("EvalSha", mock.Anything, mock.Anything, []string{s.key}, mock.Anything, mock.Anything).
		Return(s.storedRecord(idempotentResponse{Fingerprint: "another-request", Status: http.StatusCreated}))

	w, r := executeRequest(s.T(), http.MethodPost, "/reservations", s.request)
	s.app.CreateReservation(w, r, api.CreateReservationParams{IdempotencyKey: ptr("order-7f3c")})

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	checkErrorResponse(s.T(), w, errorExpectation{http.StatusUnprocessableEntity, CodeIdempotencyMismatch, ""})
	s.booking.AssertNotCalled(s.T(), "AttemptBooking", mock.Anything, mock.Anything)
}

func (s *IdempotencyTestSuite) TestRequestStillInFlight() {
	s.redis.On("EvalSha", mock.Anything, mock.Anything, []string{s.key}, mock.Anything, mock.Anything).
		Return(s.storedRecord(idempotentResponse{Fingerprint: s.fingerprint()}))

	w, r := executeRequest(s.T(), http.MethodPost, "/reservations", s.request)
	s.app.CreateReservation(w, r, api.CreateReservationParams{IdempotencyKey: ptr("order-7f3c")})

	s.Equal(http.StatusConflict, w.Code)
	checkErrorResponse(s.T(), w, errorExpectation{http.StatusConflict, CodeIdempotencyConflict, ""})
}

func (s *IdempotencyTestSuite) TestFailedBookingReleasesKey() {
	s.redis.On("EvalSha", mock.Anything, mock.Anything, []string{s.key}, mock.Anything, mock.Anything).
		Return(redis.NewCmdResult(nil, redis.Nil))
	s.booking.On("AttemptBooking", mock.Anything, mock.Anything).Return(nil, domain.ErrSeatUnavailable)
	s.redis.On("Del", mock.Anything, []string{s.key}).Return(redis.NewIntResult(1, nil))

	w, r := executeRequest(s.T(), http.MethodPost, "/reservations", s.request)
	s.app.CreateReservation(w, r, api.CreateReservationParams{IdempotencyKey: ptr("order-7f3c")})

	s.Equal(http.StatusConflict, w.Code)
	checkErrorResponse(s.T(), w, errorExpectation{http.StatusConflict, CodeSeatUnavailable, ""})
	s.redis.AssertExpectations(s.T())
	s.redis.AssertNotCalled(s.T(), "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *IdempotencyTestSuite) sendCanceled(key string) int {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w, r := executeRequest(s.T(), http.MethodPost, "/reservations", s.request)
	s.app.CreateReservation(w, r.WithContext(ctx), api.CreateReservationParams{IdempotencyKey: &key})

	return w.Code
}

func liveContext() any {
	return mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })
}

func (s *IdempotencyTestSuite) TestKeyReleasedAfterClientDisconnects() {
	s.redis.On("EvalSha", mock.Anything, mock.Anything, []string{s.key}, mock.Anything, mock.Anything).
		Return(redis.NewCmdResult(nil, redis.Nil))
	s.booking.On("AttemptBooking", mock.Anything, mock.Anything).Return(nil, context.Canceled)
	s.redis.On("Del", liveContext(), []string{s.key}).Return(redis.NewIntResult(1, nil))

	status := s.sendCanceled("order-7f3c")

	s.Equal(http.StatusInternalServerError, status)
	s.redis.AssertExpectations(s.T())
}

func (s *IdempotencyTestSuite) TestResponseStoredAfterClientDisconnects() {
	s.redis.On("EvalSha", mock.Anything, mock.Anything, []string{s.key}, mock.Anything, mock.Anything).
		Return(redis.NewCmdResult(nil, redis.Nil))
	s.booking.On("AttemptBooking", mock.Anything, mock.Anything).Return(s.reservation(), nil)
	s.redis.On("Set", liveContext(), s.key, mock.Anything, time.Hour).Return(redis.NewStatusResult("OK", nil))

	status := s.sendCanceled("order-7f3c")

	s.Equal(http.StatusCreated, status)
	s.redis.AssertExpectations(s.T())
}

func (s *IdempotencyTestSuite) TestScriptIsLoadedWhenMissing() {
	s.redis.On("EvalSha", mock.Anything, mock.Anything, []string{s.key}, mock.Anything, mock.Anything).
		Return(redis.NewCmdResult(nil, mocks.MockRedisError{Msg: "NOSCRIPT No matching script. Please use EVAL."}))
	s.redis.On("Eval", mock.Anything, mock.Anything, []string{s.key}, mock.Anything, mock.Anything).
		Return(redis.NewCmdResult(nil, redis.Nil))
	s.booking.On("AttemptBooking", mock.Anything, mock.Anything).Return(s.reservation(), nil)
	s.redis.On("Set", mock.Anything, s.key, mock.Anything, time.Hour).Return(redis.NewStatusResult("OK", nil))

	status, _, _ := s.send("order-7f3c")

	s.Equal(http.StatusCreated, status)
	s.redis.AssertExpectations(s.T())
}

func (s *IdempotencyTestSuite) TestRedisFailure() {
	s.redis.On("EvalSha", mock.Anything, mock.Anything, []string{s.key}, mock.Anything, mock.Anything).
		Return(redis.NewCmdResult(nil, errors.New("connection refused")))

	status, _, _ := s.send("order-7f3c")

	s.Equal(http.StatusInternalServerError, status)
	s.booking.AssertNotCalled(s.T(), "AttemptBooking", mock.Anything, mock.Anything)
}

func (s *IdempotencyTestSuite) TestBlankKeyIsRejected() {
	status, _, _ := s.send("   ")

	s.Equal(http.StatusBadRequest, status)
	s.redis.AssertNotCalled(s.T(), "EvalSha")
}
