package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/metinatakli/airline-reservation-system/api"
	"github.com/metinatakli/airline-reservation-system/internal/domain"
	"github.com/metinatakli/airline-reservation-system/internal/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TicketsTestSuite struct {
	suite.Suite
	app     *Application
	fixture fixture
}

func (s *TicketsTestSuite) SetupTest() {
	s.app = newTestApplication()
	s.fixture = seedFixture(s.T(), s.app, 2, "4F", "4E")
}

func TestTicketsSuite(t *testing.T) {
	suite.Run(t, new(TicketsTestSuite))
}

func (s *TicketsTestSuite) book(status domain.ReservationStatus) *domain.Reservation {
	req := bookingOf(s.fixture, 0)
	req.Status = status

	reservation, err := s.app.booking.AttemptBooking(context.Background(), req)
	s.Require().NoError(err)

	return reservation
}

func (s *TicketsTestSuite) issue(reservationID int) api.TicketResponse {
	w, r := executeRequest(s.T(), http.MethodPost, "/reservations/id/ticket", nil)
	s.app.IssueTicket(w, r, reservationID)
	s.Require().Equal(http.StatusCreated, w.Code)

	return decodeJSON[api.TicketResponse](s.T(), w)
}

func (s *TicketsTestSuite) TestIssueTicket() {
	tests := []struct {
		name       string
		status     domain.ReservationStatus
		issueFirst bool
		wantStatus int
		wantCode   string
	}{
		{name: "should issue ticket for confirmed reservation", status: domain.ReservationStatusConfirmed, wantStatus: http.StatusCreated},
		{name: "should fail when reservation is pending", status: domain.ReservationStatusPending, wantStatus: http.StatusConflict, wantCode: CodeNotConfirmed},
		{name: "should fail when ticket was already issued", status: domain.ReservationStatusConfirmed, issueFirst: true, wantStatus: http.StatusConflict, wantCode: CodeTicketIssued},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			reservation := s.book(tt.status)

			if tt.issueFirst {
				s.issue(reservation.ID)
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/reservations/id/ticket", nil)
			s.app.IssueTicket(w, r, reservation.ID)

			s.Equal(tt.wantStatus, w.Code)
			checkErrorResponse(s.T(), w, errorExpectation{tt.wantStatus, tt.wantCode, ""})

			if tt.wantStatus == http.StatusCreated {
				got := decodeJSON[api.TicketResponse](s.T(), w)
				s.Equal(reservation.ID, got.ReservationId)
				s.True(strings.HasPrefix(got.TicketCode, "TKT-"+reservation.Code+"-"), got.TicketCode)
				s.False(got.IsCheckedIn)
				s.Equal("/tickets/"+got.TicketCode, w.Header().Get("Location"))
			}
		})
	}
}

func (s *TicketsTestSuite) TestIssueTicketForUnknownReservation() {
	w, r := executeRequest(s.T(), http.MethodPost, "/reservations/id/ticket", nil)
	s.app.IssueTicket(w, r, 31)

	s.Equal(http.StatusNotFound, w.Code)
	checkErrorResponse(s.T(), w, errorExpectation{http.StatusNotFound, CodeNotFound, "Reservation not found"})
}

func (s *TicketsTestSuite) TestGetTicket() {
	reservation := s.book(domain.ReservationStatusConfirmed)
	ticket := s.issue(reservation.ID)

	tests := []struct {
		name           string
		code           string
		wantStatus     int
		wantErrMessage string
	}{
		{name: "should return ticket detail", code: ticket.TicketCode, wantStatus: http.StatusOK},
		{name: "should accept lowercase code", code: strings.ToLower(ticket.TicketCode), wantStatus: http.StatusOK},
		{name: "should fail when ticket is unknown", code: "TKT-AAAAAA-0000", wantStatus: http.StatusNotFound, wantErrMessage: "Ticket not found"},
		{name: "should fail when code is blank", code: "  ", wantStatus: http.StatusBadRequest, wantErrMessage: "ticket code is invalid"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w, r := executeRequest(s.T(), http.MethodGet, "/tickets/code", nil)
			s.app.GetTicket(w, r, tt.code)

			s.Equal(tt.wantStatus, w.Code)
			checkErrorResponse(s.T(), w, errorExpectation{tt.wantStatus, "", tt.wantErrMessage})

			if tt.wantStatus == http.StatusOK {
				got := decodeJSON[api.TicketDetailResponse](s.T(), w)
				s.Equal(ticket.TicketCode, got.TicketCode)
				s.Equal(reservation.Code, got.ReservationCode)
				s.Equal(api.Confirmed, got.ReservationStatus)
				s.Equal("4F", got.SeatNumber)
				s.Equal("Istanbul", got.OriginCity)
				s.Equal("Ada Lovelace", got.PassengerName)
			}
		})
	}
}

func (s *TicketsTestSuite) TestCheckInTicket() {
	reservation := s.book(domain.ReservationStatusConfirmed)
	ticket := s.issue(reservation.ID)

	for _, name := range []string{"first check-in", "repeated check-in"} {
		s.Run(name, func() {
			w, r := executeRequest(s.T(), http.MethodPost, "/tickets/code/check-in", nil)
			s.app.CheckInTicket(w, r, ticket.TicketCode)

			s.Equal(http.StatusOK, w.Code)
			got := decodeJSON[api.TicketResponse](s.T(), w)
			s.True(got.IsCheckedIn)
		})
	}
}

func (s *TicketsTestSuite) TestCheckInAfterCancellation() {
	reservation := s.book(domain.ReservationStatusConfirmed)
	ticket := s.issue(reservation.ID)

	_, err := s.app.booking.Cancel(context.Background(), reservation.ID)
	s.Require().NoError(err)

	w, r := executeRequest(s.T(), http.MethodPost, "/tickets/code/check-in", nil)
	s.app.CheckInTicket(w, r, ticket.TicketCode)

	s.Equal(http.StatusConflict, w.Code)
	checkErrorResponse(s.T(), w, errorExpectation{http.StatusConflict, CodeNotConfirmed, "Reservation is not confirmed"})
}

func (s *TicketsTestSuite) TestGetTicketRepositoryFailure() {
	repo := new(mocks.MockTicketRepo)
	repo.On("GetDetailByCode", mock.Anything, "TKT-K7M2QX-00AF").Return(nil, errors.New("connection refused"))

	app := newTestApplication(func(a *Application) { a.ticketRepo = repo })

	w, r := executeRequest(s.T(), http.MethodGet, "/tickets/code", nil)
	app.GetTicket(w, r, "tkt-k7m2qx-00af")

	s.Equal(http.StatusInternalServerError, w.Code)
	repo.AssertExpectations(s.T())
}
