package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketwise/api/internal/api/handler/v1/response"
	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/service"
)

type stubTicketService struct {
	tickets []domain.Ticket
	listErr error

	updated     int64
	validateErr error

	gotFamilyID uint
	gotCodes    []string
	gotUsed     bool
}

func (s *stubTicketService) ListByFamily(_ context.Context, familyID uint) ([]domain.Ticket, error) {
	s.gotFamilyID = familyID

	return s.tickets, s.listErr
}

func (s *stubTicketService) Validate(_ context.Context, familyID uint, codes []string, used bool) (int64, error) {
	s.gotFamilyID, s.gotCodes, s.gotUsed = familyID, codes, used

	return s.updated, s.validateErr
}

func newTicketTestRouter(svc TicketService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewTicketHandler(svc)
	router.GET("/families/:familyID/tickets", h.HandleListFamilyTickets)
	router.POST("/families/:familyID/tickets/validate", h.HandleValidateTickets)

	return router
}

func TestHandleListFamilyTickets(t *testing.T) {
	svc := &stubTicketService{tickets: []domain.Ticket{
		{Code: "P-250001", SheetID: 1, FamilyID: 7},
		{Code: "P-250002", SheetID: 1, FamilyID: 7, IsUsed: true},
	}}
	router := newTicketTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/families/7/tickets", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, uint(7), svc.gotFamilyID)

	var tickets []domain.Ticket
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tickets))
	require.Len(t, tickets, 2)
	assert.Equal(t, "P-250001", tickets[0].Code)
	assert.True(t, tickets[1].IsUsed)
}

func TestHandleListFamilyTickets_UnknownFamily(t *testing.T) {
	svc := &stubTicketService{listErr: service.ErrFamilyNotFound}
	router := newTicketTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/families/42/tickets", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandleValidateTickets(t *testing.T) {
	svc := &stubTicketService{updated: 2}
	router := newTicketTestRouter(svc)

	body := `{"codes":["P-250001","P-250002","P-259999"],"used":true}`
	req := httptest.NewRequest(http.MethodPost, "/families/7/tickets/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, uint(7), svc.gotFamilyID)
	assert.Equal(t, []string{"P-250001", "P-250002", "P-259999"}, svc.gotCodes)
	assert.True(t, svc.gotUsed)

	var result response.ValidateTicketsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	assert.Equal(t, 3, result.Requested)
	assert.Equal(t, int64(2), result.Updated)
}

func TestHandleValidateTickets_EmptyCodes(t *testing.T) {
	svc := &stubTicketService{}
	router := newTicketTestRouter(svc)

	body := `{"codes":[],"used":true}`
	req := httptest.NewRequest(http.MethodPost, "/families/7/tickets/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Empty(t, svc.gotCodes, "service must not be called on invalid input")
}
