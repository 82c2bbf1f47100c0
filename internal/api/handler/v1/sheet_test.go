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

	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/service"
)

type stubSheetService struct {
	generateSheets []domain.Sheet
	generateErr    error

	exportSheet domain.Sheet
	exportSVG   []byte
	exportErr   error

	deleteErr error

	gotLevel       domain.Level
	gotPackSize    domain.PackSize
	gotGenerations int
	gotBarcode     bool
}

func (s *stubSheetService) Generate(_ context.Context, level domain.Level, packSize domain.PackSize, generations int) ([]domain.Sheet, error) {
	s.gotLevel, s.gotPackSize, s.gotGenerations = level, packSize, generations

	return s.generateSheets, s.generateErr
}

func (s *stubSheetService) List(_ context.Context, _ *bool, _ *uint) ([]domain.Sheet, error) {
	return s.generateSheets, nil
}

func (s *stubSheetService) Get(_ context.Context, _ uint) (domain.Sheet, error) {
	return s.exportSheet, s.exportErr
}

func (s *stubSheetService) Export(_ context.Context, _ uint, barcode bool) (domain.Sheet, []byte, error) {
	s.gotBarcode = barcode

	return s.exportSheet, s.exportSVG, s.exportErr
}

func (s *stubSheetService) Delete(_ context.Context, _ uint) error {
	return s.deleteErr
}

func newSheetTestRouter(svc SheetService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewSheetHandler(svc)
	router.GET("/sheets", h.HandleListSheets)
	router.POST("/sheets/generate", h.HandleGenerateSheets)
	router.GET("/sheets/:sheetID", h.HandleGetSheet)
	router.GET("/sheets/:sheetID/render", h.HandleExportSheet)
	router.DELETE("/sheets/:sheetID", h.HandleDeleteSheet)

	return router
}

func TestHandleGenerateSheets(t *testing.T) {
	svc := &stubSheetService{generateSheets: []domain.Sheet{
		{ID: 1, Level: "P", PackSize: 24, StartNumber: 1, EndNumber: 24, Year: 25},
		{ID: 2, Level: "P", PackSize: 24, StartNumber: 25, EndNumber: 48, Year: 25},
	}}
	router := newSheetTestRouter(svc)

	body := `{"level":"P","pack_size":24,"generations":2}`
	req := httptest.NewRequest(http.MethodPost, "/sheets/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, domain.Level("P"), svc.gotLevel)
	assert.Equal(t, domain.PackSize(24), svc.gotPackSize)
	assert.Equal(t, 2, svc.gotGenerations)

	var sheets []domain.Sheet
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &sheets))
	require.Len(t, sheets, 2)
	assert.Equal(t, 25, sheets[1].StartNumber)
}

func TestHandleGenerateSheets_ValidationRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown level", `{"level":"Z","pack_size":24,"generations":1}`},
		{"bad pack size", `{"level":"P","pack_size":10,"generations":1}`},
		{"zero generations", `{"level":"P","pack_size":24,"generations":0}`},
		{"malformed json", `{"level":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubSheetService{}
			router := newSheetTestRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/sheets/generate", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Zero(t, svc.gotGenerations, "service must not be called on invalid input")
		})
	}
}

func TestHandleGenerateSheets_SpaceExhausted(t *testing.T) {
	svc := &stubSheetService{generateErr: service.ErrSerialSpaceExhausted}
	router := newSheetTestRouter(svc)

	body := `{"level":"P","pack_size":24,"generations":1}`
	req := httptest.NewRequest(http.MethodPost, "/sheets/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "yearly ticket limit exceeded")
}

func TestHandleExportSheet(t *testing.T) {
	svc := &stubSheetService{
		exportSheet: domain.Sheet{ID: 3, Level: "P", StartNumber: 25},
		exportSVG:   []byte("<svg></svg>"),
	}
	router := newSheetTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/sheets/3/render?barcode=true", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, svc.gotBarcode)
	assert.Equal(t, "image/svg+xml", resp.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="sheet-P-25.svg"`, resp.Header().Get("Content-Disposition"))
	assert.Equal(t, "<svg></svg>", resp.Body.String())
}

func TestHandleExportSheet_NotFound(t *testing.T) {
	svc := &stubSheetService{exportErr: service.ErrSheetNotFound}
	router := newSheetTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/sheets/99/render", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandleDeleteSheet_AssignedSheet(t *testing.T) {
	svc := &stubSheetService{deleteErr: service.ErrSheetAlreadyAssigned}
	router := newSheetTestRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/sheets/3", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleGetSheet_BadID(t *testing.T) {
	router := newSheetTestRouter(&stubSheetService{})

	req := httptest.NewRequest(http.MethodGet, "/sheets/abc", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
