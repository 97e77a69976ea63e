package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
	"attendance-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceService struct {
	scanResult *service.ScanResult
	scanErr    error
	lastScan   service.ScanRequest
}

func (s *stubAttendanceService) Scan(_ context.Context, req service.ScanRequest) (*service.ScanResult, error) {
	s.lastScan = req
	return s.scanResult, s.scanErr
}

func (s *stubAttendanceService) List(context.Context, repository.AttendanceFilter, int, int) ([]model.AttendanceRecord, int64, error) {
	return nil, 0, nil
}

func (s *stubAttendanceService) ListForUser(context.Context, string, int, int) ([]model.AttendanceRecord, int64, error) {
	return nil, 0, nil
}

func (s *stubAttendanceService) Monthly(context.Context, string, string) ([]model.AttendanceRecord, error) {
	return nil, nil
}

func (s *stubAttendanceService) Today(context.Context) ([]model.AttendanceRecord, error) {
	return nil, nil
}

func (s *stubAttendanceService) MarkAbsent(context.Context, service.MarkAbsentRequest) (*service.MarkAbsentResult, error) {
	return &service.MarkAbsentResult{}, nil
}

func newScanRouter(stub *stubAttendanceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAttendanceHandler(stub)
	router.POST("/attendance/scan", h.Scan)
	return router
}

func TestScanEndpointMissingUIDIsBadRequest(t *testing.T) {
	stub := &stubAttendanceService{scanErr: service.ErrUIDRequired}
	router := newScanRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/attendance/scan", strings.NewReader(`{"uid":""}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScanEndpointBusinessRejectionIsOK(t *testing.T) {
	stub := &stubAttendanceService{scanResult: &service.ScanResult{
		Success: false,
		Reason:  service.ReasonInvalidCard,
		Message: "Card is not registered to any active user",
	}}
	router := newScanRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/attendance/scan", strings.NewReader(`{"uid":"DEADBEEF"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// Unknown cards are a business outcome for the terminal, not an HTTP error.
	require.Equal(t, http.StatusOK, w.Code)

	var body service.ScanResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, service.ReasonInvalidCard, body.Reason)
	assert.Equal(t, "DEADBEEF", stub.lastScan.UID)
}

func TestScanEndpointSuccessPassesDeviceTime(t *testing.T) {
	stub := &stubAttendanceService{scanResult: &service.ScanResult{
		Success: true,
		Type:    model.ScanIn,
		Name:    "Asha Rao",
		Time:    "09:00 AM",
		Date:    "2025-06-09",
		Message: "Check-In Done",
	}}
	router := newScanRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/attendance/scan",
		strings.NewReader(`{"uid":"04 A1 B2","deviceTime":"2025-06-09T09:00:00+05:30"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "04 A1 B2", stub.lastScan.UID)
	assert.Equal(t, "2025-06-09T09:00:00+05:30", stub.lastScan.DeviceTime)

	var body service.ScanResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, model.ScanIn, body.Type)
}
