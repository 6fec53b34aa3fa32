package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"location-agent/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter() (*gin.Engine, *MockLocationService, *MockDirectionsService) {
	gin.SetMode(gin.TestMode)
	locSvc := new(MockLocationService)
	dirSvc := new(MockDirectionsService)
	return NewRouter(NewLocationHandler(locSvc), NewDirectionsHandler(dirSvc)), locSvc, dirSvc
}

func TestRouter_Health(t *testing.T) {
	r, _, _ := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRouter_RequestIDIsEchoed(t *testing.T) {
	r, _, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRouter_RequestIDTooLongIsReplaced(t *testing.T) {
	r, _, _ := newTestRouter()

	long := strings.Repeat("a", maxRequestIDLength+1)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, long)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	id := w.Header().Get(RequestIDHeader)
	assert.NotEqual(t, long, id)
	assert.NotEmpty(t, id)
	assert.LessOrEqual(t, len(id), maxRequestIDLength)
}

func TestRouter_RequestIDAtLimitIsKept(t *testing.T) {
	r, _, _ := newTestRouter()

	id := strings.Repeat("b", maxRequestIDLength)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, id)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, id, w.Header().Get(RequestIDHeader))
}

func TestRouter_Routes(t *testing.T) {
	r, locSvc, dirSvc := newTestRouter()

	locSvc.On("AutoLocate", mock.Anything, "").Return(models.AutoLocation{City: "Lagos"})
	locSvc.On("Locate", mock.Anything, "Yaba").Return(&models.ResolvedLocation{Address: "Yaba"}, nil)
	dirSvc.On("Directions", mock.Anything, "Yaba", "Ikeja").Return(&models.JourneyEstimate{DistanceKm: 10.1}, nil)

	for _, target := range []string{"/location/auto", "/location?q=Yaba", "/directions?origin=Yaba&destination=Ikeja"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, w.Code, target)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/directions?origin=Yaba", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "destination")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/directions?origin=%20%20&destination=Lekki", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	locSvc.AssertExpectations(t)
	dirSvc.AssertExpectations(t)
}
