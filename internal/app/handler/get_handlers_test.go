package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/Anshvachhani998/Terdl-api/internal/app/service"
	"github.com/Anshvachhani998/Terdl-api/internal/mocks"
	"github.com/Anshvachhani998/Terdl-api/internal/storage"
)

func newTestGetHandler(t *testing.T) (*GetHandler, *mocks.MockVideoServiceIface) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockVideoServiceIface(ctrl)

	return NewGet(mockService, zap.NewNop()), mockService
}

func TestHome(t *testing.T) {
	handler, _ := newTestGetHandler(t)

	rr := httptest.NewRecorder()
	handler.Home(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "/shorten?url=VIDEO_LINK")
}

func TestShortRedirect(t *testing.T) {
	handler, _ := newTestGetHandler(t)

	r := chi.NewRouter()
	r.Get("/s/{id}", handler.ShortRedirect)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/s/7", nil))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/player?vid=7", rr.Header().Get("Location"))
}

func TestPlayer(t *testing.T) {
	handler, mockService := newTestGetHandler(t)

	mockService.EXPECT().
		ResolvePlayer(gomock.Any(), int64(5)).
		Return(service.PlayerPage{URL: "http://example.com/v.mp4", Filename: "movie.mp4"}).
		Times(1)

	rr := httptest.NewRecorder()
	handler.Player(rr, httptest.NewRequest(http.MethodGet, "/player?vid=5", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "http://example.com/v.mp4")
	assert.Contains(t, rr.Body.String(), "movie.mp4")
}

func TestPlayer_ExpiredPage(t *testing.T) {
	handler, mockService := newTestGetHandler(t)

	mockService.EXPECT().
		ResolvePlayer(gomock.Any(), int64(0)).
		Return(service.PlayerPage{URL: service.ExpiredURL, Filename: service.ExpiredLabel}).
		Times(1)

	// No vid at all still renders a page
	rr := httptest.NewRecorder()
	handler.Player(rr, httptest.NewRequest(http.MethodGet, "/player", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), service.ExpiredLabel)
}

func TestPlayer_RawURL(t *testing.T) {
	// ?url= plays the link directly; the resolver must not be consulted.
	handler, _ := newTestGetHandler(t)

	rr := httptest.NewRecorder()
	handler.Player(rr, httptest.NewRequest(http.MethodGet, "/player?url=http%3A%2F%2Fexample.com%2Fv.mp4&name=movie.mp4", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "http://example.com/v.mp4")
	assert.Contains(t, rr.Body.String(), "movie.mp4")
}

func TestPlayer_RawURL_BadScheme(t *testing.T) {
	handler, mockService := newTestGetHandler(t)

	// An invalid raw URL falls back to id resolution, and no vid means the
	// Expired page.
	mockService.EXPECT().
		ResolvePlayer(gomock.Any(), int64(0)).
		Return(service.PlayerPage{URL: service.ExpiredURL, Filename: service.ExpiredLabel}).
		Times(1)

	rr := httptest.NewRecorder()
	handler.Player(rr, httptest.NewRequest(http.MethodGet, "/player?url=ftp%3A%2F%2Fbad", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), service.ExpiredLabel)
}

func TestDownload(t *testing.T) {
	handler, mockService := newTestGetHandler(t)

	mockService.EXPECT().
		ResolvePlayer(gomock.Any(), int64(3)).
		Return(service.PlayerPage{URL: "http://example.com/v.mp4", Filename: "movie.mp4"}).
		Times(1)

	r := chi.NewRouter()
	r.Get("/{filename}/download/{id}", handler.Download)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/movie.mp4/download/3", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "http://example.com/v.mp4")
}

func TestDownload_NonIntegerID(t *testing.T) {
	handler, _ := newTestGetHandler(t)

	r := chi.NewRouter()
	r.Get("/{filename}/download/{id}", handler.Download)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/movie.mp4/download/abc", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Valid URL",
			target:       "/api?url=http://example.com/v.mp4",
			expectedCode: http.StatusOK,
			expectedBody: `{"success":true,"download_link":"http://example.com/v.mp4"}`,
		},
		{
			name:         "Missing URL",
			target:       "/api",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"No URL provided. Use ?url=VIDEO_LINK"}`,
		},
		{
			name:         "Invalid URL",
			target:       "/api?url=ftp://bad",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid URL. Only HTTP/HTTPS URLs are allowed."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newTestGetHandler(t)

			rr := httptest.NewRecorder()
			handler.API(rr, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestPing(t *testing.T) {
	handler, mockService := newTestGetHandler(t)

	mockService.EXPECT().
		PingContext(gomock.Any()).
		Return(nil).
		Times(1)

	rr := httptest.NewRecorder()
	handler.Ping(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestStats(t *testing.T) {
	handler, mockService := newTestGetHandler(t)

	mockService.EXPECT().
		GetStats(gomock.Any()).
		Return(storage.StatsRecord{Videos: 4}, nil).
		Times(1)

	rr := httptest.NewRecorder()
	handler.Stats(rr, httptest.NewRequest(http.MethodGet, "/api/internal/stats", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"videos":4}`, rr.Body.String())
}
