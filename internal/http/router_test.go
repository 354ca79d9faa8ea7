package http_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"candor/internal/config"
	"candor/internal/handler"
	transport "candor/internal/http"
	"candor/internal/model"
	"candor/internal/service"
)

type serviceStub struct {
	result service.Result
	err    error
}

func (s *serviceStub) Translate(ctx context.Context, clientKey, phrase string) (service.Result, error) {
	if s.err != nil {
		return service.Result{}, s.err
	}
	return s.result, nil
}

func (s *serviceStub) History(ctx context.Context, limit int) ([]model.TranslationRecord, error) {
	return nil, nil
}

func newRouter(stub *serviceStub, origin string) *echo.Echo {
	h := handler.NewTranslateHandler(stub, config.Config{})
	return transport.NewRouter(h, origin)
}

func TestRouter_Preflight(t *testing.T) {
	router := newRouter(&serviceStub{}, "https://app.example.com")

	req := httptest.NewRequest(nethttp.MethodOptions, "/api/translate", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, nethttp.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusNoContent, rec.Code)
	require.Equal(t, "https://app.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	require.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), nethttp.MethodPost)
}

func TestRouter_CORSRestrictsOrigin(t *testing.T) {
	router := newRouter(&serviceStub{}, "https://app.example.com")

	req := httptest.NewRequest(nethttp.MethodOptions, "/api/translate", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, nethttp.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// The requesting origin is never echoed back when it does not match.
	require.NotEqual(t, "https://evil.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newRouter(&serviceStub{}, "*")

	req := httptest.NewRequest(nethttp.MethodDelete, "/api/translate", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusMethodNotAllowed, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["error"])
}

func TestRouter_TranslateEndToEnd(t *testing.T) {
	stub := &serviceStub{result: service.Result{
		Translation: "We will ignore this forever.",
		Model:       "test-model",
		Store:       service.StoreOutcome{OK: true},
	}}
	router := newRouter(stub, "*")

	req := httptest.NewRequest(nethttp.MethodPost, "/api/translate", strings.NewReader(`{"phrase":"let's circle back"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "We will ignore this forever.", body["translation"])
}
