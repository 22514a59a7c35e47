package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"luna/config"
	"luna/infras/otel/mocks"
	"luna/transport/http/middleware"
	"luna/transport/http/router"
)

func newTestServer() *HTTP {
	cfg := &config.Config{}
	ot := mocks.NewOtel()

	return New(cfg, router.New(router.DomainHandlers{}), middleware.NewAppMiddleware(ot, cfg), ot)
}

func TestHTTP_Readiness(t *testing.T) {
	server := newTestServer()

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, ServerStateReady, server.State())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	server.setState(ServerStateInGracePeriod)

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
