package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"luna/config"
	"luna/infras/otel/mocks"
	"luna/shared"
	"luna/shared/constant"
	"luna/transport/http/middleware"
)

func newMiddleware(cfg *config.Config) middleware.AppMiddleware {
	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg)
}

func TestAppMiddleware_Actor(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "missing header", header: "", want: constant.ContextGuest},
		{name: "blank header", header: "   ", want: constant.ContextGuest},
		{name: "operator", header: " ops@luna.ng ", want: "ops@luna.ng"},
		{name: "truncated", header: strings.Repeat("a", 80), want: strings.Repeat("a", 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string

			handler := newMiddleware(&config.Config{}).Actor(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = shared.Actor(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/properties", nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderActor, tt.header)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppMiddleware_TracingAndLogging(t *testing.T) {
	mw := newMiddleware(&config.Config{})

	handler := mw.Tracing(mw.RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestAppMiddleware_CORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("disabled", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/properties", nil)
		req.Header.Set("Origin", "https://luna.ng")

		newMiddleware(&config.Config{}).CORS()(next).ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("enabled", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.App.CORS.Enable = true
		cfg.App.CORS.AllowedOrigins = []string{"https://luna.ng"}
		cfg.App.CORS.AllowedMethods = []string{http.MethodGet}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/properties", nil)
		req.Header.Set("Origin", "https://luna.ng")

		newMiddleware(cfg).CORS()(next).ServeHTTP(rec, req)

		assert.Equal(t, "https://luna.ng", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
