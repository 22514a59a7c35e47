package health

import (
	"context"
	"net/http"
	"time"

	"luna/infras/postgres"
	"luna/transport/http/response"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	statusUp   = "up"
	statusDown = "down"

	pingTimeout = 2 * time.Second
)

type Handler struct {
	db    *postgres.Connection
	redis *goRedis.Client
}

func New(db *postgres.Connection, redis *goRedis.Client) Handler {
	return Handler{
		db:    db,
		redis: redis,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

type Response struct {
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}

// Health pings the backing stores.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Response] "All dependencies reachable"
// @Failure 503 {object} response.Message
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	res := Response{Postgres: statusUp, Redis: statusUp}
	healthy := true

	if err := handler.db.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("postgres health check failed")

		res.Postgres = statusDown
		healthy = false
	}

	if err := handler.redis.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("redis health check failed")

		res.Redis = statusDown
		healthy = false
	}

	if !healthy {
		response.WithUnhealthy(w)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
