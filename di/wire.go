//go:build wireinject
// +build wireinject

package di

import (
	"luna/config"
	"luna/infras/gemini"
	"luna/infras/kafka"
	"luna/infras/otel"
	"luna/infras/postgres"
	"luna/infras/redis"
	"luna/infras/s3"
	"luna/shared/cache"
	"luna/transport/http"
	"luna/transport/http/middleware"
	"luna/transport/http/router"

	assistantService "luna/internal/domains/assistant/service"
	bookingRepository "luna/internal/domains/booking/repository"
	bookingService "luna/internal/domains/booking/service"
	checkoutGateway "luna/internal/domains/checkout/gateway"
	checkoutRepository "luna/internal/domains/checkout/repository"
	checkoutService "luna/internal/domains/checkout/service"
	propertyRepository "luna/internal/domains/property/repository"
	propertyService "luna/internal/domains/property/service"

	assistantHandler "luna/internal/handlers/assistant"
	bookingHandler "luna/internal/handlers/booking"
	checkoutHandler "luna/internal/handlers/checkout"
	healthHandler "luna/internal/handlers/health"
	propertyHandler "luna/internal/handlers/property"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
	gemini.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var checkoutDomain = wire.NewSet(
	checkoutRepository.New,
	checkoutGateway.NewSimulated,
	checkoutService.New,
)

var assistantDomain = wire.NewSet(
	assistantService.New,
)

var domains = wire.NewSet(
	propertyDomain,
	bookingDomain,
	checkoutDomain,
	assistantDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	propertyHandler.New,
	bookingHandler.New,
	checkoutHandler.New,
	assistantHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
