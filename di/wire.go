//go:build wireinject
// +build wireinject

package di

import (
	"scoop/config"
	"scoop/infras/jwt"
	"scoop/infras/kafka"
	"scoop/infras/otel"
	"scoop/infras/payment"
	"scoop/infras/postgres"
	"scoop/infras/redis"
	"scoop/permissions"
	"scoop/shared/cache"
	"scoop/transport/http"
	"scoop/transport/http/middleware"
	"scoop/transport/http/router"

	bookingService "scoop/internal/domains/booking/service"
	lifecycleService "scoop/internal/domains/lifecycle/service"
	seriesService "scoop/internal/domains/series/service"
	slotRepository "scoop/internal/domains/slot/repository"
	slotService "scoop/internal/domains/slot/service"
	visitRepository "scoop/internal/domains/visit/repository"
	visitService "scoop/internal/domains/visit/service"

	bookingHandler "scoop/internal/handlers/booking"
	lifecycleHandler "scoop/internal/handlers/lifecycle"
	slotHandler "scoop/internal/handlers/slot"
	visitHandler "scoop/internal/handlers/visit"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	payment.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var slotDomain = wire.NewSet(
	slotRepository.New,
	slotService.New,
)

var visitDomain = wire.NewSet(
	visitRepository.New,
	visitService.New,
	seriesService.New,
)

var bookingDomain = wire.NewSet(
	bookingService.New,
	lifecycleService.New,
)

var domains = wire.NewSet(
	slotDomain,
	visitDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	slotHandler.New,
	bookingHandler.New,
	visitHandler.New,
	lifecycleHandler.New,
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
