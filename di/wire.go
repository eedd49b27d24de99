//go:build wireinject
// +build wireinject

package di

import (
	"stayhub/config"
	"stayhub/infras/jwt"
	"stayhub/infras/kafka"
	"stayhub/infras/mailer"
	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	"stayhub/infras/redis"
	"stayhub/infras/s3"
	"stayhub/internal/events"
	"stayhub/internal/scheduler"
	"stayhub/permissions"
	"stayhub/shared/cache"
	"stayhub/transport/http"
	"stayhub/transport/http/middleware"
	"stayhub/transport/http/router"

	authService "stayhub/internal/domains/auth/service"
	bookingRepository "stayhub/internal/domains/booking/repository"
	bookingService "stayhub/internal/domains/booking/service"
	propertyRepository "stayhub/internal/domains/property/repository"
	propertyService "stayhub/internal/domains/property/service"
	reportRepository "stayhub/internal/domains/report/repository"
	reportService "stayhub/internal/domains/report/service"
	reviewRepository "stayhub/internal/domains/review/repository"
	reviewService "stayhub/internal/domains/review/service"
	roomTypeRepository "stayhub/internal/domains/roomtype/repository"
	roomTypeService "stayhub/internal/domains/roomtype/service"
	userRepository "stayhub/internal/domains/user/repository"
	userService "stayhub/internal/domains/user/service"

	authHandler "stayhub/internal/handlers/auth"
	bookingHandler "stayhub/internal/handlers/booking"
	propertyHandler "stayhub/internal/handlers/property"
	reportHandler "stayhub/internal/handlers/report"
	reviewHandler "stayhub/internal/handlers/review"
	roomTypeHandler "stayhub/internal/handlers/roomtype"
	userHandler "stayhub/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	permissions.Get,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var roomTypeDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	events.NewPublisher,
)

var reportDomain = wire.NewSet(
	reportRepository.New,
	reportService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	propertyDomain,
	roomTypeDomain,
	bookingDomain,
	reportDomain,
	reviewDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	propertyHandler.New,
	roomTypeHandler.New,
	bookingHandler.New,
	reportHandler.New,
	reviewHandler.New,
	router.New,
)

var background = wire.NewSet(
	scheduler.New,
	events.NewConsumer,
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

func InitializeApp() (*App, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		background,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}, nil
}
