//go:build wireinject
// +build wireinject

package di

import (
	"grandhotel/config"
	"grandhotel/infras/completion"
	"grandhotel/infras/jwt"
	"grandhotel/infras/kafka"
	"grandhotel/infras/mailer"
	"grandhotel/infras/otel"
	"grandhotel/infras/postgres"
	"grandhotel/infras/redis"
	"grandhotel/permissions"
	"grandhotel/shared/cache"
	"grandhotel/transport/http"
	"grandhotel/transport/http/middleware"
	"grandhotel/transport/http/router"

	"github.com/google/wire"

	assistantService "grandhotel/internal/domains/assistant/service"
	authService "grandhotel/internal/domains/auth/service"
	bookingRepository "grandhotel/internal/domains/booking/repository"
	bookingService "grandhotel/internal/domains/booking/service"
	guestRepository "grandhotel/internal/domains/guest/repository"
	guestService "grandhotel/internal/domains/guest/service"
	roomRepository "grandhotel/internal/domains/room/repository"
	roomService "grandhotel/internal/domains/room/service"
	userRepository "grandhotel/internal/domains/user/repository"
	userService "grandhotel/internal/domains/user/service"

	assistantHandler "grandhotel/internal/handlers/assistant"
	authHandler "grandhotel/internal/handlers/auth"
	bookingHandler "grandhotel/internal/handlers/booking"
	guestHandler "grandhotel/internal/handlers/guest"
	roomHandler "grandhotel/internal/handlers/room"
	userHandler "grandhotel/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	completion.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var assistantDomain = wire.NewSet(
	assistantService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var domains = wire.NewSet(
	roomDomain,
	guestDomain,
	bookingDomain,
	assistantDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
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
