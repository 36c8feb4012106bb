//go:build wireinject
// +build wireinject

package di

import (
	"dormy/config"
	"dormy/infras/jwt"
	"dormy/infras/kafka"
	"dormy/infras/mailer"
	infraMongo "dormy/infras/mongo"
	"dormy/infras/otel"
	"dormy/infras/postgres"
	"dormy/infras/redis"
	"dormy/infras/s3"
	"dormy/internal/events"
	"dormy/permissions"
	"dormy/shared/cache"
	"dormy/transport/http"
	"dormy/transport/http/middleware"
	"dormy/transport/http/router"

	"github.com/google/wire"
	goRedis "github.com/redis/go-redis/v9"

	authService "dormy/internal/domains/auth/service"
	likeService "dormy/internal/domains/like/service"
	listingRepository "dormy/internal/domains/listing/repository"
	listingService "dormy/internal/domains/listing/service"
	mediaService "dormy/internal/domains/media/service"
	otpService "dormy/internal/domains/otp/service"
	otpStore "dormy/internal/domains/otp/store"
	reservationRepository "dormy/internal/domains/reservation/repository"
	reservationService "dormy/internal/domains/reservation/service"
	userRepository "dormy/internal/domains/user/repository"
	userService "dormy/internal/domains/user/service"
	verificationRepository "dormy/internal/domains/verification/repository"
	verificationService "dormy/internal/domains/verification/service"

	authHandler "dormy/internal/handlers/auth"
	likeHandler "dormy/internal/handlers/like"
	listingHandler "dormy/internal/handlers/listing"
	mediaHandler "dormy/internal/handlers/media"
	otpHandler "dormy/internal/handlers/otp"
	reservationHandler "dormy/internal/handlers/reservation"
	userHandler "dormy/internal/handlers/user"
	verificationHandler "dormy/internal/handlers/verification"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	wire.Bind(new(goRedis.UniversalClient), new(*goRedis.Client)),
	infraMongo.New,
	jwt.New,
	kafka.New,
	mailer.New,
	s3.New,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	wire.Bind(new(events.Directory), new(userService.User)),
)

var authDomain = wire.NewSet(
	otpStore.New,
	otpService.New,
	authService.New,
)

var listingDomain = wire.NewSet(
	listingRepository.New,
	listingService.New,
	reservationRepository.New,
	reservationService.New,
)

var verificationDomain = wire.NewSet(
	verificationRepository.New,
	verificationService.New,
)

var likeDomain = wire.NewSet(
	provideLikeRepository,
	provideLikeCache,
	likeService.New,
)

var mediaDomain = wire.NewSet(
	mediaService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	listingDomain,
	verificationDomain,
	likeDomain,
	mediaDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	otpHandler.New,
	userHandler.New,
	listingHandler.New,
	reservationHandler.New,
	verificationHandler.New,
	likeHandler.New,
	mediaHandler.New,
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
		provideHTTP,
	)

	return &http.HTTP{}
}

func InitializeWorker() *Worker {
	wire.Build(
		configurations,
		postgres.New,
		otel.New,
		redis.New,
		wire.Bind(new(goRedis.UniversalClient), new(*goRedis.Client)),
		kafka.New,
		mailer.New,
		cache.NewRedisCache,
		userDomain,
		events.NewNotifier,
		wire.Struct(new(Worker), "*"),
	)

	return &Worker{}
}
