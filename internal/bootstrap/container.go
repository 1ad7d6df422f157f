package bootstrap

import (
	"context"
	"fmt"
	"log"

	"ocbs-be/internal/config"
	"ocbs-be/internal/controller"
	"ocbs-be/internal/pkg/logger"
	"ocbs-be/internal/pkg/mailer"
	"ocbs-be/internal/repository/contract"
	"ocbs-be/internal/repository/implementation"
	"ocbs-be/internal/repository/memory"
	"ocbs-be/internal/repository/unitofwork"
	"ocbs-be/internal/service"
	pktNats "ocbs-be/pkg/nats"
	"ocbs-be/pkg/osu"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

const registrationCreatedTopic = "registration_created"

type Container struct {
	AuthController         controller.IAuthController
	MapPoolController      controller.IMapPoolController
	RegistrationController controller.IRegistrationController

	// Background services, started by main.go
	ConsumerService service.IConsumerService

	Logger  logger.ILogger
	natsPub *pktNats.Publisher
}

// Close releases connections opened by the container.
func (c *Container) Close() {
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	_ = c.Logger.Sync()
}

// NewRedisClient parses REDIS_URL, falling back to treating it as host:port.
func NewRedisClient(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	return rdb
}

// NewPoolCacheRepository builds the cache backend named by POOL_CACHE_BACKEND.
// db may be nil unless the backend is "postgres".
func NewPoolCacheRepository(cfg *config.Config, db *gorm.DB) (contract.PoolCacheRepository, error) {
	switch cfg.Pool.CacheBackend {
	case "", "file":
		return implementation.NewPoolCacheFileRepository(cfg.Pool.CacheDir), nil
	case "redis":
		return implementation.NewPoolCacheRedisRepository(NewRedisClient(cfg.App.RedisURL)), nil
	case "postgres":
		if db == nil {
			return nil, fmt.Errorf("pool cache backend postgres needs a database connection")
		}
		return implementation.NewPoolCacheGormRepository(db), nil
	case "memory":
		return memory.NewPoolCacheRepository(), nil
	}
	return nil, fmt.Errorf("unknown pool cache backend %q", cfg.Pool.CacheBackend)
}

// NewMapPoolService wires the pool service alone, for the operator CLI.
func NewMapPoolService(cfg *config.Config, store contract.PoolCacheRepository, log logger.ILogger, natsPub *pktNats.Publisher) service.IMapPoolService {
	osuClient := osu.NewClient(cfg.Osu.ClientID, cfg.Osu.ClientSecret, cfg.Osu.BaseURL)

	// A nil *Publisher must stay a nil interface.
	var eventPublisher service.EventPublisher
	if natsPub != nil {
		eventPublisher = natsPub
	}

	return service.NewMapPoolService(
		store,
		implementation.NewPickListCSVRepository(cfg.Pool.Dir),
		service.NewOsuBeatmapResolver(osuClient),
		log,
		eventPublisher,
		service.MapPoolServiceOptions{
			ResolveTimeout:     cfg.Pool.ResolveTimeout,
			ResolveConcurrency: cfg.Pool.ResolveConcurrency,
		},
	)
}

func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	// 2. Event buses
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 3. Services
	poolStore, err := NewPoolCacheRepository(cfg, db)
	if err != nil {
		return nil, err
	}
	mapPoolService := NewMapPoolService(cfg, poolStore, sysLogger, natsPub)

	oauthConf := &oauth2.Config{
		ClientID:     cfg.Osu.ClientID,
		ClientSecret: cfg.Osu.ClientSecret,
		RedirectURL:  cfg.Osu.RedirectURI,
		Scopes:       []string{"identify"},
		Endpoint:     osu.Endpoint(cfg.Osu.BaseURL),
	}
	authService := service.NewAuthService(
		uowFactory,
		oauthConf,
		osu.NewClient(cfg.Osu.ClientID, cfg.Osu.ClientSecret, cfg.Osu.BaseURL),
		sysLogger,
		natsPub,
		service.AuthServiceOptions{
			JWTSecret:   cfg.Auth.JWTSecret,
			TokenTTL:    cfg.Auth.TokenTTL,
			AdminOsuIds: cfg.Auth.AdminOsuIds,
		},
	)

	publisherService := service.NewPublisherService(registrationCreatedTopic, pubSub)
	registrationService := service.NewRegistrationService(uowFactory, publisherService, natsPub, sysLogger)

	mailLogger := logger.NewIsolatedLogger("logs/mail.log")
	consumerService := service.NewRegistrationMailConsumer(pubSub, registrationCreatedTopic, emailService, mailLogger)

	// 4. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService, sysLogger),
		MapPoolController:      controller.NewMapPoolController(mapPoolService, sysLogger),
		RegistrationController: controller.NewRegistrationController(registrationService),

		ConsumerService: consumerService,

		Logger:  sysLogger,
		natsPub: natsPub,
	}, nil
}
