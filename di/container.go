package di

import (
	"context"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"bakery-server/api"
	"bakery-server/api/bakery"
	"bakery-server/config"
	"bakery-server/dao/redis"
	"bakery-server/db"
	"bakery-server/i18n"
	"bakery-server/server"
	"bakery-server/server/handlers"
	services "bakery-server/service"
)

// Container holds all application dependencies.
type Container struct {
	Config                      *config.Config
	RedisClient                 db.RedisClient
	RedisStoreDao               *redis.RedisStoreDAO
	BakeryAPI                   bakery.BakeryAPI
	StoreStatusService          *services.StoreStatusService
	StoreConfigRefresherService *services.StoreConfigRefresherService
	StoreHandler                *handlers.StoreHandler
	OrderHandler                *handlers.OrderHandler
	StoreGate                   *handlers.StoreGate
	MuxRouter                   *mux.Router
	Router                      *server.Router
	BakeryHttpServer            *server.BakeryHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) *Container {
	log.Info().Str("env", cfg.Env).Msg("Initializing container")

	// Initialize Redis client
	var redisClient db.RedisClient
	if cfg.Env == config.ENV_LOCAL {
		redisClient = db.NewMockRedisClient()
		log.Info().Msg("Using in-memory redis")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		redisClient = db.NewStoreRedisClient(redisInternalClient)

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		// The store stays usable without Redis; only the cache and overrides suffer.
		if err := redisClient.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddress).Msg("Redis unreachable at startup")
		}
	}

	// Initialize Redis Store DAO
	redisStoreDao := redis.NewRedisStoreDAO(redisClient)

	// Initialize BakeryAPI, mocked outside prod
	var bakeryAPI bakery.BakeryAPI
	if cfg.Env != config.ENV_PROD {
		bakeryAPI = bakery.NewBakeryApiClientMock(config.GetResourcePath(config.STORE_CONFIG_RESPONSE_RESOURCE))
		log.Info().Msg("Using mock bakery api")
	} else {
		log.Info().Str("base_url", cfg.BakeryBackendURL).Msg("Using prod bakery api")
		httpClient := api.NewHTTPClient(cfg.BakeryBackendURL, cfg.BakeryBackendTimeout)
		bakeryAPI = bakery.NewBakeryApiClient(httpClient)
	}

	defaultTag, ok := i18n.ParseTag(cfg.DefaultLanguage)
	if !ok {
		log.Warn().Str("language", cfg.DefaultLanguage).Msg("Unsupported default language, falling back")
		defaultTag = i18n.Default()
	}

	// Initialize service layer
	storeStatusService := services.NewStoreStatusService(redisStoreDao, cfg.Location(), defaultTag)
	storeConfigRefresherService := services.NewStoreConfigRefresherService(storeStatusService, redisStoreDao, bakeryAPI)

	// Initialize handlers
	storeHandler := handlers.NewStoreHandler(storeStatusService)
	orderHandler := handlers.NewOrderHandler(bakeryAPI)
	storeGate := handlers.NewStoreGate(storeStatusService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(storeHandler, orderHandler, storeGate, muxRouter)

	// initialize bakery server
	bakeryHttpServer := server.NewBakeryHttpServer(router, muxRouter, cfg.HTTPAddress)

	return &Container{
		Config:                      cfg,
		RedisClient:                 redisClient,
		RedisStoreDao:               redisStoreDao,
		BakeryAPI:                   bakeryAPI,
		StoreStatusService:          storeStatusService,
		StoreConfigRefresherService: storeConfigRefresherService,
		StoreHandler:                storeHandler,
		OrderHandler:                orderHandler,
		StoreGate:                   storeGate,
		MuxRouter:                   muxRouter,
		Router:                      router,
		BakeryHttpServer:            bakeryHttpServer,
	}
}
