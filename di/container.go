package di

import (
	"context"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"chivent/api"
	"chivent/api/ticketmaster"
	"chivent/config"
	redisdao "chivent/dao/redis"
	"chivent/db"
	"chivent/logger"
	"chivent/server"
	"chivent/server/handlers"
	services "chivent/service"
	"chivent/session"
)

// Container holds all application dependencies.
type Container struct {
	Logger            *zap.SugaredLogger
	RedisClient       db.RedisClient
	PageCacheDao      *redisdao.RedisPageCacheDAO
	TicketmasterAPI   ticketmaster.TicketmasterAPI
	EventNormalizer   *services.EventNormalizer
	FeedService       *services.FeedService
	CartService       *services.CartService
	SessionStore      *session.Store
	EventHandler      *handlers.EventHandler
	CartHandler       *handlers.CartHandler
	SessionHandler    *handlers.SessionHandler
	MuxRouter         *mux.Router
	Router            *server.Router
	ChiventHttpServer *server.ChiventHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log := logger.New(env)
	log.Infof("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize the raw page cache store - in-memory outside prod
	var redisClient db.RedisClient
	if env != "prod" {
		log.Infof("Using mock redis client")
		redisClient = db.NewMockRedisClient(ctx)
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddress(),
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewCacheRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
	}

	// Initialize page cache DAO
	pageCacheDao := redisdao.NewRedisPageCacheDAO(redisClient)

	// Initialize TicketmasterAPI - mock outside prod
	var ticketmasterApi ticketmaster.TicketmasterAPI
	if env != "prod" {
		log.Infof("Using mock ticketmaster api")
		ticketmasterApi = ticketmaster.NewTicketmasterApiClientMock(
			config.GetResourcePath(config.EVENTS_PAGE_RESPONSE_RESOURCE))
	} else {
		log.Infof("Using prod ticketmaster api")
		httpClient := api.NewHTTPClient(config.TICKETMASTER_ENDPOINT_BASE_V2)

		client := ticketmaster.NewTicketmasterApiClient(httpClient)
		client.SetAPIKey(config.TicketmasterAPIKey())
		ticketmasterApi = client
	}

	// Initialize service layer
	eventNormalizer := services.NewEventNormalizer(log)
	feedService := services.NewFeedService(pageCacheDao, ticketmasterApi, eventNormalizer, log)
	cartService := services.NewCartService(log)

	// Initialize per-session state store
	sessionStore := session.NewStore()

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(feedService, sessionStore, log)
	cartHandler := handlers.NewCartHandler(cartService, sessionStore, log)
	sessionHandler := handlers.NewSessionHandler(sessionStore, log)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(eventHandler, cartHandler, sessionHandler, muxRouter)

	// Initialize chivent server
	chiventHttpServer := server.NewChiventHttpServer(router, muxRouter, config.ServerAddress(), log)

	return &Container{
		Logger:            log,
		RedisClient:       redisClient,
		PageCacheDao:      pageCacheDao,
		TicketmasterAPI:   ticketmasterApi,
		EventNormalizer:   eventNormalizer,
		FeedService:       feedService,
		CartService:       cartService,
		SessionStore:      sessionStore,
		EventHandler:      eventHandler,
		CartHandler:       cartHandler,
		SessionHandler:    sessionHandler,
		MuxRouter:         muxRouter,
		Router:            router,
		ChiventHttpServer: chiventHttpServer,
	}
}
