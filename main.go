package main

import (
	"github.com/joho/godotenv"

	"chivent/config"
	"chivent/di"
)

func main() {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	env := config.GetEnv("APP_ENV", "dev")
	container := di.NewContainer(env)
	defer container.Logger.Sync()

	// Warm the first feed page so the first request skips the upstream
	// round trip.
	container.Logger.Info("warming feed cache!")
	container.FeedService.Collect(config.FEED_TARGET_COUNT, config.FEED_MAX_PAGE_ATTEMPTS, 0)

	container.Logger.Info("starting server!")
	container.ChiventHttpServer.Start()
}
