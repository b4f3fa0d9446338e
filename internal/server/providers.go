package server

import (
	"github.com/philly/posts-api/internal/adapters/rest/middleware"
	"github.com/philly/posts-api/internal/platform/eventbus"
	"github.com/philly/posts-api/internal/platform/events"
	"github.com/philly/posts-api/internal/platform/logger"
	"github.com/philly/posts-api/internal/platform/seeder"
	postseeder "github.com/philly/posts-api/internal/posts/seeder"
)

// provideVersion provides the application version
func provideVersion() string {
	return "1.0.0"
}

// provideLoggerConfig creates logger config from server config
func provideLoggerConfig(config Config) logger.Config {
	return logger.Config{
		Environment: config.Environment,
		LogLevel:    config.LogLevel,
	}
}

// provideCORSConfig creates the CORS settings from server config
func provideCORSConfig(config Config) middleware.CORSConfig {
	return middleware.CORSConfig{AllowedOrigins: config.CORSAllowedOrigins}
}

// provideEventBus creates the event bus with the audit subscribers attached
func provideEventBus(log logger.Logger) *eventbus.Bus {
	bus := eventbus.NewBus(log)
	events.SubscribePostsAudit(bus, log)
	return bus
}

// provideSeeders lists the seeders run at startup, in order
func provideSeeders(posts *postseeder.PostsSeeder) []seeder.Seeder {
	return []seeder.Seeder{posts}
}
