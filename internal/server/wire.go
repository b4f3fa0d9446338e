//go:build wireinject
// +build wireinject

package server

import (
	"github.com/google/wire"

	"github.com/philly/posts-api/internal/adapters/memory"
	"github.com/philly/posts-api/internal/adapters/rest"
	"github.com/philly/posts-api/internal/adapters/rest/middleware"
	"github.com/philly/posts-api/internal/platform/logger"
	"github.com/philly/posts-api/internal/platform/seeder"
	"github.com/philly/posts-api/internal/posts/application"
	postseeder "github.com/philly/posts-api/internal/posts/seeder"
)

// InitializeApp creates a fully configured App with all dependencies
func InitializeApp() (*App, error) {
	wire.Build(
		// Bootstrap phase and main logger
		logger.ProviderSet,
		LoadConfig,
		provideLoggerConfig,

		// Store
		memory.ProviderSet,

		// Platform services
		provideEventBus,

		// Application services
		application.ProviderSet,

		// REST handlers
		rest.ProviderSet,
		provideVersion, // Provide version string for HealthHandler

		// Middleware
		provideCORSConfig,
		middleware.ProviderSet,

		// Seeding
		postseeder.NewPostsSeeder,
		provideSeeders,
		seeder.NewOrchestrator,

		// HTTP Server
		NewRouter,
		NewHTTPServer,

		// App
		NewApp,
	)

	return nil, nil
}
