package seeder

import (
	"context"
	"fmt"

	"github.com/philly/posts-api/internal/platform/logger"
)

// Seeder defines the interface for all data seeders
type Seeder interface {
	// Name returns the name of the seeder for logging
	Name() string

	// Seed loads the seeder's data. It must be idempotent.
	Seed(ctx context.Context) error
}

// Orchestrator manages and runs multiple seeders in order
type Orchestrator struct {
	seeders []Seeder
	logger  logger.Logger
}

// NewOrchestrator creates a new seeder orchestrator with all seeders injected
func NewOrchestrator(logger logger.Logger, seeders []Seeder) *Orchestrator {
	return &Orchestrator{
		seeders: seeders,
		logger:  logger,
	}
}

// RunAll executes all registered seeders in order, stopping at the first failure
func (o *Orchestrator) RunAll(ctx context.Context) error {
	if len(o.seeders) == 0 {
		o.logger.Info(ctx, "no seeders registered, skipping data seeding")
		return nil
	}

	o.logger.Info(ctx, "starting data seeding", "seeder_count", len(o.seeders))

	for _, seeder := range o.seeders {
		o.logger.Debug(ctx, "running seeder", "seeder", seeder.Name())

		if err := seeder.Seed(ctx); err != nil {
			o.logger.Error(ctx, "seeder failed",
				"seeder", seeder.Name(),
				"error", err,
			)
			return fmt.Errorf("seeder %s failed: %w", seeder.Name(), err)
		}

		o.logger.Info(ctx, "seeder completed successfully", "seeder", seeder.Name())
	}

	return nil
}
