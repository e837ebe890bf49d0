// Package di provides dependency injection configuration for the wardrobe
// server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/wardrobeapp/wardrobe-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
// args are the command line arguments (without the program name).
func NewContainer(args []string) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, provideConfig(args))
	do.Provide(injector, ProvideLogger)
	do.Provide(injector, ProvideValidator)

	// Persistence
	do.Provide(injector, ProvideGateway)
	do.Provide(injector, ProvideCatalogStore)
	do.Provide(injector, ProvideOutfitStore)

	// Application services
	do.Provide(injector, ProvideWardrobeService)

	return injector
}

// WardrobeService resolves the wardrobe service, initializing the whole
// dependency chain (config, logger, gateway, stores) on first use.
func WardrobeService(injector *do.RootScope) (*service.WardrobeService, error) {
	return do.Invoke[*service.WardrobeService](injector)
}
