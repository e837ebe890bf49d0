package di

import (
	"github.com/samber/do/v2"

	"github.com/wardrobeapp/wardrobe-server/internal/config"
	"github.com/wardrobeapp/wardrobe-server/internal/logger"
	"github.com/wardrobeapp/wardrobe-server/internal/service"
	"github.com/wardrobeapp/wardrobe-server/internal/storage"
	"github.com/wardrobeapp/wardrobe-server/internal/store"
	"github.com/wardrobeapp/wardrobe-server/internal/validation"
)

// provideConfig parses configuration from the given command line arguments.
func provideConfig(args []string) func(do.Injector) (*config.Config, error) {
	return func(do.Injector) (*config.Config, error) {
		return config.LoadConfig(args)
	}
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	return log, nil
}

// ProvideValidator provides the shared input validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// GatewayHandle wraps the persistence gateway with shutdown capability.
type GatewayHandle struct {
	*storage.Gateway
}

// Shutdown implements do.Shutdownable.
func (h *GatewayHandle) Shutdown() error {
	return h.Close()
}

// ProvideGateway provides the persistence gateway.
func ProvideGateway(i do.Injector) (*GatewayHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	g, err := storage.Open(cfg.Storage.DataPath, cfg.Storage.QuotaBytes, log)
	if err != nil {
		return nil, err
	}
	return &GatewayHandle{Gateway: g}, nil
}

// ProvideCatalogStore provides the clothing catalog store.
func ProvideCatalogStore(i do.Injector) (*store.CatalogStore, error) {
	gateway := do.MustInvoke[*GatewayHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return store.NewCatalogStore(gateway.Gateway, log), nil
}

// ProvideOutfitStore provides the outfit store.
func ProvideOutfitStore(i do.Injector) (*store.OutfitStore, error) {
	gateway := do.MustInvoke[*GatewayHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return store.NewOutfitStore(gateway.Gateway, log), nil
}

// ProvideWardrobeService provides the wardrobe application service.
func ProvideWardrobeService(i do.Injector) (*service.WardrobeService, error) {
	catalog := do.MustInvoke[*store.CatalogStore](i)
	outfits := do.MustInvoke[*store.OutfitStore](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewWardrobeService(catalog, outfits, v, log), nil
}
