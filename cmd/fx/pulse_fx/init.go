package pulse_fx

import (
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"pricepulse/internal/config"
	"pricepulse/internal/repositories"
	"pricepulse/internal/services"
	mem "pricepulse/pkg/memcache"
)

var Module = fx.Provide(
	providePulseRepo, provideCache, providePulseService)

func providePulseRepo(db *gorm.DB) repositories.PulseRepository {
	return repositories.NewPulseRepository(db)
}

func provideCache() mem.ResponseCache {
	return mem.NewResponseCache()
}

func providePulseService(
	pulseRepo repositories.PulseRepository,
	catalogRepo repositories.CatalogRepository,
	cache mem.ResponseCache,
	cfg *config.Config,
) services.PulseServiceInterface {
	ttl := time.Duration(cfg.PulseCacheTTLSeconds) * time.Second
	return services.NewPulseService(pulseRepo, catalogRepo, cache, ttl)
}
