// Package bootstrap builds the storage and document plumbing shared by
// the server and featherctl.
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/featherwood/featherwood-backend/config"
	"github.com/featherwood/featherwood-backend/internal/app/repository"
	"github.com/featherwood/featherwood-backend/internal/app/repository/memory"
	"github.com/featherwood/featherwood-backend/internal/db"
	"github.com/featherwood/featherwood-backend/internal/seed"
	"github.com/featherwood/featherwood-backend/internal/storage"
	"github.com/featherwood/featherwood-backend/pkg/logger"
	"github.com/featherwood/featherwood-backend/pkg/redis"
)

// OpenStorage returns the configured Storage and a function releasing
// whatever it opened. A Redis host that cannot be reached is logged and
// the catalog runs uncached.
func OpenStorage(cfg *config.Config) (repository.Storage, func(), error) {
	var (
		store   repository.Storage
		closers []func()
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		conn, err := db.Open(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() {
			if err := db.Close(conn); err != nil {
				logger.Error("Failed to close database connection", err)
			}
		})
		if err := db.Migrate(conn); err != nil {
			closeAll(closers)
			return nil, nil, err
		}
		store = repository.NewStorage(conn)
	case config.StorageDriverMemory:
		logger.Info("Using in-memory storage; data is lost on restart")
		store = memory.NewStore()
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}

	if cfg.Redis.Enabled() {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Catalog cache disabled", map[string]interface{}{
				"reason": err.Error(),
			})
		} else {
			closers = append(closers, func() {
				if err := redis.Close(); err != nil {
					logger.Error("Failed to close Redis connection", err)
				}
			})
			store = repository.NewCachedStorage(store, redis.NewCache(redis.GetClient()), cfg.Redis.CacheTTL)
		}
	}

	return store, func() { closeAll(closers) }, nil
}

func closeAll(closers []func()) {
	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}
}

// NewDocumentStore creates an S3 client only when one of the given
// locations needs it.
func NewDocumentStore(cfg *config.Config, locations ...string) *storage.DocumentStore {
	for _, location := range locations {
		if strings.HasPrefix(location, "s3://") {
			return storage.NewDocumentStore(storage.NewS3Storage(cfg.S3.Region, cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey))
		}
	}
	return storage.NewDocumentStore(nil)
}

// SeedOptions maps configuration onto seed loader options.
func SeedOptions(cfg *config.Config) seed.Options {
	return seed.Options{
		ProductsLocation: cfg.Seed.ProductsLocation,
		ProjectsLocation: cfg.Seed.ProjectsLocation,
		DemoUser: seed.DemoUser{
			Username: cfg.Seed.DemoUsername,
			Email:    cfg.Seed.DemoEmail,
			Password: cfg.Seed.DemoPassword,
			FullName: "Demo Customer",
		},
	}
}
