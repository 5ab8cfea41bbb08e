package bootstrap

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/supplynet-backend/config"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/storage/postgres"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/repository"
)

// Store is a network repository that can also be health-checked.
type Store interface {
	repository.Repository
	Ping(ctx context.Context) error
}

// OpenStore builds the repository selected by STORE_DRIVER. The returned
// close func releases its connections.
func OpenStore(ctx context.Context, cfg *config.Config) (Store, func() error, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err := postgres.NewConnection(ctx, &cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewPostgresRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		return repo, db.Close, nil

	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		repo := repository.NewRedisRepository(client)
		if err := repo.Ping(ctx); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return repo, client.Close, nil

	case config.StoreSQLite:
		repo, err := repository.NewSQLiteRepository(cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
