// Package store abre el backend configurado en STORE_DRIVER y expone sus repositorios.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/mongodb"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-tracker/pkg/config"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
)

// Repositories agrupa los puertos de persistencia de un mismo backend.
type Repositories struct {
	Locations    repository.LocationRepository
	Products     repository.ProductRepository
	Transactions repository.TransactionRepository
	Users        repository.UserRepository

	close func(context.Context) error
}

// Close libera las conexiones del backend.
func (r *Repositories) Close(ctx context.Context) error {
	if r.close == nil {
		return nil
	}
	return r.close(ctx)
}

// Open conecta con el backend de cfg.Store.Driver y prepara su esquema (índices o tablas).
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Repositories, error) {
	log = log.Component("store")

	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, db, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info().Str("driver", cfg.Store.Driver).Str("database", cfg.Mongo.Database).Msg("almacén abierto")
		return &Repositories{
			Locations:    mongodb.NewLocationRepository(db),
			Products:     mongodb.NewProductRepository(db),
			Transactions: mongodb.NewTransactionRepository(db),
			Users:        mongodb.NewUserRepository(db),
			close:        client.Disconnect,
		}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Str("driver", cfg.Store.Driver).Str("database", cfg.DB.DBName).Msg("almacén abierto")
		return &Repositories{
			Locations:    postgres.NewLocationRepository(pool),
			Products:     postgres.NewProductRepository(pool),
			Transactions: postgres.NewTransactionRepository(pool),
			Users:        postgres.NewUserRepository(pool),
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case config.DriverMemory:
		log.Warn().Str("driver", cfg.Store.Driver).Msg("almacén en memoria: los datos no persisten")
		return Memory(memory.NewStore()), nil
	}
	return nil, fmt.Errorf("store: driver desconocido %q", cfg.Store.Driver)
}

// Memory envuelve un almacén en memoria ya creado (tests y CLI).
func Memory(s *memory.Store) *Repositories {
	return &Repositories{
		Locations:    s.Locations(),
		Products:     s.Products(),
		Transactions: s.Transactions(),
		Users:        s.Users(),
	}
}
