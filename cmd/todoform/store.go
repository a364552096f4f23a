package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/formstate/pkg/config"
	"github.com/dmitrymomot/formstate/pkg/httpserver"
	"github.com/dmitrymomot/formstate/pkg/mongo"
	"github.com/dmitrymomot/formstate/pkg/pg"
	"github.com/dmitrymomot/formstate/pkg/redis"
	"github.com/dmitrymomot/formstate/pkg/s3store"
	"github.com/dmitrymomot/formstate/pkg/storage"
)

var ErrUnknownStore = errors.New("unknown form store")

// backend is an opened snapshot store with its readiness probes.
type backend struct {
	store  storage.Store
	checks []httpserver.Check
	close  func()
}

func openStore(ctx context.Context, kind string, log *slog.Logger, loadOpts ...config.Option) (*backend, error) {
	switch kind {
	case "", "memory":
		return &backend{store: storage.Default(), close: func() {}}, nil

	case "redis":
		var cfg redis.Config
		if err := config.Load(&cfg, loadOpts...); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &backend{
			store:  redis.NewStoreFromConfig(client, cfg),
			checks: []httpserver.Check{{Name: "redis", Probe: redis.Healthcheck(client)}},
			close:  func() { _ = client.Close() },
		}, nil

	case "postgres":
		var cfg pg.Config
		if err := config.Load(&cfg, loadOpts...); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
			pool.Close()
			return nil, err
		}
		return &backend{
			store:  pg.NewStore(pool),
			checks: []httpserver.Check{{Name: "postgres", Probe: pg.Healthcheck(pool)}},
			close:  pool.Close,
		}, nil

	case "mongo":
		var cfg mongo.Config
		if err := config.Load(&cfg, loadOpts...); err != nil {
			return nil, err
		}
		coll, err := mongo.NewCollection(ctx, cfg)
		if err != nil {
			return nil, err
		}
		client := coll.Database().Client()
		return &backend{
			store:  mongo.NewStore(coll),
			checks: []httpserver.Check{{Name: "mongo", Probe: mongo.Healthcheck(client)}},
			close:  func() { _ = client.Disconnect(context.Background()) },
		}, nil

	case "s3":
		var cfg s3store.Config
		if err := config.Load(&cfg, loadOpts...); err != nil {
			return nil, err
		}
		store, err := s3store.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &backend{store: store, close: func() {}}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, kind)
	}
}
