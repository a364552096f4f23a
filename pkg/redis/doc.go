// Package redis connects to Redis with retries and provides a snapshot Store
// backed by it.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store := redis.NewStoreFromConfig(client, cfg)
//	ctrl, err := todo.New(submit, true, form.WithStore(store))
//
// Snapshots are stored as string values under cfg.KeyPrefix + form name.
// Healthcheck returns a probe suitable for readiness endpoints.
package redis
