// Package pg stores form snapshots in PostgreSQL using a pgx pool.
//
// Connect opens the pool with retries, Migrate applies the embedded goose
// migrations that create the form_snapshots table, and Store upserts one row
// per form name.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
//	store := pg.NewStore(pool)
package pg
