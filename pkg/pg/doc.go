// Package pg bootstraps PostgreSQL access on top of pgx/v5 and goose/v3.
//
// Config is populated from PG_* environment variables. Connect opens a
// *pgxpool.Pool and pings it, retrying a few times while the database comes
// up. Migrate runs goose migrations against the same pool, either from a
// directory on disk or from an embedded fs.FS:
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log, db.Migrations); err != nil {
//	    return err
//	}
//
// Healthcheck adapts the pool to a readiness probe. IsNotFoundError and
// IsDuplicateKeyError classify pgx errors for storage code.
package pg
