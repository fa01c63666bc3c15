package pg

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies goose migrations from cfg.MigrationsPath. When fsys is not
// nil the path is resolved inside it, which is how embedded migrations are
// run; otherwise the path is read from disk.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg Config, log logger, fsys fs.FS) error {
	if cfg.MigrationsPath == "" {
		return errors.Join(ErrFailedToApplyMigrations, ErrMigrationPathNotProvided)
	}

	if err := checkMigrationsDir(fsys, cfg.MigrationsPath); err != nil {
		return err
	}

	// goose works on database/sql, so share the pool through the stdlib bridge.
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.ErrorContext(ctx, "failed to close migration connection", "error", err)
		}
	}()

	goose.SetLogger(newGooseLogger(log))
	goose.SetTableName(cfg.MigrationsTable)
	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	if err := goose.UpContext(ctx, db, cfg.MigrationsPath); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	return nil
}

func checkMigrationsDir(fsys fs.FS, path string) error {
	var err error
	if fsys != nil {
		_, err = fs.Stat(fsys, path)
	} else {
		_, err = os.Stat(path)
	}
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return errors.Join(ErrMigrationsDirNotFound, err)
	}
	return errors.Join(ErrFailedToApplyMigrations, err)
}
