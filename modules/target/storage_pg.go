package target

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/targetform/pkg/pg"
)

// DB is the subset of *pgxpool.Pool used by PostgresStorage.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStorage stores targets in the "targets" table.
type PostgresStorage struct {
	db DB
}

// NewPostgresStorage wraps db. The schema comes from internal/db/migrations.
func NewPostgresStorage(db DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

const targetColumns = `id, name, owner, metric, metric_unit, tags, red, orange, yellow,
	achieved, achieved_unit, created_at, updated_at`

func (s *PostgresStorage) Create(ctx context.Context, t Target) error {
	_, err := s.db.Exec(ctx, `INSERT INTO targets (`+targetColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		t.ID, t.Name, t.Owner, t.Metric, t.MetricUnit, t.Tags, t.Red, t.Orange, t.Yellow,
		t.AchievedMetric, t.AchievedMetricUnit, t.CreatedAt, t.UpdatedAt,
	)
	if pg.IsDuplicateKeyError(err) {
		return ErrDuplicateName
	}
	if err != nil {
		return errors.Join(ErrStorage, err)
	}
	return nil
}

func (s *PostgresStorage) Get(ctx context.Context, id uuid.UUID) (Target, error) {
	row := s.db.QueryRow(ctx, `SELECT `+targetColumns+` FROM targets WHERE id = $1`, id)
	return scanTarget(row)
}

func (s *PostgresStorage) List(ctx context.Context, f Filter) ([]Target, error) {
	rows, err := s.db.Query(ctx, `SELECT `+targetColumns+` FROM targets
		WHERE ($1 = '' OR strpos(name, $1) > 0)
		  AND ($2 = '' OR owner = $2)
		ORDER BY name`, f.Name, f.Owner)
	if err != nil {
		return nil, errors.Join(ErrStorage, err)
	}
	defer rows.Close()

	out := []Target{}
	for rows.Next() {
		t, err := scanTarget(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrStorage, err)
	}
	return out, nil
}

func (s *PostgresStorage) RecordAchieved(ctx context.Context, id uuid.UUID, value float64, unit string) (Target, error) {
	row := s.db.QueryRow(ctx, `UPDATE targets SET
			achieved = CASE WHEN $2 > achieved THEN $2 ELSE achieved END,
			achieved_unit = CASE WHEN $2 > achieved THEN $3 ELSE achieved_unit END,
			updated_at = CASE WHEN $2 > achieved THEN $4 ELSE updated_at END
		WHERE id = $1
		RETURNING `+targetColumns, id, value, unit, time.Now().UTC())
	return scanTarget(row)
}

func (s *PostgresStorage) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM targets WHERE id = $1`, id)
	if err != nil {
		return errors.Join(ErrStorage, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTarget(row pgx.Row) (Target, error) {
	var t Target
	err := row.Scan(
		&t.ID, &t.Name, &t.Owner, &t.Metric, &t.MetricUnit, &t.Tags,
		&t.Red, &t.Orange, &t.Yellow, &t.AchievedMetric, &t.AchievedMetricUnit,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if pg.IsNotFoundError(err) {
		return Target{}, ErrNotFound
	}
	if err != nil {
		return Target{}, errors.Join(ErrStorage, err)
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}
