package seeder

import (
	"context"
	"errors"
	"fmt"

	"jobboard/internal/database"

	"go.uber.org/multierr"
)

var errSchemaMismatch = errors.New("schema mismatch")

// EnsureTableColumns fails unless every column exists on the public table.
// All missing columns are reported together.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}

	existing, err := tableColumns(ctx, db, table)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", table, err)
	}

	var errs error
	for _, col := range columns {
		if col == "" {
			errs = multierr.Append(errs, fmt.Errorf("empty column name for %s", table))
			continue
		}
		if _, ok := existing[col]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("%w: missing column %s.%s", errSchemaMismatch, table, col))
		}
	}
	return errs
}

func tableColumns(ctx context.Context, db database.DB, table string) (map[string]struct{}, error) {
	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out[c] = struct{}{}
	}
	return out, rows.Err()
}
