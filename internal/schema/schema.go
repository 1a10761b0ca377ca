// Package schema holds the relational schema, its constraints and the
// trigger that maintains books.average_rating.
package schema

import (
	"context"
	_ "embed"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
)

//go:embed schema.sql
var ddl string

// DDL returns the schema script.
func DDL() string {
	return ddl
}

// Apply runs the schema script. It is safe to run on every start.
func Apply(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		logger.Log.Errorw("failed to apply schema", "error", err)
		return err
	}
	logger.Log.Info("schema applied")
	return nil
}
