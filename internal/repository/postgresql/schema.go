package postgresql

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cmlabs-hris/hris-geofence/internal/pkg/database"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates missing tables and indexes in one transaction. Every statement is idempotent.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	return WithTransaction(ctx, db, func(ctx context.Context) error {
		if _, err := GetQuerier(ctx, db).Exec(ctx, schemaSQL); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
		return nil
	})
}
