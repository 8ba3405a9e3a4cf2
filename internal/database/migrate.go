package database

import (
	"context"
	"fmt"
	"log"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"github.com/jmoiron/sqlx"
)

// Migrate brings the database schema up to date with Tables using ent's migrator
func Migrate(ctx context.Context, db *sqlx.DB, debug bool) error {
	var drv dialect.Driver = entsql.OpenDB(db.DriverName(), db.DB)
	if debug {
		drv = dialect.Debug(drv)
	}

	migrate, err := schema.NewMigrate(
		drv,
		schema.WithDropIndex(true),
		schema.WithDropColumn(true),
		schema.WithForeignKeys(true),
	)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	log.Println("🔄 Running database migrations...")
	if err := migrate.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	log.Println("✅ Migrations completed")
	return nil
}
