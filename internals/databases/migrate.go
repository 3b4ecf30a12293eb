package database

import (
	"context"
	"embed"
	"io/fs"
	"log"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var MigrationFS embed.FS

// Migrate menjalankan semua migrasi SQL yang belum diterapkan.
func Migrate(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "ambil *sql.DB")
	}

	migrationsFS, err := fs.Sub(MigrationFS, "migrations")
	if err != nil {
		return errors.Wrap(err, "migrations sub-fs")
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrationsFS)
	if err != nil {
		return errors.Wrap(err, "buat migration provider")
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return errors.Wrap(err, "apply migrations")
	}
	for _, r := range results {
		log.Printf("[INFO] migrasi %s diterapkan (%s)", r.Source.Path, r.Duration)
	}
	return nil
}
