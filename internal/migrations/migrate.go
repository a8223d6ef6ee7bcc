package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed sql/*.sql
var embedded embed.FS

// Up applies every pending reference-data migration embedded in the binary.
// It returns the number of migrations applied.
func Up(ctx context.Context, db *sql.DB, logger *zap.Logger) (int, error) {
	fsys, err := fs.Sub(embedded, "sql")
	if err != nil {
		return 0, fmt.Errorf("open embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("run goose up migrations: %w", err)
	}

	for _, r := range results {
		logger.Info("migration applied",
			zap.Int64("version", r.Source.Version),
			zap.String("file", r.Source.Path),
			zap.Duration("took", r.Duration),
		)
	}
	return len(results), nil
}
