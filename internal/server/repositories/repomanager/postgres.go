// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/avperez/hotelres/internal/dbx"
	"github.com/avperez/hotelres/internal/server/migrations"
	"github.com/avperez/hotelres/internal/server/repositories/chambres"
	"github.com/avperez/hotelres/internal/server/repositories/clients"
	"github.com/avperez/hotelres/internal/server/repositories/reservations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook. Repositories are bound per call so the
// same constructor serves both pooled and transactional handles.
type PostgresRepositoryManager struct{}

// Clients returns a clients.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Clients(db dbx.DBTX) clients.Repository {
	return clients.NewPostgresRepository(db)
}

// Chambres returns a chambres.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Chambres(db dbx.DBTX) chambres.Repository {
	return chambres.NewPostgresRepository(db)
}

// Reservations returns a reservations.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Reservations(db dbx.DBTX) reservations.Repository {
	return reservations.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetDialect("pgx")
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
