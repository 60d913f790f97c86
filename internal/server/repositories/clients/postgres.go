// Package clients provides the PostgreSQL-backed repository for client rows.
package clients

import (
	"context"
	"fmt"

	"github.com/avperez/hotelres/internal/dbx"
	"github.com/avperez/hotelres/internal/server/models"
)

// PostgresRepository implements client storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new client row and fills in the generated identifier.
// Every call inserts: there is no lookup or dedup of existing clients.
func (r *PostgresRepository) Create(ctx context.Context, client *models.Client) (*models.Client, error) {

	query :=
		`INSERT INTO client (nom, prenom, email, telephone)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		client.Nom, client.Prenom, client.Email, client.Telephone).Scan(&client.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return client, nil
}
