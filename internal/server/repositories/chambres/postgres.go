// Package chambres provides the PostgreSQL-backed repository for room rows.
package chambres

import (
	"context"
	"fmt"

	"github.com/avperez/hotelres/internal/dbx"
	"github.com/avperez/hotelres/internal/server/models"
)

// PostgresRepository implements chambre storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new chambre row and fills in the generated identifier.
// Prix is bound as a decimal value so the NUMERIC column keeps exact cents.
func (r *PostgresRepository) Create(ctx context.Context, chambre *models.Chambre) (*models.Chambre, error) {

	query :=
		`INSERT INTO chambre (type, prix, disponible)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		chambre.Type, chambre.Prix, chambre.Disponible).Scan(&chambre.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return chambre, nil
}
