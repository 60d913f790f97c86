// Package reservations provides the PostgreSQL-backed repository for
// reservation rows and the joined reads that rebuild the nested graph.
package reservations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avperez/hotelres/internal/common"
	"github.com/avperez/hotelres/internal/dbx"
	"github.com/avperez/hotelres/internal/server/models"
)

// PostgresRepository implements reservation storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the reservation row referencing already-persisted client and
// chambre ids and fills in the generated identifier.
func (r *PostgresRepository) Create(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {

	query :=
		`INSERT INTO reservation (client_id, chambre_id, date_debut, date_fin, preferences)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		reservation.Client.ID, reservation.Chambre.ID,
		reservation.DateDebut, reservation.DateFin, reservation.Preferences).Scan(&reservation.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return reservation, nil
}

const joinedColumns = `r.id, r.date_debut, r.date_fin, r.preferences,
		        c.id, c.nom, c.prenom, c.email, c.telephone,
		        ch.id, ch.type, ch.prix, ch.disponible`

func scanJoined(row interface{ Scan(dest ...any) error }) (*models.Reservation, error) {
	res := &models.Reservation{
		Client:  &models.Client{},
		Chambre: &models.Chambre{},
	}
	err := row.Scan(
		&res.ID, &res.DateDebut, &res.DateFin, &res.Preferences,
		&res.Client.ID, &res.Client.Nom, &res.Client.Prenom, &res.Client.Email, &res.Client.Telephone,
		&res.Chambre.ID, &res.Chambre.Type, &res.Chambre.Prix, &res.Chambre.Disponible,
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// GetByID rebuilds the full reservation graph from a single three-way join.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Reservation, error) {

	query :=
		`SELECT ` + joinedColumns + `
		 FROM reservation r
		 JOIN client c ON r.client_id = c.id
		 JOIN chambre ch ON r.chambre_id = ch.id
		 WHERE r.id = $1
		 `

	res, err := scanJoined(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return res, nil
}

// Update replaces the date range and preferences of one reservation row.
// Client and chambre references are never touched by this path.
func (r *PostgresRepository) Update(ctx context.Context, id int64, dateDebut, dateFin time.Time, preferences string) error {

	query :=
		`UPDATE reservation
		 SET date_debut = $1, date_fin = $2, preferences = $3
		 WHERE id = $4
		 `

	result, err := r.db.ExecContext(ctx, query, dateDebut, dateFin, preferences, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// Delete removes the reservation row only; the referenced client and chambre
// rows are retained. A missing id is reported as false, not as an error.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {

	query := `DELETE FROM reservation WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}

	return n > 0, nil
}

// SelectAll returns every reservation with its joined graph, oldest first.
func (r *PostgresRepository) SelectAll(ctx context.Context) ([]*models.Reservation, error) {

	query :=
		`SELECT ` + joinedColumns + `
		 FROM reservation r
		 JOIN client c ON r.client_id = c.id
		 JOIN chambre ch ON r.chambre_id = ch.id
		 ORDER BY r.id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Reservation
	for rows.Next() {
		res, err := scanJoined(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
