package reservations

import (
	"context"
	"time"

	"github.com/avperez/hotelres/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error)
	GetByID(ctx context.Context, id int64) (*models.Reservation, error)
	Update(ctx context.Context, id int64, dateDebut, dateFin time.Time, preferences string) error
	Delete(ctx context.Context, id int64) (bool, error)
	SelectAll(ctx context.Context) ([]*models.Reservation, error)
}
