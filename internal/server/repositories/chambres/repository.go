package chambres

import (
	"context"

	"github.com/avperez/hotelres/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, chambre *models.Chambre) (*models.Chambre, error)
}
