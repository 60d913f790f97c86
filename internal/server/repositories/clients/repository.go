package clients

import (
	"context"

	"github.com/avperez/hotelres/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, client *models.Client) (*models.Client, error)
}
