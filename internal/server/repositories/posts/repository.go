package posts

import (
	"context"

	"wallboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) error
	ListByWallOwner(ctx context.Context, wallOwner string, limit int) ([]*models.Post, error)
}
