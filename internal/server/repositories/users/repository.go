package users

import (
	"context"

	"wallboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, limit int) ([]*models.User, error)
}
