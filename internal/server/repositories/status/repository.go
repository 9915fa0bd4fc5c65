package status

import (
	"context"

	"wallboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, check *models.StatusCheck) error
	List(ctx context.Context, limit int) ([]*models.StatusCheck, error)
}
