package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wallboard/internal/server/models"
	"wallboard/internal/server/repositories/status"
)

type StatusService struct {
	repo status.Repository
}

func NewStatusService(repo status.Repository) *StatusService {
	return &StatusService{repo: repo}
}

func (s *StatusService) Create(ctx context.Context, clientName string) (*models.StatusCheck, error) {

	check := &models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, check); err != nil {
		return nil, fmt.Errorf("error creating status check: %w", err)
	}

	return check, nil
}

func (s *StatusService) List(ctx context.Context) ([]*models.StatusCheck, error) {
	return s.repo.List(ctx, QueryLimit)
}
