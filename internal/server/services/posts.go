package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wallboard/internal/common"
	"wallboard/internal/server/models"
	"wallboard/internal/server/repositories/posts"
	"wallboard/internal/server/repositories/users"
)

type PostService struct {
	repo     posts.Repository
	userRepo users.Repository
}

func NewPostService(repo posts.Repository, userRepo users.Repository) *PostService {
	return &PostService{repo: repo, userRepo: userRepo}
}

// Create puts a post on wallOwner's wall. The wall owner is revalidated
// against the user store; the author is the already-authenticated requester
// and is trusted as-is.
func (s *PostService) Create(ctx context.Context, wallOwner, author, content string) (*models.Post, error) {

	if _, err := s.userRepo.GetByUsername(ctx, wallOwner); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error fetching wall owner: %w", err)
	}

	post := &models.Post{
		ID:        uuid.NewString(),
		WallOwner: wallOwner,
		Author:    author,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	return post, nil
}

// ListWall returns up to QueryLimit posts on username's wall, newest first.
// An unknown username yields common.ErrNotFound.
func (s *PostService) ListWall(ctx context.Context, username string) ([]*models.Post, error) {

	if _, err := s.userRepo.GetByUsername(ctx, username); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return s.repo.ListByWallOwner(ctx, username, QueryLimit)
}
