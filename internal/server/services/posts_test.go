package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallboard/internal/common"
	"wallboard/internal/server/models"
)

type fakePostRepo struct {
	created   []*models.Post
	listOut   []*models.Post
	createErr error
	listErr   error
	lastLimit int
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, post)
	return nil
}

func (f *fakePostRepo) ListByWallOwner(ctx context.Context, wallOwner string, limit int) ([]*models.Post, error) {
	f.lastLimit = limit
	return f.listOut, f.listErr
}

func userRepoWith(usernames ...string) *fakeUserRepo {
	repo := newFakeUserRepo()
	for _, name := range usernames {
		repo.byUsername[name] = &models.User{ID: name + "-id", Username: name, CreatedAt: time.Now().UTC()}
	}
	return repo
}

func TestPostCreate_Success(t *testing.T) {
	postRepo := &fakePostRepo{}
	svc := NewPostService(postRepo, userRepoWith("neo"))

	post, err := svc.Create(context.Background(), "neo", "trinity", "I know kung fu.")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if post.ID == "" || post.CreatedAt.IsZero() {
		t.Fatalf("post not fully populated: %+v", post)
	}
	if post.WallOwner != "neo" || post.Author != "trinity" {
		t.Fatalf("unexpected post: %+v", post)
	}
	if len(postRepo.created) != 1 {
		t.Fatalf("expected 1 stored post, got %d", len(postRepo.created))
	}
}

func TestPostCreate_UnknownWallOwner(t *testing.T) {
	svc := NewPostService(&fakePostRepo{}, userRepoWith("trinity"))

	_, err := svc.Create(context.Background(), "neo", "trinity", "hello?")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestListWall_UnknownUser(t *testing.T) {
	svc := NewPostService(&fakePostRepo{}, newFakeUserRepo())

	_, err := svc.ListWall(context.Background(), "nobody")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestListWall_UsesQueryLimit(t *testing.T) {
	postRepo := &fakePostRepo{listOut: []*models.Post{}}
	svc := NewPostService(postRepo, userRepoWith("neo"))

	if _, err := svc.ListWall(context.Background(), "neo"); err != nil {
		t.Fatalf("ListWall error: %v", err)
	}
	if postRepo.lastLimit != QueryLimit {
		t.Fatalf("ListWall used limit %d, want %d", postRepo.lastLimit, QueryLimit)
	}
}
