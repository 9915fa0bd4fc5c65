package posts

import (
	"context"
	"database/sql"
	"fmt"

	"wallboard/internal/server/models"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) error {

	query :=
		`INSERT INTO posts (id, wall_owner, author, content, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.WallOwner, post.Author, post.Content, post.CreatedAt)

	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

// ListByWallOwner returns the wall's posts newest-first, capped at limit.
func (r *PostgresRepository) ListByWallOwner(ctx context.Context, wallOwner string, limit int) ([]*models.Post, error) {

	query :=
		`SELECT id, wall_owner, author, content, created_at FROM posts
		 WHERE wall_owner = $1
		 ORDER BY created_at DESC
		 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, query, wallOwner, limit)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Post, 0)
	for rows.Next() {
		post := &models.Post{}
		if err := rows.Scan(&post.ID, &post.WallOwner, &post.Author, &post.Content, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}

	return result, nil
}
