package status

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

func (r *PostgresRepository) Create(ctx context.Context, check *models.StatusCheck) error {

	query :=
		`INSERT INTO status_checks (id, client_name, "timestamp")
		 VALUES ($1, $2, $3)
		 `

	_, err := r.db.ExecContext(ctx, query, check.ID, check.ClientName, check.Timestamp)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

func (r *PostgresRepository) List(ctx context.Context, limit int) ([]*models.StatusCheck, error) {

	query :=
		`SELECT id, client_name, "timestamp" FROM status_checks
		 ORDER BY "timestamp" DESC
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := make([]*models.StatusCheck, 0)
	for rows.Next() {
		check := &models.StatusCheck{}
		if err := rows.Scan(&check.ID, &check.ClientName, &check.Timestamp); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, check)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}

	return result, nil
}
