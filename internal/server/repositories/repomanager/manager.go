// Package repomanager owns the database handle and hands out the
// per-collection repositories built on top of it.
package repomanager

import (
	"context"
	"database/sql"

	"wallboard/internal/server/repositories/posts"
	"wallboard/internal/server/repositories/status"
	"wallboard/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Users() users.Repository
	Posts() posts.Repository
	Status() status.Repository
}
