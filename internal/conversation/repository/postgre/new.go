package postgre

import (
	"database/sql"

	"assistant-srv/internal/conversation/repository"
	"assistant-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New - Factory function
func New(db *sql.DB, l log.Logger) repository.AuditRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
