package repository

import (
	"context"

	"github.com/Raghav-rv28/variable-pricing/internal/domain"
)

// SessionRepository persists shop access tokens so the server can serve more
// than one installation
type SessionRepository interface {
	GetByShop(ctx context.Context, shop string) (*domain.Session, error)
	Upsert(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, shop string) error
	List(ctx context.Context) ([]*domain.Session, error)
}

// Repositories aggregates all repositories
type Repositories struct {
	Session SessionRepository
}
