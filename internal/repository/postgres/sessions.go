package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Raghav-rv28/variable-pricing/internal/domain"
	"github.com/Raghav-rv28/variable-pricing/internal/repository"
	apperrors "github.com/Raghav-rv28/variable-pricing/pkg/errors"
)

type sessionRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewRepositories creates the repository aggregate backed by Postgres
func NewRepositories(db *sql.DB, logger *zap.Logger) *repository.Repositories {
	return &repository.Repositories{
		Session: &sessionRepository{db: db, logger: logger},
	}
}

func (r *sessionRepository) GetByShop(ctx context.Context, shop string) (*domain.Session, error) {
	const query = `
		SELECT id, shop, access_token, scope, created_at, updated_at
		FROM sessions
		WHERE shop = $1`

	var s domain.Session
	err := r.db.QueryRowContext(ctx, query, shop).Scan(
		&s.ID, &s.Shop, &s.AccessToken, &s.Scope, &s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &apperrors.ErrNotFound{Resource: "session", ID: shop}
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepository) Upsert(ctx context.Context, session *domain.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	now := time.Now()
	const query = `
		INSERT INTO sessions (id, shop, access_token, scope, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (shop) DO UPDATE
		SET access_token = EXCLUDED.access_token,
		    scope = EXCLUDED.scope,
		    updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query, session.ID, session.Shop, session.AccessToken, session.Scope, now)
	if err != nil {
		return err
	}
	r.logger.Info("Stored shop session", zap.String("shop", session.Shop))
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, shop string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE shop = $1`, shop)
	return err
}

func (r *sessionRepository) List(ctx context.Context) ([]*domain.Session, error) {
	const query = `
		SELECT id, shop, access_token, scope, created_at, updated_at
		FROM sessions
		ORDER BY shop`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.Shop, &s.AccessToken, &s.Scope, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, &s)
	}
	return sessions, rows.Err()
}
