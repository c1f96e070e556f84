package readstore

import (
	"context"
	"errors"

	"rembayung-api/internal/infra"
	"rembayung-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminReadStore struct {
	db *pgxpool.Pool
}

func NewAdminReadStore(db *pgxpool.Pool) *AdminReadStore {
	return &AdminReadStore{db: db}
}

func (r *AdminReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AdminView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, is_active, last_login_at FROM admins WHERE id = $1`, id)

	var view queries.AdminView
	err := row.Scan(&view.ID, &view.Email, &view.IsActive, &view.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find admin by ID", err)
	}

	return &view, nil
}

func (r *AdminReadStore) FindByEmail(ctx context.Context, email string) (*queries.AdminView, string, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, is_active, last_login_at, password_hash FROM admins WHERE email = $1`, email)

	var (
		view queries.AdminView
		hash string
	)
	err := row.Scan(&view.ID, &view.Email, &view.IsActive, &view.LastLoginAt, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find admin by email", err)
	}

	return &view, hash, nil
}
