package queries

import (
	"context"
	"time"

	"rembayung-api/internal/infra"
	"rembayung-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAdminNotFound = errs.New("admin not found")
	ErrAdminInactive = errs.New("admin inactive")
)

type AdminView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

type AdminQueries interface {
	GetCurrentAdmin(ctx context.Context, adminID uuid.UUID) (*AdminView, error)
}

type AdminReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AdminView, error)
	// FindByEmail also returns the stored password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*AdminView, string, error)
}

type adminQueriesImpl struct {
	readStore AdminReadStore
}

func NewAdminQueries(readStore AdminReadStore) AdminQueries {
	return &adminQueriesImpl{
		readStore: readStore,
	}
}

func (q *adminQueriesImpl) GetCurrentAdmin(ctx context.Context, adminID uuid.UUID) (*AdminView, error) {
	view, err := q.readStore.FindByID(ctx, adminID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	if !view.IsActive {
		return nil, ErrAdminInactive
	}

	return view, nil
}
