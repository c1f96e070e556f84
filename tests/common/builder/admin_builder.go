//go:build unit || e2e

package builder

import (
	"rembayung-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type AdminBuilder struct {
	Email    string
	IsActive bool
}

func NewAdminBuilder() *AdminBuilder {
	return &AdminBuilder{
		Email:    "admin@rembayung.example",
		IsActive: true,
	}
}

func (a *AdminBuilder) WithEmail(email string) *AdminBuilder {
	a.Email = email
	return a
}

func (a *AdminBuilder) AsInactive() *AdminBuilder {
	a.IsActive = false
	return a
}

func (a *AdminBuilder) BuildReadModel() *queries.AdminView {
	return &queries.AdminView{
		ID:       uuid.New(),
		Email:    a.Email,
		IsActive: a.IsActive,
	}
}
