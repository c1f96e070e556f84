package request

import (
	"rembayung-api/internal/domain/admin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (admin.Credentials, error) {
	return admin.NewCredentials(r.Email, r.Password)
}
