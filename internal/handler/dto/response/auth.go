package response

import (
	"rembayung-api/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string             `json:"access_token"`
	Admin       *queries.AdminView `json:"admin"`
}

type SessionResponse struct {
	Admin *queries.AdminView `json:"admin"`
}
