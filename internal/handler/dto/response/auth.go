package response

import "campuscoffee/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user,omitempty"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
