package response

import "booking-crm/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user,omitempty"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
