package domain

import "context"

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// IdentityProvider is the external identity service holding credentials.
// This backend never stores passwords; it only keeps per-player game rows
// keyed by the provider-issued subject id.
type IdentityProvider interface {
	CreateIdentity(ctx context.Context, username string, password string) (string, error)
	Authenticate(ctx context.Context, username string, password string) (string, error)
	DeleteIdentity(ctx context.Context, identityID string) error
}
