package usecase

import "context"

// AuthProvider is the identity-provider boundary. The service trusts what it
// hands back and never re-validates claims.
type AuthProvider interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
	SetUserDisabled(ctx context.Context, uid string, disabled bool) error
}

// Identity carries the authenticated caller's claims as extracted by the auth
// middleware.
type Identity struct {
	UserID string
	Email  string
	Name   string
}
