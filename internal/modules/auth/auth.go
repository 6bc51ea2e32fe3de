package auth

import "context"

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login checks credentials and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, error)
	// Verify parses a bearer token and returns the subject user id.
	Verify(token string) (string, error)
}
