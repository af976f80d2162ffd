package auth

import "context"

// Principal is the identity carried by an authenticated session.
type Principal struct {
	Subject string
	Role    string
}

// Authenticator verifies admin credentials. This abstraction allows swapping
// the single shared admin password for per-user accounts later without
// changing the service layer.
type Authenticator interface {
	// Authenticate verifies the credential and returns the principal if it is valid.
	Authenticate(ctx context.Context, credential string) (*Principal, error)
}
