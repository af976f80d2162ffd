package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

const (
	// AdminSubject is the token subject issued to the fund administrator.
	AdminSubject = "admin"
	// RoleAdmin is the only role that can sign in.
	RoleAdmin = "admin"
)

// PasswordAuthenticator checks the admin password against a bcrypt hash.
type PasswordAuthenticator struct {
	hash []byte
}

// NewPasswordAuthenticator creates an authenticator from a bcrypt hash.
func NewPasswordAuthenticator(hash string) (*PasswordAuthenticator, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("failed to parse admin password hash: %w", err)
	}
	return &PasswordAuthenticator{hash: []byte(hash)}, nil
}

// NewPasswordAuthenticatorFromPlaintext hashes password and returns an
// authenticator for it.
func NewPasswordAuthenticatorFromPlaintext(password string) (*PasswordAuthenticator, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &PasswordAuthenticator{hash: []byte(hash)}, nil
}

// ValidateCredential checks if the password meets minimum requirements.
func ValidateCredential(credential string) error {
	if len(credential) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Authenticate compares the credential with the stored hash.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, credential string) (*Principal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &Principal{Subject: AdminSubject, Role: RoleAdmin}, nil
}
