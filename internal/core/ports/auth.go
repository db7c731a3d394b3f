package ports

import (
	"orderdesk/internal/core/domain/model/kernel"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns errs.ErrUnauthorized when password does not match hash.
	Compare(hash, password string) error
}

// Claims is what an access token says about its bearer.
type Claims struct {
	UserID kernel.UUID
	Email  string
	Role   string
}

// TokenService issues and verifies access tokens.
type TokenService interface {
	Issue(claims Claims) (string, error)
	// Verify returns errs.ErrUnauthorized for malformed, forged or expired tokens.
	Verify(token string) (Claims, error)
}
