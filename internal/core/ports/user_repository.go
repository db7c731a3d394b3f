package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// Add inserts a user; a taken email is reported as errs.ErrConflict.
	Add(ctx context.Context, u *user.User) error

	// Update writes the profile fields (full name, shop name, avatar).
	Update(ctx context.Context, u *user.User) error

	// Get returns errs.ErrObjectNotFound for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail returns errs.ErrObjectNotFound for unknown emails.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
