package commands

import (
	"context"
	"errors"

	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// LoginCommandHandler verifies credentials and issues an access token.
// It only reads, so it uses the repository outside of a transaction.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenService
}

func NewLoginCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle returns errs.ErrUnauthorized for an unknown email or a wrong password alike.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	u, err := h.uowFactory.Create().UserRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", errs.NewUnauthorizedError("invalid credentials")
	}
	if err != nil {
		return "", err
	}

	if err = h.hasher.Compare(u.PasswordHash(), cmd.Password()); err != nil {
		return "", errs.NewUnauthorizedErrorWithCause("invalid credentials", err)
	}

	return h.tokens.Issue(ports.Claims{
		UserID: u.ID(),
		Email:  u.Email(),
		Role:   u.Role(),
	})
}
