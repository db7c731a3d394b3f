package commands

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// RegisterUserCommandHandler creates an account with a bcrypt-hashed password.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle fails with errs.ErrConflict when the email is taken.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	_, err := userRepo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return nil, errs.NewConflictError("email", cmd.Email())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(kernel.NewUUID(), cmd.Email(), cmd.FullName(), hash)
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, u); err != nil {
		return nil, err
	}

	created, err := userRepo.Get(ctx, u.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
