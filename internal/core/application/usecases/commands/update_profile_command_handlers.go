package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
)

// ProfileCommandHandler handles the caller's own profile changes.
type ProfileCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewProfileCommandHandler(uowFactory UserUoWFactory) ProfileCommandHandler {
	return ProfileCommandHandler{uowFactory: uowFactory}
}

func (h *ProfileCommandHandler) HandleRenameShop(ctx context.Context, cmd RenameShopCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.change(ctx, cmd.userID, func(u *user.User) error {
		return u.RenameShop(cmd.shopName)
	})
}

func (h *ProfileCommandHandler) HandleChangeAvatar(ctx context.Context, cmd ChangeAvatarCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.change(ctx, cmd.userID, func(u *user.User) error {
		return u.ChangeAvatar(cmd.avatarURL)
	})
}

func (h *ProfileCommandHandler) change(ctx context.Context, userID kernel.UUID, apply func(*user.User) error) (*user.User, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err = apply(u); err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	updated, err := userRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
