package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrRenameShopCommandIsNotConstructed = errors.New(
		"RenameShopCommand must be created via NewRenameShopCommand constructor",
	)
	ErrChangeAvatarCommandIsNotConstructed = errors.New(
		"ChangeAvatarCommand must be created via NewChangeAvatarCommand constructor",
	)
)

// RenameShopCommand sets or clears the caller's shop name. A nil name clears it.
type RenameShopCommand struct {
	userID   kernel.UUID
	shopName *string
	guard    guard.ConstructorGuard
}

func NewRenameShopCommand(userID kernel.UUID, shopName *string) (RenameShopCommand, error) {
	if err := userID.Validate(); err != nil {
		return RenameShopCommand{}, err
	}
	return RenameShopCommand{userID: userID, shopName: shopName, guard: guard.NewConstructorGuard()}, nil
}

func (c RenameShopCommand) Validate() error {
	return c.guard.Validate(ErrRenameShopCommandIsNotConstructed)
}

func (c RenameShopCommand) UserID() kernel.UUID {
	return c.userID
}

// ShopName returns the requested name, nil when it should be cleared.
func (c RenameShopCommand) ShopName() *string {
	return c.shopName
}

// ChangeAvatarCommand points the caller's avatar at an already stored image.
type ChangeAvatarCommand struct {
	userID    kernel.UUID
	avatarURL string
	guard     guard.ConstructorGuard
}

func NewChangeAvatarCommand(userID kernel.UUID, avatarURL string) (ChangeAvatarCommand, error) {
	if err := userID.Validate(); err != nil {
		return ChangeAvatarCommand{}, err
	}
	if avatarURL == "" {
		return ChangeAvatarCommand{}, errs.NewValueIsRequiredError("avatarUrl")
	}
	return ChangeAvatarCommand{userID: userID, avatarURL: avatarURL, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangeAvatarCommand) Validate() error {
	return c.guard.Validate(ErrChangeAvatarCommandIsNotConstructed)
}

func (c ChangeAvatarCommand) UserID() kernel.UUID {
	return c.userID
}

func (c ChangeAvatarCommand) AvatarURL() string {
	return c.avatarURL
}
