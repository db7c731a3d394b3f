package user_test

import (
	"strings"
	"testing"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "owner@shop.lk", "Shop Owner", "$2a$10$hash")
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "owner@shop.lk", "", "$2a$10$hash")

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, user.DefaultFullName, u.FullName())
		assert.Equal(t, user.DefaultRole, u.Role())
		assert.Nil(t, u.ShopName())
		assert.Equal(t, "My Shop", u.DisplayShopName())
		assert.Nil(t, u.AvatarURL())
	})

	t.Run("should require email and password hash", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), " ", "x", "")

		require.Error(t, err)
		assert.Nil(t, u)
		assert.ErrorIs(t, err, user.ErrEmailIsRequired)
		assert.ErrorIs(t, err, user.ErrPasswordHashIsRequired)
	})
}

func TestUser_RenameShop(t *testing.T) {
	t.Run("should trim the name", func(t *testing.T) {
		u := newUser(t)
		name := "  Nimal Prints  "

		require.NoError(t, u.RenameShop(&name))

		require.NotNil(t, u.ShopName())
		assert.Equal(t, "Nimal Prints", *u.ShopName())
		assert.Equal(t, "Nimal Prints", u.DisplayShopName())
	})

	t.Run("should clear on blank or nil", func(t *testing.T) {
		u := newUser(t)
		name := "Prints"
		blank := "   "
		require.NoError(t, u.RenameShop(&name))

		require.NoError(t, u.RenameShop(&blank))
		assert.Nil(t, u.ShopName())

		require.NoError(t, u.RenameShop(&name))
		require.NoError(t, u.RenameShop(nil))
		assert.Nil(t, u.ShopName())
	})

	t.Run("should reject names longer than sixty characters", func(t *testing.T) {
		u := newUser(t)
		long := strings.Repeat("ශ", 61)

		err := u.RenameShop(&long)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, u.ShopName())
	})

	t.Run("should count characters, not bytes", func(t *testing.T) {
		u := newUser(t)
		name := strings.Repeat("ශ", 60)

		require.NoError(t, u.RenameShop(&name))
	})
}

func TestUser_ChangeAvatar(t *testing.T) {
	u := newUser(t)

	require.ErrorIs(t, u.ChangeAvatar(""), errs.ErrValueIsRequired)
	require.NoError(t, u.ChangeAvatar("/uploads/avatars/a.png"))
	assert.Equal(t, "/uploads/avatars/a.png", *u.AvatarURL())
}

func TestRestoreUser(t *testing.T) {
	shop := "Prints"

	u, err := user.RestoreUser(user.RestoreParams{
		ID:           kernel.NewUUID(),
		Email:        "admin@shop.lk",
		FullName:     "Admin",
		PasswordHash: "hash",
		Role:         "admin",
		ShopName:     &shop,
	})

	require.NoError(t, err)
	assert.Equal(t, "admin", u.Role())
	assert.Equal(t, "Prints", u.DisplayShopName())
}
