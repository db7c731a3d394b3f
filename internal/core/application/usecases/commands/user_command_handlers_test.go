package commands_test

import (
	"errors"
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func existingUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "owner@shop.lk", "Owner", "stored-hash")
	require.NoError(t, err)
	return u
}

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(" owner@shop.lk ", "secret", "")
	require.NoError(t, err)

	var added *user.User
	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	hasher := new(MockPasswordHasher)
	getCall := repo.On("Get", ctx, mock.AnythingOfType("kernel.UUID")).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", ctx, "owner@shop.lk").Return(nil, errs.NewObjectNotFoundError("email", "owner@shop.lk")).Once(),
		hasher.On("Hash", "secret").Return("hashed", nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*user.User")).
			Run(func(args mock.Arguments) {
				added = args.Get(1).(*user.User)
				getCall.Return(added, nil)
			}).
			Return(nil).Once(),
		getCall,
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory, hasher)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, added, created)
	assert.Equal(t, "hashed", created.PasswordHash())
	assert.Equal(t, user.DefaultFullName, created.FullName())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	hasher.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_EmailTaken(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterUserCommand("owner@shop.lk", "secret", "Owner")

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	hasher := new(MockPasswordHasher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", ctx, "owner@shop.lk").Return(existingUser(t), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory, hasher)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), "owner@shop.lk")
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestNewRegisterUserCommand_Invalid(t *testing.T) {
	_, err := commands.NewRegisterUserCommand("", "", "x")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, commands.ErrPasswordIsRequired)
}

func TestLoginCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	setup := func(t *testing.T) (*MockUserRepository, *MockPasswordHasher, *MockTokenService, commands.LoginCommandHandler) {
		t.Helper()
		repo := new(MockUserRepository)
		uow := new(MockUserUoW)
		uow.On("UserRepository").Return(repo).Once()
		factory := new(MockUserUoWFactory)
		factory.On("Create").Return(uow).Once()
		hasher := new(MockPasswordHasher)
		tokens := new(MockTokenService)
		return repo, hasher, tokens, commands.NewLoginCommandHandler(factory, hasher, tokens)
	}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		repo, hasher, tokens, h := setup(t)
		u := existingUser(t)
		cmd, _ := commands.NewLoginCommand("owner@shop.lk", "secret")

		repo.On("GetByEmail", ctx, "owner@shop.lk").Return(u, nil).Once()
		hasher.On("Compare", "stored-hash", "secret").Return(nil).Once()
		tokens.On("Issue", ports.Claims{UserID: u.ID(), Email: u.Email(), Role: "user"}).Return("token", nil).Once()

		token, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "token", token)
		tokens.AssertExpectations(t)
	})

	t.Run("rejects an unknown email", func(t *testing.T) {
		repo, _, tokens, h := setup(t)
		cmd, _ := commands.NewLoginCommand("ghost@shop.lk", "secret")
		repo.On("GetByEmail", ctx, "ghost@shop.lk").Return(nil, errs.NewObjectNotFoundError("email", "ghost@shop.lk")).Once()

		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
		tokens.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		repo, hasher, _, h := setup(t)
		cmd, _ := commands.NewLoginCommand("owner@shop.lk", "wrong")
		repo.On("GetByEmail", ctx, "owner@shop.lk").Return(existingUser(t), nil).Once()
		hasher.On("Compare", "stored-hash", "wrong").Return(errs.NewUnauthorizedError("password mismatch")).Once()

		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Contains(t, err.Error(), "invalid credentials")
	})

	t.Run("passes storage errors through", func(t *testing.T) {
		repo, _, _, h := setup(t)
		cmd, _ := commands.NewLoginCommand("owner@shop.lk", "secret")
		repo.On("GetByEmail", ctx, "owner@shop.lk").Return(nil, errors.New("db down")).Once()

		_, err := h.Handle(ctx, cmd)

		require.EqualError(t, err, "db down")
	})
}

func TestProfileCommandHandler(t *testing.T) {
	ctx := t.Context()

	expectChange := func(t *testing.T, u *user.User) commands.ProfileCommandHandler {
		t.Helper()
		repo := new(MockUserRepository)
		uow := new(MockUserUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("UserRepository").Return(repo).Once(),
			repo.On("Get", ctx, u.ID()).Return(u, nil).Once(),
			repo.On("Update", ctx, u).Return(nil).Once(),
			repo.On("Get", ctx, u.ID()).Return(u, nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockUserUoWFactory)
		factory.On("Create").Return(uow).Once()
		return commands.NewProfileCommandHandler(factory)
	}

	t.Run("renames the shop", func(t *testing.T) {
		u := existingUser(t)
		h := expectChange(t, u)
		cmd, err := commands.NewRenameShopCommand(u.ID(), ptr("  Nimal Prints "))
		require.NoError(t, err)

		updated, err := h.HandleRenameShop(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "Nimal Prints", updated.DisplayShopName())
	})

	t.Run("changes the avatar", func(t *testing.T) {
		u := existingUser(t)
		h := expectChange(t, u)
		cmd, err := commands.NewChangeAvatarCommand(u.ID(), "/uploads/avatars/a.png")
		require.NoError(t, err)

		updated, err := h.HandleChangeAvatar(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "/uploads/avatars/a.png", *updated.AvatarURL())
	})

	t.Run("requires an avatar url", func(t *testing.T) {
		_, err := commands.NewChangeAvatarCommand(kernel.NewUUID(), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
