package http

import (
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/generated/servers"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Register handles POST /api/v1/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var body servers.RegisterRequest
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(body); err != nil {
		return writeError(ctx, err)
	}

	fullName := ""
	if body.FullName != nil {
		fullName = *body.FullName
	}

	cmd, err := commands.NewRegisterUserCommand(body.Email, body.Password, fullName)
	if err != nil {
		return writeError(ctx, err)
	}

	registered, err := s.handlers.Register.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.RegisteredUser{
		Id:       registered.ID().Bytes(),
		Email:    registered.Email(),
		FullName: registered.FullName(),
	})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var body servers.LoginRequest
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(body); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewLoginCommand(body.Email, body.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	token, err := s.handlers.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.AccessToken{AccessToken: token})
}

// GetMe handles GET /api/v1/users/me.
func (s *Server) GetMe(ctx echo.Context) error {
	userID, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetUserProfileQuery(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	profile, err := s.handlers.GetProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProfileResponse(profile))
}

// UpdateMe handles PATCH /api/v1/users/me. An absent shopName clears the stored one.
func (s *Server) UpdateMe(ctx echo.Context) error {
	userID, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.ProfilePatch
	if err = ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(body); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRenameShopCommand(userID, body.ShopName)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.EditProfile.HandleRenameShop(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProfileResponse(updated))
}

// UploadAvatar handles POST /api/v1/users/me/avatar.
func (s *Server) UploadAvatar(ctx echo.Context) error {
	userID, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return writeBadRequest(ctx, "Invalid multipart form")
	}

	files, err := s.avatarPolicy.Files(form)
	if err != nil {
		return writeError(ctx, err)
	}
	if len(files) == 0 {
		return writeError(ctx, errs.NewValueIsRequiredError(s.avatarPolicy.Field))
	}

	urls, err := s.avatarPolicy.Store(ctx.Request().Context(), s.storage, files)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeAvatarCommand(userID, urls[0])
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.EditProfile.HandleChangeAvatar(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	avatar := servers.Avatar{}
	if url := updated.AvatarURL(); url != nil {
		avatar.AvatarUrl = *url
	}

	return ctx.JSON(http.StatusOK, avatar)
}
