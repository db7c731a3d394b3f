package queries

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/guard"
)

var ErrGetUserProfileQueryIsNotConstructed = errors.New(
	"GetUserProfileQuery must be created via NewGetUserProfileQuery constructor",
)

// GetUserProfileQuery loads the authenticated caller's profile.
type GetUserProfileQuery struct {
	userID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetUserProfileQuery(userID kernel.UUID) (GetUserProfileQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserProfileQuery{}, err
	}
	return GetUserProfileQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetUserProfileQueryIsNotConstructed)
}

func (q GetUserProfileQuery) UserID() kernel.UUID {
	return q.userID
}

type GetUserProfileQueryHandler struct {
	repo ports.UserRepository
}

func NewGetUserProfileQueryHandler(repo ports.UserRepository) GetUserProfileQueryHandler {
	return GetUserProfileQueryHandler{repo: repo}
}

func (h GetUserProfileQueryHandler) Handle(ctx context.Context, query GetUserProfileQuery) (*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.repo.Get(ctx, query.userID)
}
