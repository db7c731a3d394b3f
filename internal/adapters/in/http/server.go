package http

import (
	"context"
	"time"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/generated/servers"
)

// Use case ports of the HTTP adapter. The command and query handlers satisfy them.
type (
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	OrderUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error)
	}
	OrderDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	ProofAttacher interface {
		Handle(ctx context.Context, cmd commands.AttachProofImagesCommand) (*order.Order, error)
	}
	OrderGetter interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error)
	}
	OrderLister interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]*order.Order, error)
	}
	OverdueOrdersFinder interface {
		Handle(ctx context.Context, query queries.GetOverdueOrdersQuery) ([]queries.GetOverdueOrdersQueryResponse, error)
	}
	UserRegistrar interface {
		Handle(ctx context.Context, cmd commands.RegisterUserCommand) (*user.User, error)
	}
	Authenticator interface {
		Handle(ctx context.Context, cmd commands.LoginCommand) (string, error)
	}
	ProfileReader interface {
		Handle(ctx context.Context, query queries.GetUserProfileQuery) (*user.User, error)
	}
	ProfileEditor interface {
		HandleRenameShop(ctx context.Context, cmd commands.RenameShopCommand) (*user.User, error)
		HandleChangeAvatar(ctx context.Context, cmd commands.ChangeAvatarCommand) (*user.User, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder   OrderCreator
	UpdateOrder   OrderUpdater
	DeleteOrder   OrderDeleter
	AttachProof   ProofAttacher
	GetOrder      OrderGetter
	ListOrders    OrderLister
	OverdueOrders OverdueOrdersFinder
	Register      UserRegistrar
	Login         Authenticator
	GetProfile    ProfileReader
	EditProfile   ProfileEditor
}

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	handlers     Handlers
	storage      ports.FileStorage
	proofPolicy  UploadPolicy
	avatarPolicy UploadPolicy
	now          func() time.Time
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, storage ports.FileStorage) *Server {
	return &Server{
		handlers:     handlers,
		storage:      storage,
		proofPolicy:  ProofUploadPolicy,
		avatarPolicy: AvatarUploadPolicy,
		now:          time.Now,
	}
}
