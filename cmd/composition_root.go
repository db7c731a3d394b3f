package cmd

import (
	"context"
	"fmt"
	"time"

	"orderdesk/internal/adapters/out/filestorage"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/postgres/userrepo"
	"orderdesk/internal/adapters/out/security"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	tokens     *security.JWTTokenService
	hasher     *security.BcryptHasher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	tokens, err := security.NewJWTTokenService(config.JWTSecret, config.JWTTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		tokens:     tokens,
		hasher:     security.NewBcryptHasher(),
	}, nil
}

func (c *CompositionRoot) TokenService() ports.TokenService {
	return c.tokens
}

// CreateFileStorage returns the storage selected by STORAGE_DRIVER.
func (c *CompositionRoot) CreateFileStorage(ctx context.Context) (ports.FileStorage, error) {
	switch c.config.StorageDriver {
	case StorageS3:
		client, err := filestorage.NewS3Client(ctx, c.config.S3Endpoint)
		if err != nil {
			return nil, err
		}
		return filestorage.NewS3Storage(client, c.config.S3Bucket, c.config.S3PublicURL)
	case StorageLocal:
		return filestorage.NewLocalStorage(c.config.UploadsDir)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", c.config.StorageDriver)
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), time.Now)
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() *commands.UpdateOrderCommandHandler {
	h := commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	h := commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateAttachProofImagesCommandHandler() *commands.AttachProofImagesCommandHandler {
	h := commands.NewAttachProofImagesCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() *commands.RegisterUserCommandHandler {
	h := commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher)
	return &h
}

func (c *CompositionRoot) CreateLoginCommandHandler() *commands.LoginCommandHandler {
	h := commands.NewLoginCommandHandler(c.userUoWFactory(), c.hasher, c.tokens)
	return &h
}

func (c *CompositionRoot) CreateProfileCommandHandler() *commands.ProfileCommandHandler {
	h := commands.NewProfileCommandHandler(c.userUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetOverdueOrdersQueryHandler() queries.GetOverdueOrdersQueryHandler {
	return queries.NewGetOverdueOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserProfileQueryHandler() queries.GetUserProfileQueryHandler {
	return queries.NewGetUserProfileQueryHandler(userrepo.NewGormUserRepository(c.gormDB))
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
