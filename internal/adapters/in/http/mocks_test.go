package http_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
)

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	return orderOrNil(args.Get(0)), args.Error(1)
}

type MockOrderUpdater struct{ mock.Mock }

func (m *MockOrderUpdater) Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	return orderOrNil(args.Get(0)), args.Error(1)
}

type MockOrderDeleter struct{ mock.Mock }

func (m *MockOrderDeleter) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockProofAttacher struct{ mock.Mock }

func (m *MockProofAttacher) Handle(ctx context.Context, cmd commands.AttachProofImagesCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	return orderOrNil(args.Get(0)), args.Error(1)
}

type MockOrderGetter struct{ mock.Mock }

func (m *MockOrderGetter) Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error) {
	args := m.Called(ctx, query)
	return orderOrNil(args.Get(0)), args.Error(1)
}

type MockOrderLister struct{ mock.Mock }

func (m *MockOrderLister) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]*order.Order, error) {
	args := m.Called(ctx, query)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOverdueOrdersFinder struct{ mock.Mock }

func (m *MockOverdueOrdersFinder) Handle(
	ctx context.Context,
	query queries.GetOverdueOrdersQuery,
) ([]queries.GetOverdueOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	if resp, ok := args.Get(0).([]queries.GetOverdueOrdersQueryResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserRegistrar struct{ mock.Mock }

func (m *MockUserRegistrar) Handle(ctx context.Context, cmd commands.RegisterUserCommand) (*user.User, error) {
	args := m.Called(ctx, cmd)
	return userOrNil(args.Get(0)), args.Error(1)
}

type MockAuthenticator struct{ mock.Mock }

func (m *MockAuthenticator) Handle(ctx context.Context, cmd commands.LoginCommand) (string, error) {
	args := m.Called(ctx, cmd)
	return args.String(0), args.Error(1)
}

type MockProfileReader struct{ mock.Mock }

func (m *MockProfileReader) Handle(ctx context.Context, query queries.GetUserProfileQuery) (*user.User, error) {
	args := m.Called(ctx, query)
	return userOrNil(args.Get(0)), args.Error(1)
}

type MockProfileEditor struct{ mock.Mock }

func (m *MockProfileEditor) HandleRenameShop(ctx context.Context, cmd commands.RenameShopCommand) (*user.User, error) {
	args := m.Called(ctx, cmd)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockProfileEditor) HandleChangeAvatar(ctx context.Context, cmd commands.ChangeAvatarCommand) (*user.User, error) {
	args := m.Called(ctx, cmd)
	return userOrNil(args.Get(0)), args.Error(1)
}

func orderOrNil(v any) *order.Order {
	if o, ok := v.(*order.Order); ok {
		return o
	}
	return nil
}

func userOrNil(v any) *user.User {
	if u, ok := v.(*user.User); ok {
		return u
	}
	return nil
}

type storedFile struct {
	folder      string
	contentType string
	content     []byte
}

// fakeStorage keeps saved files in memory and numbers the URLs it hands out.
type fakeStorage struct {
	mu    sync.Mutex
	files []storedFile
}

func (s *fakeStorage) Save(_ context.Context, folder, contentType string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append(s.files, storedFile{
		folder:      folder,
		contentType: contentType,
		content:     buf.Bytes(),
	})
	return fmt.Sprintf("/uploads/%s/%d", folder, len(s.files)), nil
}

func (s *fakeStorage) Saved() []storedFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]storedFile(nil), s.files...)
}
