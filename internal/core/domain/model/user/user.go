package user

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

const (
	// DefaultFullName is stored when a user registers without a name.
	DefaultFullName = "Unknown"
	// DefaultRole is the role every registered user gets.
	DefaultRole = "user"
	// DefaultShopName is shown for users that never set a shop name.
	DefaultShopName = "My Shop"
	// ShopNameMaxLength bounds the shop name in characters.
	ShopNameMaxLength = 60
)

var (
	ErrEmailIsRequired        = errs.NewValueIsRequiredError("email")
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
	ErrUserIsNotConstructed   = errors.New("User must be created via NewUser constructor")
)

// User is a shop staff account. Orders are not owned by users; a user only
// authenticates requests and carries the shop profile shown in the mobile app.
type User struct {
	id           kernel.UUID
	email        string
	fullName     string
	passwordHash string
	role         string
	shopName     *string
	avatarURL    *string
	createdAt    time.Time
	updatedAt    time.Time
	guard        guard.ConstructorGuard
}

// NewUser registers a user with the default role. A blank full name becomes DefaultFullName.
func NewUser(id kernel.UUID, email, fullName, passwordHash string) (*User, error) {
	u := &User{
		role:  DefaultRole,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}
	u.setFullName(fullName)

	return u, nil
}

// RestoreParams carries the persisted state of a user.
type RestoreParams struct {
	ID           kernel.UUID
	Email        string
	FullName     string
	PasswordHash string
	Role         string
	ShopName     *string
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func RestoreUser(p RestoreParams) (*User, error) {
	u, err := NewUser(p.ID, p.Email, p.FullName, p.PasswordHash)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.Role) != "" {
		u.role = p.Role
	}
	u.shopName = copyString(p.ShopName)
	u.avatarURL = copyString(p.AvatarURL)
	u.createdAt = p.CreatedAt
	u.updatedAt = p.UpdatedAt
	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) FullName() string {
	return u.fullName
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() string {
	return u.role
}

// ShopName returns nil when no shop name is set.
func (u *User) ShopName() *string {
	return copyString(u.shopName)
}

// DisplayShopName falls back to DefaultShopName.
func (u *User) DisplayShopName() string {
	if u.shopName == nil {
		return DefaultShopName
	}
	return *u.shopName
}

func (u *User) AvatarURL() *string {
	return copyString(u.avatarURL)
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// RenameShop trims name and stores it; nil or a blank name clears the shop name.
func (u *User) RenameShop(name *string) error {
	if name == nil {
		u.shopName = nil
		return nil
	}

	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		u.shopName = nil
		return nil
	}
	if n := utf8.RuneCountInString(trimmed); n > ShopNameMaxLength {
		return errs.NewValueIsOutOfRangeError("shopName length", n, 0, ShopNameMaxLength)
	}

	u.shopName = &trimmed
	return nil
}

func (u *User) ChangeAvatar(url string) error {
	if strings.TrimSpace(url) == "" {
		return errs.NewValueIsRequiredError("avatarUrl")
	}
	u.avatarURL = &url
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailIsRequired
	}
	u.email = email
	return nil
}

func (u *User) setFullName(fullName string) {
	if strings.TrimSpace(fullName) == "" {
		u.fullName = DefaultFullName
		return
	}
	u.fullName = fullName
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	u.passwordHash = hash
	return nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
