// Package userrepo persists user accounts in the "users" table.
package userrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:text;not null;uniqueIndex"`
	FullName     string    `gorm:"type:text;not null;default:Unknown"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null"`
	Role         string    `gorm:"type:varchar(32);not null;default:user"`
	ShopName     *string   `gorm:"type:varchar(60)"`
	AvatarURL    *string   `gorm:"column:avatar_url;type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Email:        u.Email(),
		FullName:     u.FullName(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role(),
		ShopName:     u.ShopName(),
		AvatarURL:    u.AvatarURL(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(user.RestoreParams{
		ID:           id,
		Email:        dto.Email,
		FullName:     dto.FullName,
		PasswordHash: dto.PasswordHash,
		Role:         dto.Role,
		ShopName:     dto.ShopName,
		AvatarURL:    dto.AvatarURL,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	})
}
