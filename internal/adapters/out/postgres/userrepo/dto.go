// Package userrepo provides data transfer objects and mapping functions for
// account persistence. Credentials never reach this layer; the identity
// surface authenticates before the core is involved.
package userrepo

import (
	"time"

	"github.com/google/uuid"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting accounts.
type UserDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username    string    `gorm:"uniqueIndex"`
	FullName    string
	Role        string `gorm:"index"`
	VendorScope string `gorm:"index"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for account entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	scope := ""
	if u.Scope() != user.ScopeUnknown {
		scope = u.Scope().String()
	}

	return UserDTO{
		ID:          u.ID().Bytes(),
		Username:    u.Username(),
		FullName:    u.FullName(),
		Role:        u.Role().String(),
		VendorScope: scope,
		CreatedAt:   u.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	scope := user.ScopeUnknown
	if dto.VendorScope != "" {
		scope, err = user.VendorScopeFromString(dto.VendorScope)
		if err != nil {
			return nil, err
		}
	}

	return user.RestoreUser(id, dto.Username, dto.FullName, role, scope, dto.CreatedAt)
}
