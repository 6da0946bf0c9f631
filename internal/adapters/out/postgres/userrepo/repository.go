package userrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/user"
	"campus/internal/pkg/errs"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM account repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new account to the database.
func (r *GormUserRepository) Add(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageUnavailableError("user insert", err)
	}

	return nil
}

// Get retrieves an account by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, errs.NewStorageUnavailableError("user get", err)
	}

	return toDomain(dto)
}

// GetByUsername retrieves an account by its unique login name.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", username)
		}
		return nil, errs.NewStorageUnavailableError("user get", err)
	}

	return toDomain(dto)
}

// GetVendorsByScope returns all vendor accounts of a vendor class.
func (r *GormUserRepository) GetVendorsByScope(
	ctx context.Context,
	scope user.VendorScope,
) ([]*user.User, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	var dtos []UserDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "role = ? AND vendor_scope = ?", user.RoleVendor.String(), scope.String()).Error
	if err != nil {
		return nil, errs.NewStorageUnavailableError("vendor list", err)
	}

	vendors := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		vendor, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		vendors = append(vendors, vendor)
	}

	return vendors, nil
}

// VendorExists reports whether a vendor with the given identifier and scope
// exists.
func (r *GormUserRepository) VendorExists(
	ctx context.Context,
	id kernel.UUID,
	scope user.VendorScope,
) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}
	if err := scope.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("id = ? AND role = ? AND vendor_scope = ?",
			id.Bytes(), user.RoleVendor.String(), scope.String()).
		Count(&count).Error
	if err != nil {
		return false, errs.NewStorageUnavailableError("vendor lookup", err)
	}

	return count > 0, nil
}
