package menurepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/menu"
	"campus/internal/pkg/errs"
)

// GormMenuItemRepository implements MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GORM menu item repository.
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// Add saves a new menu item to the database.
func (r *GormMenuItemRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageUnavailableError("menu item insert", err)
	}

	return nil
}

// Update saves an existing menu item to the database.
func (r *GormMenuItemRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewStorageUnavailableError("menu item update", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", item.ID().String())
	}

	return nil
}

// Get retrieves a menu item by ID.
func (r *GormMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, errs.NewStorageUnavailableError("menu item get", err)
	}

	return toDomain(dto)
}

// GetAllAvailable returns the currently orderable items in name order.
func (r *GormMenuItemRepository) GetAllAvailable(ctx context.Context) ([]*menu.MenuItem, error) {
	var dtos []MenuItemDTO
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "available = ?", true).Error
	if err != nil {
		return nil, errs.NewStorageUnavailableError("menu list", err)
	}

	items := make([]*menu.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		items = append(items, item)
	}

	return items, nil
}
