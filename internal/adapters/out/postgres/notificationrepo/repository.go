package notificationrepo

import (
	"context"

	"gorm.io/gorm"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/notification"
	"campus/internal/pkg/errs"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add appends one notification to the log.
func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageUnavailableError("notification insert", err)
	}

	return nil
}

// GetAllByRecipient returns the recipient's notifications newest first.
func (r *GormNotificationRepository) GetAllByRecipient(
	ctx context.Context,
	recipientID kernel.UUID,
) ([]*notification.Notification, error) {
	if err := recipientID.Validate(); err != nil {
		return nil, err
	}

	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "recipient_id = ?", recipientID.Bytes()).Error
	if err != nil {
		return nil, errs.NewStorageUnavailableError("notification list", err)
	}

	notifications := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

// MarkAllRead flips the read flag on every notification of the recipient.
func (r *GormNotificationRepository) MarkAllRead(ctx context.Context, recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("recipient_id = ?", recipientID.Bytes()).
		Update("is_read", true).Error
	if err != nil {
		return errs.NewStorageUnavailableError("notification read-sweep", err)
	}

	return nil
}
