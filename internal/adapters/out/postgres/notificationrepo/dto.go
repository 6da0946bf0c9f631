// Package notificationrepo provides data transfer objects and mapping
// functions for the append-only notification log.
package notificationrepo

import (
	"time"

	"github.com/google/uuid"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/notification"
)

// NotificationDTO represents the database structure for persisting
// notifications.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID `gorm:"type:uuid;index"`
	Message     string
	IsRead      bool
	CreatedAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          n.ID().Bytes(),
		RecipientID: n.RecipientID().Bytes(),
		Message:     n.Message(),
		IsRead:      n.IsRead(),
		CreatedAt:   n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(id, recipientID, dto.Message, dto.IsRead, dto.CreatedAt)
}
