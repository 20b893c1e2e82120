// Package notificationrepo persists user notifications.
package notificationrepo

import (
	"context"
	"time"

	"marketplace/internal/adapters/out/sqlstore/gormx"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ ports.NotificationRepository = (*GormNotificationRepository)(nil)

type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text"`
	Type      string    `gorm:"type:varchar(16);not null"`
	Read      bool      `gorm:"column:is_read;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return gormx.CreateError("notification", aggregate.ID(), err)
	}
	return nil
}

// Update only persists the read flag; the rest of a notification is immutable.
func (r *GormNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("is_read", aggregate.IsRead())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.ensureExists(ctx, aggregate.ID())
	}
	return nil
}

func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, gormx.NotFound(err, "notification", id)
	}
	return toDomain(dto)
}

func (r *GormNotificationRepository) ListForUser(
	ctx context.Context,
	userID kernel.UUID,
) ([]*notification.Notification, error) {
	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id").
		Find(&dtos, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// ensureExists tells a missing row apart from an update that changed nothing,
// which MySQL reports as zero affected rows.
func (r *GormNotificationRepository) ensureExists(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&NotificationDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("notification", id.String())
	}
	return nil
}

func fromDomain(n *notification.Notification) NotificationDTO {
	st := n.State()
	return NotificationDTO{
		ID:        st.ID.Bytes(),
		UserID:    st.UserID.Bytes(),
		Title:     st.Title,
		Message:   st.Message,
		Type:      string(st.Type),
		Read:      st.Read,
		CreatedAt: st.CreatedAt,
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	return notification.Restore(notification.State{
		ID:        id,
		UserID:    userID,
		Title:     dto.Title,
		Message:   dto.Message,
		Type:      notification.Type(dto.Type),
		Read:      dto.Read,
		CreatedAt: dto.CreatedAt,
	})
}
