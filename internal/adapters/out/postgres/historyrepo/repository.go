// Package historyrepo stores the order status audit trail.
package historyrepo

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntryDTO is one row of order_status_history. Rows are never updated.
type EntryDTO struct {
	ID         uint       `gorm:"primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	FromStatus int        `gorm:"not null"`
	ToStatus   int        `gorm:"not null"`
	ActorID    *uuid.UUID `gorm:"type:uuid"`
	Note       string     `gorm:"type:text"`
	CreatedAt  time.Time  `gorm:"not null"`
}

func (EntryDTO) TableName() string {
	return "order_status_history"
}

// GormHistoryRepository implements ports.HistoryRepository.
type GormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

func (r *GormHistoryRepository) Append(ctx context.Context, entry order.HistoryEntry) error {
	if err := entry.OrderID.Validate(); err != nil {
		return err
	}

	dto := EntryDTO{
		OrderID:    entry.OrderID.Bytes(),
		FromStatus: int(entry.From),
		ToStatus:   int(entry.To),
		Note:       entry.Note,
		CreatedAt:  entry.At,
	}
	if entry.ActorID != nil {
		raw := entry.ActorID.Bytes()
		dto.ActorID = &raw
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.HistoryEntry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]order.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry := order.HistoryEntry{
			OrderID: orderID,
			From:    order.Status(dto.FromStatus),
			To:      order.Status(dto.ToStatus),
			Note:    dto.Note,
			At:      dto.CreatedAt,
		}
		if dto.ActorID != nil {
			actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
			if err != nil {
				return nil, err
			}
			entry.ActorID = &actorID
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
