// Package promotionrepo persists promotions and their per-order redemptions.
package promotionrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promotion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromotionDTO represents the database structure of a promotion.
type PromotionDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code           string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	DiscountType   string          `gorm:"type:varchar(16);not null"`
	Value          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	StartsAt       *time.Time
	EndsAt         *time.Time
	UsageLimit     *int
	UsageCount     int             `gorm:"not null;default:0"`
	MinOrderAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Active         bool            `gorm:"not null;default:true"`
	CreatedAt      time.Time
}

func (PromotionDTO) TableName() string {
	return "promotions"
}

// RedemptionDTO records that an order used a promotion. The composite primary
// key makes a second redemption by the same order a conflict.
type RedemptionDTO struct {
	PromotionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time
}

func (RedemptionDTO) TableName() string {
	return "promotion_redemptions"
}

func fromDomain(p *promotion.Promotion) PromotionDTO {
	return PromotionDTO{
		ID:             p.ID().Bytes(),
		Code:           p.Code(),
		DiscountType:   string(p.DiscountType()),
		Value:          p.Value(),
		StartsAt:       p.StartsAt(),
		EndsAt:         p.EndsAt(),
		UsageLimit:     p.UsageLimit(),
		UsageCount:     p.UsageCount(),
		MinOrderAmount: p.MinOrderAmount(),
		Active:         p.IsActive(),
	}
}

func toDomain(dto PromotionDTO) (*promotion.Promotion, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return promotion.RestorePromotion(promotion.Params{
		ID:             id,
		Code:           dto.Code,
		DiscountType:   promotion.DiscountType(dto.DiscountType),
		Value:          dto.Value,
		StartsAt:       dto.StartsAt,
		EndsAt:         dto.EndsAt,
		UsageLimit:     dto.UsageLimit,
		UsageCount:     dto.UsageCount,
		MinOrderAmount: dto.MinOrderAmount,
		Active:         dto.Active,
	})
}
