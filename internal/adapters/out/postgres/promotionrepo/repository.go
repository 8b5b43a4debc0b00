package promotionrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promotion"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPromotionRepository implements ports.PromotionRepository.
type GormPromotionRepository struct {
	db *gorm.DB
}

func NewGormPromotionRepository(db *gorm.DB) *GormPromotionRepository {
	return &GormPromotionRepository{db: db}
}

func (r *GormPromotionRepository) Add(ctx context.Context, p *promotion.Promotion) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormPromotionRepository) GetByCode(ctx context.Context, code string) (*promotion.Promotion, error) {
	code = promotion.NormalizeCode(code)
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto PromotionDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("promotion", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// IncrementUsage inserts the redemption row and bumps usage_count in SQL. A
// repeated call for the same order inserts nothing and leaves the counter alone.
// The counter only moves while it is below usage_limit, so concurrent checkouts
// cannot overshoot the cap; the loser gets a usage_limit_reached rejection.
func (r *GormPromotionRepository) IncrementUsage(ctx context.Context, promotionID, orderID kernel.UUID) error {
	if err := errors.Join(promotionID.Validate(), orderID.Validate()); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		redemption := RedemptionDTO{PromotionID: promotionID.Bytes(), OrderID: orderID.Bytes()}
		inserted := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&redemption)
		if inserted.Error != nil {
			return inserted.Error
		}
		if inserted.RowsAffected == 0 {
			return nil
		}

		result := tx.Model(&PromotionDTO{}).
			Where("id = ? AND (usage_limit IS NULL OR usage_count < usage_limit)", promotionID.Bytes()).
			Update("usage_count", gorm.Expr("usage_count + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		var dto PromotionDTO
		if err := tx.Select("code").First(&dto, "id = ?", promotionID.Bytes()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("promotion", promotionID.String())
			}
			return err
		}
		return promotion.NewRejectionError(dto.Code, promotion.ReasonUsageLimitReached)
	})
}
