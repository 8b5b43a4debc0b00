package orderrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository on PostgreSQL.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a repository bound to db, which may be a
// transaction handle.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order and its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateIfStatus writes the mutable order columns with a compare-and-set on
// status. Items are immutable after creation and are not touched.
func (r *GormOrderRepository) UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Updates(map[string]any{
			"status":         dto.Status,
			"courier_id":     dto.CourierID,
			"delivery_code":  dto.DeliveryCode,
			"delivered_at":   dto.DeliveredAt,
			"shipping_fee":   dto.ShippingFee,
			"discount":       dto.Discount,
			"total":          dto.Total,
			"payment_status": dto.PaymentStatus,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.missOrConflict(ctx, aggregate.ID())
	}

	return nil
}

// UpdatePayment writes the payment status only.
func (r *GormOrderRepository) UpdatePayment(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("payment_status", string(aggregate.PaymentStatus()))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status, limit int) ([]*order.Order, error) {
	query := r.withItems(ctx).Where("status = ?", int(status)).Order("created_at")
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.find(query)
}

func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	return r.find(r.withItems(ctx).Where("status IN ?", activeStatuses()).Order("created_at"))
}

func (r *GormOrderRepository) GetAllActiveByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}
	return r.find(r.withItems(ctx).
		Where("courier_id = ? AND status IN ?", courierID.Bytes(), activeStatuses()).
		Order("created_at"))
}

func (r *GormOrderRepository) CountActiveByCourier(ctx context.Context, courierIDs []kernel.UUID) (map[kernel.UUID]int, error) {
	counts := make(map[kernel.UUID]int, len(courierIDs))
	if len(courierIDs) == 0 {
		return counts, nil
	}

	ids := make([]uuid.UUID, 0, len(courierIDs))
	for _, id := range courierIDs {
		counts[id] = 0
		ids = append(ids, id.Bytes())
	}

	var rows []struct {
		CourierID uuid.UUID
		Active    int
	}
	if err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("courier_id, count(*) AS active").
		Where("courier_id IN ? AND status IN ?", ids, activeStatuses()).
		Group("courier_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.CourierID[:])
		if err != nil {
			return nil, err
		}
		counts[id] = row.Active
	}

	return counts, nil
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *GormOrderRepository) find(query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) missOrConflict(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return errs.NewConcurrentUpdateError("order", id.String())
}

func activeStatuses() []int {
	statuses := order.ActiveStatuses()
	values := make([]int, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, int(s))
	}
	return values
}
