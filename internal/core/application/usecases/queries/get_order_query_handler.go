package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order and its items.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order if actor is its customer, its assigned courier or
// an admin; *errs.ForbiddenError otherwise.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	p, err := authorizeRead(ctx, h.db, query.orderID, query.actor)
	if err != nil {
		return OrderView{}, err
	}

	var row struct {
		MerchantID           *uuid.UUID
		Status               int
		PaymentMethod        string
		PaymentStatus        string
		Address              string
		DestinationLatitude  *float64
		DestinationLongitude *float64
		Subtotal             decimal.Decimal
		ShippingFee          decimal.Decimal
		Discount             decimal.Decimal
		Total                decimal.Decimal
		PromoCode            string
		DeliveryCode         string
		DeliveredAt          *time.Time
		CreatedAt            time.Time
		UpdatedAt            time.Time
	}
	if err = h.db.WithContext(ctx).Raw(`
		SELECT
			merchant_id,
			status,
			payment_method,
			payment_status,
			address,
			destination_latitude,
			destination_longitude,
			subtotal,
			shipping_fee,
			discount,
			total,
			COALESCE(promo_code, '') AS promo_code,
			COALESCE(delivery_code, '') AS delivery_code,
			delivered_at,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.orderID.Bytes()).Scan(&row).Error; err != nil {
		return OrderView{}, err
	}

	merchantID, err := optionalID(row.MerchantID)
	if err != nil {
		return OrderView{}, err
	}

	destination, err := optionalLocation(row.DestinationLatitude, row.DestinationLongitude)
	if err != nil {
		return OrderView{}, err
	}

	items, err := h.items(ctx, query.orderID)
	if err != nil {
		return OrderView{}, err
	}

	view := OrderView{
		ID:            p.orderID,
		CustomerID:    p.customerID,
		MerchantID:    merchantID,
		CourierID:     p.courierID,
		Status:        order.Status(row.Status),
		PaymentMethod: order.PaymentMethod(row.PaymentMethod),
		PaymentStatus: order.PaymentStatus(row.PaymentStatus),
		Address:       row.Address,
		Destination:   destination,
		Items:         items,
		Subtotal:      row.Subtotal,
		ShippingFee:   row.ShippingFee,
		Discount:      row.Discount,
		Total:         row.Total,
		PromoCode:     row.PromoCode,
		DeliveredAt:   row.DeliveredAt,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if p.canSeeDeliveryCode(query.actor) {
		view.DeliveryCode = row.DeliveryCode
	}

	return view, nil
}

func (h GetOrderQueryHandler) items(ctx context.Context, orderID kernel.UUID) ([]OrderItemView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemView, 0)
	for rows.Next() {
		var item OrderItemView
		var productID uuid.UUID

		if err = rows.Scan(&productID, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ProductID = id
		item.LineTotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
