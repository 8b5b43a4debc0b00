// Package orderrepo maps order aggregates to the orders and order_items tables.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// status and courier_id are indexed for the workload and active-order queries.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MerchantID    *uuid.UUID      `gorm:"type:uuid"`
	Address       string          `gorm:"type:text;not null"`
	Destination   LocationDTO     `gorm:"embedded;embeddedPrefix:destination_"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ShippingFee   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Discount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PromotionID   *uuid.UUID      `gorm:"type:uuid"`
	PromoCode     string          `gorm:"type:varchar(64)"`
	PaymentMethod string          `gorm:"type:varchar(16);not null"`
	PaymentStatus string          `gorm:"type:varchar(16);not null"`
	Status        int             `gorm:"not null;index"`
	CourierID     *uuid.UUID      `gorm:"type:uuid;index"`
	DeliveryCode  string          `gorm:"type:varchar(6)"`
	DeliveredAt   *time.Time
	Items         []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO is the optional delivery destination.
type LocationDTO struct {
	Latitude  *float64 `gorm:"type:double precision"`
	Longitude *float64 `gorm:"type:double precision"`
}

// ItemDTO is one order line. Position keeps the submitted order of lines.
type ItemDTO struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:            o.ID().Bytes(),
		CustomerID:    o.CustomerID().Bytes(),
		MerchantID:    optionalID(o.MerchantID()),
		Address:       o.Address(),
		Subtotal:      o.Subtotal(),
		ShippingFee:   o.ShippingFee(),
		Discount:      o.Discount(),
		Total:         o.Total(),
		PromotionID:   optionalID(o.PromotionID()),
		PromoCode:     o.PromoCode(),
		PaymentMethod: string(o.PaymentMethod()),
		PaymentStatus: string(o.PaymentStatus()),
		Status:        int(o.Status()),
		CourierID:     optionalID(o.Courier()),
		DeliveryCode:  o.DeliveryCode().String(),
		DeliveredAt:   o.DeliveredAt(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}

	if dest := o.Destination(); dest != nil {
		lat, lon := dest.Latitude(), dest.Longitude()
		dto.Destination = LocationDTO{Latitude: &lat, Longitude: &lon}
	}

	items := o.Items()
	dto.Items = make([]ItemDTO, 0, len(items))
	for i, item := range items {
		dto.Items = append(dto.Items, ItemDTO{
			OrderID:   dto.ID,
			Position:  i,
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := restoreID(dto.MerchantID)
	if err != nil {
		return nil, err
	}

	promotionID, err := restoreID(dto.PromotionID)
	if err != nil {
		return nil, err
	}

	courierID, err := restoreID(dto.CourierID)
	if err != nil {
		return nil, err
	}

	var destination *kernel.Location
	if dto.Destination.Latitude != nil && dto.Destination.Longitude != nil {
		loc, locErr := kernel.NewLocation(*dto.Destination.Latitude, *dto.Destination.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		destination = &loc
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, idErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := order.NewItem(productID, itemDTO.Name, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.State{
		ID:            id,
		CustomerID:    customerID,
		MerchantID:    merchantID,
		Items:         items,
		Address:       dto.Address,
		Destination:   destination,
		Subtotal:      dto.Subtotal,
		ShippingFee:   dto.ShippingFee,
		Discount:      dto.Discount,
		Total:         dto.Total,
		PromotionID:   promotionID,
		PromoCode:     dto.PromoCode,
		PaymentMethod: order.PaymentMethod(dto.PaymentMethod),
		PaymentStatus: order.PaymentStatus(dto.PaymentStatus),
		Status:        order.Status(dto.Status),
		CourierID:     courierID,
		DeliveryCode:  order.DeliveryCode(dto.DeliveryCode),
		DeliveredAt:   dto.DeliveredAt,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	})
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func restoreID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
