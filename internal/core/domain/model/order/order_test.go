package order_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, qty int, price string) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Lomo saltado", qty, decimal.RequireFromString(price))
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	dest, err := kernel.NewLocation(-12.0464, -77.0428)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), nil,
		[]order.Item{newItem(t, 2, "25.50"), newItem(t, 1, "9.00")},
		"Av. Arequipa 123", &dest, order.PaymentCash,
	)
	require.NoError(t, err)
	return o
}

func actor(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return a
}

func TestNewItem(t *testing.T) {
	t.Run("should compute line total", func(t *testing.T) {
		item := newItem(t, 3, "12.40")

		require.NoError(t, item.Validate())
		assert.Equal(t, "37.2", item.LineTotal().String())
	})

	t.Run("should fail with all invalid fields", func(t *testing.T) {
		_, err := order.NewItem(kernel.UUID{}, " ", 0, decimal.NewFromInt(-1))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "item name")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
		assert.Contains(t, err.Error(), "-1 is negative")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, order.Item{}.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should create registered order with computed subtotal", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Registered, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Nil(t, o.Courier())
		assert.True(t, o.DeliveryCode().IsZero())
		assert.Equal(t, "60", o.Subtotal().String())
		assert.True(t, o.Total().Equal(o.Subtotal()))
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should fail without items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, nil, "addr", nil, order.PaymentCard)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should join validation errors", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, nil, nil, "", nil, "bitcoin")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customer")
		assert.Contains(t, err.Error(), "address")
		assert.Contains(t, err.Error(), "payment method")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Pricing(t *testing.T) {
	t.Run("fee and discount make up the total", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ApplyShippingFee(decimal.RequireFromString("7.50")))
		require.NoError(t, o.ApplyPromotion(kernel.NewUUID(), "PROMO10", decimal.RequireFromString("6.75")))

		assert.Equal(t, "7.5", o.ShippingFee().String())
		assert.Equal(t, "6.75", o.Discount().String())
		assert.Equal(t, "60.75", o.Total().String())
		assert.Equal(t, "PROMO10", o.PromoCode())
		assert.NotNil(t, o.PromotionID())
	})

	t.Run("discount is capped so total is never negative", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ApplyShippingFee(decimal.NewFromInt(5)))

		require.NoError(t, o.ApplyPromotion(kernel.NewUUID(), "ALL", decimal.NewFromInt(1000)))

		assert.Equal(t, "65", o.Discount().String())
		assert.True(t, o.Total().IsZero())
	})

	t.Run("negative fee is rejected", func(t *testing.T) {
		o := newOrder(t)
		require.ErrorIs(t, o.ApplyShippingFee(decimal.NewFromInt(-1)), errs.ErrValueIsInvalid)
	})

	t.Run("amounts are frozen after assignment", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))

		require.ErrorIs(t, o.ApplyShippingFee(decimal.NewFromInt(1)), order.ErrAmountsAreFrozen)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("full happy path", func(t *testing.T) {
		o := newOrder(t)
		courierID := kernel.NewUUID()

		require.NoError(t, o.Assign(courierID))
		assert.True(t, o.IsAssignedTo(courierID))

		code, err := o.Advance(order.EnRouteToMerchant)
		require.NoError(t, err)
		assert.True(t, code.IsZero())

		code, err = o.Advance(order.EnRouteToCustomer)
		require.NoError(t, err)
		assert.Regexp(t, sixDigits, code.String())
		assert.Equal(t, code, o.DeliveryCode())

		at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, o.ConfirmDelivery(code.String(), at))
		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, at, *o.DeliveredAt())
		assert.True(t, o.DeliveryCode().IsZero())
	})

	t.Run("wrong code keeps the order en route", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))
		_, _ = o.Advance(order.EnRouteToMerchant)
		code, err := o.Advance(order.EnRouteToCustomer)
		require.NoError(t, err)

		wrong := "000000"
		if code.String() == wrong {
			wrong = "111111"
		}
		require.ErrorIs(t, o.ConfirmDelivery(wrong, time.Now()), order.ErrInvalidDeliveryCode)
		assert.Equal(t, order.EnRouteToCustomer, o.Status())
		assert.Nil(t, o.DeliveredAt())
	})

	t.Run("second confirmation reports already confirmed", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))
		_, _ = o.Advance(order.EnRouteToMerchant)
		code, _ := o.Advance(order.EnRouteToCustomer)
		require.NoError(t, o.ConfirmDelivery(code.String(), time.Now()))

		require.ErrorIs(t, o.ConfirmDelivery(code.String(), time.Now()), order.ErrDeliveryAlreadyConfirmed)
	})

	t.Run("confirmation before en route is a transition error", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))

		require.ErrorIs(t, o.ConfirmDelivery("123456", time.Now()), order.ErrStatusTransitionIsInvalid)
	})

	t.Run("cancel then any transition is final", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel())

		require.ErrorIs(t, o.Cancel(), order.ErrOrderIsFinal)
		require.ErrorIs(t, o.Assign(kernel.NewUUID()), order.ErrOrderIsFinal)
		_, err := o.Advance(order.EnRouteToMerchant)
		require.ErrorIs(t, err, order.ErrOrderIsFinal)
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	o := newOrder(t)

	require.NoError(t, o.MarkPaid())
	assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	assert.Equal(t, order.Registered, o.Status())
	require.ErrorIs(t, o.MarkPaid(), order.ErrPaymentAlreadyConfirmed)

	cancelled := newOrder(t)
	require.NoError(t, cancelled.Cancel())
	require.ErrorIs(t, cancelled.MarkPaid(), order.ErrOrderIsFinal)
}

func TestOrder_Permissions(t *testing.T) {
	o := newOrder(t)
	courierID := kernel.NewUUID()
	require.NoError(t, o.Assign(courierID))

	owner := actor(t, o.CustomerID(), kernel.RoleCustomer)
	stranger := actor(t, kernel.NewUUID(), kernel.RoleCustomer)
	assigned := actor(t, courierID, kernel.RoleCourier)
	otherCourier := actor(t, kernel.NewUUID(), kernel.RoleCourier)
	admin := actor(t, kernel.NewUUID(), kernel.RoleAdmin)

	assert.True(t, o.CanBeOperatedBy(assigned))
	assert.True(t, o.CanBeOperatedBy(admin))
	assert.False(t, o.CanBeOperatedBy(otherCourier))
	assert.False(t, o.CanBeOperatedBy(owner))

	assert.True(t, o.CanBeCancelledBy(owner))
	assert.True(t, o.CanBeCancelledBy(admin))
	assert.False(t, o.CanBeCancelledBy(stranger))
	assert.False(t, o.CanBeCancelledBy(assigned))

	assert.True(t, o.CanBeViewedBy(assigned))
	assert.True(t, o.CanBeViewedBy(owner))
	assert.False(t, o.CanBeViewedBy(otherCourier))
}

func TestRestoreOrder(t *testing.T) {
	item := newItem(t, 1, "10.00")
	courierID := kernel.NewUUID()

	t.Run("should restore consistent state", func(t *testing.T) {
		o, err := order.RestoreOrder(order.State{
			ID:            kernel.NewUUID(),
			CustomerID:    kernel.NewUUID(),
			Items:         []order.Item{item},
			Address:       "Jr. de la Unión 500",
			Subtotal:      decimal.NewFromInt(10),
			ShippingFee:   decimal.NewFromInt(5),
			Total:         decimal.NewFromInt(15),
			PaymentMethod: order.PaymentYape,
			PaymentStatus: order.PaymentPaid,
			Status:        order.EnRouteToCustomer,
			CourierID:     &courierID,
			DeliveryCode:  "123456",
		})

		require.NoError(t, err)
		assert.Equal(t, order.EnRouteToCustomer, o.Status())
		assert.Equal(t, "15", o.Total().String())
		assert.True(t, o.DeliveryCode().Matches("123456"))
	})

	t.Run("should reject assigned without courier", func(t *testing.T) {
		_, err := order.RestoreOrder(order.State{
			ID:            kernel.NewUUID(),
			CustomerID:    kernel.NewUUID(),
			Items:         []order.Item{item},
			Address:       "x",
			PaymentMethod: order.PaymentCash,
			PaymentStatus: order.PaymentPending,
			Status:        order.Assigned,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
