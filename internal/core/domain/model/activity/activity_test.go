package activity_test

import (
	"testing"
	"time"

	"tailoring/internal/core/domain/model/activity"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func newTestOrder(t *testing.T, deadline time.Time) *order.Order {
	t.Helper()
	item, err := order.NewItem("Shirt", 1, money(t, 500), "Cotton")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		deadline,
		money(t, 500),
		"",
		[]order.Item{item},
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrderCreated(t *testing.T) {
	o := newTestOrder(t, time.Now().AddDate(0, 0, 10))
	now := time.Now()

	a, err := activity.NewOrderCreated(kernel.NewUUID(), o, now)

	require.NoError(t, err)
	assert.Equal(t, activity.TypeOrderCreated, a.ActivityType())
	assert.Equal(t, "New order created", a.Description())
	assert.Nil(t, a.OldStatus())
	require.NotNil(t, a.NewStatus())
	assert.Equal(t, "NEW", *a.NewStatus())
	assert.True(t, a.OrderID().IsEqual(o.ID()))
}

func TestNewStatusChanged(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	farDeadline := now.AddDate(0, 0, 10)

	t.Run("should describe each pipeline stage", func(t *testing.T) {
		cases := map[order.Status]string{
			order.StatusCutting:   "Your order progressed to Cutting stage",
			order.StatusIroning:   "Your order progressed to Ironing stage",
			order.StatusCancelled: "Your order has been cancelled",
			order.StatusDelivered: "Your order has been delivered",
		}

		for status, want := range cases {
			o := newTestOrder(t, farDeadline)
			a, err := activity.NewStatusChanged(kernel.NewUUID(), o, order.StatusNew, status, now)
			require.NoError(t, err)
			assert.Equal(t, want, a.Description())
		}
	})

	t.Run("should record old and new status", func(t *testing.T) {
		o := newTestOrder(t, farDeadline)

		a, err := activity.NewStatusChanged(kernel.NewUUID(), o, order.StatusCutting, order.StatusStitching, now)

		require.NoError(t, err)
		require.NotNil(t, a.OldStatus())
		require.NotNil(t, a.NewStatus())
		assert.Equal(t, "CUTTING", *a.OldStatus())
		assert.Equal(t, "STITCHING", *a.NewStatus())
	})

	t.Run("should add countdown hint when stitching near deadline", func(t *testing.T) {
		o := newTestOrder(t, now.AddDate(0, 0, 2))

		a, err := activity.NewStatusChanged(kernel.NewUUID(), o, order.StatusCutting, order.StatusStitching, now)

		require.NoError(t, err)
		assert.Equal(t,
			"Your order progressed to Stitching stage - Delivery expected in 2 days",
			a.Description())
	})

	t.Run("should use singular day form", func(t *testing.T) {
		o := newTestOrder(t, now.AddDate(0, 0, 1))

		a, err := activity.NewStatusChanged(kernel.NewUUID(), o, order.StatusIroning, order.StatusCompleted, now)

		require.NoError(t, err)
		assert.Equal(t,
			"Your order is completed and ready for pickup - Delivery expected in 1 day",
			a.Description())
	})

	t.Run("should hint zero days on deadline day", func(t *testing.T) {
		o := newTestOrder(t, now.Add(3*time.Hour))

		a, err := activity.NewStatusChanged(kernel.NewUUID(), o, order.StatusIroning, order.StatusCompleted, now)

		require.NoError(t, err)
		assert.Equal(t,
			"Your order is completed and ready for pickup - Delivery expected in 0 days",
			a.Description())
	})

	t.Run("should omit hint when deadline is far away", func(t *testing.T) {
		o := newTestOrder(t, farDeadline)

		a, err := activity.NewStatusChanged(kernel.NewUUID(), o, order.StatusCutting, order.StatusStitching, now)

		require.NoError(t, err)
		assert.Equal(t, "Your order progressed to Stitching stage", a.Description())
	})

	t.Run("should omit hint when deadline has passed", func(t *testing.T) {
		o := newTestOrder(t, now.AddDate(0, 0, -1))

		a, err := activity.NewStatusChanged(kernel.NewUUID(), o, order.StatusIroning, order.StatusCompleted, now)

		require.NoError(t, err)
		assert.Equal(t, "Your order is completed and ready for pickup", a.Description())
	})

	t.Run("should omit hint for cutting even near deadline", func(t *testing.T) {
		o := newTestOrder(t, now.AddDate(0, 0, 1))

		a, err := activity.NewStatusChanged(kernel.NewUUID(), o, order.StatusNew, order.StatusCutting, now)

		require.NoError(t, err)
		assert.Equal(t, "Your order progressed to Cutting stage", a.Description())
	})
}

func TestNewPaymentReceived(t *testing.T) {
	o := newTestOrder(t, time.Now().AddDate(0, 0, 7))

	a, err := activity.NewPaymentReceived(kernel.NewUUID(), o, money(t, 250.5), time.Now())

	require.NoError(t, err)
	assert.Equal(t, activity.TypePaymentReceived, a.ActivityType())
	assert.Equal(t, "Payment of ₹250.50 received", a.Description())
	assert.Nil(t, a.OldStatus())
	assert.Nil(t, a.NewStatus())
}

func TestNewOrderDelivered(t *testing.T) {
	o := newTestOrder(t, time.Now().AddDate(0, 0, 7))

	a, err := activity.NewOrderDelivered(kernel.NewUUID(), o, time.Now())

	require.NoError(t, err)
	assert.Equal(t, "Order delivered successfully", a.Description())
	require.NotNil(t, a.NewStatus())
	assert.Equal(t, "DELIVERED", *a.NewStatus())
}

func TestNewOrderCancelled(t *testing.T) {
	t.Run("should include reason when given", func(t *testing.T) {
		o := newTestOrder(t, time.Now().AddDate(0, 0, 7))

		a, err := activity.NewOrderCancelled(kernel.NewUUID(), o, "customer moved away", time.Now())

		require.NoError(t, err)
		assert.Equal(t, "Order cancelled: customer moved away", a.Description())
	})

	t.Run("should work without reason", func(t *testing.T) {
		o := newTestOrder(t, time.Now().AddDate(0, 0, 7))

		a, err := activity.NewOrderCancelled(kernel.NewUUID(), o, "", time.Now())

		require.NoError(t, err)
		assert.Equal(t, "Order cancelled", a.Description())
	})
}

func TestRestoreActivity(t *testing.T) {
	t.Run("should restore persisted entry", func(t *testing.T) {
		oldStatus := "NEW"
		newStatus := "CUTTING"

		a, err := activity.RestoreActivity(
			kernel.NewUUID(),
			kernel.NewUUID(),
			activity.TypeStatusChanged,
			"Your order progressed to Cutting stage",
			&oldStatus,
			&newStatus,
			time.Now(),
		)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
	})

	t.Run("should reject invalid activity type", func(t *testing.T) {
		_, err := activity.RestoreActivity(
			kernel.NewUUID(),
			kernel.NewUUID(),
			activity.TypeUnknown,
			"",
			nil,
			nil,
			time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("should reject unconstructed activity use", func(t *testing.T) {
		var a activity.Activity

		assert.ErrorIs(t, a.Validate(), activity.ErrActivityIsNotConstructed)
	})
}
