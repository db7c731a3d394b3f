package order_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "in_progress", "completed", "cancelled"} {
		status, err := order.ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, status.String())
	}

	_, err := order.ParseStatus("Pending")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_IsOpen(t *testing.T) {
	assert.True(t, order.Pending.IsOpen())
	assert.True(t, order.InProgress.IsOpen())
	assert.False(t, order.Completed.IsOpen())
	assert.False(t, order.Cancelled.IsOpen())
}

func TestParsePlatform(t *testing.T) {
	for _, p := range order.Platforms() {
		parsed, err := order.ParsePlatform(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	_, err := order.ParsePlatform("tiktok")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGenerateCode(t *testing.T) {
	t.Run("uses the last six digits of unix millis", func(t *testing.T) {
		now := time.UnixMilli(1_767_225_600_123)

		assert.Equal(t, order.Code("ORD-600123"), order.GenerateCode(now))
	})

	t.Run("pads to six digits", func(t *testing.T) {
		now := time.UnixMilli(1_767_000_000_042)

		assert.Equal(t, order.Code("ORD-000042"), order.GenerateCode(now))
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should create an unpriced item", func(t *testing.T) {
		i, err := order.NewItem(kernel.NewUUID(), "Custom Shirt", nil)

		require.NoError(t, err)
		assert.Nil(t, i.Price())
	})

	t.Run("should copy the price", func(t *testing.T) {
		price, _ := kernel.ParseMoney("5000")

		i, err := order.NewItem(kernel.NewUUID(), "Custom Shirt", &price)

		require.NoError(t, err)
		require.NotNil(t, i.Price())
		assert.Equal(t, "5000.00", i.Price().String())
	})

	t.Run("should require a name", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), " ", nil)

		require.ErrorIs(t, err, order.ErrItemNameIsRequired)
	})
}
