//go:build unit

package order_test

import (
	"testing"
	"time"

	"table-orders/internal/domain/order"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 30, 0, 123456000, time.UTC)

	t.Run("assigns all fields", func(t *testing.T) {
		o := order.New(5, 12, now)

		require.NotNil(t, o)
		assert.NotEqual(t, uuid.Nil, o.ID)
		assert.Equal(t, uuid.Version(4), o.ID.Version())
		assert.Equal(t, int32(5), o.TableNumber)
		assert.Equal(t, int32(12), o.MenuItemID)
		assert.Equal(t, now, o.CreatedAt)
	})

	t.Run("matches the expected shape", func(t *testing.T) {
		actual := order.New(5, 12, now)
		expected := &order.Order{
			TableNumber: 5,
			MenuItemID:  12,
			CreatedAt:   now,
		}

		if diff := cmp.Diff(expected, actual, cmpopts.IgnoreFields(order.Order{}, "ID")); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("normalizes creation time to UTC", func(t *testing.T) {
		loc := time.FixedZone("JST", 9*60*60)
		local := time.Date(2025, 6, 1, 21, 30, 0, 0, loc)

		o := order.New(1, 1, local)

		assert.Equal(t, time.UTC, o.CreatedAt.Location())
		assert.True(t, o.CreatedAt.Equal(local))
	})

	t.Run("sub-second precision is retained", func(t *testing.T) {
		o := order.New(1, 1, now)
		assert.Equal(t, 123456000, o.CreatedAt.Nanosecond())
	})
}

func TestNew_UniqueIdentifiers(t *testing.T) {
	const n = 1000
	now := time.Now()

	seen := make(map[uuid.UUID]struct{}, n)
	for range n {
		o := order.New(7, 3, now)
		_, dup := seen[o.ID]
		require.False(t, dup, "duplicate order ID %s", o.ID)
		seen[o.ID] = struct{}{}
	}
}
