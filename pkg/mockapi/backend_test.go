package mockapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendReset(t *testing.T) {
	backend := NewBackend()

	cart := newTestCart(t, backend, "IE")
	_, err := backend.SellingPlanGroups().Create(validGroupInput())
	require.NoError(t, err)

	backend.Reset()

	assert.False(t, backend.Carts().Exists(cart.ID))
	groups, err := backend.SellingPlanGroups().List(0, 0)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestBackendOptions(t *testing.T) {
	frozen := time.Date(2023, 5, 1, 12, 30, 0, 0, time.UTC)
	backend := NewBackend(
		WithShopBaseURL("example.myshopify.com"),
		WithClock(func() time.Time { return frozen }),
	)

	cart := newTestCart(t, backend, "IE")
	assert.Contains(t, cart.CheckoutURL, "https://example.myshopify.com/cart/c/")
	assert.Equal(t, "2023-05-01T12:30:00Z", cart.CreatedAt)
	assert.Equal(t, cart.CreatedAt, cart.UpdatedAt)
}
