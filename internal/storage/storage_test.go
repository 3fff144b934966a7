package storage

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cartPrefix = "gid://shopify/Cart/"

func TestSetAndGet(t *testing.T) {
	s := NewMemoryStore()

	s.Set(cartPrefix, "a", "cart-a")
	assert.Equal(t, "cart-a", s.Get(cartPrefix, "a"))
	assert.Nil(t, s.Get(cartPrefix, "missing"))
	assert.Nil(t, s.Get("other-prefix", "a"))
}

func TestSetOverwrite(t *testing.T) {
	s := NewMemoryStore()

	s.Set(cartPrefix, "a", 1)
	s.Set(cartPrefix, "a", 2)
	assert.Equal(t, 2, s.Get(cartPrefix, "a"))
	assert.Len(t, s.List(cartPrefix, 0, 0), 1)
}

func TestHas(t *testing.T) {
	s := NewMemoryStore()

	assert.False(t, s.Has(cartPrefix, "a"))
	s.Set(cartPrefix, "a", nil)
	assert.True(t, s.Has(cartPrefix, "a"))
}

func TestDelete(t *testing.T) {
	s := NewMemoryStore()

	s.Set(cartPrefix, "a", 1)
	assert.True(t, s.Delete(cartPrefix, "a"))
	assert.False(t, s.Delete(cartPrefix, "a"))
	assert.False(t, s.Has(cartPrefix, "a"))
}

func TestListInsertionOrder(t *testing.T) {
	s := NewMemoryStore()

	for i := 0; i < 5; i++ {
		s.Set(cartPrefix, fmt.Sprintf("id-%d", i), i)
	}
	got := s.List(cartPrefix, 0, 0)
	require.Len(t, got, 5)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestListOrderSurvivesDelete(t *testing.T) {
	s := NewMemoryStore()

	s.Set(cartPrefix, "a", "a")
	s.Set(cartPrefix, "b", "b")
	s.Set(cartPrefix, "c", "c")
	s.Delete(cartPrefix, "b")

	got := s.List(cartPrefix, 0, 0)
	assert.Equal(t, []any{"a", "c"}, got)
}

func TestListPagination(t *testing.T) {
	s := NewMemoryStore()
	for i := 0; i < 10; i++ {
		s.Set(cartPrefix, fmt.Sprintf("id-%d", i), i)
	}

	assert.Equal(t, []any{2, 3, 4}, s.List(cartPrefix, 2, 3))
	assert.Equal(t, []any{8, 9}, s.List(cartPrefix, 8, 5))
	assert.Nil(t, s.List(cartPrefix, 20, 5))

	// Zero limit means the whole list, regardless of offset.
	assert.Len(t, s.List(cartPrefix, 3, 0), 10)
}

func TestClear(t *testing.T) {
	s := NewMemoryStore()

	s.Set(cartPrefix, "a", 1)
	s.Set("other", "b", 2)
	s.Clear()

	assert.False(t, s.Has(cartPrefix, "a"))
	assert.False(t, s.Has("other", "b"))
	assert.Nil(t, s.List(cartPrefix, 0, 0))
}
