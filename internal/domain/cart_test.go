package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ---------------------------------------------------------------------------
// Subtotal
// ---------------------------------------------------------------------------

func TestSubtotal_SingleItem(t *testing.T) {
	c := &Cart{
		Items: []LineItem{
			{UnitPrice: 19.99, Quantity: 2},
		},
	}
	assert.InDelta(t, 39.98, c.Subtotal(), 1e-9)
}

func TestSubtotal_MultipleItems(t *testing.T) {
	c := &Cart{
		Items: []LineItem{
			{UnitPrice: 20, Quantity: 2},
			{UnitPrice: 5.50, Quantity: 3},
			{UnitPrice: 25, Quantity: 1},
		},
	}
	// 40 + 16.50 + 25 = 81.50
	assert.InDelta(t, 81.50, c.Subtotal(), 1e-9)
}

func TestSubtotal_EmptyCart(t *testing.T) {
	c := &Cart{Items: []LineItem{}}
	assert.Zero(t, c.Subtotal())
}

func TestSubtotal_NilItems(t *testing.T) {
	c := &Cart{}
	assert.Zero(t, c.Subtotal())
}

// ---------------------------------------------------------------------------
// ItemCount
// ---------------------------------------------------------------------------

func TestItemCount(t *testing.T) {
	c := &Cart{
		Items: []LineItem{
			{Quantity: 2},
			{Quantity: 3},
			{Quantity: 1},
		},
	}
	assert.Equal(t, 6, c.ItemCount())
}

func TestItemCount_EmptyCart(t *testing.T) {
	c := &Cart{}
	assert.Zero(t, c.ItemCount())
}

// ---------------------------------------------------------------------------
// FindItemIndex
// ---------------------------------------------------------------------------

func TestFindItemIndex_Found(t *testing.T) {
	c := &Cart{
		Items: []LineItem{
			{ProductID: 1, Size: "M", Color: "Red"},
			{ProductID: 2, Size: DefaultSize, Color: DefaultColor},
		},
	}
	assert.Equal(t, 0, c.FindItemIndex(1, "M", "Red"))
	assert.Equal(t, 1, c.FindItemIndex(2, DefaultSize, DefaultColor))
}

func TestFindItemIndex_SameProductDifferentOptions(t *testing.T) {
	c := &Cart{
		Items: []LineItem{
			{ProductID: 1, Size: "M", Color: "Red"},
		},
	}
	assert.Equal(t, -1, c.FindItemIndex(1, "L", "Red"))
	assert.Equal(t, -1, c.FindItemIndex(1, "M", "Blue"))
}

func TestFindItemIndex_EmptyCart(t *testing.T) {
	c := &Cart{}
	assert.Equal(t, -1, c.FindItemIndex(1, "M", "Red"))
}

// ---------------------------------------------------------------------------
// Expired
// ---------------------------------------------------------------------------

func TestExpired(t *testing.T) {
	now := time.Now().UTC()
	c := &Cart{ExpiresAt: now.Add(24 * time.Hour)}

	assert.False(t, c.Expired(now))
	assert.False(t, c.Expired(now.Add(24*time.Hour))) // boundary: not yet past
	assert.True(t, c.Expired(now.Add(24*time.Hour+time.Second)))
}

func TestExpired_ZeroExpiry(t *testing.T) {
	c := &Cart{}
	assert.False(t, c.Expired(time.Now()))
}

func TestLineTotal(t *testing.T) {
	li := LineItem{UnitPrice: 49.99, Quantity: 3}
	assert.InDelta(t, 149.97, li.LineTotal(), 1e-9)
}
