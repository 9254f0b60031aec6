// internal/services/cart_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func addReq(productID, size string, price float64, quantity int) *AddItemRequest {
	return &AddItemRequest{
		ProductID: productID,
		Name:      "Test Jacket",
		Price:     floatPtr(price),
		Image:     "/test.png",
		Size:      size,
		Quantity:  quantity,
	}
}

func TestAddItemCreatesLineWithGeneratedID(t *testing.T) {
	svc := NewCartService()

	cart, err := svc.AddItem("s1", addReq("ben-10-jacket", "M", 79.99, 2))
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.NotEmpty(t, cart.Items[0].ID)
	assert.InDelta(t, 159.98, cart.Total, 1e-9)
	assert.Equal(t, 2, cart.ItemCount)
}

func TestAddItemMergesByProductAndSize(t *testing.T) {
	svc := NewCartService()

	_, err := svc.AddItem("s1", addReq("ben-10-jacket", "M", 79.99, 1))
	require.NoError(t, err)
	cart, err := svc.AddItem("s1", addReq("ben-10-jacket", "M", 79.99, 2))
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestAddItemRejectsBadInput(t *testing.T) {
	svc := NewCartService()

	_, err := svc.AddItem("s1", addReq("ben-10-jacket", "M", 79.99, 0))
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddItem("s1", addReq("ben-10-jacket", "M", -1, 1))
	assert.ErrorIs(t, err, ErrInvalidPrice)

	req := addReq("ben-10-jacket", "M", 0, 1)
	req.Price = nil
	_, err = svc.AddItem("s1", req)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	// Nothing should have been stored.
	assert.Empty(t, svc.GetCart("s1").Items)
}

func TestAddItemAcceptsZeroPrice(t *testing.T) {
	svc := NewCartService()

	cart, err := svc.AddItem("s1", addReq("freebie", "M", 0, 1))
	require.NoError(t, err)
	assert.Zero(t, cart.Total)
	assert.Equal(t, 1, cart.ItemCount)
}

func TestAddItemDefaultsImage(t *testing.T) {
	svc := NewCartService()

	req := addReq("ben-10-jacket", "M", 79.99, 1)
	req.Image = ""
	cart, err := svc.AddItem("s1", req)
	require.NoError(t, err)
	assert.Equal(t, "/placeholder.svg", cart.Items[0].Image)
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	svc := NewCartService()

	cart, err := svc.AddItem("s1", addReq("ben-10-jacket", "M", 79.99, 5))
	require.NoError(t, err)
	lineID := cart.Items[0].ID

	cart, err = svc.UpdateQuantity("s1", lineID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.InDelta(t, 159.98, cart.Total, 1e-9)
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	svc := NewCartService()

	cart, err := svc.AddItem("s1", addReq("ben-10-jacket", "M", 79.99, 5))
	require.NoError(t, err)

	cart, err = svc.UpdateQuantity("s1", cart.Items[0].ID, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestUpdateQuantityRejectsNegative(t *testing.T) {
	svc := NewCartService()

	_, err := svc.UpdateQuantity("s1", "any", -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestUpdateQuantityUnknownLineIsNoOp(t *testing.T) {
	svc := NewCartService()

	before, err := svc.AddItem("s1", addReq("ben-10-jacket", "M", 79.99, 1))
	require.NoError(t, err)

	after, err := svc.UpdateQuantity("s1", "missing", 4)
	require.NoError(t, err)
	assert.Equal(t, before.Items, after.Items)
}

func TestRemoveItem(t *testing.T) {
	svc := NewCartService()

	cart, err := svc.AddItem("s1", addReq("ben-10-jacket", "M", 79.99, 1))
	require.NoError(t, err)

	cart = svc.RemoveItem("s1", cart.Items[0].ID)
	assert.Empty(t, cart.Items)

	// Removing again is a no-op.
	cart = svc.RemoveItem("s1", "missing")
	assert.Empty(t, cart.Items)
}

func TestClearCart(t *testing.T) {
	svc := NewCartService()

	_, err := svc.AddItem("s1", addReq("ben-10-jacket", "M", 79.99, 3))
	require.NoError(t, err)

	cart := svc.ClearCart("s1")
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
	assert.Zero(t, cart.ItemCount)
}

func TestSessionsAreIsolated(t *testing.T) {
	svc := NewCartService()

	_, err := svc.AddItem("s1", addReq("ben-10-jacket", "M", 79.99, 1))
	require.NoError(t, err)
	_, err = svc.AddItem("s2", addReq("naruto-jacket", "L", 89.99, 2))
	require.NoError(t, err)

	assert.Equal(t, 1, svc.GetCart("s1").ItemCount)
	assert.Equal(t, 2, svc.GetCart("s2").ItemCount)

	svc.ClearCart("s1")
	assert.Empty(t, svc.GetCart("s1").Items)
	assert.Len(t, svc.GetCart("s2").Items, 1)
}

func TestGetCartUnknownSessionIsEmpty(t *testing.T) {
	svc := NewCartService()

	cart := svc.GetCart("never-seen")
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
	assert.Zero(t, cart.ItemCount)
}
