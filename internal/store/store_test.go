package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/model"
)

func testProduct(id, name string, price float64) model.Product {
	return model.Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: "Classic",
		Size:     model.SizeMedium,
		Stock:    10,
		Rating:   4.5,
		Reviews:  10,
	}
}

func newTestStore(products ...model.Product) *Store {
	return New(Snapshot{Products: products}, nil, nil)
}

func TestAddToCartMergesByProductID(t *testing.T) {
	bear := testProduct("1", "Classic Brown Teddy", 29.99)
	pocket := testProduct("3", "Tiny Pocket Bear", 12.99)
	st := newTestStore(bear, pocket)

	st.AddToCart(bear, 1)
	st.AddToCart(bear, 2)
	st.AddToCart(pocket, 1)
	st.AddToCart(bear, 4)

	cart := st.Cart()
	require.Len(t, cart, 2)
	assert.Equal(t, "1", cart[0].ID)
	assert.Equal(t, 7, cart[0].Quantity)
	assert.Equal(t, "3", cart[1].ID)
	assert.Equal(t, 1, cart[1].Quantity)
}

func TestAddToCartIgnoresStock(t *testing.T) {
	bear := testProduct("1", "Classic Brown Teddy", 29.99)
	bear.Stock = 2
	st := newTestStore(bear)

	// There is no reservation system: overselling is allowed.
	st.AddToCart(bear, 50)
	cart := st.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 50, cart[0].Quantity)
}

func TestUpdateCartQuantity(t *testing.T) {
	bear := testProduct("1", "Classic Brown Teddy", 29.99)

	tests := []struct {
		name      string
		quantity  int
		wantLines int
		wantQty   int
	}{
		{"positive sets exactly", 5, 1, 5},
		{"zero removes", 0, 0, 0},
		{"negative removes", -1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore(bear)
			st.AddToCart(bear, 3)

			st.UpdateCartQuantity("1", tt.quantity)

			cart := st.Cart()
			require.Len(t, cart, tt.wantLines)
			if tt.wantLines > 0 {
				assert.Equal(t, tt.wantQty, cart[0].Quantity)
			}
		})
	}
}

func TestUpdateCartQuantityIsNotAdditive(t *testing.T) {
	bear := testProduct("1", "Classic Brown Teddy", 29.99)
	st := newTestStore(bear)
	st.AddToCart(bear, 3)

	st.UpdateCartQuantity("1", 2)
	st.UpdateCartQuantity("1", 2)

	cart := st.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestUpdateCartQuantityUnknownID(t *testing.T) {
	st := newTestStore()
	assert.False(t, st.UpdateCartQuantity("nope", 3))
	assert.Empty(t, st.Cart())
}

func TestCartTotalReflectsLatestState(t *testing.T) {
	bear := testProduct("1", "Classic Brown Teddy", 29.99)
	pocket := testProduct("3", "Tiny Pocket Bear", 12.99)
	st := newTestStore(bear, pocket)

	assert.Zero(t, st.CartTotal())

	st.AddToCart(bear, 2)
	assert.InDelta(t, 59.98, st.CartTotal(), 1e-9)

	st.AddToCart(pocket, 1)
	assert.InDelta(t, 72.97, st.CartTotal(), 1e-9)

	st.UpdateCartQuantity("1", 1)
	assert.InDelta(t, 42.98, st.CartTotal(), 1e-9)

	st.RemoveFromCart("3")
	assert.InDelta(t, 29.99, st.CartTotal(), 1e-9)

	st.ClearCart()
	assert.Zero(t, st.CartTotal())
}

func TestPOSCartIsIndependent(t *testing.T) {
	bear := testProduct("1", "Classic Brown Teddy", 29.99)
	st := newTestStore(bear)

	st.AddToCart(bear, 1)
	st.AddToPOSCart(bear, 2)

	assert.Len(t, st.Cart(), 1)
	assert.Len(t, st.POSCart(), 1)
	assert.Equal(t, 2, st.POSCart()[0].Quantity)

	st.ClearPOSCart()
	assert.Empty(t, st.POSCart())
	assert.Len(t, st.Cart(), 1, "clearing the POS cart must not touch the customer cart")
}

func TestDeleteProductKeepsSnapshots(t *testing.T) {
	bear := testProduct("1", "Classic Brown Teddy", 29.99)
	st := newTestStore(bear)
	st.AddToCart(bear, 1)
	st.AddToPOSCart(bear, 2)
	st.AddOrder(model.Order{
		ID:        "100",
		Items:     []model.CartItem{{Product: bear, Quantity: 1}},
		Total:     32.39,
		Status:    model.StatusProcessing,
		CreatedAt: time.Now(),
	})

	require.True(t, st.DeleteProduct("1"))

	assert.Empty(t, st.Products())
	// Deletion does not cascade: carts and orders keep their copies.
	assert.Len(t, st.Cart(), 1)
	assert.Len(t, st.POSCart(), 1)
	require.Len(t, st.Orders(), 1)
	assert.Len(t, st.Orders()[0].Items, 1)
}

func TestDeleteProductUnknownID(t *testing.T) {
	st := newTestStore(testProduct("1", "Classic Brown Teddy", 29.99))
	assert.False(t, st.DeleteProduct("nope"))
	assert.Len(t, st.Products(), 1)
}

func TestUpdateProductPartialMerge(t *testing.T) {
	bear := testProduct("1", "Classic Brown Teddy", 29.99)
	st := newTestStore(bear)

	newPrice := 24.99
	newStock := 0
	require.True(t, st.UpdateProduct("1", ProductUpdate{Price: &newPrice, Stock: &newStock}))

	p, ok := st.Product("1")
	require.True(t, ok)
	assert.Equal(t, 24.99, p.Price)
	assert.Zero(t, p.Stock)
	assert.Equal(t, "Classic Brown Teddy", p.Name, "untouched fields must survive the merge")
	assert.Equal(t, "Classic", p.Category)

	assert.False(t, st.UpdateProduct("nope", ProductUpdate{Price: &newPrice}))
}

func TestAddProductAllowsDuplicateIDs(t *testing.T) {
	st := newTestStore()
	st.AddProduct(testProduct("1", "First", 1))
	st.AddProduct(testProduct("1", "Second", 2))
	assert.Len(t, st.Products(), 2)
}

func TestUpdateOrderStatusFreeTransitions(t *testing.T) {
	st := newTestStore()
	st.AddOrder(model.Order{ID: "100", Status: model.StatusDelivered})

	// Not a state machine: any status may follow any other.
	require.True(t, st.UpdateOrderStatus("100", model.StatusPending))
	assert.Equal(t, model.StatusPending, st.Orders()[0].Status)

	assert.False(t, st.UpdateOrderStatus("missing", model.StatusShipped))
}

func TestSetCurrentUser(t *testing.T) {
	st := newTestStore()
	assert.Equal(t, model.RoleNone, st.CurrentUser())

	st.SetCurrentUser(model.RoleCashier)
	assert.Equal(t, model.RoleCashier, st.CurrentUser())

	st.SetCurrentUser(model.RoleNone)
	assert.Equal(t, model.RoleNone, st.CurrentUser())
}

func TestSaverRunsOnEveryMutation(t *testing.T) {
	bear := testProduct("1", "Classic Brown Teddy", 29.99)
	var saves []Snapshot
	saver := SaverFunc(func(s Snapshot) error {
		saves = append(saves, s)
		return nil
	})
	st := New(Snapshot{Products: []model.Product{bear}}, saver, nil)

	st.AddToCart(bear, 1)
	st.SetCurrentUser(model.RoleAdmin)
	st.ClearCart()

	require.Len(t, saves, 3)
	assert.Len(t, saves[0].Cart, 1)
	assert.Equal(t, model.RoleAdmin, saves[1].CurrentUser)
	assert.Empty(t, saves[2].Cart)
	assert.Len(t, saves[2].Products, 1)
}

func TestSaverErrorDoesNotBlockMutation(t *testing.T) {
	bear := testProduct("1", "Classic Brown Teddy", 29.99)
	saver := SaverFunc(func(Snapshot) error { return assert.AnError })
	st := New(Snapshot{}, saver, nil)

	st.AddToCart(bear, 1)
	assert.Len(t, st.Cart(), 1, "a failed save must not roll back the mutation")
}

func TestSubscribe(t *testing.T) {
	bear := testProduct("1", "Classic Brown Teddy", 29.99)
	st := newTestStore(bear)

	var seen []Snapshot
	cancel := st.Subscribe(func(s Snapshot) { seen = append(seen, s) })

	st.AddToCart(bear, 2)
	require.Len(t, seen, 1)
	require.Len(t, seen[0].Cart, 1)
	assert.Equal(t, 2, seen[0].Cart[0].Quantity)

	cancel()
	st.ClearCart()
	assert.Len(t, seen, 1, "cancelled observers must not be notified")
}

func TestSnapshotIsACopy(t *testing.T) {
	bear := testProduct("1", "Classic Brown Teddy", 29.99)
	st := newTestStore(bear)

	snap := st.Snapshot()
	snap.Products[0].Name = "mutated"

	p, ok := st.Product("1")
	require.True(t, ok)
	assert.Equal(t, "Classic Brown Teddy", p.Name)
}
