// Package checkout implements the totals math shared by the cart panel
// and the point-of-sale terminal, and the two flows that turn a cart
// into a recorded order.
package checkout

import (
	"errors"
	"strconv"
	"time"

	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/model"
	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/store"
)

// Flat 8% tax on every sale; customer orders ship free above $50,
// otherwise at a flat rate. POS sales have no shipping component.
const (
	TaxRate               = 0.08
	FreeShippingThreshold = 50.0
	FlatShippingRate      = 5.99
)

// WalkInCustomer is the attribution used when a POS sale has no name.
const WalkInCustomer = "Walk-in Customer"

// ErrEmptyCart is returned when a checkout is attempted on an empty
// cart; the store is left untouched.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// Totals is the checkout breakdown displayed to the user and folded
// into the order total.
type Totals struct {
	Subtotal float64
	Tax      float64
	Shipping float64
	Total    float64
}

// Tax returns the flat-rate tax on a subtotal.
func Tax(subtotal float64) float64 {
	return subtotal * TaxRate
}

// Shipping returns the customer shipping charge: free strictly above
// the threshold, flat rate at or below it.
func Shipping(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return FlatShippingRate
}

// CustomerTotals computes the online-checkout breakdown: tax plus a
// shipping component.
func CustomerTotals(subtotal float64) Totals {
	tax := Tax(subtotal)
	shipping := Shipping(subtotal)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}
}

// POSTotals computes the in-person breakdown: tax only, no shipping.
func POSTotals(subtotal float64) Totals {
	tax := Tax(subtotal)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// NewOrderID mints a time-derived order token, like the original
// receipt numbers.
func NewOrderID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// ProcessPOSSale turns the current POS cart into a processing order,
// records it and clears the POS cart. Stock is not decremented; there
// is no reservation system.
func ProcessPOSSale(st *store.Store, customerName string) (model.Order, error) {
	items := st.POSCart()
	if len(items) == 0 {
		return model.Order{}, ErrEmptyCart
	}
	if customerName == "" {
		customerName = WalkInCustomer
	}
	totals := POSTotals(st.POSCartTotal())
	order := model.Order{
		ID:           NewOrderID(),
		Items:        items,
		Total:        totals.Total,
		Status:       model.StatusProcessing,
		CreatedAt:    time.Now(),
		CustomerName: customerName,
	}
	st.AddOrder(order)
	st.ClearPOSCart()
	return order, nil
}

// ProcessCustomerCheckout turns the customer cart into a pending order
// with shipping folded into the total, records it and clears the cart.
func ProcessCustomerCheckout(st *store.Store, name, email string) (model.Order, error) {
	items := st.Cart()
	if len(items) == 0 {
		return model.Order{}, ErrEmptyCart
	}
	totals := CustomerTotals(st.CartTotal())
	order := model.Order{
		ID:            NewOrderID(),
		Items:         items,
		Total:         totals.Total,
		Status:        model.StatusPending,
		CreatedAt:     time.Now(),
		CustomerName:  name,
		CustomerEmail: email,
	}
	st.AddOrder(order)
	st.ClearCart()
	return order, nil
}
