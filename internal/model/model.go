package model

import "time"

// Size is the fixed plush size enumeration used by the catalog.
type Size string

const (
	SizeSmall      Size = "Small"
	SizeMedium     Size = "Medium"
	SizeLarge      Size = "Large"
	SizeExtraLarge Size = "Extra Large"
)

// Role selects which top-level view is rendered. It is not a security
// boundary: an empty Role means no role has been picked yet.
type Role string

const (
	RoleNone     Role = ""
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
	RoleCashier  Role = "cashier"
)

// OrderStatus is a plain label; any status may follow any other.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
)

// Product is a catalog entry. OriginalPrice is zero when the product is
// not discounted; Stock of zero means unavailable for purchase.
type Product struct {
	ID            string  `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Description   string  `json:"description" yaml:"description"`
	Price         float64 `json:"price" yaml:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty" yaml:"originalPrice,omitempty"`
	Image         string  `json:"image" yaml:"image"`
	Category      string  `json:"category" yaml:"category"`
	Size          Size    `json:"size" yaml:"size"`
	Stock         int     `json:"stock" yaml:"stock"`
	Featured      bool    `json:"featured,omitempty" yaml:"featured,omitempty"`
	Rating        float64 `json:"rating" yaml:"rating"`
	Reviews       int     `json:"reviews" yaml:"reviews"`
}

// OnSale reports whether the product carries a struck-through price.
func (p Product) OnSale() bool {
	return p.OriginalPrice > p.Price && p.OriginalPrice > 0
}

// CartItem is a product plus a purchase quantity. The product fields are
// a snapshot taken when the item was added, so later catalog edits do
// not rewrite carts or historical orders.
type CartItem struct {
	Product  `yaml:",inline"`
	Quantity int `json:"quantity" yaml:"quantity"`
}

// Subtotal is the line total for this item.
func (ci CartItem) Subtotal() float64 {
	return ci.Price * float64(ci.Quantity)
}

// Order is a completed transaction. Items are frozen copies of the cart
// at checkout time and Total already includes tax (and shipping for
// customer orders).
type Order struct {
	ID            string      `json:"id"`
	Items         []CartItem  `json:"items"`
	Total         float64     `json:"total"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	CustomerName  string      `json:"customerName,omitempty"`
	CustomerEmail string      `json:"customerEmail,omitempty"`
}
