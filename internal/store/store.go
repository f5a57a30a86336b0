// Package store holds the single source of truth for the storefront:
// the catalog, both carts, the order history and the selected role.
// Every mutation produces a fresh snapshot that is handed to the
// persistence hook and to all subscribed observers.
package store

import (
	"sync"

	"go.uber.org/zap"

	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/model"
)

// Saver persists a snapshot of the store. Save is invoked after every
// mutation, fire-and-forget: a failed save is logged, never surfaced to
// the mutating caller.
type Saver interface {
	Save(Snapshot) error
}

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(Snapshot) error

func (f SaverFunc) Save(s Snapshot) error { return f(s) }

// Snapshot is the full persisted state, matching the on-disk layout.
type Snapshot struct {
	CurrentUser model.Role       `json:"currentUser,omitempty"`
	Products    []model.Product  `json:"products"`
	Cart        []model.CartItem `json:"cart"`
	POSCart     []model.CartItem `json:"posCart"`
	Orders      []model.Order    `json:"orders"`
}

// Listener observes the store; it receives the post-mutation snapshot.
type Listener func(Snapshot)

// Store is an explicitly constructed state container. UI layers receive
// read-only copies through the accessor methods and mutate through the
// operation methods; they never touch the collections directly.
type Store struct {
	mu          sync.RWMutex
	currentUser model.Role
	products    []model.Product
	cart        []model.CartItem
	posCart     []model.CartItem
	orders      []model.Order

	saver     Saver
	log       *zap.Logger
	listeners map[int]Listener
	nextSub   int
}

// New builds a Store seeded from the given snapshot. saver may be nil
// (state is then kept in memory only) and log may be nil.
func New(initial Snapshot, saver Saver, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		currentUser: initial.CurrentUser,
		products:    append([]model.Product(nil), initial.Products...),
		cart:        append([]model.CartItem(nil), initial.Cart...),
		posCart:     append([]model.CartItem(nil), initial.POSCart...),
		orders:      append([]model.Order(nil), initial.Orders...),
		saver:       saver,
		log:         log,
		listeners:   map[int]Listener{},
	}
}

// Subscribe registers an observer and returns a cancel function.
func (s *Store) Subscribe(fn Listener) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// snapshotLocked copies the full state; callers must hold s.mu.
func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		CurrentUser: s.currentUser,
		Products:    append([]model.Product(nil), s.products...),
		Cart:        append([]model.CartItem(nil), s.cart...),
		POSCart:     append([]model.CartItem(nil), s.posCart...),
		Orders:      append([]model.Order(nil), s.orders...),
	}
}

// commit persists the snapshot and notifies observers. Runs outside the
// lock so listeners may call back into the store.
func (s *Store) commit(snap Snapshot, fns []Listener) {
	if s.saver != nil {
		if err := s.saver.Save(snap); err != nil {
			s.log.Warn("failed to persist store snapshot", zap.Error(err))
		}
	}
	for _, fn := range fns {
		fn(snap)
	}
}

// mutate runs fn under the lock, then commits the resulting snapshot.
func (s *Store) mutate(fn func()) {
	s.mu.Lock()
	fn()
	snap := s.snapshotLocked()
	fns := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		fns = append(fns, l)
	}
	s.mu.Unlock()
	s.commit(snap, fns)
}

// Snapshot returns a copy of the full current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// CurrentUser returns the selected role.
func (s *Store) CurrentUser() model.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUser
}

// SetCurrentUser replaces the role selector. No validation: the role is
// a view selector, not a credential.
func (s *Store) SetCurrentUser(role model.Role) {
	s.mutate(func() {
		s.currentUser = role
	})
	s.log.Debug("role switched", zap.String("role", string(role)))
}

// Products returns a copy of the catalog.
func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Product(nil), s.products...)
}

// Product looks a catalog entry up by id.
func (s *Store) Product(id string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// AddProduct appends a catalog entry. The caller supplies the id;
// duplicates are not detected, matching the original behavior.
func (s *Store) AddProduct(p model.Product) {
	s.mutate(func() {
		s.products = append(s.products, p)
	})
	s.log.Info("product added",
		zap.String("product_id", p.ID),
		zap.String("name", p.Name))
}

// ProductUpdate carries a partial product edit; nil fields are left
// untouched.
type ProductUpdate struct {
	Name          *string
	Description   *string
	Price         *float64
	OriginalPrice *float64
	Image         *string
	Category      *string
	Size          *model.Size
	Stock         *int
	Featured      *bool
	Rating        *float64
	Reviews       *int
}

func (u ProductUpdate) apply(p *model.Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.OriginalPrice != nil {
		p.OriginalPrice = *u.OriginalPrice
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Size != nil {
		p.Size = *u.Size
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
	}
	if u.Featured != nil {
		p.Featured = *u.Featured
	}
	if u.Rating != nil {
		p.Rating = *u.Rating
	}
	if u.Reviews != nil {
		p.Reviews = *u.Reviews
	}
}

// UpdateProduct merges the given fields into the matching product.
// Returns false (and changes nothing) when the id is unknown.
func (s *Store) UpdateProduct(id string, upd ProductUpdate) bool {
	found := false
	s.mutate(func() {
		for i := range s.products {
			if s.products[i].ID == id {
				upd.apply(&s.products[i])
				found = true
				return
			}
		}
	})
	if !found {
		s.log.Warn("update for unknown product", zap.String("product_id", id))
	}
	return found
}

// DeleteProduct removes the matching catalog entry. Cart entries and
// historical orders keep their snapshots of the product; deletion does
// not cascade.
func (s *Store) DeleteProduct(id string) bool {
	found := false
	s.mutate(func() {
		for i, p := range s.products {
			if p.ID == id {
				s.products = append(s.products[:i], s.products[i+1:]...)
				found = true
				return
			}
		}
	})
	if found {
		s.log.Info("product deleted", zap.String("product_id", id))
	}
	return found
}

// addItem merges a product into a cart slice: an existing line for the
// same product id has its quantity bumped, otherwise a new line is
// appended. Quantity is deliberately not checked against stock.
func addItem(items []model.CartItem, p model.Product, quantity int) []model.CartItem {
	for i := range items {
		if items[i].ID == p.ID {
			items[i].Quantity += quantity
			return items
		}
	}
	return append(items, model.CartItem{Product: p, Quantity: quantity})
}

func removeItem(items []model.CartItem, id string) ([]model.CartItem, bool) {
	for i := range items {
		if items[i].ID == id {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}

// setQuantity sets a line to exactly quantity, removing it when the
// quantity drops to zero or below.
func setQuantity(items []model.CartItem, id string, quantity int) ([]model.CartItem, bool) {
	if quantity <= 0 {
		return removeItem(items, id)
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			return items, true
		}
	}
	return items, false
}

func cartTotal(items []model.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Subtotal()
	}
	return total
}

// Cart returns a copy of the customer cart.
func (s *Store) Cart() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.CartItem(nil), s.cart...)
}

// AddToCart puts quantity units of the product in the customer cart,
// merging with an existing line for the same product.
func (s *Store) AddToCart(p model.Product, quantity int) {
	s.mutate(func() {
		s.cart = addItem(s.cart, p, quantity)
	})
	s.log.Debug("added to cart",
		zap.String("product_id", p.ID),
		zap.Int("quantity", quantity))
}

// RemoveFromCart drops the line for the given product id.
func (s *Store) RemoveFromCart(id string) bool {
	found := false
	s.mutate(func() {
		s.cart, found = removeItem(s.cart, id)
	})
	return found
}

// UpdateCartQuantity sets the line to exactly quantity; zero or less
// removes the line.
func (s *Store) UpdateCartQuantity(id string, quantity int) bool {
	found := false
	s.mutate(func() {
		s.cart, found = setQuantity(s.cart, id, quantity)
	})
	return found
}

// ClearCart empties the customer cart.
func (s *Store) ClearCart() {
	s.mutate(func() {
		s.cart = nil
	})
}

// CartTotal is the sum of price*quantity over the customer cart,
// recomputed from live state on every call.
func (s *Store) CartTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cartTotal(s.cart)
}

// POSCart returns a copy of the point-of-sale cart.
func (s *Store) POSCart() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.CartItem(nil), s.posCart...)
}

// AddToPOSCart mirrors AddToCart for the point-of-sale cart.
func (s *Store) AddToPOSCart(p model.Product, quantity int) {
	s.mutate(func() {
		s.posCart = addItem(s.posCart, p, quantity)
	})
	s.log.Debug("added to pos cart",
		zap.String("product_id", p.ID),
		zap.Int("quantity", quantity))
}

// RemoveFromPOSCart drops the line for the given product id.
func (s *Store) RemoveFromPOSCart(id string) bool {
	found := false
	s.mutate(func() {
		s.posCart, found = removeItem(s.posCart, id)
	})
	return found
}

// UpdatePOSCartQuantity sets the line to exactly quantity; zero or less
// removes the line.
func (s *Store) UpdatePOSCartQuantity(id string, quantity int) bool {
	found := false
	s.mutate(func() {
		s.posCart, found = setQuantity(s.posCart, id, quantity)
	})
	return found
}

// ClearPOSCart empties the point-of-sale cart.
func (s *Store) ClearPOSCart() {
	s.mutate(func() {
		s.posCart = nil
	})
}

// POSCartTotal is the sum of price*quantity over the POS cart.
func (s *Store) POSCartTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cartTotal(s.posCart)
}

// Orders returns a copy of the order history.
func (s *Store) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Order(nil), s.orders...)
}

// AddOrder appends a fully formed order. The store does not re-derive
// or validate the total against the items.
func (s *Store) AddOrder(o model.Order) {
	s.mutate(func() {
		s.orders = append(s.orders, o)
	})
	s.log.Info("order recorded",
		zap.String("order_id", o.ID),
		zap.Float64("total", o.Total),
		zap.String("status", string(o.Status)))
}

// UpdateOrderStatus replaces the status label on the matching order.
// Any status may follow any other; this is not a state machine.
func (s *Store) UpdateOrderStatus(id string, status model.OrderStatus) bool {
	found := false
	s.mutate(func() {
		for i := range s.orders {
			if s.orders[i].ID == id {
				s.orders[i].Status = status
				found = true
				return
			}
		}
	})
	return found
}
