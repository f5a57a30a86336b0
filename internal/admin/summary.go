// Package admin derives the dashboard figures from live store state.
package admin

import "github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/model"

// LowStockThreshold marks products that need restocking soon.
const LowStockThreshold = 5

// Summary is the set of headline figures on the admin dashboard.
type Summary struct {
	TotalRevenue  float64
	TotalProducts int
	TotalOrders   int
	LowStock      []model.Product
	OutOfStock    []model.Product
}

// Summarize recomputes the dashboard from the current products and
// order history.
func Summarize(products []model.Product, orders []model.Order) Summary {
	s := Summary{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
	}
	for _, o := range orders {
		s.TotalRevenue += o.Total
	}
	for _, p := range products {
		switch {
		case p.Stock == 0:
			s.OutOfStock = append(s.OutOfStock, p)
		case p.Stock <= LowStockThreshold:
			s.LowStock = append(s.LowStock, p)
		}
	}
	return s
}

// StockLabel is the badge shown next to a product's stock count.
func StockLabel(p model.Product) string {
	switch {
	case p.Stock == 0:
		return "Out of Stock"
	case p.Stock <= LowStockThreshold:
		return "Low Stock"
	default:
		return "In Stock"
	}
}
