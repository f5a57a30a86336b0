// Package catalog holds the pure derivations the storefront renders
// from the live product collection: filtering, sorting, option lists
// and the point-of-sale search. Nothing here is cached; every call
// recomputes from the slice it is given.
package catalog

import (
	"sort"
	"strings"

	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/model"
)

// All is the sentinel filter value that matches every product.
const All = "all"

// SortKey selects the catalog sort order.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPriceLow  SortKey = "price-low"
	SortByPriceHigh SortKey = "price-high"
	SortByRating    SortKey = "rating"
)

// Query is the storefront's filter and sort selection.
type Query struct {
	Category string
	Size     string
	Sort     SortKey
}

// DefaultQuery matches everything, sorted by name.
func DefaultQuery() Query {
	return Query{Category: All, Size: All, Sort: SortByName}
}

// Filter returns the products matching the query, sorted by its sort
// key. The input slice is not modified. Ties keep insertion order.
func Filter(products []model.Product, q Query) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if q.Category != "" && q.Category != All && p.Category != q.Category {
			continue
		}
		if q.Size != "" && q.Size != All && string(p.Size) != q.Size {
			continue
		}
		out = append(out, p)
	}
	SortProducts(out, q.Sort)
	return out
}

// SortProducts sorts in place: name ascending, price ascending, price
// descending or rating descending. Unknown keys fall back to name.
func SortProducts(products []model.Product, key SortKey) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		switch key {
		case SortByPriceLow:
			return a.Price < b.Price
		case SortByPriceHigh:
			return a.Price > b.Price
		case SortByRating:
			return a.Rating > b.Rating
		default:
			return a.Name < b.Name
		}
	})
}

// Categories lists the distinct categories present in the catalog, in
// first-seen order, with the "all" sentinel prepended.
func Categories(products []model.Product) []string {
	return distinct(products, func(p model.Product) string { return p.Category })
}

// Sizes lists the distinct sizes present in the catalog, in first-seen
// order, with the "all" sentinel prepended.
func Sizes(products []model.Product) []string {
	return distinct(products, func(p model.Product) string { return string(p.Size) })
}

func distinct(products []model.Product, key func(model.Product) string) []string {
	out := []string{All}
	seen := map[string]bool{}
	for _, p := range products {
		k := key(p)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// Search keeps products whose name or category contains the term,
// case-insensitively. An empty term matches everything.
func Search(products []model.Product, term string) []model.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]model.Product(nil), products...)
	}
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			out = append(out, p)
		}
	}
	return out
}

// Featured keeps the products flagged for promotional display.
func Featured(products []model.Product) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
