package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/catalog"
	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/checkout"
)

// storefront is the customer view: hero banner, filterable catalog,
// cart panel and checkout. Filter/sort selections are transient view
// state and reset on every visit.
func (u *UI) storefront() (quit bool) {
	query := catalog.DefaultQuery()

	u.hero()
	u.showCatalog(query)
	u.storefrontHelp()

	for {
		line, ok := u.prompt("shop> ")
		if !ok {
			return true
		}
		cmd, arg := splitCommand(line)
		switch cmd {
		case "":
		case "list":
			u.showCatalog(query)
		case "filter":
			query.Category = orAll(arg)
			u.showCatalog(query)
		case "size":
			query.Size = orAll(arg)
			u.showCatalog(query)
		case "sort":
			query.Sort = catalog.SortKey(arg)
			u.showCatalog(query)
		case "add":
			u.addToCart(arg)
		case "cart":
			u.showCart()
		case "qty":
			u.setCartQuantity(arg)
		case "remove":
			if !u.store.RemoveFromCart(arg) {
				fmt.Fprintln(u.out, "That item is not in your cart.")
			}
		case "clear":
			u.store.ClearCart()
			fmt.Fprintln(u.out, "Cart cleared.")
		case "checkout":
			u.customerCheckout()
		case "help":
			u.storefrontHelp()
		case "back":
			u.signOut()
			return false
		case "quit", "exit":
			return true
		default:
			fmt.Fprintf(u.out, "Unknown command %q — try help.\n", cmd)
		}
	}
}

func (u *UI) hero() {
	fmt.Fprintln(u.out)
	fmt.Fprintln(u.out, "Welcome to TeddyLove — handcrafted bears for every adventure.")
	featured := catalog.Featured(u.store.Products())
	if len(featured) == 0 {
		return
	}
	names := make([]string, 0, len(featured))
	for _, p := range featured {
		names = append(names, p.Name)
	}
	fmt.Fprintf(u.out, "Featured: %s\n", strings.Join(names, ", "))
}

func (u *UI) storefrontHelp() {
	fmt.Fprintln(u.out, `Commands:
  list                       show the catalog
  filter <category|all>      filter by category
  size <size|all>            filter by size
  sort <name|price-low|price-high|rating>
  add <id> [qty]             add a bear to your cart
  cart                       show cart and totals
  qty <id> <n>               set a cart line's quantity
  remove <id>                remove a cart line
  clear                      empty the cart
  checkout                   place your order
  back                       sign out  |  quit: exit`)
}

func (u *UI) showCatalog(q catalog.Query) {
	products := u.store.Products()
	filtered := catalog.Filter(products, q)
	fmt.Fprintf(u.out, "\nCategories: %s\n", strings.Join(catalog.Categories(products), ", "))
	fmt.Fprintf(u.out, "Sizes: %s\n", strings.Join(catalog.Sizes(products), ", "))
	fmt.Fprintf(u.out, "%d products (category=%s size=%s sort=%s)\n",
		len(filtered), q.Category, q.Size, q.Sort)
	u.productTable(filtered)
}

func (u *UI) addToCart(arg string) {
	id, qty, err := parseIDQuantity(arg)
	if err != nil {
		fmt.Fprintln(u.out, err)
		return
	}
	p, ok := u.store.Product(id)
	if !ok {
		fmt.Fprintf(u.out, "No product with id %q.\n", id)
		return
	}
	u.store.AddToCart(p, qty)
	fmt.Fprintf(u.out, "Added %d x %s. Cart has %d line(s).\n",
		qty, p.Name, len(u.store.Cart()))
}

func (u *UI) showCart() {
	items := u.store.Cart()
	if len(items) == 0 {
		fmt.Fprintln(u.out, "Your cart is empty. Add some teddy bears to get started!")
		return
	}
	u.cartLines(items)
	t := checkout.CustomerTotals(u.store.CartTotal())
	fmt.Fprintf(u.out, "Subtotal: %s\n", money(t.Subtotal))
	fmt.Fprintf(u.out, "Tax:      %s\n", money(t.Tax))
	if t.Shipping == 0 {
		fmt.Fprintln(u.out, "Shipping: FREE")
	} else {
		fmt.Fprintf(u.out, "Shipping: %s\n", money(t.Shipping))
	}
	fmt.Fprintf(u.out, "Total:    %s\n", money(t.Total))
}

func (u *UI) setCartQuantity(arg string) {
	fields := strings.Fields(arg)
	if len(fields) != 2 {
		fmt.Fprintln(u.out, "Usage: qty <id> <n>")
		return
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		fmt.Fprintf(u.out, "Quantity %q is not a number.\n", fields[1])
		return
	}
	if !u.store.UpdateCartQuantity(fields[0], n) && n > 0 {
		fmt.Fprintln(u.out, "That item is not in your cart.")
	}
}

func (u *UI) customerCheckout() {
	if len(u.store.Cart()) == 0 {
		fmt.Fprintln(u.out, "Your cart is empty.")
		return
	}
	u.showCart()
	name, ok := u.prompt("Name: ")
	if !ok {
		return
	}
	email, ok := u.prompt("Email: ")
	if !ok {
		return
	}
	order, err := checkout.ProcessCustomerCheckout(u.store, strings.TrimSpace(name), strings.TrimSpace(email))
	if err != nil {
		fmt.Fprintln(u.out, err)
		return
	}
	fmt.Fprintf(u.out, "Order #%s placed — total %s. Thank you!\n",
		shortID(order.ID), money(order.Total))
}

// splitCommand splits a line into its first word and the remainder.
func splitCommand(line string) (cmd, arg string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	parts := strings.SplitN(line, " ", 2)
	cmd = strings.ToLower(parts[0])
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg
}

// parseIDQuantity parses "<id> [qty]", defaulting quantity to 1.
func parseIDQuantity(arg string) (id string, qty int, err error) {
	fields := strings.Fields(arg)
	switch len(fields) {
	case 1:
		return fields[0], 1, nil
	case 2:
		n, convErr := strconv.Atoi(fields[1])
		if convErr != nil {
			return "", 0, fmt.Errorf("quantity %q is not a number", fields[1])
		}
		return fields[0], n, nil
	default:
		return "", 0, fmt.Errorf("usage: add <id> [qty]")
	}
}

// shortID trims an order id down to receipt length.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}

func orAll(arg string) string {
	if arg == "" {
		return catalog.All
	}
	return arg
}
