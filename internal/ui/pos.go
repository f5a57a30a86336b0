package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/catalog"
	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/checkout"
)

// posTerminal is the cashier view. The customer name, search term and
// payment method are transient: they reset after every sale and are
// not persisted anywhere.
func (u *UI) posTerminal() (quit bool) {
	var (
		searchTerm    string
		customerName  string
		paymentMethod = "card"
	)

	fmt.Fprintln(u.out)
	fmt.Fprintln(u.out, "POS terminal — TeddyLove Store")
	u.posHelp()

	for {
		line, ok := u.prompt("pos> ")
		if !ok {
			return true
		}
		cmd, arg := splitCommand(line)
		switch cmd {
		case "":
		case "list":
			u.productTable(catalog.Search(u.store.Products(), searchTerm))
		case "search":
			searchTerm = arg
			u.productTable(catalog.Search(u.store.Products(), searchTerm))
		case "add":
			u.addToPOSCart(arg)
		case "sale", "current":
			u.showPOSCart(customerName, paymentMethod)
		case "qty":
			u.setPOSQuantity(arg)
		case "remove":
			if !u.store.RemoveFromPOSCart(arg) {
				fmt.Fprintln(u.out, "That item is not in the sale.")
			}
		case "clear":
			u.store.ClearPOSCart()
			fmt.Fprintln(u.out, "Sale cleared.")
		case "name":
			customerName = arg
		case "pay":
			if arg != "cash" && arg != "card" {
				fmt.Fprintln(u.out, "Payment method must be cash or card.")
				break
			}
			paymentMethod = arg
		case "process", "checkout":
			order, err := checkout.ProcessPOSSale(u.store, strings.TrimSpace(customerName))
			if err != nil {
				fmt.Fprintln(u.out, "No items in the sale. Add products first.")
				break
			}
			fmt.Fprintf(u.out, "Order #%s processed successfully! Total %s (%s)\n",
				shortID(order.ID), money(order.Total), paymentMethod)
			customerName = ""
			paymentMethod = "card"
		case "help":
			u.posHelp()
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

func (u *UI) posHelp() {
	fmt.Fprintln(u.out, `Commands:
  list                 show products (respects last search)
  search <term>        filter products by name or category
  add <id> [qty]       add to the current sale
  sale                 show the current sale and totals
  qty <id> <n>         set a line's quantity
  remove <id>          remove a line
  clear                clear the sale
  name <customer>      set the customer name (optional)
  pay <cash|card>      set the payment method
  process              complete the sale
  back                 sign out  |  quit: exit`)
}

func (u *UI) addToPOSCart(arg string) {
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
	u.store.AddToPOSCart(p, qty)
	fmt.Fprintf(u.out, "Added %d x %s.\n", qty, p.Name)
}

func (u *UI) showPOSCart(customerName, paymentMethod string) {
	items := u.store.POSCart()
	if len(items) == 0 {
		fmt.Fprintln(u.out, "No items in the sale. Add products to start.")
		return
	}
	if customerName == "" {
		customerName = checkout.WalkInCustomer
	}
	fmt.Fprintf(u.out, "Customer: %s  Payment: %s\n", customerName, paymentMethod)
	u.cartLines(items)
	t := checkout.POSTotals(u.store.POSCartTotal())
	fmt.Fprintf(u.out, "Subtotal: %s\n", money(t.Subtotal))
	fmt.Fprintf(u.out, "Tax (%d%%): %s\n", int(checkout.TaxRate*100), money(t.Tax))
	fmt.Fprintf(u.out, "Total:    %s\n", money(t.Total))
}

func (u *UI) setPOSQuantity(arg string) {
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
	if !u.store.UpdatePOSCartQuantity(fields[0], n) && n > 0 {
		fmt.Fprintln(u.out, "That item is not in the sale.")
	}
}
