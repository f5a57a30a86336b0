package ui

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/admin"
	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/model"
	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/store"
)

// adminDashboard is the back-office view: headline figures, product
// management and order oversight.
func (u *UI) adminDashboard() (quit bool) {
	fmt.Fprintln(u.out)
	fmt.Fprintln(u.out, "Admin dashboard")
	u.showSummary()
	u.adminHelp()

	for {
		line, ok := u.prompt("admin> ")
		if !ok {
			return true
		}
		cmd, arg := splitCommand(line)
		switch cmd {
		case "":
		case "dashboard":
			u.showSummary()
		case "products":
			u.showProductAdmin()
		case "orders":
			u.showOrders()
		case "add":
			u.addProductPrompt()
		case "edit":
			u.editProductPrompt(arg)
		case "delete":
			if !u.store.DeleteProduct(arg) {
				fmt.Fprintf(u.out, "No product with id %q.\n", arg)
			} else {
				fmt.Fprintln(u.out, "Product deleted.")
			}
		case "status":
			u.setOrderStatus(arg)
		case "help":
			u.adminHelp()
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

func (u *UI) adminHelp() {
	fmt.Fprintln(u.out, `Commands:
  dashboard                   revenue, stock alerts
  products                    product table with stock status
  orders                      order table
  add                         add a product (interactive)
  edit <id>                   edit a product (blank keeps current)
  delete <id>                 delete a product
  status <order-id> <status>  set pending|processing|shipped|delivered
  back                        sign out  |  quit: exit`)
}

func (u *UI) showSummary() {
	s := admin.Summarize(u.store.Products(), u.store.Orders())
	fmt.Fprintf(u.out, "Revenue: %s   Products: %d   Orders: %d\n",
		money(s.TotalRevenue), s.TotalProducts, s.TotalOrders)
	for _, p := range s.LowStock {
		fmt.Fprintf(u.out, "  low stock: %s (%d left)\n", p.Name, p.Stock)
	}
	for _, p := range s.OutOfStock {
		fmt.Fprintf(u.out, "  out of stock: %s\n", p.Name)
	}
}

func (u *UI) showProductAdmin() {
	products := u.store.Products()
	w := tabwriter.NewWriter(u.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tSTATUS")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			p.ID, p.Name, p.Category, money(p.Price), p.Stock, admin.StockLabel(p))
	}
	w.Flush()
}

func (u *UI) showOrders() {
	orders := u.store.Orders()
	if len(orders) == 0 {
		fmt.Fprintln(u.out, "No orders yet.")
		return
	}
	w := tabwriter.NewWriter(u.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tITEMS\tTOTAL\tSTATUS\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			shortID(o.ID), o.CustomerName, len(o.Items), money(o.Total),
			o.Status, o.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

func (u *UI) addProductPrompt() {
	p := model.Product{
		ID:    uuid.NewString(),
		Image: "/placeholder.svg",
	}
	var ok bool
	if p.Name, ok = u.promptField("Name", ""); !ok || p.Name == "" {
		fmt.Fprintln(u.out, "Cancelled: a product needs a name.")
		return
	}
	p.Description, _ = u.promptField("Description", "")
	p.Category, _ = u.promptField("Category", "Classic")
	size, _ := u.promptField("Size", string(model.SizeMedium))
	p.Size = model.Size(size)
	p.Price = u.promptFloat("Price", 0)
	p.Stock = u.promptInt("Stock", 0)
	p.Rating = u.promptFloat("Rating", 0)
	u.store.AddProduct(p)
	fmt.Fprintf(u.out, "Product %s added with id %s.\n", p.Name, p.ID)
}

func (u *UI) editProductPrompt(id string) {
	p, ok := u.store.Product(id)
	if !ok {
		fmt.Fprintf(u.out, "No product with id %q.\n", id)
		return
	}
	fmt.Fprintf(u.out, "Editing %s — blank keeps the current value.\n", p.Name)
	var upd store.ProductUpdate
	if v, ok := u.promptField("Name", p.Name); ok && v != p.Name {
		upd.Name = &v
	}
	if v, ok := u.promptField("Category", p.Category); ok && v != p.Category {
		upd.Category = &v
	}
	if line, ok := u.prompt(fmt.Sprintf("Price [%s]: ", money(p.Price))); ok {
		if v, err := strconv.ParseFloat(strings.TrimSpace(line), 64); err == nil {
			upd.Price = &v
		}
	}
	if line, ok := u.prompt(fmt.Sprintf("Stock [%d]: ", p.Stock)); ok {
		if v, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
			upd.Stock = &v
		}
	}
	u.store.UpdateProduct(id, upd)
	fmt.Fprintln(u.out, "Product updated.")
}

func (u *UI) setOrderStatus(arg string) {
	fields := strings.Fields(arg)
	if len(fields) != 2 {
		fmt.Fprintln(u.out, "Usage: status <order-id> <pending|processing|shipped|delivered>")
		return
	}
	id := u.resolveOrderID(fields[0])
	if !u.store.UpdateOrderStatus(id, model.OrderStatus(fields[1])) {
		fmt.Fprintf(u.out, "No order with id %q.\n", fields[0])
		return
	}
	fmt.Fprintln(u.out, "Order status updated.")
}

// resolveOrderID lets admins use the short receipt form of an id.
func (u *UI) resolveOrderID(short string) string {
	for _, o := range u.store.Orders() {
		if o.ID == short || shortID(o.ID) == short {
			return o.ID
		}
	}
	return short
}

func (u *UI) promptField(label, current string) (string, bool) {
	prefix := label + ": "
	if current != "" {
		prefix = fmt.Sprintf("%s [%s]: ", label, current)
	}
	line, ok := u.prompt(prefix)
	if !ok {
		return current, false
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return current, true
	}
	return line, true
}

func (u *UI) promptFloat(label string, current float64) float64 {
	line, ok := u.prompt(fmt.Sprintf("%s [%g]: ", label, current))
	if !ok {
		return current
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return current
	}
	return v
}

func (u *UI) promptInt(label string, current int) int {
	line, ok := u.prompt(fmt.Sprintf("%s [%d]: ", label, current))
	if !ok {
		return current
	}
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return current
	}
	return v
}
