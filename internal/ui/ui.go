// Package ui renders the three role-switched terminal views and wires
// user input to store mutations. Views keep only transient state
// (search text, filter selections, a pending customer name); everything
// durable lives in the store.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/model"
	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/store"
)

// UI drives the interactive session.
type UI struct {
	store *store.Store
	in    *bufio.Scanner
	out   io.Writer
	log   *zap.Logger
}

// New wires the UI to the store and an input/output pair.
func New(st *store.Store, in io.Reader, out io.Writer, log *zap.Logger) *UI {
	if log == nil {
		log = zap.NewNop()
	}
	return &UI{
		store: st,
		in:    bufio.NewScanner(in),
		out:   out,
		log:   log,
	}
}

// Run loops until the user quits, dispatching to the view selected by
// the current role.
func (u *UI) Run() {
	fmt.Fprintln(u.out, "TeddyLove — plush toy storefront")
	u.log.Debug("interactive session started")
	for {
		var quit bool
		switch u.store.CurrentUser() {
		case model.RoleCustomer:
			quit = u.storefront()
		case model.RoleAdmin:
			quit = u.adminDashboard()
		case model.RoleCashier:
			quit = u.posTerminal()
		default:
			quit = u.roleMenu()
		}
		if quit {
			fmt.Fprintln(u.out, "Goodbye!")
			return
		}
	}
}

// roleMenu lets the user pick which view to enter. Switching roles is
// a UI affordance, not authentication.
func (u *UI) roleMenu() (quit bool) {
	fmt.Fprintln(u.out)
	fmt.Fprintln(u.out, "Who is using the store?")
	fmt.Fprintln(u.out, "  1) Customer storefront")
	fmt.Fprintln(u.out, "  2) Admin dashboard")
	fmt.Fprintln(u.out, "  3) POS terminal (cashier)")
	fmt.Fprintln(u.out, "  q) Quit")
	line, ok := u.prompt("> ")
	if !ok {
		return true
	}
	switch strings.TrimSpace(line) {
	case "1", "customer":
		u.store.SetCurrentUser(model.RoleCustomer)
	case "2", "admin":
		u.store.SetCurrentUser(model.RoleAdmin)
	case "3", "cashier", "pos":
		u.store.SetCurrentUser(model.RoleCashier)
	case "q", "quit", "exit":
		return true
	default:
		fmt.Fprintln(u.out, "Please pick 1, 2, 3 or q.")
	}
	return false
}

// prompt prints the prefix and reads one line. ok is false on EOF.
func (u *UI) prompt(prefix string) (line string, ok bool) {
	fmt.Fprint(u.out, prefix)
	if !u.in.Scan() {
		return "", false
	}
	return u.in.Text(), true
}

// signOut clears the role selector and returns to the role menu.
func (u *UI) signOut() {
	u.store.SetCurrentUser(model.RoleNone)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// productTable renders a catalog listing.
func (u *UI) productTable(products []model.Product) {
	if len(products) == 0 {
		fmt.Fprintln(u.out, "No products found. Try adjusting your filters.")
		return
	}
	w := tabwriter.NewWriter(u.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tSIZE\tPRICE\tSTOCK\tRATING")
	for _, p := range products {
		price := money(p.Price)
		if p.OnSale() {
			price = fmt.Sprintf("%s (was %s)", price, money(p.OriginalPrice))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%.1f (%d)\n",
			p.ID, p.Name, p.Category, p.Size, price, p.Stock, p.Rating, p.Reviews)
	}
	w.Flush()
}

// cartLines renders cart contents with per-line subtotals.
func (u *UI) cartLines(items []model.CartItem) {
	w := tabwriter.NewWriter(u.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tQTY\tSUBTOTAL")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			it.ID, it.Name, money(it.Price), it.Quantity, money(it.Subtotal()))
	}
	w.Flush()
}
