// Package cli is the interactive shell around the market services. It only
// renders and prompts; every business rule is enforced inside the services.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kosa-java-team2/Hanger/internal/domain/entity"
	"github.com/kosa-java-team2/Hanger/internal/platform/format"
	"github.com/kosa-java-team2/Hanger/internal/platform/logger"
	"github.com/kosa-java-team2/Hanger/internal/platform/validate"
	"github.com/kosa-java-team2/Hanger/internal/service"
)

type CLI struct {
	in  *bufio.Scanner
	out io.Writer
	log logger.Logger

	auth          service.AuthService
	listings      service.ListingService
	trades        service.TradeService
	notifications service.NotificationService
	admin         service.AdminService

	session *service.Session
}

func New(
	in io.Reader,
	out io.Writer,
	log logger.Logger,
	auth service.AuthService,
	listings service.ListingService,
	trades service.TradeService,
	notifications service.NotificationService,
	admin service.AdminService,
) *CLI {
	return &CLI{
		in:            bufio.NewScanner(in),
		out:           out,
		log:           log,
		auth:          auth,
		listings:      listings,
		trades:        trades,
		notifications: notifications,
		admin:         admin,
	}
}

// Run drives the menu loop until the user exits or input ends.
func (c *CLI) Run() {
	for {
		c.printf("\n===== Hanger Market =====\n")
		c.printf("1. Login  2. Sign up  3. Admin login  0. Exit\n")
		switch c.promptInt("Select: ") {
		case 1:
			c.login(false)
		case 2:
			c.signup()
		case 3:
			c.login(true)
		case 0:
			c.printf("Bye.\n")
			return
		case -1:
			return // input closed
		}

		for c.session != nil {
			if c.session.Role == entity.RoleAdmin {
				c.adminMenu()
			} else {
				c.memberMenu()
			}
		}
	}
}

func (c *CLI) memberMenu() {
	unread := c.notifications.UnreadCount(c.session.Handle)
	c.printf("\n--- %s (unread notifications: %d) ---\n", c.session.Handle, unread)
	c.printf("1. Browse listings  2. My listings  3. My trades  4. Notifications  5. Logout\n")
	switch c.promptInt("Select: ") {
	case 1:
		c.browseListings()
	case 2:
		c.myListings()
	case 3:
		c.myTrades()
	case 4:
		c.showNotifications()
	case 5, -1:
		c.session = nil
	}
}

func (c *CLI) adminMenu() {
	c.printf("\n--- admin ---\n")
	c.printf("1. Accounts  2. Remove listing  3. Reports  4. Notifications  5. Logout\n")
	switch c.promptInt("Select: ") {
	case 1:
		c.adminAccounts()
	case 2:
		c.adminRemoveListing()
	case 3:
		c.adminReports()
	case 4:
		c.showNotifications()
	case 5, -1:
		c.session = nil
	}
}

func (c *CLI) signup() {
	input := service.RegisterInput{
		Handle:         c.prompt("Handle (letters/digits, 4-16): "),
		DisplayName:    c.prompt("Display name (no spaces, 2-20): "),
		Name:           c.prompt("Full name: "),
		VerificationID: c.prompt("Verification ID (000000-0000000): "),
		Gender:         c.prompt("Gender (M/F): "),
	}
	input.Age = c.promptInt("Age: ")
	input.Password = c.prompt("Password: ")
	if confirm := c.prompt("Confirm password: "); confirm != input.Password {
		c.printf("Passwords do not match.\n")
		return
	}

	if _, err := c.auth.Register(input); err != nil {
		c.printf("Sign-up failed: %v\n", err)
		return
	}
	c.printf("Account created. You can log in now.\n")
}

func (c *CLI) login(adminOnly bool) {
	handle := c.prompt("Handle: ")
	password := c.prompt("Password: ")

	sess, err := c.auth.Login(handle, password, adminOnly)
	if err != nil {
		c.printf("Login failed: %v\n", err)
		return
	}
	c.session = sess
	c.printf("Welcome, %s.\n", sess.Handle)
}

func (c *CLI) browseListings() {
	keyword := c.prompt("Keyword (empty for all): ")
	c.printf("Sort: 1. Price asc  2. Price desc  3. Newest  4. Category\n")
	mode := service.SortMode(c.promptInt("Select: "))

	results := c.listings.Search(c.session.Handle, keyword, mode)
	if len(results) == 0 {
		c.printf("No listings found.\n")
		return
	}
	for _, l := range results {
		c.printListing(l)
	}

	id := c.promptInt64("Request a trade on listing # (0 = back): ")
	if id == 0 {
		return
	}
	if _, err := c.trades.RequestTrade(c.session.Handle, id); err != nil {
		c.printf("Request failed: %v\n", err)
		return
	}
	c.printf("Trade request sent.\n")
}

func (c *CLI) myListings() {
	mine := c.listings.ListingsOf(c.session.Handle)
	for _, l := range mine {
		c.printListing(l)
	}
	c.printf("1. Create  2. Edit price  3. Delete  0. Back\n")
	switch c.promptInt("Select: ") {
	case 1:
		c.createListing()
	case 2:
		id := c.promptInt64("Listing #: ")
		price, err := format.ParsePrice(c.prompt("New price: "))
		if err != nil {
			c.printf("Bad price.\n")
			return
		}
		if _, err := c.listings.Update(id, c.session.Handle, entity.ListingUpdate{Price: &price}); err != nil {
			c.printf("Update failed: %v\n", err)
			return
		}
		c.printf("Updated.\n")
	case 3:
		id := c.promptInt64("Listing #: ")
		if err := c.listings.Delete(id, c.session.Handle); err != nil {
			c.printf("Delete failed: %v\n", err)
			return
		}
		c.printf("Deleted.\n")
	}
}

func (c *CLI) createListing() {
	spec := entity.ListingSpec{
		Title:    c.prompt("Title: "),
		Category: c.prompt("Category: "),
	}
	raw := c.prompt("Price (e.g. 15000 or 15,000): ")
	if !validate.PriceInput(raw) {
		c.printf("Bad price format.\n")
		return
	}
	price, err := format.ParsePrice(raw)
	if err != nil {
		c.printf("Bad price.\n")
		return
	}
	spec.Price = price
	spec.Condition = entity.ConditionLevel(c.prompt("Condition (high/medium/low): "))
	spec.Description = c.prompt("Description: ")
	spec.Location = c.prompt("Preferred location: ")

	listing, err := c.listings.Create(c.session.Handle, spec)
	if err != nil {
		c.printf("Create failed: %v\n", err)
		return
	}
	c.printf("Listing #%d created.\n", listing.ID)
}

func (c *CLI) myTrades() {
	mine := c.trades.TradesFor(c.session.Handle)
	if len(mine) == 0 {
		c.printf("No trades.\n")
		return
	}
	for _, t := range mine {
		c.printf("[%d] listing=%d buyer=%s seller=%s status=%s\n",
			t.ID, t.ListingID, t.BuyerHandle, t.SellerHandle, tradeStatusLabel(t.Status))
	}

	c.printf("1. Change status  2. Evaluate  3. Report counterparty  0. Back\n")
	switch c.promptInt("Select: ") {
	case 1:
		id := c.promptInt64("Trade #: ")
		c.printf("New status: 1. Accept  2. Progress  3. Complete  4. Cancel\n")
		targets := map[int]entity.TradeStatus{
			1: entity.TradeAccepted,
			2: entity.TradeInProgress,
			3: entity.TradeCompleted,
			4: entity.TradeCancelled,
		}
		target, ok := targets[c.promptInt("Select: ")]
		if !ok {
			return
		}
		if _, err := c.trades.ChangeStatus(id, c.session.Handle, target); err != nil {
			c.printf("Change failed: %v\n", err)
			return
		}
		c.printf("Status changed.\n")
	case 2:
		id := c.promptInt64("Trade #: ")
		favorable := c.promptInt("Evaluation: 1. Favorable  2. Unfavorable\nSelect: ") == 1
		if err := c.trades.Evaluate(id, c.session.Handle, favorable); err != nil {
			c.printf("Evaluation failed: %v\n", err)
			return
		}
		c.printf("Evaluation recorded.\n")
	case 3:
		reported := c.prompt("Handle to report: ")
		reason := c.prompt("Reason: ")
		if _, err := c.trades.FileReport(c.session.Handle, reported, reason); err != nil {
			c.printf("Report failed: %v\n", err)
			return
		}
		c.printf("Report filed.\n")
	}
}

func (c *CLI) showNotifications() {
	ns := c.notifications.NotificationsFor(c.session.Handle)
	if len(ns) == 0 {
		c.printf("No notifications.\n")
		return
	}
	for _, n := range ns {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		c.printf("%s [%d] %s | %s | %s\n",
			marker, n.ID, n.CreatedAt.Format("2006-01-02 15:04"), notificationTypeLabel(n.Type), n.Message)
	}

	c.printf("1. Mark read  2. Delete  0. Back\n")
	switch c.promptInt("Select: ") {
	case 1:
		id := c.promptInt64("Notification #: ")
		if err := c.notifications.MarkRead(id, c.session.Handle); err != nil {
			c.printf("Failed: %v\n", err)
		}
	case 2:
		id := c.promptInt64("Notification #: ")
		if err := c.notifications.Delete(id, c.session.Handle); err != nil {
			c.printf("Failed: %v\n", err)
		}
	}
}

func (c *CLI) adminAccounts() {
	accounts, err := c.admin.ListAccounts(c.session.Handle)
	if err != nil {
		c.printf("Failed: %v\n", err)
		return
	}
	for _, a := range accounts {
		c.printf("%s | %s | %s | reputation +%d/-%d\n",
			a.Handle, a.DisplayName, a.Role, a.Favorable, a.Unfavorable)
	}

	handle := c.prompt("Remove account (empty = back): ")
	if handle == "" {
		return
	}
	if err := c.admin.RemoveAccount(c.session.Handle, handle); err != nil {
		c.printf("Remove failed: %v\n", err)
		return
	}
	c.printf("Account removed.\n")
}

func (c *CLI) adminRemoveListing() {
	id := c.promptInt64("Listing # (0 = back): ")
	if id == 0 {
		return
	}
	if err := c.admin.RemoveListing(c.session.Handle, id); err != nil {
		c.printf("Remove failed: %v\n", err)
		return
	}
	c.printf("Listing removed.\n")
}

func (c *CLI) adminReports() {
	reports, err := c.admin.ListReports(c.session.Handle)
	if err != nil {
		c.printf("Failed: %v\n", err)
		return
	}
	if len(reports) == 0 {
		c.printf("No reports.\n")
		return
	}
	for _, r := range reports {
		c.printf("[%d] %s -> %s | %s | %s\n",
			r.ID, r.ReporterHandle, r.ReportedHandle, r.CreatedAt.Format("2006-01-02 15:04"), r.Reason)
	}
}

func (c *CLI) printListing(l *entity.Listing) {
	c.printf("[%d] %s | %s | %s | %s | %s | seller=%s\n",
		l.ID, l.Title, l.Category, format.Price(l.Price),
		conditionLabel(l.Condition), listingStatusLabel(l.Status), l.OwnerHandle)
}

func (c *CLI) printf(f string, args ...interface{}) {
	fmt.Fprintf(c.out, f, args...)
}

func (c *CLI) prompt(label string) string {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

// promptInt returns -1 when input is closed so menus can unwind.
func (c *CLI) promptInt(label string) int {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimSpace(c.in.Text()))
	if err != nil {
		return 0
	}
	return n
}

func (c *CLI) promptInt64(label string) int64 {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return 0
	}
	n, err := strconv.ParseInt(strings.TrimSpace(c.in.Text()), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
