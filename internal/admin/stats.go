package admin

import (
	"sort"
	"time"

	"github.com/iliyamo/cinema-booking/internal/model"
)

// CinemaStats summarises the venue tables.
type CinemaStats struct {
	TotalCinemas  int `json:"total_cinemas"`
	TotalScreens  int `json:"total_screens"`
	TotalCapacity int `json:"total_capacity"`
}

func (a *Admin) CinemaStats() CinemaStats {
	st := CinemaStats{TotalCinemas: len(a.c.Cinemas()), TotalScreens: len(a.c.Screens())}
	for _, s := range a.c.Screens() {
		st.TotalCapacity += s.Capacity
	}
	return st
}

func distinct[T any](rows []T, key func(T) string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, r := range rows {
		k := key(r)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// AvailableCities lists the cinema cities, sorted.
func (a *Admin) AvailableCities() []string {
	out := distinct(a.c.Cinemas(), func(c model.Cinema) string { return c.City })
	sort.Strings(out)
	return out
}

// AvailableSeatTypes lists the seat types in use, sorted.
func (a *Admin) AvailableSeatTypes() []string {
	out := distinct(a.c.Seats(), func(s model.Seat) string { return s.Type })
	sort.Strings(out)
	return out
}

// AvailableFnbTypes lists the F&B types in catalog order.
func (a *Admin) AvailableFnbTypes() []string {
	return distinct(a.c.FnbItems(), func(f model.FnbItem) string { return f.Type })
}

// AvailableDates lists the time slot dates, oldest first.
func (a *Admin) AvailableDates() []string {
	out := distinct(a.c.TimeSlots(), func(t model.TimeSlot) string { return t.Date })
	sort.Strings(out)
	return out
}

// TopMember is the account holding the most loyalty points.
type TopMember struct {
	model.User
	Points int64 `json:"points"`
}

// UserStats summarises member accounts.
type UserStats struct {
	TotalMembers     int            `json:"total_members"`
	TierDistribution map[string]int `json:"tier_distribution"`
	TopMember        *TopMember     `json:"top_member"`
}

// UserStats counts users with the member role per tier and picks the
// membership with the most points.  The first membership wins a tie.
func (a *Admin) UserStats() UserStats {
	st := UserStats{TierDistribution: make(map[string]int, len(model.Tiers))}
	for _, t := range model.Tiers {
		st.TierDistribution[t] = 0
	}
	for _, u := range a.c.Users() {
		if u.Role != model.RoleMember {
			continue
		}
		st.TotalMembers++
		if _, ok := st.TierDistribution[u.Tier]; ok {
			st.TierDistribution[u.Tier]++
		}
	}

	var top *model.Membership
	for _, m := range a.c.Memberships() {
		if top == nil || m.Points > top.Points {
			top = &m
		}
	}
	if top != nil {
		if u, ok := a.c.User(top.UserID); ok {
			st.TopMember = &TopMember{User: u, Points: top.Points}
		}
	}
	return st
}

// DashboardSummary is the headline of the admin dashboard.
type DashboardSummary struct {
	TotalRevenue int64 `json:"total_revenue"`
	TicketsSold  int   `json:"tickets_sold"`
	FnbSales     int64 `json:"fnb_sales"`
	ActiveEvents int   `json:"active_events"`
}

type MonthlyRevenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

type SalesBreakdown struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
	Color    string `json:"color"`
}

type Dashboard struct {
	Summary        DashboardSummary `json:"summary"`
	MonthlyRevenue []MonthlyRevenue `json:"monthly_revenue"`
	SalesBreakdown []SalesBreakdown `json:"sales_breakdown"`
}

const dateLayout = "2006-01-02"

// eventActive reports whether an active event runs on now's day.  Both
// bounds are inclusive whole days.
func eventActive(e model.Event, now time.Time) bool {
	if e.Status != model.PromoActive {
		return false
	}
	start, err := time.Parse(dateLayout, e.StartDate)
	if err != nil {
		return false
	}
	end, err := time.Parse(dateLayout, e.EndDate)
	if err != nil {
		return false
	}
	day := now.UTC()
	return !day.Before(start) && day.Before(end.AddDate(0, 0, 1))
}

// Dashboard computes revenue from paid tickets and every sold F&B line.
// Monthly revenue covers the calendar year of now; invoices are bucketed
// by their UTC date.
func (a *Admin) Dashboard(now time.Time) Dashboard {
	var d Dashboard
	var ticketRevenue int64

	invoiceDate := make(map[int64]time.Time, len(a.c.Invoices()))
	for _, inv := range a.c.Invoices() {
		if t, err := time.Parse(time.RFC3339, inv.Date); err == nil {
			invoiceDate[inv.ID] = t.UTC()
		}
	}

	monthly := make([]MonthlyRevenue, 12)
	for i := range monthly {
		monthly[i].Month = time.Month(i + 1).String()[:3]
	}
	year := now.UTC().Year()
	addMonthly := func(invoiceID, amount int64) {
		if t, ok := invoiceDate[invoiceID]; ok && t.Year() == year {
			monthly[t.Month()-1].Revenue += amount
		}
	}

	for _, t := range a.c.Tickets() {
		if t.Status != model.TicketPaid {
			continue
		}
		ticketRevenue += t.Price
		d.Summary.TicketsSold++
		addMonthly(t.SoldInvoiceID, t.Price)
	}
	for _, s := range a.c.SoldFnbs() {
		d.Summary.FnbSales += s.Total()
		addMonthly(s.SoldInvoiceID, s.Total())
	}
	for _, e := range a.c.Events() {
		if eventActive(e, now) {
			d.Summary.ActiveEvents++
		}
	}

	d.Summary.TotalRevenue = ticketRevenue + d.Summary.FnbSales
	d.MonthlyRevenue = monthly
	d.SalesBreakdown = []SalesBreakdown{
		{Category: "Ticket Sales", Amount: ticketRevenue, Color: "#3b82f6"},
		{Category: "F&B Sales", Amount: d.Summary.FnbSales, Color: "#ef4444"},
	}
	return d
}
