package fixture

import (
	"github.com/iliyamo/cinema-booking/internal/model"
	"github.com/iliyamo/cinema-booking/internal/repository"
)

func users() []model.User {
	h := passwordHash()
	return []model.User{
		{ID: 1, Username: "admin", Email: "admin@gmail.com", PasswordHash: h, Phone: "0123456789",
			Role: model.RoleAdmin, Tier: model.TierMember, Status: model.UserActive, CreatedAt: "2025-07-01T09:00:00Z"},
		{ID: 2, Username: "staff01", Email: "staff@gmail.com", PasswordHash: h, Phone: "0987654321",
			Role: model.RoleStaff, Tier: model.TierMember, Status: model.UserActive, CreatedAt: "2025-07-02T10:00:00Z"},
		{ID: 3, Username: "kaydi", Email: "kdung@gmail.com", PasswordHash: h, Phone: "0912345678",
			Role: model.RoleMember, Tier: model.TierMember, Status: model.UserActive, CreatedAt: "2025-07-03T11:00:00Z"},
		{ID: 4, Username: "minhanh", Email: "minhanh@gmail.com", PasswordHash: h, Phone: "0934567890",
			Role: model.RoleMember, Tier: model.TierVIP, Status: model.UserActive, CreatedAt: "2025-05-12T08:30:00Z"},
		{ID: 5, Username: "thuha", Email: "thuha@gmail.com", PasswordHash: h, Phone: "0945678901",
			Role: model.RoleMember, Tier: model.TierVVIP, Status: model.UserInactive, CreatedAt: "2025-03-20T14:15:00Z"},
	}
}

func memberships() []model.Membership {
	return []model.Membership{
		{ID: 1, UserID: 1, Tier: model.TierMember},
		{ID: 2, UserID: 2, Tier: model.TierMember},
		{ID: 3, UserID: 3, Tier: model.TierMember, Points: 120, TotalSpent: 1_200_000},
		{ID: 4, UserID: 4, Tier: model.TierVIP, Points: 560, TotalSpent: 5_600_000, UpgradedAt: "2025-06-01T00:00:00Z"},
		{ID: 5, UserID: 5, Tier: model.TierVVIP, Points: 1_500, TotalSpent: 15_000_000, UpgradedAt: "2025-04-15T00:00:00Z"},
	}
}

// sales builds a few historical invoices.  Schedule 1 carries paid, booked
// and cancelled tickets; the IMAX screening of movie 3 at cinema 1 on
// 2025-08-15 carries two paid tickets.
func sales(t repository.Tables) ([]model.SoldInvoice, []model.Ticket, []model.SoldFnb) {
	seatPrice := make(map[int64]int64, len(t.Seats))
	for _, s := range t.Seats {
		seatPrice[s.ID] = s.Price
	}
	fnbPrice := make(map[int64]int64, len(t.FnbItems))
	for _, f := range t.FnbItems {
		fnbPrice[f.ID] = f.Price
	}

	imax := imaxShowOfMovie3(t)

	invoices := []model.SoldInvoice{
		{ID: 1, Code: "INV-2025-1", Date: "2025-08-01T10:15:00Z", CustomerID: 3, StaffID: 2,
			PaymentMethod: model.PaymentCash, CreatedAt: "2025-08-01T10:15:00Z"},
		{ID: 2, Code: "INV-2025-2", Date: "2025-08-05T18:40:00Z", CustomerID: 3, StaffID: 2,
			PaymentMethod: model.PaymentOnline, CreatedAt: "2025-08-05T18:40:00Z"},
		{ID: 3, Code: "INV-2025-3", Date: "2025-07-20T20:05:00Z", CustomerID: 4, StaffID: 2,
			PaymentMethod: model.PaymentMomo, CreatedAt: "2025-07-20T20:05:00Z"},
		{ID: 4, Code: "INV-2025-4", Date: "2025-06-10T09:00:00Z", CustomerID: 5, StaffID: 2,
			PaymentMethod: model.PaymentCreditCard, CreatedAt: "2025-06-10T09:00:00Z"},
	}

	type line struct {
		schedule, seat, invoice int64
		status                  string
	}
	lines := []line{
		{1, 1, 1, model.TicketPaid},
		{1, 2, 1, model.TicketPaid},
		{1, 3, 2, model.TicketBooked},
		{1, 4, 2, model.TicketCancelled},
		{1, 5, 4, model.TicketRefunded},
	}
	if imax.ID != 0 {
		first := firstSeatOf(t.Seats, imax.ScreenID)
		lines = append(lines,
			line{imax.ID, first, 3, model.TicketPaid},
			line{imax.ID, first + 1, 3, model.TicketPaid},
		)
	}

	var tickets []model.Ticket
	for i, l := range lines {
		tickets = append(tickets, model.Ticket{
			ID:              int64(i + 1),
			Price:           seatPrice[l.seat],
			MovieScheduleID: l.schedule,
			SeatID:          l.seat,
			SoldInvoiceID:   l.invoice,
			Status:          l.status,
			CreatedAt:       invoices[l.invoice-1].CreatedAt,
		})
	}

	soldFnbs := []model.SoldFnb{
		{ID: 1, SoldInvoiceID: 1, FnbItemID: 1, Quantity: 2, PricePerItem: fnbPrice[1]},
		{ID: 2, SoldInvoiceID: 1, FnbItemID: 3, Quantity: 2, PricePerItem: fnbPrice[3]},
		{ID: 3, SoldInvoiceID: 3, FnbItemID: 2, Quantity: 1, PricePerItem: fnbPrice[2]},
		{ID: 4, SoldInvoiceID: 4, FnbItemID: 5, Quantity: 1, PricePerItem: fnbPrice[5]},
	}
	return invoices, tickets, soldFnbs
}

func imaxShowOfMovie3(t repository.Tables) model.MovieSchedule {
	screenType := make(map[int64]string, len(t.Screens))
	for _, s := range t.Screens {
		screenType[s.ID] = s.Type
	}
	slotDate := make(map[int64]string, len(t.TimeSlots))
	for _, s := range t.TimeSlots {
		slotDate[s.ID] = s.Date
	}
	for _, s := range t.Schedules {
		if s.MovieID == 3 && s.CinemaID == 1 && slotDate[s.TimeSlotID] == "2025-08-15" && screenType[s.ScreenID] == model.ScreenIMAX {
			return s
		}
	}
	return model.MovieSchedule{}
}

func firstSeatOf(seats []model.Seat, screenID int64) int64 {
	for _, s := range seats {
		if s.ScreenID == screenID {
			return s.ID
		}
	}
	return 0
}
