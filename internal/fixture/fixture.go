// Package fixture builds the sample catalog served when no database is
// configured.  Everything is generated deterministically so that ids, dates
// and prices are stable across runs.
package fixture

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/cinema-booking/internal/repository"
	"github.com/iliyamo/cinema-booking/internal/utils"
)

// DefaultPassword is the plain password of every sample account.
const DefaultPassword = "123456"

var (
	hashOnce sync.Once
	pwHash   string
)

// passwordHash hashes DefaultPassword once per process with the minimum
// bcrypt cost.
func passwordHash() string {
	hashOnce.Do(func() {
		h, err := utils.HashPassword(DefaultPassword, bcrypt.MinCost)
		if err != nil {
			panic("fixture: hash password: " + err.Error())
		}
		pwHash = h
	})
	return pwHash
}

// Tables returns a fresh copy of the sample catalog.
func Tables() repository.Tables {
	t := repository.Tables{
		Users:       users(),
		Memberships: memberships(),
		Genres:      genres(),
		Movies:      movies(),
		Cinemas:     cinemas(),
		Events:      events(),
		Vouchers:    vouchers(),
		FnbItems:    fnbItems(),
	}
	t.Screens = screens(t.Cinemas)
	t.Seats = seats(t.Screens)
	t.TimeSlots = timeSlots()
	t.Schedules = schedules(t.Movies, t.Cinemas, t.Screens, t.TimeSlots)
	t.Invoices, t.Tickets, t.SoldFnbs = sales(t)
	return t
}

// Catalog indexes Tables.
func Catalog() *repository.Catalog {
	return repository.NewCatalog(Tables())
}
