package fixture

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/iliyamo/cinema-booking/internal/model"
)

const (
	cityHanoi = "Hà Nội"
	cityHCM   = "Hồ Chí Minh"
)

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

func cinema(id int64, vi, en, viDesc, enDesc, address, city string) model.Cinema {
	return model.Cinema{
		ID: id,
		Translations: []model.CinemaTranslation{
			{Locale: "vi", Name: vi, Description: viDesc},
			{Locale: "en", Name: en, Description: enDesc},
		},
		Address: address,
		City:    city,
		MapURL:  "https://maps.google.com/?q=" + url.QueryEscape(en),
	}
}

func cinemas() []model.Cinema {
	return []model.Cinema{
		cinema(1, "CGV Vincom Center Bà Triệu", "CGV Vincom Center Ba Trieu",
			"Cụm rạp chiếu phim tiêu chuẩn quốc tế tại trung tâm Hà Nội.", "An international standard cinema complex in central Hanoi.",
			"Tầng 6, Vincom Center, 191 Bà Triệu, Hai Bà Trưng, Hà Nội", cityHanoi),
		cinema(2, "CGV Hồ Gươm Plaza", "CGV Ho Guom Plaza",
			"Rạp chiếu phim hiện đại tại khu vực Hà Đông.", "A modern cinema in the Ha Dong district.",
			"Tầng 3, TTTM Hồ Gươm Plaza, 110 Trần Phú, Mộ Lao, Hà Đông, Hà Nội", cityHanoi),
		cinema(3, "CGV Aeon Long Biên", "CGV Aeon Mall Long Bien",
			"Cụm rạp hiện đại với công nghệ IMAX.", "A modern cinema with IMAX technology.",
			"Tầng 4, TTTM AEON Mall Long Biên, 27 Cổ Linh, Long Biên, Hà Nội", cityHanoi),
		cinema(4, "CGV Vincom Nguyễn Chí Thanh", "CGV Vincom Nguyen Chi Thanh",
			"Rạp chiếu phim sang trọng tại Đống Đa.", "A luxurious cinema on one of Hanoi's busiest streets.",
			"Tầng 5, Vincom Center Nguyễn Chí Thanh, 54A Nguyễn Chí Thanh, Đống Đa, Hà Nội", cityHanoi),
		cinema(5, "CGV Indochina Plaza Hà Nội", "CGV Indochina Plaza Hanoi",
			"Điểm đến giải trí quen thuộc khu vực Cầu Giấy.", "A familiar entertainment destination in Cau Giay.",
			"Tầng 4, Indochina Plaza, 241 Xuân Thủy, Cầu Giấy, Hà Nội", cityHanoi),
		cinema(6, "CGV Vincom Royal City", "CGV Vincom Royal City",
			"Một trong những cụm rạp lớn nhất của CGV.", "One of CGV's largest cinema complexes.",
			"Tầng B2, Vincom Mega Mall Royal City, 72A Nguyễn Trãi, Thanh Xuân, Hà Nội", cityHanoi),
		cinema(7, "CGV Landmark 81", "CGV Landmark 81",
			"Cụm rạp cao cấp tại tòa nhà cao nhất Việt Nam.", "A premium cinema in Vietnam's tallest building.",
			"Tầng B1, Vincom Center Landmark 81, 772 Điện Biên Phủ, Bình Thạnh, TP. Hồ Chí Minh", cityHCM),
		cinema(8, "CGV Vincom Đồng Khởi", "CGV Vincom Dong Khoi",
			"Rạp chiếu phim ngay trung tâm Quận 1.", "A cinema in the heart of District 1.",
			"Tầng 3, Vincom Center, 72 Lê Thánh Tôn, Quận 1, TP. Hồ Chí Minh", cityHCM),
	}
}

const screensPerCinema = 3

// screens gives every cinema three screens; types rotate through
// model.ScreenTypes by screen id.
func screens(cs []model.Cinema) []model.Screen {
	var out []model.Screen
	id := int64(1)
	for _, c := range cs {
		for i := 1; i <= screensPerCinema; i++ {
			out = append(out, model.Screen{
				ID:       id,
				Name:     fmt.Sprintf("Screen %d", i),
				CinemaID: c.ID,
				Capacity: len(seatRows) * seatsPerRow,
				Type:     model.ScreenTypes[(id-1)%int64(len(model.ScreenTypes))],
			})
			id++
		}
	}
	return out
}

var seatRows = []string{"A", "B", "C", "D", "E"}

const seatsPerRow = 10

// seatClass maps a row to its seat type and price.
func seatClass(row string) (string, int64) {
	switch row {
	case "C", "D":
		return model.SeatVIP, 95_000
	case "E":
		return model.SeatCouple, 150_000
	default:
		return model.SeatStandard, 75_000
	}
}

func seats(ss []model.Screen) []model.Seat {
	var out []model.Seat
	id := int64(1)
	for _, s := range ss {
		for _, row := range seatRows {
			typ, price := seatClass(row)
			for col := 1; col <= seatsPerRow; col++ {
				out = append(out, model.Seat{
					ID:          id,
					ScreenID:    s.ID,
					Row:         row,
					Column:      strconv.Itoa(col),
					Type:        typ,
					Price:       price,
					IsAvailable: id%13 != 0,
				})
				id++
			}
		}
	}
	return out
}
