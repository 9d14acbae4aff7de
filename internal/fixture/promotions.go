package fixture

import "github.com/iliyamo/cinema-booking/internal/model"

func eventText(vi, en [3]string) []model.EventTranslation {
	return []model.EventTranslation{
		{Locale: "vi", Name: vi[0], Description: vi[1], Terms: vi[2]},
		{Locale: "en", Name: en[0], Description: en[1], Terms: en[2]},
	}
}

func events() []model.Event {
	return []model.Event{
		{
			ID: 1, Code: "HAPPY-TUESDAY",
			Translations: eventText(
				[3]string{"Thứ Ba Vui Vẻ - Đồng Giá Vé 2D", "Tận hưởng ngày thứ Ba hàng tuần với giá vé 2D ưu đãi tại tất cả các rạp CGV.", "Không áp dụng cho IMAX, 4DX, VIP."},
				[3]string{"Happy Tuesday - Flat Rate for 2D Tickets", "Enjoy every Tuesday with a special flat rate for 2D movie tickets at all CGV cinemas.", "Not applicable for special formats like IMAX, 4DX, VIP."},
			),
			Type: model.EventDiscount, StartDate: "2025-01-01", EndDate: "2025-12-31",
			Status: model.PromoActive, Image: "/events/event1.webp",
		},
		{
			ID: 2, Code: "MARVEL-FAN-MEETUP-2025",
			Translations: eventText(
				[3]string{"Sự Kiện Đặc Biệt: Ra Mắt \"Bộ Tứ Siêu Đẳng\"", "Tham gia suất chiếu đặc biệt và nhận quà tặng độc quyền từ Marvel.", "Chỉ áp dụng cho suất chiếu 19:00 ngày 25/07/2025 tại CGV Vincom Center Bà Triệu."},
				[3]string{"Special Event: \"The Fantastic Four\" Premiere", "Join the special screening and receive exclusive Marvel merchandise.", "Only for the 19:00 screening on July 25, 2025, at CGV Vincom Center Ba Trieu."},
			),
			Type: model.EventSpecialScreening, StartDate: "2025-07-25", EndDate: "2025-07-25",
			Status: model.PromoActive, Image: "/events/event2.jpeg",
			ApplicableCinemas: []int64{1}, ApplicableMovies: []int64{3},
		},
		{
			ID: 3, Code: "VIP-COMBO-DEAL",
			Translations: eventText(
				[3]string{"Ưu Đãi Combo Cho Thành Viên VIP", "Thành viên VIP và VVIP được giảm 30% khi mua combo bắp nước.", "Xuất trình thẻ thành viên tại quầy."},
				[3]string{"VIP Combo Deal", "VIP and VVIP members get a 30% discount on any popcorn and drink combo.", "Members must present their membership card at the counter."},
			),
			Type: model.EventCombo, StartDate: "2025-07-01", EndDate: "2025-09-30",
			Status: model.PromoActive, Image: "/events/event3.jpg", RequiredTier: model.TierVIP,
		},
		{
			ID: 4, Code: "SUMMER-GIVEAWAY-24",
			Translations: eventText(
				[3]string{"Rút Thăm Hè Sôi Động 2024", "Mỗi hóa đơn trên 200.000đ nhận một phiếu rút thăm chuyến du lịch Nhật Bản.", "Chương trình đã kết thúc."},
				[3]string{"Exciting Summer Giveaway 2024", "Every invoice over 200,000 VND earned a raffle ticket for a trip to Japan.", "This event has ended."},
			),
			Type: model.EventGiveaway, StartDate: "2024-06-01", EndDate: "2024-08-31",
			Status: model.PromoExpired, Image: "/events/event4.jpg",
		},
		{
			ID: 5, Code: "BACK2SCHOOL-2025",
			Translations: eventText(
				[3]string{"Tựu Trường Rộn Rã - Giảm Giá Học Sinh", "Học sinh, sinh viên được giảm 15% giá vé khi xuất trình thẻ hợp lệ.", "Áp dụng cho vé 2D và 3D."},
				[3]string{"Back to School Fun - Student Discount", "Students get a 15% discount on ticket prices with a valid student ID.", "Applies to 2D and 3D tickets."},
			),
			Type: model.EventDiscount, StartDate: "2025-08-15", EndDate: "2025-09-15",
			Status: model.PromoActive, Image: "/events/event5.jpg",
		},
		{
			ID: 6, Code: "AVATAR3-PREBOOK",
			Translations: eventText(
				[3]string{"Đặt Vé Sớm AVATAR 3 - Nhận Ngay Bắp Nước", "Đặt vé trước AVATAR 3 để nhận miễn phí combo bắp nước cỡ vừa.", "Áp dụng cho 1000 khách hàng đầu tiên."},
				[3]string{"AVATAR 3 Early Bird - Free Popcorn Combo", "Pre-book AVATAR 3 and receive a free medium popcorn and soft drink combo.", "Applies to the first 1000 customers who book online."},
			),
			Type: model.EventCombo, StartDate: "2025-11-20", EndDate: "2025-12-18",
			Status: model.PromoInactive, Image: "/events/event6.jpg", ApplicableMovies: []int64{5},
		},
	}
}

func vouchers() []model.Voucher {
	return []model.Voucher{
		{
			ID: 1, Code: "WELCOME10", Type: model.VoucherPercent, Value: 10, MaxDiscount: 50_000,
			ValidFrom: "2025-01-01", ValidTo: "2025-12-31", UsageLimit: 1000, Status: model.PromoActive,
			Translations: []model.VoucherTranslation{
				{Locale: "en", Description: "10% off your first booking"},
				{Locale: "vi", Description: "Giảm 10% cho lần đặt vé đầu tiên"},
			},
		},
		{
			ID: 2, Code: "VIP50K", Type: model.VoucherFixed, Value: 50_000, MinOrder: 200_000,
			ValidFrom: "2025-06-01", ValidTo: "2025-09-30", UsageLimit: 500, Status: model.PromoActive,
			Translations: []model.VoucherTranslation{
				{Locale: "en", Description: "50,000 VND off orders from 200,000 VND"},
				{Locale: "vi", Description: "Giảm 50.000đ cho đơn từ 200.000đ"},
			},
			ApplicableTiers: []string{model.TierVIP, model.TierVVIP},
		},
		{
			ID: 3, Code: "TET2025", Type: model.VoucherPercent, Value: 20, MaxDiscount: 100_000,
			ValidFrom: "2025-01-20", ValidTo: "2025-02-10", UsageLimit: 200, Status: model.PromoExpired,
			Translations: []model.VoucherTranslation{
				{Locale: "en", Description: "Lunar New Year 20% discount"},
				{Locale: "vi", Description: "Giảm 20% dịp Tết Nguyên Đán"},
			},
		},
	}
}

func fnb(id int64, code, typ, size string, price int64, en, vi, enDesc string) model.FnbItem {
	return model.FnbItem{
		ID:   id,
		Code: code,
		Translations: []model.FnbTranslation{
			{Locale: "en", Name: en, Description: enDesc},
			{Locale: "vi", Name: vi},
		},
		Type:  typ,
		Price: price,
		Size:  size,
		Image: "/fnb/" + code + ".png",
	}
}

func fnbItems() []model.FnbItem {
	return []model.FnbItem{
		fnb(1, "POP-S", model.FnbPopcorn, "S", 45_000, "Salted Popcorn", "Bắp rang muối", "Classic salted popcorn."),
		fnb(2, "POP-L", model.FnbPopcorn, "L", 65_000, "Caramel Popcorn", "Bắp rang caramel", "Large caramel popcorn."),
		fnb(3, "COKE-M", model.FnbDrink, "M", 35_000, "Coca-Cola", "Coca-Cola", "Medium soft drink."),
		fnb(4, "COMBO-1", model.FnbCombo, "M", 95_000, "Single Combo", "Combo đơn", "One popcorn and one drink."),
		fnb(5, "COMBO-2", model.FnbCombo, "L", 159_000, "Couple Combo", "Combo đôi", "One large popcorn and two drinks."),
		fnb(6, "NACHO", model.FnbSnack, "M", 55_000, "Nachos", "Bánh nachos", "Nachos with cheese dip."),
	}
}
