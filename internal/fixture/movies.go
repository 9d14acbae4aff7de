package fixture

import "github.com/iliyamo/cinema-booking/internal/model"

func genre(id int64, en, vi string) model.Genre {
	return model.Genre{ID: id, Translations: []model.GenreTranslation{
		{Locale: "en", Name: en},
		{Locale: "vi", Name: vi},
	}}
}

func genres() []model.Genre {
	return []model.Genre{
		genre(1, "Action", "Hành động"),
		genre(2, "Drama", "Tâm lý"),
		genre(3, "Sci-Fi", "Khoa học viễn tưởng"),
		genre(4, "Comedy", "Hài"),
		genre(5, "Thriller", "Hồi hộp"),
		genre(6, "Romance", "Lãng mạn"),
		genre(7, "Horror", "Kinh dị"),
		genre(8, "Fantasy", "Giả tưởng"),
		genre(9, "Mystery", "Bí ẩn"),
		genre(10, "Animation", "Hoạt hình"),
		genre(11, "Adventure", "Phiêu lưu"),
		genre(12, "Crime", "Tội phạm"),
		genre(13, "Documentary", "Tài liệu"),
		genre(14, "Family", "Gia đình"),
		genre(15, "Musical", "Ca nhạc"),
		genre(16, "War", "Chiến tranh"),
	}
}

type movieRow struct {
	id        int64
	en, vi    string
	brief     string
	genres    []int64
	duration  int
	poster    string
	trailer   string
	release   string
	status    string
	directors []string
	casts     []string
}

var movieRows = []movieRow{
	{1, "Dune: Part Two", "Hành Tinh Cát: Phần Hai", "Paul Atreides unites with the Fremen to seek revenge.",
		[]int64{1, 2, 3, 11}, 166, "/posters/MV1.jpg", "https://www.youtube.com/watch?v=Way9Dexny3w", "2024-03-01", model.MovieNowShowing,
		[]string{"Denis Villeneuve"}, []string{"Timothée Chalamet", "Zendaya", "Rebecca Ferguson", "Austin Butler"}},
	{2, "Spider-Man: No Way Home", "Người Nhện: Không Còn Nhà", "Peter Parker faces villains from other universes.",
		[]int64{1, 3, 11, 8}, 148, "/posters/MV2.jpg", "https://www.youtube.com/watch?v=JfVOs4VSpmA", "2021-12-17", model.MovieNowShowing,
		[]string{"Jon Watts"}, []string{"Tom Holland", "Zendaya", "Benedict Cumberbatch", "Willem Dafoe"}},
	{3, "The Fantastic Four", "Bộ Tứ Siêu Đẳng", "Marvel's first family of superheroes gets their powers.",
		[]int64{1, 3, 11}, 140, "/posters/MV3.jpg", "https://www.youtube.com/watch?v=18QQWa5MEcs", "2025-07-25", model.MovieNowShowing,
		[]string{"Matt Shakman"}, []string{"Pedro Pascal", "Vanessa Kirby", "Joseph Quinn", "Ebon Moss-Bachrach"}},
	{4, "Godzilla x Kong: The New Empire", "Godzilla x Kong: Đế Chế Mới", "Godzilla and Kong team up against a new threat.",
		[]int64{1, 3, 5}, 115, "/posters/MV4.webp", "https://www.youtube.com/watch?v=lV1OOlGwExM", "2024-03-29", model.MovieNowShowing,
		[]string{"Adam Wingard"}, []string{"Rebecca Hall", "Brian Tyree Henry", "Dan Stevens"}},
	{5, "Avatar 3", "Avatar 3", "The Sully family faces the Ash People.",
		[]int64{3, 11, 8}, 190, "/posters/MV5.webp", "https://www.youtube.com/watch?v=9cGDhDB7898", "2025-12-19", model.MovieNowShowing,
		[]string{"James Cameron"}, []string{"Sam Worthington", "Zoe Saldaña", "Sigourney Weaver", "Michelle Yeoh"}},
	{6, "Oppenheimer", "Oppenheimer", "The story of the father of the atomic bomb.",
		[]int64{2, 16}, 180, "/posters/MV6.jpg", "https://www.youtube.com/watch?v=uYPbbksJxIg", "2023-07-21", model.MovieEnded,
		[]string{"Christopher Nolan"}, []string{"Cillian Murphy", "Emily Blunt", "Matt Damon", "Robert Downey Jr."}},
	{7, "Everything Everywhere All at Once", "Cuộc Chiến Đa Vũ Trụ", "A laundromat owner jumps across the multiverse.",
		[]int64{1, 4, 3, 11}, 139, "/posters/MV7.jpg", "https://www.youtube.com/watch?v=wxN1T1uxQ2g", "2022-04-08", model.MovieNowShowing,
		[]string{"Daniel Kwan", "Daniel Scheinert"}, []string{"Michelle Yeoh", "Ke Huy Quan", "Stephanie Hsu", "Jamie Lee Curtis"}},
	{8, "Top Gun: Maverick", "Phi Công Siêu Đẳng Maverick", "Maverick trains a new generation of pilots.",
		[]int64{1, 2}, 130, "/posters/MV8.jpg", "https://www.youtube.com/watch?v=qSqVVswa420", "2022-05-27", model.MovieEnded,
		[]string{"Joseph Kosinski"}, []string{"Tom Cruise", "Miles Teller", "Jennifer Connelly", "Jon Hamm"}},
	{9, "Joker: Folie à Deux", "Joker: Điên Có Đôi", "Arthur Fleck meets Harley Quinn.",
		[]int64{2, 12, 15}, 122, "/posters/MV9.webp", "https://www.youtube.com/watch?v=_OKAwz2MsJs", "2024-10-04", model.MovieEnded,
		[]string{"Todd Phillips"}, []string{"Joaquin Phoenix", "Lady Gaga", "Zazie Beetz", "Brendan Gleeson"}},
	{10, "Captain America: Brave New World", "Captain America: Thế Giới Mới Tươi Đẹp", "Sam Wilson takes up the shield.",
		[]int64{1, 3, 11}, 150, "/posters/MV10.jpg", "https://www.youtube.com/watch?v=1pHDWnXmK7Y", "2025-02-14", model.MovieEnded,
		[]string{"Julius Onah"}, []string{"Anthony Mackie", "Harrison Ford", "Danny Ramirez", "Tim Blake Nelson"}},
	{11, "Inside Out 2", "Những Mảnh Ghép Cảm Xúc 2", "Riley's mind makes room for new emotions.",
		[]int64{10, 4, 2, 8}, 96, "/posters/MV11.png", "https://www.youtube.com/watch?v=LEjhY15eCx0", "2024-06-14", model.MovieEnded,
		[]string{"Kelsey Mann"}, []string{"Amy Poehler", "Maya Hawke", "Kensington Tallman", "Liza Lapira"}},
	{12, "Deadpool & Wolverine", "Deadpool & Wolverine", "Deadpool recruits a reluctant Wolverine.",
		[]int64{1, 4, 3}, 127, "/posters/MV12.jpg", "https://www.youtube.com/watch?v=73_1biulkYk", "2024-07-26", model.MovieEnded,
		[]string{"Shawn Levy"}, []string{"Ryan Reynolds", "Hugh Jackman", "Emma Corrin", "Morena Baccarin"}},
	{13, "The Batman", "The Batman", "Batman hunts the Riddler through Gotham.",
		[]int64{1, 12, 2, 9}, 176, "/posters/MV13.jpg", "https://www.youtube.com/watch?v=mqqft2x_Aa4", "2022-03-04", model.MovieEnded,
		[]string{"Matt Reeves"}, []string{"Robert Pattinson", "Zoë Kravitz", "Paul Dano", "Jeffrey Wright"}},
	{14, "Tenet", "Tenet", "A secret agent manipulates the flow of time.",
		[]int64{1, 3, 5}, 150, "/posters/MV14.webp", "https://www.youtube.com/watch?v=L3pk_TBkihU", "2020-09-03", model.MovieEnded,
		[]string{"Christopher Nolan"}, []string{"John David Washington", "Robert Pattinson", "Elizabeth Debicki", "Kenneth Branagh"}},
	{15, "Black Panther: Wakanda Forever", "Black Panther: Wakanda Bất Diệt", "Wakanda protects itself after the king's death.",
		[]int64{1, 11, 2}, 161, "/posters/MV15.webp", "https://www.youtube.com/watch?v=_Z3QKkl1WyM", "2022-11-11", model.MovieComingSoon,
		[]string{"Ryan Coogler"}, []string{"Letitia Wright", "Lupita Nyong'o", "Danai Gurira", "Tenoch Huerta Mejía"}},
	{16, "Soul", "Cuộc Sống Nhiệm Màu", "A musician's soul gets separated from his body.",
		[]int64{10, 11, 4, 8}, 100, "/posters/MV16.png", "https://www.youtube.com/watch?v=xOsLIiBStEs", "2020-12-25", model.MovieComingSoon,
		[]string{"Pete Docter", "Kemp Powers"}, []string{"Jamie Foxx", "Tina Fey", "Graham Norton", "Rachel House"}},
	{17, "Gladiator 2", "Võ Sĩ Giác Đấu 2", "Lucius enters the Colosseum.",
		[]int64{1, 11, 2}, 150, "/posters/MV17.webp", "https://www.youtube.com/watch?v=4rgYUipGJNo", "2024-11-22", model.MovieComingSoon,
		[]string{"Ridley Scott"}, []string{"Paul Mescal", "Denzel Washington", "Connie Nielsen", "Pedro Pascal"}},
	{18, "Wicked", "Wicked", "The untold story of the witches of Oz.",
		[]int64{8, 15, 6}, 150, "/posters/MV18.jpg", "https://www.youtube.com/watch?v=6COmYeLsz4c", "2024-11-27", model.MovieComingSoon,
		[]string{"Jon M. Chu"}, []string{"Cynthia Erivo", "Ariana Grande", "Jonathan Bailey", "Michelle Yeoh"}},
	{19, "Superman", "Superman", "Clark Kent balances two worlds.",
		[]int64{1, 3, 11}, 150, "/posters/MV19.jpg", "https://www.youtube.com/watch?v=Ox8ZLF6cGM0", "2025-07-11", model.MovieComingSoon,
		[]string{"James Gunn"}, []string{"David Corenswet", "Rachel Brosnahan", "Nicholas Hoult", "Isabela Merced"}},
	{20, "Blade", "Blade", "The vampire hunter returns.",
		[]int64{1, 8, 7}, 130, "/posters/MV20.jpg", "https://www.youtube.com/watch?v=basLDO2bj2k", "2025-11-07", model.MovieComingSoon,
		[]string{"Yann Demange"}, []string{"Mahershala Ali", "Mia Goth", "Delroy Lindo"}},
}

func movies() []model.Movie {
	out := make([]model.Movie, 0, len(movieRows))
	for _, r := range movieRows {
		out = append(out, model.Movie{
			ID:   r.id,
			Code: "MV" + itoa(r.id),
			Translations: []model.MovieTranslation{
				{Locale: "en", Name: r.en, Brief: r.brief, Description: r.brief},
				{Locale: "vi", Name: r.vi},
			},
			Genres:      append([]int64(nil), r.genres...),
			Duration:    r.duration,
			PosterImg:   r.poster,
			Trailer:     r.trailer,
			ReleaseDate: r.release,
			Status:      r.status,
			Directors:   append([]string(nil), r.directors...),
			Casts:       append([]string(nil), r.casts...),
			Ratings:     []int64{},
		})
	}
	return out
}
