package data

// Seed records loaded into every new store, in insertion order.
var (
	SeedGenres = []Genre{
		{ID: 1, Name: "Shounen"},
		{ID: 2, Name: "Shoujo"},
	}

	SeedAnimes = []Anime{
		{ID: 1, Name: "Bungo Stray Dogs", GenreID: 1},
		{ID: 2, Name: "Attack on Titan", GenreID: 1},
		{ID: 3, Name: "Noragami", GenreID: 1},
		{ID: 4, Name: "Jujutsu Kaisen", GenreID: 1},
		{ID: 5, Name: "Demon Slayer", GenreID: 1},
		{ID: 6, Name: "Haikyuu", GenreID: 1},
		{ID: 7, Name: "Wotakoi", GenreID: 2},
		{ID: 8, Name: "Fruits Basket", GenreID: 2},
	}

	SeedCharacters = []Character{
		{ID: 1, Name: "Dasai Osamu", AnimeID: 1},
		{ID: 2, Name: "Nakahara Chuuya", AnimeID: 1},
		{ID: 3, Name: "Kamado Tanjiro", AnimeID: 5},
		{ID: 4, Name: "Kamado Nezuko", AnimeID: 5},
		{ID: 5, Name: "Levi Ackerman", AnimeID: 2},
		{ID: 6, Name: "Eren Yeager", AnimeID: 2},
		{ID: 7, Name: "Yaato", AnimeID: 3},
		{ID: 8, Name: "Hiyori", AnimeID: 3},
		{ID: 9, Name: "Gojo Satoru", AnimeID: 4},
		{ID: 10, Name: "Yuji Itadori", AnimeID: 4},
		{ID: 11, Name: "Hinata Shoyo", AnimeID: 6},
		{ID: 12, Name: "Hirotaka Nifuji", AnimeID: 7},
		{ID: 13, Name: "Tohru", AnimeID: 8},
	}
)
