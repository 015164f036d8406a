package data

import "github.com/samber/lo"

// The lookups below are linear scans; collections are small and unindexed.

func FindGenre(genres []Genre, id int) (Genre, bool) {
	return lo.Find(genres, func(g Genre) bool { return g.ID == id })
}

func FindAnime(animes []Anime, id int) (Anime, bool) {
	return lo.Find(animes, func(a Anime) bool { return a.ID == id })
}

func FindCharacter(characters []Character, id int) (Character, bool) {
	return lo.Find(characters, func(c Character) bool { return c.ID == id })
}

// AnimesOfGenre keeps the animes whose GenreID matches, preserving order.
func AnimesOfGenre(animes []Anime, genreID int) []Anime {
	return lo.Filter(animes, func(a Anime, _ int) bool { return a.GenreID == genreID })
}

// CharactersOfAnime keeps the characters whose AnimeID matches, preserving order.
func CharactersOfAnime(characters []Character, animeID int) []Character {
	return lo.Filter(characters, func(c Character, _ int) bool { return c.AnimeID == animeID })
}

func maxGenreID(genres []Genre) int {
	return lo.Max(lo.Map(genres, func(g Genre, _ int) int { return g.ID }))
}

func maxAnimeID(animes []Anime) int {
	return lo.Max(lo.Map(animes, func(a Anime, _ int) int { return a.ID }))
}

func genrePtrs(genres []Genre) []*Genre {
	return lo.Map(genres, func(g Genre, _ int) *Genre { return &g })
}

func animePtrs(animes []Anime) []*Anime {
	return lo.Map(animes, func(a Anime, _ int) *Anime { return &a })
}

func characterPtrs(characters []Character) []*Character {
	return lo.Map(characters, func(c Character, _ int) *Character { return &c })
}
