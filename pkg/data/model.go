package data

type Genre struct {
	ID   int
	Name string
}

type Anime struct {
	ID      int
	Name    string
	GenreID int
}

type Character struct {
	ID      int
	Name    string
	AnimeID int
}
