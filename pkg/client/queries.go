package client

import "context"

// Genre, Anime and Character are the flat records returned by the list
// queries and mutations.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Anime struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	GenreID int    `json:"genreId"`
}

type Character struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	AnimeID int    `json:"animeId"`
}

// GenreDetails is a genre with its animes.
type GenreDetails struct {
	Genre
	Animes []Anime `json:"animes"`
}

// AnimeDetails is an anime with its genre and characters. Genre is nil when
// the anime points at a missing genre.
type AnimeDetails struct {
	Anime
	Genre      *Genre      `json:"genre"`
	Characters []Character `json:"characters"`
}

// CharacterDetails is a character with its anime.
type CharacterDetails struct {
	Character
	Anime *Anime `json:"anime"`
}

const (
	genresQuery     = `{ genres { id name } }`
	animesQuery     = `{ animes { id name genreId } }`
	charactersQuery = `{ characters { id name animeId } }`

	genreQuery = `query ($id: Int) {
  genre(id: $id) { id name animes { id name genreId } }
}`
	animeQuery = `query ($id: Int) {
  anime(id: $id) { id name genreId genre { id name } characters { id name animeId } }
}`
	characterQuery = `query ($id: Int) {
  character(id: $id) { id name animeId anime { id name genreId } }
}`

	addGenreMutation = `mutation ($name: String!) {
  addGenre(name: $name) { id name }
}`
	addAnimeMutation = `mutation ($name: String!, $genreId: Int!) {
  addAnime(name: $name, genreId: $genreId) { id name genreId }
}`
)

func (c *Client) Genres(ctx context.Context) ([]Genre, error) {
	var out struct{ Genres []Genre }
	if err := c.Do(ctx, genresQuery, nil, &out); err != nil {
		return nil, err
	}
	return out.Genres, nil
}

func (c *Client) Animes(ctx context.Context) ([]Anime, error) {
	var out struct{ Animes []Anime }
	if err := c.Do(ctx, animesQuery, nil, &out); err != nil {
		return nil, err
	}
	return out.Animes, nil
}

func (c *Client) Characters(ctx context.Context) ([]Character, error) {
	var out struct{ Characters []Character }
	if err := c.Do(ctx, charactersQuery, nil, &out); err != nil {
		return nil, err
	}
	return out.Characters, nil
}

// Genre fetches a genre with its animes. A missing genre is nil.
func (c *Client) Genre(ctx context.Context, id int) (*GenreDetails, error) {
	var out struct{ Genre *GenreDetails }
	if err := c.Do(ctx, genreQuery, map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	return out.Genre, nil
}

// Anime fetches an anime with its genre and characters. A missing anime is nil.
func (c *Client) Anime(ctx context.Context, id int) (*AnimeDetails, error) {
	var out struct{ Anime *AnimeDetails }
	if err := c.Do(ctx, animeQuery, map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	return out.Anime, nil
}

// Character fetches a character with its anime. A missing character is nil.
func (c *Client) Character(ctx context.Context, id int) (*CharacterDetails, error) {
	var out struct{ Character *CharacterDetails }
	if err := c.Do(ctx, characterQuery, map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	return out.Character, nil
}

func (c *Client) AddGenre(ctx context.Context, name string) (*Genre, error) {
	var out struct{ AddGenre *Genre }
	if err := c.Do(ctx, addGenreMutation, map[string]any{"name": name}, &out); err != nil {
		return nil, err
	}
	return out.AddGenre, nil
}

func (c *Client) AddAnime(ctx context.Context, name string, genreID int) (*Anime, error) {
	var out struct{ AddAnime *Anime }
	vars := map[string]any{"name": name, "genreId": genreID}
	if err := c.Do(ctx, addAnimeMutation, vars, &out); err != nil {
		return nil, err
	}
	return out.AddAnime, nil
}
