package data

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps the collections in process memory. Appends are
// serialised by mu, so concurrent mutations never share an id.
type MemoryStore struct {
	mu sync.RWMutex

	genres     []Genre
	animes     []Anime
	characters []Character

	lastGenreID int
	lastAnimeID int
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		genres:     slices.Clone(SeedGenres),
		animes:     slices.Clone(SeedAnimes),
		characters: slices.Clone(SeedCharacters),
	}
	s.lastGenreID = maxGenreID(s.genres)
	s.lastAnimeID = maxAnimeID(s.animes)
	return s
}

func (s *MemoryStore) Genre(ctx context.Context, id int) (*Genre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := FindGenre(s.genres, id)
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (s *MemoryStore) Genres(ctx context.Context) ([]*Genre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return genrePtrs(s.genres), nil
}

func (s *MemoryStore) Anime(ctx context.Context, id int) (*Anime, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := FindAnime(s.animes, id)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (s *MemoryStore) Animes(ctx context.Context) ([]*Anime, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return animePtrs(s.animes), nil
}

func (s *MemoryStore) AnimesByGenre(ctx context.Context, genreID int) ([]*Anime, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return animePtrs(AnimesOfGenre(s.animes, genreID)), nil
}

func (s *MemoryStore) Character(ctx context.Context, id int) (*Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := FindCharacter(s.characters, id)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *MemoryStore) Characters(ctx context.Context) ([]*Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return characterPtrs(s.characters), nil
}

func (s *MemoryStore) CharactersByAnime(ctx context.Context, animeID int) ([]*Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return characterPtrs(CharactersOfAnime(s.characters, animeID)), nil
}

func (s *MemoryStore) AddGenre(ctx context.Context, name string) (*Genre, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastGenreID++
	g := Genre{ID: s.lastGenreID, Name: name}
	s.genres = append(s.genres, g)
	return &g, nil
}

func (s *MemoryStore) AddAnime(ctx context.Context, name string, genreID int) (*Anime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastAnimeID++
	a := Anime{ID: s.lastAnimeID, Name: name, GenreID: genreID}
	s.animes = append(s.animes, a)
	return &a, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
