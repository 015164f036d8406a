package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/Masterminds/squirrel"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS genres (
		id INTEGER PRIMARY KEY,
		name VARCHAR NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS animes (
		id INTEGER PRIMARY KEY,
		name VARCHAR NOT NULL,
		genre_id INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS characters (
		id INTEGER PRIMARY KEY,
		name VARCHAR NOT NULL,
		anime_id INTEGER NOT NULL
	)`,
}

// SQLStore keeps the collections in SQL tables. The database is expected to
// live in memory; a single connection is used so every query sees the same
// database. Ids are handed out under mu, like MemoryStore.
type SQLStore struct {
	db *sql.DB
	sq squirrel.StatementBuilderType

	mu          sync.Mutex
	lastGenreID int
	lastAnimeID int
}

func newSQLStore(db *sql.DB) (*SQLStore, error) {
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	if err := migrate(ctx, db); err != nil {
		return nil, err
	}

	s := &SQLStore{
		db: db,
		sq: squirrel.StatementBuilder.RunWith(db),
	}
	if err := s.seed(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed store: %w", err)
	}
	return s, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}
	return nil
}

func (s *SQLStore) seed(ctx context.Context) error {
	genres := s.sq.Insert("genres").Columns("id", "name")
	for _, g := range SeedGenres {
		genres = genres.Values(g.ID, g.Name)
	}
	if _, err := genres.ExecContext(ctx); err != nil {
		return err
	}

	animes := s.sq.Insert("animes").Columns("id", "name", "genre_id")
	for _, a := range SeedAnimes {
		animes = animes.Values(a.ID, a.Name, a.GenreID)
	}
	if _, err := animes.ExecContext(ctx); err != nil {
		return err
	}

	characters := s.sq.Insert("characters").Columns("id", "name", "anime_id")
	for _, c := range SeedCharacters {
		characters = characters.Values(c.ID, c.Name, c.AnimeID)
	}
	if _, err := characters.ExecContext(ctx); err != nil {
		return err
	}

	s.lastGenreID = maxGenreID(SeedGenres)
	s.lastAnimeID = maxAnimeID(SeedAnimes)
	return nil
}

func (s *SQLStore) genres() squirrel.SelectBuilder {
	return s.sq.Select("id", "name").From("genres").OrderBy("id")
}

func (s *SQLStore) animes() squirrel.SelectBuilder {
	return s.sq.Select("id", "name", "genre_id").From("animes").OrderBy("id")
}

func (s *SQLStore) characters() squirrel.SelectBuilder {
	return s.sq.Select("id", "name", "anime_id").From("characters").OrderBy("id")
}

func scanGenre(row squirrel.RowScanner) (*Genre, error) {
	var g Genre
	if err := row.Scan(&g.ID, &g.Name); err != nil {
		return nil, err
	}
	return &g, nil
}

func scanAnime(row squirrel.RowScanner) (*Anime, error) {
	var a Anime
	if err := row.Scan(&a.ID, &a.Name, &a.GenreID); err != nil {
		return nil, err
	}
	return &a, nil
}

func scanCharacter(row squirrel.RowScanner) (*Character, error) {
	var c Character
	if err := row.Scan(&c.ID, &c.Name, &c.AnimeID); err != nil {
		return nil, err
	}
	return &c, nil
}

// queryOne runs q and scans a single row; no row is not an error.
func queryOne[T any](ctx context.Context, q squirrel.SelectBuilder, scan func(squirrel.RowScanner) (*T, error)) (*T, error) {
	v, err := scan(q.QueryRowContext(ctx))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func queryAll[T any](ctx context.Context, q squirrel.SelectBuilder, scan func(squirrel.RowScanner) (*T, error)) ([]*T, error) {
	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, rows.Err()
}

func (s *SQLStore) Genre(ctx context.Context, id int) (*Genre, error) {
	return queryOne(ctx, s.genres().Where(squirrel.Eq{"id": id}), scanGenre)
}

func (s *SQLStore) Genres(ctx context.Context) ([]*Genre, error) {
	return queryAll(ctx, s.genres(), scanGenre)
}

func (s *SQLStore) Anime(ctx context.Context, id int) (*Anime, error) {
	return queryOne(ctx, s.animes().Where(squirrel.Eq{"id": id}), scanAnime)
}

func (s *SQLStore) Animes(ctx context.Context) ([]*Anime, error) {
	return queryAll(ctx, s.animes(), scanAnime)
}

func (s *SQLStore) AnimesByGenre(ctx context.Context, genreID int) ([]*Anime, error) {
	return queryAll(ctx, s.animes().Where(squirrel.Eq{"genre_id": genreID}), scanAnime)
}

func (s *SQLStore) Character(ctx context.Context, id int) (*Character, error) {
	return queryOne(ctx, s.characters().Where(squirrel.Eq{"id": id}), scanCharacter)
}

func (s *SQLStore) Characters(ctx context.Context) ([]*Character, error) {
	return queryAll(ctx, s.characters(), scanCharacter)
}

func (s *SQLStore) CharactersByAnime(ctx context.Context, animeID int) ([]*Character, error) {
	return queryAll(ctx, s.characters().Where(squirrel.Eq{"anime_id": animeID}), scanCharacter)
}

func (s *SQLStore) AddGenre(ctx context.Context, name string) (*Genre, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := &Genre{ID: s.lastGenreID + 1, Name: name}
	_, err := s.sq.Insert("genres").
		Columns("id", "name").
		Values(g.ID, g.Name).
		ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert genre: %w", err)
	}
	s.lastGenreID = g.ID
	return g, nil
}

func (s *SQLStore) AddAnime(ctx context.Context, name string, genreID int) (*Anime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := &Anime{ID: s.lastAnimeID + 1, Name: name, GenreID: genreID}
	_, err := s.sq.Insert("animes").
		Columns("id", "name", "genre_id").
		Values(a.ID, a.Name, a.GenreID).
		ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert anime: %w", err)
	}
	s.lastAnimeID = a.ID
	return a, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
