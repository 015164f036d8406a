package data

import (
	"context"
	"errors"
	"fmt"
)

type StoreType string

const (
	MemoryStoreType StoreType = "memory"
	DuckDBStoreType StoreType = "duckdb"
	SQLiteStoreType StoreType = "sqlite"
)

var ErrUnknownStore = errors.New("unknown store type")

// StoreTypes lists every backend accepted by NewStore.
var StoreTypes = []StoreType{MemoryStoreType, DuckDBStoreType, SQLiteStoreType}

// Store holds the genre, anime and character collections. Single-record
// lookups return nil with a nil error when nothing matches. Collections are
// returned in insertion order.
type Store interface {
	Genre(ctx context.Context, id int) (*Genre, error)
	Genres(ctx context.Context) ([]*Genre, error)
	Anime(ctx context.Context, id int) (*Anime, error)
	Animes(ctx context.Context) ([]*Anime, error)
	AnimesByGenre(ctx context.Context, genreID int) ([]*Anime, error)
	Character(ctx context.Context, id int) (*Character, error)
	Characters(ctx context.Context) ([]*Character, error)
	CharactersByAnime(ctx context.Context, animeID int) ([]*Character, error)

	AddGenre(ctx context.Context, name string) (*Genre, error)
	AddAnime(ctx context.Context, name string, genreID int) (*Anime, error)

	Close() error
}

// NewStore creates a seeded store of the given type. None of the backends
// write to disk.
func NewStore(kind StoreType) (Store, error) {
	switch kind {
	case MemoryStoreType, "":
		return NewMemoryStore(), nil
	case DuckDBStoreType:
		return NewDuckDBStore()
	case SQLiteStoreType:
		return NewSQLiteStore()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, kind)
	}
}

// ParseStoreType validates a backend name.
func ParseStoreType(s string) (StoreType, error) {
	for _, t := range StoreTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStore, s)
}
