package graph

import (
	"context"

	"github.com/botobag/artemis/graphql"

	"github.com/kerbaras/animes/pkg/data"
	"github.com/kerbaras/animes/pkg/logging"
)

// Resolver answers every field of the schema from a data.Store.
type Resolver struct {
	store data.Store
}

func NewResolver(store data.Store) *Resolver {
	return &Resolver{store: store}
}

// idArg reads the optional "id" argument. A missing or null id reports false.
func idArg(info graphql.ResolveInfo) (int, bool) {
	id, ok := info.Args().Get("id").(int)
	return id, ok
}

func (r *Resolver) anime(ctx context.Context, _ interface{}, info graphql.ResolveInfo) (interface{}, error) {
	id, ok := idArg(info)
	if !ok {
		return nil, nil
	}
	return r.store.Anime(ctx, id)
}

func (r *Resolver) animes(ctx context.Context, _ interface{}, _ graphql.ResolveInfo) (interface{}, error) {
	return r.store.Animes(ctx)
}

func (r *Resolver) genre(ctx context.Context, _ interface{}, info graphql.ResolveInfo) (interface{}, error) {
	id, ok := idArg(info)
	if !ok {
		return nil, nil
	}
	return r.store.Genre(ctx, id)
}

func (r *Resolver) genres(ctx context.Context, _ interface{}, _ graphql.ResolveInfo) (interface{}, error) {
	return r.store.Genres(ctx)
}

func (r *Resolver) character(ctx context.Context, _ interface{}, info graphql.ResolveInfo) (interface{}, error) {
	id, ok := idArg(info)
	if !ok {
		return nil, nil
	}
	return r.store.Character(ctx, id)
}

func (r *Resolver) characters(ctx context.Context, _ interface{}, _ graphql.ResolveInfo) (interface{}, error) {
	return r.store.Characters(ctx)
}

func (r *Resolver) addAnime(ctx context.Context, _ interface{}, info graphql.ResolveInfo) (interface{}, error) {
	name, _ := info.Args().Get("name").(string)
	genreID, _ := info.Args().Get("genreId").(int)

	anime, err := r.store.AddAnime(ctx, name, genreID)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("anime added", "id", anime.ID, "name", anime.Name, "genre_id", anime.GenreID)
	return anime, nil
}

func (r *Resolver) addGenre(ctx context.Context, _ interface{}, info graphql.ResolveInfo) (interface{}, error) {
	name, _ := info.Args().Get("name").(string)

	genre, err := r.store.AddGenre(ctx, name)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("genre added", "id", genre.ID, "name", genre.Name)
	return genre, nil
}

// Relationship fields. The source is the parent record returned by one of
// the resolvers above.

func (r *Resolver) animeGenre(ctx context.Context, source interface{}, _ graphql.ResolveInfo) (interface{}, error) {
	return r.store.Genre(ctx, source.(*data.Anime).GenreID)
}

func (r *Resolver) animeCharacters(ctx context.Context, source interface{}, _ graphql.ResolveInfo) (interface{}, error) {
	return r.store.CharactersByAnime(ctx, source.(*data.Anime).ID)
}

func (r *Resolver) genreAnimes(ctx context.Context, source interface{}, _ graphql.ResolveInfo) (interface{}, error) {
	return r.store.AnimesByGenre(ctx, source.(*data.Genre).ID)
}

func (r *Resolver) characterAnime(ctx context.Context, source interface{}, _ graphql.ResolveInfo) (interface{}, error) {
	return r.store.Anime(ctx, source.(*data.Character).AnimeID)
}
