// Package graph defines the GraphQL schema for the anime catalogue and binds
// its fields to a data.Store.
package graph

import (
	"context"
	"fmt"

	"github.com/botobag/artemis/graphql"

	"github.com/kerbaras/animes/pkg/data"
)

func property[T any](get func(*T) interface{}) graphql.FieldResolver {
	return graphql.FieldResolverFunc(func(_ context.Context, source interface{}, _ graphql.ResolveInfo) (interface{}, error) {
		return get(source.(*T)), nil
	})
}

var (
	nonNullInt    = graphql.NonNullOfType(graphql.Int())
	nonNullString = graphql.NonNullOfType(graphql.String())
)

// NewSchema builds the schema with every field resolved against store.
func NewSchema(store data.Store) (graphql.Schema, error) {
	r := NewResolver(store)

	animeType := &graphql.ObjectConfig{
		Name:        "Anime",
		Description: "This represents an anime of a genre",
	}
	genreType := &graphql.ObjectConfig{
		Name:        "Genre",
		Description: "This represents a Genre of an anime",
	}
	characterType := &graphql.ObjectConfig{
		Name:        "Character",
		Description: "This represents a Character of an anime",
	}

	animeType.Fields = graphql.Fields{
		"id": {
			Type:     nonNullInt,
			Resolver: property(func(a *data.Anime) interface{} { return a.ID }),
		},
		"name": {
			Type:     nonNullString,
			Resolver: property(func(a *data.Anime) interface{} { return a.Name }),
		},
		"genreId": {
			Type:     nonNullInt,
			Resolver: property(func(a *data.Anime) interface{} { return a.GenreID }),
		},
		"genre": {
			Type:     genreType,
			Resolver: graphql.FieldResolverFunc(r.animeGenre),
		},
		"characters": {
			Type:     graphql.ListOf(characterType),
			Resolver: graphql.FieldResolverFunc(r.animeCharacters),
		},
	}

	genreType.Fields = graphql.Fields{
		"id": {
			Type:     nonNullInt,
			Resolver: property(func(g *data.Genre) interface{} { return g.ID }),
		},
		"name": {
			Type:     nonNullString,
			Resolver: property(func(g *data.Genre) interface{} { return g.Name }),
		},
		"animes": {
			Type:     graphql.ListOf(animeType),
			Resolver: graphql.FieldResolverFunc(r.genreAnimes),
		},
	}

	characterType.Fields = graphql.Fields{
		"id": {
			Type:     nonNullInt,
			Resolver: property(func(c *data.Character) interface{} { return c.ID }),
		},
		"name": {
			Type:     nonNullString,
			Resolver: property(func(c *data.Character) interface{} { return c.Name }),
		},
		"animeId": {
			Type:     nonNullInt,
			Resolver: property(func(c *data.Character) interface{} { return c.AnimeID }),
		},
		"anime": {
			Type:     animeType,
			Resolver: graphql.FieldResolverFunc(r.characterAnime),
		},
	}

	idArgs := graphql.ArgumentConfigMap{
		"id": {Type: graphql.T(graphql.Int())},
	}

	query, err := graphql.NewObject(&graphql.ObjectConfig{
		Name:        "Query",
		Description: "Root Query",
		Fields: graphql.Fields{
			"anime": {
				Description: "A Single Anime",
				Type:        animeType,
				Args:        idArgs,
				Resolver:    graphql.FieldResolverFunc(r.anime),
			},
			"animes": {
				Description: "List of All Anime",
				Type:        graphql.ListOf(animeType),
				Resolver:    graphql.FieldResolverFunc(r.animes),
			},
			"genre": {
				Description: "A Single Genre",
				Type:        genreType,
				Args:        idArgs,
				Resolver:    graphql.FieldResolverFunc(r.genre),
			},
			"genres": {
				Description: "List of All Genre",
				Type:        graphql.ListOf(genreType),
				Resolver:    graphql.FieldResolverFunc(r.genres),
			},
			"character": {
				Description: "A Single Character",
				Type:        characterType,
				Args:        idArgs,
				Resolver:    graphql.FieldResolverFunc(r.character),
			},
			"characters": {
				Description: "List of All Characters",
				Type:        graphql.ListOf(characterType),
				Resolver:    graphql.FieldResolverFunc(r.characters),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build query type: %w", err)
	}

	mutation, err := graphql.NewObject(&graphql.ObjectConfig{
		Name:        "Mutation",
		Description: "Root Mutation",
		Fields: graphql.Fields{
			"addAnime": {
				Description: "Add an anime",
				Type:        animeType,
				Args: graphql.ArgumentConfigMap{
					"name":    {Type: nonNullString},
					"genreId": {Type: nonNullInt},
				},
				Resolver: graphql.FieldResolverFunc(r.addAnime),
			},
			"addGenre": {
				Description: "Add an Genre",
				Type:        genreType,
				Args: graphql.ArgumentConfigMap{
					"name": {Type: nonNullString},
				},
				Resolver: graphql.FieldResolverFunc(r.addGenre),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build mutation type: %w", err)
	}

	schema, err := graphql.NewSchema(&graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}
	return schema, nil
}
