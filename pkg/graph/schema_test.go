package graph_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/botobag/artemis/graphql"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/kerbaras/animes/pkg/data"
	"github.com/kerbaras/animes/pkg/graph"
)

var _ = Describe("Schema", func() {
	for _, kind := range data.StoreTypes {
		kind := kind

		Describe(fmt.Sprintf("backed by the %s store", kind), func() {
			var (
				store  data.Store
				schema graphql.Schema
			)

			BeforeEach(func() {
				var err error
				store, err = data.NewStore(kind)
				Expect(err).ShouldNot(HaveOccurred())
				schema, err = graph.NewSchema(store)
				Expect(err).ShouldNot(HaveOccurred())
			})

			AfterEach(func() {
				Expect(store.Close()).Should(Succeed())
			})

			Describe("single record queries", func() {
				It("returns the seeded anime", func() {
					Expect(execute(schema, `{ anime(id: 1) { id name genreId } }`)).Should(MatchResultInJSON(`{
						"data": { "anime": { "id": 1, "name": "Bungo Stray Dogs", "genreId": 1 } }
					}`))
				})

				It("returns the seeded genre", func() {
					Expect(execute(schema, `{ genre(id: 2) { id name } }`)).Should(MatchResultInJSON(`{
						"data": { "genre": { "id": 2, "name": "Shoujo" } }
					}`))
				})

				It("returns the seeded character", func() {
					Expect(execute(schema, `{ character(id: 13) { id name animeId } }`)).Should(MatchResultInJSON(`{
						"data": { "character": { "id": 13, "name": "Tohru", "animeId": 8 } }
					}`))
				})

				It("returns null for ids that do not exist", func() {
					Expect(execute(schema, `{
						anime(id: 99) { id }
						genre(id: 0) { id }
						character(id: 14) { id }
					}`)).Should(MatchResultInJSON(`{
						"data": { "anime": null, "genre": null, "character": null }
					}`))
				})

				It("returns null when the id argument is omitted", func() {
					Expect(execute(schema, `{ anime { id } genre { id } character { id } }`)).Should(MatchResultInJSON(`{
						"data": { "anime": null, "genre": null, "character": null }
					}`))
				})

				It("accepts the id as a variable", func() {
					result := execute(schema, `query ($id: Int) { anime(id: $id) { name } }`,
						map[string]interface{}{"id": 6})
					Expect(result).Should(MatchResultInJSON(`{
						"data": { "anime": { "name": "Haikyuu" } }
					}`))
				})
			})

			Describe("collection queries", func() {
				It("lists every genre in insertion order", func() {
					Expect(execute(schema, `{ genres { id name } }`)).Should(MatchResultInJSON(`{
						"data": { "genres": [
							{ "id": 1, "name": "Shounen" },
							{ "id": 2, "name": "Shoujo" }
						] }
					}`))
				})

				It("lists every anime in insertion order", func() {
					Expect(execute(schema, `{ animes { id } }`)).Should(MatchResultInJSON(`{
						"data": { "animes": [
							{ "id": 1 }, { "id": 2 }, { "id": 3 }, { "id": 4 },
							{ "id": 5 }, { "id": 6 }, { "id": 7 }, { "id": 8 }
						] }
					}`))
				})

				It("lists every character", func() {
					result := decode(execute(schema, `{ characters { id name animeId } }`))
					characters := result["characters"].([]interface{})
					Expect(characters).Should(HaveLen(13))
					Expect(characters[0]).Should(Equal(map[string]interface{}{
						"id": float64(1), "name": "Dasai Osamu", "animeId": float64(1),
					}))
					Expect(characters[12]).Should(Equal(map[string]interface{}{
						"id": float64(13), "name": "Tohru", "animeId": float64(8),
					}))
				})

				It("returns identical results for repeated reads", func() {
					first := decode(execute(schema, `{ animes { id name genreId } }`))
					second := decode(execute(schema, `{ animes { id name genreId } }`))
					Expect(second).Should(Equal(first))
				})
			})

			Describe("relationships", func() {
				It("resolves the animes of a genre", func() {
					Expect(execute(schema, `{ genre(id: 1) { animes { name } } }`)).Should(MatchResultInJSON(`{
						"data": { "genre": { "animes": [
							{ "name": "Bungo Stray Dogs" },
							{ "name": "Attack on Titan" },
							{ "name": "Noragami" },
							{ "name": "Jujutsu Kaisen" },
							{ "name": "Demon Slayer" },
							{ "name": "Haikyuu" }
						] } }
					}`))
				})

				It("resolves the characters of an anime as Character values", func() {
					Expect(execute(schema, `{ anime(id: 5) { characters { __typename id name } } }`)).Should(MatchResultInJSON(`{
						"data": { "anime": { "characters": [
							{ "__typename": "Character", "id": 3, "name": "Kamado Tanjiro" },
							{ "__typename": "Character", "id": 4, "name": "Kamado Nezuko" }
						] } }
					}`))
				})

				It("resolves the genre of an anime", func() {
					Expect(execute(schema, `{ anime(id: 7) { genre { id name } } }`)).Should(MatchResultInJSON(`{
						"data": { "anime": { "genre": { "id": 2, "name": "Shoujo" } } }
					}`))
				})

				It("resolves the anime of a character", func() {
					Expect(execute(schema, `{ character(id: 3) { anime { name genre { name } } } }`)).Should(MatchResultInJSON(`{
						"data": { "character": { "anime": { "name": "Demon Slayer", "genre": { "name": "Shounen" } } } }
					}`))
				})

				It("returns an empty list for a genre without animes", func() {
					Expect(execute(schema, `mutation { addGenre(name: "Isekai") { animes { id } } }`)).Should(MatchResultInJSON(`{
						"data": { "addGenre": { "animes": [] } }
					}`))
				})
			})

			Describe("mutations", func() {
				It("appends a genre with the next id", func() {
					Expect(execute(schema, `mutation { addGenre(name: "Isekai") { id name } }`)).Should(MatchResultInJSON(`{
						"data": { "addGenre": { "id": 3, "name": "Isekai" } }
					}`))

					Expect(execute(schema, `{ genres { id name } }`)).Should(MatchResultInJSON(`{
						"data": { "genres": [
							{ "id": 1, "name": "Shounen" },
							{ "id": 2, "name": "Shoujo" },
							{ "id": 3, "name": "Isekai" }
						] }
					}`))
				})

				It("appends an anime and resolves its genre", func() {
					Expect(execute(schema, `mutation {
						addAnime(name: "Mob Psycho 100", genreId: 1) { id name genreId genre { name } characters { id } }
					}`)).Should(MatchResultInJSON(`{
						"data": { "addAnime": {
							"id": 9, "name": "Mob Psycho 100", "genreId": 1,
							"genre": { "name": "Shounen" }, "characters": []
						} }
					}`))

					Expect(execute(schema, `{ anime(id: 9) { name } genre(id: 1) { animes { id } } }`)).Should(MatchResultInJSON(`{
						"data": {
							"anime": { "name": "Mob Psycho 100" },
							"genre": { "animes": [
								{ "id": 1 }, { "id": 2 }, { "id": 3 }, { "id": 4 },
								{ "id": 5 }, { "id": 6 }, { "id": 9 }
							] }
						}
					}`))
				})

				It("accepts an anime whose genre does not exist", func() {
					Expect(execute(schema, `mutation { addAnime(name: "Orphan", genreId: 999) { id genreId genre { name } } }`)).Should(MatchResultInJSON(`{
						"data": { "addAnime": { "id": 9, "genreId": 999, "genre": null } }
					}`))
				})

				It("takes arguments from variables", func() {
					result := execute(schema,
						`mutation ($name: String!, $genreId: Int!) { addAnime(name: $name, genreId: $genreId) { id name } }`,
						map[string]interface{}{"name": "Ouran", "genreId": float64(2)})
					Expect(result).Should(MatchResultInJSON(`{
						"data": { "addAnime": { "id": 9, "name": "Ouran" } }
					}`))
				})

				It("hands out a new id for every addition", func() {
					Expect(execute(schema, `mutation {
						a: addGenre(name: "Isekai") { id }
						b: addGenre(name: "Mecha") { id }
					}`)).Should(MatchResultInJSON(`{
						"data": { "a": { "id": 3 }, "b": { "id": 4 } }
					}`))
				})

				It("gives concurrent additions distinct ids", func() {
					const n = 10

					var (
						wg  sync.WaitGroup
						mu  sync.Mutex
						ids = map[float64]bool{}
					)
					for i := 0; i < n; i++ {
						wg.Add(1)
						go func(i int) {
							defer GinkgoRecover()
							defer wg.Done()

							result := decode(execute(schema,
								`mutation ($name: String!) { addGenre(name: $name) { id } }`,
								map[string]interface{}{"name": fmt.Sprintf("genre-%d", i)}))

							mu.Lock()
							defer mu.Unlock()
							ids[result["addGenre"].(map[string]interface{})["id"].(float64)] = true
						}(i)
					}
					wg.Wait()

					Expect(ids).Should(HaveLen(n))
					genres, err := store.Genres(context.Background())
					Expect(err).ShouldNot(HaveOccurred())
					Expect(genres).Should(HaveLen(2 + n))
				})
			})
		})
	}

	Describe("request errors", func() {
		var schema graphql.Schema

		BeforeEach(func() {
			var err error
			schema, err = graph.NewSchema(data.NewMemoryStore())
			Expect(err).ShouldNot(HaveOccurred())
		})

		It("reports syntax errors without data", func() {
			result := execute(schema, `{ anime(id: 1) { name }`)
			Expect(result.Data).Should(BeNil())
			Expect(result.Errors.HaveOccurred()).Should(BeTrue())
		})

		It("rejects unknown fields", func() {
			result := execute(schema, `{ anime(id: 1) { title } }`)
			Expect(result.Data).Should(BeNil())
			Expect(result.Errors.Errors).ShouldNot(BeEmpty())
			Expect(result.Errors.Errors[0].Message).Should(ContainSubstring("title"))
		})

		It("rejects a mutation without its required arguments", func() {
			result := execute(schema, `mutation { addAnime(name: "No Genre") { id } }`)
			Expect(result.Data).Should(BeNil())
			Expect(result.Errors.Errors).ShouldNot(BeEmpty())
			Expect(result.Errors.Errors[0].Message).Should(ContainSubstring("genreId"))
		})

		It("rejects arguments of the wrong type", func() {
			result := execute(schema, `{ anime(id: "one") { id } }`)
			Expect(result.Data).Should(BeNil())
			Expect(result.Errors.HaveOccurred()).Should(BeTrue())
		})
	})

	Describe("NormalizeVariables", func() {
		It("turns whole JSON numbers into ints", func() {
			Expect(graph.NormalizeVariables(map[string]interface{}{
				"id":     float64(5),
				"number": json.Number("7"),
				"ratio":  1.5,
				"name":   "Haikyuu",
				"ids":    []interface{}{float64(1), float64(2)},
				"input":  map[string]interface{}{"genreId": float64(2)},
			})).Should(Equal(map[string]interface{}{
				"id":     5,
				"number": 7,
				"ratio":  1.5,
				"name":   "Haikyuu",
				"ids":    []interface{}{1, 2},
				"input":  map[string]interface{}{"genreId": 2},
			}))
		})

		It("leaves nil variables alone", func() {
			Expect(graph.NormalizeVariables(nil)).Should(BeNil())
		})

		It("resolves lookups from decoded JSON variables", func() {
			var variables map[string]interface{}
			Expect(json.Unmarshal([]byte(`{"id": 3}`), &variables)).Should(Succeed())

			schema, err := graph.NewSchema(data.NewMemoryStore())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(execute(schema, `query ($id: Int) { character(id: $id) { name } }`, variables)).
				Should(MatchResultInJSON(`{"data": {"character": {"name": "Kamado Tanjiro"}}}`))
		})
	})

	Describe("Prepare", func() {
		var schema graphql.Schema

		BeforeEach(func() {
			var err error
			schema, err = graph.NewSchema(data.NewMemoryStore())
			Expect(err).ShouldNot(HaveOccurred())
		})

		It("rejects an empty query", func() {
			_, err := graph.Prepare(schema, graph.Request{Query: "  "})
			Expect(err).Should(MatchError(graph.ErrEmptyQuery))
		})

		It("reports syntax errors", func() {
			_, err := graph.Prepare(schema, graph.Request{Query: `{ genres { name }`})
			var syntaxErr *graph.SyntaxError
			Expect(errors.As(err, &syntaxErr)).Should(BeTrue())
		})

		It("reports validation errors", func() {
			_, err := graph.Prepare(schema, graph.Request{Query: `{ genres { title } }`})
			var validationErr *graph.ValidationError
			Expect(errors.As(err, &validationErr)).Should(BeTrue())
			Expect(validationErr.Error()).Should(ContainSubstring("title"))
			Expect(graph.ErrorsFrom(err).Errors).Should(HaveLen(len(validationErr.Errs.Errors)))
		})
	})

	Describe("ErrorsFrom", func() {
		It("wraps plain errors", func() {
			errs := graph.ErrorsFrom(fmt.Errorf("boom"))
			Expect(errs.Errors).Should(HaveLen(1))
			Expect(errs.Errors[0].Message).Should(Equal("boom"))
		})
	})
})
