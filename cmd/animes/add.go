package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a genre or an anime",
}

var addGenreCmd = &cobra.Command{
	Use:   "genre [name]",
	Short: "Add a genre",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		genre, err := newClient(cmd).AddGenre(cmd.Context(), name)
		if err != nil {
			return fmt.Errorf("failed to add genre: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added genre '%s' (ID: %d)\n", genre.Name, genre.ID)
		return nil
	},
}

var addAnimeCmd = &cobra.Command{
	Use:   "anime [name]",
	Short: "Add an anime to a genre",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		genreID, _ := cmd.Flags().GetInt("genre")

		anime, err := newClient(cmd).AddAnime(cmd.Context(), name, genreID)
		if err != nil {
			return fmt.Errorf("failed to add anime: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added anime '%s' (ID: %d, genre %d)\n", anime.Name, anime.ID, anime.GenreID)
		return nil
	},
}

func init() {
	addAnimeCmd.Flags().IntP("genre", "g", 0, "ID of the genre the anime belongs to")
	_ = addAnimeCmd.MarkFlagRequired("genre")

	addCmd.AddCommand(addGenreCmd, addAnimeCmd)
	rootCmd.AddCommand(addCmd)
}
