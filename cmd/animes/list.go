package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/kerbaras/animes/pkg/client"
)

var listCmd = &cobra.Command{
	Use:       "list [genres|animes|characters]",
	Short:     "List the records of one kind",
	Long:      "Display every genre, anime or character known to the server in a formatted table",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"genres", "animes", "characters"},
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient(cmd)

		columns, rows, err := listRows(cmd.Context(), c, args[0])
		if err != nil {
			return fmt.Errorf("failed to list %s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		if len(rows) == 0 {
			fmt.Fprintf(out, "No %s found.\n", args[0])
			return nil
		}

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)

		// Styles go first so the height accounts for the header border
		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithStyles(s),
			table.WithHeight(len(rows)+lipgloss.Height(s.Header.Render("ID"))),
		)

		fmt.Fprintf(out, "\n%s (%d)\n\n", args[0], len(rows))
		fmt.Fprintln(out, t.View())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listRows(ctx context.Context, c *client.Client, kind string) ([]table.Column, []table.Row, error) {
	switch kind {
	case "genres":
		genres, err := c.Genres(ctx)
		if err != nil {
			return nil, nil, err
		}
		columns := []table.Column{{Title: "ID", Width: 6}, {Title: "Name", Width: 40}}
		rows := lo.Map(genres, func(g client.Genre, _ int) table.Row {
			return table.Row{strconv.Itoa(g.ID), truncateString(g.Name, 38)}
		})
		return columns, rows, nil

	case "animes":
		animes, err := c.Animes(ctx)
		if err != nil {
			return nil, nil, err
		}
		genres, err := c.Genres(ctx)
		if err != nil {
			return nil, nil, err
		}
		names := lo.SliceToMap(genres, func(g client.Genre) (int, string) { return g.ID, g.Name })

		columns := []table.Column{{Title: "ID", Width: 6}, {Title: "Name", Width: 40}, {Title: "Genre", Width: 20}}
		rows := lo.Map(animes, func(a client.Anime, _ int) table.Row {
			return table.Row{strconv.Itoa(a.ID), truncateString(a.Name, 38), lookupName(names, a.GenreID)}
		})
		return columns, rows, nil

	case "characters":
		characters, err := c.Characters(ctx)
		if err != nil {
			return nil, nil, err
		}
		animes, err := c.Animes(ctx)
		if err != nil {
			return nil, nil, err
		}
		names := lo.SliceToMap(animes, func(a client.Anime) (int, string) { return a.ID, a.Name })

		columns := []table.Column{{Title: "ID", Width: 6}, {Title: "Name", Width: 30}, {Title: "Anime", Width: 40}}
		rows := lo.Map(characters, func(ch client.Character, _ int) table.Row {
			return table.Row{strconv.Itoa(ch.ID), truncateString(ch.Name, 28), truncateString(lookupName(names, ch.AnimeID), 38)}
		})
		return columns, rows, nil
	}
	return nil, nil, fmt.Errorf("unknown kind %q", kind)
}

func lookupName(names map[int]string, id int) string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("#%d", id)
}

func truncateString(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
