package screens

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/animes/pkg/app/styles"
	"github.com/kerbaras/animes/pkg/client"
)

// DetailsScreen shows one record together with the records it relates to.
type DetailsScreen struct {
	client  *client.Client
	kind    Kind
	id      int
	details *recordDetails
	width   int
	height  int
	err     error
}

// recordDetails is the rendered form of a record, independent of its kind.
type recordDetails struct {
	title    string
	info     []string
	relation string
	related  []string
}

func NewDetailsScreen(c *client.Client, kind Kind, id int) *DetailsScreen {
	return &DetailsScreen{
		client: c,
		kind:   kind,
		id:     id,
	}
}

func (s *DetailsScreen) Init() tea.Cmd {
	return s.loadDetails
}

func (s *DetailsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return s, s.loadDetails
		case "esc", "backspace":
			return s, switchTo(browseView, s.kind, 0)
		}

	case detailsLoadedMsg:
		s.details = msg.details
		s.err = msg.err
	}

	return s, nil
}

func (s *DetailsScreen) View() string {
	help := styles.HelpStyle.Render("r: refresh • esc: back • q: quit")

	if s.err != nil {
		return fmt.Sprintf("%s\n%s", styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)), help)
	}
	if s.width == 0 || s.details == nil {
		return "Loading..."
	}

	header := styles.TitleStyle.Render(s.details.title)
	info := styles.CardStyle.Width(s.width - 4).Render(
		lipgloss.JoinVertical(lipgloss.Left, s.details.info...),
	)

	return fmt.Sprintf("%s\n\n%s\n%s\n%s", header, info, s.renderRelated(), help)
}

func (s *DetailsScreen) renderRelated() string {
	if s.details.relation == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%s (%d):", s.details.relation, len(s.details.related))))
	b.WriteString("\n\n")

	if len(s.details.related) == 0 {
		b.WriteString(styles.MutedStyle.Render("None"))
		b.WriteString("\n")
	}
	for _, line := range s.details.related {
		b.WriteString(styles.TextStyle.Render("• " + line))
		b.WriteString("\n")
	}
	return b.String()
}

type detailsLoadedMsg struct {
	details *recordDetails
	err     error
}

func (s *DetailsScreen) loadDetails() tea.Msg {
	ctx := context.Background()
	notFound := fmt.Errorf("%s #%d not found", s.kind.singular(), s.id)

	switch s.kind {
	case GenreKind:
		genre, err := s.client.Genre(ctx, s.id)
		if err != nil {
			return detailsLoadedMsg{err: err}
		}
		if genre == nil {
			return detailsLoadedMsg{err: notFound}
		}
		related := make([]string, len(genre.Animes))
		for i, a := range genre.Animes {
			related[i] = fmt.Sprintf("#%d %s", a.ID, a.Name)
		}
		return detailsLoadedMsg{details: &recordDetails{
			title:    genre.Name,
			info:     []string{fmt.Sprintf("ID: %d", genre.ID)},
			relation: "Animes",
			related:  related,
		}}

	case AnimeKind:
		anime, err := s.client.Anime(ctx, s.id)
		if err != nil {
			return detailsLoadedMsg{err: err}
		}
		if anime == nil {
			return detailsLoadedMsg{err: notFound}
		}
		genre := styles.MutedStyle.Render(fmt.Sprintf("unknown (#%d)", anime.GenreID))
		if anime.Genre != nil {
			genre = anime.Genre.Name
		}
		related := make([]string, len(anime.Characters))
		for i, c := range anime.Characters {
			related[i] = fmt.Sprintf("#%d %s", c.ID, c.Name)
		}
		return detailsLoadedMsg{details: &recordDetails{
			title:    anime.Name,
			info:     []string{fmt.Sprintf("ID: %d", anime.ID), fmt.Sprintf("Genre: %s", genre)},
			relation: "Characters",
			related:  related,
		}}

	default:
		character, err := s.client.Character(ctx, s.id)
		if err != nil {
			return detailsLoadedMsg{err: err}
		}
		if character == nil {
			return detailsLoadedMsg{err: notFound}
		}
		anime := styles.MutedStyle.Render(fmt.Sprintf("unknown (#%d)", character.AnimeID))
		if character.Anime != nil {
			anime = character.Anime.Name
		}
		return detailsLoadedMsg{details: &recordDetails{
			title: character.Name,
			info:  []string{fmt.Sprintf("ID: %d", character.ID), fmt.Sprintf("Anime: %s", anime)},
		}}
	}
}
