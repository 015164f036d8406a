package screens

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/kerbaras/animes/pkg/app/components"
	"github.com/kerbaras/animes/pkg/app/styles"
	"github.com/kerbaras/animes/pkg/client"
)

// BrowseScreen lists every record of one collection.
type BrowseScreen struct {
	client *client.Client
	kind   Kind
	list   *components.EntryList
	width  int
	height int
	err    error
}

func NewBrowseScreen(c *client.Client, kind Kind) *BrowseScreen {
	return &BrowseScreen{
		client: c,
		kind:   kind,
		list:   components.NewEntryList(fmt.Sprintf("No %s yet", kind.String())),
	}
}

func (s *BrowseScreen) Init() tea.Cmd {
	return s.load
}

func (s *BrowseScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width - 4
		s.list.Height = msg.Height - 10

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.list.Prev()
		case "down", "j":
			s.list.Next()
		case "r":
			return s, s.load
		case "a":
			if s.kind.canAdd() {
				return s, switchTo(addView, s.kind, 0)
			}
		case "enter":
			if selected := s.list.Selected(); selected != nil {
				return s, switchTo(detailsView, s.kind, selected.ID)
			}
		}

	case entriesLoadedMsg:
		if msg.kind != s.kind {
			return s, nil
		}
		s.err = msg.err
		if msg.err == nil {
			s.list.SetItems(msg.items)
		}
	}

	return s, nil
}

func (s *BrowseScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render(s.kind.String())

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
		errorMsg += "\n\n"
	}

	help := "↑/k: up • ↓/j: down • enter: details • r: refresh • tab: switch • q: quit"
	if s.kind.canAdd() {
		help = "↑/k: up • ↓/j: down • enter: details • a: add • r: refresh • tab: switch • q: quit"
	}

	return fmt.Sprintf("%s\n\n%s%s\n%s", header, errorMsg, s.list.View(), styles.HelpStyle.Render(help))
}

type entriesLoadedMsg struct {
	kind  Kind
	items []components.EntryListItem
	err   error
}

func (s *BrowseScreen) load() tea.Msg {
	ctx := context.Background()

	switch s.kind {
	case GenreKind:
		genres, err := s.client.Genres(ctx)
		if err != nil {
			return entriesLoadedMsg{kind: s.kind, err: err}
		}
		return entriesLoadedMsg{kind: s.kind, items: lo.Map(genres, func(g client.Genre, _ int) components.EntryListItem {
			return components.EntryListItem{ID: g.ID, Title: g.Name}
		})}

	case AnimeKind:
		animes, err := s.client.Animes(ctx)
		if err != nil {
			return entriesLoadedMsg{kind: s.kind, err: err}
		}
		return entriesLoadedMsg{kind: s.kind, items: lo.Map(animes, func(a client.Anime, _ int) components.EntryListItem {
			return components.EntryListItem{ID: a.ID, Title: a.Name, Subtitle: fmt.Sprintf("genre #%d", a.GenreID)}
		})}

	default:
		characters, err := s.client.Characters(ctx)
		if err != nil {
			return entriesLoadedMsg{kind: s.kind, err: err}
		}
		return entriesLoadedMsg{kind: s.kind, items: lo.Map(characters, func(c client.Character, _ int) components.EntryListItem {
			return components.EntryListItem{ID: c.ID, Title: c.Name, Subtitle: fmt.Sprintf("anime #%d", c.AnimeID)}
		})}
	}
}
