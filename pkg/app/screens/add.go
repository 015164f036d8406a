package screens

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kerbaras/animes/pkg/app/styles"
	"github.com/kerbaras/animes/pkg/client"
)

// AddScreen is a form running the addGenre or addAnime mutation.
type AddScreen struct {
	client     *client.Client
	kind       Kind
	inputs     []textinput.Model
	focus      int
	submitting bool
	width      int
	height     int
	err        error
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 100
	ti.Width = 50
	return ti
}

func NewAddScreen(c *client.Client, kind Kind) *AddScreen {
	inputs := []textinput.Model{newInput("Name")}
	if kind == AnimeKind {
		genreID := newInput("Genre ID")
		genreID.CharLimit = 10
		inputs = append(inputs, genreID)
	}
	inputs[0].Focus()

	return &AddScreen{
		client: c,
		kind:   kind,
		inputs: inputs,
	}
}

func (s *AddScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *AddScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil

	case tea.KeyMsg:
		if s.submitting {
			return s, nil
		}

		switch msg.String() {
		case "esc":
			return s, switchTo(browseView, s.kind, 0)
		case "tab", "down":
			s.setFocus(s.focus + 1)
			return s, nil
		case "shift+tab", "up":
			s.setFocus(s.focus - 1)
			return s, nil
		case "enter":
			if s.focus < len(s.inputs)-1 {
				s.setFocus(s.focus + 1)
				return s, nil
			}
			s.submitting = true
			s.err = nil
			return s, s.submit
		}

	case recordAddedMsg:
		s.submitting = false
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}
		return s, switchTo(browseView, s.kind, msg.id)
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *AddScreen) setFocus(i int) {
	n := len(s.inputs)
	s.focus = (i%n + n) % n
	for j := range s.inputs {
		if j == s.focus {
			s.inputs[j].Focus()
		} else {
			s.inputs[j].Blur()
		}
	}
}

func (s *AddScreen) View() string {
	header := styles.TitleStyle.Render(fmt.Sprintf("New %s", s.kind.singular()))

	var b strings.Builder
	for i, input := range s.inputs {
		style := styles.InputStyle
		if i == s.focus {
			style = styles.FocusedInputStyle
		}
		b.WriteString(style.Render(input.View()))
		b.WriteString("\n")
	}

	var status string
	switch {
	case s.submitting:
		status = styles.MutedStyle.Render("Saving...")
	case s.err != nil:
		status = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
	}

	help := styles.HelpStyle.Render("tab/↓: next field • shift+tab/↑: previous • enter: save • esc: cancel")

	return fmt.Sprintf("%s\n\n%s\n%s\n%s", header, b.String(), status, help)
}

type recordAddedMsg struct {
	id  int
	err error
}

func (s *AddScreen) submit() tea.Msg {
	ctx := context.Background()

	name := strings.TrimSpace(s.inputs[0].Value())
	if name == "" {
		return recordAddedMsg{err: fmt.Errorf("name is required")}
	}

	if s.kind == GenreKind {
		genre, err := s.client.AddGenre(ctx, name)
		if err != nil {
			return recordAddedMsg{err: err}
		}
		return recordAddedMsg{id: genre.ID}
	}

	genreID, err := strconv.Atoi(strings.TrimSpace(s.inputs[1].Value()))
	if err != nil {
		return recordAddedMsg{err: fmt.Errorf("genre id must be a number")}
	}
	anime, err := s.client.AddAnime(ctx, name, genreID)
	if err != nil {
		return recordAddedMsg{err: err}
	}
	return recordAddedMsg{id: anime.ID}
}
