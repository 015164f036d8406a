package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/animes/pkg/app/styles"
	"github.com/kerbaras/animes/pkg/client"
)

type RootScreen struct {
	client *client.Client

	currentView screen
	tab         Kind
	browse      map[Kind]*BrowseScreen
	details     *DetailsScreen
	add         *AddScreen
	flash       string

	width  int
	height int
}

func NewRootScreen(c *client.Client) *RootScreen {
	browse := make(map[Kind]*BrowseScreen, len(kinds))
	for _, k := range kinds {
		browse[k] = NewBrowseScreen(c, k)
	}

	return &RootScreen{
		client:      c,
		currentView: browseView,
		tab:         GenreKind,
		browse:      browse,
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.browse[r.tab].Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		// Every screen keeps its own size so switching never renders "Loading...".
		for _, b := range r.browse {
			b.Update(msg)
		}
		if r.details != nil {
			r.details.Update(msg)
		}
		if r.add != nil {
			r.add.Update(msg)
		}
		return r, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return r, tea.Quit
		}
		// The add form needs every printable key.
		if r.currentView != addView {
			switch msg.String() {
			case "q":
				return r, tea.Quit
			case "tab":
				if r.currentView == browseView {
					r.tab = (r.tab + 1) % Kind(len(kinds))
					r.flash = ""
					return r, r.browse[r.tab].Init()
				}
			}
		}

	case entriesLoadedMsg:
		b, _ := r.browse[msg.kind].Update(msg)
		r.browse[msg.kind] = b.(*BrowseScreen)
		return r, nil

	case SwitchScreenMsg:
		return r, r.switchScreen(msg)
	}

	switch r.currentView {
	case detailsView:
		if r.details != nil {
			newModel, cmd := r.details.Update(msg)
			r.details = newModel.(*DetailsScreen)
			return r, cmd
		}
	case addView:
		if r.add != nil {
			newModel, cmd := r.add.Update(msg)
			r.add = newModel.(*AddScreen)
			return r, cmd
		}
	default:
		newModel, cmd := r.browse[r.tab].Update(msg)
		r.browse[r.tab] = newModel.(*BrowseScreen)
		return r, cmd
	}

	return r, nil
}

func (r *RootScreen) switchScreen(msg SwitchScreenMsg) tea.Cmd {
	size := tea.WindowSizeMsg{Width: r.width, Height: r.height}
	r.tab = msg.Kind
	r.flash = ""

	switch msg.Screen {
	case detailsView:
		r.details = NewDetailsScreen(r.client, msg.Kind, msg.ID)
		r.details.Update(size)
		r.currentView = detailsView
		return r.details.Init()

	case addView:
		r.add = NewAddScreen(r.client, msg.Kind)
		r.add.Update(size)
		r.currentView = addView
		return r.add.Init()

	default:
		if msg.ID > 0 {
			r.flash = fmt.Sprintf("Added %s #%d", msg.Kind.singular(), msg.ID)
		}
		r.details = nil
		r.add = nil
		r.currentView = browseView
		return r.browse[r.tab].Init()
	}
}

func (r *RootScreen) View() string {
	var content string
	switch r.currentView {
	case detailsView:
		if r.details != nil {
			content = r.details.View()
		}
	case addView:
		if r.add != nil {
			content = r.add.View()
		}
	default:
		content = r.browse[r.tab].View()
	}

	if r.currentView != browseView {
		return content
	}

	view := fmt.Sprintf("%s\n\n%s", r.renderTabs(), content)
	if r.flash != "" {
		view += "\n" + styles.StatusSuccess.Render(r.flash)
	}
	return view
}

func (r *RootScreen) renderTabs() string {
	tabs := make([]string, len(kinds))
	for i, k := range kinds {
		tabs[i] = styles.Tab(k.String(), k == r.tab)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
