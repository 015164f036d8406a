package screens

import tea "github.com/charmbracelet/bubbletea"

// Kind is the record collection a screen works on.
type Kind int

const (
	GenreKind Kind = iota
	AnimeKind
	CharacterKind
)

var kinds = []Kind{GenreKind, AnimeKind, CharacterKind}

func (k Kind) String() string {
	switch k {
	case GenreKind:
		return "Genres"
	case AnimeKind:
		return "Animes"
	case CharacterKind:
		return "Characters"
	default:
		return "Unknown"
	}
}

func (k Kind) singular() string {
	switch k {
	case GenreKind:
		return "genre"
	case AnimeKind:
		return "anime"
	default:
		return "character"
	}
}

// canAdd reports whether the API has a mutation for k.
func (k Kind) canAdd() bool {
	return k == GenreKind || k == AnimeKind
}

type screen int

const (
	browseView screen = iota
	detailsView
	addView
)

// SwitchScreenMsg asks the root screen to change view. Kind selects the tab.
// ID is the record to open in the details view, or the record that was just
// added when returning to the browse view.
type SwitchScreenMsg struct {
	Screen screen
	Kind   Kind
	ID     int
}

func switchTo(s screen, kind Kind, id int) tea.Cmd {
	return func() tea.Msg { return SwitchScreenMsg{Screen: s, Kind: kind, ID: id} }
}
