package screens

import (
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/animes/pkg/client"
	"github.com/kerbaras/animes/pkg/config"
	"github.com/kerbaras/animes/pkg/data"
	"github.com/kerbaras/animes/pkg/logging"
	"github.com/kerbaras/animes/pkg/server"
)

func setupClient(t *testing.T) *client.Client {
	t.Helper()

	s, err := server.New(config.Default(), data.NewMemoryStore(), logging.Discard())
	require.NoError(t, err)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return client.New(ts.URL + "/graphql")
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

var windowSize = tea.WindowSizeMsg{Width: 100, Height: 40}

func TestBrowseLoadsEntries(t *testing.T) {
	c := setupClient(t)

	tests := []struct {
		kind  Kind
		count int
		first string
	}{
		{GenreKind, 2, "Shounen"},
		{AnimeKind, 8, "Bungo Stray Dogs"},
		{CharacterKind, 13, "Dasai Osamu"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s := NewBrowseScreen(c, tt.kind)
			s.Update(windowSize)
			s.Update(s.Init()())

			require.NoError(t, s.err)
			require.Len(t, s.list.Items, tt.count)
			assert.Equal(t, tt.first, s.list.Items[0].Title)
			assert.Contains(t, s.View(), tt.first)
		})
	}
}

func TestBrowseRefreshKeepsEntries(t *testing.T) {
	s := NewBrowseScreen(setupClient(t), CharacterKind)
	s.Update(s.Init()())
	require.Len(t, s.list.Items, 13)

	for i := 0; i < 2; i++ {
		_, cmd := s.Update(keyMsg("r"))
		require.NotNil(t, cmd)
		s.Update(cmd())

		require.NoError(t, s.err)
		assert.Len(t, s.list.Items, 13, "refresh %d", i)
	}
}

func TestBrowseIgnoresOtherKinds(t *testing.T) {
	s := NewBrowseScreen(setupClient(t), GenreKind)
	s.Update(entriesLoadedMsg{kind: AnimeKind, items: nil})
	s.Update(s.Init()())
	s.Update(entriesLoadedMsg{kind: AnimeKind, items: nil})
	assert.Len(t, s.list.Items, 2)
}

func TestBrowseKeys(t *testing.T) {
	s := NewBrowseScreen(setupClient(t), AnimeKind)
	s.Update(s.Init()())

	s.Update(keyMsg("j"))
	_, cmd := s.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, SwitchScreenMsg{Screen: detailsView, Kind: AnimeKind, ID: 2}, cmd())

	_, cmd = s.Update(keyMsg("a"))
	require.NotNil(t, cmd)
	assert.Equal(t, SwitchScreenMsg{Screen: addView, Kind: AnimeKind}, cmd())
}

func TestBrowseCannotAddCharacters(t *testing.T) {
	s := NewBrowseScreen(setupClient(t), CharacterKind)
	_, cmd := s.Update(keyMsg("a"))
	assert.Nil(t, cmd)
}

func TestDetails(t *testing.T) {
	c := setupClient(t)

	tests := []struct {
		name    string
		kind    Kind
		id      int
		title   string
		info    []string
		related []string
	}{
		{
			name:    "genre",
			kind:    GenreKind,
			id:      2,
			title:   "Shoujo",
			info:    []string{"ID: 2"},
			related: []string{"#7 Wotakoi", "#8 Fruits Basket"},
		},
		{
			name:    "anime",
			kind:    AnimeKind,
			id:      5,
			title:   "Demon Slayer",
			info:    []string{"ID: 5", "Genre: Shounen"},
			related: []string{"#3 Kamado Tanjiro", "#4 Kamado Nezuko"},
		},
		{
			name:  "character",
			kind:  CharacterKind,
			id:    11,
			title: "Hinata Shoyo",
			info:  []string{"ID: 11", "Anime: Haikyuu"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewDetailsScreen(c, tt.kind, tt.id)
			s.Update(windowSize)
			s.Update(s.Init()())

			require.NoError(t, s.err)
			require.NotNil(t, s.details)
			assert.Equal(t, tt.title, s.details.title)
			assert.Equal(t, tt.info, s.details.info)
			assert.Equal(t, tt.related, s.details.related)
			assert.Contains(t, s.View(), tt.title)
		})
	}
}

func TestDetailsNotFound(t *testing.T) {
	s := NewDetailsScreen(setupClient(t), AnimeKind, 99)
	s.Update(windowSize)
	s.Update(s.Init()())

	require.Error(t, s.err)
	assert.Contains(t, s.View(), "anime #99 not found")
}

func TestDetailsEscGoesBack(t *testing.T) {
	s := NewDetailsScreen(setupClient(t), CharacterKind, 1)
	_, cmd := s.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, SwitchScreenMsg{Screen: browseView, Kind: CharacterKind}, cmd())
}

func TestAddAnime(t *testing.T) {
	s := NewAddScreen(setupClient(t), AnimeKind)
	require.Len(t, s.inputs, 2)

	s.inputs[0].SetValue("Mob Psycho 100")
	_, cmd := s.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, s.focus)

	s.inputs[1].SetValue("1")
	_, cmd = s.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.True(t, s.submitting)

	added := cmd()
	assert.Equal(t, recordAddedMsg{id: 9}, added)

	_, cmd = s.Update(added)
	require.NotNil(t, cmd)
	assert.False(t, s.submitting)
	assert.Equal(t, SwitchScreenMsg{Screen: browseView, Kind: AnimeKind, ID: 9}, cmd())
}

func TestAddGenre(t *testing.T) {
	s := NewAddScreen(setupClient(t), GenreKind)
	require.Len(t, s.inputs, 1)

	s.inputs[0].SetValue("Isekai")
	_, cmd := s.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, recordAddedMsg{id: 3}, cmd())
}

func TestAddValidation(t *testing.T) {
	c := setupClient(t)

	s := NewAddScreen(c, GenreKind)
	_, cmd := s.Update(keyMsg("enter"))
	s.Update(cmd())
	require.Error(t, s.err)
	assert.Contains(t, s.View(), "name is required")

	s = NewAddScreen(c, AnimeKind)
	s.inputs[0].SetValue("Orphan")
	s.inputs[1].SetValue("one")
	s.setFocus(1)
	_, cmd = s.Update(keyMsg("enter"))
	s.Update(cmd())
	require.Error(t, s.err)
	assert.Contains(t, s.err.Error(), "genre id must be a number")
}

func TestAddFocusWraps(t *testing.T) {
	s := NewAddScreen(setupClient(t), AnimeKind)

	s.Update(keyMsg("tab"))
	assert.Equal(t, 1, s.focus)
	s.Update(keyMsg("tab"))
	assert.Equal(t, 0, s.focus)
	assert.True(t, s.inputs[0].Focused())
	assert.False(t, s.inputs[1].Focused())
}

func TestRootTabsCycle(t *testing.T) {
	r := NewRootScreen(setupClient(t))
	r.Update(windowSize)
	r.Update(r.Init()())
	assert.Contains(t, r.View(), "Shounen")

	_, cmd := r.Update(keyMsg("tab"))
	require.NotNil(t, cmd)
	assert.Equal(t, AnimeKind, r.tab)
	r.Update(cmd())
	assert.Contains(t, r.View(), "Bungo Stray Dogs")

	r.Update(keyMsg("tab"))
	assert.Equal(t, CharacterKind, r.tab)
	r.Update(keyMsg("tab"))
	assert.Equal(t, GenreKind, r.tab)
}

func TestRootQuit(t *testing.T) {
	r := NewRootScreen(setupClient(t))
	_, cmd := r.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootAddFlow(t *testing.T) {
	r := NewRootScreen(setupClient(t))
	r.Update(windowSize)

	r.Update(SwitchScreenMsg{Screen: addView, Kind: GenreKind})
	require.Equal(t, addView, r.currentView)
	assert.Contains(t, r.View(), "New genre")

	// Keys that act as shortcuts elsewhere are typed into the form.
	_, cmd := r.Update(keyMsg("q"))
	if cmd != nil {
		_, isQuit := cmd().(tea.QuitMsg)
		assert.False(t, isQuit)
	}
	assert.Equal(t, "q", r.add.inputs[0].Value())

	r.add.inputs[0].SetValue("Isekai")
	_, cmd = r.Update(keyMsg("enter"))
	_, cmd = r.Update(cmd())
	_, cmd = r.Update(cmd())
	require.NotNil(t, cmd)
	r.Update(cmd())

	assert.Equal(t, browseView, r.currentView)
	view := r.View()
	assert.Contains(t, view, "Added genre #3")
	assert.Contains(t, view, "Isekai")
}

func TestRootDetailsFlow(t *testing.T) {
	r := NewRootScreen(setupClient(t))
	r.Update(windowSize)
	r.Update(r.Init()())

	_, cmd := r.Update(keyMsg("enter"))
	_, cmd = r.Update(cmd())
	require.Equal(t, detailsView, r.currentView)
	r.Update(cmd())
	assert.Contains(t, r.View(), "Bungo Stray Dogs")

	_, cmd = r.Update(keyMsg("esc"))
	r.Update(cmd())
	assert.Equal(t, browseView, r.currentView)
	assert.Nil(t, r.details)
}
