package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kerbaras/animes/pkg/app/screens"
	"github.com/kerbaras/animes/pkg/client"
)

type App struct {
	client *client.Client
}

func NewApp(c *client.Client) *App {
	return &App{client: c}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.client)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
