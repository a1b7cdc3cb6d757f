package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/app/screens"
	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/data"
)

type App struct {
	repo *data.Repository
}

func NewApp(repo *data.Repository) *App {
	return &App{repo: repo}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.repo)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
