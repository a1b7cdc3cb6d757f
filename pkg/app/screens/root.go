package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/data"
)

type screenType int

const (
	libraryView screenType = iota
	detailsView
)

// SwitchScreenMsg is how sub-screens ask for navigation.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

type RootScreen struct {
	repo *data.Repository

	currentView screenType
	library     *LibraryScreen
	details     *DetailsScreen

	width  int
	height int
}

func NewRootScreen(repo *data.Repository) *RootScreen {
	return &RootScreen{
		repo:        repo,
		currentView: libraryView,
		library:     NewLibraryScreen(repo),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.library.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return r, tea.Quit
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "library":
			r.currentView = libraryView
			cmd = r.library.Init()
		case "details":
			if id, ok := msg.Data.(int64); ok {
				r.details = NewDetailsScreen(r.repo, id)
				r.currentView = detailsView
				cmd = r.details.Init()
			}
		}
		return r, cmd
	}

	// Forward message to active screen
	switch r.currentView {
	case libraryView:
		newModel, newCmd := r.library.Update(msg)
		r.library = newModel.(*LibraryScreen)
		return r, newCmd
	case detailsView:
		if r.details != nil {
			newModel, newCmd := r.details.Update(msg)
			r.details = newModel.(*DetailsScreen)
			return r, newCmd
		}
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	switch r.currentView {
	case detailsView:
		if r.details != nil {
			return r.details.View()
		}
	}
	return r.library.View()
}
