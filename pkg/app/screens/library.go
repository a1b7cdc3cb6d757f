package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/app/components"
	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/app/styles"
	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/data"
)

type LibraryScreen struct {
	repo       *data.Repository
	recordList *components.RecordList
	width      int
	height     int
	err        error
}

func NewLibraryScreen(repo *data.Repository) *LibraryScreen {
	return &LibraryScreen{
		repo:       repo,
		recordList: components.NewRecordList(),
	}
}

func (s *LibraryScreen) Init() tea.Cmd {
	return s.loadLibrary
}

func (s *LibraryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.recordList.Width = msg.Width - 4
		s.recordList.Height = msg.Height - 10

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.recordList.Prev()
		case "down", "j":
			s.recordList.Next()
		case "r":
			return s, s.loadLibrary
		case "d":
			// Drop selected series from the store
			selected := s.recordList.Selected()
			if selected != nil {
				return s, s.deleteRecord(selected.Manga.ID)
			}
		case "enter":
			selected := s.recordList.Selected()
			if selected != nil {
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "details", Data: selected.Manga.ID}
				}
			}
		}

	case libraryLoadedMsg:
		s.recordList.SetItems(msg.items)
		s.err = msg.err

	case recordDeletedMsg:
		if msg.err != nil {
			s.err = msg.err
		}
		return s, s.loadLibrary
	}

	return s, nil
}

func (s *LibraryScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("📚 Reading List")

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
		errorMsg += "\n\n"
	}

	listView := s.recordList.View()

	help := styles.HelpStyle.Render(
		"↑/k: up • ↓/j: down • enter: details • d: delete • r: refresh • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s%s\n%s", header, errorMsg, listView, help)
}

// Messages
type libraryLoadedMsg struct {
	items []components.RecordListItem
	err   error
}

type recordDeletedMsg struct {
	err error
}

// Commands
func (s *LibraryScreen) loadLibrary() tea.Msg {
	mangas, err := s.repo.ListMangas()
	if err != nil {
		return libraryLoadedMsg{err: err}
	}

	items := make([]components.RecordListItem, len(mangas))
	for i, m := range mangas {
		items[i] = components.RecordListItem{Manga: m}
	}

	return libraryLoadedMsg{items: items}
}

func (s *LibraryScreen) deleteRecord(id int64) tea.Cmd {
	return func() tea.Msg {
		err := s.repo.DeleteManga(id)
		return recordDeletedMsg{err: err}
	}
}
