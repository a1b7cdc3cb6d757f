package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/app/styles"
	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/data"
)

type DetailsScreen struct {
	repo    *data.Repository
	mangaID int64
	manga   *data.Manga
	width   int
	height  int
	err     error
}

func NewDetailsScreen(repo *data.Repository, mangaID int64) *DetailsScreen {
	return &DetailsScreen{
		repo:    repo,
		mangaID: mangaID,
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
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "library", Data: nil}
			}
		}

	case detailsLoadedMsg:
		s.manga = msg.manga
		s.err = msg.err
	}

	return s, nil
}

func (s *DetailsScreen) View() string {
	if s.width == 0 || s.manga == nil {
		return "Loading..."
	}

	header := styles.TitleStyle.Render(fmt.Sprintf("📖 %s", s.manga.Title))

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
		errorMsg += "\n\n"
	}

	info := s.renderRecordInfo()

	help := styles.HelpStyle.Render(
		"r: refresh • esc: back • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s%s\n%s", header, errorMsg, info, help)
}

func (s *DetailsScreen) renderRecordInfo() string {
	m := s.manga

	lines := []string{}
	if m.TitleRomanized != "" {
		lines = append(lines, styles.SubtitleStyle.Render(m.TitleRomanized))
	}

	lines = append(lines, styles.TextStyle.Render(m.URL))
	if m.URLWithChapter != "" && m.URLWithChapter != m.URL {
		lines = append(lines, styles.MutedStyle.Render(fmt.Sprintf("Last read: %s", m.URLWithChapter)))
	}

	chapter := "-"
	if m.Chapter != "" {
		chapter = m.Chapter
	}
	lines = append(lines, "", styles.MutedStyle.Render(fmt.Sprintf("Chapter: %s", chapter)))

	if m.LastUpdate != "" {
		lines = append(lines, styles.MutedStyle.Render(fmt.Sprintf("Updated: %s", m.LastUpdate)))
	}

	if len(m.Tags) > 0 {
		lines = append(lines, styles.TextStyle.Render(fmt.Sprintf("Tags: %s", strings.Join(m.Tags, " "))))
	}

	if m.Notes != "" {
		lines = append(lines, "", styles.TextStyle.Render(m.Notes))
	}

	if m.MyAnimeList != "" {
		lines = append(lines, styles.MutedStyle.Render(fmt.Sprintf("MyAnimeList: %s", m.MyAnimeList)))
	}

	info := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return styles.CardStyle.Width(s.width - 4).Render(info)
}

// Messages
type detailsLoadedMsg struct {
	manga *data.Manga
	err   error
}

// Commands
func (s *DetailsScreen) loadDetails() tea.Msg {
	manga, err := s.repo.GetManga(s.mangaID)
	if err != nil {
		return detailsLoadedMsg{err: err}
	}
	if manga == nil {
		return detailsLoadedMsg{err: fmt.Errorf("record not found")}
	}
	return detailsLoadedMsg{manga: manga}
}
