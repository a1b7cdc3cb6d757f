package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/app/styles"
	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/data"
)

type RecordListItem struct {
	Manga *data.Manga
}

type RecordList struct {
	Items         []RecordListItem
	SelectedIndex int
	Width         int
	Height        int
}

func NewRecordList() *RecordList {
	return &RecordList{
		Items:         []RecordListItem{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
	}
}

func (r *RecordList) SetItems(items []RecordListItem) {
	r.Items = items
	if r.SelectedIndex >= len(items) && len(items) > 0 {
		r.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		r.SelectedIndex = 0
	}
}

func (r *RecordList) Next() {
	if len(r.Items) == 0 {
		return
	}
	r.SelectedIndex++
	if r.SelectedIndex >= len(r.Items) {
		r.SelectedIndex = 0
	}
}

func (r *RecordList) Prev() {
	if len(r.Items) == 0 {
		return
	}
	r.SelectedIndex--
	if r.SelectedIndex < 0 {
		r.SelectedIndex = len(r.Items) - 1
	}
}

func (r *RecordList) Selected() *RecordListItem {
	if len(r.Items) == 0 || r.SelectedIndex >= len(r.Items) {
		return nil
	}
	return &r.Items[r.SelectedIndex]
}

func (r *RecordList) View() string {
	if len(r.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No series tracked")
		return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder

	for i, item := range r.Items {
		cardStyle := styles.CardStyle
		if i == r.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		m := item.Manga
		title := styles.TitleStyle.Render(m.Title)
		if m.TitleRomanized != "" {
			title += styles.SubtitleStyle.Render(fmt.Sprintf("  %s", m.TitleRomanized))
		}

		chapter := "Chapter: -"
		if m.Chapter != "" {
			chapter = fmt.Sprintf("Chapter: %s", m.Chapter)
		}
		updated := "Updated: -"
		if m.LastUpdate != "" {
			updated = fmt.Sprintf("Updated: %s", m.LastUpdate)
		}
		progress := styles.MutedStyle.Render(fmt.Sprintf("%s  %s", chapter, updated))

		url := styles.MutedStyle.Render(m.URL)

		lines := []string{title, progress, url}
		if len(m.Tags) > 0 {
			lines = append(lines, styles.TextStyle.Render(strings.Join(m.Tags, " ")))
		}

		cardContent := lipgloss.JoinVertical(lipgloss.Left, lines...)

		card := cardStyle.Width(r.Width - 4).Render(cardContent)
		b.WriteString(card)
		b.WriteString("\n")
	}

	return b.String()
}
