package components

import (
	"strings"
	"testing"

	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/data"
)

func TestNewRecordList(t *testing.T) {
	list := NewRecordList()

	if list == nil {
		t.Fatal("Expected record list to be created")
	}

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex)
	}

	if len(list.Items) != 0 {
		t.Errorf("Expected 0 items, got %d", len(list.Items))
	}
}

func TestSetItems(t *testing.T) {
	list := NewRecordList()

	items := []RecordListItem{
		{Manga: &data.Manga{ID: 1, Title: "Series 1"}},
		{Manga: &data.Manga{ID: 2, Title: "Series 2"}},
	}

	list.SetItems(items)

	if len(list.Items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(list.Items))
	}

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex)
	}
}

func TestSetItemsResetsSelection(t *testing.T) {
	list := NewRecordList()

	items := []RecordListItem{
		{Manga: &data.Manga{ID: 1, Title: "Series 1"}},
		{Manga: &data.Manga{ID: 2, Title: "Series 2"}},
		{Manga: &data.Manga{ID: 3, Title: "Series 3"}},
	}

	list.SetItems(items)
	list.SelectedIndex = 2

	// Set fewer items
	newItems := []RecordListItem{
		{Manga: &data.Manga{ID: 1, Title: "Series 1"}},
	}

	list.SetItems(newItems)

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to be reset to 0, got %d", list.SelectedIndex)
	}
}

func TestNext(t *testing.T) {
	list := NewRecordList()

	items := []RecordListItem{
		{Manga: &data.Manga{ID: 1, Title: "Series 1"}},
		{Manga: &data.Manga{ID: 2, Title: "Series 2"}},
		{Manga: &data.Manga{ID: 3, Title: "Series 3"}},
	}

	list.SetItems(items)

	list.Next()
	if list.SelectedIndex != 1 {
		t.Errorf("Expected SelectedIndex 1, got %d", list.SelectedIndex)
	}

	list.Next()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected SelectedIndex 2, got %d", list.SelectedIndex)
	}

	// Should wrap around
	list.Next()
	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to wrap to 0, got %d", list.SelectedIndex)
	}
}

func TestPrev(t *testing.T) {
	list := NewRecordList()

	items := []RecordListItem{
		{Manga: &data.Manga{ID: 1, Title: "Series 1"}},
		{Manga: &data.Manga{ID: 2, Title: "Series 2"}},
		{Manga: &data.Manga{ID: 3, Title: "Series 3"}},
	}

	list.SetItems(items)

	// Should wrap around when at start
	list.Prev()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected SelectedIndex to wrap to 2, got %d", list.SelectedIndex)
	}

	list.Prev()
	if list.SelectedIndex != 1 {
		t.Errorf("Expected SelectedIndex 1, got %d", list.SelectedIndex)
	}

	list.Prev()
	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex)
	}
}

func TestNextPrevEmptyList(t *testing.T) {
	list := NewRecordList()

	// Should not panic with empty list
	list.Next()
	list.Prev()

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to remain 0, got %d", list.SelectedIndex)
	}
}

func TestSelected(t *testing.T) {
	list := NewRecordList()

	// Empty list
	if list.Selected() != nil {
		t.Error("Expected nil for empty list")
	}

	items := []RecordListItem{
		{Manga: &data.Manga{ID: 1, Title: "Series 1"}},
		{Manga: &data.Manga{ID: 2, Title: "Series 2"}},
	}

	list.SetItems(items)

	selected := list.Selected()
	if selected == nil {
		t.Fatal("Expected selected item")
	}

	if selected.Manga.ID != 1 {
		t.Errorf("Expected selected record ID 1, got %d", selected.Manga.ID)
	}

	list.Next()
	selected = list.Selected()
	if selected.Manga.ID != 2 {
		t.Errorf("Expected selected record ID 2, got %d", selected.Manga.ID)
	}
}

func TestViewEmptyList(t *testing.T) {
	list := NewRecordList()
	list.Width = 80
	list.Height = 20

	view := list.View()

	if !strings.Contains(view, "No series tracked") {
		t.Error("Expected 'No series tracked' message")
	}
}

func TestViewWithItems(t *testing.T) {
	list := NewRecordList()
	list.Width = 80
	list.Height = 20

	items := []RecordListItem{
		{
			Manga: &data.Manga{
				ID:         1,
				Title:      "Test Series",
				Chapter:    "12.1",
				LastUpdate: "2023-07-16T14:25:34",
				URL:        "https://manga.test/test-series/",
			},
		},
	}

	list.SetItems(items)

	view := list.View()

	if !strings.Contains(view, "Test Series") {
		t.Error("Expected series title in view")
	}

	if !strings.Contains(view, "Chapter: 12.1") {
		t.Error("Expected chapter in view")
	}
}

func TestViewRomanizedTitle(t *testing.T) {
	list := NewRecordList()
	list.Width = 80
	list.Height = 20

	list.SetItems([]RecordListItem{
		{Manga: &data.Manga{ID: 1, Title: "ゆるキャン△", TitleRomanized: "yurukyan"}},
	})

	view := list.View()

	if !strings.Contains(view, "ゆるキャン△") {
		t.Error("Expected original title in view")
	}

	if !strings.Contains(view, "yurukyan") {
		t.Error("Expected romanized title in view")
	}
}
