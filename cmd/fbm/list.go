package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/data"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the reading list stored in the database",
	Long:  "Display every tracked series from the sqlite3 store in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		repo := openStore()
		defer repo.Close()

		mangas, err := repo.ListMangas()
		if err != nil {
			cobra.CheckErr(err)
		}

		if len(mangas) == 0 {
			fmt.Println("📚 Nothing tracked yet. Run 'fbm -i bookmarks.json -o snapshot.csv -d <store>' first.")
			return
		}

		columns := []table.Column{
			{Title: "Title", Width: 40},
			{Title: "Chapter", Width: 8},
			{Title: "Updated", Width: 20},
			{Title: "Tags", Width: 20},
		}

		rows := []table.Row{}
		for _, m := range mangas {
			title := m.Title
			if m.TitleRomanized != "" {
				title = fmt.Sprintf("%s (%s)", m.Title, m.TitleRomanized)
			}
			rows = append(rows, table.Row{
				truncateString(title, 38),
				m.Chapter,
				m.LastUpdate,
				truncateString(data.JoinTags(m.Tags), 18),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n📚 Reading list (%d series)\n\n", len(mangas))
		fmt.Println(t.View())
	},
}

// openStore opens the sqlite3 store behind the persistent --database flag.
func openStore() *data.Repository {
	if storePath == "" {
		cobra.CheckErr(errors.New("no database given (use --database)"))
	}
	db, err := data.InitSQLite(storePath)
	cobra.CheckErr(err)
	return data.NewRepository(db)
}

func truncateString(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
