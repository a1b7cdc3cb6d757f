package cmd

import (
	"github.com/spf13/cobra"

	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/app"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the reading list in an interactive TUI",
	Long:  "Open the sqlite3 store in a full-screen terminal UI for browsing and pruning the reading list",
	Run: func(cmd *cobra.Command, args []string) {
		repo := openStore()
		defer repo.Close()

		a := app.NewApp(repo)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}
