package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/integrations"
	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/services"
)

var (
	inputPath  string
	outputPath string
	storePath  string
	diffPath   string
)

var rootCmd = &cobra.Command{
	Use:   "fbm",
	Short: "Turn Firefox bookmark exports into a manga reading list",
	Long: "Parse a Firefox \"Backup bookmarks\" JSON export, reconcile it against a\n" +
		"sqlite3 store, and write a CSV snapshot of the merged reading list",
	Run: func(cmd *cobra.Command, args []string) {
		conv := services.NewConverter(newRomanizer())
		result, err := conv.Run(services.RunOptions{
			InputPath:  inputPath,
			OutputPath: outputPath,
			StorePath:  storePath,
			DiffPath:   diffPath,
		})
		cobra.CheckErr(err)

		for _, msg := range result.Warnings {
			log.Printf("warning: %s", msg)
		}
		if n := len(result.Warnings); n > 0 {
			fmt.Printf("⚠️  %d warnings\n", n)
		}

		fmt.Printf("📖 %d bookmarks parsed, %d skipped\n", result.Parsed, result.Skipped)
		if storePath != "" {
			fmt.Printf("💾 %s: %d inserted, %d updated, %d unchanged\n",
				storePath, result.Inserted, result.Updated, result.Unchanged)
		}
		fmt.Printf("📄 %s: %d records\n", outputPath, result.Written)
		if diffPath != "" {
			fmt.Printf("🆕 vs %s: %d new, %d changed, %d unchanged\n",
				diffPath, result.DiffNew, result.DiffChanged, result.DiffUnchanged)
		}
	},
}

// newRomanizer looks for kakasi on PATH. Running without it just means
// Japanese titles keep no romanized companion.
func newRomanizer() integrations.Romanizer {
	k, err := integrations.NewKakasi()
	if err != nil {
		log.Printf("warning: %v", err)
		return nil
	}
	return k
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Firefox bookmark export (JSON)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "CSV snapshot to write")
	rootCmd.Flags().StringVarP(&diffPath, "csv", "c", "", "prior CSV snapshot to diff against")
	rootCmd.PersistentFlags().StringVarP(&storePath, "database", "d", "", "sqlite3 store path")
	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(browseCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
