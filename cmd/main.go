package main

import (
	cmd "github.com/HidekiAI/firefox-bookmark-to-sqlite3/cmd/fbm"
)

func main() {
	cmd.Execute()
}
