package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/avandriel/rounds/internal/config"
	"github.com/avandriel/rounds/internal/database"
	"github.com/avandriel/rounds/internal/tui"
	"github.com/avandriel/rounds/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "rounds is an interactive timer and needs a terminal.")
		os.Exit(1)
	}

	db, err := openDatabase(util.DataDir(config.AppName))
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	model := tui.NewMainModel(db)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// openDatabase creates the data directory if needed and opens the
// sqlite store inside it.
func openDatabase(root string) (*database.Database, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return database.Open(filepath.Join(root, config.DBFileName))
}
