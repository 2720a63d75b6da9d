// Package ui provides the terminal browser over the deck, the text, the
// numeric range and a live counter.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/baralho/internal/config"
)

// Run starts the terminal program and blocks until the user quits.
func Run(cfg *config.Config) error {
	var opts []tea.ProgramOption
	if cfg.UI.UseAltScreen() {
		opts = append(opts, tea.WithAltScreen())
	}

	_, err := tea.NewProgram(NewModel(cfg), opts...).Run()
	return err
}
