// Package tui is the terminal front end: it turns key presses into engine
// events and draws the grid, the status message and the session tally.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows m full screen until the player quits.
func Run(m Model) error {
	_, err := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	).Run()
	return err
}
